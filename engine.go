package gridroute

import (
	"errors"

	"github.com/ortholayer/gridroute/dispatch"
)

// Sentinel errors for the facade's own entry-point validation.
var (
	// ErrNilHandle indicates a method was called on a nil *GraphHandle.
	ErrNilHandle = errors.New("gridroute: graph handle is nil")

	// ErrNotBuilt indicates a GraphHandle's graph has not been built yet.
	ErrNotBuilt = errors.New("gridroute: graph handle has not been built")

	// ErrEmptyPath indicates Serialize/DeserializeGraph was given an
	// empty file path.
	ErrEmptyPath = errors.New("gridroute: path must not be empty")

	// ErrThreadPoolUninitialized indicates GetThreadCount or
	// GraphHandle.ConnectNets was called before the thread pool was
	// initialized.
	ErrThreadPoolUninitialized = errors.New("gridroute: thread pool not initialized")

	// ErrNetViewCountMismatch indicates ConnectNets was given a
	// net_views buffer whose length does not match the number of nets.
	ErrNetViewCountMismatch = errors.New("gridroute: net_views buffer length must match nets length")
)

// Engine is the entry point for thread-pool lifecycle management. Its
// zero value is ready to use; thread pool state itself lives in
// dispatch's process-wide singleton, so every Engine value observes the
// same pool.
type Engine struct{}

// NewEngine returns a ready-to-use Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// InitThreadPool fixes the routing engine's worker count to n. May be
// called at most once per process; a second call returns
// StatusInvalidOperation wrapping dispatch.ErrAlreadyInitialized.
func (e *Engine) InitThreadPool(n int) (Status, error) {
	err := dispatch.InitThreadPool(n)
	return StatusOf(err), err
}

// GetThreadCount returns the engine's current worker capacity. It fails
// with StatusUninitialized if InitThreadPool has never been called.
func (e *Engine) GetThreadCount() (int, Status, error) {
	if !dispatch.IsInitialized() {
		return 0, StatusOf(ErrThreadPoolUninitialized), ErrThreadPoolUninitialized
	}
	return dispatch.Default().WorkerCount(), StatusSuccess, nil
}

// GraphNew returns a fresh, unbuilt GraphHandle carrying a new build ID.
func (e *Engine) GraphNew() *GraphHandle {
	return &GraphHandle{id: newBuildID()}
}
