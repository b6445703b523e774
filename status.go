package gridroute

import (
	"errors"

	"github.com/ortholayer/gridroute/dispatch"
	"github.com/ortholayer/gridroute/netroute"
	"github.com/ortholayer/gridroute/persist"
	"github.com/ortholayer/gridroute/rgraph"
)

// Status is a stable numeric result code, mirroring the taxonomy every
// entry point in this package reports alongside its Go error. Values are
// part of the facade's compatibility surface and never change meaning
// across versions.
type Status int

const (
	StatusSuccess Status = iota
	StatusNullPointer
	StatusInvalidOperation
	StatusVertexBufferOverflow
	StatusWireViewBufferOverflow
	StatusUninitialized
	StatusInvalidArgument
	StatusIOError
)

// String renders a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusNullPointer:
		return "null-pointer"
	case StatusInvalidOperation:
		return "invalid-operation"
	case StatusVertexBufferOverflow:
		return "vertex-buffer-overflow"
	case StatusWireViewBufferOverflow:
		return "wire-view-buffer-overflow"
	case StatusUninitialized:
		return "uninitialized"
	case StatusInvalidArgument:
		return "invalid-argument"
	case StatusIOError:
		return "io-error"
	default:
		return "unknown"
	}
}

// StatusOf classifies err into its Status, per the error-handling
// taxonomy: null/uninitialized/invalid-argument are validated at entry,
// invalid-operation and buffer-overflow are detected during routing, and
// io-error surfaces directly from persist. A nil err is StatusSuccess;
// an err this facade has never seen before still resolves to
// StatusInvalidOperation rather than panicking, since an unrecognized
// failure is still a failure, just an uncategorized one.
func StatusOf(err error) Status {
	if err == nil {
		return StatusSuccess
	}

	switch {
	case errors.Is(err, ErrNilHandle):
		return StatusNullPointer
	case errors.Is(err, ErrNotBuilt):
		return StatusUninitialized
	case errors.Is(err, ErrEmptyPath):
		return StatusInvalidArgument
	case errors.Is(err, ErrThreadPoolUninitialized):
		return StatusUninitialized
	case errors.Is(err, ErrNetViewCountMismatch):
		return StatusInvalidArgument

	case errors.Is(err, netroute.ErrVertexBufferOverflow):
		return StatusVertexBufferOverflow
	case errors.Is(err, netroute.ErrWireViewBufferOverflow):
		return StatusWireViewBufferOverflow

	case errors.Is(err, rgraph.ErrAnchorInsideBox),
		errors.Is(err, rgraph.ErrAnchorOffBoxBoundary),
		errors.Is(err, rgraph.ErrBoxIndexOutOfRange):
		return StatusInvalidArgument

	case errors.Is(err, netroute.ErrTooFewEndpoints),
		errors.Is(err, netroute.ErrWireTooLong):
		return StatusInvalidArgument
	case errors.Is(err, netroute.ErrUnresolvedPosition),
		errors.Is(err, netroute.ErrNoRoute):
		return StatusInvalidOperation

	case errors.Is(err, dispatch.ErrInvalidWorkerCount):
		return StatusInvalidArgument
	case errors.Is(err, dispatch.ErrAlreadyInitialized):
		return StatusInvalidOperation

	case errors.Is(err, persist.ErrIO):
		return StatusIOError

	default:
		return StatusInvalidOperation
	}
}
