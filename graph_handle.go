package gridroute

import (
	"github.com/google/uuid"

	"github.com/ortholayer/gridroute/dispatch"
	"github.com/ortholayer/gridroute/geom"
	"github.com/ortholayer/gridroute/netroute"
	"github.com/ortholayer/gridroute/persist"
	"github.com/ortholayer/gridroute/rgraph"
)

func newBuildID() uuid.UUID {
	return uuid.New()
}

// GraphHandle is an opaque, validated wrapper around a built rgraph.Graph.
// It carries a build ID used only to correlate a handle with the file it
// was serialized from or to; the ID never participates in routing.
type GraphHandle struct {
	id    uuid.UUID
	graph *rgraph.Graph
}

// ID returns this handle's build ID.
func (h *GraphHandle) ID() uuid.UUID {
	return h.id
}

// Build constructs the handle's underlying graph from anchors and boxes.
// Calling Build again on an already-built handle replaces its graph.
func (h *GraphHandle) Build(anchors []rgraph.Anchor, boxes []geom.BoundingBox, opts ...rgraph.BuildOption) (Status, error) {
	if h == nil {
		return StatusOf(ErrNilHandle), ErrNilHandle
	}
	g, err := rgraph.NewBuilder().Build(anchors, boxes, opts...)
	if err != nil {
		return StatusOf(err), err
	}
	h.graph = g
	return StatusSuccess, nil
}

// ConnectNets routes nets against the handle's graph using the process
// pool, then blits the results into the caller's vertices, wireViews,
// and netViews buffers in net order. It fails with StatusUninitialized
// if the thread pool has not been initialized. netViews must have exactly
// len(nets) entries; vertices and wireViews must be large enough to
// hold every net's output, or the call fails with StatusVertexBufferOverflow
// / StatusWireViewBufferOverflow without writing netViews entries past
// the failing net.
func (h *GraphHandle) ConnectNets(e *Engine, nets []netroute.Net, vertices []netroute.Vertex, wireViews []netroute.WireView, netViews []netroute.NetView, opts ...netroute.RouteOption) (Status, error) {
	if h == nil {
		return StatusOf(ErrNilHandle), ErrNilHandle
	}
	if h.graph == nil {
		return StatusOf(ErrNotBuilt), ErrNotBuilt
	}
	if !dispatch.IsInitialized() {
		return StatusOf(ErrThreadPoolUninitialized), ErrThreadPoolUninitialized
	}
	if len(netViews) != len(nets) {
		return StatusOf(ErrNetViewCountMismatch), ErrNetViewCountMismatch
	}

	results := make([]netroute.Result, len(nets))
	if err := dispatch.ConnectNets(dispatch.Default(), h.graph, nets, results, opts...); err != nil {
		return StatusOf(err), err
	}
	err := netroute.Blit(results, vertices, wireViews, netViews)
	return StatusOf(err), err
}

// Serialize writes the handle's graph to path.
func (h *GraphHandle) Serialize(path string) (Status, error) {
	if h == nil {
		return StatusOf(ErrNilHandle), ErrNilHandle
	}
	if h.graph == nil {
		return StatusOf(ErrNotBuilt), ErrNotBuilt
	}
	if path == "" {
		return StatusOf(ErrEmptyPath), ErrEmptyPath
	}
	err := persist.Serialize(h.graph, path)
	return StatusOf(err), err
}

// DeserializeGraph reads a graph previously written by
// (*GraphHandle).Serialize from path, returning a fresh handle with a
// new build ID (the build ID identifies a handle in memory, not a file;
// reloading the same file twice yields two distinct handles).
func DeserializeGraph(path string) (*GraphHandle, Status, error) {
	if path == "" {
		return nil, StatusOf(ErrEmptyPath), ErrEmptyPath
	}
	g, err := persist.Deserialize(path)
	if err != nil {
		return nil, StatusOf(err), err
	}
	return &GraphHandle{id: newBuildID(), graph: g}, StatusSuccess, nil
}

// Free releases the handle's graph reference. A freed handle behaves as
// an unbuilt one: Build may be called again to reuse it.
func (h *GraphHandle) Free() {
	if h == nil {
		return
	}
	h.graph = nil
}
