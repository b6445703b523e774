package gridroute_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ortholayer/gridroute"
	"github.com/ortholayer/gridroute/geom"
	"github.com/ortholayer/gridroute/netroute"
	"github.com/ortholayer/gridroute/rgraph"
)

func simpleAnchors() []rgraph.Anchor {
	return []rgraph.Anchor{
		{Position: geom.Point{X: 0, Y: 0}, Box: rgraph.NoBox, Connect: geom.DirAll},
		{Position: geom.Point{X: 10, Y: 0}, Box: rgraph.NoBox, Connect: geom.DirAll},
	}
}

func TestGraphHandleBuildConnectSerializeRoundTrip(t *testing.T) {
	e := gridroute.NewEngine()
	h := e.GraphNew()

	status, err := h.Build(simpleAnchors(), nil)
	require.NoError(t, err)
	require.Equal(t, gridroute.StatusSuccess, status)

	nets := []netroute.Net{{Endpoints: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}}}
	vertices := make([]netroute.Vertex, 16)
	wireViews := make([]netroute.WireView, 16)
	netViews := make([]netroute.NetView, len(nets))
	status, err = h.ConnectNets(e, nets, vertices, wireViews, netViews)
	require.NoError(t, err)
	require.Equal(t, gridroute.StatusSuccess, status)
	require.NotZero(t, netViews[0].WireCount)

	path := filepath.Join(t.TempDir(), "handle.db")
	status, err = h.Serialize(path)
	require.NoError(t, err)
	require.Equal(t, gridroute.StatusSuccess, status)

	reloaded, status, err := gridroute.DeserializeGraph(path)
	require.NoError(t, err)
	require.Equal(t, gridroute.StatusSuccess, status)
	require.NotEqual(t, h.ID(), reloaded.ID(), "a reload gets its own build ID")

	vertices2 := make([]netroute.Vertex, 16)
	wireViews2 := make([]netroute.WireView, 16)
	netViews2 := make([]netroute.NetView, len(nets))
	status, err = reloaded.ConnectNets(e, nets, vertices2, wireViews2, netViews2)
	require.NoError(t, err)
	require.Equal(t, gridroute.StatusSuccess, status)
	require.Equal(t, vertices, vertices2)
	require.Equal(t, wireViews, wireViews2)
	require.Equal(t, netViews, netViews2)
}

func TestGraphHandleConnectNetsBeforeBuildIsUninitialized(t *testing.T) {
	e := gridroute.NewEngine()
	h := e.GraphNew()

	nets := []netroute.Net{{Endpoints: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}}}
	status, err := h.ConnectNets(e, nets, make([]netroute.Vertex, 4), make([]netroute.WireView, 4), make([]netroute.NetView, 1))
	require.Error(t, err)
	require.Equal(t, gridroute.StatusUninitialized, status)
}

func TestGraphHandleConnectNetsRejectsNetViewCountMismatch(t *testing.T) {
	e := gridroute.NewEngine()
	h := e.GraphNew()
	_, err := h.Build(simpleAnchors(), nil)
	require.NoError(t, err)

	nets := []netroute.Net{{Endpoints: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}}}
	status, err := h.ConnectNets(e, nets, make([]netroute.Vertex, 4), make([]netroute.WireView, 4), make([]netroute.NetView, 0))
	require.Error(t, err)
	require.Equal(t, gridroute.StatusInvalidArgument, status)
}

func TestGraphHandleConnectNetsVertexBufferExactlySizedSucceedsOneShortOverflows(t *testing.T) {
	e := gridroute.NewEngine()
	h := e.GraphNew()
	_, err := h.Build(simpleAnchors(), nil)
	require.NoError(t, err)

	nets := []netroute.Net{{Endpoints: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}}}

	// A straight connection between two endpoints is exactly one
	// 2-vertex wire.
	netViews := make([]netroute.NetView, 1)
	status, err := h.ConnectNets(e, nets, make([]netroute.Vertex, 2), make([]netroute.WireView, 1), netViews)
	require.NoError(t, err)
	require.Equal(t, gridroute.StatusSuccess, status)

	status, err = h.ConnectNets(e, nets, make([]netroute.Vertex, 1), make([]netroute.WireView, 1), netViews)
	require.Error(t, err)
	require.Equal(t, gridroute.StatusVertexBufferOverflow, status)

	status, err = h.ConnectNets(e, nets, make([]netroute.Vertex, 2), make([]netroute.WireView, 0), netViews)
	require.Error(t, err)
	require.Equal(t, gridroute.StatusWireViewBufferOverflow, status)
}

func TestGraphHandleNilReceiverReturnsNullPointer(t *testing.T) {
	var h *gridroute.GraphHandle
	status, err := h.Build(simpleAnchors(), nil)
	require.Error(t, err)
	require.Equal(t, gridroute.StatusNullPointer, status)
}

func TestGraphHandleSerializeRejectsEmptyPath(t *testing.T) {
	e := gridroute.NewEngine()
	h := e.GraphNew()
	_, err := h.Build(simpleAnchors(), nil)
	require.NoError(t, err)

	status, err := h.Serialize("")
	require.Error(t, err)
	require.Equal(t, gridroute.StatusInvalidArgument, status)
}

func TestGraphHandleFreeThenBuildAgainWorks(t *testing.T) {
	e := gridroute.NewEngine()
	h := e.GraphNew()
	_, err := h.Build(simpleAnchors(), nil)
	require.NoError(t, err)

	h.Free()
	status, err := h.ConnectNets(e, nil, nil, nil, nil)
	require.Error(t, err)
	require.Equal(t, gridroute.StatusUninitialized, status)

	status, err = h.Build(simpleAnchors(), nil)
	require.NoError(t, err)
	require.Equal(t, gridroute.StatusSuccess, status)
}

func TestStatusOfNilIsSuccess(t *testing.T) {
	require.Equal(t, gridroute.StatusSuccess, gridroute.StatusOf(nil))
}
