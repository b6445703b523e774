// Package netroute grows a shared wire tree per net: it resolves each
// endpoint and waypoint to a graph node, runs astar.Pathfinder once per
// new endpoint against the set of already-routed nodes, and packs the
// resulting node chains into WireView/Vertex output.
package netroute

import (
	"errors"
	"fmt"

	"github.com/ortholayer/gridroute/geom"
)

// Sentinel errors for net routing.
var (
	// ErrTooFewEndpoints indicates a net was given fewer than two endpoints.
	ErrTooFewEndpoints = errors.New("netroute: net requires at least two endpoints")

	// ErrUnresolvedPosition indicates an endpoint or waypoint position has
	// no coincident graph node.
	ErrUnresolvedPosition = errors.New("netroute: position has no graph node")

	// ErrNoRoute indicates no path exists from an endpoint to the net's
	// growing tree.
	ErrNoRoute = errors.New("netroute: no route from endpoint to net tree")
)

// Net is a group of endpoints (and, per endpoint, an ordered waypoint
// chain) to be mutually connected by one shared wire tree. Waypoints[i]
// is the forced intermediate chain for Endpoints[i]; a nil or empty entry
// means that endpoint has no waypoints. At least two endpoints are
// required.
type Net struct {
	Endpoints []geom.Point
	Waypoints [][]geom.Point
}

// Vertex is one (x, y) point in a net's emitted wire tree, in floating
// point so perform_centering's +0.5 offset can be represented.
type Vertex struct {
	X, Y float32
}

// WireView bit layout, normative: bits 0..13 vertex_count (max 16383),
// bit 14 is_root, bit 15 ends_in_junction.
type WireView uint16

const (
	wireVertexCountMask   = 0x3FFF
	wireMaxVertexCount    = wireVertexCountMask
	wireIsRootBit         = WireView(1 << 14)
	wireEndsInJunctionBit = WireView(1 << 15)
)

// ErrWireTooLong indicates a wire's vertex count exceeds the 14-bit field.
var ErrWireTooLong = errors.New("netroute: wire vertex count exceeds 16383")

// NewWireView packs a wire's vertex count and flags into a WireView.
func NewWireView(vertexCount int, isRoot, endsInJunction bool) (WireView, error) {
	if vertexCount < 0 || vertexCount > wireMaxVertexCount {
		return 0, ErrWireTooLong
	}
	w := WireView(vertexCount)
	if isRoot {
		w |= wireIsRootBit
	}
	if endsInJunction {
		w |= wireEndsInJunctionBit
	}
	return w, nil
}

// VertexCount returns the number of consecutive vertices this wire covers.
func (w WireView) VertexCount() int { return int(w & wireVertexCountMask) }

// IsRoot reports whether this is the first wire of its net's tree.
func (w WireView) IsRoot() bool { return w&wireIsRootBit != 0 }

// EndsInJunction reports whether this wire's last vertex coincides with
// an interior vertex of an earlier wire in the same net.
func (w WireView) EndsInJunction() bool { return w&wireEndsInJunctionBit != 0 }

// NetView locates one net's wire and vertex runs within the caller's
// output buffers.
type NetView struct {
	WireOffset   uint32
	WireCount    uint32
	VertexOffset uint32
}

// Result is the freshly-allocated output of routing a single net. Blit
// copies a slice of Results into caller-provided, fixed-capacity
// buffers, which is where overflow is actually detected — the boundary
// between "compute the route" (here, Go-native, owned slices) and "land
// it in a pre-sized external buffer" (the FFI-shaped external
// interface) is drawn at that call, not here.
type Result struct {
	Vertices []Vertex
	Wires    []WireView
}

// ErrVertexBufferOverflow indicates a net's vertices would not fit in
// the remaining capacity of Blit's vertices buffer.
var ErrVertexBufferOverflow = errors.New("netroute: vertex buffer overflow")

// ErrWireViewBufferOverflow indicates a net's wires would not fit in the
// remaining capacity of Blit's wireViews buffer.
var ErrWireViewBufferOverflow = errors.New("netroute: wire view buffer overflow")

// Blit copies results into vertices, wireViews, and netViews in net
// index order, filling netViews[i] with the offsets and counts at which
// results[i] landed. It writes net-by-net, left to right, so a failure
// partway through leaves every net before it fully and correctly
// written; nothing is undone on error. len(netViews) must equal
// len(results).
//
// Blit fails immediately, without writing netViews[i], the first time a
// net's vertices or wires would overrun the remaining capacity of their
// respective buffer — callers are expected to size vertices and
// wireViews generously, or to retry with a larger buffer after a
// failure.
func Blit(results []Result, vertices []Vertex, wireViews []WireView, netViews []NetView) error {
	if len(netViews) != len(results) {
		return fmt.Errorf("netroute: net_views length %d does not match %d results", len(netViews), len(results))
	}

	var vOff, wOff uint32
	for i, res := range results {
		if int(vOff)+len(res.Vertices) > len(vertices) {
			return fmt.Errorf("%w: net %d needs %d vertices, %d remain", ErrVertexBufferOverflow, i, len(res.Vertices), len(vertices)-int(vOff))
		}
		if int(wOff)+len(res.Wires) > len(wireViews) {
			return fmt.Errorf("%w: net %d needs %d wire views, %d remain", ErrWireViewBufferOverflow, i, len(res.Wires), len(wireViews)-int(wOff))
		}

		copy(vertices[vOff:], res.Vertices)
		copy(wireViews[wOff:], res.Wires)
		netViews[i] = NetView{
			WireOffset:   wOff,
			WireCount:    uint32(len(res.Wires)),
			VertexOffset: vOff,
		}

		vOff += uint32(len(res.Vertices))
		wOff += uint32(len(res.Wires))
	}
	return nil
}
