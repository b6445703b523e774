// Package rgraph builds and represents the sparse orthogonal routing
// graph: the node set derived from anchors and obstacle bounding boxes,
// linked into a compact NESW adjacency structure that preserves every
// optimal Manhattan path between anchors while being dramatically
// smaller than the full integer grid (spec.md §4.1).
//
// A Graph is immutable once built (NewBuilder().Build(...)) and is safe
// to share by reference across goroutines for read-only routing.
package rgraph

import (
	"errors"
	"math"

	"github.com/ortholayer/gridroute/geom"
	"github.com/ortholayer/gridroute/gnode"
)

// Sentinel errors for rgraph construction and lookup.
var (
	// ErrAnchorInsideBox indicates an anchor's position lies strictly
	// inside a bounding box other than (or in addition to) its own.
	ErrAnchorInsideBox = errors.New("rgraph: anchor position lies inside an obstacle box")

	// ErrAnchorOffBoxBoundary indicates an anchor references a bounding
	// box but does not lie on that box's boundary.
	ErrAnchorOffBoxBoundary = errors.New("rgraph: anchor position is not on its referenced box boundary")

	// ErrBoxIndexOutOfRange indicates an anchor references a bounding box
	// index that does not exist in the boxes slice passed to Build.
	ErrBoxIndexOutOfRange = errors.New("rgraph: anchor box index out of range")
)

// BoxIndex identifies a bounding box within the slice passed to Build.
type BoxIndex uint32

// NoBox is the "anchor has no associated box" sentinel, matching the
// BoundingBoxIndex sentinel convention of spec.md §6.
const NoBox BoxIndex = math.MaxUint32

// Anchor is a caller-supplied seed point for graph construction: a
// position, the bounding box it is attached to (or NoBox), and the set
// of cardinal directions a wire may leave it along.
type Anchor struct {
	Position geom.Point
	Box      BoxIndex
	Connect  geom.Direction
}

// Graph is the immutable, built routing graph: a node store, a
// position-to-index spatial map, and a copy of the obstacle set used to
// validate paths. Exclusively owned by its builder; shared read-only
// with routers thereafter.
type Graph struct {
	nodes     *gnode.Store
	index     map[geom.Point]gnode.NodeIndex
	obstacles []geom.BoundingBox
}

// Nodes returns a read-only view of every node in the graph, indexed by
// gnode.NodeIndex (graph_get_nodes).
func (g *Graph) Nodes() []gnode.Node {
	return g.nodes.All()
}

// Node returns the node at idx.
func (g *Graph) Node(idx gnode.NodeIndex) (gnode.Node, bool) {
	return g.nodes.Get(idx)
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int {
	return g.nodes.Len()
}

// FindNode performs the O(1) spatial lookup of a node by exact position
// (graph_find_node). Returns gnode.Sentinel if no node occupies p.
func (g *Graph) FindNode(p geom.Point) gnode.NodeIndex {
	if idx, ok := g.index[p]; ok {
		return idx
	}
	return gnode.Sentinel
}

// Obstacles returns the bounding boxes this graph was built against.
func (g *Graph) Obstacles() []geom.BoundingBox {
	return g.obstacles
}

// FromNodes rebuilds a Graph directly from a node slice and obstacle set
// in the exact form persist.Deserialize reads them back: nodes[i] becomes
// NodeIndex(i), and the spatial index is rebuilt from each node's
// Position. Used only by persist, which already guarantees the slice
// came from a prior Graph's own Nodes() order.
func FromNodes(nodes []gnode.Node, obstacles []geom.BoundingBox) *Graph {
	store := gnode.NewStore(len(nodes))
	index := make(map[geom.Point]gnode.NodeIndex, len(nodes))
	for _, n := range nodes {
		idx := store.Add(n)
		index[n.Position] = idx
	}
	return &Graph{nodes: store, index: index, obstacles: obstacles}
}

// NeighborPosition returns the position of idx's neighbor in direction d,
// and whether one exists. Supplemental accessor recovered from
// original_source/routing.h's RT_Neighbors (which exposed neighbor
// positions directly rather than indices) — see SPEC_FULL.md §3.
func (g *Graph) NeighborPosition(idx gnode.NodeIndex, d geom.Direction) (geom.Point, bool) {
	n, ok := g.nodes.Get(idx)
	if !ok {
		return geom.Point{}, false
	}
	nb := n.Neighbors.Get(d)
	if nb == gnode.Sentinel {
		return geom.Point{}, false
	}
	other, ok := g.nodes.Get(nb)
	if !ok {
		return geom.Point{}, false
	}
	return other.Position, true
}
