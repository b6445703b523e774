package gnode

import "github.com/ortholayer/gridroute/geom"

// Node is a vertex of the sparse routing graph. Position is unique within
// a Store (the spatial index enforces this at build time). Legal
// restricts which neighbor directions may be traversed *out of* this
// node — for anchors it is the anchor's connect mask, for box corners
// the corner's two outward directions; for ordinary linking nodes it is
// DirAll.
type Node struct {
	Position  geom.Point
	Neighbors NeighborList
	IsAnchor  bool
	Legal     geom.Direction
}

// CanLeave reports whether a path may exit this node along d: d must be
// legal for this node and the corresponding neighbor slot must be
// populated (not Sentinel).
func (n Node) CanLeave(d geom.Direction) bool {
	return n.Legal.Has(d) && n.Neighbors.Get(d) != Sentinel
}

// Store is an append-only array of Node values, indexed by NodeIndex.
// Nodes are never removed or reordered, so a NodeIndex handed out by Add
// stays valid — and keeps pointing at the same Node — for the Store's
// entire lifetime. The zero Store is ready to use.
type Store struct {
	nodes []Node
}

// NewStore returns a Store pre-sized for n nodes, avoiding reallocation
// during a graph build whose node count is known (or estimated) ahead of
// time.
func NewStore(capacityHint int) *Store {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &Store{nodes: make([]Node, 0, capacityHint)}
}

// Add appends node and returns its newly assigned, permanently stable
// NodeIndex.
func (s *Store) Add(node Node) NodeIndex {
	idx := NodeIndex(len(s.nodes))
	s.nodes = append(s.nodes, node)
	return idx
}

// Get returns the node at idx, or the zero Node and false if idx is out
// of range or Sentinel.
func (s *Store) Get(idx NodeIndex) (Node, bool) {
	if idx == Sentinel || int(idx) >= len(s.nodes) {
		return Node{}, false
	}
	return s.nodes[idx], true
}

// Set overwrites the node at idx in place. Used only during graph
// construction (linking and minimization); never after a Graph is handed
// to a caller.
func (s *Store) Set(idx NodeIndex, node Node) {
	s.nodes[idx] = node
}

// Len returns the number of nodes currently in the store.
func (s *Store) Len() int {
	return len(s.nodes)
}

// All returns a read-only view of every node, indexed by NodeIndex
// (All()[i] corresponds to NodeIndex(i)). The caller must not mutate the
// returned slice's elements' Neighbors/Legal in place via this view
// after the graph has been built.
func (s *Store) All() []Node {
	return s.nodes
}
