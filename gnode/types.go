// Package gnode implements the routing graph's node store: an append-only
// array of Node values addressed by a stable 32-bit NodeIndex. Once a
// Node is appended it never moves and its index never changes, which lets
// every other package (rgraph, astar, netroute) hold bare NodeIndex
// values as durable references instead of pointers.
package gnode

import (
	"math"

	"github.com/ortholayer/gridroute/geom"
)

// NodeIndex identifies a Node within a Store. The zero value is a valid
// index (the first node ever appended); use Sentinel to mean "no node".
type NodeIndex uint32

// Sentinel is the "no neighbor" / "no node" marker, matching the
// UINT32_MAX convention of spec.md §6.
const Sentinel NodeIndex = math.MaxUint32

// NeighborList holds the nearest graph node along each cardinal half-line,
// or Sentinel if there is none.
type NeighborList struct {
	PosX, NegX, PosY, NegY NodeIndex
}

// Get returns the neighbor in the given singleton direction. Passing a
// union or geom.DirNone returns Sentinel.
func (n NeighborList) Get(d geom.Direction) NodeIndex {
	switch d {
	case geom.DirPosX:
		return n.PosX
	case geom.DirNegX:
		return n.NegX
	case geom.DirPosY:
		return n.PosY
	case geom.DirNegY:
		return n.NegY
	default:
		return Sentinel
	}
}

// Set assigns the neighbor in the given singleton direction. Setting a
// union or DirNone is a no-op.
func (n *NeighborList) Set(d geom.Direction, idx NodeIndex) {
	switch d {
	case geom.DirPosX:
		n.PosX = idx
	case geom.DirNegX:
		n.NegX = idx
	case geom.DirPosY:
		n.PosY = idx
	case geom.DirNegY:
		n.NegY = idx
	}
}

// Empty reports whether every neighbor slot is Sentinel.
func (n NeighborList) Empty() bool {
	return n.PosX == Sentinel && n.NegX == Sentinel && n.PosY == Sentinel && n.NegY == Sentinel
}
