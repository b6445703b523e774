// Package replay defines purely observational hooks into the A* search
// and net-routing algorithms, for visualization and debugging tools that
// want to watch a route unfold node-by-node without altering it.
package replay

import "github.com/ortholayer/gridroute/gnode"

// Hook carries optional callbacks fired at fixed points during a search
// or a net's wire-tree growth. Every field may be left nil; call sites
// use the package-level no-op helpers so callers never need a nil check.
// Hooks are strictly observational — every callback returns nothing, so
// none of them can influence the algorithm's outcome.
type Hook struct {
	// OnVisit fires when a node is first reached (pushed onto the open set).
	OnVisit func(gnode.NodeIndex)

	// OnRelax fires when a neighbor's tentative score improves.
	OnRelax func(gnode.NodeIndex)

	// OnPop fires when a node is popped off the open set for expansion.
	OnPop func(gnode.NodeIndex)

	// OnPathNode fires once per node, in order, as a finished path is
	// reconstructed from goal back to source.
	OnPathNode func(gnode.NodeIndex)

	// OnWireBegin fires before a net router starts building one wire.
	OnWireBegin func()

	// OnWireEnd fires after a wire's vertices have been packed.
	OnWireEnd func()
}

// DefaultHook returns a Hook with every field set to a no-op, convenient
// as a base to override only the callbacks a caller cares about.
func DefaultHook() *Hook {
	noopNode := func(gnode.NodeIndex) {}
	noop := func() {}
	return &Hook{
		OnVisit:     noopNode,
		OnRelax:     noopNode,
		OnPop:       noopNode,
		OnPathNode:  noopNode,
		OnWireBegin: noop,
		OnWireEnd:   noop,
	}
}

func (h *Hook) visit(n gnode.NodeIndex) {
	if h != nil && h.OnVisit != nil {
		h.OnVisit(n)
	}
}

func (h *Hook) relax(n gnode.NodeIndex) {
	if h != nil && h.OnRelax != nil {
		h.OnRelax(n)
	}
}

func (h *Hook) pop(n gnode.NodeIndex) {
	if h != nil && h.OnPop != nil {
		h.OnPop(n)
	}
}

func (h *Hook) pathNode(n gnode.NodeIndex) {
	if h != nil && h.OnPathNode != nil {
		h.OnPathNode(n)
	}
}

func (h *Hook) wireBegin() {
	if h != nil && h.OnWireBegin != nil {
		h.OnWireBegin()
	}
}

func (h *Hook) wireEnd() {
	if h != nil && h.OnWireEnd != nil {
		h.OnWireEnd()
	}
}

// Visit, Relax, Pop, PathNode, WireBegin, and WireEnd are nil-safe
// package-level entry points: calling them on a nil *Hook is a no-op, so
// astar.Pathfinder and netroute.Router can carry a possibly-nil hook
// field and fire it unconditionally.
func Visit(h *Hook, n gnode.NodeIndex)    { h.visit(n) }
func Relax(h *Hook, n gnode.NodeIndex)    { h.relax(n) }
func Pop(h *Hook, n gnode.NodeIndex)      { h.pop(n) }
func PathNode(h *Hook, n gnode.NodeIndex) { h.pathNode(n) }
func WireBegin(h *Hook)                   { h.wireBegin() }
func WireEnd(h *Hook)                     { h.wireEnd() }
