// Package gridroute is the public facade over the orthogonal routing
// engine: build a sparse Manhattan routing graph from a set of anchors
// and obstacle boxes, connect nets across it with a fixed worker pool,
// and persist the result.
//
// The facade is organized under eight subpackages:
//
//	geom/     — integer plane primitives: points, bounding boxes, directions
//	gnode/    — the stable-index node store the graph is built from
//	rgraph/   — sparse routing graph construction
//	astar/    — Manhattan-distance pathfinding over a built graph
//	netroute/ — per-net shared wire-tree growth and packed wire output
//	dispatch/ — fixed worker pool fan-out across a batch of nets
//	persist/  — graph serialization to and from a single file
//	replay/   — observational hooks into search and routing
//
// This package itself wraps those into a small, validated entry surface
// (Engine, GraphHandle) returning a stable Status code alongside every
// Go error, for callers that want a numeric result code rather than
// inspecting the error chain.
package gridroute
