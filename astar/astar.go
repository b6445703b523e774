// Package astar implements Manhattan-distance A* search over an rgraph
// Graph. A single Pathfinder is reused across many queries within a net
// (and across nets, if the caller wants): its scratch arrays are
// epoch-stamped rather than zeroed between calls, so repeated queries on
// the same graph cost O(frontier) instead of O(graph size) each (grounded
// on dijkstra.Dijkstra's reusable-state shape in the teacher corpus, with
// the zero-reinit trick borrowed from the same family of shortest-path
// walkers).
package astar

import (
	"container/heap"
	"errors"

	"github.com/ortholayer/gridroute/geom"
	"github.com/ortholayer/gridroute/gnode"
	"github.com/ortholayer/gridroute/replay"
	"github.com/ortholayer/gridroute/rgraph"
)

// ErrNoPath indicates no sequence of legal, linked moves connects the
// query's source to any of its goals.
var ErrNoPath = errors.New("astar: no path exists between source and goal set")

// Pathfinder runs repeated A* queries against a fixed Graph, reusing
// scratch state between calls.
type Pathfinder struct {
	graph *rgraph.Graph

	epoch     uint32
	seenEpoch []uint32
	gScore    []int64
	bends     []int32
	cameFrom  []gnode.NodeIndex
	arriveDir []geom.Direction

	hook *replay.Hook
}

// PathfinderOption configures a Pathfinder at construction.
type PathfinderOption func(*Pathfinder)

// WithHook attaches an observational replay.Hook to every search this
// Pathfinder runs.
func WithHook(h *replay.Hook) PathfinderOption {
	return func(p *Pathfinder) { p.hook = h }
}

// NewPathfinder returns a Pathfinder over g, pre-sized for g's current
// node count.
func NewPathfinder(g *rgraph.Graph, opts ...PathfinderOption) *Pathfinder {
	n := g.NodeCount()
	p := &Pathfinder{
		graph:     g,
		seenEpoch: make([]uint32, n),
		gScore:    make([]int64, n),
		bends:     make([]int32, n),
		cameFrom:  make([]gnode.NodeIndex, n),
		arriveDir: make([]geom.Direction, n),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Query is one A* request: a single source and a set of acceptable goal
// nodes (any one satisfies the query). Named after the original
// implementation's RT_PathDef pairing of a source with a goal list.
type Query struct {
	Source gnode.NodeIndex
	Goals  []gnode.NodeIndex
}

type heapEntry struct {
	node  gnode.NodeIndex
	f     int64
	bends int32
}

type openHeap []heapEntry

func (h openHeap) Len() int { return len(h) }
func (h openHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].bends < h[j].bends
}
func (h openHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *openHeap) Push(x interface{}) { *h = append(*h, x.(heapEntry)) }
func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// FindPath runs A* for q and returns the node sequence from source to the
// first goal reached, inclusive of both endpoints. The heuristic is
// Manhattan distance to the nearest goal, admissible and consistent since
// every edge has unit-or-more orthogonal cost and the grid has no
// diagonal shortcuts. Ties in f-score favor fewer accumulated bends, so
// among equal-length paths the straightest one wins.
func (p *Pathfinder) FindPath(q Query) ([]gnode.NodeIndex, error) {
	if len(q.Goals) == 0 {
		return nil, ErrNoPath
	}
	p.ensureCapacity()
	p.epoch++
	epoch := p.epoch

	goalSet := make(map[gnode.NodeIndex]struct{}, len(q.Goals))
	for _, g := range q.Goals {
		goalSet[g] = struct{}{}
	}

	h := &openHeap{}
	heap.Init(h)

	p.visit(q.Source, 0, 0, gnode.Sentinel, geom.DirNone, epoch)
	replay.Visit(p.hook, q.Source)
	heap.Push(h, heapEntry{node: q.Source, f: p.heuristic(q.Source, q.Goals), bends: 0})

	for h.Len() > 0 {
		cur := heap.Pop(h).(heapEntry)
		if p.seenEpoch[cur.node] != epoch {
			continue
		}
		curG := p.gScore[cur.node]
		curBends := p.bends[cur.node]
		if cur.f != curG+p.heuristic(cur.node, q.Goals) || cur.bends != curBends {
			continue // stale lazy-decrease-key entry
		}
		replay.Pop(p.hook, cur.node)

		if _, ok := goalSet[cur.node]; ok {
			return p.reconstruct(q.Source, cur.node), nil
		}

		node, ok := p.graph.Node(cur.node)
		if !ok {
			continue
		}
		for _, d := range geom.Singletons() {
			if !node.CanLeave(d) {
				continue
			}
			next := node.Neighbors.Get(d)
			nextPos, ok := p.graph.NeighborPosition(cur.node, d)
			if !ok {
				continue
			}
			cost := node.Position.ManhattanDistance(nextPos)
			tentativeG := curG + cost
			tentativeBends := curBends
			if p.arriveDir[cur.node] != geom.DirNone && p.arriveDir[cur.node] != d {
				tentativeBends++
			}

			if p.seenEpoch[next] != epoch || tentativeG < p.gScore[next] ||
				(tentativeG == p.gScore[next] && tentativeBends < p.bends[next]) {
				wasSeen := p.seenEpoch[next] == epoch
				p.visit(next, tentativeG, tentativeBends, cur.node, d, epoch)
				if wasSeen {
					replay.Relax(p.hook, next)
				} else {
					replay.Visit(p.hook, next)
				}
				heap.Push(h, heapEntry{
					node:  next,
					f:     tentativeG + p.heuristic(next, q.Goals),
					bends: tentativeBends,
				})
			}
		}
	}
	return nil, ErrNoPath
}

func (p *Pathfinder) visit(idx gnode.NodeIndex, g int64, bends int32, from gnode.NodeIndex, arriveDir geom.Direction, epoch uint32) {
	p.seenEpoch[idx] = epoch
	p.gScore[idx] = g
	p.bends[idx] = bends
	p.cameFrom[idx] = from
	p.arriveDir[idx] = arriveDir
}

func (p *Pathfinder) heuristic(idx gnode.NodeIndex, goals []gnode.NodeIndex) int64 {
	n, ok := p.graph.Node(idx)
	if !ok {
		return 0
	}
	best := int64(-1)
	for _, g := range goals {
		gn, ok := p.graph.Node(g)
		if !ok {
			continue
		}
		d := n.Position.ManhattanDistance(gn.Position)
		if best < 0 || d < best {
			best = d
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

func (p *Pathfinder) reconstruct(source, goal gnode.NodeIndex) []gnode.NodeIndex {
	var rev []gnode.NodeIndex
	cur := goal
	for {
		rev = append(rev, cur)
		if cur == source {
			break
		}
		cur = p.cameFrom[cur]
	}
	out := make([]gnode.NodeIndex, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
		replay.PathNode(p.hook, v)
	}
	return out
}

func (p *Pathfinder) ensureCapacity() {
	n := p.graph.NodeCount()
	if len(p.seenEpoch) >= n {
		return
	}
	grow := make([]uint32, n)
	copy(grow, p.seenEpoch)
	p.seenEpoch = grow

	gScore := make([]int64, n)
	copy(gScore, p.gScore)
	p.gScore = gScore

	bends := make([]int32, n)
	copy(bends, p.bends)
	p.bends = bends

	cameFrom := make([]gnode.NodeIndex, n)
	copy(cameFrom, p.cameFrom)
	p.cameFrom = cameFrom

	arriveDir := make([]geom.Direction, n)
	copy(arriveDir, p.arriveDir)
	p.arriveDir = arriveDir
}
