package netroute

import (
	"fmt"

	"github.com/ortholayer/gridroute/astar"
	"github.com/ortholayer/gridroute/geom"
	"github.com/ortholayer/gridroute/gnode"
	"github.com/ortholayer/gridroute/replay"
	"github.com/ortholayer/gridroute/rgraph"
)

// RouteOption configures a Router.
type RouteOption func(*routeConfig)

type routeConfig struct {
	centering bool
	hook      *replay.Hook
}

// WithCentering offsets every emitted vertex by (+0.5, +0.5), matching
// perform_centering applied uniformly to every vertex kind.
func WithCentering() RouteOption {
	return func(c *routeConfig) { c.centering = true }
}

// WithHook attaches an observational replay.Hook to the Router's
// Pathfinder and to wire emission.
func WithHook(h *replay.Hook) RouteOption {
	return func(c *routeConfig) { c.hook = h }
}

// Router grows a shared wire tree per net against a fixed Graph, reusing
// one astar.Pathfinder across every endpoint and every net routed through
// it (grounded on astar.Pathfinder's own scratch-reuse design).
type Router struct {
	graph *rgraph.Graph
	pf    *astar.Pathfinder
	cfg   routeConfig
}

// NewRouter returns a Router over g.
func NewRouter(g *rgraph.Graph, opts ...RouteOption) *Router {
	cfg := routeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	var pfOpts []astar.PathfinderOption
	if cfg.hook != nil {
		pfOpts = append(pfOpts, astar.WithHook(cfg.hook))
	}
	return &Router{graph: g, pf: astar.NewPathfinder(g, pfOpts...), cfg: cfg}
}

// treeState accumulates one net's growing wire tree as it is built,
// endpoint by endpoint.
type treeState struct {
	members  map[gnode.NodeIndex]bool
	interior map[gnode.NodeIndex]bool
	rootDone bool
}

func newTreeState() *treeState {
	return &treeState{members: make(map[gnode.NodeIndex]bool), interior: make(map[gnode.NodeIndex]bool)}
}

func (t *treeState) goals() []gnode.NodeIndex {
	out := make([]gnode.NodeIndex, 0, len(t.members))
	for n := range t.members {
		out = append(out, n)
	}
	return out
}

// RouteNet grows net's shared wire tree and returns its packed output.
// Endpoints are processed in order: the first endpoint seeds the tree;
// each later endpoint first builds its own waypoint chain (if any), then
// connects the far end of that chain into the existing tree, unless the
// chain already reached the tree as a side effect of its own linking (in
// which case the would-be connecting wire is redundant and is not
// emitted) or the endpoint's bare position already coincided with a
// pre-existing tree node (in which case a trivial single-vertex wire
// marks the connection explicitly).
func (r *Router) RouteNet(net Net) (Result, error) {
	if len(net.Endpoints) < 2 {
		return Result{}, ErrTooFewEndpoints
	}

	tree := newTreeState()
	var res Result

	for i, pos := range net.Endpoints {
		var waypoints []geom.Point
		if i < len(net.Waypoints) {
			waypoints = net.Waypoints[i]
		}

		chainPoints := make([]geom.Point, 0, len(waypoints)+1)
		chainPoints = append(chainPoints, pos)
		chainPoints = append(chainPoints, waypoints...)

		chainNodes := make([]gnode.NodeIndex, len(chainPoints))
		for k, p := range chainPoints {
			idx := r.graph.FindNode(p)
			if idx == gnode.Sentinel {
				return Result{}, fmt.Errorf("netroute: endpoint %d position %s: %w", i, p, ErrUnresolvedPosition)
			}
			chainNodes[k] = idx
		}

		if err := r.routeEndpoint(i, chainNodes, tree, &res); err != nil {
			return Result{}, fmt.Errorf("netroute: endpoint %d: %w", i, err)
		}
	}

	return res, nil
}

func (r *Router) routeEndpoint(i int, chainNodes []gnode.NodeIndex, tree *treeState, res *Result) error {
	if i == 0 {
		var chainFull []gnode.NodeIndex
		if len(chainNodes) > 1 {
			full, err := r.linkChain(chainNodes)
			if err != nil {
				return err
			}
			chainFull = full
		} else {
			chainFull = chainNodes
		}
		if len(chainFull) > 1 {
			r.emit(chainFull, tree, res)
		}
		r.addToTree(chainFull, tree)
		return nil
	}

	var chainFull []gnode.NodeIndex
	if len(chainNodes) > 1 {
		full, err := r.linkChain(chainNodes)
		if err != nil {
			return err
		}
		chainFull = full
	} else {
		chainFull = chainNodes
	}

	farEnd := chainFull[len(chainFull)-1]
	farAlreadyInTree := tree.members[farEnd]
	internalTouch := false
	for _, n := range chainFull[:len(chainFull)-1] {
		if tree.members[n] {
			internalTouch = true
			break
		}
	}

	// The tree as it stood before this endpoint's own chain joined it: the
	// chain's far end must connect to that, not to itself.
	goals := tree.goals()

	if len(chainFull) > 1 {
		r.emit(chainFull, tree, res)
		r.addToTree(chainFull, tree)
	}

	if farAlreadyInTree {
		if len(chainFull) == 1 {
			r.emitTrivial(farEnd, tree, res)
		}
		return nil
	}
	if internalTouch {
		return nil
	}

	if len(goals) == 0 {
		return ErrNoRoute
	}
	path, err := r.pf.FindPath(astar.Query{Source: farEnd, Goals: goals})
	if err != nil {
		return fmt.Errorf("%w", ErrNoRoute)
	}
	r.emit(path, tree, res)
	r.addToTree(path, tree)
	return nil
}

// linkChain pathfinds through chainNodes pairwise (endpoint to first
// waypoint, waypoint to waypoint, ...), concatenating into one node
// sequence with no repeated junction node between segments.
func (r *Router) linkChain(chainNodes []gnode.NodeIndex) ([]gnode.NodeIndex, error) {
	full := []gnode.NodeIndex{chainNodes[0]}
	for k := 0; k+1 < len(chainNodes); k++ {
		seg, err := r.pf.FindPath(astar.Query{Source: chainNodes[k], Goals: []gnode.NodeIndex{chainNodes[k+1]}})
		if err != nil {
			return nil, fmt.Errorf("%w", ErrNoRoute)
		}
		full = append(full, seg[1:]...)
	}
	return full, nil
}

func (r *Router) addToTree(chain []gnode.NodeIndex, tree *treeState) {
	for k, n := range chain {
		tree.members[n] = true
		if k != 0 && k != len(chain)-1 {
			tree.interior[n] = true
		}
	}
}

// emit splits chain into one WireView per maximal straight run (a wire
// ends wherever travel direction changes), appending 2-vertex wires to
// res. Only the very first wire emitted for the whole net carries
// is_root; ends_in_junction is set per run from whether that run's last
// node is an interior node of an earlier wire in the same net.
func (r *Router) emit(chain []gnode.NodeIndex, tree *treeState, res *Result) {
	bounds := r.bendNodes(chain)
	for i := 0; i+1 < len(bounds); i++ {
		replay.WireBegin(r.cfg.hook)

		a, b := bounds[i], bounds[i+1]
		nodeA, _ := r.graph.Node(a)
		nodeB, _ := r.graph.Node(b)

		isRoot := !tree.rootDone
		tree.rootDone = true
		endsInJunction := tree.interior[b]

		wire, _ := NewWireView(2, isRoot, endsInJunction)
		res.Wires = append(res.Wires, wire)
		res.Vertices = append(res.Vertices, r.toVertex(nodeA.Position), r.toVertex(nodeB.Position))

		replay.WireEnd(r.cfg.hook)
	}
}

func (r *Router) emitTrivial(node gnode.NodeIndex, tree *treeState, res *Result) {
	replay.WireBegin(r.cfg.hook)
	defer replay.WireEnd(r.cfg.hook)

	n, _ := r.graph.Node(node)
	isRoot := !tree.rootDone
	tree.rootDone = true
	wire, _ := NewWireView(1, isRoot, true)
	res.Wires = append(res.Wires, wire)
	res.Vertices = append(res.Vertices, r.toVertex(n.Position))
}

// bendNodes collapses chain's collinear interior nodes, keeping only the
// chain's two endpoints and every node where travel direction changes —
// these are the wire boundaries emit segments chain into.
func (r *Router) bendNodes(chain []gnode.NodeIndex) []gnode.NodeIndex {
	positions := make([]geom.Point, len(chain))
	for i, n := range chain {
		node, _ := r.graph.Node(n)
		positions[i] = node.Position
	}

	out := []gnode.NodeIndex{chain[0]}
	for i := 1; i < len(positions)-1; i++ {
		prevDir := directionBetween(positions[i-1], positions[i])
		nextDir := directionBetween(positions[i], positions[i+1])
		if prevDir != nextDir {
			out = append(out, chain[i])
		}
	}
	if len(chain) > 1 {
		out = append(out, chain[len(chain)-1])
	}
	return out
}

func (r *Router) toVertex(p geom.Point) Vertex {
	x, y := float32(p.X), float32(p.Y)
	if r.cfg.centering {
		x += 0.5
		y += 0.5
	}
	return Vertex{X: x, Y: y}
}

func directionBetween(a, b geom.Point) geom.Direction {
	switch {
	case b.X > a.X:
		return geom.DirPosX
	case b.X < a.X:
		return geom.DirNegX
	case b.Y > a.Y:
		return geom.DirPosY
	case b.Y < a.Y:
		return geom.DirNegY
	default:
		return geom.DirNone
	}
}
