package rgraph

import (
	"fmt"
	"sort"

	"github.com/ortholayer/gridroute/geom"
	"github.com/ortholayer/gridroute/gnode"
)

// BuildOption configures a Builder. Follows the teacher corpus's
// functional-options convention (dijkstra.WithMaxDistance and friends).
type BuildOption func(*buildConfig)

type buildConfig struct {
	minimal bool
}

// WithMinimal enables the post-linking fold pass that removes degree-2
// collinear non-anchor nodes, relinking their two surviving neighbors to
// each other. Iterates to fixpoint.
func WithMinimal() BuildOption {
	return func(c *buildConfig) { c.minimal = true }
}

// Builder constructs a Graph from a set of anchors and obstacle bounding
// boxes. The zero Builder is ready to use.
type Builder struct{}

// NewBuilder returns a ready-to-use Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

type candidate struct {
	pos      geom.Point
	isAnchor bool
	legal    geom.Direction
}

// Build implements the sparse orthogonal graph construction: seed nodes
// from anchors and obstacle corners, extend a horizontal and vertical
// line through every seed, add every pairwise line intersection that
// does not fall inside an obstacle as an auxiliary node, then sweep-link
// horizontal and vertical neighbors with obstacle-crossing checks, and
// finally run the optional WithMinimal folding pass.
//
// Every coordinate an obstacle boundary could ever need is already a
// corner seed's own x or y value, so the seed+intersection grid alone is
// sufficient to route around obstacles without a separate ray-casting
// pass: extending a line from any other seed through that coordinate
// reaches the obstacle face directly.
//
// A box corner may only be left along its two outward directions, so no
// path runs along a box face from one corner to the next. A detour around
// a box therefore needs a row or column beyond the box, which exists only
// if some other seed contributes that coordinate.
//
// Degenerate input (zero-area boxes, duplicate anchor positions) never
// produces an error — only a smaller-than-expected but well-formed graph.
func (b *Builder) Build(anchors []Anchor, boxes []geom.BoundingBox, opts ...BuildOption) (*Graph, error) {
	cfg := buildConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validateAnchors(anchors, boxes); err != nil {
		return nil, err
	}

	candidates := make(map[geom.Point]*candidate)
	seeds := make(map[geom.Point]bool)
	add := func(p geom.Point, isAnchor bool, legal geom.Direction) {
		if c, ok := candidates[p]; ok {
			c.legal |= legal
			c.isAnchor = c.isAnchor || isAnchor
			return
		}
		candidates[p] = &candidate{pos: p, isAnchor: isAnchor, legal: legal}
	}

	for _, a := range anchors {
		add(a.Position, true, a.Connect)
		seeds[a.Position] = true
	}
	for _, box := range boxes {
		corners := box.Corners()
		for i, corner := range corners {
			add(corner, false, cornerLegal(i))
			seeds[corner] = true
		}
	}

	ys := make(map[int32]bool, len(seeds))
	xs := make(map[int32]bool, len(seeds))
	for p := range seeds {
		ys[p.Y] = true
		xs[p.X] = true
	}
	for y := range ys {
		for x := range xs {
			p := geom.Point{X: x, Y: y}
			if seeds[p] || insideAnyBox(p, boxes) {
				continue
			}
			add(p, false, geom.DirAll)
		}
	}

	points := make([]geom.Point, 0, len(candidates))
	for p := range candidates {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Less(points[j]) })

	store := gnode.NewStore(len(points))
	index := make(map[geom.Point]gnode.NodeIndex, len(points))
	for _, p := range points {
		c := candidates[p]
		idx := store.Add(gnode.Node{
			Position:  p,
			IsAnchor:  c.isAnchor,
			Legal:     c.legal,
			Neighbors: gnode.NeighborList{PosX: gnode.Sentinel, NegX: gnode.Sentinel, PosY: gnode.Sentinel, NegY: gnode.Sentinel},
		})
		index[p] = idx
	}

	linkHorizontal(store, points, boxes)
	linkVertical(store, index, boxes)

	if cfg.minimal {
		foldCollinear(store, index)
	}

	return &Graph{nodes: store, index: index, obstacles: append([]geom.BoundingBox(nil), boxes...)}, nil
}

func validateAnchors(anchors []Anchor, boxes []geom.BoundingBox) error {
	for _, a := range anchors {
		if a.Box != NoBox {
			if int(a.Box) >= len(boxes) {
				return fmt.Errorf("rgraph: anchor at %s: %w", a.Position, ErrBoxIndexOutOfRange)
			}
			own := boxes[a.Box]
			if !own.OnBoundary(a.Position) {
				return fmt.Errorf("rgraph: anchor at %s: %w", a.Position, ErrAnchorOffBoxBoundary)
			}
		}
		for i, box := range boxes {
			if BoxIndex(i) == a.Box {
				continue
			}
			if box.Contains(a.Position) {
				return fmt.Errorf("rgraph: anchor at %s: %w", a.Position, ErrAnchorInsideBox)
			}
		}
	}
	return nil
}
