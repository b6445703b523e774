package astar_test

import (
	"testing"

	"github.com/ortholayer/gridroute/astar"
	"github.com/ortholayer/gridroute/geom"
	"github.com/ortholayer/gridroute/gnode"
	"github.com/ortholayer/gridroute/replay"
	"github.com/ortholayer/gridroute/rgraph"
	"github.com/stretchr/testify/require"
)

func TestFindPathStraightLine(t *testing.T) {
	anchors := []rgraph.Anchor{
		{Position: geom.Point{X: 0, Y: 0}, Box: rgraph.NoBox, Connect: geom.DirAll},
		{Position: geom.Point{X: 10, Y: 0}, Box: rgraph.NoBox, Connect: geom.DirAll},
	}
	g, err := rgraph.NewBuilder().Build(anchors, nil)
	require.NoError(t, err)

	src := g.FindNode(geom.Point{X: 0, Y: 0})
	dst := g.FindNode(geom.Point{X: 10, Y: 0})

	pf := astar.NewPathfinder(g)
	path, err := pf.FindPath(astar.Query{Source: src, Goals: []gnode.NodeIndex{dst}})
	require.NoError(t, err)
	require.Equal(t, []gnode.NodeIndex{src, dst}, path)
}

func TestFindPathRoutesAroundObstacle(t *testing.T) {
	box := geom.BoundingBox{Center: geom.Point{X: 5, Y: 0}, HalfWidth: 2, HalfHeight: 2}
	// Box corners may only be left outward, so a path cannot run along
	// the box's faces; the (0,6) anchor contributes the y=6 row the
	// detour uses.
	anchors := []rgraph.Anchor{
		{Position: geom.Point{X: 0, Y: 0}, Box: rgraph.NoBox, Connect: geom.DirAll},
		{Position: geom.Point{X: 10, Y: 0}, Box: rgraph.NoBox, Connect: geom.DirAll},
		{Position: geom.Point{X: 0, Y: 6}, Box: rgraph.NoBox, Connect: geom.DirAll},
	}
	g, err := rgraph.NewBuilder().Build(anchors, []geom.BoundingBox{box})
	require.NoError(t, err)

	src := g.FindNode(geom.Point{X: 0, Y: 0})
	dst := g.FindNode(geom.Point{X: 10, Y: 0})

	pf := astar.NewPathfinder(g)
	path, err := pf.FindPath(astar.Query{Source: src, Goals: []gnode.NodeIndex{dst}})
	require.NoError(t, err)
	require.True(t, len(path) > 2, "path must detour around the obstacle")
	require.Equal(t, src, path[0])
	require.Equal(t, dst, path[len(path)-1])
}

func TestFindPathNoPathWhenFullyEnclosed(t *testing.T) {
	outer := geom.BoundingBox{Center: geom.Point{X: 0, Y: 0}, HalfWidth: 20, HalfHeight: 20}
	anchors := []rgraph.Anchor{
		{Position: geom.Point{X: -20, Y: 0}, Box: 0, Connect: geom.DirNegX},
		{Position: geom.Point{X: 30, Y: 0}, Box: rgraph.NoBox, Connect: geom.DirAll},
	}
	g, err := rgraph.NewBuilder().Build(anchors, []geom.BoundingBox{outer})
	require.NoError(t, err)

	src := g.FindNode(geom.Point{X: -20, Y: 0})
	dst := g.FindNode(geom.Point{X: 30, Y: 0})

	pf := astar.NewPathfinder(g)
	_, err = pf.FindPath(astar.Query{Source: src, Goals: []gnode.NodeIndex{dst}})
	require.ErrorIs(t, err, astar.ErrNoPath)
}

func TestFindPathReusesScratchAcrossQueries(t *testing.T) {
	anchors := []rgraph.Anchor{
		{Position: geom.Point{X: 0, Y: 0}, Box: rgraph.NoBox, Connect: geom.DirAll},
		{Position: geom.Point{X: 5, Y: 0}, Box: rgraph.NoBox, Connect: geom.DirAll},
		{Position: geom.Point{X: 0, Y: 5}, Box: rgraph.NoBox, Connect: geom.DirAll},
	}
	g, err := rgraph.NewBuilder().Build(anchors, nil)
	require.NoError(t, err)
	pf := astar.NewPathfinder(g)

	origin := g.FindNode(geom.Point{X: 0, Y: 0})
	east := g.FindNode(geom.Point{X: 5, Y: 0})
	north := g.FindNode(geom.Point{X: 0, Y: 5})

	p1, err := pf.FindPath(astar.Query{Source: origin, Goals: []gnode.NodeIndex{east}})
	require.NoError(t, err)
	require.Len(t, p1, 2)

	p2, err := pf.FindPath(astar.Query{Source: origin, Goals: []gnode.NodeIndex{north}})
	require.NoError(t, err)
	require.Len(t, p2, 2)
}

func TestFindPathFiresReplayHook(t *testing.T) {
	anchors := []rgraph.Anchor{
		{Position: geom.Point{X: 0, Y: 0}, Box: rgraph.NoBox, Connect: geom.DirAll},
		{Position: geom.Point{X: 10, Y: 0}, Box: rgraph.NoBox, Connect: geom.DirAll},
	}
	g, err := rgraph.NewBuilder().Build(anchors, nil)
	require.NoError(t, err)

	var visited, popped, pathNodes []gnode.NodeIndex
	hook := replay.DefaultHook()
	hook.OnVisit = func(n gnode.NodeIndex) { visited = append(visited, n) }
	hook.OnPop = func(n gnode.NodeIndex) { popped = append(popped, n) }
	hook.OnPathNode = func(n gnode.NodeIndex) { pathNodes = append(pathNodes, n) }

	pf := astar.NewPathfinder(g, astar.WithHook(hook))
	src := g.FindNode(geom.Point{X: 0, Y: 0})
	dst := g.FindNode(geom.Point{X: 10, Y: 0})
	path, err := pf.FindPath(astar.Query{Source: src, Goals: []gnode.NodeIndex{dst}})
	require.NoError(t, err)

	require.Contains(t, visited, src)
	require.Contains(t, visited, dst)
	require.Contains(t, popped, src)

	// OnPathNode fires during backtracking, goal to source — the reverse
	// of the returned path's source-to-goal order.
	reversed := make([]gnode.NodeIndex, len(path))
	for i, n := range path {
		reversed[len(path)-1-i] = n
	}
	require.Equal(t, reversed, pathNodes)
}
