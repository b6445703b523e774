package persist_test

import (
	"path/filepath"
	"testing"

	"github.com/ortholayer/gridroute/geom"
	"github.com/ortholayer/gridroute/persist"
	"github.com/ortholayer/gridroute/rgraph"
	"github.com/stretchr/testify/require"
)

func buildTestGraph(t *testing.T) *rgraph.Graph {
	t.Helper()
	box := geom.BoundingBox{Center: geom.Point{X: 5, Y: 0}, HalfWidth: 2, HalfHeight: 2}
	anchors := []rgraph.Anchor{
		{Position: geom.Point{X: 0, Y: 0}, Box: rgraph.NoBox, Connect: geom.DirAll},
		{Position: geom.Point{X: 10, Y: 0}, Box: rgraph.NoBox, Connect: geom.DirAll},
		{Position: geom.Point{X: 5, Y: 6}, Box: rgraph.NoBox, Connect: geom.DirAll},
	}
	g, err := rgraph.NewBuilder().Build(anchors, []geom.BoundingBox{box})
	require.NoError(t, err)
	return g
}

func TestSerializeDeserializeRoundTripsNodesAndIndices(t *testing.T) {
	g := buildTestGraph(t)
	path := filepath.Join(t.TempDir(), "graph.db")

	require.NoError(t, persist.Serialize(g, path))
	reloaded, err := persist.Deserialize(path)
	require.NoError(t, err)

	require.Equal(t, g.NodeCount(), reloaded.NodeCount())
	before := g.Nodes()
	after := reloaded.Nodes()
	require.Equal(t, before, after, "node order and contents must round-trip exactly")

	for _, n := range before {
		require.Equal(t, g.FindNode(n.Position), reloaded.FindNode(n.Position), "spatial index must resolve to the same NodeIndex after a round trip")
	}
}

func TestSerializeDeserializeRoundTripsObstacles(t *testing.T) {
	g := buildTestGraph(t)
	path := filepath.Join(t.TempDir(), "graph.db")

	require.NoError(t, persist.Serialize(g, path))
	reloaded, err := persist.Deserialize(path)
	require.NoError(t, err)

	require.Equal(t, g.Obstacles(), reloaded.Obstacles())
}

func TestDeserializeMissingFileReturnsIOError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.db")
	_, err := persist.Deserialize(path)
	require.ErrorIs(t, err, persist.ErrIO)
}

func TestSerializeOverwritesExistingFile(t *testing.T) {
	g := buildTestGraph(t)
	path := filepath.Join(t.TempDir(), "graph.db")

	require.NoError(t, persist.Serialize(g, path))
	require.NoError(t, persist.Serialize(g, path))

	reloaded, err := persist.Deserialize(path)
	require.NoError(t, err)
	require.Equal(t, g.NodeCount(), reloaded.NodeCount())
}
