package gnode_test

import (
	"testing"

	"github.com/ortholayer/gridroute/geom"
	"github.com/ortholayer/gridroute/gnode"
	"github.com/stretchr/testify/require"
)

func TestStoreAddGetStableIndices(t *testing.T) {
	s := gnode.NewStore(0)
	i0 := s.Add(gnode.Node{Position: geom.Point{X: 0, Y: 0}, Legal: geom.DirAll})
	i1 := s.Add(gnode.Node{Position: geom.Point{X: 1, Y: 0}, Legal: geom.DirAll})
	require.Equal(t, gnode.NodeIndex(0), i0)
	require.Equal(t, gnode.NodeIndex(1), i1)
	require.Equal(t, 2, s.Len())

	n0, ok := s.Get(i0)
	require.True(t, ok)
	require.Equal(t, geom.Point{X: 0, Y: 0}, n0.Position)
}

func TestStoreGetOutOfRangeOrSentinel(t *testing.T) {
	s := gnode.NewStore(0)
	_, ok := s.Get(gnode.Sentinel)
	require.False(t, ok)
	_, ok = s.Get(gnode.NodeIndex(42))
	require.False(t, ok)
}

func TestNeighborListGetSet(t *testing.T) {
	nl := gnode.NeighborList{PosX: gnode.Sentinel, NegX: gnode.Sentinel, PosY: gnode.Sentinel, NegY: gnode.Sentinel}
	require.True(t, nl.Empty())
	nl.Set(geom.DirPosX, gnode.NodeIndex(7))
	require.Equal(t, gnode.NodeIndex(7), nl.Get(geom.DirPosX))
	require.Equal(t, gnode.Sentinel, nl.Get(geom.DirNegX))
	require.False(t, nl.Empty())
}

func TestNodeCanLeave(t *testing.T) {
	n := gnode.Node{
		Legal:     geom.DirPosX | geom.DirPosY,
		Neighbors: gnode.NeighborList{PosX: gnode.Sentinel, NegX: gnode.Sentinel, PosY: gnode.Sentinel, NegY: gnode.Sentinel},
	}
	n.Neighbors.Set(geom.DirPosX, gnode.NodeIndex(1))
	n.Neighbors.Set(geom.DirNegX, gnode.NodeIndex(2))

	require.True(t, n.CanLeave(geom.DirPosX), "legal and linked")
	require.False(t, n.CanLeave(geom.DirNegX), "linked but not legal")
	require.False(t, n.CanLeave(geom.DirPosY), "legal but not linked")
}
