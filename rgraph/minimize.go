package rgraph

import (
	"github.com/ortholayer/gridroute/geom"
	"github.com/ortholayer/gridroute/gnode"
)

// foldCollinear removes, to fixpoint, every non-anchor node whose only
// usable neighbors (legal and linked) are a single collinear pair —
// {+X,-X} or {+Y,-Y} — since such a node is never a turning point and a
// path through it is equivalent to its two neighbors linking directly to
// each other. store and index are mutated in place; index is rebuilt
// after compaction so FindNode never resolves a removed position.
//
// Box-corner nodes never fold (their legal mask is always a
// perpendicular pair, never collinear) and anchors are excluded outright.
// Plain trellis-intersection nodes carry legal=DirAll, so whether one
// folds depends entirely on how many of its four neighbor slots the
// sweep-linking pass actually populated — a row or column with only two
// realized links on either side of it is exactly the genuine two-way
// pass-through this pass is for.
func foldCollinear(store *gnode.Store, index map[geom.Point]gnode.NodeIndex) {
	removed := make([]bool, store.Len())

	for {
		changed := false
		for i := 0; i < store.Len(); i++ {
			if removed[i] {
				continue
			}
			idx := gnode.NodeIndex(i)
			n, _ := store.Get(idx)
			if n.IsAnchor {
				continue
			}

			used := usedDirections(n)
			switch used {
			case geom.DirPosX | geom.DirNegX:
				foldPair(store, idx, geom.DirPosX, geom.DirNegX)
				removed[i] = true
				changed = true
			case geom.DirPosY | geom.DirNegY:
				foldPair(store, idx, geom.DirPosY, geom.DirNegY)
				removed[i] = true
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	compact(store, index, removed)
}

func usedDirections(n gnode.Node) geom.Direction {
	var used geom.Direction
	for _, d := range geom.Singletons() {
		if n.CanLeave(d) {
			used |= d
		}
	}
	return used
}

// foldPair relinks idx's two neighbors along axis {d, opposite of d} to
// each other, bypassing idx.
func foldPair(store *gnode.Store, idx gnode.NodeIndex, d, opp geom.Direction) {
	n, _ := store.Get(idx)
	farSide := n.Neighbors.Get(d)
	nearSide := n.Neighbors.Get(opp)

	if farSide != gnode.Sentinel {
		f, _ := store.Get(farSide)
		f.Neighbors.Set(opp, nearSide)
		store.Set(farSide, f)
	}
	if nearSide != gnode.Sentinel {
		near, _ := store.Get(nearSide)
		near.Neighbors.Set(d, farSide)
		store.Set(nearSide, near)
	}
}

// compact rewrites store and index to exclude every removed node,
// renumbering the surviving nodes' NodeIndex values and remapping every
// surviving Neighbors reference accordingly.
func compact(store *gnode.Store, index map[geom.Point]gnode.NodeIndex, removed []bool) {
	old := store.All()
	remap := make([]gnode.NodeIndex, len(old))
	kept := make([]gnode.Node, 0, len(old))

	for i, n := range old {
		if removed[i] {
			remap[i] = gnode.Sentinel
			continue
		}
		remap[i] = gnode.NodeIndex(len(kept))
		kept = append(kept, n)
	}

	translate := func(idx gnode.NodeIndex) gnode.NodeIndex {
		if idx == gnode.Sentinel {
			return gnode.Sentinel
		}
		return remap[idx]
	}

	newStore := gnode.NewStore(len(kept))
	for _, n := range kept {
		n.Neighbors.PosX = translate(n.Neighbors.PosX)
		n.Neighbors.NegX = translate(n.Neighbors.NegX)
		n.Neighbors.PosY = translate(n.Neighbors.PosY)
		n.Neighbors.NegY = translate(n.Neighbors.NegY)
		newStore.Add(n)
	}

	*store = *newStore
	for p, idx := range index {
		if removed[idx] {
			delete(index, p)
			continue
		}
		index[p] = remap[idx]
	}
}
