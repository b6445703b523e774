package rgraph

import (
	"sort"

	"github.com/ortholayer/gridroute/geom"
	"github.com/ortholayer/gridroute/gnode"
)

// linkHorizontal links every pair of row-adjacent nodes (same Y, nearest
// in X) whose open connecting segment crosses no obstacle interior.
// points must already be sorted by geom.Point.Less (Y major, X minor),
// matching the order nodes were appended to store, so NodeIndex(i) ==
// index of points[i].
func linkHorizontal(store *gnode.Store, points []geom.Point, boxes []geom.BoundingBox) {
	i := 0
	for i < len(points) {
		j := i + 1
		for j < len(points) && points[j].Y == points[i].Y {
			j++
		}
		// points[i:j] is one row, already sorted ascending by X.
		for k := i; k+1 < j; k++ {
			left, right := gnode.NodeIndex(k), gnode.NodeIndex(k+1)
			if segmentCrossesObstacleH(points[k].X, points[k+1].X, points[i].Y, boxes) {
				continue
			}
			ln, _ := store.Get(left)
			ln.Neighbors.Set(geom.DirPosX, right)
			store.Set(left, ln)

			rn, _ := store.Get(right)
			rn.Neighbors.Set(geom.DirNegX, left)
			store.Set(right, rn)
		}
		i = j
	}
}

// linkVertical links every pair of column-adjacent nodes (same X, nearest
// in Y) whose open connecting segment crosses no obstacle interior.
func linkVertical(store *gnode.Store, index map[geom.Point]gnode.NodeIndex, boxes []geom.BoundingBox) {
	points := make([]geom.Point, 0, len(index))
	for p := range index {
		points = append(points, p)
	}
	sort.Slice(points, func(a, b int) bool { return points[a].LessCol(points[b]) })

	i := 0
	for i < len(points) {
		j := i + 1
		for j < len(points) && points[j].X == points[i].X {
			j++
		}
		for k := i; k+1 < j; k++ {
			below, above := index[points[k]], index[points[k+1]]
			if segmentCrossesObstacleV(points[i].X, points[k].Y, points[k+1].Y, boxes) {
				continue
			}
			bn, _ := store.Get(below)
			bn.Neighbors.Set(geom.DirPosY, above)
			store.Set(below, bn)

			an, _ := store.Get(above)
			an.Neighbors.Set(geom.DirNegY, below)
			store.Set(above, an)
		}
		i = j
	}
}
