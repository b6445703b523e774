package rgraph

import (
	"github.com/ortholayer/gridroute/geom"
)

// cornerLegal returns the two outward directions for one of a box's four
// corners, used as that candidate node's legal mask. Corners is ordered
// bottom-left, bottom-right, top-right, top-left (geom.BoundingBox.Corners).
func cornerLegal(which int) geom.Direction {
	switch which {
	case 0: // bottom-left
		return geom.DirNegX | geom.DirNegY
	case 1: // bottom-right
		return geom.DirPosX | geom.DirNegY
	case 2: // top-right
		return geom.DirPosX | geom.DirPosY
	default: // top-left
		return geom.DirNegX | geom.DirPosY
	}
}

// insideAnyBox reports whether p lies in the strict interior of any box.
func insideAnyBox(p geom.Point, boxes []geom.BoundingBox) bool {
	for _, b := range boxes {
		if b.Contains(p) {
			return true
		}
	}
	return false
}

// segmentCrossesObstacleH reports whether the open horizontal segment
// between (x1,y) and (x2,y) passes through the strict interior of any
// box in boxes.
func segmentCrossesObstacleH(x1, x2, y int32, boxes []geom.BoundingBox) bool {
	for _, b := range boxes {
		minX, maxX := b.Min().X, b.Max().X
		minY, maxY := b.Min().Y, b.Max().Y
		if minY < y && y < maxY && x1 < maxX && minX < x2 {
			return true
		}
	}
	return false
}

// segmentCrossesObstacleV reports whether the open vertical segment
// between (x,y1) and (x,y2) passes through the strict interior of any
// box in boxes.
func segmentCrossesObstacleV(x, y1, y2 int32, boxes []geom.BoundingBox) bool {
	for _, b := range boxes {
		minX, maxX := b.Min().X, b.Max().X
		minY, maxY := b.Min().Y, b.Max().Y
		if minX < x && x < maxX && y1 < maxY && minY < y2 {
			return true
		}
	}
	return false
}
