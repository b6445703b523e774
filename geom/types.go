// Package geom defines the 2D integer-plane primitives shared by every
// other gridroute package: points, axis-aligned bounding boxes, and the
// four-bit cardinal direction set used throughout node legality and
// anchor connection masks.
//
// All coordinates are 32-bit signed integers. Comparisons between points
// are lexicographic on (Y, X) unless stated otherwise, matching the
// row-major sweep order the graph builder relies on for neighbor linking.
package geom

import "fmt"

// Point is a position on the integer routing plane.
type Point struct {
	X, Y int32
}

// Less reports whether p sorts strictly before q in (Y, X) order — the
// row-major sweep order used when linking horizontal neighbors.
func (p Point) Less(q Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// LessCol reports whether p sorts strictly before q in (X, Y) order — the
// column-major sweep order used when linking vertical neighbors.
func (p Point) LessCol(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// ManhattanDistance returns |p.X-q.X| + |p.Y-q.Y|.
func (p Point) ManhattanDistance(q Point) int64 {
	dx := int64(p.X) - int64(q.X)
	dy := int64(p.Y) - int64(q.Y)
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// String implements fmt.Stringer for debugging and test failure messages.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// BoundingBox is the closed axis-aligned rectangle
// [Center.X-HalfWidth, Center.X+HalfWidth] x [Center.Y-HalfHeight, Center.Y+HalfHeight].
type BoundingBox struct {
	Center               Point
	HalfWidth, HalfHeight uint16
}

// Contains reports whether p lies strictly within the open interior of b.
// Points on the boundary are not contained (spec invariant: boundary
// points are never blocked).
func (b BoundingBox) Contains(p Point) bool {
	minX := int64(b.Center.X) - int64(b.HalfWidth)
	maxX := int64(b.Center.X) + int64(b.HalfWidth)
	minY := int64(b.Center.Y) - int64(b.HalfHeight)
	maxY := int64(b.Center.Y) + int64(b.HalfHeight)

	return int64(p.X) > minX && int64(p.X) < maxX && int64(p.Y) > minY && int64(p.Y) < maxY
}

// OnBoundary reports whether p lies on the closed rectangle's edge
// (not strictly inside, not strictly outside).
func (b BoundingBox) OnBoundary(p Point) bool {
	minX := int64(b.Center.X) - int64(b.HalfWidth)
	maxX := int64(b.Center.X) + int64(b.HalfWidth)
	minY := int64(b.Center.Y) - int64(b.HalfHeight)
	maxY := int64(b.Center.Y) + int64(b.HalfHeight)
	x, y := int64(p.X), int64(p.Y)

	if x < minX || x > maxX || y < minY || y > maxY {
		return false
	}
	return x == minX || x == maxX || y == minY || y == maxY
}

// Degenerate reports whether b has zero area (HalfWidth or HalfHeight is 0).
func (b BoundingBox) Degenerate() bool {
	return b.HalfWidth == 0 || b.HalfHeight == 0
}

// Min returns the bottom-left corner of b.
func (b BoundingBox) Min() Point {
	return Point{X: b.Center.X - int32(b.HalfWidth), Y: b.Center.Y - int32(b.HalfHeight)}
}

// Max returns the top-right corner of b.
func (b BoundingBox) Max() Point {
	return Point{X: b.Center.X + int32(b.HalfWidth), Y: b.Center.Y + int32(b.HalfHeight)}
}

// Corners returns the four corners of b in order: bottom-left, bottom-right,
// top-right, top-left.
func (b BoundingBox) Corners() [4]Point {
	mn, mx := b.Min(), b.Max()
	return [4]Point{
		{X: mn.X, Y: mn.Y},
		{X: mx.X, Y: mn.Y},
		{X: mx.X, Y: mx.Y},
		{X: mn.X, Y: mx.Y},
	}
}
