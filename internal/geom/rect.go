package geom

import "math"

// Rect is an axis-aligned rectangle. It is both a collision shape and the
// broad-phase envelope of every other shape.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return V(r.X+r.W/2, r.Y+r.H/2)
}

// Bounds returns the rectangle itself.
func (r Rect) Bounds() Rect { return r }

// Kind returns KindRect.
func (Rect) Kind() Kind { return KindRect }

// Intersects reports whether the two rectangles overlap.
// Edges are inclusive: rectangles that only touch count as intersecting.
func (r Rect) Intersects(other Rect) bool {
	if r.X > other.Right() || other.X > r.Right() {
		return false
	}
	if r.Y > other.Bottom() || other.Y > r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether p lies inside or on the border of the rectangle.
func (r Rect) Contains(p Vec) bool {
	return p[0] >= r.X && p[0] <= r.Right() && p[1] >= r.Y && p[1] <= r.Bottom()
}

// Union returns the smallest rectangle covering both r and other.
func (r Rect) Union(other Rect) Rect {
	x0 := math.Min(r.X, other.X)
	y0 := math.Min(r.Y, other.Y)
	x1 := math.Max(r.Right(), other.Right())
	y1 := math.Max(r.Bottom(), other.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// ClosestPoint returns the point of the rectangle nearest to p.
func (r Rect) ClosestPoint(p Vec) Vec {
	return V(ClampF(p[0], r.X, r.Right()), ClampF(p[1], r.Y, r.Bottom()))
}

// Translate returns the rectangle moved by d.
func (r Rect) Translate(d Vec) Rect {
	return Rect{X: r.X + d[0], Y: r.Y + d[1], W: r.W, H: r.H}
}

// Polygon returns the four corners as a counter-clockwise quadrilateral.
// A zero-size rectangle keeps its repeated corners.
func (r Rect) Polygon() Polygon {
	return Polygon{Vertices: []Vec{
		V(r.X, r.Y),
		V(r.Right(), r.Y),
		V(r.Right(), r.Bottom()),
		V(r.X, r.Bottom()),
	}}
}
