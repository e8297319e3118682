package dragon

import (
	"fmt"
)

// Rect is an axis-aligned rectangle on the lattice. Both corners are
// inclusive: a Rect with X0 == X1 and Y0 == Y1 still covers one point.
type Rect struct {
	X0, Y0 int
	X1, Y1 int
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// X0 <= X1 and Y0 <= Y1.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromOrigin returns the rectangle that covers size cells, extending to the
// right and down from origin.
func NewRectFromOrigin(origin Point, size Size) Rect {
	return Rect{
		X0: origin.X,
		Y0: origin.Y,
		X1: origin.X + size.Width - 1,
		Y1: origin.Y + size.Height - 1,
	}
}

// Abs returns a new rectangle with the same extents as r, but ensuring that
// X0 <= X1 and Y0 <= Y1.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("%s–%s", r.TopLeft(), r.BottomRight())
}

// TopLeft returns the corner with the smallest coordinates.
//
// This is the top left corner in a y-down space.
func (r Rect) TopLeft() Point {
	return Point{
		X: r.X0,
		Y: r.Y0,
	}
}

// BottomRight returns the corner with the largest coordinates.
func (r Rect) BottomRight() Point {
	return Point{
		X: r.X1,
		Y: r.Y1,
	}
}

// Width returns the rectangle's width, defined as X1 − X0.
func (r Rect) Width() int {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0.
func (r Rect) Height() int {
	return r.Y1 - r.Y0
}

// Size returns the number of lattice cells the rectangle covers in each
// direction. This is one more than [Rect.Width] and [Rect.Height].
func (r Rect) Size() Size {
	return Size{
		Width:  r.Width() + 1,
		Height: r.Height() + 1,
	}
}

// Contains reports whether pt lies inside r or on its border.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// A succession of UnionPoint operations on a series of points, starting from
// the rectangle covering only the first point, yields their bounding box.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

func (r Rect) Translate(v Vec2) Rect {
	return Rect{
		X0: r.X0 + v.X,
		Y0: r.Y0 + v.Y,
		X1: r.X1 + v.X,
		Y1: r.Y1 + v.Y,
	}
}
