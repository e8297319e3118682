package dragon

import (
	"fmt"
)

// Point is a point on the integer lattice.
type Point struct {
	X int
	Y int
}

// Pt returns the point (x, y).
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%d, %d)", pt.X, pt.Y)
}

func (pt Point) Translate(o Vec2) Point {
	return Point{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Sub computes p−o.
// To subtract a vector from p, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Scale multiplies both coordinates by f.
func (pt Point) Scale(f int) Point {
	return Point{
		X: pt.X * f,
		Y: pt.Y * f,
	}
}

// Weigh returns the weighted sum j·pt + i·o. With j+i = n, this is the point
// that lies i/n of the way from pt to o, in a space scaled up by n.
func (pt Point) Weigh(o Point, j, i int) Point {
	return Point{
		X: j*pt.X + i*o.X,
		Y: j*pt.Y + i*o.Y,
	}
}

// Less reports whether pt sorts before o, comparing x first and y second.
func (pt Point) Less(o Point) bool {
	if pt.X != o.X {
		return pt.X < o.X
	}
	return pt.Y < o.Y
}

// Min returns the componentwise minimum of pt and o. The result need not be
// either of the two points.
func (pt Point) Min(o Point) Point {
	return Point{
		X: min(pt.X, o.X),
		Y: min(pt.Y, o.Y),
	}
}

// Max returns the componentwise maximum of pt and o.
func (pt Point) Max(o Point) Point {
	return Point{
		X: max(pt.X, o.X),
		Y: max(pt.Y, o.Y),
	}
}
