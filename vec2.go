package dragon

import (
	"fmt"
)

// Vec2 is a displacement between two lattice points.
type Vec2 struct {
	X int
	Y int
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y int) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%d, %d⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) int {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the cross product of v and o.
//
// In a y-down coordinate system, a positive cross product means o points
// clockwise of v.
func (v Vec2) Cross(o Vec2) int {
	return v.X*o.Y - v.Y*o.X
}

// Hypot2 returns the squared magnitude of the vector.
func (v Vec2) Hypot2() int {
	return v.Dot(v)
}

// IsZero reports whether v is ⟨0, 0⟩.
func (v Vec2) IsZero() bool {
	return v == Vec2{}
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

func (v Vec2) Mul(f int) Vec2 {
	return Vec2{
		X: v.X * f,
		Y: v.Y * f,
	}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2) Negate() Vec2 {
	return Vec2{
		X: -v.X,
		Y: -v.Y,
	}
}
