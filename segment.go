package dragon

import (
	"iter"
)

// Segment is the straight connection between two adjacent points of a
// [Curve].
type Segment struct {
	// The segment's start point.
	P0 Point
	// The segment's end point.
	P1 Point
}

// Vec returns the displacement from P0 to P1.
func (s Segment) Vec() Vec2 {
	return s.P1.Sub(s.P0)
}

// IsAxisAligned reports whether the segment is horizontal or vertical.
// Degenerate segments count as axis-aligned.
func (s Segment) IsAxisAligned() bool {
	return s.P0.X == s.P1.X || s.P0.Y == s.P1.Y
}

func (s Segment) Translate(v Vec2) Segment {
	return Segment{
		P0: s.P0.Translate(v),
		P1: s.P1.Translate(v),
	}
}

func (s Segment) Transform(aff Affine) Segment {
	return Segment{
		P0: s.P0.Transform(aff),
		P1: s.P1.Transform(aff),
	}
}

func (s Segment) Reverse() Segment {
	return Segment{P0: s.P1, P1: s.P0}
}

func (s Segment) BoundingBox() Rect {
	return NewRectFromPoints(s.P0, s.P1)
}

func (s Segment) Start() Point { return s.P0 }
func (s Segment) End() Point   { return s.P1 }

// Subdivide yields the factor points j·P0 + i·P1 for i = 1..factor and
// j = factor − i. They split the segment, scaled up by factor, into factor
// collinear pieces; the scaled start point j·P0 itself is not yielded.
//
// Subdivide yields nothing if factor < 1.
func (s Segment) Subdivide(factor int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := 1; i <= factor; i++ {
			if !yield(s.P0.Weigh(s.P1, factor-i, i)) {
				return
			}
		}
	}
}
