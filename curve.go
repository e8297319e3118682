package dragon

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"
)

// Curve is an ordered sequence of lattice points. Adjacent points are
// connected by straight segments, so the order determines both the
// direction of the curve and its shape.
//
// A valid curve has at least one point. The boundary queries ([Curve.Start],
// [Curve.End], [Curve.TopLeft], [Curve.BottomRight]) panic with an error
// wrapping [ErrEmptyCurve] when called on an empty curve.
//
// Transforms such as [Curve.Translate] and [Curve.RotateLeft] modify the
// points in place and return the receiver, so that they can be chained.
// [Curve.Join] and [Curve.Expand] consume their inputs: after calling them,
// only the returned curve may be used. A curve must not be transformed by
// several goroutines at once.
type Curve []Point

func (c Curve) checkEmpty(op string) {
	if len(c) == 0 {
		panic(fmt.Errorf("%s: %w", op, ErrEmptyCurve))
	}
}

// Len returns the number of points.
func (c Curve) Len() int { return len(c) }

// Start returns the first point.
func (c Curve) Start() Point {
	c.checkEmpty("Start")
	return c[0]
}

// End returns the last point.
func (c Curve) End() Point {
	c.checkEmpty("End")
	return c[len(c)-1]
}

// TopLeft returns the componentwise minimum of all points. It is the top left
// corner of the bounding box and need not be a point of the curve.
func (c Curve) TopLeft() Point {
	c.checkEmpty("TopLeft")
	return c.BoundingBox().TopLeft()
}

// BottomRight returns the componentwise maximum of all points.
func (c Curve) BottomRight() Point {
	c.checkEmpty("BottomRight")
	return c.BoundingBox().BottomRight()
}

// BoundingBox returns the smallest rectangle that contains all points.
func (c Curve) BoundingBox() Rect {
	c.checkEmpty("BoundingBox")
	bbox := NewRectFromPoints(c[0], c[0])
	for _, pt := range c[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	return bbox
}

// Contains reports whether pt is one of the curve's points. Points that
// merely lie on a segment between two points do not count.
func (c Curve) Contains(pt Point) bool {
	return slices.Contains(c, pt)
}

// Transform applies aff to every point, in place.
func (c Curve) Transform(aff Affine) Curve {
	for i, pt := range c {
		c[i] = pt.Transform(aff)
	}
	return c
}

// Translate moves every point by v, in place.
func (c Curve) Translate(v Vec2) Curve {
	for i, pt := range c {
		c[i] = pt.Translate(v)
	}
	return c
}

// RotateLeft rotates every point a quarter turn about the origin, mapping
// (x, y) to (−y, x). Translate first to rotate about a different center.
func (c Curve) RotateLeft() Curve {
	return c.Transform(RotateLeft)
}

// RotateRight rotates every point a quarter turn about the origin, mapping
// (x, y) to (y, −x).
func (c Curve) RotateRight() Curve {
	return c.Transform(RotateRight)
}

// MoveStartTo translates the curve so that its start point becomes pt.
func (c Curve) MoveStartTo(pt Point) Curve {
	return c.Translate(pt.Sub(c.Start()))
}

// MoveEndTo translates the curve so that its end point becomes pt.
func (c Curve) MoveEndTo(pt Point) Curve {
	return c.Translate(pt.Sub(c.End()))
}

// Justify translates the curve so that the top left corner of its bounding
// box is the origin. Justifying a justified curve has no effect.
func (c Curve) Justify() Curve {
	return c.Translate(Point{}.Sub(c.TopLeft()))
}

// Reverse reverses the order of the points, in place.
func (c Curve) Reverse() Curve {
	slices.Reverse(c)
	return c
}

// Clone returns a copy of c that does not share storage with c.
func (c Curve) Clone() Curve {
	return slices.Clone(c)
}

// Expand returns a curve that replaces each segment of c with factor
// collinear segments. Rather than adding points between the existing ones,
// Expand scales the whole curve up by factor: for every segment (p1, p2) it
// emits j·p1 + i·p2 for i = 1..factor and j = factor − i. The first point of
// the result is the start of c, scaled by factor.
//
// Expand returns an error wrapping [ErrInvalidFactor] if factor < 1, and
// one wrapping [ErrFactorTooLarge] if the number of resulting points would
// overflow an int. Coordinates may still overflow for large factors.
func (c Curve) Expand(factor int) (Curve, error) {
	if factor < 1 {
		return nil, fmt.Errorf("expand by %d: %w", factor, ErrInvalidFactor)
	}
	start := c.Start()
	if factor > (math.MaxInt-1)/max(len(c)-1, 1) {
		return nil, fmt.Errorf("expand %d segments by %d: %w", len(c)-1, factor, ErrFactorTooLarge)
	}
	out := make(Curve, 1, 1+(len(c)-1)*factor)
	out[0] = start.Scale(factor)
	for seg := range c.Segments() {
		for pt := range seg.Subdivide(factor) {
			out = append(out, pt)
		}
	}
	return out, nil
}

// MustExpand is like [Curve.Expand] but panics on error.
func (c Curve) MustExpand(factor int) Curve {
	out, err := c.Expand(factor)
	if err != nil {
		panic(err)
	}
	return out
}

// Join connects other to the end of c. The last point of c is dropped, and
// other is translated so that its start takes the dropped point's place. The
// result runs along c and then along other.
//
// Join consumes both curves; the result may share storage with either.
func (c Curve) Join(other Curve) Curve {
	end := c.End()
	other.MoveStartTo(end)
	return append(c[:len(c)-1], other...)
}

// Points returns an iterator over the curve's points.
func (c Curve) Points() iter.Seq[Point] {
	return slices.Values(c)
}

// Segments returns an iterator over the segments between adjacent points.
// A curve with a single point has no segments.
func (c Curve) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for i := 1; i < len(c); i++ {
			if !yield(Segment{P0: c[i-1], P1: c[i]}) {
				return
			}
		}
	}
}

// Turns returns an iterator over the turns taken at each interior point of
// the curve.
func (c Curve) Turns() iter.Seq[Turn] {
	return func(yield func(Turn) bool) {
		for i := 2; i < len(c); i++ {
			if !yield(turnBetween(c[i-1].Sub(c[i-2]), c[i].Sub(c[i-1]))) {
				return
			}
		}
	}
}

func (c Curve) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, pt := range c {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(pt.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Turn describes the change of direction between two consecutive segments.
type Turn uint8

const (
	Straight Turn = iota
	// Left is a quarter turn in the direction of [RotateLeft].
	Left
	Right
	// Back means the curve doubles back on itself.
	Back
)

func (t Turn) String() string {
	switch t {
	case Straight:
		return "S"
	case Left:
		return "L"
	case Right:
		return "R"
	case Back:
		return "B"
	default:
		return fmt.Sprintf("Turn(%d)", t)
	}
}

func turnBetween(in, out Vec2) Turn {
	switch cross := in.Cross(out); {
	case cross > 0:
		return Left
	case cross < 0:
		return Right
	case in.Dot(out) < 0:
		return Back
	default:
		return Straight
	}
}
