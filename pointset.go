package dragon

// PointSet is a membership index over the points of a curve. It answers the
// same two queries a renderer needs from a [Curve], in constant time per
// lookup.
type PointSet struct {
	points map[Point]struct{}
	bbox   Rect
}

// NewPointSet indexes the points of c. c must not be empty.
func NewPointSet(c Curve) PointSet {
	set := PointSet{
		points: make(map[Point]struct{}, len(c)),
		bbox:   c.BoundingBox(),
	}
	for _, pt := range c {
		set.points[pt] = struct{}{}
	}
	return set
}

// Contains reports whether pt is a point of the indexed curve.
func (s PointSet) Contains(pt Point) bool {
	_, ok := s.points[pt]
	return ok
}

// Len returns the number of distinct points.
func (s PointSet) Len() int { return len(s.points) }

func (s PointSet) BoundingBox() Rect  { return s.bbox }
func (s PointSet) TopLeft() Point     { return s.bbox.TopLeft() }
func (s PointSet) BottomRight() Point { return s.bbox.BottomRight() }
