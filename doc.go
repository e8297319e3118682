// Package dragon provides integer lattice curves and the algebra to compose
// and transform them, and uses it to construct the [Heighway dragon].
//
// # Curves
//
// A [Curve] is an ordered sequence of [Point] values on the integer lattice.
// Adjacent points are connected by straight segments ([Segment]). Curves
// carry no state besides their points: every operation is a function of the
// coordinates alone, and there is no hidden normalization between
// operations.
//
// Transforms come in two flavors. [Curve.Translate], [Curve.RotateLeft],
// [Curve.RotateRight], [Curve.Transform], [Curve.MoveStartTo],
// [Curve.MoveEndTo], [Curve.Justify] and [Curve.Reverse] modify the curve in
// place and return it, so that calls can be chained. [Curve.Join] and
// [Curve.Expand] consume their inputs and return a new curve.
//
// Rotations are about the origin, not about a point of the curve. Since
// rotation and translation do not commute, the order in which transforms
// are applied matters. To rotate about another center, translate the curve
// so that the center is at the origin first.
//
// # Coordinates
//
// All arithmetic is exact integer arithmetic. Overflow is not detected; it
// is the caller's responsibility to keep coordinates in range.
//
// The package does not fix an orientation for the y axis. [RotateLeft] maps
// ⟨1, 0⟩ to ⟨0, 1⟩, which is counter-clockwise when y grows upwards and
// clockwise on a text grid, where y grows downwards.
//
// # Expansion
//
// [Curve.Expand] does not add points between the existing ones at their
// original scale. Instead it scales the curve up by the factor and places
// factor−1 new points on each scaled segment, so that every point lands on
// the lattice without rounding. Renderers that size their output from
// [Curve.BottomRight] pick up the new scale automatically.
//
// # Dragon curves
//
// [Build] constructs the dragon curve of a given order by repeatedly
// joining the curve with a reversed, rotated copy of itself. The number of
// points doubles with every order (see [Len]), which is why Build refuses
// orders above [MaxOrder].
//
// [Heighway dragon]: https://en.wikipedia.org/wiki/Dragon_curve
package dragon
