package dragon

import (
	"fmt"
)

// MaxOrder is the largest order [Build] accepts. A curve of order n has
// 2ⁿ + 1 points, so MaxOrder bounds memory use at a few tens of megabytes.
const MaxOrder = 20

// Len returns the number of points of the dragon curve of the given order.
// The order 0 curve has two points, and every fold doubles the number of
// segments.
func Len(order int) int {
	return 1<<order + 1
}

// Build constructs the Heighway dragon curve of the given order.
//
// The order 0 curve is the unit segment from (0, 0) to (0, 1). The curve of
// order n is built from the curve of order n−1 by joining it with a copy of
// itself that has been reversed and rotated to the right. Every curve
// returned by Build is justified, i.e. its bounding box starts at the origin.
//
// Build returns an error wrapping [ErrNegativeOrder] or [ErrOrderTooLarge]
// if order is not in [0, MaxOrder].
func Build(order int) (Curve, error) {
	if order < 0 {
		return nil, fmt.Errorf("build order %d: %w", order, ErrNegativeOrder)
	}
	if order > MaxOrder {
		return nil, fmt.Errorf("build order %d (maximum %d): %w", order, MaxOrder, ErrOrderTooLarge)
	}
	return build(order), nil
}

// MustBuild is like [Build] but panics on error.
func MustBuild(order int) Curve {
	c, err := Build(order)
	if err != nil {
		panic(err)
	}
	return c
}

func build(order int) Curve {
	if order == 0 {
		return Curve{Pt(0, 0), Pt(0, 1)}
	}
	first := build(order - 1)
	second := first.Clone().Reverse().RotateRight()
	return first.Join(second).Justify()
}
