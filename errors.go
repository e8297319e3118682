package dragon

import "errors"

var (
	// ErrEmptyCurve is the panic value (possibly wrapped) of boundary queries on
	// a curve without points.
	ErrEmptyCurve = errors.New("dragon: curve has no points")
	// ErrInvalidFactor indicates an expansion factor smaller than one.
	ErrInvalidFactor = errors.New("dragon: expansion factor must be positive")
	// ErrFactorTooLarge indicates an expansion factor whose result would not
	// fit in memory addressable by an int.
	ErrFactorTooLarge = errors.New("dragon: expansion factor too large")
	// ErrNegativeOrder indicates a negative dragon order.
	ErrNegativeOrder = errors.New("dragon: order must not be negative")
	// ErrOrderTooLarge indicates a dragon order above MaxOrder.
	ErrOrderTooLarge = errors.New("dragon: order too large")
)
