package conveyor

import "errors"

var (
	// ErrUnknownKind is returned when a Params.Kind does not match any
	// known policy.
	ErrUnknownKind = errors.New("conveyor: unknown kind")
	// ErrNonPositiveMoveSpeed is returned when Params.MoveSpeed is <= 0.
	ErrNonPositiveMoveSpeed = errors.New("conveyor: move speed must be positive")
	// ErrNonPositiveMoveIncrement is returned when a Dumb conveyor's
	// MoveIncrement is <= 0.
	ErrNonPositiveMoveIncrement = errors.New("conveyor: move increment must be positive")
	// ErrNonPositiveOptimizationIncrement is returned when a GreedyBusyness
	// conveyor's OptimizationIncrement is <= 0.
	ErrNonPositiveOptimizationIncrement = errors.New("conveyor: optimization increment must be positive")
)
