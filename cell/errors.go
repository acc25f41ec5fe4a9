package cell

import "errors"

// ErrNonPositiveWidth indicates a cell was configured with a working_width
// that is not strictly positive.
var ErrNonPositiveWidth = errors.New("cell: working_width must be positive")

// ErrNegativeStart indicates a cell was configured with a negative
// start_pos.
var ErrNegativeStart = errors.New("cell: start_pos must be non-negative")

// ErrNonPositiveProbability indicates a pick_probabilities entry outside
// (0, 1].
var ErrNonPositiveProbability = errors.New("cell: pick probabilities must be in (0, 1]")
