package wood

import "errors"

// ErrMoveScheduled is a coordination signal, not a bug: WorkLock returns it
// once a move has been scheduled and no new work-locks may be acquired.
// Cells catch it with errors.Is and transition to a waiting state; every
// other caller must propagate it.
var ErrMoveScheduled = errors.New("wood: move scheduled, no new work locks")

// ErrMovedWhileWorkActive indicates a protocol violation: Move was called
// while at least one work-lock was outstanding.
var ErrMovedWhileWorkActive = errors.New("wood: moved while work active")

// ErrNoWorkLock indicates Pick was called without the caller holding a
// work-lock.
var ErrNoWorkLock = errors.New("wood: pick attempted without a work lock")

// ErrInvalidPickRange indicates a Pick call with start_pos/end_pos outside
// the range 0 <= start < end.
var ErrInvalidPickRange = errors.New("wood: invalid pick range")

// ErrNonPositiveDistance indicates Move was called with a non-positive
// distance.
var ErrNonPositiveDistance = errors.New("wood: move distance must be positive")

// ErrMissingFastenerKind indicates a Wood.Parameters value is missing a
// density entry for one of the four fastener kinds.
var ErrMissingFastenerKind = errors.New("wood: fastener_densities must specify all four kinds")
