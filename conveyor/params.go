// Package conveyor implements the planners that decide how far to advance
// the board each cycle, per spec.md §4.5.
package conveyor

// Kind discriminates the three conveyor policy variants a configuration may
// select (spec.md §6's tagged union).
type Kind string

const (
	// KindDumb always moves by a fixed increment.
	KindDumb Kind = "dumb"
	// KindGreedyDistance moves as far as possible without overrunning any
	// cell that could still catch a fastener.
	KindGreedyDistance Kind = "greedy_distance"
	// KindGreedyBusyness searches for the increment that keeps the most
	// cells busy.
	KindGreedyBusyness Kind = "greedy_busyness"
)

// Params is the common configuration every conveyor policy needs, plus the
// policy-specific fields consulted only by the matching Kind.
type Params struct {
	Kind      Kind
	MoveSpeed float64

	// MoveIncrement is consulted only by the Dumb policy.
	MoveIncrement float64

	// OptimizationIncrement is consulted only by the GreedyBusyness policy:
	// the step size it searches over [0, furthest_safe_move) with.
	OptimizationIncrement float64
}
