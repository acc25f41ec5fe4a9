package conveyor

import (
	"boardline/cell"
	"boardline/engine"
	"boardline/stats"
	"boardline/wood"
)

// decider is the policy-specific hook: decide how far to move the board
// right now, or report that no move should be attempted this tick.
type decider interface {
	decide(w *wood.Wood, cells []cell.Cell) (distance float64, ok bool)
}

// phase tracks where in the shared move protocol (spec.md §4.5) a Conveyor
// currently sits.
type phase int

const (
	phaseDeciding phase = iota
	phaseDraining
	phaseMoving
)

// Conveyor is the actor that periodically preempts every Cell to advance
// the board, per the shared protocol in spec.md §4.5. The three policy
// variants (Dumb, GreedyDistance, GreedyBusyness) differ only in how they
// decide the move distance D.
type Conveyor struct {
	params Params
	wood   *wood.Wood
	cells  []cell.Cell
	stats  *stats.WoodStats
	decide decider

	phase    phase
	distance float64
}

// New constructs a Conveyor whose policy is selected by params.Kind.
// cells is the full cell roster; the GreedyBusyness policy filters rakes
// out of its own forecast internally.
func New(params Params, w *wood.Wood, cells []cell.Cell, woodStats *stats.WoodStats) (*Conveyor, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	var d decider
	switch params.Kind {
	case KindDumb:
		d = dumbDecider{moveIncrement: params.MoveIncrement}
	case KindGreedyDistance:
		d = greedyDistanceDecider{}
	case KindGreedyBusyness:
		d = greedyBusynessDecider{optimizationIncrement: params.OptimizationIncrement}
	default:
		return nil, ErrUnknownKind
	}

	return &Conveyor{
		params: params,
		wood:   w,
		cells:  cells,
		stats:  woodStats,
		decide: d,
	}, nil
}

// Params returns the conveyor's static configuration.
func (c *Conveyor) Params() Params { return c.params }

// Draw is opaque; visualization derives the board's position from
// wood.TotalTranslated() directly rather than from conveyor geometry.
func (c *Conveyor) Draw() []engine.Geometry { return nil }

// Step implements the shared move protocol of spec.md §4.5: decide a
// distance, drain outstanding work-locks, move, and report the travel time.
func (c *Conveyor) Step(now float64) (*float64, error) {
	if c.phase == phaseMoving {
		c.stats.Stop()
		c.phase = phaseDeciding
	}

	if c.phase == phaseDraining {
		if !c.wood.ReadyForMove() {
			return nil, nil
		}
		if err := c.wood.Move(c.distance); err != nil {
			return nil, err
		}
		elapsed := c.distance / c.params.MoveSpeed
		c.stats.Start()
		c.phase = phaseMoving
		return engine.Sleep(elapsed), nil
	}

	distance, ok := c.decide.decide(c.wood, c.cells)
	if !ok || distance <= 0 {
		return nil, nil
	}

	c.distance = distance
	c.wood.ScheduleMove()
	c.phase = phaseDraining
	return nil, nil
}
