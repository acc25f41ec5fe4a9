package conveyor

import (
	"boardline/cell"
	"boardline/wood"
)

// dumbDecider always moves by a fixed increment (spec.md §4.5's Dumb
// policy).
type dumbDecider struct {
	moveIncrement float64
}

func (d dumbDecider) decide(w *wood.Wood, cells []cell.Cell) (float64, bool) {
	return d.moveIncrement, true
}

// greedyDistanceDecider moves as far as furthestSafeMove allows, or not at
// all when that is 0 (spec.md §4.5's Greedy-distance policy).
type greedyDistanceDecider struct{}

func (d greedyDistanceDecider) decide(w *wood.Wood, cells []cell.Cell) (float64, bool) {
	move := furthestSafeMove(w, cells)
	if move <= 0 {
		return 0, false
	}
	return move, true
}

// greedyBusynessDecider searches increments of optimizationIncrement up to
// furthestSafeMove for the one maximizing busynessAt, per spec.md §4.5. It
// chooses 0 (and reports !ok) whenever nothing strictly beats a stationary
// board — this deliberately never asserts best < furthest when both are 0,
// resolving the source's ambiguous assertion (spec.md §9).
type greedyBusynessDecider struct {
	optimizationIncrement float64
}

func (d greedyBusynessDecider) decide(w *wood.Wood, cells []cell.Cell) (float64, bool) {
	furthest := furthestSafeMove(w, cells)
	candidates := withoutRakes(cells)

	bestIncrement := 0.0
	bestBusyness := 0
	for increment := 0.0; increment < furthest; increment += d.optimizationIncrement {
		busyness := busynessAt(w, candidates, increment)
		if busyness > bestBusyness {
			bestBusyness = busyness
			bestIncrement = increment
		}
	}

	if bestIncrement <= 0 {
		return 0, false
	}
	return bestIncrement, true
}
