package conveyor

import (
	"boardline/cell"
	"boardline/wood"
)

// busynessAt imagines the fastener field shifted by moveDistance and counts
// the cells that would have at least one pickable fastener in range,
// per spec.md §4.5. Rakes are excluded by the caller, since their
// busyness depends on sweep history rather than future position.
func busynessAt(w *wood.Wood, cells []cell.Cell, moveDistance float64) int {
	busy := 0
	for _, c := range cells {
		params := c.Params()
		count := w.CountPickableInRange(params.PickableSurface, params.PickProbabilities, moveDistance, params.StartPos, params.EndPos())
		if count > 0 {
			busy++
		}
	}
	return busy
}

// withoutRakes filters out Rake/RollingRake cells, which the busyness
// forecast must ignore.
func withoutRakes(cells []cell.Cell) []cell.Cell {
	filtered := make([]cell.Cell, 0, len(cells))
	for _, c := range cells {
		switch c.(type) {
		case *cell.RakeCell, *cell.RollingRakeCell:
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}
