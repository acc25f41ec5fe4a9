package conveyor

import (
	"math"

	"boardline/cell"
	"boardline/wood"
)

// furthestSafeMove computes the greediest move distance that never pushes
// a fastener past every cell still able to catch it, per spec.md §4.5.
func furthestSafeMove(w *wood.Wood, cells []cell.Cell) float64 {
	var perKindMax []float64

	for _, kind := range wood.Kinds() {
		highest, ok := w.HighestPosition(kind)
		if !ok {
			continue
		}

		furthestDelta := math.Inf(-1)
		furthestEndPos := math.Inf(-1)
		found := false
		for _, c := range cells {
			params := c.Params()
			prob, pickable := params.PickProbabilities[kind]
			if !pickable || prob <= 0 {
				continue
			}
			delta := params.EndPos() - highest
			if delta >= furthestDelta && params.EndPos() >= furthestEndPos {
				furthestDelta = delta
				furthestEndPos = params.EndPos()
				found = true
			}
		}

		if found && furthestDelta >= 0 {
			perKindMax = append(perKindMax, furthestDelta)
		}
	}

	if len(perKindMax) == 0 {
		return 0
	}
	min := perKindMax[0]
	for _, v := range perKindMax[1:] {
		if v < min {
			min = v
		}
	}
	return min
}
