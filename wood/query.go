package wood

// HighestPosition returns the greatest position among fasteners of kind,
// regardless of surface, and whether any such fastener exists. Used by the
// conveyor's furthest-safe-move computation (spec.md §4.5).
func (w *Wood) HighestPosition(kind Kind) (pos float64, ok bool) {
	for _, f := range w.fasteners {
		if f.Kind != kind {
			continue
		}
		if !ok || f.Position > pos {
			pos = f.Position
			ok = true
		}
	}
	return pos, ok
}

// CountPickableInRange imagines the fastener field shifted by shift and
// counts fasteners on surface, whose kind is a key of pickable, strictly
// between startPos and endPos. Used by the conveyor's busyness forecast
// (spec.md §4.5); never mutates the field.
func (w *Wood) CountPickableInRange(surface Surface, pickable map[Kind]float64, shift, startPos, endPos float64) int {
	count := 0
	for _, f := range w.fasteners {
		if f.Surface != surface {
			continue
		}
		if _, ok := pickable[f.Kind]; !ok {
			continue
		}
		pos := f.Position + shift
		if pos > startPos && pos < endPos {
			count++
		}
	}
	return count
}
