// Package cell implements the robotic stations that pick fasteners off one
// surface of the board, per spec.md §4.4.
package cell

import "boardline/wood"

// Params configures a single cell instance. EndPos is derived, never stored:
// StartPos + WorkingWidth.
type Params struct {
	StartPos          float64
	WorkingWidth      float64
	PickableSurface   wood.Surface
	PickProbabilities map[wood.Kind]float64
}

// EndPos returns StartPos + WorkingWidth.
func (p Params) EndPos() float64 {
	return p.StartPos + p.WorkingWidth
}

// CanPick reports whether this cell is configured with a positive pick
// probability for kind — used by the conveyor's furthest-safe-move and
// busyness computations.
func (p Params) CanPick(kind wood.Kind) bool {
	return p.PickProbabilities[kind] > 0
}
