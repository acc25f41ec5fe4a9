package cell

import (
	"boardline/stats"
	"boardline/wood"
)

// singlePicker attempts exactly one fastener per cycle, reporting the
// configured per-pick duration if a pick was attempted, else 0. This is the
// shared engine behind both BigBird and ScrewManipulator (spec.md §4.4):
// the two pickers differ only in name and configured seconds, never in
// sampling behavior.
type singlePicker struct {
	pickSeconds float64
}

func (sp *singlePicker) runPick(w *wood.Wood, p Params) ([]wood.Kind, float64) {
	n := 1
	picked, attempted, err := w.Pick(p.PickableSurface, p.StartPos, p.EndPos(), p.PickProbabilities, &n)
	if err != nil {
		// The core only calls runPick while holding a work-lock with a
		// validated range, so this can only mean a cell was misconfigured.
		panic(err)
	}
	if !attempted {
		return picked, 0
	}
	return picked, sp.pickSeconds
}

// SinglePickCell is BigBird or ScrewManipulator depending on typeName/
// pickSeconds — a cell that can only act on one fastener at a time.
type SinglePickCell struct {
	core
}

// NewBigBird constructs a single-pick cell named "BigBird", whose
// per-attempt duration is pickSeconds.
func NewBigBird(params Params, w *wood.Wood, robot *stats.RobotStats, pickSeconds float64) *SinglePickCell {
	return newSinglePickCell(params, w, robot, "BigBird", pickSeconds)
}

// NewScrewManipulator constructs a single-pick cell named
// "ScrewManipulator", whose per-attempt duration is pickSeconds.
func NewScrewManipulator(params Params, w *wood.Wood, robot *stats.RobotStats, pickSeconds float64) *SinglePickCell {
	return newSinglePickCell(params, w, robot, "ScrewManipulator", pickSeconds)
}

func newSinglePickCell(params Params, w *wood.Wood, robot *stats.RobotStats, typeName string, pickSeconds float64) *SinglePickCell {
	sp := &singlePicker{pickSeconds: pickSeconds}
	c := &SinglePickCell{core: newCore(params, w, robot, typeName, sp)}
	return c
}
