package cell

import (
	"math"

	"boardline/stats"
	"boardline/wood"
)

// rakePicker tracks how much fresh wood has arrived since its last cycle
// (lastRakeWoodPos) and only rakes over that freshly-arrived span: a rake
// that ran over already-raked wood would do no useful work. clampToEnd
// distinguishes Rake (clamps to its configured end_pos) from RollingRake
// (extends as far as fresh wood permits, unclamped).
type rakePicker struct {
	rakeCycleSeconds float64
	clampToEnd       bool
	lastRakeWoodPos  float64
}

func (rp *rakePicker) runPick(w *wood.Wood, p Params) ([]wood.Kind, float64) {
	unraked := w.TotalTranslated() - rp.lastRakeWoodPos
	rp.lastRakeWoodPos = w.TotalTranslated()

	if unraked == 0 {
		return nil, 0
	}

	end := p.StartPos + unraked
	if rp.clampToEnd {
		end = math.Min(end, p.EndPos())
	}
	if end <= p.StartPos {
		return nil, 0
	}

	picked, _, err := w.Pick(p.PickableSurface, p.StartPos, end, p.PickProbabilities, nil)
	if err != nil {
		panic(err)
	}
	return picked, rp.rakeCycleSeconds
}

// RakeCell clamps its sweep to its configured end_pos: a rake only does
// useful work over freshly-arrived wood within its own working width.
type RakeCell struct {
	core
}

// NewRake constructs a Rake cell with the given rake-cycle duration.
func NewRake(params Params, w *wood.Wood, robot *stats.RobotStats, rakeCycleSeconds float64) *RakeCell {
	rp := &rakePicker{rakeCycleSeconds: rakeCycleSeconds, clampToEnd: true}
	return &RakeCell{core: newCore(params, w, robot, "Rake", rp)}
}

// RollingRakeCell extends its sweep as far as fresh wood permits, with no
// end_pos clamp.
type RollingRakeCell struct {
	core
}

// NewRollingRake constructs a RollingRake cell with the given rake-cycle
// duration.
func NewRollingRake(params Params, w *wood.Wood, robot *stats.RobotStats, rakeCycleSeconds float64) *RollingRakeCell {
	rp := &rakePicker{rakeCycleSeconds: rakeCycleSeconds, clampToEnd: false}
	return &RollingRakeCell{core: newCore(params, w, robot, "RollingRake", rp)}
}
