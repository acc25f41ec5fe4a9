package cell

import (
	"errors"

	"boardline/engine"
	"boardline/stats"
	"boardline/wood"
)

// Cell is the contract every concrete picker obeys: beyond the engine.Actor
// methods, a report needs to know a cell's static parameters, stats bucket,
// and human-readable subtype name.
type Cell interface {
	engine.Actor
	Params() Params
	Stats() *stats.RobotStats
	TypeName() string
}

// picker is the subtype-specific hook every concrete cell variant supplies:
// do the smallest atomic unit of picking this cell can do, and report how
// many seconds it took. Returning seconds == 0 means "nothing to pick here
// right now."
type picker interface {
	runPick(w *wood.Wood, p Params) (picked []wood.Kind, seconds float64)
}

// phase tracks which bracket (if any) core.Step left open for the next call
// to close before starting a fresh cycle, mirroring the "with ...: yield"
// scoping of the source generator one Step() call at a time.
type phase int

const (
	phaseReady phase = iota
	phaseHoldingLock
	phaseWaiting
)

// core implements the Cell loop from spec.md §4.4, shared by every concrete
// picker variant via embedding.
type core struct {
	params   Params
	wood     *wood.Wood
	robot    *stats.RobotStats
	typeName string
	picker   picker

	phase   phase
	release wood.ReleaseFunc
}

func newCore(params Params, w *wood.Wood, robot *stats.RobotStats, typeName string, p picker) core {
	return core{
		params:   params,
		wood:     w,
		robot:    robot,
		typeName: typeName,
		picker:   p,
	}
}

// Params returns the cell's static configuration.
func (c *core) Params() Params { return c.params }

// Stats returns the cell's utilization/pick bucket.
func (c *core) Stats() *stats.RobotStats { return c.robot }

// TypeName returns the concrete picker subtype's name (Rake, RollingRake,
// BigBird, ScrewManipulator), used verbatim in report rows.
func (c *core) TypeName() string { return c.typeName }

// Draw is opaque to the core; visualization-specific geometry is left to
// the report package to derive from Params()/Stats() directly, so every
// cell variant shares this empty implementation (matching the teacher's own
// pattern of cheap/empty Draw() stubs on non-visual sim objects).
func (c *core) Draw() []engine.Geometry { return nil }

// Step implements the loop described in spec.md §4.4:
//
//	loop:
//	  try acquire work_lock:
//	    (picks, elapsed) = self.run_pick()
//	    stats.picks += |picks|
//	    if elapsed > 0:
//	      with stats.work_timer.time(): yield elapsed
//	  if acquire failed with MoveScheduled:
//	    with stats.waiting_timer.time(): yield None
//	  else if elapsed == 0:
//	    release work_lock, yield None
func (c *core) Step(now float64) (*float64, error) {
	switch c.phase {
	case phaseHoldingLock:
		c.robot.WorkTimer.Stop()
		c.release()
		c.release = nil
		c.phase = phaseReady
	case phaseWaiting:
		c.robot.WaitingForWoodTimer.Stop()
		c.phase = phaseReady
	}

	release, err := c.wood.WorkLock()
	if err != nil {
		if errors.Is(err, wood.ErrMoveScheduled) {
			c.robot.WaitingForWoodTimer.Start()
			c.phase = phaseWaiting
			return nil, nil
		}
		return nil, err
	}

	picked, elapsed := c.picker.runPick(c.wood, c.params)
	c.robot.RecordPicks(len(picked))

	if elapsed > 0 {
		c.release = release
		c.robot.WorkTimer.Start()
		c.phase = phaseHoldingLock
		return engine.Sleep(elapsed), nil
	}

	release()
	c.phase = phaseReady
	return nil, nil
}
