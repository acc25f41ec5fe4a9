package conveyor

import (
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"boardline/cell"
	"boardline/stats"
	"boardline/wood"
)

type tickClock struct{ t float64 }

func (c *tickClock) Now() float64 { return c.t }

func emptyWood(t *testing.T) *wood.Wood {
	t.Helper()
	w, err := wood.New(wood.Parameters{FastenerDensities: wood.Densities{
		wood.OffsetNail: 0,
		wood.FlushNail:  0,
		wood.Staple:     0,
		wood.Screw:      0,
	}}, rand.New(rand.NewSource(1337)))
	if err != nil {
		t.Fatal(err)
	}
	return w
}

// denseStapleWood builds a board dense with staples and nothing else.
func denseStapleWood(t *testing.T) *wood.Wood {
	t.Helper()
	w, err := wood.New(wood.Parameters{FastenerDensities: wood.Densities{
		wood.OffsetNail: 0,
		wood.FlushNail:  0,
		wood.Staple:     50,
		wood.Screw:      0,
	}}, rand.New(rand.NewSource(1337)))
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestDumbConveyorAlwaysMoves(t *testing.T) {
	Convey("Given a Dumb conveyor over an empty board", t, func() {
		w := emptyWood(t)
		clock := &tickClock{}
		ws := stats.NewWoodStats(w, clock)
		params := Params{Kind: KindDumb, MoveSpeed: 2.0, MoveIncrement: 1.0}
		conv, err := New(params, w, nil, ws)
		So(err, ShouldBeNil)

		Convey("it schedules, drains, and moves every cycle without needing any cells", func() {
			sleep, err := conv.Step(clock.t)
			So(err, ShouldBeNil)
			So(sleep, ShouldBeNil) // scheduled, now draining

			sleep, err = conv.Step(clock.t)
			So(err, ShouldBeNil)
			So(sleep, ShouldNotBeNil)
			So(*sleep, ShouldEqual, 0.5)
			So(w.TotalTranslated(), ShouldEqual, 1.0)
		})
	})
}

func TestGreedyDistanceYieldsNilWhenNoCellPicksThePresentKind(t *testing.T) {
	Convey("Given a board full of staples and a cell that only picks screws", t, func() {
		w := denseStapleWood(t)
		clock := &tickClock{}
		ws := stats.NewWoodStats(w, clock)

		c := cell.NewScrewManipulator(cell.Params{
			StartPos:          0,
			WorkingWidth:      2,
			PickableSurface:   wood.Top,
			PickProbabilities: map[wood.Kind]float64{wood.Screw: 1},
		}, w, stats.NewRobotStats(stats.RobotKey{StartPos: 0, EndPos: 2, Surface: wood.Top}, "ScrewManipulator", clock), 1.0)

		params := Params{Kind: KindGreedyDistance, MoveSpeed: 1.0}
		conv, err := New(params, w, []cell.Cell{c}, ws)
		So(err, ShouldBeNil)

		Convey("the staples impose no constraint, furthest_safe_move is 0, and the conveyor yields nil", func() {
			sleep, err := conv.Step(clock.t)
			So(err, ShouldBeNil)
			So(sleep, ShouldBeNil)
			So(w.TotalTranslated(), ShouldEqual, 0.0)
		})
	})
}

func TestGreedyBusynessNeverAssertsOnZeroFurthest(t *testing.T) {
	Convey("Given a board where furthest_safe_move is 0", t, func() {
		w := denseStapleWood(t)
		clock := &tickClock{}
		ws := stats.NewWoodStats(w, clock)

		c := cell.NewScrewManipulator(cell.Params{
			StartPos:          0,
			WorkingWidth:      2,
			PickableSurface:   wood.Top,
			PickProbabilities: map[wood.Kind]float64{wood.Screw: 1},
		}, w, stats.NewRobotStats(stats.RobotKey{StartPos: 0, EndPos: 2, Surface: wood.Top}, "ScrewManipulator", clock), 1.0)

		params := Params{Kind: KindGreedyBusyness, MoveSpeed: 1.0, OptimizationIncrement: 0.5}
		conv, err := New(params, w, []cell.Cell{c}, ws)
		So(err, ShouldBeNil)

		Convey("it yields nil instead of panicking on the degenerate 0 < 0 case", func() {
			So(func() {
				sleep, err := conv.Step(clock.t)
				So(err, ShouldBeNil)
				So(sleep, ShouldBeNil)
			}, ShouldNotPanic)
		})
	})
}

func TestConveyorRespectsOutstandingWorkLocks(t *testing.T) {
	Convey("Given a conveyor and a cell mid-pick holding the work-lock", t, func() {
		w := emptyWood(t)
		clock := &tickClock{}
		ws := stats.NewWoodStats(w, clock)
		release, err := w.WorkLock()
		So(err, ShouldBeNil)

		params := Params{Kind: KindDumb, MoveSpeed: 1.0, MoveIncrement: 1.0}
		conv, err := New(params, w, nil, ws)
		So(err, ShouldBeNil)

		Convey("the conveyor schedules the move but stalls until the lock releases", func() {
			_, err := conv.Step(clock.t)
			So(err, ShouldBeNil)

			sleep, err := conv.Step(clock.t)
			So(err, ShouldBeNil)
			So(sleep, ShouldBeNil)
			So(w.TotalTranslated(), ShouldEqual, 0.0)

			release()
			sleep, err = conv.Step(clock.t)
			So(err, ShouldBeNil)
			So(sleep, ShouldNotBeNil)
			So(w.TotalTranslated(), ShouldEqual, 1.0)
		})
	})
}
