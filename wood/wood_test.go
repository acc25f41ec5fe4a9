package wood

import (
	"math"
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func allKindDensities(d float64) Densities {
	return Densities{
		OffsetNail: d,
		FlushNail:  d,
		Staple:     d,
		Screw:      d,
	}
}

func allOnes() map[Kind]float64 {
	return map[Kind]float64{
		OffsetNail: 1,
		FlushNail:  1,
		Staple:     1,
		Screw:      1,
	}
}

func TestWoodConstruction(t *testing.T) {
	Convey("Given densities missing a fastener kind", t, func() {
		_, err := New(Parameters{FastenerDensities: Densities{OffsetNail: 1}}, rand.New(rand.NewSource(1337)))
		Convey("construction fails", func() {
			So(err, ShouldNotBeNil)
		})
	})

	Convey("Given complete densities", t, func() {
		w, err := New(Parameters{FastenerDensities: allKindDensities(2)}, rand.New(rand.NewSource(1337)))
		Convey("the board is populated and every position lies past -BufferLen", func() {
			So(err, ShouldBeNil)
			for i := 0; i < w.Len(); i++ {
				So(w.fasteners[i].Position, ShouldBeGreaterThan, -BufferLen)
				So(w.fasteners[i].Position, ShouldBeLessThanOrEqualTo, 0)
			}
		})
	})
}

func TestWorkLockProtocol(t *testing.T) {
	Convey("Given a fresh wood", t, func() {
		w, _ := New(Parameters{FastenerDensities: allKindDensities(1)}, rand.New(rand.NewSource(1337)))

		Convey("after schedule_move, acquiring a work lock raises ErrMoveScheduled and ongoing_work stays 0", func() {
			w.ScheduleMove()
			_, err := w.WorkLock()
			So(err, ShouldEqual, ErrMoveScheduled)
			So(w.OngoingWork(), ShouldEqual, 0)
		})

		Convey("attempting to move while a lock is held fails, and the lock keeps working", func() {
			release, err := w.WorkLock()
			So(err, ShouldBeNil)

			err = w.Move(1.0)
			So(err, ShouldEqual, ErrMovedWhileWorkActive)

			_, _, pickErr := w.Pick(Top, 0, BufferLen, allOnes(), nil)
			So(pickErr, ShouldBeNil)

			release()
			So(w.OngoingWork(), ShouldEqual, 0)
		})

		Convey("move translates every retained fastener by exactly d", func() {
			before := make([]float64, w.Len())
			for i, f := range w.fasteners {
				before[i] = f.Position
			}

			err := w.Move(3.5)
			So(err, ShouldBeNil)

			for i := 0; i < len(before) && i < w.Len(); i++ {
				// Only valid while indices are stable: no picks occurred here.
				So(w.fasteners[i].Position, ShouldAlmostEqual, before[i]+3.5, 1e-9)
			}
			So(w.TotalTranslated(), ShouldEqual, 3.5)
		})

		Convey("after move, no fastener position is at or below -BufferLen", func() {
			err := w.Move(2.0)
			So(err, ShouldBeNil)
			for _, f := range w.fasteners {
				So(f.Position, ShouldBeGreaterThan, -BufferLen)
			}
		})
	})
}

func TestPickSemantics(t *testing.T) {
	Convey("Given a densely populated wood and all probabilities 1", t, func() {
		w, _ := New(Parameters{FastenerDensities: allKindDensities(5)}, rand.New(rand.NewSource(1337)))
		// A fresh board only holds fasteners in the buffer region; move it so
		// they enter the pickable range (0, BufferLen].
		So(w.Move(BufferLen), ShouldBeNil)
		release, err := w.WorkLock()
		So(err, ShouldBeNil)
		defer release()

		Convey("sampling 5 removes exactly that many and shrinks the field accordingly", func() {
			n := 5
			before := w.Len()
			picked, attempted, err := w.Pick(Top, 0, BufferLen, allOnes(), &n)
			So(err, ShouldBeNil)
			So(attempted, ShouldBeTrue)
			So(len(picked), ShouldEqual, n)
			So(w.Len(), ShouldEqual, before-len(picked))
		})

		Convey("sampling with n=nil picks every candidate on that surface/range", func() {
			before := w.Len()
			picked, attempted, err := w.Pick(Top, 0, BufferLen, allOnes(), nil)
			So(err, ShouldBeNil)
			So(attempted, ShouldBeTrue)
			So(w.Len(), ShouldEqual, before-len(picked))
		})
	})

	Convey("Given empty pick_probabilities", t, func() {
		w, _ := New(Parameters{FastenerDensities: allKindDensities(5)}, rand.New(rand.NewSource(1337)))
		release, _ := w.WorkLock()
		defer release()

		before := w.Len()
		picked, attempted, err := w.Pick(Top, 0, BufferLen, map[Kind]float64{}, nil)
		Convey("nothing is attempted or removed", func() {
			So(err, ShouldBeNil)
			So(attempted, ShouldBeFalse)
			So(len(picked), ShouldEqual, 0)
			So(w.Len(), ShouldEqual, before)
		})
	})

	Convey("On a zero-density board, any pick returns nothing but move still advances total_translated", t, func() {
		w, _ := New(Parameters{FastenerDensities: allKindDensities(0)}, rand.New(rand.NewSource(1337)))
		release, _ := w.WorkLock()

		picked, attempted, err := w.Pick(Top, 0, BufferLen, allOnes(), nil)
		So(err, ShouldBeNil)
		So(attempted, ShouldBeFalse)
		So(len(picked), ShouldEqual, 0)

		release()
		So(w.Move(4.0), ShouldBeNil)
		So(w.TotalTranslated(), ShouldEqual, 4.0)
	})

	Convey("Picking without a work lock fails", t, func() {
		w, _ := New(Parameters{FastenerDensities: allKindDensities(1)}, rand.New(rand.NewSource(1337)))
		_, _, err := w.Pick(Top, 0, BufferLen, allOnes(), nil)
		So(err, ShouldEqual, ErrNoWorkLock)
	})

	Convey("Asking only for screws among dense other kinds always yields exactly one screw", t, func() {
		w, _ := New(Parameters{FastenerDensities: Densities{
			OffsetNail: 50,
			FlushNail:  50,
			Staple:     50,
			Screw:      0.5,
		}}, rand.New(rand.NewSource(1337)))
		So(w.Move(BufferLen), ShouldBeNil)
		release, _ := w.WorkLock()
		defer release()

		n := 1
		for attempt := 0; attempt < 50 && w.hasScrewOn(Top) == false; attempt++ {
			w.fasteners = append(w.fasteners, Fastener{Position: 1.0, Surface: Top, Kind: Screw})
		}

		picked, attempted, err := w.Pick(Top, 0, BufferLen, map[Kind]float64{Screw: 1}, &n)
		So(err, ShouldBeNil)
		So(attempted, ShouldBeTrue)
		So(len(picked), ShouldEqual, 1)
		So(picked[0], ShouldEqual, Screw)
	})
}

func (w *Wood) hasScrewOn(surface Surface) bool {
	for _, f := range w.fasteners {
		if f.Surface == surface && f.Kind == Screw && f.Position > 0 {
			return true
		}
	}
	return false
}

func TestMissedFasteners(t *testing.T) {
	Convey("Given fasteners past a threshold position", t, func() {
		w, _ := New(Parameters{FastenerDensities: allKindDensities(0)}, rand.New(rand.NewSource(1337)))
		w.fasteners = Field{
			{Position: 5, Surface: Top, Kind: Staple},
			{Position: 15, Surface: Top, Kind: Staple},
			{Position: 15, Surface: Bottom, Kind: Screw},
		}

		histogram := w.MissedFasteners(10)
		Convey("only records past the threshold are counted, grouped by kind", func() {
			So(histogram[Staple], ShouldEqual, 1)
			So(histogram[Screw], ShouldEqual, 1)
		})
	})
}

func TestGenerateBoardRoundingRule(t *testing.T) {
	Convey("Given a density yielding a whole number of expected fasteners", t, func() {
		// length=10, density=0.5 => expected=5.0 exactly, frac=0, always emits 5.
		rng := rand.New(rand.NewSource(1337))
		field := generateBoard(rng, 0, 10, Densities{Staple: 0.5}, nil)
		So(len(field), ShouldEqual, 5)
	})
}

func TestSurfaceAndKindStrings(t *testing.T) {
	Convey("Every surface and kind has a readable name", t, func() {
		for _, s := range Surfaces() {
			So(s.String(), ShouldNotEqual, "unknown")
		}
		for _, k := range Kinds() {
			So(k.String(), ShouldNotEqual, "unknown")
		}
		So(math.IsNaN(0), ShouldBeFalse)
	})
}
