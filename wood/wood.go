// Package wood implements the moving workpiece: a fastener field that cells
// pick from and the conveyor translates, coordinated by a counting
// work-lock that excludes moves (not picks — many cells may hold the lock
// at once) while work is outstanding.
package wood

import (
	"fmt"
	"math/rand"

	"boardline/atomicx"
)

// BufferLen is the buffer region kept populated on (-BufferLen, 0] at all
// times, ahead of the first cell.
const BufferLen = 10.0

// Parameters configures a Wood's fastener generation densities.
type Parameters struct {
	FastenerDensities Densities
}

// Validate checks that all four fastener kinds have a density entry (they
// may be zero, just present).
func (p Parameters) Validate() error {
	for _, kind := range Kinds() {
		if _, ok := p.FastenerDensities[kind]; !ok {
			return fmt.Errorf("%w: missing %s", ErrMissingFastenerKind, kind)
		}
	}
	return nil
}

// Wood owns the fastener field and the scalar bookkeeping described in
// spec.md §3: total translated distance, outstanding work-lock count, the
// move-scheduled drain flag, and the cumulative pick count.
type Wood struct {
	params Parameters
	rng    *rand.Rand

	fasteners Field

	totalTranslated *atomicx.Float64
	totalPicked     *atomicx.Counter64
	ongoingWork     atomicx.Counter
	moveScheduled   bool
}

// New constructs a Wood whose buffer region (-BufferLen, 0] is immediately
// populated per params' densities.
func New(params Parameters, rng *rand.Rand) (*Wood, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	w := &Wood{
		params:          params,
		rng:             rng,
		totalTranslated: atomicx.NewFloat64(0),
		totalPicked:     &atomicx.Counter64{},
	}
	w.fasteners = generateBoard(rng, -BufferLen, 0, params.FastenerDensities, nil)
	return w, nil
}

// TotalTranslated returns the cumulative meters the board has moved.
func (w *Wood) TotalTranslated() float64 {
	return w.totalTranslated.Load()
}

// TotalPicked returns the cumulative number of successful picks.
func (w *Wood) TotalPicked() uint64 {
	return w.totalPicked.Load()
}

// OngoingWork returns the current number of outstanding work-locks.
func (w *Wood) OngoingWork() uint32 {
	return w.ongoingWork.Load()
}

// MissedFasteners returns a histogram of fasteners whose position exceeds
// afterPos, per spec.md §4.3.
func (w *Wood) MissedFasteners(afterPos float64) map[Kind]int {
	return w.fasteners.CountAfter(afterPos)
}

// Len reports the number of fasteners currently embedded in the board.
// Exposed for tests.
func (w *Wood) Len() int {
	return len(w.fasteners)
}

// ReleaseFunc is returned by WorkLock and must be called exactly once to
// release the reservation, on every exit path including error.
type ReleaseFunc func()

// WorkLock acquires the right to perform a Pick. It fails with
// ErrMoveScheduled once a move has been scheduled and no new work-locks may
// be acquired. This is a counting reservation, not mutual exclusion: many
// cells may hold it simultaneously. It only excludes Move.
func (w *Wood) WorkLock() (ReleaseFunc, error) {
	if w.moveScheduled {
		return nil, ErrMoveScheduled
	}
	w.ongoingWork.Add(1)
	released := false
	return func() {
		if released {
			return
		}
		released = true
		w.ongoingWork.Add(-1)
	}, nil
}

// ScheduleMove sets the drain flag: idempotent, and from this point on no
// new work-locks will succeed until Move completes.
func (w *Wood) ScheduleMove() {
	w.moveScheduled = true
}

// ReadyForMove reports whether every outstanding work-lock has been
// released.
func (w *Wood) ReadyForMove() bool {
	return w.ongoingWork.IsZero()
}

// Move translates every retained fastener by distance, refills the
// backfilled buffer region, clears the drain flag, and accumulates
// TotalTranslated. Fails with ErrMovedWhileWorkActive if any work-lock is
// still outstanding.
func (w *Wood) Move(distance float64) error {
	if distance <= 0 {
		return ErrNonPositiveDistance
	}
	if !w.ReadyForMove() {
		return ErrMovedWhileWorkActive
	}

	for i := range w.fasteners {
		w.fasteners[i].Position += distance
	}

	refillStart := -BufferLen
	refillEnd := -BufferLen + distance
	if refillEnd > refillStart {
		w.fasteners = generateBoard(w.rng, refillStart, refillEnd, w.params.FastenerDensities, w.fasteners)
	}

	w.moveScheduled = false
	w.totalTranslated.MustAdd(distance)
	return nil
}

// Pick attempts to remove fasteners in (startPos, endPos] on fromSurface
// whose kind appears in pickProbabilities. If nToSample is nil or the
// candidate count is at or below *nToSample, every candidate is attempted;
// otherwise nToSample distinct candidates are drawn uniformly without
// replacement. Each attempted fastener is independently removed with
// probability pickProbabilities[kind]. Requires the caller to be holding a
// work-lock.
func (w *Wood) Pick(
	fromSurface Surface,
	startPos, endPos float64,
	pickProbabilities map[Kind]float64,
	nToSample *int,
) (picked []Kind, attempted bool, err error) {
	if w.ongoingWork.IsZero() {
		return nil, false, ErrNoWorkLock
	}
	if startPos < 0 || startPos >= endPos {
		return nil, false, fmt.Errorf("%w: start=%v end=%v", ErrInvalidPickRange, startPos, endPos)
	}

	candidates := make([]int, 0, len(w.fasteners))
	for i, f := range w.fasteners {
		if f.Position <= startPos || f.Position > endPos {
			continue
		}
		if f.Surface != fromSurface {
			continue
		}
		if _, ok := pickProbabilities[f.Kind]; !ok {
			continue
		}
		candidates = append(candidates, i)
	}

	toAttempt := candidates
	if nToSample != nil && len(candidates) > *nToSample {
		toAttempt = w.sampleWithoutReplacement(candidates, *nToSample)
	}
	attempted = len(toAttempt) > 0

	// Remove highest index first so earlier indices stay valid.
	sortDescending(toAttempt)
	for _, idx := range toAttempt {
		kind := w.fasteners[idx].Kind
		prob := pickProbabilities[kind]
		if w.rng.Float64() <= prob {
			picked = append(picked, kind)
			w.fasteners = w.fasteners.removeAt(idx)
		}
	}

	if len(picked) > 0 {
		w.totalPicked.Add(uint64(len(picked)))
	}
	return picked, attempted, nil
}

// sampleWithoutReplacement draws n distinct indices from candidates
// uniformly at random, via a partial Fisher-Yates shuffle. candidates is not
// mutated; a scratch copy is shuffled instead.
func (w *Wood) sampleWithoutReplacement(candidates []int, n int) []int {
	scratch := make([]int, len(candidates))
	copy(scratch, candidates)
	for i := 0; i < n; i++ {
		j := i + w.rng.Intn(len(scratch)-i)
		scratch[i], scratch[j] = scratch[j], scratch[i]
	}
	return scratch[:n]
}

func sortDescending(idx []int) {
	for i := 1; i < len(idx); i++ {
		for j := i; j > 0 && idx[j-1] < idx[j]; j-- {
			idx[j-1], idx[j] = idx[j], idx[j-1]
		}
	}
}
