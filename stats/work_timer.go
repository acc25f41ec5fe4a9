// Package stats implements the per-actor utilization and throughput
// accounting described in spec.md §4.6: scoped work/slack timers keyed off
// the engine's virtual clock, not wall-clock time.
package stats

// Clock is the minimal view of the engine.Runtime a timer needs: its
// current virtual timestamp. Narrowed to an interface so stats has no
// import-cycle dependency on engine.
type Clock interface {
	Now() float64
}

// WorkTimer tracks the working/slacking state of a single actor across the
// virtual clock. Start/Stop bracket a working interval; the time between
// intervals accumulates as slack. Modeled as explicit Start/Stop rather than
// a Python-style context manager wrapping a scheduler yield, per spec.md §9's
// guidance for languages where yielding out of a scope guard is awkward.
type WorkTimer struct {
	clock Clock

	working  bool
	workSecs float64
	slackSecs float64

	lastStart *float64
	lastEnd   *float64
}

// NewWorkTimer returns a timer anchored to clock, with slack accruing from
// clock.Now() at construction time.
func NewWorkTimer(clock Clock) *WorkTimer {
	start := clock.Now()
	return &WorkTimer{
		clock:   clock,
		lastEnd: &start,
	}
}

// Start begins a working interval: the elapsed time since the last interval
// ended accrues as slack. Panics if called while already working — that's a
// caller bug, not a runtime condition (mirrors the source's assertion that
// slack time is never negative).
func (wt *WorkTimer) Start() {
	if wt.working {
		panic("stats: WorkTimer.Start called while already working")
	}

	now := wt.clock.Now()
	if wt.lastEnd != nil {
		slack := now - *wt.lastEnd
		if slack < 0 {
			panic("stats: WorkTimer observed negative slack duration")
		}
		wt.slackSecs += slack
	}

	start := now
	wt.lastStart = &start
	wt.working = true
}

// Stop ends a working interval. Requires end > start strictly (the spec's
// own invariant); a zero-length work interval is a caller bug, since
// zero-second picks should never enter Start/Stop at all (cell.go checks
// elapsed > 0 before timing).
func (wt *WorkTimer) Stop() {
	if !wt.working {
		panic("stats: WorkTimer.Stop called while not working")
	}

	now := wt.clock.Now()
	if now <= *wt.lastStart {
		panic("stats: WorkTimer.Stop observed non-positive work duration")
	}

	wt.workSecs += now - *wt.lastStart
	end := now
	wt.lastEnd = &end
	wt.working = false
}

// Time brackets fn with Start/Stop, for call sites that don't need to
// straddle a yield point (tests, mostly; cell.go calls Start/Stop directly
// around its yields).
func (wt *WorkTimer) Time(fn func()) {
	wt.Start()
	defer wt.Stop()
	fn()
}

// Working returns the accumulated working seconds.
func (wt *WorkTimer) Working() float64 { return wt.workSecs }

// Slacking returns the accumulated slacking seconds.
func (wt *WorkTimer) Slacking() float64 { return wt.slackSecs }

// UtilizationRatio returns Working/(Working+Slacking), or 0 when both are
// zero.
func (wt *WorkTimer) UtilizationRatio() float64 {
	total := wt.workSecs + wt.slackSecs
	if total == 0 {
		return 0
	}
	return wt.workSecs / total
}
