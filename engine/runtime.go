package engine

import (
	"fmt"
	"math"
)

// Runtime is the virtual-time scheduler described in spec.md §4.2: it
// repeatedly selects the earliest-due actor, resumes its cooperative step,
// records any requested sleep, and advances virtual time to the next
// wake-up.
type Runtime struct {
	t float64

	actors     []Actor
	registered map[Actor]struct{}
	sleeping   map[Actor]float64
}

// NewRuntime returns an empty runtime with its virtual clock at 0.
func NewRuntime() *Runtime {
	return &Runtime{
		registered: make(map[Actor]struct{}),
		sleeping:   make(map[Actor]float64),
	}
}

// Now satisfies stats.Clock, returning the current virtual time.
func (r *Runtime) Now() float64 {
	return r.t
}

// Register appends actors to the registration list, in order. Registering
// the same actor twice is a precondition violation.
func (r *Runtime) Register(actors ...Actor) error {
	for _, a := range actors {
		if _, exists := r.registered[a]; exists {
			return ErrDuplicateActor
		}
		r.registered[a] = struct{}{}
		r.actors = append(r.actors, a)
	}
	return nil
}

// Step advances the simulation by one scheduling pass, per spec.md §4.2.
func (r *Runtime) Step() error {
	if len(r.actors) == 0 {
		return ErrNoObjectsToStep
	}

	if len(r.sleeping) > 0 {
		tNext := math.Inf(1)
		for _, wake := range r.sleeping {
			if wake < tNext {
				tNext = wake
			}
		}
		if tNext < r.t {
			return fmt.Errorf("%w: next=%v current=%v", ErrTimestampRegression, tNext, r.t)
		}
		r.t = tNext
	}

	for _, actor := range r.actors {
		if wake, asleep := r.sleeping[actor]; asleep {
			if r.t < wake {
				continue
			}
			delete(r.sleeping, actor)
		}

		sleep, err := actor.Step(r.t)
		if err != nil {
			return err
		}
		if sleep == nil {
			continue
		}
		if *sleep <= 0 {
			return ErrNonPositiveSleep
		}
		r.sleeping[actor] = roundDrift(r.t + *sleep)
	}

	return nil
}

// StepUntil repeatedly calls Step until the virtual clock reaches or passes
// target. Fails with ErrNoTimestampProgression if two consecutive Step calls
// leave the clock unchanged — the system would otherwise livelock forever.
func (r *Runtime) StepUntil(target float64) error {
	consecutiveStalls := 0
	for r.t < target {
		before := r.t
		if err := r.Step(); err != nil {
			return err
		}
		if r.t == before {
			consecutiveStalls++
		} else {
			consecutiveStalls = 0
		}
		if consecutiveStalls > 1 {
			return ErrNoTimestampProgression
		}
	}
	return nil
}

// roundDrift rounds to 10 decimal places to damp floating-point drift
// across repeated additions, per spec.md §4.2.
func roundDrift(v float64) float64 {
	const scale = 1e10
	return math.Round(v*scale) / scale
}
