package engine

import "errors"

// ErrNoObjectsToStep is raised by Step when the Runtime has no registered
// actors.
var ErrNoObjectsToStep = errors.New("engine: runtime has no registered actors")

// ErrNoTimestampProgression is raised by StepUntil when two consecutive
// Step calls leave the virtual clock unchanged: every actor is yielding nil
// forever, which would livelock.
var ErrNoTimestampProgression = errors.New("engine: no objects in the system are requesting sleeps, simulation would livelock")

// ErrNonPositiveSleep is raised when an actor's Step returns a sleep
// duration that is not strictly positive.
var ErrNonPositiveSleep = errors.New("engine: actor requested a non-positive sleep duration")

// ErrTimestampRegression is raised if the sleeping set's next wake-up
// timestamp is somehow behind the current virtual clock — a scheduler
// consistency bug, never expected under correct actor behavior.
var ErrTimestampRegression = errors.New("engine: next wake timestamp precedes current virtual time")

// ErrDuplicateActor is raised by Register when the same actor is registered
// twice.
var ErrDuplicateActor = errors.New("engine: actor already registered")
