package polling

import "time"

// LoopState is the decision a ContinuationPolicy returns for a failed
// attempt.
type LoopState int

const (
	// Continue means the loop should retry the attempt.
	Continue LoopState = iota

	// Break means the loop should stop and surface the error.
	Break
)

// String returns the decision name for logging.
func (s LoopState) String() string {
	if s == Continue {
		return "continue"
	}
	return "break"
}

// ContinuationPolicy decides whether a polling loop keeps going after
// an error.
//
// OnError receives the time the loop started, the 1-based count of
// attempts made so far, and the error of the current attempt.
// Implementations must be pure: identical arguments yield identical
// decisions, with no hidden mutable state.
type ContinuationPolicy interface {
	OnError(loopStart time.Time, attemptCount int, err error) LoopState
}

// AlwaysContinue retries after every error. Pair it with a bounded
// context or a time-limited backoff when using it outside tests.
type AlwaysContinue struct{}

// OnError implements ContinuationPolicy.
func (AlwaysContinue) OnError(time.Time, int, error) LoopState {
	return Continue
}

// LimitedAttemptCount stops the loop once the attempt count reaches
// MaximumAttempts.
type LimitedAttemptCount struct {
	// MaximumAttempts is the total number of attempts allowed,
	// including the first one.
	MaximumAttempts int
}

// OnError implements ContinuationPolicy.
func (p LimitedAttemptCount) OnError(_ time.Time, attemptCount int, _ error) LoopState {
	if attemptCount >= p.MaximumAttempts {
		return Break
	}
	return Continue
}

// LimitedElapsedTime stops the loop once it has been running longer
// than MaximumDuration, measured from the loop start time.
type LimitedElapsedTime struct {
	// MaximumDuration is the elapsed-time budget for the whole loop.
	MaximumDuration time.Duration

	// Clock reports the current time; defaults to time.Now. Tests
	// substitute it to make decisions deterministic.
	Clock func() time.Time
}

// OnError implements ContinuationPolicy.
func (p LimitedElapsedTime) OnError(loopStart time.Time, _ int, _ error) LoopState {
	now := time.Now
	if p.Clock != nil {
		now = p.Clock
	}
	if now().Sub(loopStart) >= p.MaximumDuration {
		return Break
	}
	return Continue
}
