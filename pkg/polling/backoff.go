package polling

import (
	"math"
	"math/rand"
	"time"
)

// BackoffPolicy computes the wait before the next poll attempt.
//
// WaitPeriod receives the time the loop started and the 1-based count
// of attempts made so far, and returns a non-negative duration.
type BackoffPolicy interface {
	WaitPeriod(loopStart time.Time, attemptCount int) time.Duration
}

// ExponentialBackoff grows the delay geometrically with the attempt
// count, clips it to MaxDelay, and optionally spreads it with jitter
// to avoid synchronized poll storms.
//
// The delay for attempt n is InitialDelay * Multiplier^(n-1), so the
// computation depends only on the arguments and the configuration, not
// on prior calls.
type ExponentialBackoff struct {
	// InitialDelay is the delay after the first attempt.
	InitialDelay time.Duration

	// MaxDelay clips the grown delay, before jitter is applied.
	MaxDelay time.Duration

	// Multiplier is the per-attempt growth factor.
	Multiplier float64

	// Jitter scales the computed delay by a random factor in
	// [1-Jitter, 1+Jitter]. Zero disables jitter.
	Jitter float64

	// Rand supplies the jitter randomness. Defaults to the shared
	// math/rand source; tests inject a seeded one.
	Rand *rand.Rand
}

// DefaultExponentialBackoff returns the stock polling backoff:
// 1s initial delay doubling up to 30s, with ±20% jitter.
func DefaultExponentialBackoff() ExponentialBackoff {
	return ExponentialBackoff{
		InitialDelay: 1 * time.Second,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
		Jitter:       0.2,
	}
}

// WaitPeriod implements BackoffPolicy.
func (b ExponentialBackoff) WaitPeriod(_ time.Time, attemptCount int) time.Duration {
	initial := b.InitialDelay
	if initial <= 0 {
		initial = 1 * time.Second
	}
	maxDelay := b.MaxDelay
	if maxDelay <= 0 {
		maxDelay = 30 * time.Second
	}
	multiplier := b.Multiplier
	if multiplier <= 1.0 {
		multiplier = 2.0
	}
	if attemptCount < 1 {
		attemptCount = 1
	}

	delay := float64(initial) * math.Pow(multiplier, float64(attemptCount-1))
	if delay > float64(maxDelay) {
		delay = float64(maxDelay)
	}

	if b.Jitter > 0 {
		delay *= 1 - b.Jitter + 2*b.Jitter*b.randFloat()
	}
	if delay < 0 {
		return 0
	}
	return time.Duration(delay)
}

func (b ExponentialBackoff) randFloat() float64 {
	if b.Rand != nil {
		return b.Rand.Float64()
	}
	return rand.Float64()
}

// ConstantBackoff waits the same duration between every attempt.
// Mostly useful in tests and tight local polling loops.
type ConstantBackoff struct {
	// Delay is the wait between attempts.
	Delay time.Duration
}

// WaitPeriod implements BackoffPolicy.
func (b ConstantBackoff) WaitPeriod(time.Time, int) time.Duration {
	if b.Delay < 0 {
		return 0
	}
	return b.Delay
}
