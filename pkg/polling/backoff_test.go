package polling

import (
	"math/rand"
	"testing"
	"time"
)

func TestExponentialBackoff_Growth(t *testing.T) {
	b := ExponentialBackoff{
		InitialDelay: 1 * time.Second,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
		// No jitter so the progression is exact.
	}
	start := time.Now()

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{attempt: 1, want: 1 * time.Second},
		{attempt: 2, want: 2 * time.Second},
		{attempt: 3, want: 4 * time.Second},
		{attempt: 4, want: 8 * time.Second},
		{attempt: 5, want: 16 * time.Second},
		{attempt: 6, want: 30 * time.Second}, // clipped
		{attempt: 20, want: 30 * time.Second},
	}

	for _, tt := range tests {
		if got := b.WaitPeriod(start, tt.attempt); got != tt.want {
			t.Errorf("WaitPeriod(attempt=%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestExponentialBackoff_NonNegative(t *testing.T) {
	b := DefaultExponentialBackoff()
	b.Rand = rand.New(rand.NewSource(1))
	start := time.Now()

	for attempt := 0; attempt <= 64; attempt++ {
		if got := b.WaitPeriod(start, attempt); got < 0 {
			t.Fatalf("WaitPeriod(attempt=%d) = %v, want non-negative", attempt, got)
		}
	}
}

func TestExponentialBackoff_JitterBounds(t *testing.T) {
	b := ExponentialBackoff{
		InitialDelay: 1 * time.Second,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
		Jitter:       0.2,
		Rand:         rand.New(rand.NewSource(42)),
	}
	start := time.Now()

	// Attempt 3 without jitter would be exactly 4s; jitter keeps it
	// within ±20%.
	lo, hi := 3200*time.Millisecond, 4800*time.Millisecond
	for i := 0; i < 1000; i++ {
		got := b.WaitPeriod(start, 3)
		if got < lo || got > hi {
			t.Fatalf("WaitPeriod(attempt=3) = %v, want within [%v, %v]", got, lo, hi)
		}
	}
}

func TestExponentialBackoff_ZeroValueDefaults(t *testing.T) {
	// A zero-value policy falls back to the stock configuration
	// instead of producing zero waits.
	var b ExponentialBackoff
	start := time.Now()

	if got := b.WaitPeriod(start, 1); got != 1*time.Second {
		t.Errorf("WaitPeriod(attempt=1) = %v, want 1s default", got)
	}
	if got := b.WaitPeriod(start, 10); got != 30*time.Second {
		t.Errorf("WaitPeriod(attempt=10) = %v, want 30s default cap", got)
	}
}

func TestConstantBackoff(t *testing.T) {
	start := time.Now()

	b := ConstantBackoff{Delay: 50 * time.Millisecond}
	for attempt := 0; attempt <= 10; attempt++ {
		if got := b.WaitPeriod(start, attempt); got != 50*time.Millisecond {
			t.Errorf("WaitPeriod(attempt=%d) = %v, want 50ms", attempt, got)
		}
	}

	neg := ConstantBackoff{Delay: -time.Second}
	if got := neg.WaitPeriod(start, 1); got != 0 {
		t.Errorf("WaitPeriod with negative delay = %v, want 0", got)
	}
}
