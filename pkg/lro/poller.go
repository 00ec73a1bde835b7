package lro

import (
	"context"
	"fmt"
	"time"

	"github.com/Sternrassler/cloud-client-core/pkg/logging"
	"github.com/Sternrassler/cloud-client-core/pkg/polling"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// Prometheus metrics for long-running operation polling.
var (
	pollAttemptsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cloudapi_lro_poll_attempts_total",
		Help: "Total poll attempts across all operations",
	})

	pollBackoffSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "cloudapi_lro_poll_backoff_seconds",
		Help:    "Backoff duration between poll attempts",
		Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60},
	})

	pollStoppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cloudapi_lro_polls_stopped_total",
		Help: "Polling loops stopped by policy before completion",
	})
)

// PollFunc fetches the current state of a long-running operation.
// It returns done=true with the final result once the operation has
// completed. Like a paginator fetch function, it must be callable
// repeatedly.
type PollFunc[R any] func(ctx context.Context) (result R, done bool, err error)

// Config selects the policies governing a polling loop.
type Config struct {
	// Continuation decides whether to keep polling after an error.
	Continuation polling.ContinuationPolicy

	// Backoff computes the wait between attempts.
	Backoff polling.BackoffPolicy
}

// DefaultConfig returns the stock polling configuration: retry errors
// for up to five minutes, with exponentially growing jittered waits
// between attempts. The elapsed-time limit applies to failed attempts
// only; an error-free operation is polled until it completes or the
// context ends.
func DefaultConfig() Config {
	return Config{
		Continuation: polling.LimitedElapsedTime{MaximumDuration: 5 * time.Minute},
		Backoff:      polling.DefaultExponentialBackoff(),
	}
}

// Poller drives the poll-until-done loop for one operation. Create it
// with NewPoller; each Poller is single-use and single-consumer.
type Poller[R any] struct {
	poll   PollFunc[R]
	config Config
	logger zerolog.Logger
}

// NewPoller creates a Poller for the given poll function. Zero-valued
// Config fields fall back to DefaultConfig.
func NewPoller[R any](poll PollFunc[R], config Config) *Poller[R] {
	defaults := DefaultConfig()
	if config.Continuation == nil {
		config.Continuation = defaults.Continuation
	}
	if config.Backoff == nil {
		config.Backoff = defaults.Backoff
	}
	return &Poller[R]{
		poll:   poll,
		config: config,
		logger: logging.NewLogger("lro"),
	}
}

// Wait polls until the operation completes and returns its result.
//
// After each failed attempt the continuation policy is consulted; on
// Break the attempt's error is surfaced wrapped in ErrPollingStopped.
// Between attempts Wait sleeps for the backoff policy's wait period,
// returning ErrContextCancelled if the context ends first. An attempt
// that succeeds without the operation being done just schedules the
// next attempt.
func (p *Poller[R]) Wait(ctx context.Context) (R, error) {
	var zero R
	start := time.Now()

	for attempt := 1; ; attempt++ {
		pollAttemptsTotal.Inc()

		result, done, err := p.poll(ctx)
		if err == nil && done {
			if attempt > 1 {
				p.logger.Info().
					Int("attempts", attempt).
					Dur("elapsed", time.Since(start)).
					Msg("Operation completed")
			}
			return result, nil
		}

		if err != nil {
			if p.config.Continuation.OnError(start, attempt, err) == polling.Break {
				pollStoppedTotal.Inc()
				p.logger.Warn().
					Err(err).
					Int("attempts", attempt).
					Dur("elapsed", time.Since(start)).
					Msg("Polling stopped by policy")
				return zero, fmt.Errorf("%w after %d attempts: %v", ErrPollingStopped, attempt, err)
			}
		}

		delay := p.config.Backoff.WaitPeriod(start, attempt)
		pollBackoffSeconds.Observe(delay.Seconds())
		p.logger.Debug().
			Int("attempt", attempt).
			Dur("backoff", delay).
			Msg("Waiting before next poll")

		select {
		case <-ctx.Done():
			p.logger.Warn().
				Int("attempt", attempt).
				Msg("Context cancelled during poll backoff")
			return zero, fmt.Errorf("%w: %v", ErrContextCancelled, ctx.Err())
		case <-time.After(delay):
		}
	}
}
