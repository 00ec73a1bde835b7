package lro

import "errors"

// Common errors returned by the poller.
var (
	// ErrPollingStopped is returned when the continuation policy stops
	// the loop before the operation completed. It wraps the error of
	// the final attempt.
	ErrPollingStopped = errors.New("polling stopped by policy")

	// ErrContextCancelled is returned when the context is cancelled
	// while waiting between attempts.
	ErrContextCancelled = errors.New("context cancelled")
)
