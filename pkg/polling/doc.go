// Package polling defines the pluggable policies that govern repeated
// poll loops for long-running operations.
//
// Two independent contracts are consulted by a polling loop on every
// attempt:
//
//   - ContinuationPolicy decides, after a failed attempt, whether the
//     loop retries or stops and surfaces the error.
//   - BackoffPolicy computes the wait before the next attempt.
//
// Both receive only the loop start time and the attempt count (plus
// the error, for continuation decisions) and must behave as pure
// functions of those inputs. That keeps policies trivially swappable
// and deterministic under test. This package ships the stock
// implementations; pkg/lro hosts the loop that consults them.
package polling
