// Package lro polls long-running operations until they complete.
//
// A long-running operation is a server-side job tracked by repeated
// "get status" calls. Poller drives that loop: it invokes the supplied
// PollFunc, consults a polling.ContinuationPolicy after each failed
// attempt, and sleeps per the polling.BackoffPolicy between attempts,
// honoring context cancellation throughout.
//
// Example usage:
//
//	poller := lro.NewPoller(func(ctx context.Context) (*Operation, bool, error) {
//	    op, err := client.GetOperation(ctx, name)
//	    if err != nil {
//	        return nil, false, err
//	    }
//	    return op, op.Done, nil
//	}, lro.DefaultConfig())
//	result, err := poller.Wait(ctx)
package lro
