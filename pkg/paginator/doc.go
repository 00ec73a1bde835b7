// Package paginator converts token-paged list calls into lazy sequences
// of pages or individual items.
//
// Cloud list endpoints return one bounded page of items per call plus an
// opaque continuation token; an empty token marks the last page. This
// package implements the token-threading loop once, so generated
// per-endpoint request builders only supply a fetch closure and the
// response accessors.
//
// Example usage:
//
//	pager := paginator.New[*ListWidgetsResponse, Widget]("", func(ctx context.Context, token string) (*ListWidgetsResponse, error) {
//	    return client.ListWidgets(ctx, req.WithPageToken(token))
//	})
//	for {
//	    page, err := pager.Next(ctx)
//	    if errors.Is(err, paginator.Done) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // use page
//	}
//
// A paginator is pull-driven and single-consumer:
//   - Each Next call issues at most one fetch; nothing runs ahead of
//     the consumer.
//   - A fetch error is returned exactly once and terminates the
//     sequence; later calls return Done without fetching again.
//   - Concurrent Next calls on one instance are unsupported.
//     Independent instances are fully independent.
//
// Items() flattens the page sequence into individual items with the
// same termination behavior. All() exposes either sequence through
// range-over-func iteration for use with standard loops.
package paginator
