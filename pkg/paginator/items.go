package paginator

import (
	"context"
	"errors"
	"iter"
)

// ItemPaginator flattens a page sequence into a sequence of individual
// items. Obtain one via Paginator.Items. It buffers only the unread
// remainder of the most recently fetched page.
type ItemPaginator[T PageableResponse[I], I any] struct {
	pages *Paginator[T, I]

	// buffer holds the unread remainder of the current page. It is
	// empty only right after construction or once every item of the
	// most recent page has been yielded.
	buffer []I
}

// Next returns the next individual item.
//
// Zero-item pages do not end the sequence; Next keeps pulling pages
// until an item is found, the underlying fetch fails, or the page
// sequence is exhausted. Termination mirrors Paginator.Next: a fetch
// error is returned exactly once, then Done forever.
func (it *ItemPaginator[T, I]) Next(ctx context.Context) (I, error) {
	for {
		if len(it.buffer) > 0 {
			item := it.buffer[0]
			it.buffer = it.buffer[1:]
			return item, nil
		}

		page, err := it.pages.Next(ctx)
		if err != nil {
			// Done or a fetch error, either way terminal.
			var zero I
			return zero, err
		}
		it.buffer = page.Items()
	}
}

// All exposes the remaining items as a range-over-func sequence. Thin
// wrapper over Next, same termination behavior as Paginator.All.
func (it *ItemPaginator[T, I]) All(ctx context.Context) iter.Seq2[I, error] {
	return func(yield func(I, error) bool) {
		for {
			item, err := it.Next(ctx)
			if errors.Is(err, Done) {
				return
			}
			if !yield(item, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}
