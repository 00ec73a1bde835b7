// Package paginator provides lazy iteration over token-paged list endpoints.
package paginator

import (
	"context"
	"errors"
	"iter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
)

// Prometheus metrics for pagination operations.
var (
	pagesFetchedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cloudapi_pages_fetched_total",
		Help: "Total pages fetched successfully across all paginators",
	})

	pageFetchErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cloudapi_page_fetch_errors_total",
		Help: "Total page fetches that returned an error",
	})
)

// Done is returned by Next when the sequence has no more values.
// It is a sentinel in the manner of io.EOF: compare with errors.Is
// and stop iterating once it appears.
var Done = errors.New("no more pages")

// PageableResponse is implemented by list-response types that can be
// paged over. Generated per-endpoint response types satisfy it.
type PageableResponse[I any] interface {
	// Items returns the items contained in this page. Calling it hands
	// ownership of the items to the caller; the page should not be
	// reused afterwards.
	Items() []I

	// NextPageToken returns the continuation token for the following
	// page. An empty token means this page is the last one.
	NextPageToken() string
}

// FetchFunc fetches one page given a continuation token. The token is
// empty on the first call when iteration starts from the beginning;
// afterwards it is always the token returned by the previous page.
//
// A FetchFunc must be callable repeatedly: either stateless or
// internally synchronized. The context is the one passed to Next;
// timeout and cancellation behavior belong to the fetch function,
// the paginator imposes neither.
type FetchFunc[T any] func(ctx context.Context, pageToken string) (T, error)

// loopState is the two-variant continuation state at the fetch-result
// boundary: more=true carries the token for the next fetch, more=false
// means the sequence is terminal. The empty-string "done" sentinel of
// the wire format is translated into this form exactly once, in
// stateForToken.
type loopState struct {
	token string
	more  bool
}

// stateForToken maps a token returned by a page to the next loop state.
func stateForToken(token string) loopState {
	if token == "" {
		return loopState{}
	}
	return loopState{token: token, more: true}
}

// Paginator is a lazy, forward-only sequence of pages. Create one with
// New; consume it with Next, All, or Items. A single consumer is
// assumed, see the package documentation.
type Paginator[T PageableResponse[I], I any] struct {
	fetch FetchFunc[T]
	state loopState
}

// New creates a Paginator from a seed continuation token and a fetch
// function. An empty seed token is valid and means "start from the
// beginning"; only a token *returned* by a page ends the sequence.
func New[T PageableResponse[I], I any](seedToken string, fetch FetchFunc[T]) *Paginator[T, I] {
	return &Paginator[T, I]{
		fetch: fetch,
		state: loopState{token: seedToken, more: true},
	}
}

// Next returns the next page of the sequence.
//
// It returns Done once the sequence is exhausted: after the final page
// (one whose returned token was empty) has been yielded, or after a
// fetch error has been surfaced. A fetch error is returned exactly
// once and is always the final non-Done value; no further fetch is
// ever issued for this paginator.
func (p *Paginator[T, I]) Next(ctx context.Context) (T, error) {
	var zero T
	if !p.state.more {
		return zero, Done
	}

	page, err := p.fetch(ctx, p.state.token)
	if err != nil {
		p.state = loopState{}
		pageFetchErrorsTotal.Inc()
		log.Debug().
			Err(err).
			Msg("Page fetch failed, sequence terminated")
		return zero, err
	}

	p.state = stateForToken(page.NextPageToken())
	pagesFetchedTotal.Inc()
	return page, nil
}

// Items converts the paginator into an item-level sequence over the
// same pages. The original paginator is consumed and must not be used
// afterwards.
func (p *Paginator[T, I]) Items() *ItemPaginator[T, I] {
	return &ItemPaginator[T, I]{pages: p}
}

// All exposes the remaining pages as a range-over-func sequence.
//
// It is a thin wrapper over Next and shares all of its semantics: the
// loop ends silently on Done, and a fetch error is yielded once as the
// final pair. Breaking out of the loop early simply abandons the
// paginator.
func (p *Paginator[T, I]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			page, err := p.Next(ctx)
			if errors.Is(err, Done) {
				return
			}
			if !yield(page, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}
