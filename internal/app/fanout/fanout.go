// Package fanout provides a generic, bounded-concurrency fan-out helper for
// application-layer orchestration: it runs a function across a slice of items
// with a fixed number of worker goroutines and preserves input order in the
// results. It is used for per-item writes that succeed or fail independently,
// such as detaching every task of an epic.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome of processing a single item. Either Value is
// populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers concurrent
// goroutines and blocks until all complete. Results are in input order.
//
// A goroutine that is still waiting for a worker slot when ctx is canceled
// records ctx.Err() instead of calling fn; goroutines that already hold a
// slot run to completion (fn checks ctx itself if it supports cancellation).
// maxWorkers must be >= 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(idx int, it T) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx] = Result[R]{Err: ctx.Err()}
				return
			}

			val, err := fn(ctx, it)
			results[idx] = Result[R]{Value: val, Err: err}
		}(i, item)
	}

	wg.Wait()
	return results
}

// FirstError returns the first non-nil error among results, or nil.
func FirstError[R any](results []Result[R]) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}
