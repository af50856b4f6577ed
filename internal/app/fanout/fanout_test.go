package fanout

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

// --- Run ---

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("preserves input order", func(t *testing.T) {
		t.Parallel()
		items := []int{5, 3, 8, 1, 9, 2}

		results := Run(context.Background(), 3, items, func(_ context.Context, v int) (int, error) {
			return v * 10, nil
		})

		if len(results) != len(items) {
			t.Fatalf("Run() returned %d results, want %d", len(results), len(items))
		}
		for i, r := range results {
			if r.Err != nil {
				t.Fatalf("Run() results[%d].Err = %v, want nil", i, r.Err)
			}
			if r.Value != items[i]*10 {
				t.Errorf("Run() results[%d].Value = %d, want %d", i, r.Value, items[i]*10)
			}
		}
	})

	t.Run("empty input yields empty results", func(t *testing.T) {
		t.Parallel()
		results := Run(context.Background(), 2, []int(nil), func(_ context.Context, v int) (int, error) {
			t.Error("fn should not be called for empty input")
			return 0, nil
		})
		if len(results) != 0 {
			t.Fatalf("Run() returned %d results, want 0", len(results))
		}
	})

	t.Run("failures stay with their item", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")

		results := Run(context.Background(), 2, []int{1, 2, 3}, func(_ context.Context, v int) (int, error) {
			if v == 2 {
				return 0, boom
			}
			return v, nil
		})

		if results[0].Err != nil || results[2].Err != nil {
			t.Errorf("Run() errors on succeeding items: %v, %v", results[0].Err, results[2].Err)
		}
		if !errors.Is(results[1].Err, boom) {
			t.Errorf("Run() results[1].Err = %v, want %v", results[1].Err, boom)
		}
	})

	t.Run("never exceeds maxWorkers", func(t *testing.T) {
		t.Parallel()
		const maxWorkers = 2
		var active, peak atomic.Int32

		items := make([]int, 20)
		Run(context.Background(), maxWorkers, items, func(_ context.Context, _ int) (int, error) {
			n := active.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			active.Add(-1)
			return 0, nil
		})

		if p := peak.Load(); p > maxWorkers {
			t.Errorf("Run() observed %d concurrent workers, want <= %d", p, maxWorkers)
		}
	})

	t.Run("canceled context fails queued items", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		entered := make(chan struct{}, 1)
		release := make(chan struct{})
		go func() {
			<-entered
			cancel()
			// The single worker slot is still held here, so the queued
			// goroutines can only observe the cancellation.
			time.Sleep(50 * time.Millisecond)
			close(release)
		}()

		results := Run(ctx, 1, []int{1, 2, 3}, func(_ context.Context, v int) (int, error) {
			select {
			case entered <- struct{}{}:
			default:
			}
			<-release
			return v, nil
		})

		var canceled, completed int
		for _, r := range results {
			switch {
			case errors.Is(r.Err, context.Canceled):
				canceled++
			case r.Err == nil:
				completed++
			default:
				t.Errorf("Run() unexpected error %v", r.Err)
			}
		}
		if completed != 1 || canceled != 2 {
			t.Errorf("Run() completed = %d, canceled = %d, want 1 and 2", completed, canceled)
		}
	})
}

// --- FirstError ---

func TestFirstError(t *testing.T) {
	t.Parallel()

	t.Run("nil when all succeed", func(t *testing.T) {
		t.Parallel()
		results := []Result[int]{{Value: 1}, {Value: 2}}
		if err := FirstError(results); err != nil {
			t.Fatalf("FirstError() = %v, want nil", err)
		}
	})

	t.Run("returns the earliest error", func(t *testing.T) {
		t.Parallel()
		first := errors.New("first")
		second := errors.New("second")
		results := []Result[int]{{Value: 1}, {Err: first}, {Err: second}}
		if err := FirstError(results); !errors.Is(err, first) {
			t.Fatalf("FirstError() = %v, want %v", err, first)
		}
	})
}
