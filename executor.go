package arborx

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Executor provides data-parallel primitives over dense integer ranges.
// Work items run in unspecified order, potentially on many goroutines
// simultaneously; there is an implicit barrier at the end of every call —
// the kernel has fully completed before the call returns.
type Executor interface {
	// ParallelFor invokes fn(i) for every i in [0, n). If fn returns a
	// non-nil error for some i, ParallelFor returns the first such error
	// after all in-flight work items finish; remaining unscheduled items
	// are skipped.
	ParallelFor(n int, fn func(i int) error) error
}

// goroutineExecutor is the default Executor: it splits [0, n) into
// contiguous chunks (the same chunk-per-worker split the teacher's
// ComputePairwiseDistancesParallel uses) and runs each chunk on its own
// goroutine, bounded by a semaphore sized to width and coordinated with an
// errgroup so the first error cancels the rest.
type goroutineExecutor struct {
	width int64
}

// NewExecutor returns an Executor that runs work across up to width
// goroutines at a time. width <= 0 defaults to runtime.GOMAXPROCS(0).
func NewExecutor(width int) Executor {
	if width <= 0 {
		width = runtime.GOMAXPROCS(0)
	}
	return &goroutineExecutor{width: int64(width)}
}

func (e *goroutineExecutor) ParallelFor(n int, fn func(i int) error) error {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return fn(0)
	}

	workers := int(e.width)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	sem := semaphore.NewWeighted(e.width)
	g, ctx := errgroup.WithContext(context.Background())

	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		start, end := start, end
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				if err := fn(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
