package arborx

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestGoroutineExecutorParallelForVisitsEveryIndex(t *testing.T) {
	ex := NewExecutor(4)
	n := 1000
	seen := make([]atomic.Int32, n)

	err := ex.ParallelFor(n, func(i int) error {
		seen[i].Add(1)
		return nil
	})
	if err != nil {
		t.Fatalf("ParallelFor returned error: %v", err)
	}
	for i := range seen {
		if seen[i].Load() != 1 {
			t.Fatalf("index %d visited %d times, want 1", i, seen[i].Load())
		}
	}
}

func TestGoroutineExecutorParallelForPropagatesError(t *testing.T) {
	ex := NewExecutor(4)
	sentinel := errors.New("boom")

	err := ex.ParallelFor(100, func(i int) error {
		if i == 50 {
			return sentinel
		}
		return nil
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}
}

func TestGoroutineExecutorParallelForEmptyRange(t *testing.T) {
	ex := NewExecutor(4)
	if err := ex.ParallelFor(0, func(i int) error {
		t.Fatal("fn should not be called for n == 0")
		return nil
	}); err != nil {
		t.Fatalf("ParallelFor(0, ...) returned error: %v", err)
	}
}

func TestGoroutineExecutorSequentialFallback(t *testing.T) {
	ex := NewExecutor(1)
	var order []int
	err := ex.ParallelFor(5, func(i int) error {
		order = append(order, i)
		return nil
	})
	if err != nil {
		t.Fatalf("ParallelFor returned error: %v", err)
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("width=1 executor should run in order, got %v", order)
		}
	}
}
