package arborx

import (
	"sync"
	"testing"
)

func TestUnionFindInitialState(t *testing.T) {
	uf := newUnionFind(5)
	for i := 0; i < 5; i++ {
		if uf.find(i) != i {
			t.Errorf("find(%d) = %d, want %d", i, uf.find(i), i)
		}
	}
}

func TestUnionFindUnionLinksLowerRoot(t *testing.T) {
	uf := newUnionFind(5)
	uf.union(1, 3)
	if uf.find(1) != uf.find(3) {
		t.Error("after union(1,3), find(1) != find(3)")
	}
	if uf.find(1) != 1 {
		t.Errorf("union always links the higher root into the lower one; find(1) = %d, want 1", uf.find(1))
	}
}

func TestUnionFindMultipleUnions(t *testing.T) {
	uf := newUnionFind(6)
	uf.union(0, 1)
	uf.union(1, 2)
	uf.union(3, 4)
	uf.union(4, 5)

	if uf.find(0) != uf.find(2) {
		t.Error("0 and 2 should be in the same set")
	}
	if uf.find(3) != uf.find(5) {
		t.Error("3 and 5 should be in the same set")
	}
	if uf.find(0) == uf.find(3) {
		t.Error("0 and 3 should be in different sets")
	}
}

func TestUnionFindTryClaim(t *testing.T) {
	uf := newUnionFind(3)
	if !uf.tryClaim(2, 0) {
		t.Fatal("tryClaim on an unclaimed root should succeed")
	}
	if uf.find(2) != 0 {
		t.Errorf("find(2) = %d, want 0 after tryClaim(2, 0)", uf.find(2))
	}
	if uf.tryClaim(2, 1) {
		t.Error("tryClaim on an already-claimed element should fail")
	}
}

func TestUnionFindFlatten(t *testing.T) {
	uf := newUnionFind(4)
	uf.union(0, 1)
	uf.union(1, 2)
	uf.flatten()

	root := uf.root(0)
	for i := 0; i < 3; i++ {
		if uf.root(i) != root {
			t.Errorf("root(%d) = %d, want %d after flatten", i, uf.root(i), root)
		}
	}
	if uf.root(3) != 3 {
		t.Errorf("root(3) = %d, want 3 (untouched singleton)", uf.root(3))
	}
}

func TestUnionFindConcurrentUnions(t *testing.T) {
	n := 200
	uf := newUnionFind(n)

	var wg sync.WaitGroup
	for i := 0; i < n-1; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			uf.union(i, i+1)
		}()
	}
	wg.Wait()
	uf.flatten()

	root := uf.root(0)
	for i := 1; i < n; i++ {
		if uf.root(i) != root {
			t.Fatalf("root(%d) = %d, want %d: concurrent chained unions should merge everything into one component", i, uf.root(i), root)
		}
	}
}
