package arborx

import "sync/atomic"

// unionFind is a lock-free concurrent disjoint-set structure over [0, n).
// On construction stat[i] = i. Find uses path halving: every step writes
// stat[v] <- stat[stat[v]] non-atomically, which is safe because any parent
// observed mid-walk is still a valid ancestor. Union always links the
// larger root id into the smaller one via compare-and-swap — this tie-break
// is what keeps concurrent unions deterministic and lock-free.
type unionFind struct {
	stat []atomic.Int64
}

// newUnionFind returns a unionFind over n elements, each its own root.
func newUnionFind(n int) *unionFind {
	uf := &unionFind{stat: make([]atomic.Int64, n)}
	for i := range uf.stat {
		uf.stat[i].Store(int64(i))
	}
	return uf
}

// find walks stat until it reaches a fixed point, halving the path as it
// goes, and returns the observed root.
func (uf *unionFind) find(i int) int {
	for {
		parent := uf.stat[i].Load()
		if parent == int64(i) {
			return i
		}
		grandparent := uf.stat[parent].Load()
		uf.stat[i].Store(grandparent)
		i = int(grandparent)
	}
}

// union merges the components containing a and b. It always attaches the
// higher root id to the lower one, retrying find(hi) on CAS failure.
func (uf *unionFind) union(a, b int) {
	for {
		ra, rb := uf.find(a), uf.find(b)
		if ra == rb {
			return
		}
		lo, hi := minMax(ra, rb)
		if uf.stat[hi].CompareAndSwap(int64(hi), int64(lo)) {
			return
		}
		// Someone else linked hi elsewhere between find and CAS; refresh
		// and retry from the current state of hi's component.
		a, b = lo, hi
	}
}

// tryClaim attempts to atomically set stat[j] to i only if stat[j] is
// currently j itself (j is still its own, unclaimed root). It is the
// primitive behind DBSCAN border-point attachment: the first core to claim
// a border point wins, and later claimants silently lose.
func (uf *unionFind) tryClaim(j, i int) bool {
	return uf.stat[j].CompareAndSwap(int64(j), int64(i))
}

// flatten makes every entry point directly at its root. After flatten,
// stat[i] == stat[j] iff i and j are in the same component.
func (uf *unionFind) flatten() {
	for i := range uf.stat {
		root := uf.find(i)
		uf.stat[i].Store(int64(root))
	}
}

// root returns the current (post-flatten) component id of i.
func (uf *unionFind) root(i int) int {
	return int(uf.stat[i].Load())
}

func (uf *unionFind) len() int { return len(uf.stat) }
