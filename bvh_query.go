package arborx

import "container/heap"

// QueryRadius implements the BVH radius-query interface with an iterative,
// stack-based traversal (no recursion, per the engine's traversal-stack
// discipline) for every query sphere independently.
func (t *arborxBVH) QueryRadius(spheres []Sphere, callback func(queryIndex, primitiveIndex int)) {
	if t.n == 0 {
		return
	}
	var stack []int
	for q, sphere := range spheres {
		stack = stack[:0]
		stack = append(stack, t.Root())
		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !sphere.intersectsBox(t.box[node]) {
				continue
			}
			if t.isLeaf[node] {
				callback(q, t.LeafPermutation(node))
				continue
			}
			stack = append(stack, t.left[node], t.right[node])
		}
	}
}

// knnItem is one candidate in the bounded-size max-heap used by QueryKNN:
// the root of the heap is always the current worst (farthest) of the best k
// seen so far, so a new candidate closer than the root displaces it.
type knnItem struct {
	index int
	dist  float64
}

type knnHeap []knnItem

func (h knnHeap) Len() int            { return len(h) }
func (h knnHeap) Less(i, j int) bool  { return h[i].dist > h[j].dist }
func (h knnHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *knnHeap) Push(x interface{}) { *h = append(*h, x.(knnItem)) }
func (h *knnHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// QueryKNN implements the BVH k-nearest-neighbor interface with an
// iterative, explicit-stack, nearest-child-first traversal guided by a
// bounded max-heap, the same traversal-stack discipline as mst.go's
// findComponentNearestNeighbor: a fixed-depth stack on the call frame,
// ErrStackOverflow rather than unbounded recursion if a query's descent
// goes deeper than the BVH ever should.
func (t *arborxBVH) QueryKNN(points []Point, k int, callback func(queryIndex, primitiveIndex int, distance float64)) error {
	if t.n == 0 || k <= 0 {
		return nil
	}
	if k > t.n {
		k = t.n
	}

	h := &knnHeap{}
	for q, query := range points {
		*h = (*h)[:0]
		if err := t.knnSearch(query, k, h); err != nil {
			return err
		}

		results := make([]knnItem, h.Len())
		for i := len(results) - 1; i >= 0; i-- {
			results[i] = heap.Pop(h).(knnItem)
		}
		for _, r := range results {
			callback(q, r.index, r.dist)
		}
	}
	return nil
}

// knnSearch descends from the root with an explicit stack of (node, boxDist)
// pairs, visiting the nearer child first and pushing the farther child only
// when it is still worth a later visit against the current k-th best
// distance.
func (t *arborxBVH) knnSearch(query Point, k int, h *knnHeap) error {
	var stack traversalStack
	node := t.Root()
	boxDist := distanceBoxPoint(t.box[node], query)

	for {
		if !(h.Len() >= k && boxDist > (*h)[0].dist) {
			if t.isLeaf[node] {
				idx := t.LeafPermutation(node)
				d := euclidean(query, t.points[idx])
				if h.Len() < k {
					heap.Push(h, knnItem{index: idx, dist: d})
				} else if d < (*h)[0].dist {
					heap.Pop(h)
					heap.Push(h, knnItem{index: idx, dist: d})
				}
			} else {
				left, right := t.left[node], t.right[node]
				leftDist := distanceBoxPoint(t.box[left], query)
				rightDist := distanceBoxPoint(t.box[right], query)

				nearChild, farChild, nearDist, farDist := left, right, leftDist, rightDist
				if rightDist < leftDist {
					nearChild, farChild, nearDist, farDist = right, left, rightDist, leftDist
				}
				if err := stack.push(farChild, farDist); err != nil {
					return err
				}
				node, boxDist = nearChild, nearDist
				continue
			}
		}

		if stack.empty() {
			return nil
		}
		node, boxDist = stack.pop()
	}
}
