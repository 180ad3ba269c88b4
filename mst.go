package arborx

import (
	"math"
	"sync"
	"sync/atomic"
)

// maxTraversalDepth bounds the explicit stack used while guiding a BVH
// descent from a single leaf. A balanced tree over realistic point counts
// never comes close to this depth; a degenerate tree that does is reported
// as ErrStackOverflow rather than corrupting memory.
const maxTraversalDepth = 64

type traversalStack struct {
	nodes [maxTraversalDepth]int
	dists [maxTraversalDepth]float64
	n     int
}

func (s *traversalStack) push(node int, dist float64) error {
	if s.n >= len(s.nodes) {
		return ErrStackOverflow
	}
	s.nodes[s.n] = node
	s.dists[s.n] = dist
	s.n++
	return nil
}

func (s *traversalStack) pop() (int, float64) {
	s.n--
	return s.nodes[s.n], s.dists[s.n]
}

func (s *traversalStack) empty() bool { return s.n == 0 }

// componentEdges holds the best candidate out-edge found so far for every
// component, one mutex per slot. ArborX keeps this as a 96-bit
// compare-and-swap over a packed (weight, target) word; Go has no lock-free
// primitive for a value this wide, so a narrow per-slot mutex plays the same
// role without resorting to a single global lock.
type componentEdges struct {
	mu    []sync.Mutex
	edges []WeightedEdge
}

func newComponentEdges(n int) *componentEdges {
	c := &componentEdges{mu: make([]sync.Mutex, n), edges: make([]WeightedEdge, n)}
	c.reset()
	return c
}

func (c *componentEdges) reset() {
	for i := range c.edges {
		c.edges[i] = uninitializedEdge
	}
}

func (c *componentEdges) min(idx int, candidate WeightedEdge) {
	c.mu[idx].Lock()
	if candidate.less(c.edges[idx]) {
		c.edges[idx] = candidate
	}
	c.mu[idx].Unlock()
}

func (c *componentEdges) get(idx int) WeightedEdge {
	c.mu[idx].Lock()
	e := c.edges[idx]
	c.mu[idx].Unlock()
	return e
}

// reduceLabels recomputes every internal node's label from its two
// children, bottom-up, without ever touching a node before both of its
// children are finalized. Rather than relying on a particular node-id
// ordering, it uses the same technique as a parallel BVH refit: each leaf
// walks up through its stored parent pointers, atomically incrementing a
// per-node visit counter; the first child to arrive stops immediately
// (its sibling isn't done yet), and the second pushes this node's label
// and continues upward. Exactly one of the two children processes each
// internal node, and the happens-before edge from the atomic increment
// guarantees it observes both children's finished labels.
func reduceLabels(executor Executor, bvh BVH, labels []int) error {
	n := bvh.Size()
	if n <= 1 {
		return nil
	}
	visited := make([]atomic.Int32, n-1)

	return executor.ParallelFor(n, func(l int) error {
		node := bvh.Parent(n - 1 + l)
		for node != -1 {
			if visited[node].Add(1) == 1 {
				return nil
			}
			left, right := bvh.LeftChild(node), bvh.RightChild(node)
			if labels[left] == labels[right] {
				labels[node] = labels[left]
			} else {
				labels[node] = -1
			}
			node = bvh.Parent(node)
		}
		return nil
	})
}

// mstEngine holds the per-round mutable state of the Borůvka loop described
// in the component design: a labels array over every BVH node, a radius and
// a best out-edge per component, and the parent-chase logic that resolves
// two components picking each other as mutual nearest neighbors in the same
// round.
type mstEngine struct {
	n        int
	bvh      BVH
	metric   Metric
	executor Executor

	labels   []int
	radii    []atomicFloat64
	outEdges *componentEdges
	numEdges atomic.Int64
	edges    []WeightedEdge
}

func (e *mstEngine) compIndex(component int) int { return component - (e.n - 1) }

func (e *mstEngine) run() ([]WeightedEdge, error) {
	n := e.n
	e.labels = make([]int, 2*n-1)
	for i := 0; i < n-1; i++ {
		e.labels[i] = -1
	}
	for l := 0; l < n; l++ {
		e.labels[n-1+l] = n - 1 + l
	}
	e.radii = make([]atomicFloat64, n)
	e.outEdges = newComponentEdges(n)
	e.edges = make([]WeightedEdge, n-1)

	numComponents := n
	for numComponents > 1 {
		if err := reduceLabels(e.executor, e.bvh, e.labels); err != nil {
			return nil, err
		}

		for i := range e.radii {
			e.radii[i].Store(math.Inf(1))
		}
		e.outEdges.reset()

		if err := e.resetSharedRadii(); err != nil {
			return nil, err
		}

		edgesBefore := e.numEdges.Load()

		if err := e.executor.ParallelFor(n, func(l int) error {
			return e.findComponentNearestNeighbor(n - 1 + l)
		}); err != nil {
			return nil, err
		}

		if err := e.executor.ParallelFor(n, func(l int) error {
			return e.updateComponentAndEdge(n - 1 + l)
		}); err != nil {
			return nil, err
		}

		edgesAfter := e.numEdges.Load()
		if edgesAfter == edgesBefore {
			return nil, ErrBoruvkaStalled
		}
		numComponents = n - int(edgesAfter)
	}

	e.finalizeEdges()
	return e.edges, nil
}

// resetSharedRadii seeds every component's radius with the distance between
// Morton-adjacent leaves straddling a component boundary, so the first
// traversal of a round already has a useful pruning bound instead of
// starting from +Inf.
func (e *mstEngine) resetSharedRadii() error {
	n := e.n
	if n < 2 {
		return nil
	}
	return e.executor.ParallelFor(n-1, func(idx int) error {
		i := n - 1 + idx
		j := i + 1
		labelI, labelJ := e.labels[i], e.labels[j]
		if labelI == labelJ {
			return nil
		}
		d := e.metric.Distance(
			e.bvh.LeafPermutation(i),
			e.bvh.LeafPermutation(j),
			distanceBoxBox(e.bvh.BoundingVolume(i), e.bvh.BoundingVolume(j)),
		)
		e.radii[e.compIndex(labelI)].Min(d)
		e.radii[e.compIndex(labelJ)].Min(d)
		return nil
	})
}

// findComponentNearestNeighbor guides a descent from leaf i down the BVH,
// pruning any subtree whose bounding-box distance exceeds i's component's
// current radius and skipping any leaf already in the same component. It
// mirrors FindComponentNearestNeighbors::operator() from the original
// MST traversal: nearer child visited first, farther child pushed on an
// explicit stack only when both children are worth visiting.
func (e *mstEngine) findComponentNearestNeighbor(i int) error {
	component := e.labels[i]
	leafPermI := e.bvh.LeafPermutation(i)
	boxI := e.bvh.BoundingVolume(i)
	radiusCell := &e.radii[e.compIndex(component)]

	best := WeightedEdge{Source: i, Target: -1, Weight: math.Inf(1)}

	var stack traversalStack
	node := e.bvh.Root()
	distNode := 0.0

	for {
		traverseLeft, traverseRight := false, false
		var left, right int
		distLeft, distRight := math.Inf(1), math.Inf(1)

		if distNode <= radiusCell.Load() {
			left, right = e.bvh.LeftChild(node), e.bvh.RightChild(node)
			distLeft = distanceBoxBox(boxI, e.bvh.BoundingVolume(left))
			distRight = distanceBoxBox(boxI, e.bvh.BoundingVolume(right))

			if e.labels[left] != component && distLeft <= radiusCell.Load() {
				if e.bvh.IsLeaf(left) {
					cand := e.metric.Distance(leafPermI, e.bvh.LeafPermutation(left), distLeft)
					edge := WeightedEdge{Source: i, Target: left, Weight: cand}
					if edge.less(best) {
						best = edge
						radiusCell.Min(cand)
					}
				} else {
					traverseLeft = true
				}
			}

			if e.labels[right] != component && distRight <= radiusCell.Load() {
				if e.bvh.IsLeaf(right) {
					cand := e.metric.Distance(leafPermI, e.bvh.LeafPermutation(right), distRight)
					edge := WeightedEdge{Source: i, Target: right, Weight: cand}
					if edge.less(best) {
						best = edge
						radiusCell.Min(cand)
					}
				} else {
					traverseRight = true
				}
			}
		}

		switch {
		case !traverseLeft && !traverseRight:
			if stack.empty() {
				e.outEdges.min(e.compIndex(component), best)
				return nil
			}
			node, distNode = stack.pop()
		case traverseLeft && traverseRight:
			if distLeft <= distRight {
				if err := stack.push(right, distRight); err != nil {
					return err
				}
				node, distNode = left, distLeft
			} else {
				if err := stack.push(left, distLeft); err != nil {
					return err
				}
				node, distNode = right, distRight
			}
		case traverseLeft:
			node, distNode = left, distLeft
		default:
			node, distNode = right, distRight
		}
	}
}

// computeNextComponent follows one hop of the mutual-nearest-neighbor
// chain rooted at component. Two components whose out-edges point at each
// other form a 2-cycle; computeFinalComponent below resolves it
// deterministically by picking the smaller of the two labels, matching
// UpdateComponentsAndEdges in the original traversal. A component that
// found no candidate edge this round (outEdge.Target == -1, the
// uninitialized sentinel) has nowhere to hop to and stays put.
func (e *mstEngine) computeNextComponent(component int) int {
	outEdge := e.outEdges.get(e.compIndex(component))
	if outEdge.Target == -1 {
		return component
	}
	nextComponent := e.labels[outEdge.Target]

	nextOutEdge := e.outEdges.get(e.compIndex(nextComponent))
	if nextOutEdge.Target == -1 {
		return nextComponent
	}
	nextNextComponent := e.labels[nextOutEdge.Target]

	if nextNextComponent != component {
		return nextComponent
	}
	lo, _ := minMax(component, nextComponent)
	return lo
}

func (e *mstEngine) computeFinalComponent(component int) int {
	prev := component
	for {
		next := e.computeNextComponent(prev)
		if next == prev {
			return next
		}
		prev = next
	}
}

// updateComponentAndEdge relabels leaf i to its fully resolved component
// and, if i is that component's representative leaf (i.e. i's label before
// this round's resolution equals i itself) and the component actually
// merged into another this round, records the edge that did it.
func (e *mstEngine) updateComponentAndEdge(i int) error {
	component := e.labels[i]
	final := e.computeFinalComponent(component)
	e.labels[i] = final

	if i != component {
		return nil
	}
	if i == final {
		return nil
	}
	edge := e.outEdges.get(e.compIndex(i))
	back := e.numEdges.Add(1) - 1
	e.edges[back] = edge
	return nil
}

func (e *mstEngine) finalizeEdges() {
	for idx := range e.edges {
		e.edges[idx].Source = e.bvh.LeafPermutation(e.edges[idx].Source)
		e.edges[idx].Target = e.bvh.LeafPermutation(e.edges[idx].Target)
	}
}

func computeCoreDistances(bvh BVH, points []Point, k int) ([]float64, error) {
	core := make([]float64, len(points))
	err := bvh.QueryKNN(points, k, func(q, _ int, dist float64) {
		if dist > core[q] {
			core[q] = dist
		}
	})
	return core, err
}

// MinimumSpanningTree computes the Euclidean minimum spanning tree over
// points using the default executor. When k > 1, edge weights are the
// HDBSCAN* mutual-reachability distance with core distances drawn from
// each point's k-th nearest neighbor; when k == 1, plain Euclidean
// distance is used.
func MinimumSpanningTree(points []Point, k int) ([]WeightedEdge, error) {
	return MinimumSpanningTreeWithExecutor(points, k, NewExecutor(0))
}

// MinimumSpanningTreeWithExecutor is MinimumSpanningTree with an explicit
// Executor, so callers can bound parallelism or supply a sequential one
// for deterministic tests.
func MinimumSpanningTreeWithExecutor(points []Point, k int, executor Executor) ([]WeightedEdge, error) {
	if len(points) < 1 {
		return nil, ErrEmptyInput
	}
	if k < 1 {
		return nil, ErrInvalidK
	}
	if len(points) < 2 {
		return []WeightedEdge{}, nil
	}

	bvh := NewBVH(points)

	var metric Metric = Euclidean{}
	if k > 1 {
		coreDistances, err := computeCoreDistances(bvh, points, k)
		if err != nil {
			return nil, err
		}
		metric = MutualReachability{CoreDistance: coreDistances}
	}

	eng := &mstEngine{n: len(points), bvh: bvh, metric: metric, executor: executor}
	return eng.run()
}
