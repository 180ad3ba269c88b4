package arborx

// arborxBVH is the reference BVH implementation. Node numbering follows
// ArborX's convention (original_source/src/details/ArborX_MinimumSpanningTree.hpp,
// HappyTreeFriends): internal nodes occupy [0, n-1), leaves occupy
// [n-1, 2n-1), and the root is node 0 (node 0 itself is the sole leaf when
// n == 1).
type arborxBVH struct {
	n               int
	points          []Point
	leafPermutation []int // leafPermutation[l] = original point index of leaf-local slot l

	isLeaf []bool
	left   []int
	right  []int
	parent []int
	box    []Box
}

// NewBVH builds the reference BVH over points: points are ordered by a 3D
// Morton code, then recursively median-split into a binary tree whose
// per-node bounding volume is the union of its children's. This is a
// one-pass simplification of Karras' binary-radix-tree LBVH construction
// (see DESIGN.md): since the Morton order is already computed up front, a
// top-down median split over that fixed order produces the same leaf
// permutation contract without needing the radix-tree machinery.
func NewBVH(points []Point) BVH {
	n := len(points)
	total := 2*n - 1
	if total < 1 {
		total = 1
	}

	t := &arborxBVH{
		n:               n,
		points:          points,
		leafPermutation: mortonOrder(points),
		isLeaf:          make([]bool, total),
		left:            make([]int, total),
		right:           make([]int, total),
		parent:          make([]int, total),
		box:             make([]Box, total),
	}
	for i := range t.parent {
		t.parent[i] = -1
	}

	if n == 0 {
		return t
	}

	counter := 0
	t.build(0, n, &counter)
	return t
}

// build constructs the subtree over leaf-local positions [start, end) and
// returns its node id. Internal node ids are assigned from counter in
// pre-order (root gets 0), leaf node ids are fixed at n-1+start.
func (t *arborxBVH) build(start, end int, counter *int) int {
	if end-start == 1 {
		leaf := t.n - 1 + start
		t.isLeaf[leaf] = true
		t.box[leaf] = boxFromPoint(t.points[t.leafPermutation[start]])
		return leaf
	}

	id := *counter
	*counter++

	mid := start + (end-start)/2
	leftChild := t.build(start, mid, counter)
	rightChild := t.build(mid, end, counter)

	t.left[id] = leftChild
	t.right[id] = rightChild
	t.parent[leftChild] = id
	t.parent[rightChild] = id
	t.box[id] = t.box[leftChild].Union(t.box[rightChild])

	return id
}

func (t *arborxBVH) Size() int { return t.n }

func (t *arborxBVH) Root() int {
	if t.n <= 1 {
		return 0
	}
	return 0
}

func (t *arborxBVH) IsLeaf(node int) bool { return t.isLeaf[node] }

func (t *arborxBVH) LeftChild(node int) int  { return t.left[node] }
func (t *arborxBVH) RightChild(node int) int { return t.right[node] }
func (t *arborxBVH) Parent(node int) int     { return t.parent[node] }

func (t *arborxBVH) BoundingVolume(node int) Box { return t.box[node] }

func (t *arborxBVH) LeafPermutation(leaf int) int {
	return t.leafPermutation[leaf-(t.n-1)]
}
