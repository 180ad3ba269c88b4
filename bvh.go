package arborx

// BVH is the spatial-index collaborator the MST and DBSCAN kernels consume.
// Building a BVH is explicitly out of scope for this module's core (it is
// an external collaborator); bvh_build.go and bvh_query.go ship one
// concrete, independently swappable implementation so the kernels have
// something real to run against end to end.
type BVH interface {
	// Size returns the number of primitives (points) indexed.
	Size() int

	// Root returns the root node id.
	Root() int

	// IsLeaf reports whether node is a leaf.
	IsLeaf(node int) bool

	// LeftChild and RightChild return node's children. Undefined for leaves.
	LeftChild(node int) int
	RightChild(node int) int

	// Parent returns node's parent, or -1 for the root.
	Parent(node int) int

	// BoundingVolume returns the AABB of node.
	BoundingVolume(node int) Box

	// LeafPermutation maps a leaf node id to its original point index.
	LeafPermutation(leaf int) int

	// QueryRadius invokes callback(queryIndex, primitiveIndex) for every
	// primitive within spheres[queryIndex].Radius of spheres[queryIndex].Center,
	// for every query index in [0, len(spheres)).
	QueryRadius(spheres []Sphere, callback func(queryIndex, primitiveIndex int))

	// QueryKNN invokes callback(queryIndex, primitiveIndex, distance) for
	// each of the k nearest neighbors of points[queryIndex], for every query
	// index in [0, len(points)). Returns ErrStackOverflow if a query's
	// descent exceeds the traversal stack's depth.
	QueryKNN(points []Point, k int, callback func(queryIndex, primitiveIndex int, distance float64)) error
}
