// Package arborx implements a parallel spatial-clustering engine over 3D
// point clouds: a Euclidean minimum spanning tree built with a parallel
// Borůvka algorithm, and DBSCAN density clustering, both accelerated by a
// bounding volume hierarchy (BVH) and a concurrent union-find.
//
// The BVH and the goroutine-based parallel executor are the engine's only
// collaborators. Both kernels consume them purely through the interfaces in
// bvh.go and executor.go; neither kernel knows how the tree was built or how
// the work was scheduled.
//
// Basic usage:
//
//	edges, err := arborx.MinimumSpanningTree(points, 1)
//
//	offsets, indices, err := arborx.DBSCAN(points, eps, 1, 2)
//
// HDBSCAN*'s mutual reachability distance is available as a pluggable
// metric by passing k > 1 to MinimumSpanningTree.
package arborx
