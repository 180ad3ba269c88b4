package arborx

import "sync/atomic"

// DBSCAN clusters points by density: a point is a core point once at least
// coreMinSize points (itself included) lie within eps of it. Core points
// within eps of each other share a cluster; a border point, within eps of a
// core point but not itself core, is attached to exactly one such core's
// cluster. coreMinSize == 1 makes every point trivially core, collapsing
// the algorithm to plain connected components of the eps-radius graph (the
// CCS shortcut).
//
// The result is compressed sparse row: cluster k occupies
// indices[offsets[k]:offsets[k+1]]. Points absent from indices are noise,
// including points whose cluster came out smaller than clusterMinSize.
func DBSCAN(points []Point, eps float64, coreMinSize, clusterMinSize int) (offsets, indices []int, err error) {
	return DBSCANWithExecutor(points, eps, coreMinSize, clusterMinSize, NewExecutor(0))
}

// DBSCANWithExecutor is DBSCAN with an explicit Executor.
func DBSCANWithExecutor(points []Point, eps float64, coreMinSize, clusterMinSize int, executor Executor) (offsets, indices []int, err error) {
	if len(points) < 1 {
		return nil, nil, ErrEmptyInput
	}
	if eps < 0 {
		return nil, nil, ErrNegativeEps
	}
	if coreMinSize < 1 {
		return nil, nil, ErrInvalidCoreMinSize
	}
	if clusterMinSize < 2 {
		return nil, nil, ErrInvalidClusterMinSize
	}

	n := len(points)
	bvh := NewBVH(points)
	uf := newUnionFind(n)

	spheres := make([]Sphere, n)
	for i, p := range points {
		spheres[i] = Sphere{Center: p, Radius: eps}
	}

	var isCore []bool
	if coreMinSize == 1 {
		isCore = allCore(n)
		dbscanCCS(bvh, spheres, uf)
	} else {
		isCore, err = dbscanCore(executor, bvh, spheres, uf, coreMinSize)
		if err != nil {
			return nil, nil, err
		}
	}

	uf.flatten()

	labels, err := dbscanLabels(executor, uf, isCore)
	if err != nil {
		return nil, nil, err
	}
	offsets, indices = buildClusterCSR(labels, clusterMinSize)
	return offsets, indices, nil
}

func allCore(n int) []bool {
	isCore := make([]bool, n)
	for i := range isCore {
		isCore[i] = true
	}
	return isCore
}

// dbscanCCS unions every eps-radius pair once (only the i < j direction, by
// symmetry) since every point is a core point and there is no border-point
// distinction to make.
func dbscanCCS(bvh BVH, spheres []Sphere, uf *unionFind) {
	bvh.QueryRadius(spheres, func(i, j int) {
		if j > i {
			uf.union(i, j)
		}
	})
}

// dbscanCore runs the standard two-pass core/border algorithm: tally each
// point's eps-neighborhood size (a point is always its own neighbor at
// distance 0, so a lone point has a count of 1), decide core membership,
// then let only core points union with core neighbors or claim unclaimed
// non-core neighbors as their own border points.
func dbscanCore(executor Executor, bvh BVH, spheres []Sphere, uf *unionFind, coreMinSize int) ([]bool, error) {
	n := len(spheres)
	counts := make([]atomic.Int32, n)
	bvh.QueryRadius(spheres, func(i, _ int) {
		counts[i].Add(1)
	})

	isCore := make([]bool, n)
	if err := executor.ParallelFor(n, func(i int) error {
		isCore[i] = int(counts[i].Load()) >= coreMinSize
		return nil
	}); err != nil {
		return nil, err
	}

	bvh.QueryRadius(spheres, func(i, j int) {
		if i == j || !isCore[i] {
			return
		}
		if isCore[j] {
			uf.union(i, j)
			return
		}
		uf.tryClaim(j, uf.find(i))
	})

	return isCore, nil
}

// dbscanLabels reports each point's flattened component id, except a point
// that is still its own root after flatten and is not itself core: such a
// point merged with nothing and was claimed by no one, i.e. noise.
func dbscanLabels(executor Executor, uf *unionFind, isCore []bool) ([]int, error) {
	n := uf.len()
	labels := make([]int, n)
	err := executor.ParallelFor(n, func(i int) error {
		root := uf.root(i)
		if root == i && !isCore[i] {
			labels[i] = noiseLabel
			return nil
		}
		labels[i] = root
		return nil
	})
	return labels, err
}
