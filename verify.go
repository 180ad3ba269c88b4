package arborx

import "strconv"

// VerifyClusters independently checks a DBSCAN result by recomputing
// connected components with its own brute-force neighborhood scan and
// comparing cluster membership against it. It exists to catch a faulty
// DBSCAN implementation, not to be fast: it is O(n^2) and meant for test
// and small-input use, never the production query path.
//
// It reports the first mismatch found, or ok == true if every point's
// cluster membership matches the brute-force recomputation.
func VerifyClusters(points []Point, eps float64, coreMinSize, clusterMinSize int, offsets, indices []int) (ok bool, mismatch string) {
	n := len(points)
	labels := make([]int, n)
	for i := range labels {
		labels[i] = noiseLabel
	}
	for k := 0; k < len(offsets)-1; k++ {
		for _, idx := range indices[offsets[k]:offsets[k+1]] {
			labels[idx] = k
		}
	}

	counts := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if euclidean(points[i], points[j]) <= eps {
				counts[i]++
			}
		}
	}
	isCore := make([]bool, n)
	for i := range isCore {
		isCore[i] = counts[i] >= coreMinSize
	}
	if coreMinSize == 1 {
		for i := range isCore {
			isCore[i] = true
		}
	}

	uf := newUnionFind(n)
	for i := 0; i < n; i++ {
		if coreMinSize > 1 && !isCore[i] {
			continue
		}
		for j := 0; j < n; j++ {
			if i == j || euclidean(points[i], points[j]) > eps {
				continue
			}
			if coreMinSize == 1 || isCore[j] {
				uf.union(i, j)
			} else {
				uf.tryClaim(j, uf.find(i))
			}
		}
	}
	uf.flatten()

	expected := make([]int, n)
	for i := range expected {
		if uf.root(i) == i && !isCore[i] {
			expected[i] = noiseLabel
		} else {
			expected[i] = uf.root(i)
		}
	}

	sizes := make(map[int]int)
	for _, l := range expected {
		if l != noiseLabel {
			sizes[l]++
		}
	}

	for i := 0; i < n; i++ {
		gotNoise := labels[i] == noiseLabel
		wantNoise := expected[i] == noiseLabel || sizes[expected[i]] < clusterMinSize
		if gotNoise != wantNoise {
			return false, edgeMismatch(i, "noise/cluster membership disagrees with brute-force recomputation")
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if labels[i] == noiseLabel || labels[j] == noiseLabel {
				continue
			}
			sameGot := labels[i] == labels[j]
			sameWant := expected[i] == expected[j]
			if sameGot != sameWant {
				return false, edgeMismatch(i, "cluster co-membership disagrees with brute-force recomputation")
			}
		}
	}

	return true, ""
}

func edgeMismatch(i int, reason string) string {
	return reason + " at point index " + strconv.Itoa(i)
}
