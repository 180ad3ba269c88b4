package arborx

import "sort"

// noiseLabel marks a point that belongs to no cluster.
const noiseLabel = -1

// buildClusterCSR groups point indices by label into compressed sparse row
// form: cluster k occupies indices[offsets[k]:offsets[k+1]]. Points labeled
// noiseLabel, and points whose label forms a group smaller than
// clusterMinSize, are omitted from indices entirely rather than appearing
// as a trailing singleton cluster.
func buildClusterCSR(labels []int, clusterMinSize int) (offsets, indices []int) {
	n := len(labels)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		if labels[order[a]] != labels[order[b]] {
			return labels[order[a]] < labels[order[b]]
		}
		return order[a] < order[b]
	})

	offsets = []int{0}
	indices = make([]int, 0, n)

	for i := 0; i < n; {
		label := labels[order[i]]
		j := i + 1
		for j < n && labels[order[j]] == label {
			j++
		}
		if label != noiseLabel && j-i >= clusterMinSize {
			indices = append(indices, order[i:j]...)
			offsets = append(offsets, len(indices))
		}
		i = j
	}
	return offsets, indices
}
