package arborx

import "math"

// WeightedEdge is an edge of the minimum spanning tree. Its total order
// compares weight first, then the unordered pair of endpoints — this makes
// atomic-min selection over WeightedEdge deterministic under parallel
// execution: ties are broken the same way no matter which goroutine got
// there first.
type WeightedEdge struct {
	Source int
	Target int
	Weight float64
}

// uninitializedEdge is the sentinel value for "no candidate edge found yet".
var uninitializedEdge = WeightedEdge{Source: -1, Target: -1, Weight: math.Inf(1)}

// less reports whether e sorts strictly before o: first by weight, then by
// the unordered pair (min endpoint, then max endpoint).
func (e WeightedEdge) less(o WeightedEdge) bool {
	if e.Weight != o.Weight {
		return e.Weight < o.Weight
	}
	eMin, eMax := minMax(e.Source, e.Target)
	oMin, oMax := minMax(o.Source, o.Target)
	if eMin != oMin {
		return eMin < oMin
	}
	return eMax < oMax
}

func minMax(a, b int) (lo, hi int) {
	if a < b {
		return a, b
	}
	return b, a
}
