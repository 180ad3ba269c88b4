package arborx

import "testing"

func TestWeightedEdgeLessByWeight(t *testing.T) {
	a := WeightedEdge{Source: 0, Target: 1, Weight: 1}
	b := WeightedEdge{Source: 2, Target: 3, Weight: 2}
	if !a.less(b) {
		t.Error("edge with smaller weight should sort first")
	}
	if b.less(a) {
		t.Error("edge with larger weight should not sort first")
	}
}

func TestWeightedEdgeTieBreakByEndpoints(t *testing.T) {
	a := WeightedEdge{Source: 5, Target: 1, Weight: 1}
	b := WeightedEdge{Source: 5, Target: 2, Weight: 1}
	if !a.less(b) {
		t.Error("equal weight should break ties by (min, max) endpoint pair")
	}

	c := WeightedEdge{Source: 1, Target: 5, Weight: 1}
	if a.less(c) || c.less(a) {
		t.Error("(5,1) and (1,5) are the same unordered pair and should compare equal")
	}
}

func TestUninitializedEdgeSortsLast(t *testing.T) {
	e := WeightedEdge{Source: 0, Target: 1, Weight: 0.5}
	if !e.less(uninitializedEdge) {
		t.Error("any finite-weight edge should sort before the uninitialized sentinel")
	}
}

func TestMinMax(t *testing.T) {
	if lo, hi := minMax(3, 1); lo != 1 || hi != 3 {
		t.Errorf("minMax(3,1) = (%d,%d), want (1,3)", lo, hi)
	}
	if lo, hi := minMax(1, 3); lo != 1 || hi != 3 {
		t.Errorf("minMax(1,3) = (%d,%d), want (1,3)", lo, hi)
	}
}
