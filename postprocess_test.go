package arborx

import "testing"

func TestBuildClusterCSRGroupsByLabel(t *testing.T) {
	labels := []int{5, 5, 3, 3, 5}
	offsets, _ := buildClusterCSR(labels, 2)

	if len(offsets)-1 != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(offsets)-1)
	}
	total := 0
	for k := 0; k < len(offsets)-1; k++ {
		total += offsets[k+1] - offsets[k]
	}
	if total != 5 {
		t.Fatalf("CSR should cover all 5 points, covers %d", total)
	}
}

func TestBuildClusterCSRDropsNoise(t *testing.T) {
	labels := []int{0, 0, noiseLabel, noiseLabel, 0}
	offsets, indices := buildClusterCSR(labels, 2)

	if len(offsets)-1 != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(offsets)-1)
	}
	if len(indices) != 3 {
		t.Fatalf("expected 3 clustered points, got %d", len(indices))
	}
	for _, idx := range indices {
		if labels[idx] != 0 {
			t.Errorf("index %d has label %d, expected it excluded or label 0", idx, labels[idx])
		}
	}
}

func TestBuildClusterCSRDropsUndersizedClusters(t *testing.T) {
	labels := []int{0, 0, 1, 1, 1}
	offsets, indices := buildClusterCSR(labels, 3)

	if len(offsets)-1 != 1 {
		t.Fatalf("expected 1 cluster (label 1 only), got %d", len(offsets)-1)
	}
	if len(indices) != 3 {
		t.Fatalf("expected 3 points in the surviving cluster, got %d", len(indices))
	}
}

func TestBuildClusterCSROffsetsAreExclusivePrefixSum(t *testing.T) {
	labels := []int{1, 1, 2, 2, 2, 3, 3}
	offsets, _ := buildClusterCSR(labels, 2)
	if offsets[0] != 0 {
		t.Fatalf("offsets[0] = %d, want 0", offsets[0])
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			t.Fatalf("offsets must be non-decreasing: %v", offsets)
		}
	}
}
