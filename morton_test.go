package arborx

import "testing"

func TestMortonOrderIsAPermutation(t *testing.T) {
	points := []Point{
		{0, 0, 0}, {1, 1, 1}, {0.5, 0.5, 0.5}, {2, 0, 1}, {0, 2, 1},
	}
	order := mortonOrder(points)
	if len(order) != len(points) {
		t.Fatalf("len(order) = %d, want %d", len(order), len(points))
	}
	seen := make(map[int]bool)
	for _, idx := range order {
		if idx < 0 || idx >= len(points) {
			t.Fatalf("index %d out of range", idx)
		}
		if seen[idx] {
			t.Fatalf("index %d appears twice in morton order", idx)
		}
		seen[idx] = true
	}
}

func TestMortonOrderSinglePoint(t *testing.T) {
	order := mortonOrder([]Point{{1, 2, 3}})
	if len(order) != 1 || order[0] != 0 {
		t.Fatalf("mortonOrder of a single point = %v, want [0]", order)
	}
}

func TestMortonOrderDeterministic(t *testing.T) {
	points := []Point{{0, 0, 0}, {0, 0, 0}, {1, 1, 1}, {1, 1, 1}}
	a := mortonOrder(points)
	b := mortonOrder(points)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("mortonOrder is not deterministic on repeated coincident points: %v vs %v", a, b)
		}
	}
}

func TestSpreadBits21SpreadsLowBits(t *testing.T) {
	// x alone should occupy only bit positions 0, 3, 6, ...
	code := spreadBits21(0x7)
	want := uint64(1 | 1<<3 | 1<<6)
	if code != want {
		t.Errorf("spreadBits21(0x7) = %b, want %b", code, want)
	}
}
