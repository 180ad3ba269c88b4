package arborx

import "sort"

// mortonCode computes a 3D Morton (Z-order) code for a point normalized
// into [0,1]^3, using 21 bits per axis (63 bits total, fits in a uint64).
// Points outside [0,1]^3 are clamped.
func mortonCode(x, y, z float64) uint64 {
	return spreadBits21(normalizeAxis(x)) |
		spreadBits21(normalizeAxis(y))<<1 |
		spreadBits21(normalizeAxis(z))<<2
}

func normalizeAxis(v float64) uint32 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return uint32(v * float64(1<<21-1))
}

// spreadBits21 interleaves the low 21 bits of v with two zero bits after
// each bit, the standard "magic numbers" bit-spreading trick used to build
// a Morton code from 3 independent 21-bit axis values.
func spreadBits21(v uint32) uint64 {
	x := uint64(v) & 0x1fffff
	x = (x | x<<32) & 0x1f00000000ffff
	x = (x | x<<16) & 0x1f0000ff0000ff
	x = (x | x<<8) & 0x100f00f00f00f00f
	x = (x | x<<4) & 0x10c30c30c30c30c3
	x = (x | x<<2) & 0x1249249249249249
	return x
}

// mortonOrder returns a permutation of [0, n) sorting points by ascending
// Morton code, after normalizing coordinates to the points' bounding box.
// This is the "leaf permutation induced by Morton sorting" referenced by
// the BVH's documented leaf-ordering contract: points close in the
// resulting order tend to be close in space.
func mortonOrder(points []Point) []int {
	n := len(points)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if n <= 1 {
		return order
	}

	box := emptyBox()
	for _, p := range points {
		box = box.ExpandPoint(p)
	}
	spanX := box.MaxX - box.MinX
	spanY := box.MaxY - box.MinY
	spanZ := box.MaxZ - box.MinZ

	codes := make([]uint64, n)
	for i, p := range points {
		codes[i] = mortonCode(
			safeFrac(p.X-box.MinX, spanX),
			safeFrac(p.Y-box.MinY, spanY),
			safeFrac(p.Z-box.MinZ, spanZ),
		)
	}

	sort.Slice(order, func(a, b int) bool {
		ca, cb := codes[order[a]], codes[order[b]]
		if ca != cb {
			return ca < cb
		}
		// Stable tie-break so the permutation is deterministic regardless
		// of sort.Slice's internal pivoting when codes collide.
		return order[a] < order[b]
	})
	return order
}

func safeFrac(delta, span float64) float64 {
	if span <= 0 {
		return 0
	}
	return delta / span
}
