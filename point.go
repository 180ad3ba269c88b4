package arborx

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Point is a point in 3D space.
type Point struct {
	X, Y, Z float64
}

func (p Point) coords() []float64 { return []float64{p.X, p.Y, p.Z} }

// euclidean returns the Euclidean distance between two points.
func euclidean(a, b Point) float64 {
	return floats.Distance(a.coords(), b.coords(), 2)
}

// Box is an axis-aligned bounding box over points. An empty box (never
// expanded) has Min > Max componentwise and contributes nothing to a union.
type Box struct {
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64
}

// emptyBox returns a box with no extent, ready to be grown via ExpandPoint
// or Union.
func emptyBox() Box {
	return Box{
		MinX: math.Inf(1), MinY: math.Inf(1), MinZ: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1), MaxZ: math.Inf(-1),
	}
}

// boxFromPoint returns the degenerate box containing exactly p.
func boxFromPoint(p Point) Box {
	return Box{MinX: p.X, MinY: p.Y, MinZ: p.Z, MaxX: p.X, MaxY: p.Y, MaxZ: p.Z}
}

// ExpandPoint grows b to also contain p.
func (b Box) ExpandPoint(p Point) Box {
	return Box{
		MinX: math.Min(b.MinX, p.X), MinY: math.Min(b.MinY, p.Y), MinZ: math.Min(b.MinZ, p.Z),
		MaxX: math.Max(b.MaxX, p.X), MaxY: math.Max(b.MaxY, p.Y), MaxZ: math.Max(b.MaxZ, p.Z),
	}
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	return Box{
		MinX: math.Min(b.MinX, o.MinX), MinY: math.Min(b.MinY, o.MinY), MinZ: math.Min(b.MinZ, o.MinZ),
		MaxX: math.Max(b.MaxX, o.MaxX), MaxY: math.Max(b.MaxY, o.MaxY), MaxZ: math.Max(b.MaxZ, o.MaxZ),
	}
}

// distanceBoxBox returns the Euclidean distance between the closest points
// of two axis-aligned boxes (0 if they overlap).
func distanceBoxBox(a, b Box) float64 {
	dx := axisGap(a.MinX, a.MaxX, b.MinX, b.MaxX)
	dy := axisGap(a.MinY, a.MaxY, b.MinY, b.MaxY)
	dz := axisGap(a.MinZ, a.MaxZ, b.MinZ, b.MaxZ)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// distanceBoxPoint returns the Euclidean distance from p to the closest
// point of box b (0 if p is inside b).
func distanceBoxPoint(b Box, p Point) float64 {
	dx := axisGap(b.MinX, b.MaxX, p.X, p.X)
	dy := axisGap(b.MinY, b.MaxY, p.Y, p.Y)
	dz := axisGap(b.MinZ, b.MaxZ, p.Z, p.Z)
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// axisGap returns the gap between intervals [aMin,aMax] and [bMin,bMax]
// along one axis, or 0 if they overlap.
func axisGap(aMin, aMax, bMin, bMax float64) float64 {
	if aMax < bMin {
		return bMin - aMax
	}
	if bMax < aMin {
		return aMin - bMax
	}
	return 0
}

// Sphere is a center point plus a radius, used as a query predicate.
type Sphere struct {
	Center Point
	Radius float64
}

// intersectsBox reports whether s intersects box b.
func (s Sphere) intersectsBox(b Box) bool {
	return distanceBoxPoint(b, s.Center) <= s.Radius
}
