package arborx

import (
	"math"
	"testing"
)

func TestEuclidean(t *testing.T) {
	a := Point{0, 0, 0}
	b := Point{3, 4, 0}
	if got := euclidean(a, b); math.Abs(got-5) > 1e-12 {
		t.Errorf("euclidean(%v, %v) = %v, want 5", a, b, got)
	}
}

func TestBoxUnion(t *testing.T) {
	a := boxFromPoint(Point{0, 0, 0})
	b := boxFromPoint(Point{2, 3, 4})
	u := a.Union(b)
	want := Box{MinX: 0, MinY: 0, MinZ: 0, MaxX: 2, MaxY: 3, MaxZ: 4}
	if u != want {
		t.Errorf("Union = %+v, want %+v", u, want)
	}
}

func TestDistanceBoxBoxOverlapping(t *testing.T) {
	a := boxFromPoint(Point{0, 0, 0}).ExpandPoint(Point{1, 1, 1})
	b := boxFromPoint(Point{0.5, 0.5, 0.5})
	if d := distanceBoxBox(a, b); d != 0 {
		t.Errorf("distanceBoxBox overlapping = %v, want 0", d)
	}
}

func TestDistanceBoxBoxSeparated(t *testing.T) {
	a := boxFromPoint(Point{0, 0, 0})
	b := boxFromPoint(Point{3, 4, 0})
	if d := distanceBoxBox(a, b); math.Abs(d-5) > 1e-12 {
		t.Errorf("distanceBoxBox = %v, want 5", d)
	}
}

func TestSphereIntersectsBox(t *testing.T) {
	box := boxFromPoint(Point{10, 10, 10})
	s := Sphere{Center: Point{0, 0, 0}, Radius: 5}
	if s.intersectsBox(box) {
		t.Error("sphere of radius 5 at origin should not reach a point box at (10,10,10)")
	}
	s.Radius = 100
	if !s.intersectsBox(box) {
		t.Error("sphere of radius 100 at origin should reach a point box at (10,10,10)")
	}
}
