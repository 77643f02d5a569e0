package geometry

import (
	"testing"

	"github.com/mpoquet/go-whitted-raytracer/pkg/core"
)

func defaultSmoothTriangle() *Shape {
	return NewSmoothTriangle(
		core.NewPoint(0, 1, 0),
		core.NewPoint(-1, 0, 0),
		core.NewPoint(1, 0, 0),
		core.NewVector(0, 1, 0),
		core.NewVector(-1, 0, 0),
		core.NewVector(1, 0, 0),
	)
}

func TestSmoothTriangle_Construction(t *testing.T) {
	tr := defaultSmoothTriangle().Geometry().(*SmoothTriangle)

	if !tr.P1.Equals(core.NewPoint(0, 1, 0)) {
		t.Errorf("Expected p1 (0,1,0), got %v", tr.P1)
	}
	if !tr.N2.Equals(core.NewVector(-1, 0, 0)) {
		t.Errorf("Expected n2 (-1,0,0), got %v", tr.N2)
	}
	if !tr.N3.Equals(core.NewVector(1, 0, 0)) {
		t.Errorf("Expected n3 (1,0,0), got %v", tr.N3)
	}
}

func TestSmoothTriangle_IntersectionStoresUV(t *testing.T) {
	s := defaultSmoothTriangle()
	ray := core.NewRay(core.NewPoint(-0.2, 0.3, -2), core.NewVector(0, 0, 1))

	xs := s.Intersect(ray)
	if xs.Count() != 1 {
		t.Fatalf("Expected 1 intersection, got %d", xs.Count())
	}
	if !core.FuzzyEqual(xs.At(0).U, 0.45) {
		t.Errorf("Expected u=0.45, got %f", xs.At(0).U)
	}
	if !core.FuzzyEqual(xs.At(0).V, 0.25) {
		t.Errorf("Expected v=0.25, got %f", xs.At(0).V)
	}
}

func TestSmoothTriangle_NormalIsInterpolated(t *testing.T) {
	s := defaultSmoothTriangle()
	n := s.NormalAt(core.NewPoint(0, 0, 0), 0.45, 0.25)
	if !n.Equals(core.NewVector(-0.5547, 0.83205, 0)) {
		t.Errorf("Expected (-0.5547,0.83205,0), got %v", n)
	}
}

func TestSmoothTriangle_NormalUsedInComputations(t *testing.T) {
	s := defaultSmoothTriangle()
	ray := core.NewRay(core.NewPoint(-0.2, 0.3, -2), core.NewVector(0, 0, 1))
	i := NewIntersectionUV(1, s, 0.45, 0.25)
	xs := NewIntersections(i)

	comps := i.PrepareComputations(ray, xs)
	if !comps.NormalV.Equals(core.NewVector(-0.5547, 0.83205, 0)) {
		t.Errorf("Expected interpolated normal, got %v", comps.NormalV)
	}
}
