package geometry

import (
	"testing"

	"github.com/mpoquet/go-whitted-raytracer/pkg/core"
)

func TestCube_Intersect_Hits(t *testing.T) {
	tests := []struct {
		name       string
		origin     core.Tuple
		direction  core.Tuple
		t0, t1     float64
	}{
		{"+x face", core.NewPoint(5, 0.5, 0), core.NewVector(-1, 0, 0), 4, 6},
		{"-x face", core.NewPoint(-5, 0.5, 0), core.NewVector(1, 0, 0), 4, 6},
		{"+y face", core.NewPoint(0.5, 5, 0), core.NewVector(0, -1, 0), 4, 6},
		{"-y face", core.NewPoint(0.5, -5, 0), core.NewVector(0, 1, 0), 4, 6},
		{"+z face", core.NewPoint(0.5, 0, 5), core.NewVector(0, 0, -1), 4, 6},
		{"-z face", core.NewPoint(0.5, 0, -5), core.NewVector(0, 0, 1), 4, 6},
		{"from inside", core.NewPoint(0, 0.5, 0), core.NewVector(0, 0, 1), -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCube()
			xs := c.Intersect(core.NewRay(tt.origin, tt.direction))
			if xs.Count() != 2 {
				t.Fatalf("Expected 2 intersections, got %d", xs.Count())
			}
			if !core.FuzzyEqual(xs.At(0).T, tt.t0) || !core.FuzzyEqual(xs.At(1).T, tt.t1) {
				t.Errorf("Expected t=%f,%f, got %f,%f", tt.t0, tt.t1, xs.At(0).T, xs.At(1).T)
			}
		})
	}
}

func TestCube_Intersect_Misses(t *testing.T) {
	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
	}{
		{"diagonal miss 1", core.NewPoint(-2, 0, 0), core.NewVector(0.2673, 0.5345, 0.8018)},
		{"diagonal miss 2", core.NewPoint(0, -2, 0), core.NewVector(0.8018, 0.2673, 0.5345)},
		{"diagonal miss 3", core.NewPoint(0, 0, -2), core.NewVector(0.5345, 0.8018, 0.2673)},
		{"parallel to z", core.NewPoint(2, 0, 2), core.NewVector(0, 0, -1)},
		{"parallel to y", core.NewPoint(0, 2, 2), core.NewVector(0, -1, 0)},
		{"parallel to x", core.NewPoint(2, 2, 0), core.NewVector(-1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCube()
			xs := c.Intersect(core.NewRay(tt.origin, tt.direction))
			if xs.Count() != 0 {
				t.Errorf("Expected miss, got %d intersections", xs.Count())
			}
		})
	}
}

func TestCube_NormalAt(t *testing.T) {
	tests := []struct {
		point    core.Tuple
		expected core.Tuple
	}{
		{core.NewPoint(1, 0.5, -0.8), core.NewVector(1, 0, 0)},
		{core.NewPoint(-1, -0.2, 0.9), core.NewVector(-1, 0, 0)},
		{core.NewPoint(-0.4, 1, -0.1), core.NewVector(0, 1, 0)},
		{core.NewPoint(0.3, -1, -0.7), core.NewVector(0, -1, 0)},
		{core.NewPoint(-0.6, 0.3, 1), core.NewVector(0, 0, 1)},
		{core.NewPoint(0.4, 0.4, -1), core.NewVector(0, 0, -1)},
		{core.NewPoint(1, 1, 1), core.NewVector(1, 0, 0)},
		{core.NewPoint(-1, -1, -1), core.NewVector(-1, 0, 0)},
	}

	for _, tt := range tests {
		c := NewCube()
		if n := c.NormalAt(tt.point, 0, 0); !n.Equals(tt.expected) {
			t.Errorf("Expected normal %v at %v, got %v", tt.expected, tt.point, n)
		}
	}
}
