package geometry

import (
	"testing"

	"github.com/mpoquet/go-whitted-raytracer/pkg/core"
)

func defaultTriangle() *Shape {
	return NewTriangle(
		core.NewPoint(0, 1, 0),
		core.NewPoint(-1, 0, 0),
		core.NewPoint(1, 0, 0),
	)
}

func TestTriangle_Precomputation(t *testing.T) {
	tr := defaultTriangle().Geometry().(*Triangle)

	if !tr.E1.Equals(core.NewVector(-1, -1, 0)) {
		t.Errorf("Expected e1 (-1,-1,0), got %v", tr.E1)
	}
	if !tr.E2.Equals(core.NewVector(1, -1, 0)) {
		t.Errorf("Expected e2 (1,-1,0), got %v", tr.E2)
	}
	if !tr.Normal.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("Expected normal (0,0,-1), got %v", tr.Normal)
	}
}

func TestTriangle_NormalIsConstant(t *testing.T) {
	s := defaultTriangle()
	tr := s.Geometry().(*Triangle)

	points := []core.Tuple{
		core.NewPoint(0, 0.5, 0),
		core.NewPoint(-0.5, 0.75, 0),
		core.NewPoint(0.5, 0.25, 0),
	}
	for _, p := range points {
		if n := s.NormalAt(p, 0, 0); !n.Equals(tr.Normal) {
			t.Errorf("Expected the precomputed normal at %v, got %v", p, n)
		}
	}
}

func TestTriangle_Intersect(t *testing.T) {
	tests := []struct {
		name      string
		ray       core.Ray
		expectedT []float64
	}{
		{
			name:      "parallel ray misses",
			ray:       core.NewRay(core.NewPoint(0, -1, -2), core.NewVector(0, 1, 0)),
			expectedT: nil,
		},
		{
			name:      "ray beyond the p1-p3 edge misses",
			ray:       core.NewRay(core.NewPoint(1, 1, -2), core.NewVector(0, 0, 1)),
			expectedT: nil,
		},
		{
			name:      "ray beyond the p1-p2 edge misses",
			ray:       core.NewRay(core.NewPoint(-1, 1, -2), core.NewVector(0, 0, 1)),
			expectedT: nil,
		},
		{
			name:      "ray beyond the p2-p3 edge misses",
			ray:       core.NewRay(core.NewPoint(0, -1, -2), core.NewVector(0, 0, 1)),
			expectedT: nil,
		},
		{
			name:      "ray strikes the face",
			ray:       core.NewRay(core.NewPoint(0, 0.5, -2), core.NewVector(0, 0, 1)),
			expectedT: []float64{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := defaultTriangle()
			xs := s.Intersect(tt.ray)
			if xs.Count() != len(tt.expectedT) {
				t.Fatalf("Expected %d intersections, got %d", len(tt.expectedT), xs.Count())
			}
			for i, expected := range tt.expectedT {
				if !core.FuzzyEqual(xs.At(i).T, expected) {
					t.Errorf("Expected t[%d]=%f, got %f", i, expected, xs.At(i).T)
				}
			}
		})
	}
}
