package geometry

import (
	"math"
	"testing"

	"github.com/mpoquet/go-whitted-raytracer/pkg/core"
	"github.com/mpoquet/go-whitted-raytracer/pkg/material"
)

// recordingGeometry captures the object-space ray the wrapper hands it
type recordingGeometry struct {
	savedRay *core.Ray
}

func (g *recordingGeometry) localIntersect(ray core.Ray) []localHit {
	*g.savedRay = ray
	return nil
}

func (g *recordingGeometry) localNormalAt(point core.Tuple, u, v float64) core.Tuple {
	return core.NewVector(point.X, point.Y, point.Z)
}

func newRecordingShape() (*Shape, *core.Ray) {
	saved := &core.Ray{}
	return newShape(&recordingGeometry{savedRay: saved}), saved
}

func TestShape_Defaults(t *testing.T) {
	s := NewSphere()

	if !s.Transform().Equals(core.Identity(4)) {
		t.Error("Expected default transform to be identity")
	}
	if s.Material() != material.NewMaterial() {
		t.Error("Expected default material")
	}
	if s.Parent() != nil {
		t.Error("Expected no parent by default")
	}
}

func TestShape_SetTransformAndMaterial(t *testing.T) {
	s := NewSphere()
	s.SetTransform(core.Translation(2, 3, 4))
	if !s.Transform().Equals(core.Translation(2, 3, 4)) {
		t.Error("Expected assigned transform to be returned")
	}

	m := material.NewMaterial()
	m.Ambient = 1
	s.SetMaterial(m)
	if s.Material().Ambient != 1 {
		t.Error("Expected assigned material to be returned")
	}
}

func TestShape_SetTransform_NotInvertiblePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic setting a non-invertible transform")
		}
	}()
	NewSphere().SetTransform(core.Scaling(0, 0, 0))
}

func TestShape_Intersect_TransformsRayIntoObjectSpace(t *testing.T) {
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))

	t.Run("scaled shape", func(t *testing.T) {
		s, saved := newRecordingShape()
		s.SetTransform(core.Scaling(2, 2, 2))
		s.Intersect(ray)
		if !saved.Origin.Equals(core.NewPoint(0, 0, -2.5)) {
			t.Errorf("Expected local origin (0,0,-2.5), got %v", saved.Origin)
		}
		if !saved.Direction.Equals(core.NewVector(0, 0, 0.5)) {
			t.Errorf("Expected local direction (0,0,0.5), got %v", saved.Direction)
		}
	})

	t.Run("translated shape", func(t *testing.T) {
		s, saved := newRecordingShape()
		s.SetTransform(core.Translation(5, 0, 0))
		s.Intersect(ray)
		if !saved.Origin.Equals(core.NewPoint(-5, 0, -5)) {
			t.Errorf("Expected local origin (-5,0,-5), got %v", saved.Origin)
		}
		if !saved.Direction.Equals(core.NewVector(0, 0, 1)) {
			t.Errorf("Expected local direction (0,0,1), got %v", saved.Direction)
		}
	})
}

func TestShape_NormalAt_TransformedShape(t *testing.T) {
	t.Run("translated shape", func(t *testing.T) {
		s, _ := newRecordingShape()
		s.SetTransform(core.Translation(0, 1, 0))
		n := s.NormalAt(core.NewPoint(0, 1.70711, -0.70711), 0, 0)
		if !n.Equals(core.NewVector(0, 0.70711, -0.70711)) {
			t.Errorf("Expected (0,0.70711,-0.70711), got %v", n)
		}
	})

	t.Run("transformed shape", func(t *testing.T) {
		s, _ := newRecordingShape()
		s.SetTransform(core.Scaling(1, 0.5, 1).Multiply(core.RotationZ(math.Pi / 5)))
		n := s.NormalAt(core.NewPoint(0, math.Sqrt2/2, -math.Sqrt2/2), 0, 0)
		if !n.Equals(core.NewVector(0, 0.97014, -0.24254)) {
			t.Errorf("Expected (0,0.97014,-0.24254), got %v", n)
		}
	})
}

func TestShape_WorldToObject_NestedGroups(t *testing.T) {
	g1 := NewGroup()
	g1.SetTransform(core.RotationY(math.Pi / 2))
	g2 := NewGroup()
	g2.SetTransform(core.Scaling(2, 2, 2))
	if err := g1.AddChild(g2); err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	s := NewSphere()
	s.SetTransform(core.Translation(5, 0, 0))
	if err := g2.AddChild(s); err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}

	p := s.WorldToObject(core.NewPoint(-2, 0, -10))
	if !p.Equals(core.NewPoint(0, 0, -1)) {
		t.Errorf("Expected (0,0,-1), got %v", p)
	}
}

func TestShape_NormalToWorld_NestedGroups(t *testing.T) {
	g1 := NewGroup()
	g1.SetTransform(core.RotationY(math.Pi / 2))
	g2 := NewGroup()
	g2.SetTransform(core.Scaling(1, 2, 3))
	if err := g1.AddChild(g2); err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	s := NewSphere()
	s.SetTransform(core.Translation(5, 0, 0))
	if err := g2.AddChild(s); err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}

	n := s.NormalToWorld(core.NewVector(math.Sqrt(3)/3, math.Sqrt(3)/3, math.Sqrt(3)/3))
	if !n.Equals(core.NewVector(0.28571, 0.42857, -0.85714)) {
		t.Errorf("Expected (0.28571,0.42857,-0.85714), got %v", n)
	}
}

func TestShape_NormalAt_ChildOfNestedGroups(t *testing.T) {
	g1 := NewGroup()
	g1.SetTransform(core.RotationY(math.Pi / 2))
	g2 := NewGroup()
	g2.SetTransform(core.Scaling(1, 2, 3))
	if err := g1.AddChild(g2); err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}
	s := NewSphere()
	s.SetTransform(core.Translation(5, 0, 0))
	if err := g2.AddChild(s); err != nil {
		t.Fatalf("AddChild failed: %v", err)
	}

	n := s.NormalAt(core.NewPoint(1.7321, 1.1547, -5.5774), 0, 0)
	if !n.Equals(core.NewVector(0.28570, 0.42854, -0.85716)) {
		t.Errorf("Expected (0.28570,0.42854,-0.85716), got %v", n)
	}
}

func TestShape_NormalAt_IsNormalized(t *testing.T) {
	s, _ := newRecordingShape()
	s.SetTransform(core.Scaling(1, 0.5, 1))
	n := s.NormalAt(core.NewPoint(0.5, 0.8, 0.3), 0, 0)
	if !core.FuzzyEqual(n.Magnitude(), 1) {
		t.Errorf("Expected unit normal, got magnitude %f", n.Magnitude())
	}
}
