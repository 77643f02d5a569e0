package geometry

import (
	"github.com/mpoquet/go-whitted-raytracer/pkg/core"
)

// SmoothTriangle is a triangle with per-vertex normals interpolated
// across the face at the hit's barycentric coordinates
type SmoothTriangle struct {
	P1, P2, P3 core.Tuple
	E1, E2     core.Tuple
	N1, N2, N3 core.Tuple
}

// NewSmoothTriangle creates a smooth triangle shape from three points
// and their vertex normals
func NewSmoothTriangle(p1, p2, p3, n1, n2, n3 core.Tuple) *Shape {
	return newShape(&SmoothTriangle{
		P1: p1, P2: p2, P3: p3,
		E1: p2.Subtract(p1),
		E2: p3.Subtract(p1),
		N1: n1, N2: n2, N3: n3,
	})
}

func (tr *SmoothTriangle) localIntersect(ray core.Ray) []localHit {
	t, u, v, ok := mollerTrumbore(tr.P1, tr.E1, tr.E2, ray)
	if !ok {
		return nil
	}
	return []localHit{{t: t, u: u, v: v}}
}

func (tr *SmoothTriangle) localNormalAt(point core.Tuple, u, v float64) core.Tuple {
	return tr.N2.Multiply(u).
		Add(tr.N3.Multiply(v)).
		Add(tr.N1.Multiply(1 - u - v))
}
