package geometry

import (
	"math"

	"github.com/mpoquet/go-whitted-raytracer/pkg/core"
)

// Triangle is a flat triangle with a single precomputed normal
type Triangle struct {
	P1, P2, P3 core.Tuple
	E1, E2     core.Tuple
	Normal     core.Tuple
}

// NewTriangle creates a triangle shape from three points
func NewTriangle(p1, p2, p3 core.Tuple) *Shape {
	e1 := p2.Subtract(p1)
	e2 := p3.Subtract(p1)
	return newShape(&Triangle{
		P1: p1, P2: p2, P3: p3,
		E1:     e1,
		E2:     e2,
		Normal: e2.Cross(e1).Normalize(),
	})
}

// mollerTrumbore intersects a ray with the triangle defined by p1 and
// edges e1, e2, returning the hit's t and barycentric u, v
func mollerTrumbore(p1, e1, e2 core.Tuple, ray core.Ray) (t, u, v float64, ok bool) {
	dirCrossE2 := ray.Direction.Cross(e2)
	determinant := e1.Dot(dirCrossE2)
	if math.Abs(determinant) < core.Epsilon {
		return 0, 0, 0, false
	}

	f := 1 / determinant
	p1ToOrigin := ray.Origin.Subtract(p1)
	u = f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	originCrossE1 := p1ToOrigin.Cross(e1)
	v = f * ray.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = f * e2.Dot(originCrossE1)
	return t, u, v, true
}

func (tr *Triangle) localIntersect(ray core.Ray) []localHit {
	t, u, v, ok := mollerTrumbore(tr.P1, tr.E1, tr.E2, ray)
	if !ok {
		return nil
	}
	return []localHit{{t: t, u: u, v: v}}
}

func (tr *Triangle) localNormalAt(point core.Tuple, u, v float64) core.Tuple {
	return tr.Normal
}
