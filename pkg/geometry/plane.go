package geometry

import (
	"math"

	"github.com/mpoquet/go-whitted-raytracer/pkg/core"
)

// Plane is the xz plane through the origin, extending to infinity
type Plane struct{}

// NewPlane creates an xz plane shape
func NewPlane() *Shape {
	return newShape(Plane{})
}

func (Plane) localIntersect(ray core.Ray) []localHit {
	// a ray parallel to the plane never intersects it
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	t := -ray.Origin.Y / ray.Direction.Y
	return []localHit{{t: t}}
}

func (Plane) localNormalAt(point core.Tuple, u, v float64) core.Tuple {
	return core.NewVector(0, 1, 0)
}
