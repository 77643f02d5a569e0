package geometry

import (
	"math"

	"github.com/mpoquet/go-whitted-raytracer/pkg/core"
	"github.com/mpoquet/go-whitted-raytracer/pkg/material"
)

// Sphere is the unit sphere centered at the origin
type Sphere struct{}

// NewSphere creates a unit sphere shape
func NewSphere() *Shape {
	return newShape(Sphere{})
}

// NewGlassSphere creates a unit sphere with a fully transparent
// glass material
func NewGlassSphere() *Shape {
	s := NewSphere()
	s.SetMaterial(material.Glass())
	return s
}

func (Sphere) localIntersect(ray core.Ray) []localHit {
	// vector from the sphere's center to the ray origin
	sphereToRay := ray.Origin.Subtract(core.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * sphereToRay.Dot(ray.Direction)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	return []localHit{{t: t1}, {t: t2}}
}

func (Sphere) localNormalAt(point core.Tuple, u, v float64) core.Tuple {
	return point.Subtract(core.NewPoint(0, 0, 0))
}
