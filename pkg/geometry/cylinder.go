package geometry

import (
	"math"

	"github.com/mpoquet/go-whitted-raytracer/pkg/core"
)

// Cylinder is the unit-radius cylinder along the y axis, truncated to
// (Minimum, Maximum) and optionally closed with end caps
type Cylinder struct {
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates an infinite open cylinder shape
func NewCylinder() *Shape {
	return newShape(&Cylinder{Minimum: math.Inf(-1), Maximum: math.Inf(1)})
}

// NewBoundedCylinder creates a cylinder truncated to (min, max),
// optionally closed with end caps
func NewBoundedCylinder(min, max float64, closed bool) *Shape {
	return newShape(&Cylinder{Minimum: min, Maximum: max, Closed: closed})
}

// checkCylinderCap reports whether the ray at t lies within the unit
// radius of the y axis
func checkCylinderCap(ray core.Ray, t float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= 1
}

func (c *Cylinder) intersectCaps(ray core.Ray, xs []localHit) []localHit {
	// caps only matter when the cylinder is closed and the ray is
	// not parallel to them
	if !c.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	tLower := (c.Minimum - ray.Origin.Y) / ray.Direction.Y
	if checkCylinderCap(ray, tLower) {
		xs = append(xs, localHit{t: tLower})
	}

	tUpper := (c.Maximum - ray.Origin.Y) / ray.Direction.Y
	if checkCylinderCap(ray, tUpper) {
		xs = append(xs, localHit{t: tUpper})
	}
	return xs
}

func (c *Cylinder) localIntersect(ray core.Ray) []localHit {
	var xs []localHit

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	if math.Abs(a) >= core.Epsilon {
		b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
		cc := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

		discriminant := b*b - 4*a*cc
		if discriminant >= 0 {
			sqrtD := math.Sqrt(discriminant)
			t0 := (-b - sqrtD) / (2 * a)
			t1 := (-b + sqrtD) / (2 * a)
			if t0 > t1 {
				t0, t1 = t1, t0
			}

			y0 := ray.Origin.Y + t0*ray.Direction.Y
			if c.Minimum < y0 && y0 < c.Maximum {
				xs = append(xs, localHit{t: t0})
			}
			y1 := ray.Origin.Y + t1*ray.Direction.Y
			if c.Minimum < y1 && y1 < c.Maximum {
				xs = append(xs, localHit{t: t1})
			}
		}
	}

	return c.intersectCaps(ray, xs)
}

func (c *Cylinder) localNormalAt(point core.Tuple, u, v float64) core.Tuple {
	// square of the distance from the y axis
	dist := point.X*point.X + point.Z*point.Z

	if dist < 1 && point.Y >= c.Maximum-core.Epsilon {
		return core.NewVector(0, 1, 0)
	}
	if dist < 1 && point.Y <= c.Minimum+core.Epsilon {
		return core.NewVector(0, -1, 0)
	}
	return core.NewVector(point.X, 0, point.Z)
}
