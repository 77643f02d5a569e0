package geometry

import (
	"math"

	"github.com/mpoquet/go-whitted-raytracer/pkg/core"
)

// Cone is the double-napped cone along the y axis, truncated to
// (Minimum, Maximum) and optionally closed with end caps. The radius
// at height y equals |y|.
type Cone struct {
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCone creates an infinite open double-napped cone shape
func NewCone() *Shape {
	return newShape(&Cone{Minimum: math.Inf(-1), Maximum: math.Inf(1)})
}

// NewBoundedCone creates a cone truncated to (min, max), optionally
// closed with end caps
func NewBoundedCone(min, max float64, closed bool) *Shape {
	return newShape(&Cone{Minimum: min, Maximum: max, Closed: closed})
}

// checkConeCap reports whether the ray at t lies within the cone's
// radius at the cap plane y
func checkConeCap(ray core.Ray, t, y float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= y*y
}

func (c *Cone) intersectCaps(ray core.Ray, xs []localHit) []localHit {
	if !c.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	tLower := (c.Minimum - ray.Origin.Y) / ray.Direction.Y
	if checkConeCap(ray, tLower, c.Minimum) {
		xs = append(xs, localHit{t: tLower})
	}

	tUpper := (c.Maximum - ray.Origin.Y) / ray.Direction.Y
	if checkConeCap(ray, tUpper, c.Maximum) {
		xs = append(xs, localHit{t: tUpper})
	}
	return xs
}

// localIntersect collects wall intersections first and always
// finishes with the caps, so a ray whose walls miss can still strike
// a cap.
func (c *Cone) localIntersect(ray core.Ray) []localHit {
	var xs []localHit

	o, d := ray.Origin, ray.Direction
	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	cc := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	if math.Abs(a) < core.Epsilon {
		// the ray is parallel to one of the cone's halves and can
		// still cross the other half once
		if math.Abs(b) >= core.Epsilon {
			t := -cc / (2 * b)
			y := o.Y + t*d.Y
			if c.Minimum < y && y < c.Maximum {
				xs = append(xs, localHit{t: t})
			}
		}
		return c.intersectCaps(ray, xs)
	}

	discriminant := b*b - 4*a*cc
	if discriminant >= 0 {
		sqrtD := math.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		y0 := o.Y + t0*d.Y
		if c.Minimum < y0 && y0 < c.Maximum {
			xs = append(xs, localHit{t: t0})
		}
		y1 := o.Y + t1*d.Y
		if c.Minimum < y1 && y1 < c.Maximum {
			xs = append(xs, localHit{t: t1})
		}
	}

	return c.intersectCaps(ray, xs)
}

func (c *Cone) localNormalAt(point core.Tuple, u, v float64) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if dist < c.Maximum*c.Maximum && point.Y >= c.Maximum-core.Epsilon {
		return core.NewVector(0, 1, 0)
	}
	if dist < c.Minimum*c.Minimum && point.Y <= c.Minimum+core.Epsilon {
		return core.NewVector(0, -1, 0)
	}

	y := math.Sqrt(dist)
	if point.Y > 0 {
		y = -y
	}
	return core.NewVector(point.X, y, point.Z)
}
