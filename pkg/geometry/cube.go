package geometry

import (
	"math"

	"github.com/mpoquet/go-whitted-raytracer/pkg/core"
)

// Cube is the axis-aligned cube with sides at ±1
type Cube struct{}

// NewCube creates a unit cube shape
func NewCube() *Shape {
	return newShape(Cube{})
}

// checkAxis finds where the ray crosses the two parallel planes of
// one axis. When the direction component is near zero the crossings
// are at ±infinity.
func checkAxis(origin, direction float64) (float64, float64) {
	tminNumerator := -1 - origin
	tmaxNumerator := 1 - origin

	var tmin, tmax float64
	if math.Abs(direction) >= core.Epsilon {
		tmin = tminNumerator / direction
		tmax = tmaxNumerator / direction
	} else {
		tmin = tminNumerator * math.Inf(1)
		tmax = tmaxNumerator * math.Inf(1)
	}

	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}
	return tmin, tmax
}

func (Cube) localIntersect(ray core.Ray) []localHit {
	xtmin, xtmax := checkAxis(ray.Origin.X, ray.Direction.X)
	ytmin, ytmax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	ztmin, ztmax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tmin := math.Max(xtmin, math.Max(ytmin, ztmin))
	tmax := math.Min(xtmax, math.Min(ytmax, ztmax))

	if tmin > tmax {
		return nil
	}
	return []localHit{{t: tmin}, {t: tmax}}
}

func (Cube) localNormalAt(point core.Tuple, u, v float64) core.Tuple {
	absX, absY, absZ := math.Abs(point.X), math.Abs(point.Y), math.Abs(point.Z)
	maxc := math.Max(absX, math.Max(absY, absZ))

	switch maxc {
	case absX:
		return core.NewVector(point.X, 0, 0)
	case absY:
		return core.NewVector(0, point.Y, 0)
	}
	return core.NewVector(0, 0, point.Z)
}
