package geometry

import (
	"math"
	"sort"

	"github.com/mpoquet/go-whitted-raytracer/pkg/core"
)

// Intersection records where a ray strikes a shape. U and V carry the
// barycentric coordinates of the hit and are only meaningful for
// smooth triangles.
type Intersection struct {
	T      float64
	Object *Shape
	U, V   float64
}

// NewIntersection creates an intersection at t on a shape
func NewIntersection(t float64, object *Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// NewIntersectionUV creates an intersection carrying barycentric
// coordinates
func NewIntersectionUV(t float64, object *Shape, u, v float64) Intersection {
	return Intersection{T: t, Object: object, U: u, V: v}
}

// Intersections is a sequence of intersections kept sorted ascending
// by t. Ties keep their insertion order.
type Intersections struct {
	xs []Intersection
}

// NewIntersections aggregates intersections, sorting them by t
func NewIntersections(xs ...Intersection) Intersections {
	sorted := make([]Intersection, len(xs))
	copy(sorted, xs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].T < sorted[j].T
	})
	return Intersections{xs: sorted}
}

// Count returns the number of intersections
func (i Intersections) Count() int {
	return len(i.xs)
}

// At returns the intersection at the given index
func (i Intersections) At(index int) Intersection {
	return i.xs[index]
}

// Hit returns the intersection with the lowest non-negative t
func (i Intersections) Hit() (Intersection, bool) {
	for _, x := range i.xs {
		if x.T >= 0 {
			return x, true
		}
	}
	return Intersection{}, false
}

// Computations holds the precomputed shading inputs for one hit
type Computations struct {
	T          float64
	Object     *Shape
	Point      core.Tuple
	EyeV       core.Tuple
	NormalV    core.Tuple
	Inside     bool
	OverPoint  core.Tuple
	UnderPoint core.Tuple
	ReflectV   core.Tuple
	N1, N2     float64
}

// PrepareComputations derives the shading inputs for this hit. The
// full intersection list is needed to track which objects the ray is
// currently inside of when assigning the refractive indices n1 and n2.
func (hit Intersection) PrepareComputations(ray core.Ray, xs Intersections) Computations {
	comps := Computations{
		T:      hit.T,
		Object: hit.Object,
		N1:     1.0,
		N2:     1.0,
	}

	// Walk the intersections in t order, toggling objects in and out
	// of the containers list. When the designated hit is reached, n1
	// is the index of the object the ray is leaving and n2 the index
	// of the one it is entering.
	var containers []*Shape
	for _, x := range xs.xs {
		isHit := x.T == hit.T && x.Object == hit.Object
		if isHit {
			if len(containers) > 0 {
				comps.N1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		found := -1
		for index, object := range containers {
			if object == x.Object {
				found = index
				break
			}
		}
		if found >= 0 {
			containers = append(containers[:found], containers[found+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if isHit {
			if len(containers) > 0 {
				comps.N2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			break
		}
	}

	comps.Point = ray.Position(hit.T)
	comps.EyeV = ray.Direction.Negate()
	comps.NormalV = hit.Object.NormalAt(comps.Point, hit.U, hit.V)
	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}
	comps.OverPoint = comps.Point.Add(comps.NormalV.Multiply(core.Epsilon))
	comps.UnderPoint = comps.Point.Subtract(comps.NormalV.Multiply(core.Epsilon))
	comps.ReflectV = ray.Direction.Reflect(comps.NormalV)
	return comps
}

// Schlick approximates the Fresnel reflectance at the hit: the
// fraction of light that reflects rather than refracts
func (c Computations) Schlick() float64 {
	cos := c.EyeV.Dot(c.NormalV)

	if c.N1 > c.N2 {
		n := c.N1 / c.N2
		sin2T := n * n * (1 - cos*cos)
		if sin2T > 1 {
			// total internal reflection
			return 1
		}
		cos = math.Sqrt(1 - sin2T)
	}

	r0 := (c.N1 - c.N2) / (c.N1 + c.N2)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
