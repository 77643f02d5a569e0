// Package integrator implements the recursive Whitted shading loop:
// local Phong lighting blended with reflected and refracted
// contributions.
package integrator

import (
	"math"

	"github.com/mpoquet/go-whitted-raytracer/pkg/core"
	"github.com/mpoquet/go-whitted-raytracer/pkg/geometry"
	"github.com/mpoquet/go-whitted-raytracer/pkg/scene"
)

// DefaultMaxDepth bounds the reflection/refraction recursion. It is
// both a safety fence and a quality knob.
const DefaultMaxDepth = 4

var black = core.NewColor(0, 0, 0)

// Whitted shades rays against a world with recursive reflection and
// refraction. The zero value is not usable; use NewWhitted.
type Whitted struct {
	World *scene.World
}

// NewWhitted creates an integrator for the given world
func NewWhitted(world *scene.World) *Whitted {
	return &Whitted{World: world}
}

// ColorAt returns the color the ray sees, black if it hits nothing.
// The remaining budget is decremented on every recursive bounce.
func (w *Whitted) ColorAt(ray core.Ray, remaining int) core.Tuple {
	xs := w.World.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return black
	}
	comps := hit.PrepareComputations(ray, xs)
	return w.ShadeHit(comps, remaining)
}

// ShadeHit composes the surface lighting with the reflected and
// refracted contributions. On surfaces that are both reflective and
// transparent the two are blended by the Schlick reflectance.
func (w *Whitted) ShadeHit(comps geometry.Computations, remaining int) core.Tuple {
	m := comps.Object.Material()
	shadowed := w.World.IsShadowed(comps.OverPoint)
	surface := m.Lighting(comps.Object, w.World.Light, comps.OverPoint, comps.EyeV, comps.NormalV, shadowed)

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := comps.Schlick()
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor bounces a ray off the surface from just above the
// hit point and scales the result by the material's reflectivity
func (w *Whitted) ReflectedColor(comps geometry.Computations, remaining int) core.Tuple {
	if remaining <= 0 {
		return black
	}
	reflective := comps.Object.Material().Reflective
	if reflective == 0 {
		return black
	}

	reflectRay := core.NewRay(comps.OverPoint, comps.ReflectV)
	color := w.ColorAt(reflectRay, remaining-1)
	return color.Multiply(reflective)
}

// RefractedColor bends a ray through the surface from just below the
// hit point via Snell's law and scales the result by the material's
// transparency. Total internal reflection contributes nothing.
func (w *Whitted) RefractedColor(comps geometry.Computations, remaining int) core.Tuple {
	if remaining <= 0 {
		return black
	}
	transparency := comps.Object.Material().Transparency
	if transparency == 0 {
		return black
	}

	// the ratio is inverted relative to Snell's law
	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).
		Subtract(comps.EyeV.Multiply(nRatio))
	refractRay := core.NewRay(comps.UnderPoint, direction)

	return w.ColorAt(refractRay, remaining-1).Multiply(transparency)
}
