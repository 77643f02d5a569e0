// Package material implements Phong surface materials and the
// procedural patterns that can color them.
package material

import (
	"math"

	"github.com/mpoquet/go-whitted-raytracer/pkg/core"
	"github.com/mpoquet/go-whitted-raytracer/pkg/lights"
)

// Material holds the surface parameters used by the Phong lighting
// model plus the reflection and refraction knobs
type Material struct {
	Color           core.Tuple
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
	Pattern         *Pattern
}

// NewMaterial creates a material with the default parameters
func NewMaterial() Material {
	return Material{
		Color:           core.NewColor(1, 1, 1),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1,
	}
}

// Glass creates a fully transparent material with the refractive
// index of glass
func Glass() Material {
	m := NewMaterial()
	m.Transparency = 1
	m.RefractiveIndex = 1.5
	return m
}

// Lighting computes the Phong shading at a point: the sum of the
// ambient, diffuse, and specular contributions. A shadowed point only
// receives the ambient term.
func (m Material) Lighting(object Object, light lights.PointLight, point, eyev, normalv core.Tuple, inShadow bool) core.Tuple {
	color := m.Color
	if m.Pattern != nil {
		color = m.Pattern.ColorAtObject(object, point)
	}

	// combine the surface color with the light's intensity
	effective := color.MultiplyComponents(light.Intensity)
	ambient := effective.Multiply(m.Ambient)

	lightv := light.Position.Subtract(point).Normalize()
	lightDotNormal := lightv.Dot(normalv)

	// a negative cosine means the light is on the other side of
	// the surface
	if inShadow || lightDotNormal <= 0 {
		return ambient
	}

	diffuse := effective.Multiply(m.Diffuse * lightDotNormal)

	reflectv := lightv.Negate().Reflect(normalv)
	reflectDotEye := reflectv.Dot(eyev)
	if reflectDotEye <= 0 {
		return ambient.Add(diffuse)
	}

	factor := math.Pow(reflectDotEye, m.Shininess)
	specular := light.Intensity.Multiply(m.Specular * factor)

	return ambient.Add(diffuse).Add(specular)
}
