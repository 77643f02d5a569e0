// Package lights provides the light sources a world can hold.
package lights

import "github.com/mpoquet/go-whitted-raytracer/pkg/core"

// PointLight is a light source with no size, existing at a single
// point and radiating in every direction
type PointLight struct {
	Position  core.Tuple
	Intensity core.Tuple
}

// NewPointLight creates a point light at a position with an RGB intensity
func NewPointLight(position, intensity core.Tuple) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
