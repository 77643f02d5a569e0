package scene

import (
	"math"

	"github.com/mpoquet/go-whitted-raytracer/pkg/core"
	"github.com/mpoquet/go-whitted-raytracer/pkg/geometry"
	"github.com/mpoquet/go-whitted-raytracer/pkg/lights"
	"github.com/mpoquet/go-whitted-raytracer/pkg/material"
)

// NewDefaultScene builds a checkered floor with three spheres, one of them
// glass, lit from the upper left.
func NewDefaultScene() (*World, CameraSpec) {
	w := NewWorld()
	w.Light = lights.NewPointLight(core.NewPoint(-10, 10, -10), core.NewColor(1, 1, 1))

	floor := geometry.NewPlane()
	floorMat := material.NewMaterial()
	floorMat.Pattern = material.NewCheckerPattern(core.NewColor(0.85, 0.85, 0.85), core.NewColor(0.25, 0.25, 0.25))
	floorMat.Specular = 0
	floorMat.Reflective = 0.1
	floor.SetMaterial(floorMat)
	w.AddObject(floor)

	middle := geometry.NewSphere()
	middle.SetTransform(core.Translation(-0.5, 1, 0.5))
	middleMat := material.NewMaterial()
	middleMat.Color = core.NewColor(0.1, 0.6, 0.4)
	middleMat.Diffuse = 0.7
	middleMat.Specular = 0.3
	middleMat.Reflective = 0.2
	middle.SetMaterial(middleMat)
	w.AddObject(middle)

	right := geometry.NewGlassSphere()
	right.SetTransform(core.Translation(1.5, 0.5, -0.5).Multiply(core.Scaling(0.5, 0.5, 0.5)))
	w.AddObject(right)

	left := geometry.NewSphere()
	left.SetTransform(core.Translation(-1.5, 0.33, -0.75).Multiply(core.Scaling(0.33, 0.33, 0.33)))
	leftMat := material.NewMaterial()
	leftMat.Pattern = material.NewStripePattern(core.NewColor(0.9, 0.4, 0.1), core.NewColor(0.9, 0.7, 0.1))
	leftMat.Pattern.SetTransform(core.Scaling(0.25, 0.25, 0.25).Multiply(core.RotationZ(math.Pi / 4)))
	leftMat.Diffuse = 0.7
	leftMat.Specular = 0.3
	left.SetMaterial(leftMat)
	w.AddObject(left)

	spec := CameraSpec{
		FieldOfView: math.Pi / 3,
		From:        core.NewPoint(0, 1.5, -5),
		To:          core.NewPoint(0, 1, 0),
		Up:          core.NewVector(0, 1, 0),
	}
	return w, spec
}
