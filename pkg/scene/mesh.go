package scene

import (
	"math"

	"github.com/mpoquet/go-whitted-raytracer/pkg/core"
	"github.com/mpoquet/go-whitted-raytracer/pkg/geometry"
	"github.com/mpoquet/go-whitted-raytracer/pkg/lights"
	"github.com/mpoquet/go-whitted-raytracer/pkg/material"
)

// NewMeshScene places an imported triangle mesh on a checkered floor.
func NewMeshScene(mesh *geometry.Shape) (*World, CameraSpec) {
	w := NewWorld()
	w.Light = lights.NewPointLight(core.NewPoint(-10, 10, -10), core.NewColor(1, 1, 1))

	floor := geometry.NewPlane()
	floorMat := material.NewMaterial()
	floorMat.Pattern = material.NewCheckerPattern(core.NewColor(0.8, 0.8, 0.8), core.NewColor(0.3, 0.3, 0.3))
	floorMat.Specular = 0
	floor.SetMaterial(floorMat)
	w.AddObject(floor)

	meshMat := material.NewMaterial()
	meshMat.Color = core.NewColor(0.7, 0.7, 0.3)
	applyMaterial(mesh, meshMat)
	w.AddObject(mesh)

	spec := CameraSpec{
		FieldOfView: math.Pi / 3,
		From:        core.NewPoint(0, 2, -6),
		To:          core.NewPoint(0, 1, 0),
		Up:          core.NewVector(0, 1, 0),
	}
	return w, spec
}

// applyMaterial sets the material on a shape and all of its descendants.
func applyMaterial(s *geometry.Shape, m material.Material) {
	s.SetMaterial(m)
	for _, child := range s.Children() {
		applyMaterial(child, m)
	}
}
