package scene

import (
	"math"

	"github.com/mpoquet/go-whitted-raytracer/pkg/core"
	"github.com/mpoquet/go-whitted-raytracer/pkg/geometry"
	"github.com/mpoquet/go-whitted-raytracer/pkg/lights"
	"github.com/mpoquet/go-whitted-raytracer/pkg/material"
)

// NewCoverScene builds a showcase arrangement mixing every primitive kind:
// a mirrored cube on a ringed floor, a glass sphere, a capped cylinder and
// a cone.
func NewCoverScene() (*World, CameraSpec) {
	w := NewWorld()
	w.Light = lights.NewPointLight(core.NewPoint(-8, 10, -10), core.NewColor(1, 1, 1))

	floor := geometry.NewPlane()
	floorMat := material.NewMaterial()
	floorMat.Pattern = material.NewRingPattern(core.NewColor(0.6, 0.6, 0.65), core.NewColor(0.2, 0.2, 0.25))
	floorMat.Pattern.SetTransform(core.Scaling(1.5, 1.5, 1.5))
	floorMat.Specular = 0
	floorMat.Reflective = 0.15
	floor.SetMaterial(floorMat)
	w.AddObject(floor)

	backdrop := geometry.NewPlane()
	backdrop.SetTransform(core.Translation(0, 0, 8).Multiply(core.RotationX(math.Pi / 2)))
	backdropMat := material.NewMaterial()
	backdropMat.Pattern = material.NewGradientPattern(core.NewColor(0.2, 0.3, 0.7), core.NewColor(0.05, 0.05, 0.2))
	backdropMat.Pattern.SetTransform(core.Scaling(12, 1, 1).Multiply(core.Translation(0.5, 0, 0)))
	backdropMat.Specular = 0
	backdrop.SetMaterial(backdropMat)
	w.AddObject(backdrop)

	mirrorCube := geometry.NewCube()
	mirrorCube.SetTransform(core.Translation(-2.5, 1, 1.5).Multiply(core.RotationY(math.Pi / 5)))
	cubeMat := material.NewMaterial()
	cubeMat.Color = core.NewColor(0.05, 0.05, 0.05)
	cubeMat.Diffuse = 0.3
	cubeMat.Specular = 1
	cubeMat.Shininess = 300
	cubeMat.Reflective = 0.9
	mirrorCube.SetMaterial(cubeMat)
	w.AddObject(mirrorCube)

	glass := geometry.NewGlassSphere()
	glass.SetTransform(core.Translation(0.5, 1, -1))
	glassMat := glass.Material()
	glassMat.Color = core.NewColor(0.05, 0.05, 0.05)
	glassMat.Diffuse = 0.1
	glassMat.Specular = 1
	glassMat.Shininess = 300
	glassMat.Reflective = 0.9
	glass.SetMaterial(glassMat)
	w.AddObject(glass)

	pillar := geometry.NewBoundedCylinder(0, 2, true)
	pillar.SetTransform(core.Translation(3, 0, 2).Multiply(core.Scaling(0.6, 1, 0.6)))
	pillarMat := material.NewMaterial()
	pillarMat.Pattern = material.NewStripePattern(core.NewColor(0.8, 0.2, 0.2), core.NewColor(0.9, 0.9, 0.9))
	pillarMat.Pattern.SetTransform(core.Scaling(0.3, 0.3, 0.3).Multiply(core.RotationZ(math.Pi / 2)))
	pillar.SetMaterial(pillarMat)
	w.AddObject(pillar)

	spire := geometry.NewBoundedCone(-1, 0, true)
	spire.SetTransform(core.Translation(3, 3, 2).Multiply(core.Scaling(0.6, 1, 0.6)))
	spireMat := material.NewMaterial()
	spireMat.Color = core.NewColor(0.9, 0.7, 0.2)
	spireMat.Diffuse = 0.8
	spire.SetMaterial(spireMat)
	w.AddObject(spire)

	spec := CameraSpec{
		FieldOfView: math.Pi / 3,
		From:        core.NewPoint(0, 2.5, -7),
		To:          core.NewPoint(0, 1, 0),
		Up:          core.NewVector(0, 1, 0),
	}
	return w, spec
}
