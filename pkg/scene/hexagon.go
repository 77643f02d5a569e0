package scene

import (
	"math"

	"github.com/mpoquet/go-whitted-raytracer/pkg/core"
	"github.com/mpoquet/go-whitted-raytracer/pkg/geometry"
	"github.com/mpoquet/go-whitted-raytracer/pkg/lights"
)

// NewHexagonScene builds a hexagonal ring assembled from sphere corners and
// cylinder edges, demonstrating nested group transforms.
func NewHexagonScene() (*World, CameraSpec) {
	w := NewWorld()
	w.Light = lights.NewPointLight(core.NewPoint(-10, 10, -10), core.NewColor(1, 1, 1))

	hex := hexagon()
	hex.SetTransform(core.RotationX(-math.Pi / 6))
	w.AddObject(hex)

	spec := CameraSpec{
		FieldOfView: math.Pi / 3,
		From:        core.NewPoint(0, 2, -4),
		To:          core.NewPoint(0, 0, 0),
		Up:          core.NewVector(0, 1, 0),
	}
	return w, spec
}

func hexagonCorner() *geometry.Shape {
	corner := geometry.NewSphere()
	corner.SetTransform(core.Translation(0, 0, -1).Multiply(core.Scaling(0.25, 0.25, 0.25)))
	return corner
}

func hexagonEdge() *geometry.Shape {
	edge := geometry.NewBoundedCylinder(0, 1, false)
	edge.SetTransform(
		core.Translation(0, 0, -1).
			Multiply(core.RotationY(-math.Pi / 6)).
			Multiply(core.RotationZ(-math.Pi / 2)).
			Multiply(core.Scaling(0.25, 1, 0.25)))
	return edge
}

func hexagonSide() *geometry.Shape {
	side := geometry.NewGroup()
	side.AddChild(hexagonCorner())
	side.AddChild(hexagonEdge())
	return side
}

func hexagon() *geometry.Shape {
	hex := geometry.NewGroup()
	for i := 0; i < 6; i++ {
		side := hexagonSide()
		side.SetTransform(core.RotationY(float64(i) * math.Pi / 3))
		hex.AddChild(side)
	}
	return hex
}
