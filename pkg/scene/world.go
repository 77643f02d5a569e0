// Package scene holds the world a render observes and the builder
// functions that assemble the demo scenes.
package scene

import (
	"github.com/mpoquet/go-whitted-raytracer/pkg/core"
	"github.com/mpoquet/go-whitted-raytracer/pkg/geometry"
	"github.com/mpoquet/go-whitted-raytracer/pkg/lights"
	"github.com/mpoquet/go-whitted-raytracer/pkg/material"
)

// World is a scene: one point light plus the top-level shapes.
// It is treated as immutable while a frame renders.
type World struct {
	Light   lights.PointLight
	Objects []*geometry.Shape
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{}
}

// DefaultWorld creates the two-sphere world used throughout the tests:
// a light in the upper left and two concentric spheres
func DefaultWorld() *World {
	light := lights.NewPointLight(core.NewPoint(-10, 10, -10), core.NewColor(1, 1, 1))

	s1 := geometry.NewSphere()
	m1 := material.NewMaterial()
	m1.Color = core.NewColor(0.8, 1.0, 0.6)
	m1.Diffuse = 0.7
	m1.Specular = 0.2
	s1.SetMaterial(m1)

	s2 := geometry.NewSphere()
	s2.SetTransform(core.Scaling(0.5, 0.5, 0.5))

	return &World{Light: light, Objects: []*geometry.Shape{s1, s2}}
}

// AddObject appends a top-level shape to the world
func (w *World) AddObject(s *geometry.Shape) {
	w.Objects = append(w.Objects, s)
}

// Intersect collects the intersections of the ray with every shape in
// the world, sorted ascending by t
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs []geometry.Intersection
	for _, object := range w.Objects {
		objectXs := object.Intersect(ray)
		for i := 0; i < objectXs.Count(); i++ {
			xs = append(xs, objectXs.At(i))
		}
	}
	return geometry.NewIntersections(xs...)
}

// IsShadowed reports whether anything blocks the segment between the
// point and the light
func (w *World) IsShadowed(point core.Tuple) bool {
	v := w.Light.Position.Subtract(point)
	distance := v.Magnitude()
	ray := core.NewRay(point, v.Normalize())

	hit, ok := w.Intersect(ray).Hit()
	return ok && hit.T < distance
}
