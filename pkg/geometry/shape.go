// Package geometry implements the primitive shapes, their canonical
// object-space intersection solvers, and the intersection records the
// shading pipeline consumes.
package geometry

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/mpoquet/go-whitted-raytracer/pkg/core"
	"github.com/mpoquet/go-whitted-raytracer/pkg/material"
)

// ErrNotAGroup is returned by AddChild on a shape that is not a group.
var ErrNotAGroup = errors.New("shape is not a group")

// localHit is a raw intersection in a primitive's object space.
// U and V are only meaningful for smooth triangles.
type localHit struct {
	t    float64
	u, v float64
}

// Geometry is the closed set of primitive variants. Each operates in
// its canonical object space; the Shape wrapper handles the transform
// in and out.
type Geometry interface {
	localIntersect(ray core.Ray) []localHit
	localNormalAt(point core.Tuple, u, v float64) core.Tuple
}

var shapeIDs atomic.Uint64

// Shape wraps a geometry variant with a transform, a material, and an
// optional parent group link. Shapes are compared by pointer identity;
// the id exists for diagnostics.
type Shape struct {
	id               uint64
	geometry         Geometry
	transform        core.Matrix
	inverse          core.Matrix
	inverseTranspose core.Matrix
	material         material.Material
	parent           *Shape
}

func newShape(g Geometry) *Shape {
	return &Shape{
		id:               shapeIDs.Add(1),
		geometry:         g,
		transform:        core.Identity(4),
		inverse:          core.Identity(4),
		inverseTranspose: core.Identity(4),
		material:         material.NewMaterial(),
	}
}

// ID returns the shape's unique diagnostic id
func (s *Shape) ID() uint64 {
	return s.id
}

// String identifies the shape for error messages and logs
func (s *Shape) String() string {
	return fmt.Sprintf("%T(%d)", s.geometry, s.id)
}

// Geometry returns the shape's primitive variant
func (s *Shape) Geometry() Geometry {
	return s.geometry
}

// Transform returns the shape's transform
func (s *Shape) Transform() core.Matrix {
	return s.transform
}

// SetTransform assigns the shape's transform and caches its inverse.
// Panics if the matrix is not invertible; such a transform cannot
// place a shape in the world.
func (s *Shape) SetTransform(m core.Matrix) {
	inverse, err := m.Inverse()
	if err != nil {
		panic(fmt.Sprintf("shape %s: transform is not invertible", s))
	}
	s.transform = m
	s.inverse = inverse
	s.inverseTranspose = inverse.Transpose()
}

// Material returns the shape's material
func (s *Shape) Material() material.Material {
	return s.material
}

// SetMaterial assigns the shape's material
func (s *Shape) SetMaterial(m material.Material) {
	s.material = m
}

// Parent returns the group this shape belongs to, or nil
func (s *Shape) Parent() *Shape {
	return s.parent
}

// Intersect moves the world-space ray into the shape's object space
// and collects the primitive's intersections, sorted by t
func (s *Shape) Intersect(worldRay core.Ray) Intersections {
	localRay := worldRay.Transform(s.inverse)
	if g, ok := s.geometry.(*Group); ok {
		return g.intersectChildren(localRay)
	}
	hits := s.geometry.localIntersect(localRay)
	xs := make([]Intersection, 0, len(hits))
	for _, h := range hits {
		xs = append(xs, NewIntersectionUV(h.t, s, h.u, h.v))
	}
	return NewIntersections(xs...)
}

// NormalAt converts the world point to object space, asks the
// primitive for its local normal, and converts the result back out
// through the ancestor chain. U and v are only used by smooth
// triangles.
func (s *Shape) NormalAt(worldPoint core.Tuple, u, v float64) core.Tuple {
	localPoint := s.WorldToObject(worldPoint)
	localNormal := s.geometry.localNormalAt(localPoint, u, v)
	return s.NormalToWorld(localNormal)
}

// WorldToObject converts a world-space point into this shape's object
// space, walking down through any ancestor groups first
func (s *Shape) WorldToObject(point core.Tuple) core.Tuple {
	if s.parent != nil {
		point = s.parent.WorldToObject(point)
	}
	return s.inverse.MultiplyTuple(point)
}

// NormalToWorld converts an object-space normal into world space,
// walking up through any ancestor groups
func (s *Shape) NormalToWorld(normal core.Tuple) core.Tuple {
	normal = s.inverseTranspose.MultiplyTuple(normal)
	normal.W = 0
	normal = normal.Normalize()
	if s.parent != nil {
		normal = s.parent.NormalToWorld(normal)
	}
	return normal
}

// AddChild appends a shape to this group and sets its parent link.
// Returns ErrNotAGroup when called on any other variant.
func (s *Shape) AddChild(child *Shape) error {
	g, ok := s.geometry.(*Group)
	if !ok {
		return fmt.Errorf("cannot add child to %s: %w", s, ErrNotAGroup)
	}
	child.parent = s
	g.children = append(g.children, child)
	return nil
}

// Children returns the group's children, or nil for other variants
func (s *Shape) Children() []*Shape {
	if g, ok := s.geometry.(*Group); ok {
		return g.children
	}
	return nil
}
