package geometry

import (
	"github.com/mpoquet/go-whitted-raytracer/pkg/core"
)

// Group is a container of child shapes sharing the group's transform.
// Groups may nest; a child's effective transform is the product of
// every ancestor transform with its own.
type Group struct {
	children []*Shape
}

// NewGroup creates an empty group shape
func NewGroup() *Shape {
	return newShape(&Group{})
}

// intersectChildren collects the intersections of every child with a
// ray already in the group's object space. Each child reports itself,
// not the group, as the hit object.
func (g *Group) intersectChildren(ray core.Ray) Intersections {
	var xs []Intersection
	for _, child := range g.children {
		childXs := child.Intersect(ray)
		xs = append(xs, childXs.xs...)
	}
	return NewIntersections(xs...)
}

func (g *Group) localIntersect(ray core.Ray) []localHit {
	// the Shape wrapper routes groups to intersectChildren; a group
	// has no local hits of its own
	return nil
}

func (g *Group) localNormalAt(point core.Tuple, u, v float64) core.Tuple {
	// normals are always asked of concrete children
	panic("group has no local normal")
}
