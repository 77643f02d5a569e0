package material

import (
	"math"

	"github.com/mpoquet/go-whitted-raytracer/pkg/core"
)

// Object is the view of a shape a pattern needs: the conversion of a
// world-space point into the shape's object space. Shapes in the
// geometry package implement it.
type Object interface {
	WorldToObject(point core.Tuple) core.Tuple
}

// patternRule evaluates a color at a point already in pattern space
type patternRule interface {
	colorAt(point core.Tuple) core.Tuple
}

// Pattern procedurally colors a surface. The rule is evaluated in
// pattern space: the world point converted to object space, then
// multiplied by the inverse of the pattern's own transform.
type Pattern struct {
	rule      patternRule
	transform core.Matrix
	inverse   core.Matrix
}

func newPattern(rule patternRule) *Pattern {
	return &Pattern{
		rule:      rule,
		transform: core.Identity(4),
		inverse:   core.Identity(4),
	}
}

// NewStripePattern alternates between two colors along x
func NewStripePattern(a, b core.Tuple) *Pattern {
	return newPattern(stripeRule{a: a, b: b})
}

// NewGradientPattern blends linearly from a to b along x
func NewGradientPattern(a, b core.Tuple) *Pattern {
	return newPattern(gradientRule{a: a, b: b})
}

// NewRingPattern alternates between two colors in concentric rings
// around the y axis
func NewRingPattern(a, b core.Tuple) *Pattern {
	return newPattern(ringRule{a: a, b: b})
}

// NewCheckerPattern alternates between two colors in a 3D checkerboard
func NewCheckerPattern(a, b core.Tuple) *Pattern {
	return newPattern(checkerRule{a: a, b: b})
}

// NewTestPattern returns the pattern-space point as a color, which
// makes coordinate transformations observable in tests
func NewTestPattern() *Pattern {
	return newPattern(testRule{})
}

// Transform returns the pattern's transform
func (p *Pattern) Transform() core.Matrix {
	return p.transform
}

// SetTransform assigns the pattern's transform.
// Panics if the matrix is not invertible.
func (p *Pattern) SetTransform(m core.Matrix) {
	inverse, err := m.Inverse()
	if err != nil {
		panic("pattern transform is not invertible")
	}
	p.transform = m
	p.inverse = inverse
}

// ColorAt evaluates the pattern at a point in pattern space
func (p *Pattern) ColorAt(point core.Tuple) core.Tuple {
	return p.rule.colorAt(point)
}

// ColorAtObject evaluates the pattern at a world-space point on a shape
func (p *Pattern) ColorAtObject(object Object, worldPoint core.Tuple) core.Tuple {
	objectPoint := object.WorldToObject(worldPoint)
	patternPoint := p.inverse.MultiplyTuple(objectPoint)
	return p.rule.colorAt(patternPoint)
}

type stripeRule struct{ a, b core.Tuple }

func (r stripeRule) colorAt(point core.Tuple) core.Tuple {
	if int(math.Floor(point.X))%2 == 0 {
		return r.a
	}
	return r.b
}

type gradientRule struct{ a, b core.Tuple }

func (r gradientRule) colorAt(point core.Tuple) core.Tuple {
	distance := r.b.Subtract(r.a)
	fraction := point.X - math.Floor(point.X)
	return r.a.Add(distance.Multiply(fraction))
}

type ringRule struct{ a, b core.Tuple }

func (r ringRule) colorAt(point core.Tuple) core.Tuple {
	if int(math.Floor(math.Sqrt(point.X*point.X+point.Z*point.Z)))%2 == 0 {
		return r.a
	}
	return r.b
}

type checkerRule struct{ a, b core.Tuple }

func (r checkerRule) colorAt(point core.Tuple) core.Tuple {
	sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
	if int(sum)%2 == 0 {
		return r.a
	}
	return r.b
}

type testRule struct{}

func (testRule) colorAt(point core.Tuple) core.Tuple {
	return core.NewColor(point.X, point.Y, point.Z)
}
