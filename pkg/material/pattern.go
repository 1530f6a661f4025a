package material

import (
	"math"

	"github.com/thommay/ray-trace-challenge/pkg/core"
)

type patternKind int

const (
	stripeKind patternKind = iota
	gradientKind
	ringKind
	checkerKind
	testKind
)

// Pattern is a two-colour procedural function evaluated in pattern-local
// space. A pattern owns an optional transform, applied on top of the
// owning object's transform, and can optionally perturb lookup points
// with a deterministic jitter to break up hard edges.
type Pattern struct {
	A, B      core.Color
	Perturbed bool

	kind      patternKind
	transform *core.Matrix
	inverse   *core.Matrix
}

// NewStripePattern alternates a and b in unit-wide bands along x
func NewStripePattern(a, b core.Color) *Pattern {
	return &Pattern{A: a, B: b, kind: stripeKind}
}

// NewGradientPattern blends linearly from a to b along x
func NewGradientPattern(a, b core.Color) *Pattern {
	return &Pattern{A: a, B: b, kind: gradientKind}
}

// NewRingPattern alternates a and b in concentric rings in the xz plane
func NewRingPattern(a, b core.Color) *Pattern {
	return &Pattern{A: a, B: b, kind: ringKind}
}

// NewCheckerPattern alternates a and b in a 3D checkerboard
func NewCheckerPattern(a, b core.Color) *Pattern {
	return &Pattern{A: a, B: b, kind: checkerKind}
}

// NewTestPattern returns the lookup point as a colour, which lets tests
// observe the coordinate space a pattern was evaluated in
func NewTestPattern() *Pattern {
	return &Pattern{kind: testKind}
}

// Transform returns the pattern's transform, or nil for identity
func (p *Pattern) Transform() *core.Matrix {
	return p.transform
}

// SetTransform assigns the pattern's transform, caching its inverse.
// A singular matrix is rejected.
func (p *Pattern) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	p.transform = &m
	p.inverse = &inv
	return nil
}

// AtObject evaluates the pattern for a world-space point on the given
// object: the point is carried into object space, then into pattern
// space, before the procedural function runs.
func (p *Pattern) AtObject(object Object, worldPoint core.Point) core.Color {
	point := worldPoint
	if object != nil {
		point = object.WorldToObject(point)
	}
	if p.inverse != nil {
		point = p.inverse.MultiplyPoint(point)
	}
	return p.At(point)
}

// At evaluates the pattern at a pattern-space point
func (p *Pattern) At(point core.Point) core.Color {
	if p.Perturbed {
		point = perturb(point)
	}
	switch p.kind {
	case stripeKind:
		if mod2(math.Floor(point.X)) == 0 {
			return p.A
		}
		return p.B
	case gradientKind:
		distance := p.B.Subtract(p.A)
		fraction := point.X - math.Floor(point.X)
		return p.A.Add(distance.Multiply(fraction))
	case ringKind:
		if mod2(math.Floor(math.Sqrt(point.X*point.X+point.Z*point.Z))) == 0 {
			return p.A
		}
		return p.B
	case checkerKind:
		sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
		if mod2(sum) == 0 {
			return p.A
		}
		return p.B
	default:
		return core.NewColor(point.X, point.Y, point.Z)
	}
}

// mod2 is a floored modulus so negative bands alternate the same way
// positive ones do
func mod2(v float64) float64 {
	return v - 2*math.Floor(v/2)
}

// perturb jitters a lookup point with a fixed smooth 3D-to-scalar
// function. Any deterministic perturbation works here; this one layers
// sines so neighbouring points stay close.
func perturb(p core.Point) core.Point {
	n := 0.2 * (math.Sin(p.X*7.13) + math.Sin(p.Y*5.71)*0.5 + math.Sin(p.Z*3.97)*0.25)
	return core.NewPoint(p.X+n, p.Y+n*0.8, p.Z+n*0.6)
}
