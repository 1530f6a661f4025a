package shapes

import (
	"math"
	"sort"

	"github.com/thommay/ray-trace-challenge/pkg/core"
)

// Intersection records where a ray met a shape. The object reference is
// non-owning and only valid while the shape is alive.
type Intersection struct {
	T      float64
	Object Shape
}

// Intersections is an ordered collection of intersections
type Intersections []Intersection

// NewIntersections collects intersections into a list
func NewIntersections(xs ...Intersection) Intersections {
	return Intersections(xs)
}

// Sort orders the list ascending by t. The sort is stable so ties keep
// their insertion order.
func (xs Intersections) Sort() {
	sort.SliceStable(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
}

// Hit sorts the list and returns the visible intersection: the one with
// the lowest non-negative t. Entries behind the ray origin are ignored.
func (xs Intersections) Hit() (Intersection, bool) {
	xs.Sort()
	for _, i := range xs {
		if i.T > 0 {
			return i, true
		}
	}
	return Intersection{}, false
}

// Computations holds the shading inputs precomputed from one
// intersection: the surface point, the eye and normal vectors, the
// acne-avoiding over/under points, the reflection vector, and the
// refractive indices on either side of the hit.
type Computations struct {
	T          float64
	Object     Shape
	Point      core.Point
	OverPoint  core.Point
	UnderPoint core.Point
	EyeV       core.Vector
	NormalV    core.Vector
	ReflectV   core.Vector
	Inside     bool
	N1, N2     float64
}

// PrepareComputations builds the shading inputs for a hit. The full
// sorted intersection list is walked to maintain the stack of
// transparent objects the ray is currently inside, which determines the
// refractive indices n1 (before the hit) and n2 (after it).
func PrepareComputations(hit Intersection, ray core.Ray, xs Intersections) Computations {
	comps := Computations{
		T:      hit.T,
		Object: hit.Object,
		N1:     1.0,
		N2:     1.0,
	}
	comps.Point = ray.Position(hit.T)
	comps.EyeV = ray.Direction.Negate()
	comps.NormalV = NormalAt(hit.Object, comps.Point)
	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}
	comps.OverPoint = comps.Point.Add(comps.NormalV.Multiply(core.Epsilon))
	comps.UnderPoint = comps.Point.SubtractVector(comps.NormalV.Multiply(core.Epsilon))
	comps.ReflectV = ray.Direction.Reflect(comps.NormalV)

	if len(xs) == 0 {
		xs = Intersections{hit}
	}
	xs.Sort()
	var containers []Shape
	for _, i := range xs {
		isHit := i.Object == hit.Object && i.T == hit.T
		if isHit {
			if len(containers) == 0 {
				comps.N1 = 1.0
			} else {
				comps.N1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}
		if idx := indexOf(containers, i.Object); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, i.Object)
		}
		if isHit {
			if len(containers) == 0 {
				comps.N2 = 1.0
			} else {
				comps.N2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			break
		}
	}
	return comps
}

func indexOf(shapes []Shape, s Shape) int {
	for i, x := range shapes {
		if x == s {
			return i
		}
	}
	return -1
}

// Schlick approximates the Fresnel reflectance at the hit. Total
// internal reflection returns 1.
func (c Computations) Schlick() float64 {
	cos := c.EyeV.Dot(c.NormalV)
	if c.N1 > c.N2 {
		n := c.N1 / c.N2
		sin2T := n * n * (1 - cos*cos)
		if sin2T > 1 {
			return 1.0
		}
		cos = math.Sqrt(1 - sin2T)
	}
	r0 := (c.N1 - c.N2) / (c.N1 + c.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
