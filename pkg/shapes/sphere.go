package shapes

import (
	"math"

	"github.com/thommay/ray-trace-challenge/pkg/core"
)

// Sphere is the canonical unit sphere centered at the origin
type Sphere struct {
	common
}

// NewSphere creates a unit sphere with the default material
func NewSphere() *Sphere {
	return &Sphere{common: newCommon()}
}

// NewGlassSphere creates a fully transparent sphere with the refractive
// index of glass
func NewGlassSphere() *Sphere {
	s := NewSphere()
	s.material.Transparency = 1.0
	s.material.RefractiveIndex = 1.5
	return s
}

// LocalIntersect solves the sphere quadratic for the local-space ray.
// A tangent ray yields two equal t values.
func (s *Sphere) LocalIntersect(ray core.Ray) Intersections {
	sphereToRay := ray.Origin.Subtract(core.NewPoint(0, 0, 0))
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	return Intersections{
		{T: (-b - sqrtD) / (2 * a), Object: s},
		{T: (-b + sqrtD) / (2 * a), Object: s},
	}
}

// LocalNormalAt returns the normal at a local-space surface point
func (s *Sphere) LocalNormalAt(point core.Point) core.Vector {
	return point.Subtract(core.NewPoint(0, 0, 0))
}
