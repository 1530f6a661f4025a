package shapes

import (
	"math"

	"github.com/thommay/ray-trace-challenge/pkg/core"
)

// Cylinder is the canonical infinite cylinder of radius 1 about the y
// axis, optionally truncated by exclusive Minimum/Maximum bounds and
// closed with flat end caps.
type Cylinder struct {
	common
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates an unbounded open cylinder with the default material
func NewCylinder() *Cylinder {
	return &Cylinder{
		common:  newCommon(),
		Minimum: math.Inf(-1),
		Maximum: math.Inf(1),
	}
}

// LocalIntersect solves the cylinder quadratic in x and z, clips the
// roots against the y bounds, and adds any cap hits
func (cyl *Cylinder) LocalIntersect(ray core.Ray) Intersections {
	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	if zeroish(a) {
		// ray is parallel to the y axis
		return cyl.intersectCaps(ray, nil)
	}

	b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
	c := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}

	t0 := (-b - math.Sqrt(disc)) / (2 * a)
	t1 := (-b + math.Sqrt(disc)) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	var xs Intersections
	y0 := ray.Origin.Y + t0*ray.Direction.Y
	if cyl.Minimum < y0 && y0 < cyl.Maximum {
		xs = append(xs, Intersection{T: t0, Object: cyl})
	}
	y1 := ray.Origin.Y + t1*ray.Direction.Y
	if cyl.Minimum < y1 && y1 < cyl.Maximum {
		xs = append(xs, Intersection{T: t1, Object: cyl})
	}
	return cyl.intersectCaps(ray, xs)
}

// intersectCaps checks the flat end caps of a closed cylinder
func (cyl *Cylinder) intersectCaps(ray core.Ray, xs Intersections) Intersections {
	if !cyl.Closed || zeroish(ray.Direction.Y) {
		return xs
	}
	t := (cyl.Minimum - ray.Origin.Y) / ray.Direction.Y
	if capRadius(ray, t, 1) {
		xs = append(xs, Intersection{T: t, Object: cyl})
	}
	t = (cyl.Maximum - ray.Origin.Y) / ray.Direction.Y
	if capRadius(ray, t, 1) {
		xs = append(xs, Intersection{T: t, Object: cyl})
	}
	return xs
}

// LocalNormalAt distinguishes cap points from wall points by their
// distance from the y axis
func (cyl *Cylinder) LocalNormalAt(point core.Point) core.Vector {
	dist := point.X*point.X + point.Z*point.Z
	switch {
	case dist < 1 && point.Y >= cyl.Maximum-core.Epsilon:
		return core.NewVector(0, 1, 0)
	case dist < 1 && point.Y <= cyl.Minimum+core.Epsilon:
		return core.NewVector(0, -1, 0)
	default:
		return core.NewVector(point.X, 0, point.Z)
	}
}

// capRadius reports whether the ray at t lies within radius of the y axis
func capRadius(ray core.Ray, t, radius float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= radius
}

func zeroish(v float64) bool {
	return math.Abs(v) <= core.Epsilon
}
