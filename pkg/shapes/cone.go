package shapes

import (
	"math"

	"github.com/thommay/ray-trace-challenge/pkg/core"
)

// Cone is the canonical double-napped cone about the y axis, its tip at
// the origin, optionally truncated and capped like a cylinder. The cap
// radius grows with |y|.
type Cone struct {
	common
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCone creates an unbounded open cone with the default material
func NewCone() *Cone {
	return &Cone{
		common:  newCommon(),
		Minimum: math.Inf(-1),
		Maximum: math.Inf(1),
	}
}

// LocalIntersect solves the cone quadratic. When the a coefficient
// vanishes the ray is parallel to one half of the cone and the equation
// degenerates to a linear one with a single root.
func (cn *Cone) LocalIntersect(ray core.Ray) Intersections {
	a := ray.Direction.X*ray.Direction.X - ray.Direction.Y*ray.Direction.Y + ray.Direction.Z*ray.Direction.Z
	b := 2*ray.Origin.X*ray.Direction.X - 2*ray.Origin.Y*ray.Direction.Y + 2*ray.Origin.Z*ray.Direction.Z
	if zeroish(a) && zeroish(b) {
		return cn.intersectCaps(ray, nil)
	}

	c := ray.Origin.X*ray.Origin.X - ray.Origin.Y*ray.Origin.Y + ray.Origin.Z*ray.Origin.Z
	var xs Intersections
	if zeroish(a) {
		xs = append(xs, Intersection{T: -c / (2 * b), Object: cn})
	} else {
		disc := b*b - 4*a*c
		if disc < 0 {
			return nil
		}
		t0 := (-b - math.Sqrt(disc)) / (2 * a)
		t1 := (-b + math.Sqrt(disc)) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		y0 := ray.Origin.Y + t0*ray.Direction.Y
		if cn.Minimum < y0 && y0 < cn.Maximum {
			xs = append(xs, Intersection{T: t0, Object: cn})
		}
		y1 := ray.Origin.Y + t1*ray.Direction.Y
		if cn.Minimum < y1 && y1 < cn.Maximum {
			xs = append(xs, Intersection{T: t1, Object: cn})
		}
	}
	return cn.intersectCaps(ray, xs)
}

// intersectCaps checks the flat end caps of a closed cone
func (cn *Cone) intersectCaps(ray core.Ray, xs Intersections) Intersections {
	if !cn.Closed || zeroish(ray.Direction.Y) {
		return xs
	}
	t := (cn.Minimum - ray.Origin.Y) / ray.Direction.Y
	if capRadius(ray, t, math.Abs(cn.Minimum)) {
		xs = append(xs, Intersection{T: t, Object: cn})
	}
	t = (cn.Maximum - ray.Origin.Y) / ray.Direction.Y
	if capRadius(ray, t, math.Abs(cn.Maximum)) {
		xs = append(xs, Intersection{T: t, Object: cn})
	}
	return xs
}

// LocalNormalAt mirrors the intersection logic: cap points get axis
// normals, wall points slope away from the axis with the sign of y
// inverted above the tip
func (cn *Cone) LocalNormalAt(point core.Point) core.Vector {
	dist := point.X*point.X + point.Z*point.Z
	switch {
	case dist < 1 && point.Y >= cn.Maximum-core.Epsilon:
		return core.NewVector(0, 1, 0)
	case dist < 1 && point.Y <= cn.Minimum+core.Epsilon:
		return core.NewVector(0, -1, 0)
	default:
		y := math.Sqrt(dist)
		if point.Y > 0 {
			y = -y
		}
		return core.NewVector(point.X, y, point.Z)
	}
}
