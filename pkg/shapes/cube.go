package shapes

import (
	"math"

	"github.com/thommay/ray-trace-challenge/pkg/core"
)

// Cube is the canonical axis-aligned cube spanning -1..1 on every axis
type Cube struct {
	common
}

// NewCube creates a cube with the default material
func NewCube() *Cube {
	return &Cube{common: newCommon()}
}

// LocalIntersect applies the slab method: per-axis entry and exit times,
// with the overall entry being the largest minimum and the overall exit
// the smallest maximum
func (c *Cube) LocalIntersect(ray core.Ray) Intersections {
	xtmin, xtmax := checkAxis(ray.Origin.X, ray.Direction.X)
	ytmin, ytmax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	ztmin, ztmax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tmin := math.Max(xtmin, math.Max(ytmin, ztmin))
	tmax := math.Min(xtmax, math.Min(ytmax, ztmax))
	if tmin > tmax {
		return nil
	}
	return Intersections{{T: tmin, Object: c}, {T: tmax, Object: c}}
}

// checkAxis computes where the ray crosses the two parallel planes of
// one slab. Division by a zero direction component yields infinities,
// which compare correctly in the min/max reduction.
func checkAxis(origin, direction float64) (float64, float64) {
	tmin := (-1 - origin) / direction
	tmax := (1 - origin) / direction
	if tmin > tmax {
		return tmax, tmin
	}
	return tmin, tmax
}

// LocalNormalAt picks the axis with the largest absolute coordinate
func (c *Cube) LocalNormalAt(point core.Point) core.Vector {
	maxc := math.Max(math.Abs(point.X), math.Max(math.Abs(point.Y), math.Abs(point.Z)))
	switch maxc {
	case math.Abs(point.X):
		return core.NewVector(point.X, 0, 0)
	case math.Abs(point.Y):
		return core.NewVector(0, point.Y, 0)
	default:
		return core.NewVector(0, 0, point.Z)
	}
}
