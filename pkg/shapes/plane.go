package shapes

import (
	"math"

	"github.com/thommay/ray-trace-challenge/pkg/core"
)

// Plane is the canonical xz plane through the origin
type Plane struct {
	common
}

// NewPlane creates a plane with the default material
func NewPlane() *Plane {
	return &Plane{common: newCommon()}
}

// LocalIntersect returns the single crossing of the plane, or nothing
// when the ray is parallel (or coplanar) with it
func (p *Plane) LocalIntersect(ray core.Ray) Intersections {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}
	t := -ray.Origin.Y / ray.Direction.Y
	return Intersections{{T: t, Object: p}}
}

// LocalNormalAt returns the constant plane normal
func (p *Plane) LocalNormalAt(core.Point) core.Vector {
	return core.NewVector(0, 1, 0)
}
