// Package shapes implements the primitive geometry family: each shape
// intersects rays and computes normals in its own canonical local space,
// with an owned transform (and optional parent group) carrying it into
// the world.
package shapes

import (
	"github.com/thommay/ray-trace-challenge/pkg/core"
	"github.com/thommay/ray-trace-challenge/pkg/material"
)

// Shape is the closed set of primitive geometries. World-space behavior
// is derived from the local-space methods: rays are carried into local
// space by the inverse of the accumulated transform chain, and normals
// are carried back out by its inverse transpose.
type Shape interface {
	material.Object

	// LocalIntersect returns the t values where the local-space ray
	// meets the shape, in no guaranteed order.
	LocalIntersect(ray core.Ray) Intersections
	// LocalNormalAt returns the surface normal at a local-space point.
	LocalNormalAt(point core.Point) core.Vector

	Material() *material.Material
	SetMaterial(m material.Material)
	Transform() *core.Matrix
	SetTransform(m core.Matrix) error
	Parent() Shape
	SetParent(parent Shape)
	NormalToWorld(n core.Vector) core.Vector

	inverseTransform() *core.Matrix
}

// common carries the state every shape owns: a material, an optional
// transform with its cached inverse and inverse transpose, and a
// non-owning parent back-reference for group chaining.
type common struct {
	material  material.Material
	transform *core.Matrix
	inv       *core.Matrix
	invT      *core.Matrix
	parent    Shape
}

func newCommon() common {
	return common{material: material.NewMaterial()}
}

// Material returns the shape's material
func (c *common) Material() *material.Material {
	return &c.material
}

// SetMaterial replaces the shape's material
func (c *common) SetMaterial(m material.Material) {
	c.material = m
}

// Transform returns the shape's transform, or nil for identity
func (c *common) Transform() *core.Matrix {
	return c.transform
}

// SetTransform assigns the shape's transform, caching the inverse and
// inverse transpose. A singular matrix is rejected: it is malformed
// scene data, caught here so the render loop never sees it.
func (c *common) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	invT := inv.Transpose()
	c.transform = &m
	c.inv = &inv
	c.invT = &invT
	return nil
}

// Parent returns the enclosing group, or nil
func (c *common) Parent() Shape {
	return c.parent
}

// SetParent records the enclosing group
func (c *common) SetParent(parent Shape) {
	c.parent = parent
}

// WorldToObject carries a world-space point into the shape's local
// space, applying ancestor transforms outermost first.
func (c *common) WorldToObject(p core.Point) core.Point {
	if c.parent != nil {
		p = c.parent.WorldToObject(p)
	}
	if c.inv != nil {
		p = c.inv.MultiplyPoint(p)
	}
	return p
}

// NormalToWorld carries a local-space normal out through the shape's
// transform chain, renormalizing at each level.
func (c *common) NormalToWorld(n core.Vector) core.Vector {
	if c.invT != nil {
		n = c.invT.MultiplyVector(n)
	}
	n = n.Normalize()
	if c.parent != nil {
		n = c.parent.NormalToWorld(n)
	}
	return n
}

func (c *common) inverseTransform() *core.Matrix {
	return c.inv
}

// Intersect transforms the ray into the shape's local space and
// delegates to LocalIntersect.
func Intersect(s Shape, ray core.Ray) Intersections {
	if inv := s.inverseTransform(); inv != nil {
		ray = ray.Transform(*inv)
	}
	return s.LocalIntersect(ray)
}

// NormalAt computes the world-space surface normal at a world-space
// point, walking the parent chain in both directions.
func NormalAt(s Shape, worldPoint core.Point) core.Vector {
	localPoint := s.WorldToObject(worldPoint)
	localNormal := s.LocalNormalAt(localPoint)
	return s.NormalToWorld(localNormal)
}
