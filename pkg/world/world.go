// Package world holds the scene contents and the recursive Whitted
// shading evaluator that turns rays into colours.
package world

import (
	"math"

	"github.com/thommay/ray-trace-challenge/pkg/core"
	"github.com/thommay/ray-trace-challenge/pkg/lights"
	"github.com/thommay/ray-trace-challenge/pkg/material"
	"github.com/thommay/ray-trace-challenge/pkg/shapes"
)

// DefaultRecursionDepth bounds how many reflection and refraction
// bounces a single camera ray may spawn
const DefaultRecursionDepth = 5

// World is a collection of shapes lit by a single point light
type World struct {
	Light   lights.PointLight
	Objects []shapes.Shape
}

// NewWorld creates an empty, unlit world
func NewWorld() *World {
	return &World{}
}

// DefaultWorld creates the two-sphere reference scene used throughout
// the tests: an outer coloured sphere with a half-size sphere inside
// it, lit from the upper left.
func DefaultWorld() *World {
	s1 := shapes.NewSphere()
	m := material.NewMaterial()
	m.Color = core.NewColor(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2
	s1.SetMaterial(m)

	s2 := shapes.NewSphere()
	if err := s2.SetTransform(core.Scaling(0.5, 0.5, 0.5)); err != nil {
		panic(err)
	}

	return &World{
		Light:   lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White),
		Objects: []shapes.Shape{s1, s2},
	}
}

// AddObject appends a shape to the world
func (w *World) AddObject(s shapes.Shape) {
	w.Objects = append(w.Objects, s)
}

// Intersect collects every intersection of the ray with the world's
// shapes, sorted ascending by t
func (w *World) Intersect(ray core.Ray) shapes.Intersections {
	var xs shapes.Intersections
	for _, obj := range w.Objects {
		xs = append(xs, shapes.Intersect(obj, ray)...)
	}
	xs.Sort()
	return xs
}

// ColorAt traces a ray into the world and returns the colour it sees.
// A ray that hits nothing sees black. remaining bounds further bounces.
func (w *World) ColorAt(ray core.Ray, remaining int) core.Color {
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return core.Black
	}
	comps := shapes.PrepareComputations(hit, ray, xs)
	return w.ShadeHit(comps, remaining)
}

// ShadeHit computes the colour at a precomputed hit, summing the
// surface's Phong contribution with any reflected and refracted
// colour. When the surface is both reflective and transparent the two
// secondary contributions are blended by the Schlick reflectance.
func (w *World) ShadeHit(comps shapes.Computations, remaining int) core.Color {
	shadowed := w.IsShadowed(comps.OverPoint)
	m := comps.Object.Material()
	surface := m.Lighting(comps.Object, w.Light, comps.OverPoint, comps.EyeV, comps.NormalV, shadowed)

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := comps.Schlick()
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor traces the reflection bounce off a hit. A
// non-reflective surface, or an exhausted bounce budget, contributes
// black.
func (w *World) ReflectedColor(comps shapes.Computations, remaining int) core.Color {
	if remaining <= 0 {
		return core.Black
	}
	reflective := comps.Object.Material().Reflective
	if reflective == 0 {
		return core.Black
	}
	reflectRay := core.NewRay(comps.OverPoint, comps.ReflectV)
	return w.ColorAt(reflectRay, remaining-1).Multiply(reflective)
}

// RefractedColor traces the ray transmitted through a transparent hit,
// bending it by Snell's law. An opaque surface, an exhausted bounce
// budget, or total internal reflection contributes black.
func (w *World) RefractedColor(comps shapes.Computations, remaining int) core.Color {
	if remaining <= 0 {
		return core.Black
	}
	transparency := comps.Object.Material().Transparency
	if transparency == 0 {
		return core.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		// total internal reflection
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).
		Subtract(comps.EyeV.Multiply(nRatio))
	refractRay := core.NewRay(comps.UnderPoint, direction)
	return w.ColorAt(refractRay, remaining-1).Multiply(transparency)
}

// IsShadowed reports whether anything blocks the segment from the
// point to the light
func (w *World) IsShadowed(point core.Point) bool {
	toLight := w.Light.Position.Subtract(point)
	distance := toLight.Magnitude()
	shadowRay := core.NewRay(point, toLight.Normalize())

	hit, ok := w.Intersect(shadowRay).Hit()
	return ok && hit.T < distance
}
