package scene

import (
	"math"

	"github.com/thommay/ray-trace-challenge/pkg/core"
	"github.com/thommay/ray-trace-challenge/pkg/lights"
	"github.com/thommay/ray-trace-challenge/pkg/material"
	"github.com/thommay/ray-trace-challenge/pkg/renderer"
	"github.com/thommay/ray-trace-challenge/pkg/shapes"
	"github.com/thommay/ray-trace-challenge/pkg/world"
)

// NewGlassScene builds a hollow glass sphere hovering over a checkered
// floor, with a small yellow sphere off to the side
func NewGlassScene(width, height int) (*world.World, *renderer.Camera, error) {
	w := world.NewWorld()
	w.Light = lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White)

	floor := shapes.NewPlane()
	checker := material.NewCheckerPattern(
		core.NewColor(0.85, 0.85, 0.85),
		core.NewColor(0.15, 0.15, 0.15),
	)
	floor.Material().Pattern = checker
	floor.Material().Reflective = 0.1
	floor.Material().Specular = 0
	w.AddObject(floor)

	outer := shapes.NewGlassSphere()
	outer.Material().Color = core.NewColor(0.05, 0.05, 0.1)
	outer.Material().Diffuse = 0.1
	outer.Material().Ambient = 0.05
	outer.Material().Specular = 1
	outer.Material().Shininess = 300
	outer.Material().Reflective = 0.9
	if err := outer.SetTransform(core.Translation(0, 1.5, 0)); err != nil {
		return nil, nil, err
	}
	w.AddObject(outer)

	// pocket of air inside the glass shell
	inner := shapes.NewGlassSphere()
	inner.Material().RefractiveIndex = 1.0
	inner.Material().Diffuse = 0.1
	inner.Material().Ambient = 0
	inner.Material().Reflective = 0.9
	err := inner.SetTransform(core.Translation(0, 1.5, 0).
		Multiply(core.Scaling(0.5, 0.5, 0.5)))
	if err != nil {
		return nil, nil, err
	}
	w.AddObject(inner)

	pedestal := shapes.NewCube()
	pedestal.Material().Color = core.NewColor(0.3, 0.3, 0.35)
	pedestal.Material().Specular = 0.3
	err = pedestal.SetTransform(core.Translation(2.2, 0.5, 1).
		Multiply(core.Scaling(0.5, 0.5, 0.5)))
	if err != nil {
		return nil, nil, err
	}
	w.AddObject(pedestal)

	small := shapes.NewSphere()
	small.Material().Color = core.NewColor(1, 0.8, 0.1)
	small.Material().Diffuse = 0.7
	small.Material().Specular = 0.3
	err = small.SetTransform(core.Translation(-2.2, 0.5, 1).
		Multiply(core.Scaling(0.5, 0.5, 0.5)))
	if err != nil {
		return nil, nil, err
	}
	w.AddObject(small)

	camera := renderer.NewCamera(width, height, math.Pi/3)
	view := core.ViewTransform(
		core.NewPoint(0, 2, -6),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	)
	if err := camera.SetTransform(view); err != nil {
		return nil, nil, err
	}
	return w, camera, nil
}
