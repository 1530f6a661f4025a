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

// NewHexagonScene builds a hexagonal ring assembled from grouped
// spheres and cylinders, floating over a striped floor
func NewHexagonScene(width, height int) (*world.World, *renderer.Camera, error) {
	w := world.NewWorld()
	w.Light = lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White)

	floor := shapes.NewPlane()
	stripe := material.NewStripePattern(
		core.NewColor(0.9, 0.9, 0.9),
		core.NewColor(0.6, 0.6, 0.7),
	)
	floor.Material().Pattern = stripe
	floor.Material().Specular = 0
	if err := floor.SetTransform(core.Translation(0, -1, 0)); err != nil {
		return nil, nil, err
	}
	w.AddObject(floor)

	hex, err := hexagon()
	if err != nil {
		return nil, nil, err
	}
	if err := hex.SetTransform(core.RotationX(-math.Pi / 6)); err != nil {
		return nil, nil, err
	}
	w.AddObject(hex)

	camera := renderer.NewCamera(width, height, math.Pi/3)
	view := core.ViewTransform(
		core.NewPoint(0, 2, -4),
		core.NewPoint(0, 0, 0),
		core.NewVector(0, 1, 0),
	)
	if err := camera.SetTransform(view); err != nil {
		return nil, nil, err
	}
	return w, camera, nil
}

// hexagon assembles six corner-and-edge sides into one group
func hexagon() (*shapes.Group, error) {
	hex := shapes.NewGroup()
	for n := 0; n < 6; n++ {
		side, err := hexagonSide()
		if err != nil {
			return nil, err
		}
		if err := side.SetTransform(core.RotationY(float64(n) * math.Pi / 3)); err != nil {
			return nil, err
		}
		hex.AddChild(side)
	}
	return hex, nil
}

func hexagonSide() (*shapes.Group, error) {
	side := shapes.NewGroup()

	corner := shapes.NewSphere()
	err := corner.SetTransform(core.Translation(0, 0, -1).
		Multiply(core.Scaling(0.25, 0.25, 0.25)))
	if err != nil {
		return nil, err
	}
	side.AddChild(corner)

	edge := shapes.NewCylinder()
	edge.Minimum = 0
	edge.Maximum = 1
	err = edge.SetTransform(core.Translation(0, 0, -1).
		Multiply(core.RotationY(-math.Pi / 6)).
		Multiply(core.RotationZ(-math.Pi / 2)).
		Multiply(core.Scaling(0.25, 1, 0.25)))
	if err != nil {
		return nil, err
	}
	side.AddChild(edge)

	return side, nil
}
