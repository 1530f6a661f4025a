package scene

import (
	"math"

	"github.com/thommay/ray-trace-challenge/pkg/core"
	"github.com/thommay/ray-trace-challenge/pkg/lights"
	"github.com/thommay/ray-trace-challenge/pkg/renderer"
	"github.com/thommay/ray-trace-challenge/pkg/shapes"
	"github.com/thommay/ray-trace-challenge/pkg/world"
)

// NewFigureScene builds a mirrored cone-and-cylinder figure standing on
// a reflective floor in front of a matte back wall
func NewFigureScene(width, height int) (*world.World, *renderer.Camera, error) {
	w := world.NewWorld()
	w.Light = lights.NewPointLight(core.NewPoint(-10, 2, -10), core.White)

	floor := shapes.NewPlane()
	floor.Material().Reflective = 0.7
	floor.Material().Specular = 0.3
	w.AddObject(floor)

	backWall := shapes.NewPlane()
	err := backWall.SetTransform(core.Translation(0, 0, 5).
		Multiply(core.RotationX(math.Pi / 2)).
		Multiply(core.Scaling(1, 10, 1)))
	if err != nil {
		return nil, nil, err
	}
	backWall.Material().Ambient = 0.5
	w.AddObject(backWall)

	cone := shapes.NewCone()
	cone.Minimum = -1
	cone.Maximum = 0
	cone.Material().Reflective = 1
	cone.Material().Specular = 1
	err = cone.SetTransform(core.Translation(0, 2, 0).
		Multiply(core.Scaling(0.25, 0.25, 0.25)))
	if err != nil {
		return nil, nil, err
	}
	w.AddObject(cone)

	top := shapes.NewCylinder()
	top.Minimum = 0
	top.Maximum = 1
	top.Material().Reflective = 1
	top.Material().Specular = 1
	err = top.SetTransform(core.Translation(0, 1.5, 0).
		Multiply(core.Scaling(0.25, 0.25, 0.25)))
	if err != nil {
		return nil, nil, err
	}
	w.AddObject(top)

	camera := renderer.NewCamera(width, height, math.Pi/3)
	view := core.ViewTransform(
		core.NewPoint(0, 1.5, -5),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	)
	if err := camera.SetTransform(view); err != nil {
		return nil, nil, err
	}
	return w, camera, nil
}
