// Package lights provides the light sources a world can shade against.
// The core evaluator supports a single point light per world.
package lights

import "github.com/thommay/ray-trace-challenge/pkg/core"

// PointLight is a light source with no size, existing at a single position
type PointLight struct {
	Position  core.Point
	Intensity core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Point, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
