// Package material implements Phong reflectance materials and the
// procedural colour patterns they can carry.
package material

import (
	"math"

	"github.com/thommay/ray-trace-challenge/pkg/core"
	"github.com/thommay/ray-trace-challenge/pkg/lights"
)

// Object is the subset of shape behavior the material needs for
// pattern-space lookups: mapping a world point into the object's own
// coordinate frame, through any enclosing group transforms.
type Object interface {
	WorldToObject(p core.Point) core.Point
}

// Material holds the Phong reflectance coefficients for a surface
type Material struct {
	Color           core.Color
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
	Pattern         *Pattern
}

// NewMaterial creates a material with the default Phong coefficients
func NewMaterial() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1,
	}
}

// Lighting computes the colour of a surface point under a point light
// as the sum of the ambient, diffuse and specular contributions.
// A shadowed point receives only the ambient term.
func (m Material) Lighting(object Object, light lights.PointLight, point core.Point, eyev, normalv core.Vector, inShadow bool) core.Color {
	surface := m.Color
	if m.Pattern != nil {
		surface = m.Pattern.AtObject(object, point)
	}
	effective := surface.MultiplyColor(light.Intensity)
	ambient := effective.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	lightv := light.Position.Subtract(point).Normalize()
	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal < 0 {
		// light is on the other side of the surface
		return ambient
	}

	diffuse := effective.Multiply(m.Diffuse * lightDotNormal)
	reflectv := lightv.Negate().Reflect(normalv)
	reflectDotEye := reflectv.Dot(eyev)
	if reflectDotEye <= 0 {
		return ambient.Add(diffuse)
	}

	factor := math.Pow(reflectDotEye, m.Shininess)
	specular := light.Intensity.Multiply(m.Specular * factor)
	return ambient.Add(diffuse).Add(specular)
}
