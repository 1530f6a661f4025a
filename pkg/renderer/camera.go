// Package renderer maps camera pixels to world rays and drives the
// render loop, sequentially or across a worker pool.
package renderer

import (
	"math"

	"github.com/thommay/ray-trace-challenge/pkg/core"
)

// Camera generates rays for rendering: one ray through the centre of
// each pixel on a canvas one world unit in front of the eye.
type Camera struct {
	hsize       int
	vsize       int
	fieldOfView float64

	transform *core.Matrix
	inverse   *core.Matrix

	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera for an hsize by vsize canvas with the
// given field of view in radians
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		hsize:       hsize,
		vsize:       vsize,
		fieldOfView: fieldOfView,
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = (c.halfWidth * 2) / float64(hsize)
	return c
}

// HSize returns the canvas width in pixels
func (c *Camera) HSize() int {
	return c.hsize
}

// VSize returns the canvas height in pixels
func (c *Camera) VSize() int {
	return c.vsize
}

// PixelSize returns the world-space size of one square pixel
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// Transform returns the camera's view transform, or nil for identity
func (c *Camera) Transform() *core.Matrix {
	return c.transform
}

// SetTransform assigns the camera's view transform, caching its
// inverse. A singular matrix is rejected.
func (c *Camera) SetTransform(m core.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	c.transform = &m
	c.inverse = &inv
	return nil
}

// RayForPixel returns the world-space ray through the centre of the
// pixel at (x, y)
func (c *Camera) RayForPixel(x, y int) core.Ray {
	// offsets from the canvas edge to the pixel centre
	xOffset := (float64(x) + 0.5) * c.pixelSize
	yOffset := (float64(y) + 0.5) * c.pixelSize

	// untransformed canvas coordinates; +x on the canvas is -x in the
	// world because the camera looks toward -z
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := core.NewPoint(worldX, worldY, -1)
	origin := core.NewPoint(0, 0, 0)
	if c.inverse != nil {
		pixel = c.inverse.MultiplyPoint(pixel)
		origin = c.inverse.MultiplyPoint(origin)
	}
	direction := pixel.Subtract(origin).Normalize()
	return core.NewRay(origin, direction)
}
