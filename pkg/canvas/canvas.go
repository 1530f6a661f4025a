// Package canvas implements the render target: a rectangular grid of
// colours that can be exported as PPM text or a PNG image.
package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/thommay/ray-trace-challenge/pkg/core"
)

// maxPPMLineLength keeps PPM rows within the width older viewers expect
const maxPPMLineLength = 70

// Canvas is a fixed-size grid of colours, stored row-major
type Canvas struct {
	width  int
	height int
	pixels []core.Color
}

// NewCanvas creates a canvas of the given size with every pixel black
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels
func (c *Canvas) Height() int {
	return c.height
}

// WritePixel sets the colour at (x, y). Out-of-bounds writes are
// ignored so callers may plot unclipped.
func (c *Canvas) WritePixel(x, y int, col core.Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pixels[y*c.width+x] = col
}

// PixelAt returns the colour at (x, y)
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[y*c.width+x]
}

// Fill sets every pixel to the given colour
func (c *Canvas) Fill(col core.Color) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// PPM renders the canvas as plain-text PPM (the P3 format). Channels
// are clamped to [0, 1] and scaled to [0, 255]; rows wrap before the
// 70-column limit.
func (c *Canvas) PPM() string {
	var b strings.Builder
	fmt.Fprintf(&b, "P3\n%d %d\n255\n", c.width, c.height)

	for y := 0; y < c.height; y++ {
		lineLen := 0
		for x := 0; x < c.width; x++ {
			col := c.PixelAt(x, y)
			for _, ch := range []float64{col.R, col.G, col.B} {
				s := strconv.Itoa(scaleChannel(ch))
				if lineLen == 0 {
					b.WriteString(s)
					lineLen = len(s)
				} else if lineLen+1+len(s) > maxPPMLineLength-1 {
					b.WriteByte('\n')
					b.WriteString(s)
					lineLen = len(s)
				} else {
					b.WriteByte(' ')
					b.WriteString(s)
					lineLen += 1 + len(s)
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ToImage converts the canvas to an RGBA image for the PNG encoder
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			col := c.PixelAt(x, y)
			img.Set(x, y, color.RGBA{
				R: uint8(scaleChannel(col.R)),
				G: uint8(scaleChannel(col.G)),
				B: uint8(scaleChannel(col.B)),
				A: 255,
			})
		}
	}
	return img
}

// WritePNG encodes the canvas as PNG
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.ToImage()); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// scaleChannel clamps a channel to [0, 1] and scales it to [0, 255]
func scaleChannel(v float64) int {
	return int(math.Round(math.Min(1, math.Max(0, v)) * 255))
}
