package canvas

import (
	"strings"
	"testing"

	"github.com/thommay/ray-trace-challenge/pkg/core"
)

func TestNewCanvasIsBlack(t *testing.T) {
	c := NewCanvas(10, 20)
	if c.Width() != 10 || c.Height() != 20 {
		t.Errorf("Expected 10x20 canvas, got %dx%d", c.Width(), c.Height())
	}
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if !c.PixelAt(x, y).Equals(core.Black) {
				t.Fatalf("Expected black at (%d, %d), got %v", x, y, c.PixelAt(x, y))
			}
		}
	}
}

func TestWritePixel(t *testing.T) {
	c := NewCanvas(10, 20)
	red := core.NewColor(1, 0, 0)
	c.WritePixel(2, 3, red)
	if !c.PixelAt(2, 3).Equals(red) {
		t.Errorf("Expected red at (2, 3), got %v", c.PixelAt(2, 3))
	}
}

func TestWritePixelOutOfBounds(t *testing.T) {
	c := NewCanvas(4, 4)
	// must not panic
	c.WritePixel(-1, 0, core.White)
	c.WritePixel(0, -1, core.White)
	c.WritePixel(4, 0, core.White)
	c.WritePixel(0, 4, core.White)
}

func TestPPMHeader(t *testing.T) {
	c := NewCanvas(5, 3)
	lines := strings.Split(c.PPM(), "\n")
	if lines[0] != "P3" || lines[1] != "5 3" || lines[2] != "255" {
		t.Errorf("Unexpected header: %v", lines[:3])
	}
}

func TestPPMPixelData(t *testing.T) {
	c := NewCanvas(5, 3)
	c.WritePixel(0, 0, core.NewColor(1.5, 0, 0))
	c.WritePixel(2, 1, core.NewColor(0, 0.5, 0))
	c.WritePixel(4, 2, core.NewColor(-0.5, 0, 1))

	lines := strings.Split(c.PPM(), "\n")
	want := []string{
		"255 0 0 0 0 0 0 0 0 0 0 0 0 0 0",
		"0 0 0 0 0 0 0 128 0 0 0 0 0 0 0",
		"0 0 0 0 0 0 0 0 0 0 0 0 0 0 255",
	}
	for i, w := range want {
		if lines[3+i] != w {
			t.Errorf("Line %d: expected %q, got %q", 3+i, w, lines[3+i])
		}
	}
}

func TestPPMLineWrapping(t *testing.T) {
	c := NewCanvas(10, 2)
	c.Fill(core.NewColor(1, 0.8, 0.6))

	lines := strings.Split(c.PPM(), "\n")
	want := []string{
		"255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204",
		"153 255 204 153 255 204 153 255 204 153 255 204 153",
		"255 204 153 255 204 153 255 204 153 255 204 153 255 204 153 255 204",
		"153 255 204 153 255 204 153 255 204 153 255 204 153",
	}
	for i, w := range want {
		if lines[3+i] != w {
			t.Errorf("Line %d: expected %q, got %q", 3+i, w, lines[3+i])
		}
	}
	for _, line := range lines {
		if len(line) > 70 {
			t.Errorf("Line exceeds 70 characters: %q", line)
		}
	}
}

func TestPPMEndsWithNewline(t *testing.T) {
	c := NewCanvas(5, 3)
	if ppm := c.PPM(); !strings.HasSuffix(ppm, "\n") {
		t.Errorf("Expected trailing newline")
	}
}

func TestToImage(t *testing.T) {
	c := NewCanvas(2, 2)
	c.WritePixel(1, 0, core.NewColor(1, 0, 0))
	img := c.ToImage()
	r, g, b, a := img.At(1, 0).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 || a>>8 != 255 {
		t.Errorf("Expected opaque red, got (%d, %d, %d, %d)", r>>8, g>>8, b>>8, a>>8)
	}
}
