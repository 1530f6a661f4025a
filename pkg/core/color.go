package core

// Color represents an RGB colour with unbounded channel intensities.
// Channels are only clamped to [0,1] when a canvas is serialized.
type Color struct {
	R, G, B float64
}

// Black and White are the shared colour constants used across shading.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the component-wise sum of two colours
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the component-wise difference of two colours
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the colour scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns the Hadamard product of two colours
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equals reports whether two colours are equal within Epsilon
func (c Color) Equals(other Color) bool {
	return floatEquals(c.R, other.R) && floatEquals(c.G, other.G) && floatEquals(c.B, other.B)
}

// Round returns the colour with each channel rounded to the given factor
func (c Color) Round(factor float64) Color {
	return Color{roundf(c.R, factor), roundf(c.G, factor), roundf(c.B, factor)}
}
