package core

import "math"

// Epsilon is the tolerance used for floating point comparisons throughout
// the tracer: approximate equality, degenerate-geometry checks, and the
// over/under point offsets that avoid surface acne.
const Epsilon = 1e-4

// Point represents a location in 3D space
type Point struct {
	X, Y, Z float64
}

// Vector represents a direction and magnitude in 3D space
type Vector struct {
	X, Y, Z float64
}

// NewPoint creates a new Point
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// NewVector creates a new Vector
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Add returns the point displaced by a vector
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Subtract returns the vector from the other point to this one
func (p Point) Subtract(other Point) Vector {
	return Vector{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// SubtractVector returns the point displaced by the negated vector
func (p Point) SubtractVector(v Vector) Point {
	return Point{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// Negate returns the point mirrored through the origin
func (p Point) Negate() Point {
	return Point{-p.X, -p.Y, -p.Z}
}

// Equals reports whether two points are equal within Epsilon
func (p Point) Equals(other Point) bool {
	return floatEquals(p.X, other.X) && floatEquals(p.Y, other.Y) && floatEquals(p.Z, other.Z)
}

// Round returns the point with each component rounded to the given factor,
// e.g. factor 100000 keeps five decimal places. Used by tests.
func (p Point) Round(factor float64) Point {
	return Point{roundf(p.X, factor), roundf(p.Y, factor), roundf(p.Z, factor)}
}

// Add returns the sum of two vectors
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// AddPoint returns the point displaced by this vector
func (v Vector) AddPoint(p Point) Point {
	return p.Add(v)
}

// Subtract returns the difference of two vectors
func (v Vector) Subtract(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Negate returns the vector pointing the opposite way
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vector) Multiply(scalar float64) Vector {
	return Vector{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector scaled by the reciprocal of a scalar
func (v Vector) Divide(scalar float64) Vector {
	return Vector{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// Magnitude returns the length of the vector
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector in the same direction
func (v Vector) Normalize() Vector {
	mag := v.Magnitude()
	if mag == 0 {
		return Vector{0, 0, 0}
	}
	return Vector{v.X / mag, v.Y / mag, v.Z / mag}
}

// Dot returns the dot product of two vectors
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Reflect returns the vector reflected about the given normal
func (v Vector) Reflect(normal Vector) Vector {
	return v.Subtract(normal.Multiply(2 * v.Dot(normal)))
}

// Equals reports whether two vectors are equal within Epsilon
func (v Vector) Equals(other Vector) bool {
	return floatEquals(v.X, other.X) && floatEquals(v.Y, other.Y) && floatEquals(v.Z, other.Z)
}

// Round returns the vector with each component rounded to the given factor
func (v Vector) Round(factor float64) Vector {
	return Vector{roundf(v.X, factor), roundf(v.Y, factor), roundf(v.Z, factor)}
}

func floatEquals(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func roundf(val, factor float64) float64 {
	return math.Round(val*factor) / factor
}
