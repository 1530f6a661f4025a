package core

import "math"

// Translation creates a 4x4 transform that moves points by (x, y, z).
// Vectors are unaffected by translation.
func Translation(x, y, z float64) Matrix {
	m := Identity(4)
	m.Set(0, 3, x)
	m.Set(1, 3, y)
	m.Set(2, 3, z)
	return m
}

// Scaling creates a 4x4 transform that scales each axis independently
func Scaling(x, y, z float64) Matrix {
	m := Identity(4)
	m.Set(0, 0, x)
	m.Set(1, 1, y)
	m.Set(2, 2, z)
	return m
}

// RotationX creates a 4x4 rotation of r radians about the x axis
func RotationX(r float64) Matrix {
	m := Identity(4)
	cos, sin := math.Cos(r), math.Sin(r)
	m.Set(1, 1, cos)
	m.Set(1, 2, -sin)
	m.Set(2, 1, sin)
	m.Set(2, 2, cos)
	return m
}

// RotationY creates a 4x4 rotation of r radians about the y axis
func RotationY(r float64) Matrix {
	m := Identity(4)
	cos, sin := math.Cos(r), math.Sin(r)
	m.Set(0, 0, cos)
	m.Set(0, 2, sin)
	m.Set(2, 0, -sin)
	m.Set(2, 2, cos)
	return m
}

// RotationZ creates a 4x4 rotation of r radians about the z axis
func RotationZ(r float64) Matrix {
	m := Identity(4)
	cos, sin := math.Cos(r), math.Sin(r)
	m.Set(0, 0, cos)
	m.Set(0, 1, -sin)
	m.Set(1, 0, sin)
	m.Set(1, 1, cos)
	return m
}

// Shearing creates a 4x4 transform where each coordinate changes in
// proportion to the other two: xy is the change of x in proportion to y,
// and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	m := Identity(4)
	m.Set(0, 1, xy)
	m.Set(0, 2, xz)
	m.Set(1, 0, yx)
	m.Set(1, 2, yz)
	m.Set(2, 0, zx)
	m.Set(2, 1, zy)
	return m
}

// ViewTransform builds the transform that orients the world relative to a
// camera at from, looking at to, with the given approximate up vector.
func ViewTransform(from, to Point, up Vector) Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)
	orientation := NewMatrixFrom(4, 4,
		left.X, left.Y, left.Z, 0,
		trueUp.X, trueUp.Y, trueUp.Z, 0,
		-forward.X, -forward.Y, -forward.Z, 0,
		0, 0, 0, 1,
	)
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}
