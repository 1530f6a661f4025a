package core

import "errors"

// ErrNotInvertible is returned when a matrix with a zero determinant is inverted.
var ErrNotInvertible = errors.New("matrix is not invertible")

// Matrix is a dense row-major matrix of float64 values
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix creates a zeroed rows x cols matrix
func NewMatrix(rows, cols int) Matrix {
	return Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// NewMatrixFrom creates a rows x cols matrix from row-major values.
// It panics if the value count does not match the dimensions.
func NewMatrixFrom(rows, cols int, values ...float64) Matrix {
	if len(values) != rows*cols {
		panic("matrix: value count does not match dimensions")
	}
	data := make([]float64, len(values))
	copy(data, values)
	return Matrix{rows: rows, cols: cols, data: data}
}

// Identity creates an n x n identity matrix
func Identity(n int) Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.data[i+i*n] = 1
	}
	return m
}

// Rows returns the number of rows
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns
func (m Matrix) Cols() int { return m.cols }

// At returns the element at (row, col)
func (m Matrix) At(row, col int) float64 {
	return m.data[col+row*m.cols]
}

// Set assigns the element at (row, col)
func (m *Matrix) Set(row, col int, value float64) {
	m.data[col+row*m.cols] = value
}

// Equals reports whether two matrices have the same shape and elements within Epsilon
func (m Matrix) Equals(other Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if !floatEquals(m.data[i], other.data[i]) {
			return false
		}
	}
	return true
}

// Multiply returns the matrix product m * other.
// It panics when the inner dimensions do not agree.
func (m Matrix) Multiply(other Matrix) Matrix {
	if m.cols != other.rows {
		panic("matrix: dimension mismatch in multiply")
	}
	out := NewMatrix(m.rows, other.cols)
	for row := 0; row < m.rows; row++ {
		for col := 0; col < other.cols; col++ {
			var acc float64
			for k := 0; k < m.cols; k++ {
				acc += m.At(row, k) * other.At(k, col)
			}
			out.Set(row, col, acc)
		}
	}
	return out
}

// MultiplyPoint applies a 4x4 transform to a point (homogeneous w = 1)
func (m Matrix) MultiplyPoint(p Point) Point {
	return Point{
		X: m.At(0, 0)*p.X + m.At(0, 1)*p.Y + m.At(0, 2)*p.Z + m.At(0, 3),
		Y: m.At(1, 0)*p.X + m.At(1, 1)*p.Y + m.At(1, 2)*p.Z + m.At(1, 3),
		Z: m.At(2, 0)*p.X + m.At(2, 1)*p.Y + m.At(2, 2)*p.Z + m.At(2, 3),
	}
}

// MultiplyVector applies a 4x4 transform to a vector (homogeneous w = 0,
// so translation does not apply)
func (m Matrix) MultiplyVector(v Vector) Vector {
	return Vector{
		X: m.At(0, 0)*v.X + m.At(0, 1)*v.Y + m.At(0, 2)*v.Z,
		Y: m.At(1, 0)*v.X + m.At(1, 1)*v.Y + m.At(1, 2)*v.Z,
		Z: m.At(2, 0)*v.X + m.At(2, 1)*v.Y + m.At(2, 2)*v.Z,
	}
}

// Transpose returns the matrix flipped about its diagonal
func (m Matrix) Transpose() Matrix {
	out := NewMatrix(m.cols, m.rows)
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			out.Set(col, row, m.At(row, col))
		}
	}
	return out
}

// Submatrix returns the matrix with the given row and column removed
func (m Matrix) Submatrix(row, col int) Matrix {
	out := NewMatrix(m.rows-1, m.cols-1)
	i := 0
	for r := 0; r < m.rows; r++ {
		if r == row {
			continue
		}
		for c := 0; c < m.cols; c++ {
			if c == col {
				continue
			}
			out.data[i] = m.At(r, c)
			i++
		}
	}
	return out
}

// Minor returns the determinant of the submatrix at (row, col)
func (m Matrix) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor at (row, col), negated when row+col is odd
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// Determinant computes the determinant by cofactor expansion along row 0.
// 2x2 matrices use the direct formula.
func (m Matrix) Determinant() float64 {
	if m.rows == 2 && m.cols == 2 {
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}
	var det float64
	for col := 0; col < m.cols; col++ {
		det += m.At(0, col) * m.Cofactor(0, col)
	}
	return det
}

// Invertible reports whether the determinant is non-zero.
// The check is exact: only a determinant of exactly zero is singular.
func (m Matrix) Invertible() bool {
	return m.Determinant() != 0
}

// Inverse returns the inverse matrix, or ErrNotInvertible when the
// determinant is zero.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, ErrNotInvertible
	}
	out := NewMatrix(m.rows, m.cols)
	for row := 0; row < m.rows; row++ {
		for col := 0; col < m.cols; col++ {
			// writing cofactor(row, col) into (col, row) transposes
			out.Set(col, row, m.Cofactor(row, col)/det)
		}
	}
	return out, nil
}

// Round returns the matrix with each element rounded to the given factor
func (m Matrix) Round(factor float64) Matrix {
	out := NewMatrix(m.rows, m.cols)
	for i := range m.data {
		out.data[i] = roundf(m.data[i], factor)
	}
	return out
}
