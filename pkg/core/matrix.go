package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotInvertible is returned by Inverse when the determinant is fuzzy-zero.
var ErrNotInvertible = errors.New("matrix is not invertible")

// Matrix is a dense row-major matrix of float64 cells.
// Geometry only ever uses 4x4, but determinant expansion works on any size.
type Matrix struct {
	rows, cols int
	cells      []float64
}

// NewMatrix creates a zero matrix with the given dimensions
func NewMatrix(rows, cols int) Matrix {
	return Matrix{rows: rows, cols: cols, cells: make([]float64, rows*cols)}
}

// NewMatrixFrom creates a matrix from row slices.
// Panics if the rows are ragged.
func NewMatrixFrom(rows ...[]float64) Matrix {
	if len(rows) == 0 {
		return Matrix{}
	}
	m := NewMatrix(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != m.cols {
			panic(fmt.Sprintf("matrix row %d has %d cells, want %d", r, len(row), m.cols))
		}
		copy(m.cells[r*m.cols:], row)
	}
	return m
}

// Identity creates an n x n identity matrix
func Identity(n int) Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.cells[i*n+i] = 1
	}
	return m
}

// Rows returns the number of rows
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns
func (m Matrix) Cols() int { return m.cols }

// At returns the cell at (row, col)
func (m Matrix) At(row, col int) float64 {
	return m.cells[row*m.cols+col]
}

// Set assigns the cell at (row, col)
func (m Matrix) Set(row, col int, value float64) {
	m.cells[row*m.cols+col] = value
}

// Equals reports whether two matrices have the same shape and
// fuzzy-equal cells
func (m Matrix) Equals(other Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.cells {
		if !FuzzyEqual(m.cells[i], other.cells[i]) {
			return false
		}
	}
	return true
}

// Multiply returns the matrix product m * other.
// Panics if the inner dimensions do not match.
func (m Matrix) Multiply(other Matrix) Matrix {
	if m.cols != other.rows {
		panic(fmt.Sprintf("cannot multiply %dx%d by %dx%d matrix", m.rows, m.cols, other.rows, other.cols))
	}
	result := NewMatrix(m.rows, other.cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < other.cols; c++ {
			sum := 0.0
			for k := 0; k < m.cols; k++ {
				sum += m.cells[r*m.cols+k] * other.cells[k*other.cols+c]
			}
			result.cells[r*other.cols+c] = sum
		}
	}
	return result
}

// MultiplyTuple treats the tuple as a column vector and returns m * t.
// Panics unless m is 4x4.
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	if m.rows != 4 || m.cols != 4 {
		panic(fmt.Sprintf("cannot multiply %dx%d matrix by a tuple", m.rows, m.cols))
	}
	return Tuple{
		X: m.cells[0]*t.X + m.cells[1]*t.Y + m.cells[2]*t.Z + m.cells[3]*t.W,
		Y: m.cells[4]*t.X + m.cells[5]*t.Y + m.cells[6]*t.Z + m.cells[7]*t.W,
		Z: m.cells[8]*t.X + m.cells[9]*t.Y + m.cells[10]*t.Z + m.cells[11]*t.W,
		W: m.cells[12]*t.X + m.cells[13]*t.Y + m.cells[14]*t.Z + m.cells[15]*t.W,
	}
}

// Transpose returns the matrix with rows and columns swapped
func (m Matrix) Transpose() Matrix {
	result := NewMatrix(m.cols, m.rows)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			result.cells[c*m.rows+r] = m.cells[r*m.cols+c]
		}
	}
	return result
}

// Submatrix returns a copy of m with the given row and column removed
func (m Matrix) Submatrix(row, col int) Matrix {
	result := NewMatrix(m.rows-1, m.cols-1)
	i := 0
	for r := 0; r < m.rows; r++ {
		if r == row {
			continue
		}
		for c := 0; c < m.cols; c++ {
			if c == col {
				continue
			}
			result.cells[i] = m.cells[r*m.cols+c]
			i++
		}
	}
	return result
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

// Determinant returns the determinant, expanding along row 0 for
// matrices larger than 2x2
func (m Matrix) Determinant() float64 {
	if m.rows == 1 {
		return m.cells[0]
	}
	if m.rows == 2 {
		return m.cells[0]*m.cells[3] - m.cells[1]*m.cells[2]
	}
	det := 0.0
	for c := 0; c < m.cols; c++ {
		det += m.cells[c] * m.Cofactor(0, c)
	}
	return det
}

// Invertible reports whether the determinant is not fuzzy-zero
func (m Matrix) Invertible() bool {
	return !FuzzyEqual(m.Determinant(), 0)
}

// Inverse returns the inverse of the matrix, or ErrNotInvertible
// when the determinant is fuzzy-zero
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < Epsilon {
		return Matrix{}, ErrNotInvertible
	}
	result := NewMatrix(m.rows, m.cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			// transposed assignment folds the adjugate transpose in
			result.cells[c*m.cols+r] = m.Cofactor(r, c) / det
		}
	}
	return result, nil
}

// Translation creates a 4x4 translation matrix
func Translation(x, y, z float64) Matrix {
	m := Identity(4)
	m.cells[3] = x
	m.cells[7] = y
	m.cells[11] = z
	return m
}

// Scaling creates a 4x4 scaling matrix
func Scaling(x, y, z float64) Matrix {
	m := Identity(4)
	m.cells[0] = x
	m.cells[5] = y
	m.cells[10] = z
	return m
}

// RotationX creates a 4x4 rotation matrix about the x axis (radians)
func RotationX(radians float64) Matrix {
	m := Identity(4)
	cos, sin := math.Cos(radians), math.Sin(radians)
	m.cells[5] = cos
	m.cells[6] = -sin
	m.cells[9] = sin
	m.cells[10] = cos
	return m
}

// RotationY creates a 4x4 rotation matrix about the y axis (radians)
func RotationY(radians float64) Matrix {
	m := Identity(4)
	cos, sin := math.Cos(radians), math.Sin(radians)
	m.cells[0] = cos
	m.cells[2] = sin
	m.cells[8] = -sin
	m.cells[10] = cos
	return m
}

// RotationZ creates a 4x4 rotation matrix about the z axis (radians)
func RotationZ(radians float64) Matrix {
	m := Identity(4)
	cos, sin := math.Cos(radians), math.Sin(radians)
	m.cells[0] = cos
	m.cells[1] = -sin
	m.cells[4] = sin
	m.cells[5] = cos
	return m
}

// Shearing creates a 4x4 shear matrix moving each component in
// proportion to the other two
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	m := Identity(4)
	m.cells[1] = xy
	m.cells[2] = xz
	m.cells[4] = yx
	m.cells[6] = yz
	m.cells[8] = zx
	m.cells[9] = zy
	return m
}

// ViewTransform creates the world-to-camera transform for an eye at
// `from` looking toward `to` with the given up vector
func ViewTransform(from, to, up Tuple) Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)
	orientation := NewMatrixFrom(
		[]float64{left.X, left.Y, left.Z, 0},
		[]float64{trueUp.X, trueUp.Y, trueUp.Z, 0},
		[]float64{-forward.X, -forward.Y, -forward.Z, 0},
		[]float64{0, 0, 0, 1},
	)
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}
