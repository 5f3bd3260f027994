package linalg

import (
	"fmt"
	"strings"
)

// Matrix is an immutable rectangular grid of field elements, stored row-major
// in a flat slice. The field value travels with the matrix as its second type
// parameter, so every operation is statically guaranteed to use the plugged-in
// scalar arithmetic.
//
// Matrices are value types: constructors copy their input and every
// transforming operation returns a new Matrix, so mutating one instance's
// storage is never observable through another.
//
// Example:
//
//	m, err := linalg.NewMatrix(linalg.Real{}, [][]float64{
//	    {8, 5, -2},
//	    {4, 7, 20},
//	    {7, 6, 1},
//	})
//	det, err := m.Determinant() // ≈ -174
type Matrix[K any, F Field[K]] struct {
	field F
	data  []K
	rows  int
	cols  int
}

// newMatrix allocates a rows×cols matrix with every entry set to the field's
// zero. Explicit initialization matters for fields whose Go zero value is not
// the additive identity (e.g. *big.Rat, whose zero value is nil).
func newMatrix[K any, F Field[K]](f F, rows, cols int) *Matrix[K, F] {
	m := &Matrix[K, F]{
		field: f,
		data:  make([]K, rows*cols),
		rows:  rows,
		cols:  cols,
	}
	zero := f.Zero()
	for i := range m.data {
		m.data[i] = zero
	}
	return m
}

// NewMatrix creates a matrix from row slices. Rows are copied; the caller's
// slices are never retained. All rows must have equal length.
func NewMatrix[K any, F Field[K]](f F, rows [][]K) (*Matrix[K, F], error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m := &Matrix[K, F]{
		field: f,
		data:  make([]K, 0, r*c),
		rows:  r,
		cols:  c,
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewMatrix: row %d has %d elements, want %d: %w",
				i, len(row), c, ErrDimensionMismatch)
		}
		m.data = append(m.data, row...)
	}
	return m, nil
}

// MatrixFromSlice creates a rows×cols matrix from a flat row-major slice.
// The slice is copied.
func MatrixFromSlice[K any, F Field[K]](f F, data []K, rows, cols int) (*Matrix[K, F], error) {
	if rows < 0 || cols < 0 || rows*cols != len(data) {
		return nil, fmt.Errorf("MatrixFromSlice: shape %dx%d requires %d elements, got %d: %w",
			rows, cols, rows*cols, len(data), ErrDimensionMismatch)
	}
	m := &Matrix[K, F]{
		field: f,
		data:  make([]K, len(data)),
		rows:  rows,
		cols:  cols,
	}
	copy(m.data, data)
	return m, nil
}

// Zeros creates a rows×cols matrix of field zeros.
func Zeros[K any, F Field[K]](f F, rows, cols int) *Matrix[K, F] {
	return newMatrix(f, rows, cols)
}

// Identity creates the n×n identity matrix.
func Identity[K any, F Field[K]](f F, n int) *Matrix[K, F] {
	m := newMatrix(f, n, n)
	one := f.One()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix[K, F]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[K, F]) Cols() int { return m.cols }

// Shape returns (rows, cols).
func (m *Matrix[K, F]) Shape() (int, int) { return m.rows, m.cols }

// Size returns the total number of elements.
func (m *Matrix[K, F]) Size() int { return m.rows * m.cols }

// IsSquare reports whether rows == cols.
func (m *Matrix[K, F]) IsSquare() bool { return m.rows == m.cols }

// Field returns the field the matrix is instantiated over.
func (m *Matrix[K, F]) Field() F { return m.field }

// At returns the element at row i, column j.
// Panics if the indices are out of bounds.
func (m *Matrix[K, F]) At(i, j int) K {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("index (%d,%d) out of bounds for %dx%d matrix", i, j, m.rows, m.cols))
	}
	return m.data[i*m.cols+j]
}

// at reads without bounds checks. Internal use on validated indices only.
func (m *Matrix[K, F]) at(i, j int) K { return m.data[i*m.cols+j] }

// set writes without bounds checks. Only ever called on private working
// copies owned by a single elimination call; exported Matrix values are
// never mutated.
func (m *Matrix[K, F]) set(i, j int, v K) { m.data[i*m.cols+j] = v }

// Row returns a copy of row i.
// Panics if i is out of bounds.
func (m *Matrix[K, F]) Row(i int) []K {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("row %d out of bounds for %dx%d matrix", i, m.rows, m.cols))
	}
	row := make([]K, m.cols)
	copy(row, m.data[i*m.cols:(i+1)*m.cols])
	return row
}

// Data returns a copy of the backing slice in row-major order.
func (m *Matrix[K, F]) Data() []K {
	out := make([]K, len(m.data))
	copy(out, m.data)
	return out
}

// Clone returns a deep copy.
func (m *Matrix[K, F]) Clone() *Matrix[K, F] {
	out := &Matrix[K, F]{
		field: m.field,
		data:  make([]K, len(m.data)),
		rows:  m.rows,
		cols:  m.cols,
	}
	copy(out.data, m.data)
	return out
}

// EqualApprox reports whether both matrices have the same shape and every
// pair of entries differs by at most tol in field magnitude. tol of 0 is an
// exact comparison.
func (m *Matrix[K, F]) EqualApprox(other *Matrix[K, F], tol float64) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if m.field.Abs(m.field.Sub(m.data[i], other.data[i])) > tol {
			return false
		}
	}
	return true
}

// Transpose returns a new matrix with rows and columns swapped.
func (m *Matrix[K, F]) Transpose() *Matrix[K, F] {
	out := &Matrix[K, F]{
		field: m.field,
		data:  make([]K, len(m.data)),
		rows:  m.cols,
		cols:  m.rows,
	}
	for i := 0; i < m.rows; i++ {
		base := i * m.cols
		for j := 0; j < m.cols; j++ {
			out.data[j*m.rows+i] = m.data[base+j]
		}
	}
	return out
}

// Reshape returns a rows×cols matrix over the same elements in row-major
// order. Fails with ErrInvalidReshape when rows*cols != Size().
func (m *Matrix[K, F]) Reshape(rows, cols int) (*Matrix[K, F], error) {
	if rows < 0 || cols < 0 || rows*cols != len(m.data) {
		return nil, fmt.Errorf("Reshape: %dx%d incompatible with %d elements: %w",
			rows, cols, len(m.data), ErrInvalidReshape)
	}
	out := m.Clone()
	out.rows = rows
	out.cols = cols
	return out, nil
}

// ToVector flattens the matrix into a vector in row-major order.
func (m *Matrix[K, F]) ToVector() *Vector[K, F] {
	return NewVector(m.field, m.data)
}

// String returns a human-readable representation, one row per line.
func (m *Matrix[K, F]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Matrix[%dx%d]", m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		b.WriteString("\n  [")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%v", m.data[i*m.cols+j])
		}
		b.WriteString("]")
	}
	return b.String()
}
