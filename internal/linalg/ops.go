package linalg

import "fmt"

// Elementwise and product operations on matrices. All of them allocate a
// fresh result; operands are never mutated.

// Add returns m + other element-wise.
func (m *Matrix[K, F]) Add(other *Matrix[K, F]) (*Matrix[K, F], error) {
	return m.zip(other, m.field.Add, "Add")
}

// Sub returns m - other element-wise.
func (m *Matrix[K, F]) Sub(other *Matrix[K, F]) (*Matrix[K, F], error) {
	return m.zip(other, m.field.Sub, "Sub")
}

// Lerp returns the element-wise linear interpolation m + (other-m)*t.
func (m *Matrix[K, F]) Lerp(other *Matrix[K, F], t K) (*Matrix[K, F], error) {
	f := m.field
	return m.zip(other, func(a, b K) K {
		return f.Add(a, f.Mul(f.Sub(b, a), t))
	}, "Lerp")
}

// zip applies op pairwise after a shape check. Shared by Add/Sub/Lerp.
func (m *Matrix[K, F]) zip(other *Matrix[K, F], op func(a, b K) K, name string) (*Matrix[K, F], error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, fmt.Errorf("%s: shapes %dx%d and %dx%d: %w",
			name, m.rows, m.cols, other.rows, other.cols, ErrDimensionMismatch)
	}
	out := &Matrix[K, F]{field: m.field, data: make([]K, len(m.data)), rows: m.rows, cols: m.cols}
	for i := range m.data {
		out.data[i] = op(m.data[i], other.data[i])
	}
	return out, nil
}

// Scale returns k * m.
func (m *Matrix[K, F]) Scale(k K) *Matrix[K, F] {
	out := &Matrix[K, F]{field: m.field, data: make([]K, len(m.data)), rows: m.rows, cols: m.cols}
	for i := range m.data {
		out.data[i] = m.field.Mul(m.data[i], k)
	}
	return out
}

// Mul returns the matrix product m × other. Inner dimensions must agree.
// Loop order is i→k→j over the row-major layout.
func (m *Matrix[K, F]) Mul(other *Matrix[K, F]) (*Matrix[K, F], error) {
	if m.cols != other.rows {
		return nil, fmt.Errorf("Mul: shapes %dx%d and %dx%d: %w",
			m.rows, m.cols, other.rows, other.cols, ErrDimensionMismatch)
	}
	f := m.field
	out := newMatrix(f, m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			// No small-entry skip: a sub-Epsilon factor still contributes
			// when the right operand is large.
			a := m.at(i, k)
			for j := 0; j < other.cols; j++ {
				out.set(i, j, f.Add(out.at(i, j), f.Mul(a, other.at(k, j))))
			}
		}
	}
	return out, nil
}

// MulVec returns the matrix-vector product m × v as a column vector of
// length Rows. v's size must equal Cols.
func (m *Matrix[K, F]) MulVec(v *Vector[K, F]) (*Vector[K, F], error) {
	if m.cols != v.Size() {
		return nil, fmt.Errorf("MulVec: shape %dx%d and vector size %d: %w",
			m.rows, m.cols, v.Size(), ErrDimensionMismatch)
	}
	f := m.field
	out := &Vector[K, F]{field: f, data: make([]K, m.rows)}
	for i := 0; i < m.rows; i++ {
		acc := f.Zero()
		for j := 0; j < m.cols; j++ {
			acc = f.Add(acc, f.Mul(m.at(i, j), v.data[j]))
		}
		out.data[i] = acc
	}
	return out, nil
}

// Trace returns the sum of the diagonal entries.
// Fails with ErrNotSquare for non-square input.
func (m *Matrix[K, F]) Trace() (K, error) {
	f := m.field
	if !m.IsSquare() {
		return f.Zero(), fmt.Errorf("Trace: %dx%d: %w", m.rows, m.cols, ErrNotSquare)
	}
	acc := f.Zero()
	for i := 0; i < m.rows; i++ {
		acc = f.Add(acc, m.at(i, i))
	}
	return acc, nil
}
