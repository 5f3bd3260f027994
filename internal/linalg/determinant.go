package linalg

import "fmt"

// Determinant computes det(m) by triangularizing a working copy with
// partial-pivoting Gaussian elimination: the running determinant is
// multiplied by each pivot as it is fixed and its sign flips on every row
// swap. A pivot magnitude below Epsilon short-circuits to the field's exact
// zero, so singular matrices never proceed further.
//
// Fails with ErrNotSquare for non-square input. The determinant of the empty
// 0×0 matrix is One.
func (m *Matrix[K, F]) Determinant() (K, error) {
	f := m.field
	if !m.IsSquare() {
		return f.Zero(), fmt.Errorf("Determinant: %dx%d: %w", m.rows, m.cols, ErrNotSquare)
	}
	w := m.Clone()
	n := w.rows
	det := f.One()
	for c := 0; c < n; c++ {
		best, bestAbs := w.pivotIndex(c, c)
		if bestAbs < Epsilon {
			return f.Zero(), nil
		}
		if best != c {
			w.swapRows(c, best)
			det = f.Neg(det)
		}
		pivot := w.at(c, c)
		det = f.Mul(det, pivot)
		for i := c + 1; i < n; i++ {
			factor := f.Div(w.at(i, c), pivot)
			w.subScaledRow(i, c, factor, c)
		}
	}
	return det, nil
}

// DeterminantCofactor computes det(m) by recursive Laplace expansion along
// the first row. It is an independent derivation kept as a cross-check
// oracle for Determinant; both must agree within numerical tolerance.
// Exponential in n, so only suitable for small matrices.
func (m *Matrix[K, F]) DeterminantCofactor() (K, error) {
	if !m.IsSquare() {
		return m.field.Zero(), fmt.Errorf("DeterminantCofactor: %dx%d: %w", m.rows, m.cols, ErrNotSquare)
	}
	return m.cofactorExpand(), nil
}

// cofactorExpand is the recursive core: det(1×1) = a, det(2×2) = ad-bc, and
// det = Σ_j (-1)^j · a[0][j] · det(minor(0, j)) for larger sizes.
func (m *Matrix[K, F]) cofactorExpand() K {
	f := m.field
	switch m.rows {
	case 0:
		return f.One()
	case 1:
		return m.at(0, 0)
	case 2:
		return f.Sub(
			f.Mul(m.at(0, 0), m.at(1, 1)),
			f.Mul(m.at(0, 1), m.at(1, 0)),
		)
	}
	det := f.Zero()
	for j := 0; j < m.cols; j++ {
		term := f.Mul(m.at(0, j), m.minor(0, j).cofactorExpand())
		if j%2 == 1 {
			term = f.Neg(term)
		}
		det = f.Add(det, term)
	}
	return det
}

// minor returns the submatrix excluding row skipRow and column skipCol.
func (m *Matrix[K, F]) minor(skipRow, skipCol int) *Matrix[K, F] {
	out := &Matrix[K, F]{
		field: m.field,
		data:  make([]K, 0, (m.rows-1)*(m.cols-1)),
		rows:  m.rows - 1,
		cols:  m.cols - 1,
	}
	for i := 0; i < m.rows; i++ {
		if i == skipRow {
			continue
		}
		for j := 0; j < m.cols; j++ {
			if j == skipCol {
				continue
			}
			out.data = append(out.data, m.at(i, j))
		}
	}
	return out
}
