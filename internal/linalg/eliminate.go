package linalg

// Row-level mutators shared by the elimination engine and the derived
// algorithms. They mutate in place and are only ever called on private
// working copies owned by a single call.

// pivotIndex scans column col from row start downward and returns the row
// holding the entry of largest field magnitude, with that magnitude.
// Partial pivoting: the numerically largest candidate always wins, which
// bounds error amplification and makes pivot choice deterministic.
func (m *Matrix[K, F]) pivotIndex(col, start int) (int, float64) {
	best := start
	bestAbs := m.field.Abs(m.at(start, col))
	for i := start + 1; i < m.rows; i++ {
		if a := m.field.Abs(m.at(i, col)); a > bestAbs {
			best, bestAbs = i, a
		}
	}
	return best, bestAbs
}

// swapRows exchanges rows i and j in place.
func (m *Matrix[K, F]) swapRows(i, j int) {
	if i == j {
		return
	}
	ri := m.data[i*m.cols : (i+1)*m.cols]
	rj := m.data[j*m.cols : (j+1)*m.cols]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// divRow divides every entry of row i by pivot and pins the entry in column
// leadCol to exactly One, so leading entries of an echelon form are 1 even
// under floating-point noise.
func (m *Matrix[K, F]) divRow(i int, pivot K, leadCol int) {
	f := m.field
	base := i * m.cols
	for j := 0; j < m.cols; j++ {
		m.data[base+j] = f.Div(m.data[base+j], pivot)
	}
	m.data[base+leadCol] = f.One()
}

// subScaledRow subtracts factor × row src from row dst, starting at column
// from (entries left of it are already zero in src).
func (m *Matrix[K, F]) subScaledRow(dst, src int, factor K, from int) {
	f := m.field
	dBase := dst * m.cols
	sBase := src * m.cols
	for j := from; j < m.cols; j++ {
		m.data[dBase+j] = f.Sub(m.data[dBase+j], f.Mul(factor, m.data[sBase+j]))
	}
}

// RowEchelon returns the reduced row-echelon form of the matrix: each pivot
// is exactly 1 and its column is zero in every other row. The receiver is
// never mutated; all work happens on a fresh clone.
//
// The pivot position (pivotRow, pivotCol) moves through the matrix left to
// right. At each column the largest-magnitude candidate at or below pivotRow
// is chosen; a candidate below Epsilon means the column has no pivot, in
// which case only pivotCol advances. This yields correct echelon forms for
// rank-deficient and all-zero-column inputs.
func (m *Matrix[K, F]) RowEchelon() *Matrix[K, F] {
	w := m.Clone()
	pivotRow := 0
	for pivotCol := 0; pivotCol < w.cols && pivotRow < w.rows; pivotCol++ {
		best, bestAbs := w.pivotIndex(pivotCol, pivotRow)
		if bestAbs < Epsilon {
			continue // no pivot in this column
		}
		w.swapRows(pivotRow, best)
		w.divRow(pivotRow, w.at(pivotRow, pivotCol), pivotCol)
		for i := 0; i < w.rows; i++ {
			if i == pivotRow {
				continue
			}
			// A factor below Epsilon still carries a real update when the
			// pivot row holds large entries; only pivot selection uses the
			// tolerance, never the elimination step itself.
			factor := w.at(i, pivotCol)
			w.subScaledRow(i, pivotRow, factor, pivotCol)
			w.set(i, pivotCol, w.field.Zero())
		}
		pivotRow++
	}
	return w
}
