package linalg

// Rank returns the rank of the matrix: the number of rows of its reduced
// row-echelon form that are not entirely near-zero. The result is always in
// [0, min(rows, cols)]; the zero matrix has rank 0.
func (m *Matrix[K, F]) Rank() int {
	re := m.RowEchelon()
	rank := 0
	for i := 0; i < re.rows; i++ {
		for j := 0; j < re.cols; j++ {
			if !re.field.IsNearZero(re.at(i, j)) {
				rank++
				break
			}
		}
	}
	return rank
}

// rankByPivots derives the rank a second way: a non-normalizing forward
// elimination (partial pivoting, elimination below the pivot only) counting
// the columns that yield a pivot above tolerance. Must agree with Rank on
// every input; the agreement is asserted in tests.
func (m *Matrix[K, F]) rankByPivots() int {
	w := m.Clone()
	f := w.field
	pivotRow := 0
	count := 0
	for pivotCol := 0; pivotCol < w.cols && pivotRow < w.rows; pivotCol++ {
		best, bestAbs := w.pivotIndex(pivotCol, pivotRow)
		if bestAbs < Epsilon {
			continue
		}
		w.swapRows(pivotRow, best)
		pivot := w.at(pivotRow, pivotCol)
		for i := pivotRow + 1; i < w.rows; i++ {
			factor := f.Div(w.at(i, pivotCol), pivot)
			w.subScaledRow(i, pivotRow, factor, pivotCol)
		}
		pivotRow++
		count++
	}
	return count
}
