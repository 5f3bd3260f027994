package linalg

import "fmt"

// Inverse computes m⁻¹ by Gauss-Jordan elimination on the augmented matrix
// [A | I]. For each pivot column the largest-magnitude candidate at or below
// the current row is selected; a candidate below Epsilon fails with
// ErrSingular before any result is produced. After every column is processed
// the right half of the augment is the inverse, satisfying
// A · A⁻¹ ≈ I within tolerance for every non-singular input.
//
// The elimination is fully generic: every step is field Div/Mul/Sub plus the
// Abs-based pivot choice, so any Field instantiation (real, complex,
// rational) is supported.
//
// Fails with ErrNotSquare for non-square input.
func (m *Matrix[K, F]) Inverse() (*Matrix[K, F], error) {
	if !m.IsSquare() {
		return nil, fmt.Errorf("Inverse: %dx%d: %w", m.rows, m.cols, ErrNotSquare)
	}
	f := m.field
	n := m.rows

	// Augmented working matrix [A | I], width 2n.
	aug := newMatrix(f, n, 2*n)
	one := f.One()
	for i := 0; i < n; i++ {
		copy(aug.data[i*2*n:i*2*n+n], m.data[i*n:(i+1)*n])
		aug.set(i, n+i, one)
	}

	for col := 0; col < n; col++ {
		best, bestAbs := aug.pivotIndex(col, col)
		if bestAbs < Epsilon {
			return nil, fmt.Errorf("Inverse: pivot column %d: %w", col, ErrSingular)
		}
		aug.swapRows(col, best)
		aug.divRow(col, aug.at(col, col), col)
		for i := 0; i < n; i++ {
			if i == col {
				continue
			}
			factor := aug.at(i, col)
			aug.subScaledRow(i, col, factor, col)
			aug.set(i, col, f.Zero())
		}
	}

	// Extract the right half.
	inv := newMatrix(f, n, n)
	for i := 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], aug.data[i*2*n+n:(i+1)*2*n])
	}
	return inv, nil
}
