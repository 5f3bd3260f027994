package linalg

import "errors"

// Sentinel errors returned by the kernel. All failures are terminal and
// synchronous; no operation returns a partial result alongside an error.
// Callers match with errors.Is.
var (
	// ErrDimensionMismatch indicates incompatible operand shapes, including
	// jagged row input to a constructor.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNotSquare indicates a square-only operation (determinant, inverse,
	// trace) was applied to a non-square matrix.
	ErrNotSquare = errors.New("linalg: matrix is not square")

	// ErrSingular indicates a zero or near-zero pivot during inversion.
	ErrSingular = errors.New("linalg: singular matrix")

	// ErrInvalidReshape indicates an element-count mismatch on reshape.
	ErrInvalidReshape = errors.New("linalg: reshape element count mismatch")
)
