// Copyright 2026 FieldMat Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg provides a small generic linear-algebra kernel: immutable
// Vector and Matrix values over an abstract scalar field, and a family of
// algorithms built on pivoted Gaussian elimination.
//
// # Overview
//
// The kernel targets small dense matrices with exact, deterministic,
// single-pass elimination. It provides:
//   - Field[K]: the arithmetic contract a scalar type must satisfy
//   - Vector[K, F], Matrix[K, F]: immutable generic containers
//   - RowEchelon: pivoted reduction to reduced row-echelon form
//   - Rank, Determinant, Inverse: algorithms derived from the same
//     pivot-selection and elimination steps
//
// # Basic Usage
//
//	import "github.com/fieldmat/fieldmat/linalg"
//
//	func main() {
//	    m, _ := linalg.NewMatrix(linalg.Real{}, [][]float64{
//	        {8, 5, -2},
//	        {4, 7, 20},
//	        {7, 6, 1},
//	    })
//
//	    det, _ := m.Determinant() // ≈ -174
//	    inv, _ := m.Inverse()     // m.Mul(inv) ≈ identity
//	    rank := m.Rank()          // 3
//	}
//
// # Fields
//
// Three fields ship with the package: Real (float64), Complex (complex128),
// and Rational (*big.Rat, exact). Any type implementing Field[K] can
// instantiate the kernel; the algorithms never touch a concrete numeric type
// directly, so correctness is independent of which field is plugged in.
//
// # Error Handling
//
// Failures are typed sentinels matched with errors.Is:
// ErrDimensionMismatch, ErrNotSquare, ErrSingular, ErrInvalidReshape.
// All failures are terminal and synchronous; no partial results are
// returned. Index misuse (At with an out-of-range index) panics, as it is a
// programmer error rather than a data condition.
//
// # Concurrency
//
// Every operation is a pure function of its inputs. Containers are immutable
// value types, so concurrent callers may operate on distinct instances
// without coordination.
package linalg
