// Copyright 2026 FieldMat Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg provides the public API for the FieldMat kernel. It
// re-exports the types and constructors of internal/linalg; all algorithmic
// behavior lives there.
package linalg

import (
	"github.com/fieldmat/fieldmat/internal/linalg"
)

// Epsilon is the absolute tolerance below which a scalar magnitude is
// treated as zero during pivot selection and rank counting.
const Epsilon = linalg.Epsilon

// Field is the arithmetic contract a scalar type must satisfy to
// instantiate the kernel.
type Field[K any] = linalg.Field[K]

// Shipped field instantiations.

// Real is the default field: plain float64 arithmetic.
type Real = linalg.Real

// Complex is the complex128 field; pivot magnitudes use the complex modulus.
type Complex = linalg.Complex

// Rational is an exact field over *big.Rat.
type Rational = linalg.Rational

// Vector is an immutable fixed-size ordered sequence of field elements.
type Vector[K any, F Field[K]] = linalg.Vector[K, F]

// Matrix is an immutable rectangular grid of field elements, row-major.
type Matrix[K any, F Field[K]] = linalg.Matrix[K, F]

// Sentinel errors, matched with errors.Is.
var (
	ErrDimensionMismatch = linalg.ErrDimensionMismatch
	ErrNotSquare         = linalg.ErrNotSquare
	ErrSingular          = linalg.ErrSingular
	ErrInvalidReshape    = linalg.ErrInvalidReshape
)

// Constructors

// NewVector creates a vector from a slice. The slice is copied.
func NewVector[K any, F Field[K]](f F, data []K) *Vector[K, F] {
	return linalg.NewVector(f, data)
}

// NewMatrix creates a matrix from row slices. All rows must have equal
// length; jagged input fails with ErrDimensionMismatch.
func NewMatrix[K any, F Field[K]](f F, rows [][]K) (*Matrix[K, F], error) {
	return linalg.NewMatrix(f, rows)
}

// MatrixFromSlice creates a rows×cols matrix from a flat row-major slice.
func MatrixFromSlice[K any, F Field[K]](f F, data []K, rows, cols int) (*Matrix[K, F], error) {
	return linalg.MatrixFromSlice(f, data, rows, cols)
}

// Zeros creates a rows×cols matrix of field zeros.
func Zeros[K any, F Field[K]](f F, rows, cols int) *Matrix[K, F] {
	return linalg.Zeros(f, rows, cols)
}

// Identity creates the n×n identity matrix.
func Identity[K any, F Field[K]](f F, n int) *Matrix[K, F] {
	return linalg.Identity(f, n)
}

// Free functions

// LinearCombination returns Σ coeffs[i] * vectors[i].
func LinearCombination[K any, F Field[K]](f F, vectors []*Vector[K, F], coeffs []K) (*Vector[K, F], error) {
	return linalg.LinearCombination(f, vectors, coeffs)
}

// Cosine returns cos(θ) between two real vectors.
func Cosine(u, v *Vector[float64, Real]) (float64, error) {
	return linalg.Cosine(u, v)
}
