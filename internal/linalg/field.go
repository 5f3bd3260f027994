// Package linalg provides the core containers and algorithms for the FieldMat
// linear-algebra kernel: immutable Vector/Matrix values over an abstract
// scalar field, and pivoted Gaussian elimination with its derived algorithms
// (row-echelon reduction, rank, determinant, inverse).
package linalg

import (
	"math"
	"math/big"
	"math/cmplx"
)

// Epsilon is the absolute tolerance below which a scalar magnitude is treated
// as zero during pivot selection and rank counting.
const Epsilon = 1e-10

// Field is the arithmetic contract a scalar type must satisfy to instantiate
// the kernel. Every arithmetic step in the elimination engine and the derived
// algorithms dispatches through a Field value; the kernel never touches a
// concrete numeric type directly.
//
// Implementations must be pure: no operation may mutate its operands, and
// equal inputs must always produce equal outputs.
//
// Example:
//
//	m, _ := linalg.NewMatrix(linalg.Real{}, [][]float64{{4, 7}, {2, 6}})
//	inv, err := m.Inverse()
type Field[K any] interface {
	// Add returns a + b.
	Add(a, b K) K
	// Sub returns a - b.
	Sub(a, b K) K
	// Mul returns a * b.
	Mul(a, b K) K
	// Div returns a / b. Behavior for near-zero b is the implementation's;
	// the kernel guards every division with a pivot magnitude check.
	Div(a, b K) K
	// Neg returns -a.
	Neg(a K) K
	// Zero returns the additive identity.
	Zero() K
	// One returns the multiplicative identity.
	One() K
	// Abs returns the magnitude of a as a float64, used for partial pivoting.
	Abs(a K) float64
	// IsNearZero reports whether Abs(a) < Epsilon.
	IsNearZero(a K) bool
}

// Real is the default field: plain float64 arithmetic.
type Real struct{}

// Add returns a + b.
func (Real) Add(a, b float64) float64 { return a + b }

// Sub returns a - b.
func (Real) Sub(a, b float64) float64 { return a - b }

// Mul returns a * b.
func (Real) Mul(a, b float64) float64 { return a * b }

// Div returns a / b.
func (Real) Div(a, b float64) float64 { return a / b }

// Neg returns -a.
func (Real) Neg(a float64) float64 { return -a }

// Zero returns 0.
func (Real) Zero() float64 { return 0 }

// One returns 1.
func (Real) One() float64 { return 1 }

// Abs returns |a|.
func (Real) Abs(a float64) float64 { return math.Abs(a) }

// IsNearZero reports whether |a| < Epsilon.
func (Real) IsNearZero(a float64) bool { return math.Abs(a) < Epsilon }

// Complex is the complex128 field. Pivot magnitudes use the complex modulus,
// so partial pivoting and the singularity tolerance carry over unchanged.
type Complex struct{}

// Add returns a + b.
func (Complex) Add(a, b complex128) complex128 { return a + b }

// Sub returns a - b.
func (Complex) Sub(a, b complex128) complex128 { return a - b }

// Mul returns a * b.
func (Complex) Mul(a, b complex128) complex128 { return a * b }

// Div returns a / b.
func (Complex) Div(a, b complex128) complex128 { return a / b }

// Neg returns -a.
func (Complex) Neg(a complex128) complex128 { return -a }

// Zero returns 0.
func (Complex) Zero() complex128 { return 0 }

// One returns 1.
func (Complex) One() complex128 { return 1 }

// Abs returns the modulus |a|.
func (Complex) Abs(a complex128) float64 { return cmplx.Abs(a) }

// IsNearZero reports whether |a| < Epsilon.
func (Complex) IsNearZero(a complex128) bool { return cmplx.Abs(a) < Epsilon }

// Rational is an exact field over *big.Rat. Every operation allocates a fresh
// result; operands are never mutated, which keeps container immutability
// intact even though values are shared by pointer.
type Rational struct{}

// Add returns a + b.
func (Rational) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

// Sub returns a - b.
func (Rational) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }

// Mul returns a * b.
func (Rational) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

// Div returns a / b.
func (Rational) Div(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) }

// Neg returns -a.
func (Rational) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

// Zero returns 0/1.
func (Rational) Zero() *big.Rat { return new(big.Rat) }

// One returns 1/1.
func (Rational) One() *big.Rat { return big.NewRat(1, 1) }

// Abs returns |a| rounded to float64, for pivot comparison only. Rationals
// beyond float64 range collapse to +Inf and compare equal during pivot
// selection; the arithmetic stays exact either way, only the pivot choice
// among such candidates degrades.
func (Rational) Abs(a *big.Rat) float64 {
	f, _ := a.Float64()
	return math.Abs(f)
}

// IsNearZero reports whether a is exactly zero. The arithmetic is exact, so
// no tolerance is needed.
func (Rational) IsNearZero(a *big.Rat) bool { return a.Sign() == 0 }
