package linalg

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInverseConcrete2x2(t *testing.T) {
	m := mustMatrix(t, [][]float64{
		{4, 7},
		{2, 6},
	})
	inv, err := m.Inverse()
	require.NoError(t, err)

	want := mustMatrix(t, [][]float64{
		{0.6, -0.7},
		{-0.2, 0.4},
	})
	assert.True(t, inv.EqualApprox(want, 1e-10), "got %v", inv)
}

func TestInverseIdentity(t *testing.T) {
	id := Identity(Real{}, 4)
	inv, err := id.Inverse()
	require.NoError(t, err)
	assert.True(t, inv.EqualApprox(id, 1e-12))
}

func TestInverseNotSquare(t *testing.T) {
	_, err := Zeros(Real{}, 2, 3).Inverse()
	assert.ErrorIs(t, err, ErrNotSquare)
}

func TestInverseSingular(t *testing.T) {
	m := mustMatrix(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	inv, err := m.Inverse()
	assert.ErrorIs(t, err, ErrSingular)
	assert.Nil(t, inv, "no partial result on failure")

	_, err = Zeros(Real{}, 3, 3).Inverse()
	assert.ErrorIs(t, err, ErrSingular)
}

func TestInverseDoesNotMutateInput(t *testing.T) {
	m := mustMatrix(t, [][]float64{{4, 7}, {2, 6}})
	_, err := m.Inverse()
	require.NoError(t, err)
	assert.Equal(t, 4.0, m.At(0, 0))
	assert.Equal(t, 7.0, m.At(0, 1))
}

// A·A⁻¹ and A⁻¹·A must both be the identity within 1e-8 for every
// non-singular square input.
func TestInverseRoundTripsToIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	for n := 1; n <= 6; n++ {
		for trial := 0; trial < 20; trial++ {
			m := randomReal(rng, n, n)
			det, err := m.Determinant()
			require.NoError(t, err)
			if (Real{}).IsNearZero(det) {
				continue // random singular draw, vanishingly rare
			}

			inv, err := m.Inverse()
			require.NoError(t, err)

			id := Identity(Real{}, n)
			left, err := m.Mul(inv)
			require.NoError(t, err)
			right, err := inv.Mul(m)
			require.NoError(t, err)

			assert.True(t, left.EqualApprox(id, 1e-8), "A·A⁻¹ != I for n=%d", n)
			assert.True(t, right.EqualApprox(id, 1e-8), "A⁻¹·A != I for n=%d", n)
		}
	}
}

// Entries spanning twenty orders of magnitude force sub-Epsilon elimination
// factors against huge normalized rows. The matrix is too ill-conditioned for
// A⁻¹·A to stay near I in float64, but A·A⁻¹ must.
func TestInverseWideDynamicRange(t *testing.T) {
	m := mustMatrix(t, [][]float64{
		{1e-9, 1e9},
		{5e-11, 1},
	})

	inv, err := m.Inverse()
	require.NoError(t, err)

	prod, err := m.Mul(inv)
	require.NoError(t, err)
	assert.True(t, prod.EqualApprox(Identity(Real{}, 2), 1e-8),
		"A·A⁻¹ != I, got %v", prod)
}

func TestInverseComplexField(t *testing.T) {
	m, err := NewMatrix(Complex{}, [][]complex128{
		{complex(1, 1), 2},
		{3, complex(4, -1)},
	})
	require.NoError(t, err)

	inv, err := m.Inverse()
	require.NoError(t, err)

	prod, err := m.Mul(inv)
	require.NoError(t, err)
	assert.True(t, prod.EqualApprox(Identity(Complex{}, 2), 1e-8),
		"complex A·A⁻¹ != I, got %v", prod)
}

func TestInverseRationalFieldIsExact(t *testing.T) {
	m, err := NewMatrix(Rational{}, [][]*big.Rat{
		{big.NewRat(2, 1), big.NewRat(1, 1)},
		{big.NewRat(1, 1), big.NewRat(1, 1)},
	})
	require.NoError(t, err)

	inv, err := m.Inverse()
	require.NoError(t, err)

	// [[2,1],[1,1]]⁻¹ = [[1,-1],[-1,2]], exactly.
	assert.Zero(t, inv.At(0, 0).Cmp(big.NewRat(1, 1)))
	assert.Zero(t, inv.At(0, 1).Cmp(big.NewRat(-1, 1)))
	assert.Zero(t, inv.At(1, 0).Cmp(big.NewRat(-1, 1)))
	assert.Zero(t, inv.At(1, 1).Cmp(big.NewRat(2, 1)))
}
