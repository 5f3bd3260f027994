package linalg

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowEchelonIdentityIsFixedPoint(t *testing.T) {
	id := Identity(Real{}, 3)
	assert.True(t, id.RowEchelon().EqualApprox(id, 1e-12))
}

func TestRowEchelonDoesNotMutateInput(t *testing.T) {
	m, err := NewMatrix(Real{}, [][]float64{
		{2, 4},
		{1, 3},
	})
	require.NoError(t, err)

	_ = m.RowEchelon()
	assert.Equal(t, 2.0, m.At(0, 0))
	assert.Equal(t, 3.0, m.At(1, 1))
}

func TestRowEchelonFullRankSquare(t *testing.T) {
	m, err := NewMatrix(Real{}, [][]float64{
		{2, 1, -1},
		{-3, -1, 2},
		{-2, 1, 2},
	})
	require.NoError(t, err)

	re := m.RowEchelon()
	assert.True(t, re.EqualApprox(Identity(Real{}, 3), 1e-10),
		"full-rank square matrix reduces to the identity, got %v", re)
}

func TestRowEchelonRectangular(t *testing.T) {
	m, err := NewMatrix(Real{}, [][]float64{
		{1, 2, 1, 7},
		{2, 4, 0, 10},
	})
	require.NoError(t, err)

	re := m.RowEchelon()
	want, err := NewMatrix(Real{}, [][]float64{
		{1, 2, 0, 5},
		{0, 0, 1, 2},
	})
	require.NoError(t, err)
	assert.True(t, re.EqualApprox(want, 1e-10), "got %v", re)
}

func TestRowEchelonRankDeficient(t *testing.T) {
	// Row 1 is 2×row 0: one pivot column is skipped, second pivot lands in
	// column 2, the zero row sinks to the bottom.
	m, err := NewMatrix(Real{}, [][]float64{
		{1, 2, 0, 0},
		{2, 4, 0, 0},
		{-1, 2, 1, 1},
	})
	require.NoError(t, err)

	re := m.RowEchelon()
	want, err := NewMatrix(Real{}, [][]float64{
		{1, 0, -0.5, -0.5},
		{0, 1, 0.25, 0.25},
		{0, 0, 0, 0},
	})
	require.NoError(t, err)
	assert.True(t, re.EqualApprox(want, 1e-10), "got %v", re)
}

func TestRowEchelonZeroMatrix(t *testing.T) {
	z := Zeros(Real{}, 3, 4)
	assert.True(t, z.RowEchelon().EqualApprox(z, 0))
}

func TestRowEchelonZeroColumn(t *testing.T) {
	m, err := NewMatrix(Real{}, [][]float64{
		{0, 2, 4},
		{0, 1, 3},
	})
	require.NoError(t, err)

	re := m.RowEchelon()
	want, err := NewMatrix(Real{}, [][]float64{
		{0, 1, 0},
		{0, 0, 1},
	})
	require.NoError(t, err)
	assert.True(t, re.EqualApprox(want, 1e-10), "got %v", re)
}

func TestRowEchelonIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	shapes := [][2]int{{1, 1}, {2, 2}, {3, 3}, {3, 5}, {5, 3}, {4, 4}}
	for _, shape := range shapes {
		for trial := 0; trial < 10; trial++ {
			m := randomReal(rng, shape[0], shape[1])
			once := m.RowEchelon()
			twice := once.RowEchelon()
			assert.True(t, twice.EqualApprox(once, 1e-9),
				"rowEchelon not idempotent for shape %v", shape)
		}
	}
}

// After the first pivot row is normalized its entries can be huge, so an
// elimination factor below Epsilon still carries a real update. Both rows
// here have sub-Epsilon leading entries yet the matrix is full rank.
func TestRowEchelonTinyPivotColumn(t *testing.T) {
	m, err := NewMatrix(Real{}, [][]float64{
		{1e-10, 1},
		{5e-11, 1},
	})
	require.NoError(t, err)

	re := m.RowEchelon()
	assert.True(t, re.EqualApprox(Identity(Real{}, 2), 1e-12), "got %v", re)
}

func TestRowEchelonLeadingOnesAreExact(t *testing.T) {
	m, err := NewMatrix(Real{}, [][]float64{
		{3, 7},
		{1, 9},
	})
	require.NoError(t, err)

	re := m.RowEchelon()
	assert.Equal(t, 1.0, re.At(0, 0))
	assert.Equal(t, 1.0, re.At(1, 1))
	assert.Equal(t, 0.0, re.At(0, 1))
	assert.Equal(t, 0.0, re.At(1, 0))
}
