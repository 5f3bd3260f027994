package linalg

import (
	"fmt"
	"math"
	"strings"
)

// Vector is an immutable fixed-size ordered sequence of field elements.
// Like Matrix, it carries its field as a type parameter and every
// transforming operation returns a new Vector.
type Vector[K any, F Field[K]] struct {
	field F
	data  []K
}

// NewVector creates a vector from a slice. The slice is copied.
func NewVector[K any, F Field[K]](f F, data []K) *Vector[K, F] {
	v := &Vector[K, F]{
		field: f,
		data:  make([]K, len(data)),
	}
	copy(v.data, data)
	return v
}

// Size returns the number of elements.
func (v *Vector[K, F]) Size() int { return len(v.data) }

// Field returns the field the vector is instantiated over.
func (v *Vector[K, F]) Field() F { return v.field }

// At returns the element at index i.
// Panics if i is out of bounds.
func (v *Vector[K, F]) At(i int) K {
	if i < 0 || i >= len(v.data) {
		panic(fmt.Sprintf("index %d out of bounds for vector of size %d", i, len(v.data)))
	}
	return v.data[i]
}

// Data returns a copy of the backing slice.
func (v *Vector[K, F]) Data() []K {
	out := make([]K, len(v.data))
	copy(out, v.data)
	return out
}

// Clone returns a deep copy.
func (v *Vector[K, F]) Clone() *Vector[K, F] {
	return NewVector(v.field, v.data)
}

// EqualApprox reports whether both vectors have the same size and every pair
// of entries differs by at most tol in field magnitude. tol of 0 is an exact
// comparison.
func (v *Vector[K, F]) EqualApprox(other *Vector[K, F], tol float64) bool {
	if len(v.data) != len(other.data) {
		return false
	}
	for i := range v.data {
		if v.field.Abs(v.field.Sub(v.data[i], other.data[i])) > tol {
			return false
		}
	}
	return true
}

// ToMatrix reshapes the vector into a rows×cols matrix in row-major order.
// Fails with ErrInvalidReshape when rows*cols != Size().
func (v *Vector[K, F]) ToMatrix(rows, cols int) (*Matrix[K, F], error) {
	if rows < 0 || cols < 0 || rows*cols != len(v.data) {
		return nil, fmt.Errorf("ToMatrix: %dx%d incompatible with %d elements: %w",
			rows, cols, len(v.data), ErrInvalidReshape)
	}
	return MatrixFromSlice(v.field, v.data, rows, cols)
}

// Add returns v + other element-wise.
func (v *Vector[K, F]) Add(other *Vector[K, F]) (*Vector[K, F], error) {
	return v.zip(other, v.field.Add, "Add")
}

// Sub returns v - other element-wise.
func (v *Vector[K, F]) Sub(other *Vector[K, F]) (*Vector[K, F], error) {
	return v.zip(other, v.field.Sub, "Sub")
}

// zip applies op pairwise after a size check. Shared by Add/Sub/Lerp.
func (v *Vector[K, F]) zip(other *Vector[K, F], op func(a, b K) K, name string) (*Vector[K, F], error) {
	if len(v.data) != len(other.data) {
		return nil, fmt.Errorf("%s: sizes %d and %d: %w", name, len(v.data), len(other.data), ErrDimensionMismatch)
	}
	out := &Vector[K, F]{field: v.field, data: make([]K, len(v.data))}
	for i := range v.data {
		out.data[i] = op(v.data[i], other.data[i])
	}
	return out, nil
}

// Scale returns k * v.
func (v *Vector[K, F]) Scale(k K) *Vector[K, F] {
	out := &Vector[K, F]{field: v.field, data: make([]K, len(v.data))}
	for i := range v.data {
		out.data[i] = v.field.Mul(v.data[i], k)
	}
	return out
}

// Lerp returns the linear interpolation v + (other-v)*t.
func (v *Vector[K, F]) Lerp(other *Vector[K, F], t K) (*Vector[K, F], error) {
	f := v.field
	return v.zip(other, func(a, b K) K {
		return f.Add(a, f.Mul(f.Sub(b, a), t))
	}, "Lerp")
}

// Dot returns the dot product Σ v[i]*other[i].
func (v *Vector[K, F]) Dot(other *Vector[K, F]) (K, error) {
	f := v.field
	if len(v.data) != len(other.data) {
		return f.Zero(), fmt.Errorf("Dot: sizes %d and %d: %w", len(v.data), len(other.data), ErrDimensionMismatch)
	}
	acc := f.Zero()
	for i := range v.data {
		acc = f.Add(acc, f.Mul(v.data[i], other.data[i]))
	}
	return acc, nil
}

// Cross returns the cross product of two 3-element vectors.
func (v *Vector[K, F]) Cross(other *Vector[K, F]) (*Vector[K, F], error) {
	if len(v.data) != 3 || len(other.data) != 3 {
		return nil, fmt.Errorf("Cross: sizes %d and %d, want 3 and 3: %w",
			len(v.data), len(other.data), ErrDimensionMismatch)
	}
	f := v.field
	u, w := v.data, other.data
	return &Vector[K, F]{field: f, data: []K{
		f.Sub(f.Mul(u[1], w[2]), f.Mul(u[2], w[1])),
		f.Sub(f.Mul(u[2], w[0]), f.Mul(u[0], w[2])),
		f.Sub(f.Mul(u[0], w[1]), f.Mul(u[1], w[0])),
	}}, nil
}

// Norm1 returns the taxicab norm Σ|v[i]|.
func (v *Vector[K, F]) Norm1() float64 {
	sum := 0.0
	for _, x := range v.data {
		sum += v.field.Abs(x)
	}
	return sum
}

// Norm returns the Euclidean norm √(Σ|v[i]|²).
func (v *Vector[K, F]) Norm() float64 {
	sum := 0.0
	for _, x := range v.data {
		a := v.field.Abs(x)
		sum += a * a
	}
	return math.Sqrt(sum)
}

// NormInf returns the supremum norm max|v[i]|.
func (v *Vector[K, F]) NormInf() float64 {
	maxAbs := 0.0
	for _, x := range v.data {
		if a := v.field.Abs(x); a > maxAbs {
			maxAbs = a
		}
	}
	return maxAbs
}

// LinearCombination returns Σ coeffs[i] * vectors[i]. All vectors must have
// equal size and len(coeffs) must equal len(vectors).
func LinearCombination[K any, F Field[K]](f F, vectors []*Vector[K, F], coeffs []K) (*Vector[K, F], error) {
	if len(vectors) != len(coeffs) {
		return nil, fmt.Errorf("LinearCombination: %d vectors, %d coefficients: %w",
			len(vectors), len(coeffs), ErrDimensionMismatch)
	}
	if len(vectors) == 0 {
		return &Vector[K, F]{field: f}, nil
	}
	size := vectors[0].Size()
	out := &Vector[K, F]{field: f, data: make([]K, size)}
	zero := f.Zero()
	for i := range out.data {
		out.data[i] = zero
	}
	for i, v := range vectors {
		if v.Size() != size {
			return nil, fmt.Errorf("LinearCombination: vector %d has size %d, want %d: %w",
				i, v.Size(), size, ErrDimensionMismatch)
		}
		for j := range v.data {
			out.data[j] = f.Add(out.data[j], f.Mul(v.data[j], coeffs[i]))
		}
	}
	return out, nil
}

// Cosine returns cos(θ) between two real vectors: dot(u,v) / (‖u‖·‖v‖).
// Division follows IEEE semantics when either norm is zero.
func Cosine(u, v *Vector[float64, Real]) (float64, error) {
	dot, err := u.Dot(v)
	if err != nil {
		return 0, fmt.Errorf("Cosine: %w", err)
	}
	return dot / (u.Norm() * v.Norm()), nil
}

// String returns a human-readable representation.
func (v *Vector[K, F]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Vector[%d][", len(v.data))
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%v", x)
	}
	b.WriteString("]")
	return b.String()
}
