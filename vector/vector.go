// SPDX-License-Identifier: MIT

package vector

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Vector is a dense, fixed-length sequence of float64 components.
type Vector []float64

// New returns a zero vector of length n.
// Errors: ErrBadLength if n <= 0.
func New(n int) (Vector, error) {
	if n <= 0 {
		return nil, vectorErrorf(opNew, ErrBadLength)
	}

	return make(Vector, n), nil
}

// Filled returns a vector of length n with every component set to value.
func Filled(n int, value float64) (Vector, error) {
	v, err := New(n)
	if err != nil {
		return nil, vectorErrorf(opFill, err)
	}
	for i := range v {
		v[i] = value
	}

	return v, nil
}

// Augment returns a new vector [features..., bias].
// The input slice is copied, never aliased.
func Augment(features []float64, bias float64) Vector {
	out := make(Vector, len(features)+1)
	copy(out, features)
	out[len(features)] = bias

	return out
}

// Clone returns a copy of v. Clone(nil) is nil.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Len returns the number of components.
func (v Vector) Len() int { return len(v) }

// Dot returns the inner product a·b.
//
// Errors:
//   - ErrNilVector if either operand is nil.
//   - ErrDimensionMismatch if len(a) != len(b).
//
// Complexity: O(n).
func Dot(a, b Vector) (float64, error) {
	if err := ValidatePair(a, b); err != nil {
		return 0, vectorErrorf(opDot, err)
	}

	return floats.Dot(a, b), nil
}

// AddScaled performs dst += alpha·s in place.
//
// Errors:
//   - ErrNilVector if either operand is nil.
//   - ErrDimensionMismatch if len(dst) != len(s).
//   - ErrNonFinite if alpha is NaN or ±Inf.
//
// Complexity: O(n), no allocation.
func AddScaled(dst Vector, alpha float64, s Vector) error {
	if err := ValidatePair(dst, s); err != nil {
		return vectorErrorf(opAddScaled, err)
	}
	if isNonFinite(alpha) {
		return vectorErrorf(opAddScaled, ErrNonFinite)
	}
	floats.AddScaled(dst, alpha, s)

	return nil
}

// Scale performs v *= alpha in place.
// Errors: ErrNilVector, ErrNonFinite (alpha).
func Scale(alpha float64, v Vector) error {
	if v == nil {
		return vectorErrorf(opScale, ErrNilVector)
	}
	if isNonFinite(alpha) {
		return vectorErrorf(opScale, ErrNonFinite)
	}
	floats.Scale(alpha, v)

	return nil
}

func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
