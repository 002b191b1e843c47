// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Single source of truth for length and finiteness checks.
//   - Return plain sentinels; callers wrap them with their own tag.

package vector

// ValidateLen ensures v is non-nil and has exactly n components.
// Time: O(1). Space: O(1).
func ValidateLen(v []float64, n int) error {
	if v == nil {
		return ErrNilVector
	}
	if len(v) != n {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidatePair ensures a and b are non-nil and of equal length.
func ValidatePair(a, b []float64) error {
	if a == nil || b == nil {
		return ErrNilVector
	}
	if len(a) != len(b) {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf components.
// Time: O(n). Space: O(1).
func ValidateFinite(v []float64) error {
	for _, x := range v {
		if isNonFinite(x) {
			return ErrNonFinite
		}
	}

	return nil
}
