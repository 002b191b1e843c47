// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrNilVector indicates that a nil vector was passed where data is required.
	ErrNilVector = errors.New("vector: nil vector")

	// ErrDimensionMismatch indicates operands of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrBadLength indicates a requested length that is not positive.
	ErrBadLength = errors.New("vector: length must be > 0")

	// ErrNonFinite signals a NaN or ±Inf component where finite values are required.
	ErrNonFinite = errors.New("vector: NaN or Inf encountered")
)

// Operation tags used when wrapping sentinels.
const (
	opNew       = "New"
	opDot       = "Dot"
	opAddScaled = "AddScaled"
	opScale     = "Scale"
	opFill      = "Fill"
)

// vectorErrorf wraps an underlying error with the given tag.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
