package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrInconsistentDimension indicates feature vectors of differing lengths,
	// within a class or across the two classes.
	ErrInconsistentDimension = errors.New("dataset: inconsistent feature dimension")

	// ErrEmptySampleSet indicates that the two classes together hold no points.
	ErrEmptySampleSet = errors.New("dataset: empty sample set")

	// ErrEmptyFeature indicates a point with zero coordinates.
	ErrEmptyFeature = errors.New("dataset: feature vector has no components")

	// ErrNonFinite indicates a NaN or ±Inf coordinate.
	ErrNonFinite = errors.New("dataset: NaN or Inf coordinate")

	// ErrBadBias indicates an augmented row whose bias component is zero,
	// so its class cannot be recovered.
	ErrBadBias = errors.New("dataset: augmented row has zero bias")
)

const (
	opBuild         = "Build"
	opFromAugmented = "FromAugmented"
)

// datasetErrorf wraps an underlying error with the given tag.
func datasetErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// pointErrorf wraps err with the class and index of the offending point.
func pointErrorf(tag string, class Class, idx int, err error) error {
	return fmt.Errorf("%s: %s point %d: %w", tag, class, idx, err)
}

// rowErrorf wraps err with the index of the offending augmented row.
func rowErrorf(tag string, idx int, err error) error {
	return fmt.Errorf("%s: row %d: %w", tag, idx, err)
}
