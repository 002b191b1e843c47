package perceptron

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/perceptron/dataset"
)

var (
	// ErrEmptySampleSet is returned when Train receives no samples.
	// It is the same sentinel as dataset.ErrEmptySampleSet.
	ErrEmptySampleSet = dataset.ErrEmptySampleSet

	// ErrInconsistentDimension is returned when samples, initial weights or a
	// classified point disagree on dimensionality.
	// It is the same sentinel as dataset.ErrInconsistentDimension.
	ErrInconsistentDimension = dataset.ErrInconsistentDimension

	// ErrBadMaxIter indicates a negative iteration budget.
	ErrBadMaxIter = errors.New("perceptron: max iterations must not be negative")

	// ErrBadRate indicates a learning rate that is negative, NaN or ±Inf.
	ErrBadRate = errors.New("perceptron: learning rate must be finite and not negative")

	// ErrBadInit indicates an unknown InitMode or non-finite custom weights.
	ErrBadInit = errors.New("perceptron: invalid initial weights")
)

const (
	opTrain       = "Train"
	opTrainPoints = "TrainPoints"
	opInit        = "init"
	opClassify    = "Classify"
	opVerify      = "Misclassified"
	opMargin      = "Margin"
)

// trainErrorf wraps an underlying error with the given tag.
func trainErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
