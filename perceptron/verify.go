package perceptron

import (
	"math"

	"github.com/katalvlaran/perceptron/dataset"
	"github.com/katalvlaran/perceptron/vector"
)

// Misclassified returns the indices of samples with w·x ≤ 0, recomputed from
// scratch. A converged Result yields an empty slice.
//
// Errors: ErrEmptySampleSet, ErrInconsistentDimension.
func Misclassified(w vector.Vector, set Samples) ([]int, error) {
	if set == nil || set.Len() == 0 {
		return nil, trainErrorf(opVerify, ErrEmptySampleSet)
	}
	var bad []int
	for i := 0; i < set.Len(); i++ {
		dot, err := vector.Dot(w, set.At(i))
		if err != nil {
			return nil, trainErrorf(opVerify, ErrInconsistentDimension)
		}
		if dot <= 0 {
			bad = append(bad, i)
		}
	}

	return bad, nil
}

// Margin returns min over the set of w·x. A positive margin means w separates
// the set.
//
// Errors: ErrEmptySampleSet, ErrInconsistentDimension.
func Margin(w vector.Vector, set Samples) (float64, error) {
	if set == nil || set.Len() == 0 {
		return 0, trainErrorf(opMargin, ErrEmptySampleSet)
	}
	m := math.Inf(1)
	for i := 0; i < set.Len(); i++ {
		dot, err := vector.Dot(w, set.At(i))
		if err != nil {
			return 0, trainErrorf(opMargin, ErrInconsistentDimension)
		}
		m = math.Min(m, dot)
	}

	return m, nil
}

// Classify assigns a raw (non-augmented) point to a class using weights w of
// length len(point)+1. Points on the decision boundary go to Class2, matching
// the trainer's tie-break.
func Classify(w vector.Vector, point []float64) (dataset.Class, error) {
	if err := vector.ValidateLen(w, len(point)+1); err != nil {
		return 0, trainErrorf(opClassify, ErrInconsistentDimension)
	}
	dot, err := vector.Dot(w, vector.Augment(point, dataset.Bias))
	if err != nil {
		return 0, trainErrorf(opClassify, err)
	}
	if dot > 0 {
		return dataset.Class1, nil
	}

	return dataset.Class2, nil
}
