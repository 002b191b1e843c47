package perceptron_test

import (
	"testing"

	"github.com/katalvlaran/perceptron/dataset"
	"github.com/katalvlaran/perceptron/perceptron"
	"github.com/katalvlaran/perceptron/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMisclassified recomputes mistakes independently of the training loop.
func TestMisclassified(t *testing.T) {
	set, err := dataset.Build([][]float64{{1, 1}, {2, 2}}, [][]float64{{-1, -1}, {-2, -2}})
	require.NoError(t, err)

	bad, err := perceptron.Misclassified(vector.Vector{1, 1, 1}, set)
	require.NoError(t, err)
	assert.Empty(t, bad)

	// Zero weights score every sample as a tie.
	bad, err = perceptron.Misclassified(vector.Vector{0, 0, 0}, set)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, bad)

	// w = (0,0,1) favours class 1 only.
	bad, err = perceptron.Misclassified(vector.Vector{0, 0, 1}, set)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, bad)

	_, err = perceptron.Misclassified(vector.Vector{1, 1}, set)
	assert.ErrorIs(t, err, perceptron.ErrInconsistentDimension)
	_, err = perceptron.Misclassified(vector.Vector{1}, nil)
	assert.ErrorIs(t, err, perceptron.ErrEmptySampleSet)
}

// TestMargin returns the minimum score over the set.
func TestMargin(t *testing.T) {
	set, err := dataset.Build([][]float64{{1, 1}, {2, 2}}, [][]float64{{-1, -1}, {-2, -2}})
	require.NoError(t, err)

	m, err := perceptron.Margin(vector.Vector{1, 1, 1}, set)
	require.NoError(t, err)
	assert.Equal(t, 1.0, m)

	_, err = perceptron.Margin(vector.Vector{1}, set)
	assert.ErrorIs(t, err, perceptron.ErrInconsistentDimension)
}

// TestEmptySetAgreement checks that both verification helpers reject sets
// without samples the same way.
func TestEmptySetAgreement(t *testing.T) {
	w := vector.Vector{1, 1, 1}
	sets := map[string]perceptron.Samples{
		"nil interface": nil,
		"nil set":       (*dataset.SampleSet)(nil),
	}
	for name, set := range sets {
		set := set
		t.Run(name, func(t *testing.T) {
			_, err := perceptron.Margin(w, set)
			assert.ErrorIs(t, err, perceptron.ErrEmptySampleSet)

			_, err = perceptron.Misclassified(w, set)
			assert.ErrorIs(t, err, perceptron.ErrEmptySampleSet)
		})
	}
}

// TestClassify maps raw points through the learned hyperplane.
func TestClassify(t *testing.T) {
	w := vector.Vector{1, 1, 1}

	tests := []struct {
		name  string
		point []float64
		want  dataset.Class
	}{
		{"positive side", []float64{3, 3}, dataset.Class1},
		{"negative side", []float64{-3, -3}, dataset.Class2},
		{"on the boundary", []float64{-1, 0}, dataset.Class2},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := perceptron.Classify(w, tc.point)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := perceptron.Classify(w, []float64{1})
	assert.ErrorIs(t, err, perceptron.ErrInconsistentDimension)
}
