package perceptron

import (
	"math"

	"github.com/katalvlaran/perceptron/dataset"
	"github.com/katalvlaran/perceptron/vector"
	"gonum.org/v1/gonum/floats"
)

// Samples is the read-only view of an augmented sample set that Train needs.
// *dataset.SampleSet satisfies it.
type Samples interface {
	Len() int
	Dim() int
	At(i int) vector.Vector
}

// Train runs the online perceptron over set.
//
// Algorithm:
//  1. Validate: non-empty set, uniform sample length d+1, MaxIter ≥ 0 and
//     finite Rate ≥ 0, where a zero MaxIter or Rate selects its default.
//  2. Initialize w (length d+1) according to opts.Init.
//  3. For epoch = 1..MaxIter:
//     mistakes = 0
//     for each x in set order:
//     if w·x ≤ 0 { w += Rate·x; mistakes++ }
//     if mistakes == 0 → return Converged(w, epoch).
//  4. Return NotConverged with Epochs = MaxIter.
//
// Errors are returned only for invalid input and are detected before the
// first pass. Non-convergence is reported through Result.Status.
//
// Complexity: O(MaxIter·n·d) time, O(d) extra memory.
func Train(set Samples, opts Options) (Result, error) {
	// Stage 1: validate
	if set == nil || set.Len() == 0 {
		return Result{}, trainErrorf(opTrain, ErrEmptySampleSet)
	}
	if err := normalizeOptions(&opts); err != nil {
		return Result{}, trainErrorf(opTrain, err)
	}
	n, dim := set.Len(), set.Dim()
	if dim < 1 {
		return Result{}, trainErrorf(opTrain, ErrInconsistentDimension)
	}
	for i := 0; i < n; i++ {
		if err := vector.ValidateLen(set.At(i), dim); err != nil {
			return Result{}, trainErrorf(opTrain, ErrInconsistentDimension)
		}
	}

	// Stage 2: initialize
	w, err := initialWeights(dim, &opts)
	if err != nil {
		return Result{}, trainErrorf(opTrain, err)
	}
	res := Result{Initial: w.Clone()}

	// Stage 3: epochs. Lengths are validated, so the unchecked kernels are safe.
	var (
		epoch, i, mistakes int
		dot                float64
		x                  vector.Vector
	)
	for epoch = 1; epoch <= opts.MaxIter; epoch++ {
		mistakes = 0
		for i = 0; i < n; i++ {
			x = set.At(i)
			dot = floats.Dot(w, x)
			if dot <= 0 {
				floats.AddScaled(w, opts.Rate, x)
				mistakes++
				res.Updates++
				if opts.OnUpdate != nil {
					opts.OnUpdate(Update{Epoch: epoch, Index: i, Dot: dot, Weights: w.Clone()})
				}
			}
		}
		if opts.OnEpoch != nil {
			opts.OnEpoch(epoch, mistakes)
		}
		if mistakes == 0 {
			res.Status = Converged
			res.Weights = w
			res.Epochs = epoch
			return res, nil
		}
	}

	// Stage 4: budget exhausted
	res.Status = NotConverged
	res.Epochs = opts.MaxIter
	return res, nil
}

// TrainPoints builds the augmented sample set from two classes and trains on it.
// Dataset errors (ErrInconsistentDimension, ErrEmptySampleSet, ...) are
// returned before any training step runs.
func TrainPoints(class1, class2 [][]float64, opts Options) (Result, error) {
	set, err := dataset.Build(class1, class2)
	if err != nil {
		return Result{}, trainErrorf(opTrainPoints, err)
	}

	return Train(set, opts)
}

// normalizeOptions applies defaults to zero-valued fields and rejects
// nonsensical values.
func normalizeOptions(opts *Options) error {
	switch {
	case opts.MaxIter < 0:
		return ErrBadMaxIter
	case opts.MaxIter == 0:
		opts.MaxIter = DefaultMaxIter
	}
	switch {
	case math.IsNaN(opts.Rate) || math.IsInf(opts.Rate, 0) || opts.Rate < 0:
		return ErrBadRate
	case opts.Rate == 0:
		opts.Rate = DefaultRate
	}

	return nil
}

// initialWeights allocates the starting weight vector of length dim.
func initialWeights(dim int, opts *Options) (vector.Vector, error) {
	switch opts.Init {
	case RandomInit:
		r := resolveRNG(opts)
		w := make(vector.Vector, dim)
		for i := range w {
			w[i] = r.Float64()
		}
		return w, nil
	case ZeroInit:
		return vector.New(dim)
	case OnesInit:
		return vector.Filled(dim, 1)
	case CustomInit:
		if err := vector.ValidateLen(opts.InitialWeights, dim); err != nil {
			return nil, trainErrorf(opInit, ErrInconsistentDimension)
		}
		if err := vector.ValidateFinite(opts.InitialWeights); err != nil {
			return nil, trainErrorf(opInit, ErrBadInit)
		}
		return vector.Vector(opts.InitialWeights).Clone(), nil
	default:
		return nil, trainErrorf(opInit, ErrBadInit)
	}
}
