// Package perceptron trains a linear binary classifier with the classical
// online (mistake-driven) perceptron rule.
//
// 🚀 What is the perceptron?
//
//	Given augmented, sign-adjusted samples X (see package dataset), find a
//	weight vector w with w·x > 0 for every x ∈ X.  Each pass over X updates
//	w := w + C·x immediately whenever w·x ≤ 0.  A pass with zero updates
//	means the data is separated and training stops.
//
// ✨ Key properties:
//   - ties count as mistakes: w·x == 0 triggers an update
//   - online updates: later samples in a pass see the already-updated w
//   - bounded: at most MaxIter passes, then NotConverged (not an error)
//   - reproducible: the initial weights come from an injectable, seedable
//     *rand.Rand, or from a fixed zero/ones/custom vector
//
// ⚙️ Usage:
//
//	set, err := dataset.Build(class1, class2)
//	if err != nil {
//	  // ErrInconsistentDimension, ErrEmptySampleSet, ...
//	}
//	opts := perceptron.DefaultOptions()
//	opts.Init = perceptron.ZeroInit
//	res, err := perceptron.Train(set, opts)
//	if res.Converged() {
//	  fmt.Println(res.Weights, res.Epochs)
//	}
//
// Performance:
//
//   - Time:   O(MaxIter · n · d)
//   - Memory: O(d) beyond the sample set
//
// The trainer is single-threaded and performs no I/O; hooks (OnUpdate,
// OnEpoch) run synchronously on the caller's goroutine.
package perceptron
