// Package dataset turns two classes of raw feature vectors into the augmented,
// sign-adjusted sample set consumed by the perceptron trainer.
//
// Construction:
//
//	class 1 point v  →  [v₀, …, v_{d-1}, 1.0]
//	class 2 point v  →  −[v₀, …, v_{d-1}, 1.0]
//
// After this transformation a single condition w·x > 0 expresses "correctly
// classified" for both classes, and the bias is learned as the last weight.
//
// Validation happens once, at construction time:
//   - ErrInconsistentDimension — feature vectors of differing lengths.
//   - ErrEmptyFeature          — a zero-length feature vector.
//   - ErrNonFinite             — NaN or ±Inf coordinates.
//   - ErrEmptySampleSet        — both classes empty.
//
// A SampleSet is immutable after Build; accessors hand out copies except At,
// which exposes the stored row for the trainer's hot loop.
package dataset
