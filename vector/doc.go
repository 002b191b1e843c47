// SPDX-License-Identifier: MIT

// Package vector is the minimal fixed-size numeric vector kernel used by the
// perceptron trainer.
//
// 🚀 What is in here?
//
//	Only the handful of operations an online linear learner needs:
//	  • Dot        — inner product of two equal-length vectors
//	  • AddScaled  — in-place dst += alpha·s (the perceptron update)
//	  • Scale      — in-place v *= alpha (class negation)
//	  • Augment    — append a constant bias component
//	  • Clone      — defensive copy for values handed back to callers
//
// ✨ Guarantees:
//   - Every public operation validates lengths and returns a sentinel error
//     (ErrNilVector, ErrDimensionMismatch, ErrNonFinite) instead of panicking.
//   - Arithmetic is delegated to gonum.org/v1/gonum/floats after validation.
//   - No hidden allocations: only Augment and Clone allocate.
//
// This is not a tensor library; it is deliberately one-dimensional.
package vector
