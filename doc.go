// Package perceptron is a small, dependency-light toolkit for training a
// two-class linear classifier with the classical perceptron rule.
//
// 🚀 What is in the box?
//
//   - vector/     — fixed-size float64 kernel (Dot, AddScaled, Scale, Augment)
//   - dataset/    — two raw classes → augmented, sign-adjusted sample set
//   - perceptron/ — the online training loop, seedable init, verification
//   - parse/      — strict reader for "(x, y) (x, y)" two-line input files
//   - report/     — "%.2g" text rendering of results
//   - plot/       — 2-D scatter + decision line via gonum/plot
//   - logging/    — zap console loggers for the CLI
//   - cmd/perceptron — the command-line front end
//
// ✨ Why?
//
//   - Deterministic: every random draw comes from an injectable, seedable source
//   - Fail-fast: dimension and emptiness errors surface before the first epoch
//   - Honest outcomes: non-convergence is a result, never an error
//
// Quick ASCII example (augmented space, class 2 already negated):
//
//	 x₁=(1,1,1)   x₂=(2,2,1)   x₃=(1,1,−1)   x₄=(2,2,−1)
//	 w₀=(0,0,0) ──x₁ tie──▶ w=(1,1,1) ──pass 2: 0 mistakes──▶ converged
//
//	go install github.com/katalvlaran/perceptron/cmd/perceptron@latest
package perceptron
