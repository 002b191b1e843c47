package perceptron

import (
	"math/rand"

	"github.com/katalvlaran/perceptron/vector"
)

// Defaults applied by DefaultOptions and to zero-valued fields.
const (
	// DefaultMaxIter is the epoch budget.
	DefaultMaxIter = 1000

	// DefaultRate is the learning rate C.
	DefaultRate = 1.0

	// DefaultSeed seeds RandomInit when Options.Seed is 0.
	DefaultSeed int64 = 1
)

// InitMode selects how the weight vector is initialized.
//
//   - RandomInit — d+1 independent draws from [0,1) using Options.Rand or Options.Seed.
//   - ZeroInit   — all zeros; the first sample is always a mistake.
//   - OnesInit   — all ones.
//   - CustomInit — a copy of Options.InitialWeights.
type InitMode int

const (
	// RandomInit draws every component uniformly from [0,1).
	RandomInit InitMode = iota

	// ZeroInit starts from the zero vector.
	ZeroInit

	// OnesInit starts from the all-ones vector.
	OnesInit

	// CustomInit starts from Options.InitialWeights.
	CustomInit
)

// String implements fmt.Stringer.
func (m InitMode) String() string {
	switch m {
	case RandomInit:
		return "random"
	case ZeroInit:
		return "zeros"
	case OnesInit:
		return "ones"
	case CustomInit:
		return "custom"
	default:
		return "unknown"
	}
}

// Update describes one mistake-driven weight update.
type Update struct {
	Epoch   int           // 1-based pass number
	Index   int           // sample index within the set
	Dot     float64       // w·x evaluated before the update (≤ 0)
	Weights vector.Vector // copy of w after the update
}

// Options configures Train.
//
// Fields:
//   - MaxIter        — epoch budget; 0 means DefaultMaxIter, negative is an error.
//   - Rate           — learning rate C; 0 means DefaultRate, negative/NaN/Inf is an error.
//   - Init           — initialization mode (RandomInit by default).
//   - Seed           — seed for RandomInit when Rand is nil; 0 selects a fixed default seed.
//   - Rand           — explicit random source; takes precedence over Seed.
//   - InitialWeights — starting vector for CustomInit, length d+1.
//   - OnUpdate       — optional hook called after every update.
//   - OnEpoch        — optional hook called after every pass with its mistake count.
//
// Example:
//
//	opts := DefaultOptions()
//	opts.Init = ZeroInit
//	opts.OnEpoch = func(epoch, mistakes int) { log.Println(epoch, mistakes) }
type Options struct {
	MaxIter        int
	Rate           float64
	Init           InitMode
	Seed           int64
	Rand           *rand.Rand
	InitialWeights []float64
	OnUpdate       func(Update)
	OnEpoch        func(epoch, mistakes int)
}

// DefaultOptions returns MaxIter=1000, Rate=1.0 and random initialization
// from the default seed.
func DefaultOptions() Options {
	return Options{
		MaxIter: DefaultMaxIter,
		Rate:    DefaultRate,
		Init:    RandomInit,
	}
}

// Status is the terminal state of a training run.
type Status int

const (
	// NotConverged means MaxIter passes all contained at least one mistake.
	NotConverged Status = iota

	// Converged means a full pass produced zero mistakes.
	Converged
)

// String implements fmt.Stringer.
func (s Status) String() string {
	if s == Converged {
		return "converged"
	}
	return "not converged"
}

// Result is the outcome of Train.
//
// When Status == Converged, Weights separates every sample and Epochs is the
// 1-based pass in which no mistake occurred. When Status == NotConverged,
// Weights is nil and Epochs equals the exhausted MaxIter.
// Initial always holds the starting weights.
type Result struct {
	Status  Status
	Weights vector.Vector
	Epochs  int
	Initial vector.Vector
	Updates int // total number of updates across all passes
}

// Converged reports whether training separated the data.
func (r Result) Converged() bool { return r.Status == Converged }
