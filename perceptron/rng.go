// Package perceptron - RNG utilities for weight initialization.
//
// Goals:
//   - Determinism: same seed ⇒ identical initial weights across platforms.
//   - Encapsulation: a single RNG factory; no time-based or global sources.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share Options.Rand across
//     concurrent Train calls.
package perceptron

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass Seed==0.
const defaultRNGSeed = DefaultSeed

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// resolveRNG picks Options.Rand when set, otherwise a seeded stream.
func resolveRNG(opts *Options) *rand.Rand {
	if opts.Rand != nil {
		return opts.Rand
	}
	return rngFromSeed(opts.Seed)
}
