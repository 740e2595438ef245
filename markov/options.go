// SPDX-License-Identifier: MIT
// Package: markov
//
// options.go — functional options for chain construction.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors and algorithms never panic on user data.
//   • Defaults are named constants; no globals, no environment lookups.

package markov

import (
	"math"

	"github.com/katalvlaran/pattrec/matrix"
)

// Option customizes chain construction by mutating a chainConfig.
type Option func(*chainConfig)

// chainConfig aggregates all construction knobs.
type chainConfig struct {
	// Absolute tolerance for probability mass checks on q and each row of A.
	eps float64
}

// defaultEpsilon mirrors the matrix package tolerance.
const defaultEpsilon = matrix.DefaultEpsilon

// WithEpsilon sets the tolerance used when checking that q and every row of
// A sum to 1. Panics on negative, NaN or infinite eps.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("markov: WithEpsilon(eps<0 or non-finite)")
	}
	return func(c *chainConfig) {
		c.eps = eps
	}
}

// newChainConfig applies options in order over deterministic defaults.
func newChainConfig(opts ...Option) chainConfig {
	cfg := chainConfig{eps: defaultEpsilon}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
