// SPDX-License-Identifier: MIT
// Package markov: Kind, Chain and ForwardResult.

package markov

import (
	"math"

	"github.com/katalvlaran/pattrec/matrix"
	"gonum.org/v1/gonum/floats"
)

// Kind tags the two chain variants.
//
//   - Infinite — no terminal state; the transition matrix is n×n.
//   - Finite   — an absorbing END state follows the last emitting state;
//     each state carries an exit probability next to its n transitions.
type Kind int

const (
	// Infinite chains run for as long as observations are supplied.
	Infinite Kind = iota

	// Finite chains terminate through the END state.
	Finite
)

// String returns "infinite" or "finite".
func (k Kind) String() string {
	switch k {
	case Infinite:
		return "infinite"
	case Finite:
		return "finite"
	default:
		return "unknown"
	}
}

// Chain is an immutable, validated discrete first-order Markov chain.
//
// Storage:
//   - q     — initial distribution over the n emitting states.
//   - trans — n×n transition block between emitting states.
//   - exit  — per-state END probability (Finite only; nil for Infinite).
//   - rows  — cumulative row distributions used by the sampler; row i
//     spans n columns (Infinite) or n+1 columns (Finite, END last).
//
// A *Chain is safe for concurrent use: no method mutates it.
type Chain struct {
	kind  Kind
	n     int
	q     []float64
	trans *matrix.Dense
	exit  []float64
	start categorical
	rows  []categorical
	eps   float64
}

// ForwardResult holds the scaled forward table.
//
//   - AlphaHat is n×T; column t is P(state at t | x_0..x_t), summing to 1.
//   - Scale has T entries (Infinite) or T+1 entries (Finite); the extra
//     entry is the probability of exiting after the last observation.
//
// The product of Scale equals the likelihood of the observation sequence.
type ForwardResult struct {
	AlphaHat *matrix.Dense
	Scale    []float64
}

// LogLikelihood returns Σ log Scale[t], the log-probability of the sequence.
func (r *ForwardResult) LogLikelihood() float64 {
	ll := 0.0
	for _, c := range r.Scale {
		ll += math.Log(c)
	}

	return ll
}

// Likelihood returns Π Scale[t]. It underflows to 0 for long sequences;
// prefer LogLikelihood there.
func (r *ForwardResult) Likelihood() float64 {
	return floats.Prod(r.Scale)
}
