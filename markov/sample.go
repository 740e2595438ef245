// SPDX-License-Identifier: MIT
// Package: markov
//
// sample.go — random state paths.

package markov

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

const opRand = "Rand"

// categorical is a discrete distribution prepared for inverse-CDF draws.
type categorical struct {
	cum  []float64 // running sums of the probabilities
	last int       // last index with positive mass; round-off fallback
}

// newCategorical precomputes cumulative sums of p.
func newCategorical(p []float64) categorical {
	c := categorical{cum: floats.CumSum(make([]float64, len(p)), p)}
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] > 0 {
			c.last = i
			break
		}
	}

	return c
}

// draw returns the first index whose cumulative mass exceeds u ~ U[0,1).
// Zero-mass indices are never returned.
func (c categorical) draw(r *rand.Rand) int {
	u := r.Float64()
	for i, v := range c.cum {
		if u < v {
			return i
		}
	}

	return c.last
}

// Rand samples a state path of at most tmax steps.
// Implementation:
//   - Draw the first state from q.
//   - Draw each next state from the current state's full row; for Finite
//     chains that row includes END, and drawing END stops the path.
//
// Returns 1-based labels in [1, NStates()]; End() is never included.
// Infinite chains always return exactly tmax states; Finite chains return
// between 1 and tmax.
//
// Errors: ErrNilChain, ErrNeedRandSource (r == nil), ErrBadLength (tmax < 1).
//
// Concurrency: the chain is only read; r is the caller's and must not be
// shared across goroutines.
//
// Complexity: O(tmax·n).
func (ch *Chain) Rand(r *rand.Rand, tmax int) ([]int, error) {
	if ch == nil {
		return nil, markovErrorf(opRand, ErrNilChain)
	}
	if r == nil {
		return nil, markovErrorf(opRand, ErrNeedRandSource)
	}
	if tmax < 1 {
		return nil, markovErrorf(opRand, ErrBadLength)
	}

	path := make([]int, 0, tmax)
	s := ch.start.draw(r)
	path = append(path, s+1)
	for len(path) < tmax {
		s = ch.rows[s].draw(r)
		if s == ch.n {
			break // END
		}
		path = append(path, s+1)
	}

	return path, nil
}
