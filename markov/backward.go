// SPDX-License-Identifier: MIT
// Package: markov
//
// backward.go — scaled backward recursion.

package markov

import (
	"fmt"

	"github.com/katalvlaran/pattrec/matrix"
	"gonum.org/v1/gonum/floats"
)

const opBackward = "Backward"

// Backward runs the backward recursion scaled by the factors Forward produced
// for the same pX.
//
// Implementation:
//   - Init (t = T-1):
//     Finite:   betaHat[:,T-1] = exit / (c[T]·c[T-1]);
//     Infinite: betaHat[:,T-1] = 1 / c[T-1].
//   - Recurse t = T-2..0:
//     betaHat[:,t] = trans · (pX[:,t+1] ⊙ betaHat[:,t+1]) / c[t].
//
// Behavior highlights:
//   - With aHat and c from Forward, Σ_i aHat[i,t]·betaHat[i,t]·c[t] = 1 for
//     every t; Posterior relies on this.
//
// Errors:
//   - ErrNilChain, ErrDimensionMismatch, ErrInvalidLikelihood (as Forward).
//   - ErrScaleLength: len(scale) ≠ T (Infinite) or T+1 (Finite).
//   - ErrDegenerateScale: some scale[t] is zero, negative or non-finite.
//
// Complexity:
//   - Time O(T·n^2), Space O(T·n).
func (ch *Chain) Backward(scale []float64, pX matrix.Matrix) (*matrix.Dense, error) {
	if ch == nil {
		return nil, markovErrorf(opBackward, ErrNilChain)
	}
	if err := ch.checkObservations(pX); err != nil {
		return nil, markovErrorf(opBackward, err)
	}

	T := pX.Cols()
	want := T
	if ch.kind == Finite {
		want++
	}
	if len(scale) != want {
		return nil, markovErrorf(opBackward,
			fmt.Errorf("len(scale)=%d, want %d for %s chain: %w", len(scale), want, ch.kind, ErrScaleLength))
	}
	for t, c := range scale {
		if err := checkScale(t, c); err != nil {
			return nil, markovErrorf(opBackward, err)
		}
	}

	betaHat, err := matrix.NewDense(ch.n, T)
	if err != nil {
		return nil, markovErrorf(opBackward, err)
	}

	b := make([]float64, ch.n)
	if ch.kind == Finite {
		floats.ScaleTo(b, 1/(scale[T]*scale[T-1]), ch.exit)
	} else {
		for i := range b {
			b[i] = 1 / scale[T-1]
		}
	}
	if err = betaHat.SetCol(T-1, b); err != nil {
		return nil, causeErrorf(opBackward, ErrDegenerateScale, err)
	}

	w := make([]float64, ch.n)
	var px []float64
	for t := T - 2; t >= 0; t-- {
		if px, err = column(pX, t+1); err != nil {
			return nil, markovErrorf(opBackward, err)
		}
		floats.MulTo(w, px, b)
		if b, err = matrix.MatVec(ch.trans, w); err != nil {
			return nil, markovErrorf(opBackward, err)
		}
		floats.Scale(1/scale[t], b)
		if err = betaHat.SetCol(t, b); err != nil {
			return nil, causeErrorf(opBackward, ErrDegenerateScale, err)
		}
	}

	return betaHat, nil
}
