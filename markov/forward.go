// SPDX-License-Identifier: MIT
// Package: markov
//
// forward.go — scaled forward recursion.

package markov

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pattrec/matrix"
	"gonum.org/v1/gonum/floats"
)

const opForward = "Forward"

// Forward runs the scaled forward recursion over an observation likelihood
// matrix pX (n×T, pX[j,t] = P(x_t | state j)).
//
// Implementation:
//   - Stage 0: a = q ⊙ pX[:,0].
//   - Stage t≥1: a = (aHat[:,t-1]ᵀ · trans) ⊙ pX[:,t]. The END column never
//     enters this product.
//   - Each stage: c[t] = Σa, aHat[:,t] = a / c[t].
//   - Finite chains: c[T] = aHat[:,T-1] · exit, the probability of leaving
//     right after the last observation.
//
// Returns:
//   - ForwardResult with AlphaHat (n×T) and Scale (T or T+1 entries).
//     Π Scale is the likelihood of the sequence.
//
// Errors:
//   - ErrNilChain, ErrDimensionMismatch (pX rows ≠ n or nil pX),
//     ErrInvalidLikelihood (negative or non-finite pX entry),
//     ErrDegenerateScale (some c[t] is zero or non-finite; the error names t).
//
// Complexity:
//   - Time O(T·n^2), Space O(T·n).
//
// AI-Hints:
//   - Compare sequences with LogLikelihood; Likelihood underflows quickly.
//   - Feed Scale into Backward unchanged.
func (ch *Chain) Forward(pX matrix.Matrix) (*ForwardResult, error) {
	if ch == nil {
		return nil, markovErrorf(opForward, ErrNilChain)
	}
	if err := ch.checkObservations(pX); err != nil {
		return nil, markovErrorf(opForward, err)
	}

	T := pX.Cols()
	aHat, err := matrix.NewDense(ch.n, T)
	if err != nil {
		return nil, markovErrorf(opForward, err)
	}
	nScale := T
	if ch.kind == Finite {
		nScale++
	}
	scale := make([]float64, nScale)

	a := make([]float64, ch.n)
	var px, pred []float64
	for t := 0; t < T; t++ {
		if px, err = column(pX, t); err != nil {
			return nil, markovErrorf(opForward, err)
		}
		if t == 0 {
			floats.MulTo(a, ch.q, px)
		} else {
			if pred, err = matrix.VecMat(a, ch.trans); err != nil {
				return nil, markovErrorf(opForward, err)
			}
			floats.MulTo(a, pred, px)
		}

		c := floats.Sum(a)
		if err = checkScale(t, c); err != nil {
			return nil, markovErrorf(opForward, err)
		}
		scale[t] = c
		floats.Scale(1/c, a)
		if err = aHat.SetCol(t, a); err != nil {
			return nil, markovErrorf(opForward, err)
		}
	}

	if ch.kind == Finite {
		c := floats.Dot(a, ch.exit)
		if err = checkScale(T, c); err != nil {
			return nil, markovErrorf(opForward, err)
		}
		scale[T] = c
	}

	return &ForwardResult{AlphaHat: aHat, Scale: scale}, nil
}

// checkScale rejects zero, negative and non-finite scale factors.
func checkScale(t int, c float64) error {
	if c <= 0 || math.IsNaN(c) || math.IsInf(c, 0) {
		return fmt.Errorf("c[%d]=%g: %w", t, c, ErrDegenerateScale)
	}

	return nil
}
