// SPDX-License-Identifier: MIT
// Package: markov

package markov

import "github.com/katalvlaran/pattrec/matrix"

const opPosterior = "Posterior"

// Posterior runs Forward and Backward over pX and returns the per-step state
// posteriors gamma[i,t] = P(state i at t | x_0..x_{T-1}) together with the
// forward result. Each column of gamma sums to 1.
//
// gamma = (aHat ⊙ betaHat) · diag(c[0..T-1]).
//
// Errors: any error of Forward or Backward.
// Complexity: O(T·n^2).
func (ch *Chain) Posterior(pX matrix.Matrix) (*matrix.Dense, *ForwardResult, error) {
	if ch == nil {
		return nil, nil, markovErrorf(opPosterior, ErrNilChain)
	}
	fr, err := ch.Forward(pX)
	if err != nil {
		return nil, nil, markovErrorf(opPosterior, err)
	}
	betaHat, err := ch.Backward(fr.Scale, pX)
	if err != nil {
		return nil, nil, markovErrorf(opPosterior, err)
	}

	prod, err := matrix.Hadamard(fr.AlphaHat, betaHat)
	if err != nil {
		return nil, nil, markovErrorf(opPosterior, err)
	}
	gamma, err := matrix.ScaleCols(prod, fr.Scale[:pX.Cols()])
	if err != nil {
		return nil, nil, markovErrorf(opPosterior, err)
	}

	return gamma.(*matrix.Dense), fr, nil
}
