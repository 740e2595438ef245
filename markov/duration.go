// SPDX-License-Identifier: MIT
// Package: markov
//
// duration.go — closed-form duration statistics.

package markov

import (
	"math"

	"github.com/katalvlaran/pattrec/matrix"
	"gonum.org/v1/gonum/floats"
)

const (
	opProbDuration      = "ProbDuration"
	opProbStateDuration = "ProbStateDuration"
)

// ProbDuration returns pD with pD[t] = P(the chain emits exactly t+1 states)
// for t = 0..tmax-1.
//
// Implementation (Finite):
//   - pSt = (I − transᵀ)·q, the mass that exits right after the first step,
//     split by the state it exits from.
//   - For each t: pD[t] = Σ pSt, then pSt = transᵀ·pSt.
//
// Infinite chains never terminate; every entry is 0.
// Σ pD ≤ 1 and approaches 1 as tmax grows whenever every state can reach END.
//
// Errors: ErrNilChain, ErrBadLength (tmax < 1).
// Complexity: O(tmax·n^2 + n^2).
func (ch *Chain) ProbDuration(tmax int) ([]float64, error) {
	if ch == nil {
		return nil, markovErrorf(opProbDuration, ErrNilChain)
	}
	if tmax < 1 {
		return nil, markovErrorf(opProbDuration, ErrBadLength)
	}
	pD := make([]float64, tmax)
	if ch.kind == Infinite {
		return pD, nil
	}

	transT, err := matrix.Transpose(ch.trans)
	if err != nil {
		return nil, markovErrorf(opProbDuration, err)
	}
	I, err := matrix.NewIdentity(ch.n)
	if err != nil {
		return nil, markovErrorf(opProbDuration, err)
	}
	leave, err := matrix.Sub(I, transT)
	if err != nil {
		return nil, markovErrorf(opProbDuration, err)
	}
	pSt, err := matrix.MatVec(leave, ch.q)
	if err != nil {
		return nil, markovErrorf(opProbDuration, err)
	}

	for t := 0; t < tmax; t++ {
		pD[t] = floats.Sum(pSt)
		if pSt, err = matrix.MatVec(transT, pSt); err != nil {
			return nil, markovErrorf(opProbDuration, err)
		}
	}

	return pD, nil
}

// ProbStateDuration returns an n×tmax matrix P with
// P[i,t] = P(a visit to state i lasts exactly t+1 steps)
//
//	= a_ii^t · (1 − a_ii),
//
// evaluated as exp(t·log a_ii + log(1 − a_ii)).
//
// Edge cases:
//   - a_ii == 0: every visit lasts one step; P[i,0] = 1, the rest 0.
//   - a_ii == 1: the state is never left; the row is all zeros.
//
// Errors: ErrNilChain, ErrBadLength (tmax < 1).
// Complexity: O(n·tmax).
func (ch *Chain) ProbStateDuration(tmax int) (*matrix.Dense, error) {
	if ch == nil {
		return nil, markovErrorf(opProbStateDuration, ErrNilChain)
	}
	if tmax < 1 {
		return nil, markovErrorf(opProbStateDuration, ErrBadLength)
	}
	P, err := matrix.NewDense(ch.n, tmax)
	if err != nil {
		return nil, markovErrorf(opProbStateDuration, err)
	}

	var aii, logStay, logLeave float64
	for i := 0; i < ch.n; i++ {
		if aii, err = ch.trans.At(i, i); err != nil {
			return nil, markovErrorf(opProbStateDuration, err)
		}
		switch {
		case aii <= 0:
			_ = P.Set(i, 0, 1)
		case aii >= 1:
			// absorbing: no finite duration
		default:
			logStay, logLeave = math.Log(aii), math.Log1p(-aii)
			for t := 0; t < tmax; t++ {
				if err = P.Set(i, t, math.Exp(float64(t)*logStay+logLeave)); err != nil {
					return nil, markovErrorf(opProbStateDuration, err)
				}
			}
		}
	}

	return P, nil
}

// MeanStateDuration returns 1/(1 − a_ii) per state, the expected number of
// consecutive steps spent in state i. Self-absorbing states give +Inf.
// A nil chain yields nil.
func (ch *Chain) MeanStateDuration() []float64 {
	if ch == nil {
		return nil
	}
	d := make([]float64, ch.n)
	for i := range d {
		aii, _ := ch.trans.At(i, i)
		if aii >= 1 {
			d[i] = math.Inf(1)
			continue
		}
		d[i] = 1 / (1 - aii)
	}

	return d
}
