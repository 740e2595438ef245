// SPDX-License-Identifier: MIT
// Package: markov
//
// chain.go — construction and read-only accessors.
//
// Validation is eager: once a constructor returns a *Chain, every algorithm
// may assume q is a distribution, trans and exit are non-negative and every
// full row (trans row plus exit entry) sums to 1 within eps.

package markov

import (
	"fmt"

	"github.com/katalvlaran/pattrec/matrix"
)

const (
	opNew         = "New"
	opNewInfinite = "NewInfinite"
	opNewFinite   = "NewFinite"
)

// New builds a chain from an initial distribution q and a transition matrix A.
// Implementation:
//   - Stage 1: shape dispatch. A is n×n → Infinite; n×(n+1) → Finite with the
//     last column holding the exit probabilities. len(q) must equal n.
//   - Stage 2: q and every row of A must be probability distributions.
//   - Stage 3: split A into the square block and the exit vector; precompute
//     the sampler's cumulative rows.
//
// Inputs:
//   - q: length n, non-negative, Σq = 1 ± eps.
//   - A: n×n or n×(n+1), non-negative, rows sum to 1 ± eps. A is copied.
//
// Errors:
//   - ErrShapeMismatch (nil A, len(q) != n, cols ∉ {n, n+1}).
//   - ErrInvalidDistribution wrapping matrix.ErrNegativeEntry,
//     matrix.ErrNotStochastic or matrix.ErrNaNInf.
//
// Complexity:
//   - Time O(n^2), Space O(n^2).
//
// AI-Hints:
//   - Use NewFinite when the exit vector is kept apart from the transitions;
//     New accepts the augmented layout directly.
func New(q []float64, A matrix.Matrix, opts ...Option) (*Chain, error) {
	cfg := newChainConfig(opts...)

	if A == nil {
		return nil, causeErrorf(opNew, ErrShapeMismatch, matrix.ErrNilMatrix)
	}
	n, cols := A.Rows(), A.Cols()
	if len(q) != n {
		return nil, markovErrorf(opNew, fmt.Errorf("len(q)=%d, A has %d rows: %w", len(q), n, ErrShapeMismatch))
	}

	var kind Kind
	switch cols {
	case n:
		kind = Infinite
	case n + 1:
		kind = Finite
	default:
		return nil, markovErrorf(opNew, fmt.Errorf("A is %dx%d: %w", n, cols, ErrShapeMismatch))
	}

	if err := matrix.ValidateDistribution(q, cfg.eps); err != nil {
		return nil, causeErrorf(opNew, ErrInvalidDistribution, fmt.Errorf("q: %w", err))
	}
	if err := matrix.ValidateRowStochastic(A, cfg.eps); err != nil {
		return nil, causeErrorf(opNew, ErrInvalidDistribution, fmt.Errorf("A: %w", err))
	}

	full, err := toDense(A)
	if err != nil {
		return nil, markovErrorf(opNew, err)
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	trans, err := full.Induced(idx, idx)
	if err != nil {
		return nil, markovErrorf(opNew, err)
	}

	ch := &Chain{
		kind:  kind,
		n:     n,
		q:     append([]float64(nil), q...),
		trans: trans,
		eps:   cfg.eps,
		start: newCategorical(q),
		rows:  make([]categorical, n),
	}
	if kind == Finite {
		if ch.exit, err = full.Col(n); err != nil {
			return nil, markovErrorf(opNew, err)
		}
	}

	var row []float64
	for i := 0; i < n; i++ {
		if row, err = full.Row(i); err != nil {
			return nil, markovErrorf(opNew, err)
		}
		ch.rows[i] = newCategorical(row)
	}

	return ch, nil
}

// NewInfinite builds an Infinite chain from q and a square transition matrix.
// Errors: ErrShapeMismatch for a nil or non-square trans; see New.
func NewInfinite(q []float64, trans matrix.Matrix, opts ...Option) (*Chain, error) {
	if err := matrix.ValidateSquare(trans); err != nil {
		return nil, causeErrorf(opNewInfinite, ErrShapeMismatch, err)
	}
	ch, err := New(q, trans, opts...)
	if err != nil {
		return nil, markovErrorf(opNewInfinite, err)
	}

	return ch, nil
}

// NewFinite builds a Finite chain from q, a square transition block and the
// per-state exit probabilities. For every state i,
// Σ_j trans[i,j] + exit[i] must equal 1 within eps.
//
// Errors: ErrShapeMismatch for a nil or non-square trans or len(exit) != n;
// see New for the remaining validation.
//
// Complexity: O(n^2).
func NewFinite(q []float64, trans matrix.Matrix, exit []float64, opts ...Option) (*Chain, error) {
	if err := matrix.ValidateSquare(trans); err != nil {
		return nil, causeErrorf(opNewFinite, ErrShapeMismatch, err)
	}
	n := trans.Rows()
	if err := matrix.ValidateVecLen(exit, n); err != nil {
		return nil, causeErrorf(opNewFinite, ErrShapeMismatch, fmt.Errorf("exit: %w", err))
	}

	A, err := matrix.NewDense(n, n+1)
	if err != nil {
		return nil, markovErrorf(opNewFinite, err)
	}
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, err = trans.At(i, j); err != nil {
				return nil, markovErrorf(opNewFinite, err)
			}
			if err = A.Set(i, j, v); err != nil {
				return nil, causeErrorf(opNewFinite, ErrInvalidDistribution, err)
			}
		}
		if err = A.Set(i, n, exit[i]); err != nil {
			return nil, causeErrorf(opNewFinite, ErrInvalidDistribution, err)
		}
	}

	ch, err := New(q, A, opts...)
	if err != nil {
		return nil, markovErrorf(opNewFinite, err)
	}

	return ch, nil
}

// NStates returns the number of emitting states n.
func (ch *Chain) NStates() int { return ch.n }

// Kind reports whether the chain is Finite or Infinite.
func (ch *Chain) Kind() Kind { return ch.kind }

// IsFinite is shorthand for Kind() == Finite.
func (ch *Chain) IsFinite() bool { return ch.kind == Finite }

// End returns the 1-based label of the END state, n+1. Sampled paths never
// contain it.
func (ch *Chain) End() int { return ch.n + 1 }

// Epsilon returns the tolerance the chain was validated with.
func (ch *Chain) Epsilon() float64 { return ch.eps }

// InitialProb returns a copy of q.
func (ch *Chain) InitialProb() []float64 {
	return append([]float64(nil), ch.q...)
}

// TransitionProb returns a copy of the full transition matrix: n×n for
// Infinite chains, n×(n+1) with the exit column last for Finite chains.
func (ch *Chain) TransitionProb() *matrix.Dense {
	cols := ch.n
	if ch.kind == Finite {
		cols++
	}
	out, _ := matrix.NewDense(ch.n, cols)
	ch.trans.Do(func(i, j int, v float64) bool {
		_ = out.Set(i, j, v)
		return true
	})
	if ch.kind == Finite {
		_ = out.SetCol(ch.n, ch.exit)
	}

	return out
}

// ExitProb returns a copy of the exit vector, or nil for Infinite chains.
func (ch *Chain) ExitProb() []float64 {
	if ch.exit == nil {
		return nil
	}

	return append([]float64(nil), ch.exit...)
}

// toDense copies any Matrix into a fresh *matrix.Dense.
func toDense(m matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.Clone().(*matrix.Dense), nil
	}
	out, err := matrix.NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// column returns column t of an observation matrix.
func column(m matrix.Matrix, t int) ([]float64, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.Col(t)
	}
	out := make([]float64, m.Rows())
	var err error
	for i := range out {
		if out[i], err = m.At(i, t); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// checkObservations validates pX against the chain: non-nil, n rows,
// finite non-negative entries.
func (ch *Chain) checkObservations(pX matrix.Matrix) error {
	if pX == nil {
		return fmt.Errorf("%w: %w", ErrDimensionMismatch, matrix.ErrNilMatrix)
	}
	if pX.Rows() != ch.n {
		return fmt.Errorf("pX has %d rows, chain has %d states: %w", pX.Rows(), ch.n, ErrDimensionMismatch)
	}
	if err := matrix.ValidateNonNegative(pX); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLikelihood, err)
	}

	return nil
}
