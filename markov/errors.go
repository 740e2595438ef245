// SPDX-License-Identifier: MIT
// Package markov: sentinel error set.
//
// Every message is prefixed with "markov:". Context is attached through
// markovErrorf ("<Op>: %w"), so callers branch with errors.Is at any depth.
// Where a matrix validator caused the failure, both sentinels are wrapped
// (the markov category first, the matrix detail second).

package markov

import (
	"errors"
	"fmt"
)

var (
	// ErrNilChain is returned when a method is invoked on a nil *Chain.
	ErrNilChain = errors.New("markov: nil chain")

	// ErrShapeMismatch indicates that q and A (or trans and exit) do not
	// describe a chain: len(q) != rows, or cols not in {n, n+1}.
	ErrShapeMismatch = errors.New("markov: inconsistent model shape")

	// ErrInvalidDistribution indicates that q or a row of A is not a
	// probability distribution within the configured epsilon.
	ErrInvalidDistribution = errors.New("markov: invalid probability distribution")

	// ErrDimensionMismatch indicates an observation matrix whose row count
	// differs from the number of states.
	ErrDimensionMismatch = errors.New("markov: observation rows do not match states")

	// ErrInvalidLikelihood indicates a negative, NaN or infinite likelihood.
	ErrInvalidLikelihood = errors.New("markov: invalid observation likelihood")

	// ErrDegenerateScale indicates a zero or non-finite scale factor: the
	// observation sequence has zero probability under the chain.
	ErrDegenerateScale = errors.New("markov: degenerate scale factor")

	// ErrScaleLength indicates a scale vector whose length is neither T
	// (infinite chains) nor T+1 (finite chains).
	ErrScaleLength = errors.New("markov: scale vector length mismatch")

	// ErrBadLength indicates a requested length below 1.
	ErrBadLength = errors.New("markov: length must be >= 1")

	// ErrNeedRandSource indicates that sampling was requested without a *rand.Rand.
	ErrNeedRandSource = errors.New("markov: random source required")
)

// markovErrorf wraps err with an operation tag, preserving the sentinel via %w.
func markovErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// causeErrorf attaches a markov category to a lower-level cause, keeping both
// reachable through errors.Is.
func causeErrorf(op string, category, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, category, cause)
}
