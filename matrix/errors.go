// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
//
// Every message is prefixed with "matrix:" for grep-ability. Sentinels are never
// formatted at the definition site; context is attached with matrixErrorf
// ("<Op>: %w") so errors.Is keeps working at every call depth.
//
// Error priority (enforced by validators and tested):
// nil -> shape/index -> NaN/Inf -> sign -> row/vector mass.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a requested shape is non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes or vector lengths.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix or vector argument was used.
	ErrNilMatrix = errors.New("matrix: nil argument")

	// ErrRaggedRows indicates that a [][]float64 literal has rows of different length.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrNegativeEntry signals a negative value where probabilities or
	// likelihoods are required.
	ErrNegativeEntry = errors.New("matrix: negative entry")

	// ErrNotStochastic signals a row (or vector) whose mass differs from 1
	// by more than the configured epsilon.
	ErrNotStochastic = errors.New("matrix: mass does not sum to 1 within eps")
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Callers must gate it with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an error with Dense method context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
