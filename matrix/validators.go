// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and probability checks.
//  - Keep kernels minimal by delegating nil/shape/mass checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Probability checks run O(r*c) in fixed i→j order and stop at the first violation.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Shape → Finite → Sign → Mass),
//    which is also the order in which errors surface.

package matrix

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the absolute tolerance applied to probability mass checks.
const DefaultEpsilon = 1e-9

// unitMass is the total mass of a probability distribution.
const unitMass = 1.0

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil. Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateVecLen ensures x is non-nil and has exactly n elements.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows with non-nil inputs.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateNonNegative checks every entry of m is finite and ≥ 0.
// Implementation:
//   - Stage 1: ValidateNotNil(m).
//   - Stage 2: scan i→j; NaN/±Inf → ErrNaNInf, negative → ErrNegativeEntry.
//
// Errors carry the offending coordinates.
//
// Complexity:
//   - Time O(r*c), Space O(1).
//
// AI-Hints:
//   - Observation likelihood tables (pX) are not normalized; this is their full contract.
func ValidateNonNegative(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateNonNegative", err)
	}
	rows, cols := m.Rows(), m.Cols()

	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateNonNegative", err)
			}
			if err = checkProbabilityCell(v); err != nil {
				return validatorErrorf("ValidateNonNegative", fmt.Errorf("(%d,%d): %w", i, j, err))
			}
		}
	}

	return nil
}

// ValidateDistribution checks that x is a probability vector:
// every entry finite and ≥ 0, and |Σx − 1| ≤ eps.
// Implementation:
//   - Stage 1: reject empty x (ErrDimensionMismatch) and NaN/Inf eps (ErrNaNInf);
//     a negative eps is treated as |eps|.
//   - Stage 2: per-entry sign/finite check in index order.
//   - Stage 3: total-mass check.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrNegativeEntry, ErrNotStochastic.
//
// Complexity:
//   - Time O(n), Space O(1).
func ValidateDistribution(x []float64, eps float64) error {
	if x == nil {
		return validatorErrorf("ValidateDistribution", ErrNilMatrix)
	}
	if len(x) == 0 {
		return validatorErrorf("ValidateDistribution", ErrDimensionMismatch)
	}
	eps, err := normalizeTolerance(eps)
	if err != nil {
		return validatorErrorf("ValidateDistribution", err)
	}
	sum := ZeroSum
	for i, v := range x {
		if err = checkProbabilityCell(v); err != nil {
			return validatorErrorf("ValidateDistribution", fmt.Errorf("[%d]: %w", i, err))
		}
		sum += v
	}
	if math.Abs(sum-unitMass) > eps {
		return validatorErrorf("ValidateDistribution", fmt.Errorf("sum=%g: %w", sum, ErrNotStochastic))
	}

	return nil
}

// ValidateRowStochastic checks that every row of m is a probability distribution.
// Implementation:
//   - Stage 1: ValidateNotNil(m), tolerance check.
//   - Stage 2: for each row i (fixed order): sign/finite scan, then |Σ_j m[i,j] − 1| ≤ eps.
//
// Behavior highlights:
//   - Works for square transition matrices and for n×(n+1) matrices whose last
//     column holds exit probabilities; shape is not constrained here.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf, ErrNegativeEntry, ErrNotStochastic (with row index).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func ValidateRowStochastic(m Matrix, eps float64) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateRowStochastic", err)
	}
	eps, err := normalizeTolerance(eps)
	if err != nil {
		return validatorErrorf("ValidateRowStochastic", err)
	}
	rows, cols := m.Rows(), m.Cols()

	var i, j int
	var v, sum float64
	for i = 0; i < rows; i++ {
		sum = ZeroSum
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateRowStochastic", err)
			}
			if err = checkProbabilityCell(v); err != nil {
				return validatorErrorf("ValidateRowStochastic", fmt.Errorf("(%d,%d): %w", i, j, err))
			}
			sum += v
		}
		if math.Abs(sum-unitMass) > eps {
			return validatorErrorf("ValidateRowStochastic", fmt.Errorf("row %d sum=%g: %w", i, sum, ErrNotStochastic))
		}
	}

	return nil
}

// checkProbabilityCell classifies a single value: finite first, then sign.
func checkProbabilityCell(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}
	if v < 0 {
		return ErrNegativeEntry
	}

	return nil
}

// normalizeTolerance rejects NaN/±Inf and flips a negative tolerance to |eps|.
func normalizeTolerance(eps float64) (float64, error) {
	if math.IsNaN(eps) || math.IsInf(eps, 0) {
		return 0, ErrNaNInf
	}
	if eps < 0 {
		eps = -eps
	}

	return eps, nil
}
