// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric substrate used by the pattrec models.
//
// What lives here:
//
//   - Dense: a row-major float64 matrix with bounds-safe At/Set, Row/Col copies,
//     Induced submatrices and deterministic String output.
//   - Kernels: Mul, Transpose, Sub, ScaleCols, Hadamard, MatVec, VecMat, NewIdentity.
//   - Probability validators: ValidateNonNegative, ValidateDistribution,
//     ValidateRowStochastic. Transition matrices, initial distributions and
//     likelihood tables all pass through them before any recursion runs.
//   - AllClose for tolerance-based comparison in tests and callers.
//
// Error policy:
//
//	Every failure is a package sentinel (errors.go) wrapped with the operation
//	name, e.g. "MatVec: ValidateVecLen: matrix: dimension mismatch". Match with
//	errors.Is; never compare strings. Public functions never panic on user input.
//
// Determinism:
//
//	All loops run in fixed i→j (row-major) order; no maps, no randomness.
//	*Dense operands take a flat-slice fast path, any other Matrix falls back to
//	At/Set with identical results.
//
// Example:
//
//	A, _ := matrix.NewDenseFrom([][]float64{{0.9, 0.1}, {0.2, 0.8}})
//	if err := matrix.ValidateRowStochastic(A, matrix.DefaultEpsilon); err != nil {
//		// not a transition matrix
//	}
//	next, _ := matrix.VecMat([]float64{1, 0}, A) // one step of the chain
package matrix
