// SPDX-License-Identifier: MIT
// Package: matrix
//
// Elementwise comparison helpers.

package matrix

import "math"

const opAllClose = "AllClose"

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances → ErrNaNInf.
//
// Complexity: Time O(r*c), Space O(1). Stops at the first violation.
//
// AI-Hints:
//   - Compare a scaled table against a brute-force reference with atol≈1e-12 and
//     rtol≈1e-9; probabilities near zero need the absolute term.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	var err error
	if rtol, err = normalizeTolerance(rtol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if atol, err = normalizeTolerance(atol); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err = ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !withinTolerance(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil
				}
			}
			return true, nil
		}
	}

	r, c := a.Rows(), a.Cols()
	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !withinTolerance(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// withinTolerance is the scalar predicate behind AllClose.
func withinTolerance(a, b, rtol, atol float64) bool {
	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}
