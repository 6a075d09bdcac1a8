// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

import "math"

const (
	opAllClose  = "AllClose"
	opIdentity  = "IdentityLike"
	opCheckInv  = "CheckInverse"
	opRowsOf    = "RowsOf"
	defaultRTol = 1e-9
	defaultATol = 1e-9
)

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
// Complexity: O(n^2).
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return NewIdentity(m.Rows())
}

// InverseOf is an alias for Inverse with default options.
// Complexity: O(n^3).
func InverseOf(m Matrix) (Matrix, error) { return Inverse(m) }

// RowsOf copies any Matrix into [][]float64 (row-major).
// Complexity: O(r*c).
func RowsOf(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowsOf, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.ToRows(), nil
	}
	buf, err := denseData(m)
	if err != nil {
		return nil, matrixErrorf(opRowsOf, err)
	}
	r, c := m.Rows(), m.Cols()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = buf[i*c : (i+1)*c : (i+1)*c]
	}

	return out, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything. Deterministic.
// Time: O(r*c). Space: O(r*c) for non-Dense operands, O(1) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	ad, err := denseData(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	bd, err := denseData(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for idx := range ad {
		// !(x <= y) also rejects NaN on either side.
		if !(math.Abs(ad[idx]-bd[idx]) <= atol+rtol*math.Abs(bd[idx])) {
			return false, nil
		}
	}

	return true, nil
}

// Equal reports bitwise equality of shape and entries.
// A nil on either side is never equal.
func Equal(a, b Matrix) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	ad, err := denseData(a)
	if err != nil {
		return false
	}
	bd, err := denseData(b)
	if err != nil {
		return false
	}
	for idx := range ad {
		if ad[idx] != bd[idx] {
			return false
		}
	}

	return true
}

// CheckInverse reports whether a × inv ≈ I within the given tolerances.
// Implementation: Mul → IdentityLike → AllClose (compositions only).
// Complexity: O(n^3).
func CheckInverse(a, inv Matrix, rtol, atol float64) (bool, error) {
	prod, err := Mul(a, inv)
	if err != nil {
		return false, matrixErrorf(opCheckInv, err)
	}
	I, err := IdentityLike(prod)
	if err != nil {
		return false, matrixErrorf(opCheckInv, err)
	}

	return AllClose(prod, I, rtol, atol)
}

// DefaultTolerances returns the (rtol, atol) pair used by the CLI verifier.
func DefaultTolerances() (rtol, atol float64) { return defaultRTol, defaultATol }
