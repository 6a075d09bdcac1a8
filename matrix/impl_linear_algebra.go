// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels behind inversion:
// matrix multiplication, LU factorisation and the inverse itself. All
// functions perform strict fail-fast validation and return clear errors.
//
// Purpose:
//   - Declare canonical kernels used across the package and by the cache.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Kernels run on a flat row-major working buffer; non-Dense inputs are
//     materialised once through At, so every implementation shares one loop.
//   - All kernels use central validators and wrap failures via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul     = "Mul"
	opInverse = "Inverse"
	opLU      = "LU"
)

// denseData returns a row-major copy of m's entries.
// *Dense is copied with a single memmove; anything else goes through At.
// Complexity: O(r*c).
func denseData(m Matrix) ([]float64, error) {
	r, c := m.Rows(), m.Cols()
	buf := make([]float64, r*c)
	if d, ok := m.(*Dense); ok {
		copy(buf, d.data)
		return buf, nil
	}

	var v float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			buf[i*c+j] = v
		}
	}

	return buf, nil
}

// Mul returns the matrix product a × b as a fresh *Dense.
// Implementation:
//   - Stage 1: ValidateMulCompatible (nil → shape).
//   - Stage 2: i→k→j loop over flat buffers (cache friendly, deterministic).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	r, n, c := a.Rows(), a.Cols(), b.Cols()

	ad, err := denseData(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := denseData(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var i, k, j int
	var aik float64
	for i = 0; i < r; i++ {
		for k = 0; k < n; k++ {
			aik = ad[i*n+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < c; j++ {
				out.data[i*c+j] += aik * bd[k*c+j]
			}
		}
	}

	return out, nil
}

// luFactor runs in-place Gaussian elimination on the n×n buffer a.
// On return the strict lower triangle holds the L multipliers (unit diagonal
// implied), the upper triangle holds U, and perm[i] is the source row now at
// row i, so that P·A = L·U.
//
// Implementation:
//   - Stage 1: for each column k choose the pivot row (largest |a[i,k]|, first
//     wins on ties) when pivoting is enabled, otherwise keep row k.
//   - Stage 2: reject |pivot| <= tol with ErrSingular.
//   - Stage 3: swap rows, eliminate below the pivot, store multipliers.
//
// Complexity: O(n^3) time, O(n) extra space.
func luFactor(a []float64, n int, o Options) ([]int, error) {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var i, j, k, p int
	var best, v, f, pivot float64
	for k = 0; k < n; k++ {
		p = k
		if o.pivoting {
			best = math.Abs(a[k*n+k])
			for i = k + 1; i < n; i++ {
				if v = math.Abs(a[i*n+k]); v > best {
					best, p = v, i
				}
			}
		}

		pivot = a[p*n+k]
		if math.Abs(pivot) <= o.pivotTol {
			return nil, fmt.Errorf("pivot %d: %w", k, ErrSingular)
		}

		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}

		for i = k + 1; i < n; i++ {
			f = a[i*n+k] / pivot
			a[i*n+k] = f
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= f * a[k*n+j]
			}
		}
	}

	return perm, nil
}

// prepareSquare runs the shared Inverse/LU validation chain and returns a
// working copy of m. Order: nil → square → finite (when enabled).
// Every failure also matches ErrNotInvertible.
func prepareSquare(m Matrix, o Options) ([]float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, notInvertible(err)
	}
	if o.validateNaNInf {
		if err := ValidateFinite(m); err != nil {
			return nil, notInvertible(err)
		}
	}

	buf, err := denseData(m)
	if err != nil {
		return nil, notInvertible(err)
	}

	return buf, nil
}

// LU computes the factorisation P·A = L·U with unit diagonal on L.
// Implementation:
//   - Stage 1: validate (nil → square → finite) and copy m into a work buffer.
//   - Stage 2: luFactor with the resolved Options (pivoting, tolerance).
//   - Stage 3: split the buffer into fresh L and U.
//
// Returns:
//   - L (unit lower), U (upper), perm where row i of P·A is row perm[i] of A.
//     Without pivoting perm is the identity permutation.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrSingular (all match ErrNotInvertible).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix, opts ...Option) (Matrix, Matrix, []int, error) {
	o := gatherOptions(opts...)
	a, err := prepareSquare(m, o)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}

	n := m.Rows()
	perm, err := luFactor(a, n, o)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}

	L, err := newDenseWithPolicy(n, n, o.validateNaNInf)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	U, err := newDenseWithPolicy(n, n, o.validateNaNInf)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case j < i:
				L.data[i*n+j] = a[i*n+j]
			case j == i:
				L.data[i*n+j] = 1.0
				U.data[i*n+j] = a[i*n+j]
			default:
				U.data[i*n+j] = a[i*n+j]
			}
		}
	}

	return L, U, perm, nil
}

// Inverse returns A⁻¹ as a fresh *Dense.
// Implementation:
//   - Stage 1: validate (nil → square → finite) and copy into a work buffer.
//   - Stage 2: factor P·A = L·U (see luFactor).
//   - Stage 3: for each column c solve L·y = P·e_c (forward) then U·x = y
//     (backward) and write x into column c.
//
// Behavior highlights:
//   - Input is never mutated.
//   - Options are the only tuning surface (pivoting, tolerance, NaN policy).
//   - With NaN/Inf validation on, a result entry that overflows to ±Inf
//     (near-zero pivot) fails with ErrNaNInf instead of being returned.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrSingular; each also matches
//     ErrNotInvertible.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	o := gatherOptions(opts...)
	a, err := prepareSquare(m, o)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := m.Rows()
	perm, err := luFactor(a, n, o)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	inv, err := newDenseWithPolicy(n, n, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k int
		sum, rhs  float64
		y         = make([]float64, n) // forward substitution workspace
		x         = make([]float64, n) // backward substitution workspace
	)
	for col = 0; col < n; col++ {
		// Forward substitution: L*y = P*e_col
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += a[i*n+k] * y[k]
			}
			rhs = 0.0
			if perm[i] == col {
				rhs = 1.0
			}
			y[i] = rhs - sum
		}
		// Backward substitution: U*x = y
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				sum += a[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / a[i*n+i]
		}
		for i = 0; i < n; i++ {
			if o.validateNaNInf && isNonFinite(x[i]) {
				// A tiny but non-zero pivot can overflow the result.
				return nil, matrixErrorf(opInverse,
					notInvertible(fmt.Errorf("result (%d,%d): %w", i, col, ErrNaNInf)))
			}
			if x[i] == 0 {
				x[i] = 0 // drop the sign of -0
			}
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}
