// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with an operation tag via
// matrixErrorf ("Inverse: matrix: singular matrix"); callers still use
// errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> NaN/Inf -> singularity.

// ErrNotInvertible is the umbrella for every reason an inversion can fail.
// ErrSingular always matches it. ErrNilMatrix, ErrNonSquare and ErrNaNInf
// match it only when returned by Inverse or LU, so a nil operand to Mul is
// not reported as "not invertible".
var ErrNotInvertible = errors.New("matrix: not invertible")

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., AllClose on different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrRaggedRows is returned by NewDenseFrom when rows differ in length.
	ErrRaggedRows = errors.New("matrix: rows have different lengths")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (Set, Inverse input and result).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when a pivot at or below the configured tolerance
	// is encountered during LU/Inverse.
	ErrSingular = fmt.Errorf("matrix: singular matrix: %w", ErrNotInvertible)
)

// inversionError marks err as the reason an inversion failed. The message is
// err's own; errors.Is matches both err and ErrNotInvertible.
type inversionError struct{ err error }

func (e inversionError) Error() string   { return e.err.Error() }
func (e inversionError) Unwrap() []error { return []error{e.err, ErrNotInvertible} }

// notInvertible wraps err with the ErrNotInvertible umbrella.
func notInvertible(err error) error {
	if errors.Is(err, ErrNotInvertible) {
		return err
	}

	return inversionError{err: err}
}

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
