// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the inversion kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - The cache package forwards ...Option to Inverse untouched; it never
//     interprets these values.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the largest |pivot| still treated as zero.
	// 0 keeps the exact-zero singularity check.
	DefaultPivotTolerance = 0.0

	// DefaultPartialPivoting enables row exchanges during LU. Without them a
	// zero leading entry (e.g. [[0,1],[1,0]]) is reported as singular even
	// though the matrix is invertible.
	DefaultPartialPivoting = true

	// DefaultValidateNaNInf toggles strict finite-value validation on Set and
	// on Inverse input.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicPivotToleranceInvalid = "matrix: WithPivotTolerance: tol must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	pivotTol       float64 // >= 0; DefaultPivotTolerance
	pivoting       bool    // DefaultPartialPivoting
	validateNaNInf bool    // DefaultValidateNaNInf
}

// PivotTolerance reports the effective singularity threshold.
func (o Options) PivotTolerance() float64 { return o.pivotTol }

// PartialPivoting reports whether LU exchanges rows.
func (o Options) PartialPivoting() bool { return o.pivoting }

// ValidateNaNInf reports whether non-finite input is rejected.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// ---------- Constructors (WithX) ----------

// WithPivotTolerance sets the threshold under which a pivot counts as zero.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Behavior highlights:
//   - |pivot| <= tol ⇒ ErrSingular. With tol=0 only exact zeros fail.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Nearly singular inputs produce huge, meaningless entries under tol=0;
//     a small tol (1e-12 for well-scaled data) turns them into errors.
func WithPivotTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotToleranceInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithPartialPivoting enables row exchanges in LU (default).
func WithPartialPivoting() Option {
	return func(o *Options) { o.pivoting = true }
}

// WithNoPivoting disables row exchanges: plain Doolittle factorisation.
// Any zero leading minor is then reported as ErrSingular.
func WithNoPivoting() Option {
	return func(o *Options) { o.pivoting = false }
}

// WithValidateNaNInf enables strict finite-value validation (default).
// Inverse rejects inputs holding NaN/±Inf with ErrNaNInf; the result
// matrix inherits the policy for Set.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (use with care).
// Non-finite values then flow through the arithmetic unchecked.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewOptions resolves opts on top of the documented defaults.
// Exposed so callers (CLI, cache diagnostics) can report the effective policy.
// Complexity: O(k) for k=len(opts).
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Implementation:
//   - Stage 1: start from Default* constants.
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		pivotTol:       DefaultPivotTolerance,
		pivoting:       DefaultPartialPivoting,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
