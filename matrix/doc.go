// Package matrix offers a small dense linear-algebra core built around
// matrix inversion.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only numeric policy.
//   - LU (Doolittle, optional partial pivoting) and Inverse built on top of it.
//   - Mul, AllClose and Equal for verifying results (A × A⁻¹ ≈ I).
//
// Every failure of Inverse matches ErrNotInvertible through errors.Is; the
// concrete cause (ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrSingular) is
// preserved as well.
//
// Inversion is tuned through functional options:
//
//	inv, err := matrix.Inverse(a, matrix.WithPivotTolerance(1e-12))
//
// See the examples in this package and in cache for usage patterns.
package matrix
