// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for the kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/invcache/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (At-based) paths.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// FromRows BUILDS a *Dense from literal rows or fails the test.
func FromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// RandWellConditioned RETURNS an n×n matrix with seeded entries in [-1,1)
// plus n on the diagonal. Strictly diagonally dominant, hence invertible.
func RandWellConditioned(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
		}
	}
	for i := 0; i < n; i++ {
		rows[i][i] += float64(n)
	}

	return FromRows(t, rows)
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareClose ASSERTS |got[i,j]-want[i][j]| <= delta for every cell.
func CompareClose(t *testing.T, want [][]float64, got matrix.Matrix, delta float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows(), "rows")
	require.Equal(t, len(want[0]), got.Cols(), "cols")
	for i := range want {
		for j := range want[i] {
			require.InDeltaf(t, want[i][j], MustAt(t, got, i, j), delta, "cell [%d,%d]", i, j)
		}
	}
}

// RequireIdentity ASSERTS a × inv ≈ I within tol (absolute).
func RequireIdentity(t *testing.T, a, inv matrix.Matrix, tol float64) {
	t.Helper()
	ok, err := matrix.CheckInverse(a, inv, 0, tol)
	require.NoError(t, err)
	require.True(t, ok, "A × A⁻¹ is not identity within %g", tol)
}

// AssertErrorIs fails the test unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// ExpectPanic ASSERTS that fn() panics (any value).
func ExpectPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}
