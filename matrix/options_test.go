// SPDX-License-Identifier: MIT
// Package matrix_test: options resolution and panics on nonsense values.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/invcache/matrix"
)

func TestNewOptions_Defaults(t *testing.T) {
	t.Parallel()

	o := matrix.NewOptions()
	require.Equal(t, matrix.DefaultPivotTolerance, o.PivotTolerance())
	require.Equal(t, matrix.DefaultPartialPivoting, o.PartialPivoting())
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
}

func TestNewOptions_LastWriterWins(t *testing.T) {
	t.Parallel()

	o := matrix.NewOptions(
		matrix.WithNoPivoting(),
		matrix.WithPivotTolerance(1e-6),
		matrix.WithPartialPivoting(),
		matrix.WithNoValidateNaNInf(),
		nil, // ignored
	)
	require.Equal(t, 1e-6, o.PivotTolerance())
	require.True(t, o.PartialPivoting())
	require.False(t, o.ValidateNaNInf())

	o = matrix.NewOptions(matrix.WithNoValidateNaNInf(), matrix.WithValidateNaNInf())
	require.True(t, o.ValidateNaNInf())
}

func TestWithPivotTolerance_Panics(t *testing.T) {
	t.Parallel()

	for _, tol := range []float64{-1, math.NaN(), math.Inf(1)} {
		tol := tol
		ExpectPanic(t, func() { _ = matrix.WithPivotTolerance(tol) })
	}
}
