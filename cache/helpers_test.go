package cache_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/invcache/matrix"
)

// countingInverter wraps matrix.Inverse and counts invocations.
type countingInverter struct {
	calls atomic.Int64
}

func (ci *countingInverter) Invert(m matrix.Matrix, opts ...matrix.Option) (matrix.Matrix, error) {
	ci.calls.Add(1)
	return matrix.Inverse(m, opts...)
}

func (ci *countingInverter) Calls() int64 { return ci.calls.Load() }

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

func requireRowsInDelta(t *testing.T, want [][]float64, got matrix.Matrix, delta float64) {
	t.Helper()
	rows, err := matrix.RowsOf(got)
	require.NoError(t, err)
	require.Len(t, rows, len(want))
	for i := range want {
		require.Len(t, rows[i], len(want[i]))
		for j := range want[i] {
			require.InDeltaf(t, want[i][j], rows[i][j], delta, "cell [%d,%d]", i, j)
		}
	}
}
