package config_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/invcache/internal/config"
	"github.com/katalvlaran/invcache/matrix"
)

const validScenario = `
matrix:
  - [0.5, -1]
  - [-0.25, 0.75]
updates:
  - [[0.625, -0.875], [-0.125, 0.375]]
inversion:
  pivot_tolerance: 1e-12
  partial_pivoting: false
`

func TestDecodeScenario_Valid(t *testing.T) {
	t.Parallel()

	s, err := config.DecodeScenario(strings.NewReader(validScenario))
	require.NoError(t, err)

	assert.Equal(t, [][]float64{{0.5, -1}, {-0.25, 0.75}}, s.Matrix)
	require.Len(t, s.Updates, 1)
	assert.Equal(t, [][]float64{{0.625, -0.875}, {-0.125, 0.375}}, s.Updates[0])
	assert.Nil(t, s.Repeat)
	assert.Equal(t, config.DefaultRepeat, s.RepeatCount())
	require.NotNil(t, s.Inversion.PivotTolerance)
	assert.InDelta(t, 1e-12, *s.Inversion.PivotTolerance, 0)
	require.NotNil(t, s.Inversion.PartialPivoting)
	assert.False(t, *s.Inversion.PartialPivoting)
	assert.Nil(t, s.Inversion.ValidateNaNInf)
}

func TestDecodeScenario_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		doc        string
		wantErr    error
		errContain string
	}{
		{name: "empty matrix", doc: "matrix: []\n", wantErr: config.ErrInvalidScenario},
		{name: "negative repeat", doc: "matrix: [[1]]\nrepeat: -1\n", wantErr: config.ErrInvalidScenario},
		{name: "empty update", doc: "matrix: [[1]]\nupdates: [[]]\n", wantErr: config.ErrInvalidScenario},
		{name: "negative tolerance", doc: "matrix: [[1]]\ninversion:\n  pivot_tolerance: -1\n", wantErr: config.ErrInvalidScenario},
		{name: "nan tolerance", doc: "matrix: [[1]]\ninversion:\n  pivot_tolerance: .nan\n", wantErr: config.ErrInvalidScenario},
		{name: "infinite tolerance", doc: "matrix: [[1]]\ninversion:\n  pivot_tolerance: .inf\n", wantErr: config.ErrInvalidScenario},
		{name: "unknown key", doc: "matrix: [[1]]\nrepet: 3\n", errContain: "repet"},
		{name: "malformed", doc: "matrix: [[1, 2]\n", errContain: "decoding scenario"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, err := config.DecodeScenario(strings.NewReader(tc.doc))
			require.Error(t, err)
			assert.Nil(t, s)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
			if tc.errContain != "" {
				assert.Contains(t, err.Error(), tc.errContain)
			}
		})
	}
}

// Shape problems belong to the inversion, not to the loader.
func TestDecodeScenario_NonSquareAccepted(t *testing.T) {
	t.Parallel()

	s, err := config.DecodeScenario(strings.NewReader("matrix: [[1, 2, 3]]\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2, 3}}, s.Matrix)
}

func TestLoadScenario(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validScenario), 0o600))

	s, err := config.LoadScenario(path)
	require.NoError(t, err)
	assert.Len(t, s.Matrix, 2)

	_, err = config.LoadScenario(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInversionOptions(t *testing.T) {
	t.Parallel()

	tol := 0.25
	off := false
	on := true

	assert.Empty(t, config.Inversion{}.Options())

	o := matrix.NewOptions(config.Inversion{
		PivotTolerance:  &tol,
		PartialPivoting: &off,
		ValidateNaNInf:  &off,
	}.Options()...)
	assert.InDelta(t, 0.25, o.PivotTolerance(), 0)
	assert.False(t, o.PartialPivoting())
	assert.False(t, o.ValidateNaNInf())

	o = matrix.NewOptions(config.Inversion{PartialPivoting: &on, ValidateNaNInf: &on}.Options()...)
	assert.True(t, o.PartialPivoting())
	assert.True(t, o.ValidateNaNInf())
	assert.InDelta(t, matrix.DefaultPivotTolerance, o.PivotTolerance(), 0)
}

func TestDecodeScenario_Repeat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want int
	}{
		{"unset", "matrix: [[1]]\n", config.DefaultRepeat},
		{"explicit zero", "matrix: [[1]]\nrepeat: 0\n", 0},
		{"explicit", "matrix: [[1]]\nrepeat: 5\n", 5},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, err := config.DecodeScenario(strings.NewReader(tc.doc))
			require.NoError(t, err)
			assert.Equal(t, tc.want, s.RepeatCount())
		})
	}
}

// Non-finite entries are the matrix package's business; the loader keeps them.
func TestDecodeScenario_NonFiniteEntriesKept(t *testing.T) {
	t.Parallel()

	doc := "matrix: [[.nan]]\ninversion:\n  validate_nan_inf: false\n"
	s, err := config.DecodeScenario(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, s.Matrix, 1)
	assert.True(t, math.IsNaN(s.Matrix[0][0]))

	m, err := matrix.NewDenseFrom(s.Matrix, s.Inversion.Options()...)
	require.NoError(t, err)
	assert.Equal(t, 1, m.Rows())
}
