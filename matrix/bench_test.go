// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the inversion kernels,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/invcache/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{16, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkM    matrix.Matrix
	sinkPerm []int
)

// benchWellConditioned fills an n×n Dense with seeded values in [-1,1)
// and adds n to the diagonal so every benchmark input is invertible.
func benchWellConditioned(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = rng.Float64()*2 - 1
			if i == j {
				v += float64(n)
			}
			if err = m.Set(i, j, v); err != nil {
				b.Fatal(err)
			}
		}
	}

	return m
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchWellConditioned(b, n, 1337)
			B := benchWellConditioned(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkLU(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := benchWellConditioned(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, U, perm, err := matrix.LU(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM, sinkPerm = U, perm
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		for _, pivot := range []bool{true, false} {
			opt := matrix.WithPartialPivoting()
			if !pivot {
				opt = matrix.WithNoPivoting()
			}
			b.Run(fmt.Sprintf("n=%d/pivot=%t", n, pivot), func(b *testing.B) {
				A := benchWellConditioned(b, n, 99)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					m, err := matrix.Inverse(A, opt)
					if err != nil {
						b.Fatal(err)
					}
					sinkM = m
				}
			})
		}
	}
}

// BenchmarkInverse_At measures the At-based path taken by non-Dense inputs.
func BenchmarkInverse_At(b *testing.B) {
	b.ReportAllocs()
	A := hide{benchWellConditioned(b, 64, 5)}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, err := matrix.Inverse(A)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = m
	}
}
