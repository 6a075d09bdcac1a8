// Package invcache memoizes matrix inversion: invert once, reuse until the
// matrix changes.
//
// What is inside?
//
//	matrix/            Dense matrices, LU with partial pivoting, Inverse, Mul
//	cache/             Cacheable (matrix + cached inverse) and cache.Inverse
//	internal/config/   scenario YAML loader and zerolog console logger
//	internal/cli/      cobra commands behind the invcache binary
//	cmd/invcache/      the binary itself
//	examples/          runnable programs
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{0.5, -1}, {-0.25, 0.75}})
//	c := cache.New(a)
//	inv, _ := cache.Inverse(c) // computed: [[6 8] [2 4]]
//	inv, _ = cache.Inverse(c)  // served from cache
//	c.SetValue(next)           // cached inverse dropped
//
// Every inversion failure (nil, non-square, NaN/Inf, singular) matches
// matrix.ErrNotInvertible and leaves the cache empty, so the next call
// retries.
//
//	go install github.com/katalvlaran/invcache/cmd/invcache@latest
package invcache
