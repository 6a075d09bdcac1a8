// Package cache provides tunable options and hooks for the memoized
// matrix inverse.
package cache

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/invcache/matrix"
)

// Inverter is the inversion routine a Cacheable delegates to on a miss.
// It receives the current value and the options passed to Inverse, untouched.
// The value is the container's own copy and must not be modified.
// The cache trusts its result: a nil error means the returned matrix is the
// inverse of the value it was given.
type Inverter func(m matrix.Matrix, opts ...matrix.Option) (matrix.Matrix, error)

// Option configures a Cacheable via functional arguments.
type Option func(*Options)

// Options holds the collaborators and callbacks of a Cacheable.
type Options struct {
	// Logger receives hit/miss/failure events. Debug level for hits and
	// misses, Warn for failures.
	Logger zerolog.Logger

	// Inverter computes the inverse on a miss.
	Inverter Inverter

	// OnHit is called when Inverse is served from the cache.
	OnHit func(inv matrix.Matrix)

	// OnMiss is called after a successful computation has been stored.
	OnMiss func(inv matrix.Matrix)

	// OnFailure is called when the inverter returns an error.
	OnFailure func(err error)
}

// DefaultOptions returns Options with:
//   - a disabled logger (zerolog.Nop)
//   - matrix.Inverse as the inverter
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Logger:    zerolog.Nop(),
		Inverter:  matrix.Inverse,
		OnHit:     func(matrix.Matrix) {},
		OnMiss:    func(matrix.Matrix) {},
		OnFailure: func(error) {},
	}
}

// WithLogger attaches a logger; events are tagged component=cache.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l.With().Str("component", "cache").Logger()
	}
}

// WithInverter replaces matrix.Inverse as the inversion routine.
func WithInverter(fn Inverter) Option {
	return func(o *Options) {
		if fn != nil {
			o.Inverter = fn
		}
	}
}

// WithOnHit registers a callback to run on every cache hit.
func WithOnHit(fn func(inv matrix.Matrix)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnHit = fn
		}
	}
}

// WithOnMiss registers a callback to run after a computed inverse is stored.
func WithOnMiss(fn func(inv matrix.Matrix)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMiss = fn
		}
	}
}

// WithOnFailure registers a callback to run when inversion fails.
func WithOnFailure(fn func(err error)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFailure = fn
		}
	}
}

// Stats counts Inverse outcomes since construction.
type Stats struct {
	Hits     uint64 // served from cache
	Misses   uint64 // computed and stored
	Failures uint64 // inverter returned an error
}
