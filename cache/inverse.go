package cache

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/invcache/matrix"
)

var (
	// ErrNilCacheable is returned by Inverse when called with a nil container.
	ErrNilCacheable = errors.New("cache: nil cacheable")

	// ErrNilResult is returned when a custom Inverter reports success
	// without a matrix. Nothing is cached.
	ErrNilResult = errors.New("cache: inverter returned nil matrix")
)

// Inverse returns the inverse of c's value, computing it only on a miss.
//
//  1. A cached inverse is returned as is; OnHit fires and a debug event
//     "inverse served from cache" is logged. The inverter is not called.
//  2. Otherwise the inverter runs on the current value with opts passed
//     through unchanged. On success the result is cached (unless the value
//     changed meanwhile), OnMiss fires and it is returned.
//  3. An inverter error is returned unchanged and nothing is cached, so a
//     later call tries again.
//
// The returned matrix is a copy; mutating it does not affect the cache.
func Inverse(c *Cacheable, opts ...matrix.Option) (matrix.Matrix, error) {
	if c == nil {
		return nil, ErrNilCacheable
	}

	value, cached, gen := c.snapshot()
	if cached != nil {
		c.hits.Add(1)
		out := cached.Clone()
		logEvent(c.opts.Logger.Debug(), out, gen).Msg("inverse served from cache")
		c.opts.OnHit(out)

		return out, nil
	}

	inv, err := c.opts.Inverter(value, opts...)
	if err == nil && matrix.ValidateNotNil(inv) != nil {
		err = ErrNilResult
	}
	if err != nil {
		c.failures.Add(1)
		c.opts.Logger.Warn().Err(err).Uint64("generation", gen).Msg("inverse computation failed")
		c.opts.OnFailure(err)

		return nil, err
	}

	c.misses.Add(1)
	stored := c.storeIfCurrent(gen, inv)
	out := inv.Clone()
	logEvent(c.opts.Logger.Debug(), out, gen).Bool("stored", stored).Msg("inverse computed")
	c.opts.OnMiss(out)

	return out, nil
}

func logEvent(e *zerolog.Event, inv matrix.Matrix, gen uint64) *zerolog.Event {
	return e.Int("rows", inv.Rows()).Int("cols", inv.Cols()).Uint64("generation", gen)
}
