package cache

import (
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/invcache/matrix"
)

// Cacheable holds a matrix value together with an optional cached inverse.
//
// Invariant: a present cached inverse is the inverse of the current value.
// SetValue replaces the value and drops the inverse under one lock, so no
// reader can observe the new value next to the old inverse.
//
// The container owns both matrices: values are cloned on the way in and on
// the way out, so callers never share storage with it.
type Cacheable struct {
	mu      sync.RWMutex
	value   matrix.Matrix // nil only when constructed with nil
	inverse matrix.Matrix // nil ⇒ absent
	gen     uint64        // bumped on every SetValue/Invalidate

	opts Options

	hits, misses, failures atomic.Uint64
}

// New returns a Cacheable holding a copy of m with an empty cache.
// A nil m is accepted and yields an uninitialised container whose inversion
// fails with matrix.ErrNilMatrix.
func New(m matrix.Matrix, opts ...Option) *Cacheable {
	o := DefaultOptions()
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return &Cacheable{value: cloneOrNil(m), opts: o}
}

// SetValue replaces the value with a copy of m and clears the cached inverse.
// No shape check is made here; Inverse reports invalid shapes.
func (c *Cacheable) SetValue(m matrix.Matrix) {
	cp := cloneOrNil(m)

	c.mu.Lock()
	c.value = cp
	c.inverse = nil
	c.gen++
	c.mu.Unlock()
}

// Value returns a copy of the current value (nil if uninitialised).
func (c *Cacheable) Value() matrix.Matrix {
	c.mu.RLock()
	v := c.value
	c.mu.RUnlock()

	return cloneOrNil(v)
}

// SetCachedInverse stores a copy of inv as the cached inverse.
// The caller guarantees inv is the inverse of the current value; nothing is
// verified. Passing nil clears the cache.
func (c *Cacheable) SetCachedInverse(inv matrix.Matrix) {
	cp := cloneOrNil(inv)

	c.mu.Lock()
	c.inverse = cp
	c.mu.Unlock()
}

// CachedInverse returns a copy of the cached inverse, or (nil, false) when
// it was never computed or has been invalidated.
func (c *Cacheable) CachedInverse() (matrix.Matrix, bool) {
	c.mu.RLock()
	inv := c.inverse
	c.mu.RUnlock()

	if inv == nil {
		return nil, false
	}

	return inv.Clone(), true
}

// Invalidate drops the cached inverse without touching the value.
func (c *Cacheable) Invalidate() {
	c.mu.Lock()
	c.inverse = nil
	c.gen++
	c.mu.Unlock()
}

// Stats returns a snapshot of the hit/miss/failure counters.
func (c *Cacheable) Stats() Stats {
	return Stats{
		Hits:     c.hits.Load(),
		Misses:   c.misses.Load(),
		Failures: c.failures.Load(),
	}
}

// snapshot reads value, inverse and generation atomically.
// Stored matrices are never mutated in place, so the references stay valid
// after the lock is released.
func (c *Cacheable) snapshot() (value, inverse matrix.Matrix, gen uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.value, c.inverse, c.gen
}

// storeIfCurrent caches inv only if the value is still the one it was
// computed from. Reports whether the store happened.
func (c *Cacheable) storeIfCurrent(gen uint64, inv matrix.Matrix) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen != gen {
		return false
	}
	c.inverse = inv

	return true
}

// cloneOrNil clones m, mapping nil (including a typed nil *Dense) to nil.
func cloneOrNil(m matrix.Matrix) matrix.Matrix {
	if matrix.ValidateNotNil(m) != nil {
		return nil
	}

	return m.Clone()
}
