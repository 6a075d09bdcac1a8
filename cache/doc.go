// Package cache memoizes matrix inversion for a single mutable matrix.
//
// A Cacheable holds a matrix and, once computed, its inverse. Inverse
// reads through that slot: the first call computes and stores the inverse,
// later calls return the stored copy until SetValue (or Invalidate) clears it.
//
//	c := cache.New(a, cache.WithLogger(logger))
//	inv, err := cache.Inverse(c) // computed
//	inv, err = cache.Inverse(c)  // served from cache
//	c.SetValue(b)                // cache cleared
//	inv, err = cache.Inverse(c)  // computed again
//
// The slot has two states, absent and populated:
//
//	absent    --Inverse ok-->   populated
//	populated --SetValue-->     absent
//	populated --Inverse-->      populated (hit)
//	absent    --Inverse err-->  absent
//
// A Cacheable is safe for concurrent use. A value change racing with a
// computation discards the computed result instead of caching a stale inverse.
package cache
