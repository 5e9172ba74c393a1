package zipper

// MemoLocation wraps a Location with a cache of indexed-child
// lookups. Nth against a plain Location walks O(n); against a
// MemoLocation each index is walked at most once per cache, after
// which lookups are map hits. Because the engine never mutates a
// tree, a cached entry stays valid for the life of the cache — there
// is no invalidation.
//
// The cache is a plain shared map: wrappers returned by Nth share it
// with the wrapper they came from. It is interior-mutable and not
// synchronized; a MemoLocation is for single-goroutine, sequential
// use. Integrators that need concurrent lookups must add their own
// locking around it.
type MemoLocation[T comparable] struct {
	base  Location[T]
	cache map[int]Location[T]
}

// WithMemo wraps the location as a memoization base with a fresh,
// empty cache. Each call starts an independent cache, so memory is
// bounded by the indices actually queried from this base.
func (l Location[T]) WithMemo() MemoLocation[T] {
	return MemoLocation[T]{
		base:  l,
		cache: make(map[int]Location[T]),
	}
}

// Nth focuses the n'th child of the wrapper's base, consulting the
// cache first. A hit returns a wrapper over the cached location,
// sharing the cache, with no re-walk. A miss computes Nth against the
// base, stores the result under n, and returns a wrapper over it.
// Engine failures are passed through as false and never cached.
func (m MemoLocation[T]) Nth(n int) (MemoLocation[T], bool) {
	if loc, ok := m.cache[n]; ok {
		return MemoLocation[T]{base: loc, cache: m.cache}, true
	}
	loc, ok := m.base.Nth(n)
	if !ok {
		return MemoLocation[T]{}, false
	}
	m.cache[n] = loc
	return MemoLocation[T]{base: loc, cache: m.cache}, true
}

// Location extracts the plain location, usable with every engine
// operation. Locations are immutable values, so this is a copy-free
// unwrap no matter how many wrappers still share the cache.
func (m MemoLocation[T]) Location() Location[T] {
	return m.base
}
