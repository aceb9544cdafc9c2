package pure

import "sync"

// Slot is a cache of exactly one (key, value) pair.
//
// A Store with a new key replaces the previous pair unconditionally.
// Keys are compared with ==, so pointer keys match by reference and
// a NaN key never matches. Slot is not safe for concurrent use.
type Slot[K comparable, V any] struct {
	key       K
	value     V
	populated bool
}

// Load returns the remembered value if k equals the remembered key.
func (s *Slot[K, V]) Load(k K) (V, bool) {
	if !s.populated || s.key != k {
		var zero V
		return zero, false
	}
	return s.value, true
}

// Store replaces the remembered pair.
func (s *Slot[K, V]) Store(k K, v V) {
	s.key = k
	s.value = v
	s.populated = true
}

// Populated reports whether the slot has seen at least one Store.
func (s *Slot[K, V]) Populated() bool {
	return s.populated
}

// LockedSlot is a Slot guarded by a mutex.
type LockedSlot[K comparable, V any] struct {
	mu   sync.Mutex
	slot Slot[K, V]
}

// LoadOrCompute returns the remembered value for k, or computes it with fn
// and stores it. The lock is held while fn runs, so concurrent callers
// never observe a half-written slot.
func (s *LockedSlot[K, V]) LoadOrCompute(k K, fn func(K) V) V {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.slot.Load(k); ok {
		return v
	}
	v := fn(k)
	s.slot.Store(k, v)
	return v
}
