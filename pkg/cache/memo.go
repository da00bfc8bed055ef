package cache

import "sync"

// Memo is a thread-safe compute-once cache.
// Each key is computed at most once per Memo instance and the stored value is
// never invalidated or evicted afterwards.
type Memo[K comparable, V any] struct {
	values map[K]V
	mu     sync.RWMutex
}

// NewMemo creates an empty memoization cache.
func NewMemo[K comparable, V any]() *Memo[K, V] {
	return &Memo[K, V]{
		values: make(map[K]V),
	}
}

// Get retrieves a previously computed value.
// Returns the value and true if present, zero value and false otherwise.
func (m *Memo[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	return v, ok
}

// GetOrCompute returns the cached value for key, computing and storing it on
// first use. The compute function must be pure: concurrent first callers may
// both invoke it, but only one result is stored and all callers observe the
// same stored value.
func (m *Memo[K, V]) GetOrCompute(key K, compute func() V) V {
	m.mu.RLock()
	if v, ok := m.values[key]; ok {
		m.mu.RUnlock()
		return v
	}
	m.mu.RUnlock()

	// Compute outside the lock so slow computations don't block readers of
	// other keys. Losing the write race only discards a redundant result.
	v := compute()

	m.mu.Lock()
	defer m.mu.Unlock()
	if stored, ok := m.values[key]; ok {
		return stored
	}
	m.values[key] = v
	return v
}

// Len returns the number of cached entries.
func (m *Memo[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}
