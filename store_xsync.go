package memo

import "github.com/puzpuzpuz/xsync/v3"

// ConcurrentStore is a Store backed by a lock-free xsync.MapOf. It suits
// stores shared by many memoizers under heavy parallel reads.
type ConcurrentStore[K comparable, V any] struct {
	m *xsync.MapOf[K, V]
}

// NewConcurrentStore returns an empty ConcurrentStore.
func NewConcurrentStore[K comparable, V any]() *ConcurrentStore[K, V] {
	return &ConcurrentStore[K, V]{m: xsync.NewMapOf[K, V]()}
}

// Has implements Store.
func (s *ConcurrentStore[K, V]) Has(key K) bool {
	_, ok := s.m.Load(key)
	return ok
}

// Get implements Store.
func (s *ConcurrentStore[K, V]) Get(key K) (V, bool) {
	return s.m.Load(key)
}

// Set implements Store.
func (s *ConcurrentStore[K, V]) Set(key K, value V) {
	s.m.Store(key, value)
}

// Len returns the number of stored entries.
func (s *ConcurrentStore[K, V]) Len() int {
	return s.m.Size()
}

// Reset drops every entry.
func (s *ConcurrentStore[K, V]) Reset() {
	s.m.Clear()
}
