package memo

import "sync"

// Store is the mapping a Memoizer keeps results in. Membership is reported
// by Has independently of the stored value, so zero values are cacheable.
//
// A Memoizer only ever calls Has, Get and Set; it never removes entries.
type Store[K comparable, V any] interface {
	Has(key K) bool
	Get(key K) (V, bool)
	Set(key K, value V)
}

// MapStore is a Store backed by a Go map. It is safe for concurrent use.
// The zero value is not usable; create one with NewMapStore.
type MapStore[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

// NewMapStore returns an empty MapStore.
func NewMapStore[K comparable, V any]() *MapStore[K, V] {
	return &MapStore[K, V]{items: make(map[K]V)}
}

// Has implements Store.
func (s *MapStore[K, V]) Has(key K) bool {
	s.mu.RLock()
	_, ok := s.items[key]
	s.mu.RUnlock()
	return ok
}

// Get implements Store.
func (s *MapStore[K, V]) Get(key K) (V, bool) {
	s.mu.RLock()
	v, ok := s.items[key]
	s.mu.RUnlock()
	return v, ok
}

// Set implements Store.
func (s *MapStore[K, V]) Set(key K, value V) {
	s.mu.Lock()
	s.items[key] = value
	s.mu.Unlock()
}

// Len returns the number of stored entries.
func (s *MapStore[K, V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Reset drops every entry.
func (s *MapStore[K, V]) Reset() {
	s.mu.Lock()
	s.items = make(map[K]V)
	s.mu.Unlock()
}
