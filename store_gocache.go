package memo

import (
	"fmt"
	"strings"

	gocache "github.com/patrickmn/go-cache"
)

// GoCacheStore is a string-keyed Store on top of a go-cache instance.
// Entries are written without expiration.
//
// One go-cache instance may back stores of different value types. Each
// store namespaces its items by value type, so stores of different types
// never see or overwrite each other's entries.
type GoCacheStore[V any] struct {
	cache  *gocache.Cache
	prefix string
}

// NewGoCacheStore returns a GoCacheStore on a fresh go-cache instance with
// expiration and the cleanup janitor disabled.
func NewGoCacheStore[V any]() *GoCacheStore[V] {
	return WrapGoCache[V](gocache.New(gocache.NoExpiration, 0))
}

// WrapGoCache returns a GoCacheStore on an existing go-cache instance.
func WrapGoCache[V any](cache *gocache.Cache) *GoCacheStore[V] {
	if cache == nil {
		panic("memo: nil go-cache instance")
	}
	// %T of a *V names interface value types too.
	return &GoCacheStore[V]{
		cache:  cache,
		prefix: fmt.Sprintf("%T:", (*V)(nil)),
	}
}

// Has implements Store.
func (s *GoCacheStore[V]) Has(key string) bool {
	_, ok := s.cache.Get(s.prefix + key)
	return ok
}

// Get implements Store.
func (s *GoCacheStore[V]) Get(key string) (V, bool) {
	item, ok := s.cache.Get(s.prefix + key)
	if !ok {
		var zero V
		return zero, false
	}
	v, ok := item.(V)
	return v, ok
}

// Set implements Store.
func (s *GoCacheStore[V]) Set(key string, value V) {
	s.cache.Set(s.prefix+key, value, gocache.NoExpiration)
}

// Len returns the number of entries of this store's value type.
func (s *GoCacheStore[V]) Len() int {
	n := 0
	for k := range s.cache.Items() {
		if strings.HasPrefix(k, s.prefix) {
			n++
		}
	}
	return n
}

// Reset drops every entry of this store's value type. Items of other
// types in the same go-cache instance are kept.
func (s *GoCacheStore[V]) Reset() {
	for k := range s.cache.Items() {
		if strings.HasPrefix(k, s.prefix) {
			s.cache.Delete(k)
		}
	}
}
