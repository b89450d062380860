package memo

import (
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Func is a single-argument computation whose results can be memoized.
type Func[A, V any] func(A) (V, error)

// Memoizer caches the results of a computation under the key derived from
// its argument. Build one per computation with New, NewKeyed or NewWithStore
// and call it through Call or Func.
type Memoizer[A any, K comparable, V any] struct {
	fn     Func[A, V]
	getKey KeyFunc[A, K]
	store  Store[K, V]

	mu    sync.Mutex
	group singleflight.Group

	name     string
	mode     SyncMode
	observer Observer
}

// New memoizes fn using its argument as the cache key. Results are kept in
// a fresh MapStore owned by the returned Memoizer.
func New[A comparable, V any](fn Func[A, V], opts ...Option) *Memoizer[A, A, V] {
	return NewKeyed(fn, Identity[A](), opts...)
}

// NewKeyed memoizes fn using getKey to derive the cache key. Arguments that
// map to the same key are interchangeable: only the first one is computed.
func NewKeyed[A any, K comparable, V any](fn Func[A, V], getKey KeyFunc[A, K], opts ...Option) *Memoizer[A, K, V] {
	return NewWithStore[A, K, V](fn, getKey, NewMapStore[K, V](), opts...)
}

// NewWithStore memoizes fn on a caller-supplied store. The Memoizer borrows
// store; the caller controls its lifetime and may share it between several
// memoizers, which then observe each other's entries.
//
// NewWithStore panics if fn, getKey or store is nil.
func NewWithStore[A any, K comparable, V any](fn Func[A, V], getKey KeyFunc[A, K], store Store[K, V], opts ...Option) *Memoizer[A, K, V] {
	if fn == nil {
		panic("memo: nil computation")
	}
	if getKey == nil {
		panic("memo: nil key function")
	}
	if store == nil {
		panic("memo: nil store")
	}

	s := settings{mode: SyncCoalesce}
	for _, opt := range opts {
		opt(&s)
	}

	return &Memoizer[A, K, V]{
		fn:       fn,
		getKey:   getKey,
		store:    store,
		name:     s.name,
		mode:     s.mode,
		observer: s.buildObserver(),
	}
}

// Call returns the cached result for the key of arg, computing and storing
// it on first occurrence of that key.
//
// Errors from the key function or the computation are returned unchanged
// and nothing is stored, so the next call with an equivalent key computes
// again. Panics propagate the same way.
func (m *Memoizer[A, K, V]) Call(arg A) (V, error) {
	key, err := m.getKey(arg)
	if err != nil {
		m.emitKeyError(err)
		var zero V
		return zero, err
	}

	switch m.mode {
	case SyncMutex:
		m.mu.Lock()
		defer m.mu.Unlock()
		return m.resolve(arg, key)
	case SyncNone:
		return m.resolve(arg, key)
	default:
		// Fast path: already cached.
		if v, ok := m.cached(key); ok {
			m.emit(EventHit, key, nil)
			return v, nil
		}
		return m.coalesce(arg, key)
	}
}

// Func returns Call as a plain function value.
func (m *Memoizer[A, K, V]) Func() Func[A, V] {
	return m.Call
}

// Store returns the store backing m.
func (m *Memoizer[A, K, V]) Store() Store[K, V] {
	return m.store
}

func (m *Memoizer[A, K, V]) resolve(arg A, key K) (V, error) {
	if v, ok := m.cached(key); ok {
		m.emit(EventHit, key, nil)
		return v, nil
	}
	return m.compute(arg, key)
}

func (m *Memoizer[A, K, V]) cached(key K) (V, bool) {
	if !m.store.Has(key) {
		var zero V
		return zero, false
	}
	return m.store.Get(key)
}

func (m *Memoizer[A, K, V]) compute(arg A, key K) (V, error) {
	m.emit(EventMiss, key, nil)

	result, err := m.fn(arg)
	if err != nil {
		m.emit(EventComputeError, key, err)
		var zero V
		return zero, err
	}

	// Present keys are never overwritten.
	if !m.store.Has(key) {
		m.store.Set(key, result)
	}
	if v, ok := m.store.Get(key); ok {
		return v, nil
	}
	return result, nil
}

type flight[K comparable, V any] struct {
	key   K
	value V
}

// coalesce claims key through the singleflight group so that at most one
// computation per key is in flight for this Memoizer.
func (m *Memoizer[A, K, V]) coalesce(arg A, key K) (V, error) {
	executed := false
	res, err, shared := m.group.Do(flightKey(key), func() (any, error) {
		executed = true

		// Double-check: another goroutine may have published while we waited.
		if v, ok := m.cached(key); ok {
			m.emit(EventHit, key, nil)
			return flight[K, V]{key: key, value: v}, nil
		}

		v, err := m.compute(arg, key)
		return flight[K, V]{key: key, value: v}, err
	})

	f := res.(flight[K, V])
	if shared && !executed && f.key != key {
		// Distinct keys rendered to the same flight key; claim our own.
		return m.coalesce(arg, key)
	}
	if err != nil {
		var zero V
		return zero, err
	}
	if shared && !executed {
		m.emit(EventDedup, key, nil)
	}
	return f.value, nil
}

func flightKey[K comparable](key K) string {
	if s, ok := any(key).(string); ok {
		return s
	}
	return fmt.Sprintf("%#v", key)
}

func (m *Memoizer[A, K, V]) emit(event Event, key K, err error) {
	if m.observer == nil {
		return
	}
	m.observer.On(EventData{
		Event:    event,
		Memoizer: m.name,
		Key:      fmt.Sprint(key),
		Err:      err,
	})
}

func (m *Memoizer[A, K, V]) emitKeyError(err error) {
	if m.observer == nil {
		return
	}
	m.observer.On(EventData{
		Event:    EventKeyError,
		Memoizer: m.name,
		Err:      err,
	})
}
