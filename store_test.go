package memo_test

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	memo "github.com/probablyarth/memo-go"

	gocache "github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resettableStore interface {
	memo.Store[string, int]
	Len() int
	Reset()
}

func stores() map[string]func() resettableStore {
	return map[string]func() resettableStore{
		"map":        func() resettableStore { return memo.NewMapStore[string, int]() },
		"concurrent": func() resettableStore { return memo.NewConcurrentStore[string, int]() },
		"gocache":    func() resettableStore { return memo.NewGoCacheStore[int]() },
	}
}

func TestStoreContract(t *testing.T) {
	for name, newStore := range stores() {
		t.Run(name, func(t *testing.T) {
			s := newStore()

			assert.False(t, s.Has("a"))
			_, ok := s.Get("a")
			assert.False(t, ok)

			// A zero value is still a present entry.
			s.Set("a", 0)
			assert.True(t, s.Has("a"))
			v, ok := s.Get("a")
			assert.True(t, ok)
			assert.Equal(t, 0, v)

			s.Set("b", 2)
			assert.Equal(t, 2, s.Len())

			s.Reset()
			assert.False(t, s.Has("a"))
			assert.Equal(t, 0, s.Len())
		})
	}
}

func TestStoreSharedBetweenMemoizers(t *testing.T) {
	for name, newStore := range stores() {
		t.Run(name, func(t *testing.T) {
			shared := newStore()
			var calls atomic.Int32
			length := func(s string) (int, error) {
				calls.Add(1)
				return len(s), nil
			}

			a := memo.NewWithStore[string, string, int](length, memo.Identity[string](), shared)
			b := memo.NewWithStore[string, string, int](length, memo.Identity[string](), shared)

			va, err := a.Call("hello")
			require.NoError(t, err)
			vb, err := b.Call("hello")
			require.NoError(t, err)

			assert.Equal(t, 5, va)
			assert.Equal(t, 5, vb)
			assert.Equal(t, int32(1), calls.Load())
		})
	}
}

func TestStoreConcurrentWrites(t *testing.T) {
	for name, newStore := range stores() {
		t.Run(name, func(t *testing.T) {
			s := newStore()
			m := memo.NewWithStore[string, string, int](func(s string) (int, error) {
				return len(s), nil
			}, memo.Identity[string](), s)

			var wg sync.WaitGroup
			for i := range 100 {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					_, _ = m.Call(fmt.Sprintf("key-%d", i%10))
				}(i)
			}
			wg.Wait()
			assert.Equal(t, 10, s.Len())
		})
	}
}

func TestGoCacheStoreSeparatesValueTypes(t *testing.T) {
	c := gocache.New(gocache.NoExpiration, 0)
	ints := memo.WrapGoCache[int](c)
	strs := memo.WrapGoCache[string](c)

	ints.Set("k", 1)
	assert.True(t, ints.Has("k"))
	assert.False(t, strs.Has("k"))

	_, ok := strs.Get("k")
	assert.False(t, ok)

	strs.Set("k", "one")
	v, ok := ints.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, ints.Len())

	ints.Reset()
	assert.False(t, ints.Has("k"))
	assert.True(t, strs.Has("k"))
}

func TestGoCacheSharedAcrossValueTypes(t *testing.T) {
	c := gocache.New(gocache.NoExpiration, 0)
	var intCalls, strCalls atomic.Int32

	lengths := memo.NewWithStore[string, string, int](func(s string) (int, error) {
		intCalls.Add(1)
		return len(s), nil
	}, memo.Identity[string](), memo.WrapGoCache[int](c))
	echoes := memo.NewWithStore[string, string, string](func(s string) (string, error) {
		strCalls.Add(1)
		return s + s, nil
	}, memo.Identity[string](), memo.WrapGoCache[string](c))

	for range 3 {
		n, err := lengths.Call("k")
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		e, err := echoes.Call("k")
		require.NoError(t, err)
		assert.Equal(t, "kk", e)
	}

	assert.Equal(t, int32(1), intCalls.Load())
	assert.Equal(t, int32(1), strCalls.Load())
	assert.Equal(t, 2, c.ItemCount())
}

func TestWrapGoCacheNil(t *testing.T) {
	assert.Panics(t, func() { memo.WrapGoCache[int](nil) })
}
