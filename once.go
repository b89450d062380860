package memo

import "sync"

// Once memoizes a zero-argument computation in a single slot. Presence is
// tracked by a flag, so a zero result is cached like any other. Errors are
// not cached: a failed call runs fn again next time.
func Once[V any](fn func() (V, error)) func() (V, error) {
	if fn == nil {
		panic("memo: nil computation")
	}

	var (
		mu    sync.Mutex
		done  bool
		value V
	)
	return func() (V, error) {
		mu.Lock()
		defer mu.Unlock()

		if !done {
			v, err := fn()
			if err != nil {
				var zero V
				return zero, err
			}
			value, done = v, true
		}
		return value, nil
	}
}

// OnceValue is Once for an infallible computation.
func OnceValue[V any](fn func() V) func() V {
	if fn == nil {
		panic("memo: nil computation")
	}
	once := Once(func() (V, error) {
		return fn(), nil
	})
	return func() V {
		v, _ := once()
		return v
	}
}
