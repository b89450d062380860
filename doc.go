// Package memo provides memoizing wrappers for single-argument and
// zero-argument functions.
//
// A [Memoizer] wraps a computation and caches its results under a key
// derived from the argument. Build one with [New], [NewKeyed] or
// [NewWithStore]; the key function and the store are both injectable:
//
//	double := memo.New(func(x int) (int, error) { return x * 2, nil })
//	v, err := double.Call(3) // computes
//	v, err = double.Call(3)  // served from the cache
//
//	byID := memo.KeyOf(func(r Request) int { return r.UserID })
//	users := memo.NewKeyed(loadUser, byID)
//
//	shared := memo.NewMapStore[int, *User]()
//	a := memo.NewWithStore(loadUser, byID, shared)
//	b := memo.NewWithStore(loadUserAgain, byID, shared) // sees a's entries
//
// The computation runs at most once per distinct key while it succeeds.
// Errors are not cached, so a failed call is retried in full on the next
// call with an equivalent key. The store only ever grows: there is no
// eviction or expiration.
//
// By default concurrent callers for the same key share a single in-flight
// computation; see [SyncMode] for the alternatives.
//
// [Once] and [OnceValue] cover the zero-argument case with a single slot,
// and [NewStringKeyed] keys by the string form of the argument.
package memo
