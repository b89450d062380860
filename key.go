package memo

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// KeyFunc derives the cache key for an argument. A returned error is passed
// through to the caller and no computation is attempted.
//
// Keys must equal themselves. A NaN float key never does, so it never hits
// and every call with it adds another store entry.
type KeyFunc[A any, K comparable] func(A) (K, error)

// Identity uses the argument itself as the key. Float arguments that may be
// NaN need a KeyFunc that maps NaN to a stable key.
func Identity[A comparable]() KeyFunc[A, A] {
	return func(arg A) (A, error) {
		return arg, nil
	}
}

// KeyOf adapts an infallible key function.
//
//	byID := memo.KeyOf(func(u User) int { return u.ID })
func KeyOf[A any, K comparable](fn func(A) K) KeyFunc[A, K] {
	if fn == nil {
		return nil
	}
	return func(arg A) (K, error) {
		return fn(arg), nil
	}
}

// StringKey keys by the string form of the argument, using String() for a
// fmt.Stringer and fmt.Sprint otherwise. Distinct arguments that render to
// the same string share one entry.
func StringKey[A any]() KeyFunc[A, string] {
	return func(arg A) (string, error) {
		if stringer, ok := any(arg).(fmt.Stringer); ok {
			return stringer.String(), nil
		}
		return fmt.Sprint(arg), nil
	}
}

// HashKey keys by the xxhash64 of the Go-syntax rendering (%#v) of the
// argument. It lets non-comparable arguments such as slices and maps be
// memoized. Hash collisions are possible and make two arguments share one
// entry.
func HashKey[A any]() KeyFunc[A, uint64] {
	return func(arg A) (uint64, error) {
		return xxhash.Sum64String(fmt.Sprintf("%#v", arg)), nil
	}
}
