package memo

// Pure memoizes an infallible computation keyed by its argument.
//
//	var fib func(int) int
//	fib = memo.Pure(func(n int) int {
//		if n <= 1 {
//			return n
//		}
//		return fib(n-1) + fib(n-2)
//	})
func Pure[A comparable, V any](fn func(A) V, opts ...Option) func(A) V {
	return PureKeyed(fn, func(arg A) A { return arg }, opts...)
}

// PureKeyed memoizes an infallible computation under the key chosen by
// getKey.
func PureKeyed[A any, K comparable, V any](fn func(A) V, getKey func(A) K, opts ...Option) func(A) V {
	if fn == nil {
		panic("memo: nil computation")
	}
	m := NewKeyed(func(arg A) (V, error) {
		return fn(arg), nil
	}, KeyOf(getKey), opts...)
	return func(arg A) V {
		v, _ := m.Call(arg)
		return v
	}
}

// NewStringKeyed memoizes fn keyed by the string form of its argument, see
// StringKey. Distinct arguments with the same string form collide.
func NewStringKeyed[A, V any](fn Func[A, V], opts ...Option) *Memoizer[A, string, V] {
	return NewKeyed(fn, StringKey[A](), opts...)
}
