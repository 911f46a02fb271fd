package vmath

// CallScalar overwrites the lanes of y flagged by m with f applied to the
// corresponding lane of x, and returns the result. Lanes not in the mask are
// returned bit-for-bit unchanged, and f is never invoked for them.
//
// This is the fallback primitive for vectorized elementary functions: the
// fast path computes a provisional result for every lane, then splices in a
// trusted scalar reference for the lanes its validity predicate rejected.
// When no lane is flagged, y is returned as-is without copying.
func CallScalar[T Floats](f func(T) T, x, y Vec[T], m Mask[T]) Vec[T] {
	if !m.AnyTrue() {
		return y
	}
	n := min(len(y.data), len(x.data))
	result := make([]T, n)
	copy(result, y.data[:n])
	for i := range n {
		if m.GetBit(i) {
			result[i] = f(x.data[i])
		}
	}
	return Vec[T]{data: result}
}
