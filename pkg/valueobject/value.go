package valueobject

// Value is a minimal immutable container for a single comparable value.
// Richer wrapper types embed or build on it; on its own it gives a raw
// value identity-by-value semantics.
type Value[T comparable] struct {
	value T
}

// New wraps v. The wrapper is immutable: the only way to change the value
// is to construct a new one.
func New[T comparable](v T) Value[T] {
	return Value[T]{value: v}
}

// Unwrap returns the wrapped value.
func (v Value[T]) Unwrap() T {
	return v.value
}

// Equals reports whether other wraps the same value. Value objects compare
// by their attributes; they have no identity of their own.
func (v Value[T]) Equals(other Value[T]) bool {
	return v.value == other.value
}

// IsZero reports whether the wrapped value is the zero value of T.
func (v Value[T]) IsZero() bool {
	var zero T
	return v.value == zero
}
