package otbytes

// Option represents an optional value. It is the shape in which this
// package reports structural absence: a null offset, an empty glyph range,
// an out-of-range array index. Absence is not a failure; decode failures
// travel as errors instead.
type Option[T any] struct {
	value T
	ok    bool
}

// Some constructs an Option with a value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None constructs an empty Option.
func None[T any]() Option[T] {
	var zero T
	return Option[T]{value: zero, ok: false}
}

// IsSome reports whether the option contains a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Unwrap returns the value and a boolean indicating presence.
// This mirrors the common Go "(value, ok)" pattern.
func (o Option[T]) Unwrap() (T, bool) {
	return o.value, o.ok
}

// MustUnwrap returns the value or panics if None.
// Useful in tests or when invariants are guaranteed.
func (o Option[T]) MustUnwrap() T {
	if !o.ok {
		panic("option: unwrap of None")
	}
	return o.value
}

// Or returns the contained value or a default.
func (o Option[T]) Or(def T) T {
	if o.ok {
		return o.value
	}
	return def
}
