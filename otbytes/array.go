package otbytes

import (
	"cmp"
	"iter"
)

// Array is a lazy view of a byte slice as a sequence of fixed-width
// elements of type T. No element is decoded until it is indexed; indexing
// is pure and repeatable, so independent reads of the same view are safe
// from any number of goroutines.
//
// The logical length is the integer quotient of the slice length by the
// element width. Any remainder bytes are simply inaccessible.
type Array[T Scalar[T]] struct {
	data buffer
}

// ViewArray interprets b as an array of T, without decoding anything.
func ViewArray[T Scalar[T]](b []byte) Array[T] {
	return Array[T]{data: b}
}

// Len returns the number of elements in the view.
func (a Array[T]) Len() int {
	var t T
	return len(a.data) / t.Size()
}

// IsEmpty reports whether the view has no elements.
func (a Array[T]) IsEmpty() bool {
	return a.Len() == 0
}

// At decodes element i without an index check. The caller guarantees
// i < Len(); use Get for untrusted indices.
func (a Array[T]) At(i int) T {
	var t T
	s := trustedReader{data: a.data, offset: i * t.Size()}
	return readTrusted[T](&s)
}

// Get decodes element i, or returns None if i is outside the view.
func (a Array[T]) Get(i int) Option[T] {
	if i < 0 || i >= a.Len() {
		return None[T]()
	}
	return Some(a.At(i))
}

// Last returns the final element of a non-empty view.
func (a Array[T]) Last() Option[T] {
	if a.IsEmpty() {
		return None[T]()
	}
	return Some(a.At(a.Len() - 1))
}

// All returns an iterator over the elements in index order. The sequence is
// finite and restartable; each re-iteration decodes from index 0 again.
func (a Array[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range a.Len() {
			if !yield(a.At(i)) {
				return
			}
		}
	}
}

// BinarySearchBy searches a view whose elements are sorted according to the
// ordering that f encodes, with f(v) < 0, == 0, > 0 meaning v sorts before,
// equal to, or after the target. It returns an element comparing equal, or
// None if no element does.
//
// The search narrows a half-open index span, keeping the half whose
// boundary element compares not-greater than the target, until a single
// candidate remains. It never probes an out-of-range index and tolerates
// empty views.
func (a Array[T]) BinarySearchBy(f func(T) int) Option[T] {
	size := a.Len()
	if size == 0 {
		return None[T]()
	}
	base := 0
	for size > 1 {
		half := size / 2
		mid := base + half
		// mid is in [0, Len()): base <= mid and mid = base + size/2 < base + size
		if f(a.At(mid)) <= 0 {
			base = mid
		}
		size -= half
	}
	v := a.At(base)
	if f(v) == 0 {
		return Some(v)
	}
	return None[T]()
}

// BinarySearch searches a view of ordered scalars, sorted ascending, for an
// element equal to x.
func BinarySearch[T interface {
	Scalar[T]
	cmp.Ordered
}](a Array[T], x T) Option[T] {
	return a.BinarySearchBy(func(v T) int { return cmp.Compare(v, x) })
}
