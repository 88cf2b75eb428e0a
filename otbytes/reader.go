package otbytes

import (
	"fmt"
	"math"
)

// Reader is a cursor over an untrusted byte buffer. It is the only entry
// point for consuming data whose layout claims have not been verified yet:
// every read validates its byte span against the buffer length before
// decoding and reports a bounds failure instead of decoding anything
// outside the buffer.
//
// The cursor only moves forward. After a failed read the cursor position is
// unspecified; do not keep reading from a Reader that returned an error.
//
// Because a Reader only borrows the caller's buffer, many readers may
// operate over the same bytes concurrently, as long as nobody mutates the
// buffer underneath them.
type Reader struct {
	data   buffer
	offset int
}

// NewReader starts a reader at the beginning of b.
// b is borrowed, not copied; it must stay alive and unmodified while the
// reader and anything read from it are in use.
func NewReader(b []byte) *Reader {
	return &Reader{data: b}
}

// NewReaderAt starts a reader at the given offset into b.
// The offset is validated lazily by the next read.
func NewReaderAt(b []byte, offset int) *Reader {
	return &Reader{data: b, offset: offset}
}

// Offset returns the current cursor position.
func (r *Reader) Offset() int {
	return r.offset
}

// AtEnd reports whether the cursor sits exactly at the end of the buffer.
func (r *Reader) AtEnd() bool {
	return r.offset == len(r.data)
}

// Advance moves the cursor forward by n bytes without decoding. Moving past
// the end of the buffer is not an error by itself; the next read will be.
func (r *Reader) Advance(n int) {
	r.offset += n
}

// Tail returns everything from the current position to the buffer end, or a
// bounds failure if the cursor has already moved past the end.
func (r *Reader) Tail() ([]byte, error) {
	return r.data.from(r.offset)
}

// ReadBytes returns the next n bytes as a sub-slice of the buffer,
// advancing the cursor.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	offset := r.offset
	r.offset += n
	return r.data.view(offset, n)
}

// Read decodes the next scalar of type T, advancing the cursor by its wire
// width.
func Read[T Scalar[T]](r *Reader) (T, error) {
	var t T
	b, err := r.ReadBytes(t.Size())
	if err != nil {
		return t, err
	}
	return t.Decode(b), nil
}

// TryRead decodes and validates the next fallible scalar of type T. It may
// fail for either of the two reasons of this package's failure domain: the
// span crosses the buffer boundary, or the bytes hold no recognized value.
func TryRead[T TryScalar[T]](r *Reader) (T, error) {
	var t T
	b, err := r.ReadBytes(t.Size())
	if err != nil {
		return t, err
	}
	return t.TryDecode(b)
}

// Skip moves the cursor over one scalar of type T without decoding it.
func Skip[T Scalar[T]](r *Reader) {
	var t T
	r.offset += t.Size()
}

// ReadArray reads count elements of type T as a lazy array view spanning
// the next count×width bytes. No element is decoded until the view is
// indexed.
func ReadArray[T Scalar[T]](r *Reader, count int) (Array[T], error) {
	var t T
	if count < 0 {
		return Array[T]{}, validationError("array", fmt.Sprintf("negative element count %d", count))
	}
	span, err := checkedMulInt(count, t.Size())
	if err != nil {
		return Array[T]{}, validationError("array", err.Error())
	}
	b, err := r.ReadBytes(span)
	if err != nil {
		return Array[T]{}, err
	}
	return Array[T]{data: b}, nil
}

// ReadArray16 reads a leading uint16 element count, then the array body.
func ReadArray16[T Scalar[T]](r *Reader) (Array[T], error) {
	count, err := Read[U16](r)
	if err != nil {
		return Array[T]{}, err
	}
	return ReadArray[T](r, int(count))
}

// ReadArray32 reads a leading uint32 element count, then the array body.
func ReadArray32[T Scalar[T]](r *Reader) (Array[T], error) {
	count, err := Read[U32](r)
	if err != nil {
		return Array[T]{}, err
	}
	return ReadArray[T](r, int(count))
}

// checkedMulInt checks for overflow in multiplication of two non-negative
// integers.
func checkedMulInt(a, b int) (int, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a > math.MaxInt/b {
		return 0, fmt.Errorf("integer overflow: %d * %d", a, b)
	}
	return a * b, nil
}
