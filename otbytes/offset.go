package otbytes

// Offset is the capability of a scalar to act as a byte distance from some
// agreed base position. The distinguished value zero is reserved to mean
// "absent"; use the nullable variants to decode fields where a zero offset
// marks an optional sub-table as missing.
type Offset interface {
	AbsoluteOffset() int // byte distance from the base position
	IsNull() bool        // reports whether the offset is the reserved zero
}

// Offset16 is an unsigned 16-bit offset wire value.
type Offset16 uint16

func (Offset16) Size() int                { return 2 }
func (Offset16) Decode(b []byte) Offset16 { return Offset16(u16(b)) }
func (o Offset16) AbsoluteOffset() int    { return int(o) }
func (o Offset16) IsNull() bool           { return o == 0 }

// Offset32 is an unsigned 32-bit offset wire value.
type Offset32 uint32

func (Offset32) Size() int                { return 4 }
func (Offset32) Decode(b []byte) Offset32 { return Offset32(u32(b)) }
func (o Offset32) AbsoluteOffset() int    { return int(o) }
func (o Offset32) IsNull() bool           { return o == 0 }

// NullableOffset16 decodes like Offset16 but is meant for optional fields:
// its Offset method maps the reserved zero value to None.
type NullableOffset16 uint16

func (NullableOffset16) Size() int { return 2 }
func (NullableOffset16) Decode(b []byte) NullableOffset16 {
	return NullableOffset16(u16(b))
}

// Offset returns the decoded offset, or None if it was the null offset.
func (n NullableOffset16) Offset() Option[Offset16] {
	if n == 0 {
		return None[Offset16]()
	}
	return Some(Offset16(n))
}

// NullableOffset32 decodes like Offset32 but is meant for optional fields:
// its Offset method maps the reserved zero value to None.
type NullableOffset32 uint32

func (NullableOffset32) Size() int { return 4 }
func (NullableOffset32) Decode(b []byte) NullableOffset32 {
	return NullableOffset32(u32(b))
}

// Offset returns the decoded offset, or None if it was the null offset.
func (n NullableOffset32) Offset() Option[Offset32] {
	if n == 0 {
		return None[Offset32]()
	}
	return Some(Offset32(n))
}

// Offsets is a lazy view of an offset directory: an array of offsets, each
// relative to the start of a base segment. It lets a table's directory be
// walked without resolving every address eagerly.
type Offsets[T interface {
	Scalar[T]
	Offset
}] struct {
	base    buffer
	offsets Array[T]
}

// ViewOffsets couples an array of offsets with the base segment the
// offsets are relative to. base is borrowed, not copied.
func ViewOffsets[T interface {
	Scalar[T]
	Offset
}](offsets Array[T], base []byte) Offsets[T] {
	return Offsets[T]{base: base, offsets: offsets}
}

// Len returns the number of offsets in the directory.
func (o Offsets[T]) Len() int {
	return o.offsets.Len()
}

// Get decodes offset i, or returns None if i is outside the directory.
func (o Offsets[T]) Get(i int) Option[T] {
	return o.offsets.Get(i)
}

// Payload resolves offset i to the bytes it addresses: everything from the
// offset position to the end of the base segment. None is returned for an
// out-of-range index, for the null offset, and for an offset pointing
// outside the base segment.
func (o Offsets[T]) Payload(i int) Option[[]byte] {
	off, ok := o.offsets.Get(i).Unwrap()
	if !ok || off.IsNull() {
		return None[[]byte]()
	}
	b, err := o.base.from(off.AbsoluteOffset())
	if err != nil {
		tracer().Debugf("offset %d of %d points outside its base segment", i, o.Len())
		return None[[]byte]()
	}
	return Some([]byte(b))
}
