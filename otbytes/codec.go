package otbytes

// Scalar is the contract for fixed-width, big-endian wire values. A scalar
// type knows its exact width on the wire, which may differ from its
// in-memory width (U24 occupies 3 bytes but is held in a uint32), and
// decodes itself from a byte slice of exactly that width.
//
// Decode must not fail and must not read past Size() bytes. The caller is
// responsible for handing it a slice of exactly Size() bytes; the readers
// and arrays in this package always do.
//
// Scalar is a capability, not a hierarchy: every wire type is an
// independent implementation of this one small contract.
type Scalar[T any] interface {
	Size() int         // exact byte width on the wire
	Decode(b []byte) T // decode from exactly Size() bytes; never fails
}

// TryScalar is the contract for wire values which, beyond their raw bit
// layout, validate semantic content. TryDecode receives exactly Size()
// bytes and reports a validation failure when the bits match no recognized
// variant of the value's domain.
type TryScalar[T any] interface {
	Size() int
	TryDecode(b []byte) (T, error)
}

// DecodeScalar decodes a single scalar from the front of b.
// b must hold at least Size() bytes of T; use a Reader for bounds-checked
// decoding of untrusted data.
func DecodeScalar[T Scalar[T]](b []byte) T {
	var t T
	return t.Decode(b[:t.Size()])
}

// TryDecode decodes and validates a single fallible scalar from the front
// of b. b must hold at least Size() bytes of T.
func TryDecode[T TryScalar[T]](b []byte) (T, error) {
	var t T
	return t.TryDecode(b[:t.Size()])
}

// --- Integer scalars -------------------------------------------------------

// U8 is an unsigned 8-bit wire value.
type U8 uint8

func (U8) Size() int          { return 1 }
func (U8) Decode(b []byte) U8 { return U8(b[0]) }

// I8 is a signed 8-bit wire value.
type I8 int8

func (I8) Size() int          { return 1 }
func (I8) Decode(b []byte) I8 { return I8(b[0]) }

// U16 is an unsigned 16-bit wire value.
type U16 uint16

func (U16) Size() int           { return 2 }
func (U16) Decode(b []byte) U16 { return U16(u16(b)) }

// I16 is a signed 16-bit wire value.
type I16 int16

func (I16) Size() int           { return 2 }
func (I16) Decode(b []byte) I16 { return I16(u16(b)) }

// U24 is an unsigned 24-bit wire value, held in 32 bits.
type U24 uint32

func (U24) Size() int           { return 3 }
func (U24) Decode(b []byte) U24 { return U24(u24(b)) }

// U32 is an unsigned 32-bit wire value.
type U32 uint32

func (U32) Size() int           { return 4 }
func (U32) Decode(b []byte) U32 { return U32(u32(b)) }

// I32 is a signed 32-bit wire value.
type I32 int32

func (I32) Size() int           { return 4 }
func (I32) Decode(b []byte) I32 { return I32(u32(b)) }

// GlyphIndex is a glyph index in a font. On the wire it is an unsigned
// 16-bit value.
type GlyphIndex uint16

func (GlyphIndex) Size() int                  { return 2 }
func (GlyphIndex) Decode(b []byte) GlyphIndex { return GlyphIndex(u16(b)) }

// --- Fixed-point scalars ---------------------------------------------------

// F2Dot14 is a signed 16-bit fixed-point wire value with 14 fractional
// bits, i.e. the raw integer scaled by 1/16384.
type F2Dot14 float32

func (F2Dot14) Size() int { return 2 }
func (F2Dot14) Decode(b []byte) F2Dot14 {
	return F2Dot14(float32(int16(u16(b))) / 16384.0)
}

// Fixed is a signed 32-bit fixed-point wire value with 16 fractional bits,
// i.e. the raw integer scaled by 1/65536.
type Fixed float32

func (Fixed) Size() int { return 4 }
func (Fixed) Decode(b []byte) Fixed {
	return Fixed(float32(int32(u32(b))) / 65536.0)
}

// --- Tag -------------------------------------------------------------------

// Tag is defined by the OpenType spec as an array of four uint8s
// (length = 32 bits) used to identify a table, design-variation axis,
// script, language system, feature, or baseline.
type Tag uint32

func (Tag) Size() int           { return 4 }
func (Tag) Decode(b []byte) Tag { return Tag(u32(b)) }

// MakeTag creates a Tag from 4 bytes, e.g.,
//
//	MakeTag([]byte("loca"))
//
// If b is shorter or longer, it will be silently extended or cut as
// appropriate.
func MakeTag(b []byte) Tag {
	if b == nil {
		b = []byte{0, 0, 0, 0}
	} else if len(b) > 4 {
		b = b[:4]
	} else if len(b) < 4 {
		b = append([]byte{0, 0, 0, 0}[:4-len(b)], b...)
	}
	return Tag(u32(b))
}

// T returns a Tag from a (4-letter) string.
// If t is shorter or longer, it will be silently extended or cut as
// appropriate.
func T(t string) Tag {
	t = (t + "    ")[:4]
	return Tag(u32([]byte(t)))
}

func (t Tag) String() string {
	bytes := []byte{
		byte(t >> 24 & 0xff),
		byte(t >> 16 & 0xff),
		byte(t >> 8 & 0xff),
		byte(t & 0xff),
	}
	return string(bytes)
}
