package otbytes

import (
	"math"
	"testing"
)

func putU16(b []byte, at int, n uint16) {
	b[at] = byte(n >> 8)
	b[at+1] = byte(n)
}

func putU32(b []byte, at int, n uint32) {
	b[at] = byte(n >> 24)
	b[at+1] = byte(n >> 16)
	b[at+2] = byte(n >> 8)
	b[at+3] = byte(n)
}

func TestScalarSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"U8", U8(0).Size(), 1},
		{"I8", I8(0).Size(), 1},
		{"U16", U16(0).Size(), 2},
		{"I16", I16(0).Size(), 2},
		{"U24", U24(0).Size(), 3},
		{"U32", U32(0).Size(), 4},
		{"I32", I32(0).Size(), 4},
		{"F2Dot14", F2Dot14(0).Size(), 2},
		{"Fixed", Fixed(0).Size(), 4},
		{"Tag", Tag(0).Size(), 4},
		{"GlyphIndex", GlyphIndex(0).Size(), 2},
	}
	for _, tt := range tests {
		if tt.size != tt.want {
			t.Errorf("%s.Size() = %d; want %d", tt.name, tt.size, tt.want)
		}
	}
}

func TestDecodeIntegers(t *testing.T) {
	if v := DecodeScalar[U8]([]byte{0xfe}); v != 0xfe {
		t.Errorf("U8 = %d; want 254", v)
	}
	if v := DecodeScalar[I8]([]byte{0xfe}); v != -2 {
		t.Errorf("I8 = %d; want -2", v)
	}
	if v := DecodeScalar[U16]([]byte{0x12, 0x34}); v != 0x1234 {
		t.Errorf("U16 = %#x; want 0x1234", v)
	}
	if v := DecodeScalar[I16]([]byte{0xff, 0xfe}); v != -2 {
		t.Errorf("I16 = %d; want -2", v)
	}
	if v := DecodeScalar[U24]([]byte{0x01, 0x02, 0x03}); v != 0x010203 {
		t.Errorf("U24 = %#x; want 0x010203", v)
	}
	if v := DecodeScalar[U32]([]byte{0x01, 0x02, 0x03, 0x04}); v != 0x01020304 {
		t.Errorf("U32 = %#x; want 0x01020304", v)
	}
	if v := DecodeScalar[I32]([]byte{0xff, 0xff, 0xff, 0xfe}); v != -2 {
		t.Errorf("I32 = %d; want -2", v)
	}
	if v := DecodeScalar[GlyphIndex]([]byte{0x00, 0x2a}); v != 42 {
		t.Errorf("GlyphIndex = %d; want 42", v)
	}
}

func TestDecodeDeterministic(t *testing.T) {
	b := []byte{0x80, 0x01, 0x7f, 0xff}
	a1 := DecodeScalar[U32](b)
	a2 := DecodeScalar[U32](b)
	if a1 != a2 {
		t.Errorf("decoding the same bytes twice differs: %d != %d", a1, a2)
	}
}

func TestDecodeFixedPoint(t *testing.T) {
	// 0x7000 = 28672/16384, 0xC000 = -16384/16384; both exactly representable
	if v := DecodeScalar[F2Dot14]([]byte{0x70, 0x00}); v != 1.75 {
		t.Errorf("F2Dot14(0x7000) = %v; want 1.75", v)
	}
	if v := DecodeScalar[F2Dot14]([]byte{0xc0, 0x00}); v != -1.0 {
		t.Errorf("F2Dot14(0xC000) = %v; want -1.0", v)
	}
	if v := DecodeScalar[Fixed]([]byte{0x00, 0x01, 0x80, 0x00}); v != 1.5 {
		t.Errorf("Fixed(0x00018000) = %v; want 1.5", v)
	}
	if v := DecodeScalar[Fixed]([]byte{0xff, 0xff, 0x00, 0x00}); v != -1.0 {
		t.Errorf("Fixed(0xFFFF0000) = %v; want -1.0", v)
	}
}

func TestFixedPointRoundTrip(t *testing.T) {
	// encode a representable value, decode it, and expect equality within
	// the type's scale resolution
	for _, want := range []float64{-2.0, -0.5, 0, 0.25, 1.75, 1.9993896484375} {
		raw := int16(math.Round(want * 16384.0))
		b := make([]byte, 2)
		putU16(b, 0, uint16(raw))
		got := float64(DecodeScalar[F2Dot14](b))
		if math.Abs(got-want) > 1.0/16384.0 {
			t.Errorf("F2Dot14 round trip of %v = %v", want, got)
		}
	}
	for _, want := range []float64{-100.5, -1.0, 0, 0.125, 3.75, 1000.25} {
		raw := int32(math.Round(want * 65536.0))
		b := make([]byte, 4)
		putU32(b, 0, uint32(raw))
		got := float64(DecodeScalar[Fixed](b))
		if math.Abs(got-want) > 1.0/65536.0 {
			t.Errorf("Fixed round trip of %v = %v", want, got)
		}
	}
}

func TestTags(t *testing.T) {
	tag := Tag(0x6c6f6361)
	if tag.String() != "loca" {
		t.Errorf("expected tag 0x6c6f6361 to be 'loca', is %s", tag.String())
	}
	tag = MakeTag([]byte("loca"))
	if tag.String() != "loca" {
		t.Errorf("expected tag MakeTag(loca) to be 'loca', is %s", tag.String())
	}
	tag = T("loca")
	if tag.String() != "loca" {
		t.Errorf("expected tag T(loca) to be 'loca', is %s", tag.String())
	}
	if v := DecodeScalar[Tag]([]byte("glyfXYZ")); v != T("glyf") {
		t.Errorf("expected decoded tag 'glyf', is %s", v.String())
	}
}
