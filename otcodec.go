package otcodec

import (
	"fmt"

	"github.com/npillmayer/otcodec/otbytes"
	"github.com/npillmayer/otcodec/otloca"
)

// errFontFormat produces user level errors for font parsing.
func errFontFormat(message string) error {
	return fmt.Errorf("OpenType font format: %s", message)
}

// RawTable locates a top-level table in an SFNT byte stream and returns its
// raw bytes, without decoding any of its content. The returned slice is a
// view into font, not a copy.
//
// An absent table is not an error: fonts legitimately omit most tables.
// Errors are reserved for a font whose table directory itself cannot be
// read.
func RawTable(font []byte, tag otbytes.Tag) (otbytes.Option[[]byte], error) {
	none := otbytes.None[[]byte]()
	r := otbytes.NewReader(font)
	fontType, err := otbytes.Read[otbytes.U32](r)
	if err != nil {
		return none, err
	}
	if !(fontType == 0x4f54544f || // OTTO
		fontType == 0x00010000 || // TrueType
		fontType == 0x74727565) { // true
		return none, errFontFormat(fmt.Sprintf("font type not supported: %x", uint32(fontType)))
	}
	tableCount, err := otbytes.Read[otbytes.U16](r)
	if err != nil {
		return none, err
	}
	r.Advance(6) // searchRange, entrySelector, rangeShift
	// "The Offset Table is followed immediately by the Table Record entries …
	// sorted in ascending order by tag", 16 bytes each.
	for range int(tableCount) {
		recTag, err := otbytes.Read[otbytes.Tag](r)
		if err != nil {
			return none, err
		}
		otbytes.Skip[otbytes.U32](r) // checksum
		offset, err := otbytes.Read[otbytes.Offset32](r)
		if err != nil {
			return none, err
		}
		length, err := otbytes.Read[otbytes.U32](r)
		if err != nil {
			return none, err
		}
		if recTag != tag {
			continue
		}
		tracer().Debugf("found table %s at offset %d, %d bytes", tag, offset, length)
		body := otbytes.NewReaderAt(font, offset.AbsoluteOffset())
		b, err := body.ReadBytes(int(length))
		if err != nil {
			return none, err
		}
		return otbytes.Some(b), nil
	}
	return none, nil
}

// GlyphOutline returns the raw 'glyf' bytes of a single glyph's outline.
// It resolves the glyph's byte range through tables head, maxp and loca and
// slices table glyf accordingly. The returned bytes are a view into font.
//
// Absence means the glyph has no outline or cannot be addressed (see
// otloca.GlyphRange); errors mean the font is missing one of the four
// involved tables or a table is too short for its declared content.
func GlyphOutline(font []byte, glyphID otbytes.GlyphIndex) (otbytes.Option[[]byte], error) {
	none := otbytes.None[[]byte]()
	head, err := requireTable(font, "head")
	if err != nil {
		return none, err
	}
	format, err := otloca.ReadIndexToLocFormat(head)
	if err != nil {
		return none, err
	}
	maxp, err := requireTable(font, "maxp")
	if err != nil {
		return none, err
	}
	numGlyphs, err := otloca.ReadNumGlyphs(maxp)
	if err != nil {
		return none, err
	}
	loca, err := requireTable(font, "loca")
	if err != nil {
		return none, err
	}
	rng, err := otloca.GlyphRange(glyphID, numGlyphs, format, loca)
	if err != nil {
		return none, err
	}
	r, ok := rng.Unwrap()
	if !ok {
		return none, nil
	}
	glyf, err := requireTable(font, "glyf")
	if err != nil {
		return none, err
	}
	outline := otbytes.NewReaderAt(glyf, r.Start)
	b, err := outline.ReadBytes(r.Len())
	if err != nil {
		return none, err
	}
	return otbytes.Some(b), nil
}

// GlyphOutline returns the raw outline bytes of one of the font's glyphs,
// see the package-level function of the same name.
func (f *ScalableFont) GlyphOutline(glyphID otbytes.GlyphIndex) (otbytes.Option[[]byte], error) {
	if f == nil {
		return otbytes.None[[]byte](), errFontFormat("no font data")
	}
	return GlyphOutline(f.Binary, glyphID)
}

// requireTable is RawTable for tables a caller cannot do without.
func requireTable(font []byte, tag string) ([]byte, error) {
	b, err := RawTable(font, otbytes.T(tag))
	if err != nil {
		return nil, err
	}
	table, ok := b.Unwrap()
	if !ok {
		return nil, errFontFormat(fmt.Sprintf("font has no '%s' table", tag))
	}
	return table, nil
}
