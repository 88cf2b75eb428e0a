package otloca

import (
	"fmt"
	"math"

	"github.com/npillmayer/otcodec/otbytes"
)

// IndexToLocFormat selects the width of the entries of table 'loca'. It is
// stored in table 'head' and must be either 0 (short: halved 16-bit
// offsets) or 1 (long: raw 32-bit offsets); any other raw value is a
// validation failure.
type IndexToLocFormat uint16

const (
	// ShortOffsets means 16-bit entries holding the true byte offset
	// divided by two.
	ShortOffsets IndexToLocFormat = 0
	// LongOffsets means 32-bit entries holding byte offsets directly.
	LongOffsets IndexToLocFormat = 1
)

func (IndexToLocFormat) Size() int { return 2 }

// TryDecode validates the raw 16-bit value against the two defined
// formats.
func (IndexToLocFormat) TryDecode(b []byte) (IndexToLocFormat, error) {
	f := IndexToLocFormat(otbytes.DecodeScalar[otbytes.U16](b))
	if f != ShortOffsets && f != LongOffsets {
		return 0, &otbytes.DecodeError{
			Kind:   otbytes.KindValidation,
			What:   "IndexToLocFormat",
			Issue:  fmt.Sprintf("raw value %d is neither short (0) nor long (1)", f),
			Offset: -1,
		}
	}
	return f, nil
}

func (f IndexToLocFormat) String() string {
	switch f {
	case ShortOffsets:
		return "short"
	case LongOffsets:
		return "long"
	}
	return fmt.Sprintf("IndexToLocFormat(%d)", uint16(f))
}

// Range is a half-open byte interval [Start, End) inside the outline data
// table 'glyf'.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes the range spans.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty reports whether the range spans no bytes.
func (r Range) IsEmpty() bool {
	return r.Len() <= 0
}

// GlyphRange computes the byte range of a glyph's outline data inside
// table 'glyf'. numGlyphs comes from table 'maxp', format from table
// 'head', and loca holds the raw bytes of table 'loca'; both are supplied
// by collaborators, see ReadNumGlyphs and ReadIndexToLocFormat.
//
// An absent result is not exceptional. It is returned for a glyph with no
// outline (adjacent equal offsets), for the reserved glyph index 0xFFFF,
// for a glyph index outside the table, and deliberately for the two
// states that cannot be answered reliably: a glyph count of 0xFFFF, which
// cannot be distinguished from an overflowed count, and an offset pair
// violating the table's ascending-order guarantee. The lenient treatment
// of the latter mirrors common practice: this function must never let a
// malformed font crash or fail its caller over a single glyph.
//
// An error is returned only when the loca buffer is too small to hold the
// full offset array.
func GlyphRange(glyphID otbytes.GlyphIndex, numGlyphs uint16, format IndexToLocFormat,
	loca []byte) (otbytes.Option[Range], error) {
	//
	none := otbytes.None[Range]()
	if numGlyphs == math.MaxUint16 {
		// cannot distinguish "exactly 0xFFFF glyphs" from an overflowed count
		return none, nil
	}
	if uint16(glyphID) == math.MaxUint16 {
		// reserved sentinel, never a valid glyph index
		return none, nil
	}
	total := int(numGlyphs) + 1 // one extra entry marks the end of the last glyph
	if int(glyphID)+1 >= total {
		return none, nil
	}
	var start, end int
	switch format {
	case ShortOffsets:
		offsets, err := otbytes.ReadArray[otbytes.U16](otbytes.NewReader(loca), total)
		if err != nil {
			return none, err
		}
		// 'The actual local offset divided by 2 is stored.'
		start = int(offsets.At(int(glyphID))) * 2
		end = int(offsets.At(int(glyphID)+1)) * 2
	case LongOffsets:
		offsets, err := otbytes.ReadArray[otbytes.U32](otbytes.NewReader(loca), total)
		if err != nil {
			return none, err
		}
		start = int(offsets.At(int(glyphID)))
		end = int(offsets.At(int(glyphID)+1))
	default:
		return none, &otbytes.DecodeError{
			Kind:   otbytes.KindValidation,
			What:   "IndexToLocFormat",
			Issue:  fmt.Sprintf("unknown offset encoding %d", uint16(format)),
			Offset: -1,
		}
	}
	if start == end {
		// no outline, e.g. the space glyph
		return none, nil
	}
	if start > end {
		// 'The offsets must be in ascending order.'
		tracer().Debugf("loca entries for glyph %d not ascending: %d > %d", glyphID, start, end)
		return none, nil
	}
	return otbytes.Some(Range{Start: start, End: end}), nil
}
