package otcodec

import (
	"testing"

	"github.com/npillmayer/otcodec/otbytes"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
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

// buildSFNT assembles a minimal single-font SFNT stream from raw tables.
// Tables must be given in ascending tag order.
func buildSFNT(tags []string, tables [][]byte) []byte {
	const headerSize = 12
	const recordSize = 16
	directorySize := headerSize + recordSize*len(tables)
	size := directorySize
	for _, table := range tables {
		size += (len(table) + 3) &^ 3 // tables begin on 4-byte boundaries
	}
	font := make([]byte, size)
	putU32(font, 0, 0x00010000) // TrueType
	putU16(font, 4, uint16(len(tables)))
	offset := directorySize
	for i, table := range tables {
		rec := headerSize + i*recordSize
		copy(font[rec:], tags[i])
		putU32(font, rec+8, uint32(offset))
		putU32(font, rec+12, uint32(len(table)))
		copy(font[offset:], table)
		offset += (len(table) + 3) &^ 3
	}
	return font
}

// --- Test Suite Preparation ------------------------------------------------

type GlyphOutlineTestEnviron struct {
	suite.Suite
	font []byte
}

// listen for 'go test' command --> run test methods
func TestGlyphOutlineFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "font.otcodec")
	defer teardown()
	suite.Run(t, new(GlyphOutlineTestEnviron))
}

// run once, before test suite methods
func (env *GlyphOutlineTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	// 3 glyphs, short loca: entries [0, 2, 2, 5] (halved) address glyf
	// ranges [0,4), [4,4) and [4,10); glyph 1 has no outline
	head := make([]byte, 54)
	putU16(head, 50, 0) // indexToLocFormat: short
	maxp := make([]byte, 6)
	putU32(maxp, 0, 0x00005000)
	putU16(maxp, 4, 3) // numGlyphs
	loca := make([]byte, 8)
	putU16(loca, 0, 0)
	putU16(loca, 2, 2)
	putU16(loca, 4, 2)
	putU16(loca, 6, 5)
	glyf := []byte("AAAABBBBBB")
	env.font = buildSFNT(
		[]string{"glyf", "head", "loca", "maxp"},
		[][]byte{glyf, head, loca, maxp},
	)
}

// --- Tests -----------------------------------------------------------------

func (env *GlyphOutlineTestEnviron) TestRawTableLookup() {
	maxp, err := RawTable(env.font, otbytes.T("maxp"))
	env.Require().NoError(err, "expected to locate table 'maxp'")
	table, ok := maxp.Unwrap()
	env.Require().True(ok, "table 'maxp' not found in synthetic font")
	env.Equal(6, len(table), "expected 6 bytes of maxp data")
}

func (env *GlyphOutlineTestEnviron) TestRawTableAbsent() {
	cmap, err := RawTable(env.font, otbytes.T("cmap"))
	env.Require().NoError(err, "an absent table is not an error")
	env.True(cmap.IsNone(), "synthetic font has no 'cmap' table")
}

func (env *GlyphOutlineTestEnviron) TestRawTableBadFontType() {
	font := append([]byte{}, env.font...)
	putU32(font, 0, 0xbadf00d)
	_, err := RawTable(font, otbytes.T("maxp"))
	env.Error(err, "expected an error for an unsupported font type")
}

func (env *GlyphOutlineTestEnviron) TestGlyphOutline() {
	outline, err := GlyphOutline(env.font, 0)
	env.Require().NoError(err)
	b, ok := outline.Unwrap()
	env.Require().True(ok, "glyph 0 should have an outline")
	env.Equal("AAAA", string(b), "expected glyph 0 outline bytes")

	outline, err = GlyphOutline(env.font, 2)
	env.Require().NoError(err)
	b, ok = outline.Unwrap()
	env.Require().True(ok, "glyph 2 should have an outline")
	env.Equal("BBBBBB", string(b), "expected glyph 2 outline bytes")
}

func (env *GlyphOutlineTestEnviron) TestGlyphOutlineAbsent() {
	outline, err := GlyphOutline(env.font, 1)
	env.Require().NoError(err)
	env.True(outline.IsNone(), "glyph 1 has an empty loca range, no outline")

	outline, err = GlyphOutline(env.font, 17)
	env.Require().NoError(err)
	env.True(outline.IsNone(), "glyph 17 is out of range")
}

func (env *GlyphOutlineTestEnviron) TestGlyphOutlineMissingTable() {
	font := buildSFNT([]string{"maxp"}, [][]byte{make([]byte, 6)})
	_, err := GlyphOutline(font, 0)
	env.Error(err, "expected an error for a font without 'head'")
}
