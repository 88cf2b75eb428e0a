/*
Package otcodec is a zero-copy decoding toolkit for OpenType font binaries.

The heavy lifting happens in two sub-packages: otbytes holds the generic
decoding engine (bounds-checked cursor readers, lazy typed array views,
offsets), otloca resolves glyph outline locations from a font's 'loca'
table. This root package ties them to whole font files: it loads a font,
finds raw tables in the font's table directory, and offers a one-call
convenience for extracting a glyph's outline bytes.

File access stops at this package boundary: this package reads font files,
while the sub-packages only ever see byte slices handed to them. Clients
that already have their table bytes resident, from their own font object
or a cache, should call into the sub-packages directly.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otcodec

import (
	"os"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'font.otcodec'
func tracer() tracing.Trace {
	return tracing.Select("font.otcodec")
}

// ScalableFont is an internal representation of an outline-font of type
// TTF or OTF.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	if f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull); err == nil {
		tracer().Debugf("loaded and parsed SFNT %s", f.Fontname)
	}
	return f, err
}
