/*
Package otloca resolves glyph outline locations from an OpenType font's
'loca' (index-to-location) table. Given a glyph index, the total number of
glyphs and the offset encoding selected in table 'head', it answers one
question: which byte range of table 'glyf' holds this glyph's outline?

The package is a consumer of the decoding engine in sister package otbytes
and repeats the canonical pattern of every table decoder in this format
family: read a lazy array over raw bytes, index two adjacent elements, and
turn them into a validated byte range.

A glyph legitimately may have no outline (the space glyph is the everyday
example), and the 'loca' table has several sentinel states that mean "no
answer" rather than "corrupt data". All of these surface as an absent
Option, never as an error; errors are reserved for byte spans that fall
outside the given buffers.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otloca

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.otloca'
func tracer() tracing.Trace {
	return tracing.Select("font.otloca")
}
