/*
Package otbytes decodes fixed-layout, offset-addressed binary data without
copying it. It is the byte-level substrate for OpenType/TrueType font
tables, but knows nothing about any particular table: it only knows how to
read big-endian scalar values, arrays of such values, and offsets at
caller-chosen positions of an immutable byte buffer.

Intended audience for this package are:

▪︎ table decoders for OpenType fonts, which repeat the same pattern over and
over: seek to a position, read a handful of scalars, follow an offset,
interpret a run of bytes as an array

▪︎ any application needing safe random access into binary data whose layout
is fixed but whose content may be corrupted or adversarial

All reads are performed against a buffer owned by the caller. The package
never copies nor mutates the buffer; every reader and array is a view whose
validity ends with the buffer's. Reads through the public API are bounds
checked and fail with a recoverable error instead of panicking, no matter
how malformed the input bytes are.

Two kinds of "no result" are kept apart: a read that would cross the buffer
boundary (or a value whose bits match no recognized variant) is a failure,
reported as an error; a value that is legitimately not there (a null
offset, for example) is an absence, reported as an empty Option. Callers
should treat the former as a reason to distrust the buffer and the latter
as ordinary data.

# Status

Covers the scalar types, cursor readers, lazy arrays and offsets needed by
the 'loca' decoding in sister package otloca. More of the OpenType data
types (LONGDATETIME, Version16Dot16, …) will be added as table decoders
need them.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package otbytes

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'font.otbytes'
func tracer() tracing.Trace {
	return tracing.Select("font.otbytes")
}
