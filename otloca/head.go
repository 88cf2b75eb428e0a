package otloca

import (
	"github.com/npillmayer/otcodec/otbytes"
)

// Byte offset of the indexToLocFormat field within table 'head'.
const indexToLocFormatOffset = 50

// ReadIndexToLocFormat extracts the 'loca' offset encoding from the raw
// bytes of table 'head'. It fails with a bounds error if the table is too
// short and with a validation error if the field holds neither of the two
// defined formats.
func ReadIndexToLocFormat(head []byte) (IndexToLocFormat, error) {
	r := otbytes.NewReaderAt(head, indexToLocFormatOffset)
	return otbytes.TryRead[IndexToLocFormat](r)
}
