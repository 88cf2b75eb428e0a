package otloca

import (
	"github.com/npillmayer/otcodec/otbytes"
)

// ReadNumGlyphs extracts the total glyph count from the raw bytes of table
// 'maxp'. The count sits right behind the table's version field and means
// the same in every maxp version.
func ReadNumGlyphs(maxp []byte) (uint16, error) {
	r := otbytes.NewReader(maxp)
	otbytes.Skip[otbytes.Fixed](r) // version
	n, err := otbytes.Read[otbytes.U16](r)
	if err != nil {
		return 0, err
	}
	return uint16(n), nil
}
