package otbytes

// Low-level access to big-endian bytes. Everything in this package funnels
// through the view primitive below, so bounds discipline lives in one place.

func u16(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler
	return uint16(b[0])<<8 | uint16(b[1])<<0
}

func u24(b []byte) uint32 {
	_ = b[2]
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])<<0
}

func u32(b []byte) uint32 {
	_ = b[3]
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])<<0
}

// buffer is a segment of byte data, borrowed from the caller. We use it
// throughout this package to navigate binary data. A buffer never owns its
// bytes and must not outlive the slice it was created from.
type buffer []byte

// view returns n bytes at the given offset.
// The byte segment returned is a sub-slice of b.
func (b buffer) view(offset, n int) (buffer, error) {
	if offset < 0 || n < 0 || offset+n > len(b) {
		return nil, boundsError(offset, n, len(b))
	}
	return b[offset : offset+n], nil
}

// from returns everything from offset to the end of b.
func (b buffer) from(offset int) (buffer, error) {
	if offset < 0 || offset > len(b) {
		return nil, boundsError(offset, 0, len(b))
	}
	return b[offset:], nil
}
