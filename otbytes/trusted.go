package otbytes

// trustedReader reads sequentially from a buffer whose sufficient length
// has already been established, typically because the span was produced by
// a successful bounds-checked read. Its reads do not re-validate and will
// panic if the trust assumption is wrong, so it stays unexported: no public
// entry point may hand it a range derived from raw external offsets.
type trustedReader struct {
	data   buffer
	offset int
}

// readTrusted decodes the next scalar, advancing the cursor by its width.
func readTrusted[T Scalar[T]](s *trustedReader) T {
	var t T
	return t.Decode(s.readBytes(t.Size()))
}

// readBytes returns the next n bytes, advancing the cursor.
func (s *trustedReader) readBytes(n int) []byte {
	b := s.data[s.offset : s.offset+n]
	s.offset += n
	return b
}
