package utf8stream

import (
	"io"
	"unicode/utf8"
)

var (
	_ io.Writer       = (*Stream)(nil)
	_ io.StringWriter = (*Stream)(nil)
	_ io.ByteWriter   = (*Stream)(nil)
)

// Write appends p verbatim. It always returns len(p), nil.
func (s *Stream) Write(p []byte) (int, error) {
	s.buf().Append(p)
	return len(p), nil
}

// WriteString appends str. It always returns len(str), nil.
func (s *Stream) WriteString(str string) (int, error) {
	s.buf().Append([]byte(str))
	return len(str), nil
}

// WriteByte appends the raw byte c.
func (s *Stream) WriteByte(c byte) error {
	s.buf().Append([]byte{c})
	return nil
}

// WriteRune appends the UTF-8 encoding of r and returns its length.
func (s *Stream) WriteRune(r rune) (int, error) {
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], r)
	s.buf().Append(enc[:n])
	return n, nil
}
