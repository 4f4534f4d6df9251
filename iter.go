package utf8stream

import "iter"

// Clusters returns the stream's clusters in order. Each call starts a new
// traversal from the beginning and leaves the cursor alone. The stream must
// not be mutated while the sequence is being ranged over.
func (s *Stream) Clusters() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, text := range s.All() {
			if !yield(text) {
				return
			}
		}
	}
}

// All returns each cluster together with its start offset, front to back.
func (s *Stream) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		p := s.Bytes()
		for i := 0; i < len(p); {
			c := Resolve(p, i)
			if c.Len == 0 {
				return
			}
			if !yield(i, c.Text) {
				return
			}
			i += c.Len
		}
	}
}

// Backward returns each cluster together with its start offset, back to
// front.
func (s *Stream) Backward() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		p := s.Bytes()
		for i := len(p); i > 0; {
			c := Resolve(p, i-1)
			if c.Len == 0 {
				return
			}
			i = max(i-c.Len, 0)
			if !yield(i, c.Text) {
				return
			}
		}
	}
}

// ExtendRunes pushes every rune of seq.
func (s *Stream) ExtendRunes(seq iter.Seq[rune]) {
	for r := range seq {
		s.WriteRune(r)
	}
}

// ExtendBytes pushes every byte of seq as the character with that code
// point, so bytes above 0x7F become two-byte Latin-1 characters. Use Write
// to append raw bytes.
func (s *Stream) ExtendBytes(seq iter.Seq[byte]) {
	for b := range seq {
		s.WriteRune(rune(b))
	}
}

// ExtendStrings pushes every string of seq.
func (s *Stream) ExtendStrings(seq iter.Seq[string]) {
	for str := range seq {
		s.WriteString(str)
	}
}

// FromRunes builds a stream from a sequence of runes.
func FromRunes(seq iter.Seq[rune]) *Stream {
	s := new(Stream)
	s.ExtendRunes(seq)
	return s
}

// FromBytes builds a stream from a sequence of bytes, see ExtendBytes.
func FromBytes(seq iter.Seq[byte]) *Stream {
	s := new(Stream)
	s.ExtendBytes(seq)
	return s
}

// FromStrings builds a stream from a sequence of strings.
func FromStrings(seq iter.Seq[string]) *Stream {
	s := new(Stream)
	s.ExtendStrings(seq)
	return s
}
