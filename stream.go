package utf8stream

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Stream is a growable byte buffer read back as a sequence of clusters
// (see Resolve). It keeps a byte cursor for forward and backward iteration.
//
// The zero value is an empty stream ready to use. Not goroutine-safe; use
// SafeStream for shared access.
type Stream struct {
	arena  *Arena
	cursor int
}

// New creates a Stream holding the textual rendering of v.
//
// Strings and byte slices are copied as-is, a rune becomes the single
// character with that code point, and anything else is rendered with
// fmt.Sprint, so a byte prints as its decimal value.
func New(v any) *Stream {
	return &Stream{arena: NewArenaFrom([]byte(render(v)))}
}

func render(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case rune:
		return string(x)
	default:
		return fmt.Sprint(v)
	}
}

func (s *Stream) buf() *Arena {
	if s.arena == nil {
		s.arena = NewArena(0)
	}
	return s.arena
}

// Push appends the textual rendering of v. The arena grows by exactly the
// number of bytes appended.
func (s *Stream) Push(v any) {
	s.buf().Append([]byte(render(v)))
}

// Pop removes the last cluster and returns its text. It reports false when
// the stream is empty.
func (s *Stream) Pop() (string, bool) {
	a := s.buf()
	if a.Len() == 0 {
		return "", false
	}
	c := Resolve(a.Bytes(), a.Len()-1)
	if c.Len == 0 {
		return "", false
	}
	a.Shrink(a.Len() - c.Len)
	s.cursor = min(s.cursor, a.Len())
	return c.Text, true
}

// Get returns the cluster covering byte offset index. It reports false
// when nothing printable lives there: an empty stream, an out-of-range
// index, malformed bytes, or a lone NUL.
func (s *Stream) Get(index int) (string, bool) {
	c := s.Cluster(index)
	if !c.Present() || c.Text == "\x00" {
		return "", false
	}
	return c.Text, true
}

// Cluster returns the raw resolution at byte offset index.
func (s *Stream) Cluster(index int) Cluster {
	return Resolve(s.buf().Bytes(), index)
}

// LastPrintable returns the last cluster that is not a lone NUL.
func (s *Stream) LastPrintable() (string, bool) {
	for i := s.Len() - 1; i >= 0; {
		c := s.Cluster(i)
		if c.Present() && c.Text != "\x00" {
			return c.Text, true
		}
		i = c.Start - 1
	}
	return "", false
}

// Contains reports whether the rendering of v is a substring of String().
// It matches across cluster boundaries.
func (s *Stream) Contains(v any) bool {
	return strings.Contains(s.String(), render(v))
}

// Clear drops all content and resets the cursor.
func (s *Stream) Clear() {
	s.buf().Shrink(0)
	s.cursor = 0
}

// Rewind moves the cursor back to the start without touching content.
func (s *Stream) Rewind() {
	s.cursor = 0
}

// Cursor returns the current iteration offset in bytes.
func (s *Stream) Cursor() int {
	return s.cursor
}

// Next returns the cluster at the cursor and advances past it.
// It reports false at the end of the stream.
//
// Only bytes at or after the cursor are returned, so a cluster that grew
// across the cursor through a Push or Pop is never yielded twice.
func (s *Stream) Next() (string, bool) {
	a := s.buf()
	if s.cursor >= a.Len() {
		return "", false
	}
	p := a.Bytes()
	c := Resolve(p, s.cursor)
	if c.Len == 0 {
		return "", false
	}
	start := max(c.Start, s.cursor)
	s.cursor = min(c.End, a.Len())
	if c.Text == "" {
		return "", true
	}
	return string(p[start:s.cursor]), true
}

// NextBack returns the cluster just before the cursor and moves the cursor
// back to its start. It reports false at the start of the stream.
// Bytes at or after the cursor are left out of the result.
func (s *Stream) NextBack() (string, bool) {
	a := s.buf()
	if s.cursor == 0 {
		return "", false
	}
	p := a.Bytes()
	c := Resolve(p, s.cursor-1)
	if c.Len == 0 {
		return "", false
	}
	end := min(c.End, s.cursor)
	s.cursor = max(c.Start, 0)
	if c.Text == "" {
		return "", true
	}
	return string(p[s.cursor:end]), true
}

// Len returns the number of bytes in the stream. Counting clusters
// requires iterating.
func (s *Stream) Len() int {
	if s.arena == nil {
		return 0
	}
	return s.arena.Len()
}

// IsEmpty reports whether the stream holds no bytes.
func (s *Stream) IsEmpty() bool {
	return s.Len() == 0
}

// String returns the longest valid UTF-8 prefix of the content.
func (s *Stream) String() string {
	p := s.Bytes()
	for n := len(p); n > 0; n-- {
		if utf8.Valid(p[:n]) {
			return string(p[:n])
		}
	}
	return ""
}

// Bytes returns the raw content. The slice aliases the stream and is only
// valid until the next mutation.
func (s *Stream) Bytes() []byte {
	if s.arena == nil {
		return nil
	}
	return s.arena.Bytes()
}

// Clone returns a deep copy of s, cursor included.
func (s *Stream) Clone() *Stream {
	return &Stream{arena: s.buf().Clone(), cursor: s.cursor}
}

// Equal reports whether s and o hold the same bytes. Cursors are ignored.
func (s *Stream) Equal(o *Stream) bool {
	return bytes.Equal(s.Bytes(), o.Bytes())
}

// Compare orders streams by content, like bytes.Compare.
func (s *Stream) Compare(o *Stream) int {
	return bytes.Compare(s.Bytes(), o.Bytes())
}

// Release drops the backing arena. Any later use of s panics.
func (s *Stream) Release() {
	s.buf().Release()
	s.cursor = 0
}
