package utf8stream

import (
	"fmt"
	"strconv"
	"strings"
)

// Format implements fmt.Formatter. %v and %s print the string view, %q
// quotes it, and %#v prints the byte dump from GoString.
func (s *Stream) Format(f fmt.State, verb rune) {
	switch {
	case verb == 'v' && f.Flag('#'):
		fmt.Fprint(f, s.GoString())
	case verb == 'q':
		fmt.Fprint(f, strconv.Quote(s.String()))
	case verb == 'v' || verb == 's':
		fmt.Fprint(f, s.String())
	default:
		fmt.Fprintf(f, "%%!%c(utf8stream.Stream=%s)", verb, s.String())
	}
}

// GoString dumps the cursor, length and every byte on its own line.
func (s *Stream) GoString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Stream{cursor:%d, length:%d}[\n", s.cursor, s.Len())
	for i, c := range s.Bytes() {
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(&b, "    %-3d, // %q", c, rune(c))
	}
	b.WriteString("\n]")
	return b.String()
}
