package utf8stream

import "unicode/utf8"

// asciiLimit is the first byte value treated as non-ASCII by the resolver.
// DEL (0x7F) is grouped with the multi-byte bytes, matching the fast path
// which only takes bytes strictly below it.
const asciiLimit = 0x7F

// Cluster is one resolved text unit.
type Cluster struct {
	Text  string // decoded unit, "" when nothing printable resolved
	Start int    // first byte of the unit
	End   int    // exclusive end of the resolved window
	Len   int    // bytes the unit occupies, used to move a cursor
}

// Present reports whether the cluster carries any text.
func (c Cluster) Present() bool {
	return c.Len > 0 && c.Text != ""
}

func isNonASCII(b byte) bool {
	return b >= asciiLimit
}

// Resolve returns the cluster covering byte offset index of p.
//
// This is a heuristic, not UAX #29 segmentation. A byte below 0x7F is a
// cluster on its own. Otherwise the resolver steps back to the start of the
// code point holding index, then widens the window over neighbouring
// non-ASCII code points for as long as every added code point still
// decodes. A base emoji with its modifiers, zero-width joiners and
// variation selectors therefore comes back as one unit, and so do two
// adjacent emoji with nothing in between.
//
// Malformed bytes resolve to a one-byte cluster with empty Text so callers
// can step over them. An empty p or an out-of-range index resolves to a
// cluster with Len 0.
func Resolve(p []byte, index int) Cluster {
	if len(p) == 0 {
		return Cluster{Start: index}
	}
	if index < 0 || index >= len(p) {
		return Cluster{Start: index, End: index}
	}
	if !isNonASCII(p[index]) {
		return Cluster{Text: string(p[index : index+1]), Start: index, End: index + 1, Len: 1}
	}

	// Back up to the lead byte of the code point holding index.
	lead := index
	for lead > 0 && index-lead < utf8.UTFMax-1 && !utf8.RuneStart(p[lead]) {
		lead--
	}
	r, size := utf8.DecodeRune(p[lead:])
	if (r == utf8.RuneError && size <= 1) || lead+size <= index {
		return Cluster{Start: index, End: index + 1, Len: 1}
	}
	start, end := lead, lead+size

	// Widen backward over preceding non-ASCII code points.
	for start > 0 {
		r, n := utf8.DecodeLastRune(p[:start])
		if (r == utf8.RuneError && n <= 1) || !isNonASCII(p[start-n]) {
			break
		}
		start -= n
	}

	// Widen forward while the next byte is non-ASCII and still decodes.
	for end < len(p) && isNonASCII(p[end]) {
		r, n := utf8.DecodeRune(p[end:])
		if r == utf8.RuneError && n <= 1 {
			break
		}
		end += n
	}

	window := p[start:end]
	if !utf8.Valid(window) {
		return Cluster{Start: start, End: end, Len: end - start}
	}
	return Cluster{Text: string(window), Start: start, End: end, Len: end - start}
}

// ResolveString is Resolve over a string.
func ResolveString(s string, index int) Cluster {
	return Resolve([]byte(s), index)
}
