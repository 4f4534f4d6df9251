// Package utf8stream implements a growable byte buffer that reads back as a
// sequence of user-perceived text units ("clusters") rather than bytes or
// runes.
//
// # Overview
//
// A Stream owns an Arena, a byte region resized to its exact length on every
// push, pop and clear. Clusters are computed on demand by Resolve, which
// maps any byte offset to the unit it belongs to:
//
//   - a byte below 0x7F is a cluster of one byte
//   - a multi-byte code point is merged with neighbouring non-ASCII code
//     points for as long as the run keeps decoding, so an emoji with a
//     skin-tone modifier and zero-width joiners, or a base character with a
//     variation selector, comes back as a single unit
//
// Resolve is a deliberately narrow heuristic. It uses no Unicode property
// tables and is not UAX #29 grapheme segmentation.
//
// # Basic Usage
//
//	s := utf8stream.New("red❤️heart")
//
//	s.Get(3)   // "❤️", true
//	s.Next()   // "r", true
//	s.Pop()    // "t", true
//	s.Push("s")
//
//	for text := range s.Clusters() {
//		fmt.Println(text)
//	}
//
// # Iteration
//
// Next and NextBack move a byte cursor through the stream and report false
// at either end. Rewind puts the cursor back at the start. Clusters, All and
// Backward return range-over-func sequences that start a fresh traversal on
// every call and never touch the cursor.
//
// # Thread Safety
//
// Stream is not thread-safe. For concurrent access, use SafeStream:
//
//	ss := utf8stream.NewSafeStream("")
//	ss.Push("👩🏽‍🚒")
//
// # Memory Layout
//
// The arena has no spare capacity. Each push reallocates to the exact new
// length and each pop or clear reallocates down, with a 1-byte placeholder
// kept for an empty arena. Len always reports bytes; counting clusters
// requires iterating.
package utf8stream
