package utf8stream_test

import (
	"slices"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/pavanmanishd/utf8stream"
)

const (
	heart       = "\u2764\uFE0F"
	firefighter = "\U0001F469\U0001F3FD\u200D\U0001F692"
)

// TestEdgeCases covers edge cases seen only through the public API
func TestEdgeCases(t *testing.T) {
	t.Run("UseAfterRelease", func(t *testing.T) {
		s := utf8stream.New("test")
		s.Release()

		testPanic := func(name string, fn func()) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("%s: expected panic after Release()", name)
				}
			}()
			fn()
		}

		testPanic("Push", func() { s.Push("x") })
		testPanic("Pop", func() { s.Pop() })
		testPanic("Get", func() { s.Get(0) })
		testPanic("Next", func() { s.Next() })
		testPanic("Clear", func() { s.Clear() })
		testPanic("Len", func() { s.Len() })
		testPanic("Clone", func() { s.Clone() })
	})

	t.Run("MultipleReleases", func(t *testing.T) {
		s := utf8stream.New("test")
		// Multiple releases should be safe
		s.Release()
		s.Release()

		a := utf8stream.NewArena(4)
		a.Release()
		a.Release()
	})

	t.Run("NextBackFromEnd", func(t *testing.T) {
		s := utf8stream.New("fire" + firefighter + "fighter")
		for {
			if _, ok := s.Next(); !ok {
				break
			}
		}

		var got []string
		for {
			text, ok := s.NextBack()
			if !ok {
				break
			}
			got = append(got, text)
		}
		want := []string{"r", "e", "t", "h", "g", "i", "f", firefighter, "e", "r", "i", "f"}
		if !slices.Equal(got, want) {
			t.Errorf("NextBack() sequence = %q, want %q", got, want)
		}
	})

	t.Run("InterleavedNextAndPush", func(t *testing.T) {
		s := utf8stream.New("ab")
		s.Next()
		s.Next()
		if _, ok := s.Next(); ok {
			t.Fatal("Next() at end should report false")
		}

		s.Push(heart)
		if got, ok := s.Next(); !ok || got != heart {
			t.Errorf("Next() after Push = (%q, %v), want %q", got, ok, heart)
		}
	})

	t.Run("PopWholeSequence", func(t *testing.T) {
		s := utf8stream.New("x" + firefighter)
		if got, _ := s.Pop(); got != firefighter {
			t.Errorf("Pop() = %q, want %q", got, firefighter)
		}
		if s.String() != "x" {
			t.Errorf("String() = %q, want x", s.String())
		}
	})

	t.Run("GetInsideSequence", func(t *testing.T) {
		s := utf8stream.New("fire" + firefighter + "fighter")
		for i := 4; i < 19; i++ {
			if got, ok := s.Get(i); !ok || got != firefighter {
				t.Errorf("Get(%d) = (%q, %v), want %q", i, got, ok, firefighter)
			}
		}
	})

	t.Run("MalformedBytes", func(t *testing.T) {
		s := utf8stream.New("a\xff\xfeb")
		got := slices.Collect(s.Clusters())
		if !slices.Equal(got, []string{"a", "", "", "b"}) {
			t.Errorf("Clusters() = %q", got)
		}
		if s.String() != "a" {
			t.Errorf("String() = %q, want a", s.String())
		}
	})

	t.Run("NULBytes", func(t *testing.T) {
		s := utf8stream.New("a\x00b")
		got := slices.Collect(s.Clusters())
		if !slices.Equal(got, []string{"a", "\x00", "b"}) {
			t.Errorf("Clusters() = %q", got)
		}
		if _, ok := s.Get(1); ok {
			t.Error("Get(1) on NUL should report false")
		}
	})

	t.Run("ClearThenIterate", func(t *testing.T) {
		s := utf8stream.New("test")
		s.Next()
		s.Clear()
		if _, ok := s.Next(); ok {
			t.Error("Next() after Clear should report false")
		}
		if _, ok := s.NextBack(); ok {
			t.Error("NextBack() after Clear should report false")
		}
		s.Push("s")
		if got, _ := s.Next(); got != "s" {
			t.Errorf("Next() = %q, want s", got)
		}
	})
}

// TestLargeStream checks exact sizing holds across many pushes and pops
func TestLargeStream(t *testing.T) {
	const n = 500
	var s utf8stream.Stream
	for i := 0; i < n; i++ {
		s.Push("a" + heart)
		if s.Len() != (i+1)*(1+len(heart)) {
			t.Fatalf("Len() after %d pushes = %d", i+1, s.Len())
		}
	}
	if m := s.Metrics(); m.Capacity != s.Len() {
		t.Errorf("Capacity = %d, want exactly %d", m.Capacity, s.Len())
	}

	count := 0
	for range s.Clusters() {
		count++
	}
	if count != 2*n {
		t.Errorf("clusters = %d, want %d", count, 2*n)
	}

	for i := 0; i < n; i++ {
		if got, _ := s.Pop(); got != heart {
			t.Fatalf("pop %d = %q, want heart", i, got)
		}
		if got, _ := s.Pop(); got != "a" {
			t.Fatalf("pop %d = %q, want a", i, got)
		}
	}
	if !s.IsEmpty() {
		t.Errorf("Len() = %d after popping everything", s.Len())
	}
}

// TestRoundTripProperty joins forward clusters back into the string view
func TestRoundTripProperty(t *testing.T) {
	inputs := []string{
		"",
		"plain ascii",
		"café crème",
		"red" + heart + "heart",
		"fire" + firefighter + "fighter",
		strings.Repeat(firefighter+" ", 10),
		"日本語のテキスト",
		"mixed \U0001F49B\U0001F5A4 and e\u0301",
	}
	for _, input := range inputs {
		s := utf8stream.New(input)
		joined := strings.Join(slices.Collect(s.Clusters()), "")
		if joined != s.String() {
			t.Errorf("joined %q != String() %q", joined, s.String())
		}
		if !utf8.ValidString(joined) {
			t.Errorf("joined %q is not valid UTF-8", joined)
		}

		var back []string
		for _, text := range s.Backward() {
			back = append(back, text)
		}
		slices.Reverse(back)
		if strings.Join(back, "") != s.String() {
			t.Errorf("backward join %q != String() %q", strings.Join(back, ""), s.String())
		}
	}
}

// TestConversions covers the string-like and iterator constructors
func TestConversions(t *testing.T) {
	want := utf8stream.New("test")

	str := "test"
	conversions := map[string]*utf8stream.Stream{
		"string":      utf8stream.New(str),
		"bytes":       utf8stream.New([]byte(str)),
		"stringer":    utf8stream.New(want),
		"runes":       utf8stream.FromRunes(slices.Values([]rune(str))),
		"bytes seq":   utf8stream.FromBytes(slices.Values([]byte(str))),
		"strings seq": utf8stream.FromStrings(slices.Values([]string{"te", "st"})),
	}
	for name, got := range conversions {
		if !got.Equal(want) {
			t.Errorf("%s: %q, want %q", name, got.Bytes(), want.Bytes())
		}
	}
}
