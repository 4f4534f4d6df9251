package utf8stream

import (
	"bytes"
	"testing"
)

func TestNewArena(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		physical int
	}{
		{"empty uses placeholder", 0, 1},
		{"one byte", 1, 1},
		{"exact size", 64, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArena(tt.size)
			if a.Len() != tt.size {
				t.Errorf("NewArena(%d) len = %d, want %d", tt.size, a.Len(), tt.size)
			}
			if len(a.buf) != tt.physical {
				t.Errorf("NewArena(%d) physical = %d, want %d", tt.size, len(a.buf), tt.physical)
			}
			for i, b := range a.buf {
				if b != 0 {
					t.Fatalf("NewArena(%d) byte %d = %d, want 0", tt.size, i, b)
				}
			}
		})
	}
}

func TestNewArenaNegativeSize(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for negative size")
		}
	}()
	NewArena(-1)
}

func TestNewArenaFromCopies(t *testing.T) {
	src := []byte("test")
	a := NewArenaFrom(src)
	src[0] = 'b'
	if got := string(a.Bytes()); got != "test" {
		t.Errorf("Bytes() = %q, want %q", got, "test")
	}
}

func TestArenaGrow(t *testing.T) {
	a := NewArenaFrom([]byte("red"))

	tail := a.Grow(8)
	if len(tail) != 5 {
		t.Fatalf("Grow(8) tail length = %d, want 5", len(tail))
	}
	copy(tail, "heart")
	if got := string(a.Bytes()); got != "redheart" {
		t.Errorf("Bytes() = %q, want %q", got, "redheart")
	}
	if len(a.buf) != 8 || cap(a.buf) != 8 {
		t.Errorf("physical len/cap = %d/%d, want 8/8", len(a.buf), cap(a.buf))
	}

	// Tail must not be able to write past the arena.
	if cap(tail) != 5 {
		t.Errorf("tail cap = %d, want 5", cap(tail))
	}
}

func TestArenaGrowSmallerPanics(t *testing.T) {
	a := NewArenaFrom([]byte("test"))
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic growing to a smaller size")
		}
	}()
	a.Grow(2)
}

func TestArenaAppend(t *testing.T) {
	a := NewArena(0)
	a.Append([]byte("te"))
	a.Append(nil)
	a.Append([]byte("st"))

	if got := string(a.Bytes()); got != "test" {
		t.Errorf("Bytes() = %q, want %q", got, "test")
	}
	if a.Grows() != 2 {
		t.Errorf("Grows() = %d, want 2", a.Grows())
	}
}

func TestArenaShrink(t *testing.T) {
	a := NewArenaFrom([]byte("testicycle"))

	a.Shrink(4)
	if got := string(a.Bytes()); got != "test" {
		t.Errorf("Shrink(4) Bytes() = %q, want %q", got, "test")
	}
	if len(a.buf) != 4 {
		t.Errorf("Shrink(4) physical = %d, want 4", len(a.buf))
	}

	a.Shrink(0)
	if a.Len() != 0 {
		t.Errorf("Shrink(0) Len() = %d, want 0", a.Len())
	}
	if len(a.buf) != 1 {
		t.Errorf("Shrink(0) physical = %d, want 1", len(a.buf))
	}

	// An emptied arena grows again from the placeholder.
	a.Append([]byte("s"))
	if got := string(a.Bytes()); got != "s" {
		t.Errorf("Bytes() after regrow = %q, want %q", got, "s")
	}
}

func TestArenaShrinkLargerPanics(t *testing.T) {
	a := NewArenaFrom([]byte("test"))
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic shrinking to a larger size")
		}
	}()
	a.Shrink(5)
}

func TestArenaAt(t *testing.T) {
	a := NewArenaFrom([]byte("ab"))

	tests := []struct {
		index int
		want  byte
		ok    bool
	}{
		{-1, 0, false},
		{0, 'a', true},
		{1, 'b', true},
		{2, 0, false},
	}
	for _, tt := range tests {
		got, ok := a.At(tt.index)
		if got != tt.want || ok != tt.ok {
			t.Errorf("At(%d) = (%q, %v), want (%q, %v)", tt.index, got, ok, tt.want, tt.ok)
		}
	}

	// The placeholder byte of an empty arena is not content.
	if _, ok := NewArena(0).At(0); ok {
		t.Error("At(0) on empty arena should report false")
	}
}

func TestArenaClone(t *testing.T) {
	a := NewArenaFrom([]byte("test"))
	b := a.Clone()

	b.Bytes()[0] = 'b'
	if !bytes.Equal(a.Bytes(), []byte("test")) {
		t.Errorf("Clone aliases original: %q", a.Bytes())
	}
}

func TestArenaRelease(t *testing.T) {
	a := NewArenaFrom([]byte("test"))
	a.Release()

	if !a.Released() {
		t.Error("Released() = false after Release")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic after Release")
		}
	}()
	a.Len()
}
