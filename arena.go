package utf8stream

// Arena is an owned, contiguous byte region resized to an exact length on
// every change. There is no separate capacity: the physical allocation is
// always the logical size, or a 1-byte placeholder when empty.
// Not goroutine-safe.
type Arena struct {
	buf     []byte // backing memory, len(buf) == max(size, 1)
	size    int    // logical size
	grows   int
	shrinks int
}

// NewArena creates a zero-filled arena of size bytes.
func NewArena(size int) *Arena {
	return &Arena{buf: allocRegion(size), size: size}
}

// NewArenaFrom creates an arena holding a copy of p.
func NewArenaFrom(p []byte) *Arena {
	a := NewArena(len(p))
	copy(a.buf, p)
	return a
}

// Len returns the logical size of the arena in bytes.
func (a *Arena) Len() int {
	a.panicIfReleased()
	return a.size
}

// Bytes returns the logical content [0, Len()). The slice aliases the
// arena and is only valid until the next resize.
func (a *Arena) Bytes() []byte {
	a.panicIfReleased()
	return a.buf[:a.size:a.size]
}

// At returns the byte at index i, or false if i is outside [0, Len()).
// The placeholder byte of an empty arena is never reachable.
func (a *Arena) At(i int) (byte, bool) {
	a.panicIfReleased()
	if i < 0 || i >= a.size {
		return 0, false
	}
	return a.buf[i], true
}

// Grow resizes the arena to exactly newSize bytes and returns the newly
// added range [oldSize, newSize). The caller must fill it immediately.
func (a *Arena) Grow(newSize int) []byte {
	a.panicIfReleased()
	if newSize < a.size {
		panic("arena: grow to a smaller size")
	}
	old := a.size
	a.buf = resizeRegion(a.buf, old, newSize)
	a.size = newSize
	a.grows++
	return a.buf[old:newSize:newSize]
}

// Append grows the arena by len(p) and copies p into the new range.
func (a *Arena) Append(p []byte) {
	if len(p) == 0 {
		a.panicIfReleased()
		return
	}
	copy(a.Grow(a.size+len(p)), p)
}

// Shrink resizes the arena down to exactly newSize bytes. Shrinking to 0
// keeps the 1-byte placeholder allocation.
func (a *Arena) Shrink(newSize int) {
	a.panicIfReleased()
	if newSize > a.size {
		panic("arena: shrink to a larger size")
	}
	a.buf = resizeRegion(a.buf, a.size, newSize)
	a.size = newSize
	a.shrinks++
}

// Clone returns a deep copy of the arena. The copy never aliases a's memory.
func (a *Arena) Clone() *Arena {
	a.panicIfReleased()
	return NewArenaFrom(a.Bytes())
}

// Release drops the allocation and makes the arena unusable.
// Any subsequent operations will panic.
func (a *Arena) Release() {
	a.buf = nil
	a.size = 0
}

// Released reports whether Release has been called.
func (a *Arena) Released() bool {
	return a.buf == nil
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.buf == nil {
		panic("arena: use after Release()")
	}
}
