package utf8stream

// minRegion is the physical size backing an empty arena. Keeping one byte
// around means the region is never nil and can always be resized.
const minRegion = 1

// allocRegion returns a zero-filled region of exactly size bytes.
// A size of 0 is rounded up to the 1-byte placeholder.
func allocRegion(size int) []byte {
	if size < 0 {
		panic("arena: negative size")
	}
	if size == 0 {
		size = minRegion
	}
	// make aborts the process when the runtime cannot satisfy the request.
	return make([]byte, size)
}

// resizeRegion reallocates buf to exactly newSize bytes, carrying over the
// first min(oldSize, newSize) bytes. There is no spare capacity: every
// resize allocates, mirroring realloc to an exact length.
func resizeRegion(buf []byte, oldSize, newSize int) []byte {
	if newSize < 0 {
		panic("arena: negative size")
	}
	if newSize == oldSize && len(buf) == max(newSize, minRegion) {
		return buf
	}
	next := allocRegion(newSize)
	copy(next, buf[:min(oldSize, newSize)])
	return next
}
