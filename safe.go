package utf8stream

import "sync"

// SafeStream is a mutex-protected wrapper around Stream for concurrent access.
// All operations are thread-safe but come with the overhead of mutex locking.
// Returned strings are copies and stay valid after the lock is released.
type SafeStream struct {
	mu sync.Mutex
	s  *Stream
}

// NewSafeStream creates a thread-safe stream holding the rendering of v.
func NewSafeStream(v any) *SafeStream {
	return &SafeStream{s: New(v)}
}

// Push thread-safely appends the rendering of v.
func (s *SafeStream) Push(v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.Push(v)
}

// Write thread-safely appends p verbatim.
func (s *SafeStream) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Write(p)
}

// Pop thread-safely removes and returns the last cluster.
func (s *SafeStream) Pop() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Pop()
}

// Get thread-safely returns the cluster covering byte offset index.
func (s *SafeStream) Get(index int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Get(index)
}

// Contains thread-safely reports whether v is a substring of the content.
func (s *SafeStream) Contains(v any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Contains(v)
}

// Next thread-safely advances the shared cursor by one cluster.
func (s *SafeStream) Next() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Next()
}

// NextBack thread-safely moves the shared cursor back by one cluster.
func (s *SafeStream) NextBack() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.NextBack()
}

// Rewind thread-safely resets the cursor.
func (s *SafeStream) Rewind() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.Rewind()
}

// Clear thread-safely drops all content.
func (s *SafeStream) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.Clear()
}

// Len thread-safely returns the byte length.
func (s *SafeStream) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Len()
}

// String thread-safely returns the string view.
func (s *SafeStream) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.String()
}

// Snapshot thread-safely returns a deep copy of the underlying stream.
func (s *SafeStream) Snapshot() *Stream {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Clone()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeStream) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Metrics()
}

// Release thread-safely drops the backing arena.
func (s *SafeStream) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.Release()
}
