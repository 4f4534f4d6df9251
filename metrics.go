package utf8stream

// SizeInUse returns the number of logical content bytes.
func (a *Arena) SizeInUse() int {
	if a.buf == nil {
		return 0
	}
	return a.size
}

// Capacity returns the physical size of the allocation, which includes the
// 1-byte placeholder of an empty arena.
func (a *Arena) Capacity() int {
	return len(a.buf)
}

// Grows returns how many times the arena has been grown.
func (a *Arena) Grows() int {
	return a.grows
}

// Shrinks returns how many times the arena has been shrunk.
func (a *Arena) Shrinks() int {
	return a.shrinks
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.SizeInUse(),
		Capacity:    a.Capacity(),
		Grows:       a.Grows(),
		Shrinks:     a.Shrinks(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Logical bytes
	Capacity    int     // Physical bytes
	Grows       int     // Number of grow resizes
	Shrinks     int     // Number of shrink resizes
	Utilization float64 // Ratio of used to physical bytes (0.0-1.0)
}

// Metrics returns a snapshot of the backing arena's statistics.
func (s *Stream) Metrics() ArenaMetrics {
	if s.arena == nil {
		return ArenaMetrics{}
	}
	return s.arena.Metrics()
}
