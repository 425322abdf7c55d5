package arena

// Used returns the number of bytes consumed so far, including padding
// inserted for alignment. Returns 0 on a released arena.
func (a *Arena) Used() int {
	if a.mem == nil {
		return 0
	}
	return int(a.offset)
}

// Remaining returns the number of bytes still available, before any
// alignment padding a particular request may need.
func (a *Arena) Remaining() int {
	if a.mem == nil {
		return 0
	}
	return len(a.mem) - int(a.offset)
}

// Capacity returns the size of the backing buffer in bytes.
// Returns 0 on a released arena.
func (a *Arena) Capacity() int {
	return len(a.mem)
}

// Utilization returns the ratio of used bytes to capacity (0.0 to 1.0).
// Returns 0.0 on a released arena.
func (a *Arena) Utilization() float64 {
	if len(a.mem) == 0 {
		return 0
	}
	return float64(a.offset) / float64(len(a.mem))
}

// Generation returns the arena's current generation: the number of
// Reset and Release calls so far. See Ref.
func (a *Arena) Generation() uint64 {
	return a.gen
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		Used:        a.Used(),
		Remaining:   a.Remaining(),
		Capacity:    a.Capacity(),
		Utilization: a.Utilization(),
		Generation:  a.Generation(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	Used        int     // Bytes consumed, including alignment padding
	Remaining   int     // Bytes still available
	Capacity    int     // Backing buffer size in bytes
	Utilization float64 // Ratio of used to capacity (0.0-1.0)
	Generation  uint64  // Number of Reset/Release calls
}
