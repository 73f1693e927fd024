// Package history provides the fixed-length rolling sample windows
// backing the sparkline graphs.
package history

// Series is a fixed-capacity FIFO of scalar samples. It starts full of
// zeroes, so its length never changes: each Push evicts the oldest
// sample. The backing array is reused as a ring, no reallocation.
type Series struct {
	buf  []float64
	head int // index of the oldest sample
}

// NewSeries returns a series of capacity c pre-seeded with zeroes.
// Capacities below 1 are treated as 1.
func NewSeries(c int) *Series {
	if c < 1 {
		c = 1
	}
	return &Series{buf: make([]float64, c)}
}

// Push evicts the oldest sample and appends v.
func (s *Series) Push(v float64) {
	s.buf[s.head] = v
	s.head = (s.head + 1) % len(s.buf)
}

// Latest returns the most recent sample (0 until the first Push).
func (s *Series) Latest() float64 {
	return s.buf[(s.head+len(s.buf)-1)%len(s.buf)]
}

// Len returns the fixed capacity.
func (s *Series) Len() int { return len(s.buf) }

// Values returns the samples oldest-first. The result is a copy; the
// caller may keep it across ticks.
func (s *Series) Values() []float64 {
	out := make([]float64, len(s.buf))
	n := copy(out, s.buf[s.head:])
	copy(out[n:], s.buf[:s.head])
	return out
}
