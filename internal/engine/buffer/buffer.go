package buffer

import "fmt"

// DefaultCapacity is the backing capacity used when none is given.
const DefaultCapacity = 1024

// GapBuffer stores bytes in one backing array with an unused gap between
// gapStart and gapEnd. Logical content is buf[:gapStart] followed by
// buf[gapEnd:]. The invariant 0 <= gapStart <= gapEnd <= len(buf) always holds.
type GapBuffer struct {
	buf      []byte
	gapStart int
	gapEnd   int
}

// New creates an empty gap buffer whose gap spans the whole backing array.
func New(opts ...Option) *GapBuffer {
	cfg := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.capacity <= 0 {
		cfg.capacity = DefaultCapacity
	}

	return &GapBuffer{
		buf:      make([]byte, cfg.capacity),
		gapStart: 0,
		gapEnd:   cfg.capacity,
	}
}

// NewFromString creates a buffer holding s with the gap at the end.
func NewFromString(s string, opts ...Option) *GapBuffer {
	g := New(opts...)
	g.insertBytes([]byte(s))
	return g
}

// Len returns the logical length of the content.
func (g *GapBuffer) Len() int {
	return len(g.buf) - (g.gapEnd - g.gapStart)
}

// Cap returns the size of the backing array.
func (g *GapBuffer) Cap() int {
	return len(g.buf)
}

// GapStart returns the start of the gap. Insertions happen here, and after
// an undo or redo it is the authoritative cursor offset.
func (g *GapBuffer) GapStart() int {
	return g.gapStart
}

// GapEnd returns the end of the gap.
func (g *GapBuffer) GapEnd() int {
	return g.gapEnd
}

// IsEmpty returns true if the buffer holds no content.
func (g *GapBuffer) IsEmpty() bool {
	return g.Len() == 0
}

// MoveGapTo relocates the gap so that it starts at pos. pos is clamped into
// [0, Len()]. Only the bytes between the current gap start and pos cross
// the gap, so the cost is proportional to that distance.
func (g *GapBuffer) MoveGapTo(pos int) {
	if pos < 0 {
		pos = 0
	}
	if n := g.Len(); pos > n {
		pos = n
	}

	switch {
	case pos < g.gapStart:
		// Move the tail of the prefix to the front of the suffix.
		d := g.gapStart - pos
		copy(g.buf[g.gapEnd-d:g.gapEnd], g.buf[pos:g.gapStart])
		g.gapStart = pos
		g.gapEnd -= d
	case pos > g.gapStart:
		// Move the head of the suffix to the end of the prefix.
		d := pos - g.gapStart
		copy(g.buf[g.gapStart:g.gapStart+d], g.buf[g.gapEnd:g.gapEnd+d])
		g.gapStart += d
		g.gapEnd += d
	}
}

// Insert writes c at the gap start and advances it, growing the backing
// array by half its size when the gap is exhausted.
func (g *GapBuffer) Insert(c byte) {
	if g.gapStart == g.gapEnd {
		g.grow()
	}
	g.buf[g.gapStart] = c
	g.gapStart++
}

// Backspace removes the byte before the gap. It returns false and does
// nothing when the gap is at the start of the buffer.
func (g *GapBuffer) Backspace() bool {
	if g.gapStart == 0 {
		return false
	}
	g.gapStart--
	return true
}

// Delete removes the byte after the gap. It returns false and does nothing
// when the gap is at the end of the buffer.
func (g *GapBuffer) Delete() bool {
	if g.gapEnd == len(g.buf) {
		return false
	}
	g.gapEnd++
	return true
}

// ByteAt returns the byte at logical offset pos, or 0 if pos is outside
// [0, Len()).
func (g *GapBuffer) ByteAt(pos int) byte {
	if pos < 0 || pos >= g.Len() {
		return 0
	}
	if pos < g.gapStart {
		return g.buf[pos]
	}
	return g.buf[g.gapEnd+(pos-g.gapStart)]
}

// Slice returns a copy of the logical bytes in [start, end), clamped to the
// buffer bounds.
func (g *GapBuffer) Slice(start, end int) []byte {
	if start < 0 {
		start = 0
	}
	if n := g.Len(); end > n {
		end = n
	}
	if start >= end {
		return []byte{}
	}

	out := make([]byte, 0, end-start)
	if start < g.gapStart {
		out = append(out, g.buf[start:min(end, g.gapStart)]...)
	}
	if end > g.gapStart {
		from := max(start, g.gapStart) - g.gapStart + g.gapEnd
		to := end - g.gapStart + g.gapEnd
		out = append(out, g.buf[from:to]...)
	}
	return out
}

// String returns the logical content as a string.
func (g *GapBuffer) String() string {
	return string(g.Bytes())
}

// GoString returns a debugging representation including the gap layout.
func (g *GapBuffer) GoString() string {
	return fmt.Sprintf("GapBuffer{len=%d cap=%d gap=[%d:%d)}", g.Len(), len(g.buf), g.gapStart, g.gapEnd)
}

// grow reallocates the backing array to cap + cap/2, keeping the prefix at
// the front and the suffix at the back.
func (g *GapBuffer) grow() {
	oldCap := len(g.buf)
	newCap := oldCap + oldCap/2
	if newCap <= oldCap {
		newCap = oldCap + 1
	}

	nb := make([]byte, newCap)
	suffix := oldCap - g.gapEnd
	copy(nb, g.buf[:g.gapStart])
	copy(nb[newCap-suffix:], g.buf[g.gapEnd:])

	g.buf = nb
	g.gapEnd = newCap - suffix
}

// insertBytes inserts p at the gap, one byte at a time.
func (g *GapBuffer) insertBytes(p []byte) {
	for _, c := range p {
		g.Insert(c)
	}
}
