package selection

import (
	"fmt"

	"github.com/dshills/gaptext/internal/engine/buffer"
	"github.com/dshills/gaptext/internal/engine/history"
)

// Point is an alias for buffer.Point for convenience.
type Point = buffer.Point

// Text is the read and mutation surface selection operations need.
// *buffer.GapBuffer satisfies it.
type Text interface {
	history.Target
	ByteAt(pos int) byte
	GapStart() int
	PointToOffset(p buffer.Point) int
}

// Recorder receives the edits performed by paste and selection delete.
// *history.History satisfies it.
type Recorder interface {
	Push(e history.Edit)
}

// Selection is a region between an anchor and a cursor in row/column space.
// The zero value is an inactive selection.
type Selection struct {
	active bool
	anchor Point
	cursor Point
}

// Start activates the selection with both ends at (row, col).
func (s *Selection) Start(row, col int) {
	s.active = true
	s.anchor = Point{Row: row, Col: col}
	s.cursor = s.anchor
}

// Update moves the cursor end of the selection. The anchor stays fixed.
func (s *Selection) Update(row, col int) {
	s.cursor = Point{Row: row, Col: col}
}

// Clear deactivates the selection.
func (s *Selection) Clear() {
	s.active = false
}

// Active returns true if the selection is active.
func (s *Selection) Active() bool {
	return s.active
}

// Anchor returns the point where the selection started.
func (s *Selection) Anchor() Point {
	return s.anchor
}

// Cursor returns the moving end of the selection.
func (s *Selection) Cursor() Point {
	return s.cursor
}

// IsEmpty returns true if the anchor and cursor coincide.
func (s *Selection) IsEmpty() bool {
	return s.anchor == s.cursor
}

// IsBackward returns true if the cursor is before the anchor.
func (s *Selection) IsBackward() bool {
	return s.cursor.Before(s.anchor)
}

// Normalized returns the selection ends ordered so that start <= end,
// regardless of the direction the selection was made in.
func (s *Selection) Normalized() (start, end Point) {
	if s.cursor.Before(s.anchor) {
		return s.cursor, s.anchor
	}
	return s.anchor, s.cursor
}

// Contains reports whether (row, col) is inside an active selection. The
// leading edge is inclusive and the trailing edge exclusive; rows strictly
// between the first and last row are fully selected.
func (s *Selection) Contains(row, col int) bool {
	if !s.active {
		return false
	}

	start, end := s.Normalized()
	if row < start.Row || row > end.Row {
		return false
	}
	if start.Row == end.Row {
		return col >= start.Col && col < end.Col
	}
	if row == start.Row {
		return col >= start.Col
	}
	if row == end.Row {
		return col < end.Col
	}
	return true
}

// String returns a human-readable representation of the selection.
func (s *Selection) String() string {
	if !s.active {
		return "selection(inactive)"
	}
	return fmt.Sprintf("selection(%v -> %v)", s.anchor, s.cursor)
}

// Range resolves the normalized selection to a byte range in t. Both ends
// go through PointToOffset, so out-of-range points saturate.
func Range(s *Selection, t Text) buffer.Range {
	start, end := s.Normalized()
	return buffer.Range{
		Start: t.PointToOffset(start),
		End:   t.PointToOffset(end),
	}
}

// DeleteSelection removes the selected bytes from t, recording one
// KindDelete edit per byte at the range start, and clears the selection.
// It returns false if the selection is inactive or covers no bytes.
func DeleteSelection(s *Selection, t Text, rec Recorder) bool {
	if !s.active {
		return false
	}

	r := Range(s, t)
	s.Clear()
	if r.IsEmpty() {
		return false
	}

	t.MoveGapTo(r.Start)
	for i := r.Start; i < r.End; i++ {
		c := t.ByteAt(r.Start)
		if !t.Delete() {
			break
		}
		rec.Push(history.Edit{Kind: history.KindDelete, Pos: r.Start, Byte: c})
	}
	return true
}
