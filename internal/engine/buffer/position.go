package buffer

import "fmt"

// Point represents a row and column position.
// Both Row and Col are 0-indexed; Col is measured in bytes from the start
// of the row.
type Point struct {
	Row int
	Col int
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Row, p.Col)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Point) Compare(other Point) int {
	if p.Row < other.Row {
		return -1
	}
	if p.Row > other.Row {
		return 1
	}
	if p.Col < other.Col {
		return -1
	}
	if p.Col > other.Col {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Point) Before(other Point) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Point) After(other Point) bool {
	return p.Compare(other) > 0
}

// IsZero returns true if this is the zero point (0:0).
func (p Point) IsZero() bool {
	return p.Row == 0 && p.Col == 0
}

// Coordinate Conversion
//
// These scan the logical content from offset 0 each time. No line index is
// maintained, so every call is O(offset).

// OffsetToPoint converts a byte offset to row/column by counting newlines
// before offset. Offsets past the end are treated as the end.
func (g *GapBuffer) OffsetToPoint(offset int) Point {
	if n := g.Len(); offset > n {
		offset = n
	}

	var p Point
	for i := 0; i < offset; i++ {
		if g.ByteAt(i) == '\n' {
			p.Row++
			p.Col = 0
		} else {
			p.Col++
		}
	}
	return p
}

// PointToOffset converts a row/column point to a byte offset. The result is
// always in [0, Len()]: a column past the row's end saturates at the row's
// end and a row past the last row saturates at the end of the buffer.
func (g *GapBuffer) PointToOffset(p Point) int {
	n := g.Len()
	pos := 0

	for row := 0; pos < n && row < p.Row; pos++ {
		if g.ByteAt(pos) == '\n' {
			row++
		}
	}

	for col := 0; pos < n && col < p.Col; col++ {
		if g.ByteAt(pos) == '\n' {
			break
		}
		pos++
	}

	return pos
}

// LineCount returns the number of rows: one more than the number of newlines.
func (g *GapBuffer) LineCount() int {
	rows := 1
	for i, n := 0, g.Len(); i < n; i++ {
		if g.ByteAt(i) == '\n' {
			rows++
		}
	}
	return rows
}

// LineStartOffset returns the offset of the first byte of row.
func (g *GapBuffer) LineStartOffset(row int) int {
	return g.PointToOffset(Point{Row: row})
}

// LineLen returns the length of row in bytes, excluding its newline.
func (g *GapBuffer) LineLen(row int) int {
	n := g.Len()
	pos := g.LineStartOffset(row)
	length := 0
	for pos < n && g.ByteAt(pos) != '\n' {
		length++
		pos++
	}
	return length
}

// LineText returns a copy of row's bytes, excluding its newline.
func (g *GapBuffer) LineText(row int) []byte {
	start := g.LineStartOffset(row)
	return g.Slice(start, start+g.LineLen(row))
}

// LineIndent returns the indentation width of row: leading spaces count one
// column each and leading tabs count tabWidth columns.
func (g *GapBuffer) LineIndent(row, tabWidth int) int {
	n := g.Len()
	pos := g.LineStartOffset(row)
	indent := 0
	for ; pos < n; pos++ {
		switch g.ByteAt(pos) {
		case ' ':
			indent++
		case '\t':
			indent += tabWidth
		default:
			return indent
		}
	}
	return indent
}
