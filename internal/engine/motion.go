package engine

// Direction is a cursor motion.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
	Home
	End
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	case Home:
		return "home"
	case End:
		return "end"
	default:
		return "unknown"
	}
}

// Move moves the cursor one step in dir. With extend the selection grows
// from the current cursor (starting one if needed); without it any
// selection is cleared.
func (s *Session) Move(dir Direction, extend bool) {
	s.withSelection(extend, func() {
		s.step(dir)
	})
}

// PageUp moves the cursor up by rows lines, stopping at the first line.
func (s *Session) PageUp(rows int, extend bool) {
	s.withSelection(extend, func() {
		for i := 0; i < rows && s.cursor.Row > 0; i++ {
			s.step(Up)
		}
	})
}

// PageDown moves the cursor down by rows lines, stopping at the last line.
func (s *Session) PageDown(rows int, extend bool) {
	s.withSelection(extend, func() {
		last := s.buf.LineCount() - 1
		for i := 0; i < rows && s.cursor.Row < last; i++ {
			s.step(Down)
		}
	})
}

// withSelection wraps a motion with selection start/update or clear.
func (s *Session) withSelection(extend bool, move func()) {
	s.cursor = s.clamp(s.cursor)
	if !extend {
		s.sel.Clear()
		move()
		return
	}

	if !s.sel.Active() {
		s.sel.Start(s.cursor.Row, s.cursor.Col)
	}
	move()
	s.sel.Update(s.cursor.Row, s.cursor.Col)
}

// step applies one motion. Left and Right wrap across line boundaries;
// Up and Down keep the column, clamped to the target line's length.
func (s *Session) step(dir Direction) {
	switch dir {
	case Left:
		if s.cursor.Col > 0 {
			s.cursor.Col--
		} else if s.cursor.Row > 0 {
			s.cursor.Row--
			s.cursor.Col = s.buf.LineLen(s.cursor.Row)
		}

	case Right:
		if s.cursor.Col < s.buf.LineLen(s.cursor.Row) {
			s.cursor.Col++
		} else if s.cursor.Row < s.buf.LineCount()-1 {
			s.cursor.Row++
			s.cursor.Col = 0
		}

	case Up:
		if s.cursor.Row > 0 {
			s.cursor.Row--
			s.cursor.Col = min(s.cursor.Col, s.buf.LineLen(s.cursor.Row))
		}

	case Down:
		if s.cursor.Row < s.buf.LineCount()-1 {
			s.cursor.Row++
			s.cursor.Col = min(s.cursor.Col, s.buf.LineLen(s.cursor.Row))
		}

	case Home:
		s.cursor.Col = 0

	case End:
		s.cursor.Col = s.buf.LineLen(s.cursor.Row)
	}
}
