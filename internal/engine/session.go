package engine

import (
	"io"

	"github.com/dshills/gaptext/internal/engine/buffer"
	"github.com/dshills/gaptext/internal/engine/history"
	"github.com/dshills/gaptext/internal/engine/selection"
)

// Re-export commonly used types for convenience.
type (
	// Point represents a row/column position.
	Point = buffer.Point

	// Edit is a recorded byte-level mutation.
	Edit = history.Edit
)

// Session is one editing session: a gap buffer with its history, selection,
// clipboard and cursor.
type Session struct {
	buf  *buffer.GapBuffer
	hist *history.History
	sel  selection.Selection
	clip selection.Clipboard

	cursor   Point
	modified bool

	// Configuration
	initContent  string
	capacity     int
	tabWidth     int
	autoIndent   bool
	groupEdits   bool
	historyLimit int
}

// New creates a session.
func New(opts ...Option) *Session {
	s := &Session{
		capacity:   DefaultCapacity,
		tabWidth:   DefaultTabWidth,
		autoIndent: true,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.buf = buffer.NewFromString(s.initContent, buffer.WithCapacity(s.capacity))
	s.initContent = ""
	s.hist = history.New(history.WithMaxEntries(s.historyLimit))
	return s
}

// NewFromReader creates a session whose content is read from r.
func NewFromReader(r io.Reader, opts ...Option) (*Session, error) {
	s := New(opts...)
	if err := s.Load(r); err != nil {
		return nil, err
	}
	return s, nil
}

// Component Access

// Buffer returns the underlying gap buffer for read access. Mutating it
// directly bypasses history.
func (s *Session) Buffer() *buffer.GapBuffer {
	return s.buf
}

// History returns the session's edit history.
func (s *Session) History() *history.History {
	return s.hist
}

// Selection returns the session's selection.
func (s *Session) Selection() *selection.Selection {
	return &s.sel
}

// Clipboard returns the session's clipboard.
func (s *Session) Clipboard() *selection.Clipboard {
	return &s.clip
}

// TabWidth returns the configured tab width.
func (s *Session) TabWidth() int {
	return s.tabWidth
}

// Read Operations

// Text returns the full content as a string.
func (s *Session) Text() string {
	return s.buf.String()
}

// Bytes returns a copy of the full content.
func (s *Session) Bytes() []byte {
	return s.buf.Bytes()
}

// Snapshot exports the content into an output of the given capacity.
func (s *Session) Snapshot(outCapacity int) ([]byte, error) {
	return s.buf.Snapshot(outCapacity)
}

// Len returns the content length in bytes.
func (s *Session) Len() int {
	return s.buf.Len()
}

// LineCount returns the number of rows.
func (s *Session) LineCount() int {
	return s.buf.LineCount()
}

// LineText returns the bytes of row without its newline.
func (s *Session) LineText(row int) []byte {
	return s.buf.LineText(row)
}

// LineLen returns the length of row without its newline.
func (s *Session) LineLen(row int) int {
	return s.buf.LineLen(row)
}

// Cursor returns the current cursor position.
func (s *Session) Cursor() Point {
	return s.cursor
}

// CursorOffset resolves the cursor to a linear offset.
func (s *Session) CursorOffset() int {
	return s.buf.PointToOffset(s.cursor)
}

// SetCursor moves the cursor to p, clamped to a valid position. Any
// selection is left as is.
func (s *Session) SetCursor(p Point) {
	s.cursor = s.clamp(p)
}

// Modified returns true if the content changed since it was loaded or
// last saved.
func (s *Session) Modified() bool {
	return s.modified
}

// MarkSaved clears the modified flag.
func (s *Session) MarkSaved() {
	s.modified = false
}

// Persistence

// Load replaces the content with everything read from r. History,
// selection and cursor are reset; the clipboard survives.
func (s *Session) Load(r io.Reader) error {
	buf := buffer.New(buffer.WithCapacity(s.capacity))
	if _, err := buf.Load(r); err != nil {
		return err
	}

	s.buf = buf
	s.hist.Clear()
	s.sel.Clear()
	s.cursor = Point{}
	s.modified = false
	return nil
}

// Save writes the raw content to w.
func (s *Session) Save(w io.Writer) (int64, error) {
	return s.buf.WriteTo(w)
}

// Editing Operations

// InsertByte inserts c at the cursor, replacing an active selection.
// A newline is delegated to InsertNewline.
func (s *Session) InsertByte(c byte) {
	if c == '\n' {
		s.InsertNewline()
		return
	}
	s.deleteSelection()
	s.insertAtCursor(c)
}

// InsertBytes inserts each byte of p as if typed.
func (s *Session) InsertBytes(p []byte) {
	s.group("insert", func() {
		for _, c := range p {
			s.InsertByte(c)
		}
	})
}

// InsertNewline splits the current line at the cursor, replacing an active
// selection. With auto-indent the new line starts with as many spaces as
// the indentation width of the line it was split from.
func (s *Session) InsertNewline() {
	s.deleteSelection()
	s.group("newline", func() {
		pos := s.CursorOffset()
		s.buf.MoveGapTo(pos)
		s.buf.Insert('\n')
		s.record(history.KindInsertNewline, pos, '\n')

		indent := 0
		if s.autoIndent {
			indent = s.buf.LineIndent(s.cursor.Row, s.tabWidth)
		}

		s.cursor = Point{Row: s.cursor.Row + 1}
		for i := 0; i < indent; i++ {
			s.insertAtCursor(' ')
		}
	})
}

// InsertTab inserts tab-width spaces at the cursor, replacing an active
// selection.
func (s *Session) InsertTab() {
	s.deleteSelection()
	s.group("tab", func() {
		for i := 0; i < s.tabWidth; i++ {
			s.insertAtCursor(' ')
		}
	})
}

// Backspace removes the active selection, or the byte before the cursor.
// At the start of a line it joins the line onto the previous one. It
// returns false if nothing was removed.
func (s *Session) Backspace() bool {
	if s.deleteSelection() {
		return true
	}

	s.cursor = s.clamp(s.cursor)
	switch {
	case s.cursor.Col > 0:
		pos := s.CursorOffset()
		c := s.buf.ByteAt(pos - 1)
		s.buf.MoveGapTo(pos)
		if !s.buf.Backspace() {
			return false
		}
		s.record(history.KindDelete, pos-1, c)
		s.cursor.Col--
		return true

	case s.cursor.Row > 0:
		prevLen := s.buf.LineLen(s.cursor.Row - 1)
		pos := s.CursorOffset()
		s.buf.MoveGapTo(pos)
		if !s.buf.Backspace() {
			return false
		}
		s.record(history.KindDeleteNewline, pos-1, '\n')
		s.cursor = Point{Row: s.cursor.Row - 1, Col: prevLen}
		return true
	}
	return false
}

// DeleteForward removes the active selection, or the byte at the cursor.
// The cursor does not move. It returns false if nothing was removed.
func (s *Session) DeleteForward() bool {
	if s.deleteSelection() {
		return true
	}

	pos := s.CursorOffset()
	c := s.buf.ByteAt(pos)
	s.buf.MoveGapTo(pos)
	if !s.buf.Delete() {
		return false
	}

	kind := history.KindDelete
	if c == '\n' {
		kind = history.KindDeleteNewline
	}
	s.record(kind, pos, c)
	return true
}

// Undo reverts the most recent history entry. The selection is cleared
// and the cursor moves to the buffer's gap start. It returns false if
// there was nothing to undo.
func (s *Session) Undo() bool {
	s.sel.Clear()
	if !s.hist.Undo(s.buf) {
		return false
	}
	s.afterReplay()
	return true
}

// Redo re-applies the most recently undone entry. It returns false if
// there was nothing to redo.
func (s *Session) Redo() bool {
	s.sel.Clear()
	if !s.hist.Redo(s.buf) {
		return false
	}
	s.afterReplay()
	return true
}

// UndoErr is Undo reporting ErrNothingToUndo instead of false.
func (s *Session) UndoErr() error {
	if !s.Undo() {
		return ErrNothingToUndo
	}
	return nil
}

// RedoErr is Redo reporting ErrNothingToRedo instead of false.
func (s *Session) RedoErr() error {
	if !s.Redo() {
		return ErrNothingToRedo
	}
	return nil
}

// Selection and Clipboard

// SelectAll selects the whole document and moves the cursor to its end.
func (s *Session) SelectAll() {
	s.sel.Start(0, 0)
	s.cursor = s.buf.OffsetToPoint(s.buf.Len())
	s.sel.Update(s.cursor.Row, s.cursor.Col)
}

// ClearSelection deactivates the selection.
func (s *Session) ClearSelection() {
	s.sel.Clear()
}

// Copy copies the selection into the clipboard and clears the selection.
// It returns the number of bytes copied, 0 if nothing was selected.
func (s *Session) Copy() int {
	if !s.sel.Active() {
		return 0
	}
	defer s.sel.Clear()
	if !s.clip.Copy(&s.sel, s.buf) {
		return 0
	}
	return s.clip.Len()
}

// Cut copies the selection into the clipboard and removes it from the
// document. It returns the number of bytes cut.
func (s *Session) Cut() int {
	if !s.sel.Active() {
		return 0
	}
	if !s.clip.Copy(&s.sel, s.buf) {
		s.sel.Clear()
		return 0
	}
	s.deleteSelection()
	return s.clip.Len()
}

// Paste inserts the clipboard at the cursor, replacing an active selection,
// and moves the cursor past the inserted bytes. It returns false if the
// clipboard is empty.
func (s *Session) Paste() bool {
	if s.clip.IsEmpty() {
		return false
	}
	s.deleteSelection()

	pasted := false
	s.group("paste", func() {
		pasted = s.clip.Paste(s.buf, s.CursorOffset(), s.hist)
	})
	if pasted {
		s.modified = true
		s.cursor = s.buf.OffsetToPoint(s.buf.GapStart())
	}
	return pasted
}

// internal helpers

// insertAtCursor inserts one byte at the cursor and records it.
func (s *Session) insertAtCursor(c byte) {
	pos := s.CursorOffset()
	s.buf.MoveGapTo(pos)
	s.buf.Insert(c)
	s.record(history.KindInsert, pos, c)
	s.cursor = s.buf.OffsetToPoint(pos + 1)
}

// deleteSelection removes an active selection and moves the cursor to where
// it began. It returns true if bytes were removed.
func (s *Session) deleteSelection() bool {
	if !s.sel.Active() {
		return false
	}

	start, _ := s.sel.Normalized()
	removed := false
	s.group("delete selection", func() {
		removed = selection.DeleteSelection(&s.sel, s.buf, s.hist)
	})
	s.cursor = s.clamp(start)
	if removed {
		s.modified = true
	}
	return removed
}

// record pushes an applied edit and marks the session modified.
func (s *Session) record(kind history.Kind, pos int, c byte) {
	s.hist.Push(history.Edit{Kind: kind, Pos: pos, Byte: c})
	s.modified = true
}

// group runs fn inside a history group when grouping is enabled.
func (s *Session) group(name string, fn func()) {
	if !s.groupEdits || s.hist.IsGrouping() {
		fn()
		return
	}
	s.hist.BeginGroup(name)
	fn()
	s.hist.EndGroup()
}

// afterReplay re-derives the cursor from the gap after undo or redo.
func (s *Session) afterReplay() {
	s.cursor = s.buf.OffsetToPoint(s.buf.GapStart())
	s.modified = true
}

// clamp maps p onto the nearest valid position in the buffer.
func (s *Session) clamp(p Point) Point {
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Col < 0 {
		p.Col = 0
	}
	return s.buf.OffsetToPoint(s.buf.PointToOffset(p))
}
