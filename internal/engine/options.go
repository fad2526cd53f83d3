package engine

import "github.com/dshills/gaptext/internal/engine/buffer"

// Default configuration values.
const (
	DefaultTabWidth = 4
	DefaultCapacity = buffer.DefaultCapacity
)

// Option configures a Session during creation.
type Option func(*Session)

// WithContent sets the initial content of the session. Initial content is
// not recorded in history and does not mark the session modified.
func WithContent(content string) Option {
	return func(s *Session) {
		s.initContent = content
	}
}

// WithCapacity sets the initial gap buffer capacity.
func WithCapacity(n int) Option {
	return func(s *Session) {
		s.capacity = n
	}
}

// WithTabWidth sets the number of spaces a tab inserts and the width a
// leading tab counts for when auto-indenting.
func WithTabWidth(width int) Option {
	return func(s *Session) {
		if width > 0 {
			s.tabWidth = width
		}
	}
}

// WithAutoIndent controls whether a new line copies the indentation of the
// line it was split from.
func WithAutoIndent(enabled bool) Option {
	return func(s *Session) {
		s.autoIndent = enabled
	}
}

// WithGroupEdits makes multi-byte operations (paste, cut, selection delete,
// newline with indent, tab) undo as a single unit instead of one byte at a
// time.
func WithGroupEdits(enabled bool) Option {
	return func(s *Session) {
		s.groupEdits = enabled
	}
}

// WithHistoryLimit bounds the number of undo entries. 0 means unbounded.
func WithHistoryLimit(n int) Option {
	return func(s *Session) {
		if n >= 0 {
			s.historyLimit = n
		}
	}
}
