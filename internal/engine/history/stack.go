package history

import "time"

// History manages the undo and redo stacks for one buffer.
// Both stacks are slices with the most recent entry last.
// History is not safe for concurrent use.
type History struct {
	undoStack []*Entry
	redoStack []*Entry

	// Grouping state
	grouping   bool
	groupName  string
	groupEdits []Edit

	// Configuration; 0 means unbounded
	maxEntries int
}

// Option configures a History.
type Option func(*History)

// WithMaxEntries bounds the undo stack. When exceeded, the oldest entries
// are dropped. n <= 0 means unbounded.
func WithMaxEntries(n int) Option {
	return func(h *History) {
		if n < 0 {
			n = 0
		}
		h.maxEntries = n
	}
}

// New creates an empty history.
func New(opts ...Option) *History {
	h := &History{}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Push records an edit that has already been applied. The redo stack is
// cleared. While a group is open the edit joins the group instead.
func (h *History) Push(e Edit) {
	if h.grouping {
		h.groupEdits = append(h.groupEdits, e)
		// The timeline has moved on even though the group is not closed yet.
		h.redoStack = nil
		return
	}

	h.pushEntry(&Entry{
		Edits:     []Edit{e},
		Timestamp: time.Now(),
	})
}

// pushEntry adds an entry to the undo stack and clears redo.
func (h *History) pushEntry(entry *Entry) {
	h.undoStack = append(h.undoStack, entry)
	h.redoStack = nil

	if h.maxEntries > 0 && len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		clear(h.undoStack[:excess])
		h.undoStack = h.undoStack[excess:]
	}
}

// Undo reverts the most recent entry against t and moves it to the redo
// stack. It returns false if there is nothing to undo.
func (h *History) Undo(t Target) bool {
	if len(h.undoStack) == 0 {
		return false
	}

	entry := h.undoStack[len(h.undoStack)-1]
	h.undoStack[len(h.undoStack)-1] = nil
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, entry)

	entry.undo(t)
	return true
}

// Redo re-applies the most recently undone entry against t and moves it
// back to the undo stack. It returns false if there is nothing to redo.
func (h *History) Redo(t Target) bool {
	if len(h.redoStack) == 0 {
		return false
	}

	entry := h.redoStack[len(h.redoStack)-1]
	h.redoStack[len(h.redoStack)-1] = nil
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, entry)

	entry.redo(t)
	return true
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo entries available.
func (h *History) UndoCount() int {
	return len(h.undoStack)
}

// RedoCount returns the number of redo entries available.
func (h *History) RedoCount() int {
	return len(h.redoStack)
}

// PeekUndo returns the next entry Undo would revert.
func (h *History) PeekUndo() (Entry, bool) {
	if len(h.undoStack) == 0 {
		return Entry{}, false
	}
	return *h.undoStack[len(h.undoStack)-1], true
}

// PeekRedo returns the next entry Redo would re-apply.
func (h *History) PeekRedo() (Entry, bool) {
	if len(h.redoStack) == 0 {
		return Entry{}, false
	}
	return *h.redoStack[len(h.redoStack)-1], true
}

// MaxEntries returns the undo stack bound, 0 when unbounded.
func (h *History) MaxEntries() int {
	return h.maxEntries
}

// Clear removes all undo/redo history and closes any open group.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
	h.grouping = false
	h.groupEdits = nil
}
