package history

import "time"

// Entry is one undoable unit: a single edit, or the edits of a group in the
// order they were pushed.
type Entry struct {
	Name      string
	Edits     []Edit
	Timestamp time.Time
}

// Len returns the number of edits in the entry.
func (e Entry) Len() int {
	return len(e.Edits)
}

// undo applies the inverse of each edit, newest first.
func (e *Entry) undo(t Target) {
	for i := len(e.Edits) - 1; i >= 0; i-- {
		e.Edits[i].Invert().Apply(t)
	}
}

// redo re-applies each edit, oldest first.
func (e *Entry) redo(t Target) {
	for _, edit := range e.Edits {
		edit.Apply(t)
	}
}

// BeginGroup starts collecting pushed edits into one entry.
// Nested calls are ignored.
func (h *History) BeginGroup(name string) {
	if h.grouping {
		return
	}
	h.grouping = true
	h.groupName = name
	h.groupEdits = nil
}

// EndGroup finishes the current group and pushes it as a single entry.
// An empty group records nothing.
func (h *History) EndGroup() {
	if !h.grouping {
		return
	}
	h.grouping = false

	if len(h.groupEdits) == 0 {
		h.groupEdits = nil
		return
	}

	h.pushEntry(&Entry{
		Name:      h.groupName,
		Edits:     h.groupEdits,
		Timestamp: time.Now(),
	})
	h.groupEdits = nil
}

// CancelGroup stops grouping without recording the collected edits.
// Edits already applied to the buffer are not reverted.
func (h *History) CancelGroup() {
	h.grouping = false
	h.groupEdits = nil
}

// IsGrouping returns true if a group is open.
func (h *History) IsGrouping() bool {
	return h.grouping
}

// GroupScope provides a convenient way to group edits using defer:
//
//	defer h.GroupScope("cut").End()
type GroupScope struct {
	history *History
	active  bool
}

// GroupScope starts a new group scope.
func (h *History) GroupScope(name string) *GroupScope {
	h.BeginGroup(name)
	return &GroupScope{history: h, active: true}
}

// End ends the group scope. Only the first call has effect.
func (g *GroupScope) End() {
	if g.active {
		g.history.EndGroup()
		g.active = false
	}
}
