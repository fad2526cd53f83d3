// Package history provides undo/redo for the gap buffer.
//
// Every byte-level mutation is recorded as an Edit carrying its kind, the
// linear position it happened at and the single byte affected:
//
//   - KindInsert, KindInsertNewline: a byte was inserted at Pos
//   - KindDelete, KindDeleteNewline: the byte at Pos was removed
//
// # History Stacks
//
// History keeps two stacks of entries, undo and redo. Pushing a new edit
// discards the redo stack entirely; the timeline is linear and branching
// is not supported.
//
//	h := history.New()
//	buf.MoveGapTo(pos)
//	buf.Insert('x')
//	h.Push(history.Edit{Kind: history.KindInsert, Pos: pos, Byte: 'x'})
//
//	h.Undo(buf) // moves the gap to pos and deletes the 'x'
//	h.Redo(buf) // moves the gap to pos and inserts it again
//
// Undo repositions the gap at the edit's position and applies the inverse
// operation; redo repositions and re-applies the original. For a single
// edit, undo followed by redo restores content and gap position exactly.
//
// # Grouping
//
// By default each edit is its own undo entry. BeginGroup/EndGroup collect
// the edits pushed in between into one entry so that, for example, a
// whole paste can be undone with one keystroke:
//
//	h.BeginGroup("paste")
//	// ... one Push per byte ...
//	h.EndGroup()
//
// A grouped entry is undone newest edit first and redone oldest first.
package history
