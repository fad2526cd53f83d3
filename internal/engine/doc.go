// Package engine provides the editing session that ties the text core
// together.
//
// A Session owns one gap buffer, its edit history, the selection and the
// clipboard, plus the row/column cursor the driver edits at. It is created
// once per editing session and passed explicitly to the input loop; there
// is no package-level state.
//
// # Architecture
//
// The session is built on several sub-packages:
//
//   - buffer: gap buffer storage and offset/point conversion
//   - history: byte-level undo/redo stacks with an optional grouping hook
//   - selection: row/column selection and the single-slot clipboard
//
// Queries flow from the session through the position mapping to the
// buffer. Every mutation is recorded in history as it is applied.
//
// # Cursor Coordination
//
// The cursor is kept as a row/column Point. Before each mutation it is
// resolved to a linear offset with PointToOffset, which saturates, so a
// stale cursor can never address outside the buffer. After Undo and Redo
// the cursor is re-derived from the buffer's gap start, which is the
// authoritative edit location.
//
// # Basic Usage
//
//	s := engine.New(engine.WithContent("hello"))
//	s.Move(engine.End, false)
//	s.InsertByte('!')       // "hello!"
//	s.Undo()                // "hello"
//
//	s.Move(engine.Home, false)
//	s.Move(engine.Right, true)
//	s.Move(engine.Right, true)
//	s.Cut()                 // "llo", clipboard "he"
//	s.Paste()               // "hello"
//
// # Concurrency
//
// A Session is single-threaded. Every call runs to completion before
// control returns to the driver, and nothing blocks or yields. No locking
// is performed.
package engine
