// Package selection provides the selection region and the single-slot
// clipboard used by the editing session.
//
// The selection package handles:
//
//   - A row/column selection with an anchor (where it started) and a
//     cursor (where it currently ends)
//   - Membership tests for rendering, end-exclusive at the trailing edge
//   - Copy of the selected bytes into the clipboard
//   - Paste and selection delete, recorded in history one byte at a time
//
// Selection Model:
//
// The anchor and cursor are not ordered; the cursor may come before the
// anchor when the user selects backwards. Every consumer normalizes the
// pair with Normalized before use.
//
// Basic usage:
//
//	var sel selection.Selection
//	sel.Start(0, 0)
//	sel.Update(0, 3)
//
//	var clip selection.Clipboard
//	clip.Copy(&sel, buf)                  // clipboard holds bytes [0,3)
//	selection.DeleteSelection(&sel, buf, hist)
//	clip.Paste(buf, buf.Len(), hist)
//
// The clipboard's lifetime is independent of the selection: clearing the
// selection leaves the clipboard untouched, and a copy replaces the slot
// wholesale.
//
// Thread Safety:
//
// Selection and Clipboard are owned by one editing session and are not
// safe for concurrent use.
package selection
