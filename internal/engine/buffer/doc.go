// Package buffer provides the byte-oriented gap buffer that stores document
// content for the editor engine, together with the coordinate conversion
// between linear byte offsets and row/column points.
//
// The buffer package provides:
//
//   - A single contiguous backing array with a movable gap at the edit point
//   - O(1) length and byte lookup
//   - Cheap repeated edits near the gap; distant jumps cost O(distance)
//   - Offset to row/column conversion treating '\n' as the only delimiter
//   - Snapshot export into caller-sized output with explicit capacity errors
//
// Basic usage:
//
//	buf := buffer.New(buffer.WithCapacity(64))
//	for _, c := range []byte("hello\nworld") {
//	    buf.Insert(c)
//	}
//
//	buf.MoveGapTo(buf.PointToOffset(buffer.Point{Row: 1, Col: 0}))
//	buf.Insert('W')
//	buf.Delete() // removes the old 'w'
//
//	text, err := buf.Snapshot(buf.Len())
//
// Coordinate Systems:
//
//   - Offset: zero-based byte index into the logical (gap-excluded) content
//   - Point: zero-based row and byte column within that row
//
// PointToOffset saturates out-of-range input instead of failing: a column
// past the end of a row lands on the row's end, a row past the last row
// lands on the end of the buffer.
//
// Thread Safety:
//
// A GapBuffer is owned by exactly one editing session and is not safe for
// concurrent use. No locking is performed.
package buffer
