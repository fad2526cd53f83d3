package selection

import (
	"bytes"

	"github.com/dshills/gaptext/internal/engine/history"
)

// Clipboard is a single-slot byte clipboard. The zero value is empty.
type Clipboard struct {
	data []byte
}

// Copy replaces the clipboard contents with the selected bytes of t.
// It returns false, leaving the clipboard unchanged, if the selection is
// inactive or covers no bytes.
func (c *Clipboard) Copy(s *Selection, t Text) bool {
	if !s.Active() {
		return false
	}

	r := Range(s, t)
	if r.IsEmpty() {
		return false
	}

	data := make([]byte, r.Len())
	for i := range data {
		data[i] = t.ByteAt(r.Start + i)
	}
	c.data = data
	return true
}

// Paste inserts the clipboard contents into t at offset at, recording one
// KindInsert edit per byte. It returns false if the clipboard is empty.
func (c *Clipboard) Paste(t Text, at int, rec Recorder) bool {
	if len(c.data) == 0 {
		return false
	}

	t.MoveGapTo(at)
	pos := t.GapStart()
	for i, b := range c.data {
		t.Insert(b)
		rec.Push(history.Edit{Kind: history.KindInsert, Pos: pos + i, Byte: b})
	}
	return true
}

// Set replaces the clipboard contents with a copy of p.
func (c *Clipboard) Set(p []byte) {
	if len(p) == 0 {
		c.data = nil
		return
	}
	c.data = bytes.Clone(p)
}

// Bytes returns a copy of the clipboard contents.
func (c *Clipboard) Bytes() []byte {
	return bytes.Clone(c.data)
}

// Len returns the number of bytes held.
func (c *Clipboard) Len() int {
	return len(c.data)
}

// IsEmpty returns true if the clipboard holds nothing.
func (c *Clipboard) IsEmpty() bool {
	return len(c.data) == 0
}

// Clear empties the clipboard.
func (c *Clipboard) Clear() {
	c.data = nil
}
