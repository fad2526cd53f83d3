package selection

import (
	"testing"

	"github.com/dshills/gaptext/internal/engine/buffer"
	"github.com/dshills/gaptext/internal/engine/history"
)

func TestZeroSelectionInactive(t *testing.T) {
	var s Selection
	if s.Active() {
		t.Error("zero selection should be inactive")
	}
	if s.Contains(0, 0) {
		t.Error("inactive selection should contain nothing")
	}
}

func TestStartUpdateClear(t *testing.T) {
	var s Selection
	s.Start(2, 4)

	if !s.Active() {
		t.Fatal("selection should be active")
	}
	if s.Anchor() != (Point{Row: 2, Col: 4}) || s.Cursor() != (Point{Row: 2, Col: 4}) {
		t.Errorf("unexpected ends %v %v", s.Anchor(), s.Cursor())
	}
	if !s.IsEmpty() {
		t.Error("fresh selection should be empty")
	}

	s.Update(3, 1)
	if s.Anchor() != (Point{Row: 2, Col: 4}) {
		t.Error("update should not move anchor")
	}
	if s.Cursor() != (Point{Row: 3, Col: 1}) {
		t.Errorf("unexpected cursor %v", s.Cursor())
	}

	s.Clear()
	if s.Active() {
		t.Error("selection should be inactive after clear")
	}
}

func TestNormalized(t *testing.T) {
	var s Selection
	s.Start(4, 2)
	s.Update(1, 7)

	if !s.IsBackward() {
		t.Error("selection should be backward")
	}
	start, end := s.Normalized()
	if start != (Point{Row: 1, Col: 7}) || end != (Point{Row: 4, Col: 2}) {
		t.Errorf("unexpected normalization %v %v", start, end)
	}
}

func TestContainsSingleRow(t *testing.T) {
	var s Selection
	s.Start(0, 0)
	s.Update(0, 3)

	tests := []struct {
		row, col int
		expected bool
	}{
		{0, 0, true},
		{0, 2, true},
		{0, 3, false},
		{0, 4, false},
		{1, 0, false},
	}

	for _, tt := range tests {
		if got := s.Contains(tt.row, tt.col); got != tt.expected {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.expected)
		}
	}
}

func TestContainsMultiRow(t *testing.T) {
	var s Selection
	// Selected backwards; result must not depend on direction.
	s.Start(3, 2)
	s.Update(1, 5)

	tests := []struct {
		name     string
		row, col int
		expected bool
	}{
		{"before first row", 0, 9, false},
		{"first row before start", 1, 4, false},
		{"first row at start", 1, 5, true},
		{"first row far right", 1, 80, true},
		{"interior row", 2, 0, true},
		{"interior row far right", 2, 200, true},
		{"last row start", 3, 0, true},
		{"last row before end", 3, 1, true},
		{"last row at end", 3, 2, false},
		{"after last row", 4, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Contains(tt.row, tt.col); got != tt.expected {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.expected)
			}
		})
	}
}

func TestRange(t *testing.T) {
	g := buffer.NewFromString("hello\nworld")
	var s Selection
	s.Start(1, 3)
	s.Update(0, 2)

	r := Range(&s, g)
	if r.Start != 2 || r.End != 9 {
		t.Errorf("expected [2:9), got %v", r)
	}
}

func TestDeleteSelection(t *testing.T) {
	g := buffer.NewFromString("hello\nworld")
	h := history.New()
	var s Selection
	s.Start(0, 3)
	s.Update(1, 2)

	if !DeleteSelection(&s, g, h) {
		t.Fatal("delete should succeed")
	}
	if g.String() != "helrld" {
		t.Errorf("expected %q, got %q", "helrld", g.String())
	}
	if s.Active() {
		t.Error("delete should clear the selection")
	}
	if h.UndoCount() != 5 {
		t.Errorf("expected one entry per byte (5), got %d", h.UndoCount())
	}

	entry, _ := h.PeekUndo()
	if entry.Edits[0].Kind != history.KindDelete || entry.Edits[0].Pos != 3 || entry.Edits[0].Byte != 'o' {
		t.Errorf("unexpected last edit %v", entry.Edits[0])
	}

	for h.Undo(g) {
	}
	if g.String() != "hello\nworld" {
		t.Errorf("undo should restore content, got %q", g.String())
	}
}

func TestDeleteSelectionNoop(t *testing.T) {
	g := buffer.NewFromString("abc")
	h := history.New()
	var s Selection

	if DeleteSelection(&s, g, h) {
		t.Error("inactive selection delete should be a no-op")
	}

	s.Start(0, 1)
	if DeleteSelection(&s, g, h) {
		t.Error("empty selection delete should be a no-op")
	}
	if s.Active() {
		t.Error("empty selection should still be cleared")
	}
	if g.String() != "abc" || h.CanUndo() {
		t.Error("no-op delete changed state")
	}
}
