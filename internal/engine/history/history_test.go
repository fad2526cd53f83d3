package history

import (
	"testing"

	"github.com/dshills/gaptext/internal/engine/buffer"
)

// state captures everything an undo/redo round trip must restore.
type state struct {
	text     string
	gapStart int
}

func capture(g *buffer.GapBuffer) state {
	return state{text: g.String(), gapStart: g.GapStart()}
}

// insertAt applies and records an insert the way the editor does.
func insertAt(h *History, g *buffer.GapBuffer, pos int, c byte) {
	g.MoveGapTo(pos)
	g.Insert(c)
	kind := KindInsert
	if c == '\n' {
		kind = KindInsertNewline
	}
	h.Push(Edit{Kind: kind, Pos: pos, Byte: c})
}

// deleteAt applies and records removal of the byte at pos.
func deleteAt(h *History, g *buffer.GapBuffer, pos int) {
	g.MoveGapTo(pos)
	c := g.ByteAt(pos)
	g.Delete()
	kind := KindDelete
	if c == '\n' {
		kind = KindDeleteNewline
	}
	h.Push(Edit{Kind: kind, Pos: pos, Byte: c})
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindInsert, "insert"},
		{KindDelete, "delete"},
		{KindInsertNewline, "insert-newline"},
		{KindDeleteNewline, "delete-newline"},
		{Kind(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.expected)
		}
	}
}

func TestEditInvert(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected Kind
	}{
		{KindInsert, KindDelete},
		{KindDelete, KindInsert},
		{KindInsertNewline, KindDeleteNewline},
		{KindDeleteNewline, KindInsertNewline},
	}

	for _, tt := range tests {
		e := Edit{Kind: tt.kind, Pos: 3, Byte: 'q'}
		inv := e.Invert()
		if inv.Kind != tt.expected || inv.Pos != 3 || inv.Byte != 'q' {
			t.Errorf("Invert(%v) = %v", e, inv)
		}
		if inv.Invert() != e {
			t.Errorf("double inversion of %v is not identity", e)
		}
	}
}

func TestUndoRedoEmpty(t *testing.T) {
	h := New()
	g := buffer.NewFromString("abc")

	if h.Undo(g) {
		t.Error("undo on empty history should return false")
	}
	if h.Redo(g) {
		t.Error("redo on empty history should return false")
	}
	if g.String() != "abc" {
		t.Errorf("buffer changed: %q", g.String())
	}
}

func TestDeleteUndoRedo(t *testing.T) {
	h := New()
	g := buffer.NewFromString("abc")

	deleteAt(h, g, 1)
	if g.String() != "ac" {
		t.Fatalf("expected %q, got %q", "ac", g.String())
	}

	if !h.Undo(g) {
		t.Fatal("undo should succeed")
	}
	if g.String() != "abc" {
		t.Errorf("after undo expected %q, got %q", "abc", g.String())
	}

	if !h.Redo(g) {
		t.Fatal("redo should succeed")
	}
	if g.String() != "ac" {
		t.Errorf("after redo expected %q, got %q", "ac", g.String())
	}
}

func TestRoundTripEveryKind(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		apply func(h *History, g *buffer.GapBuffer)
	}{
		{"insert", "hello", func(h *History, g *buffer.GapBuffer) { insertAt(h, g, 2, 'X') }},
		{"insert at end", "hello", func(h *History, g *buffer.GapBuffer) { insertAt(h, g, 5, '!') }},
		{"insert newline", "hello", func(h *History, g *buffer.GapBuffer) { insertAt(h, g, 3, '\n') }},
		{"delete", "hello", func(h *History, g *buffer.GapBuffer) { deleteAt(h, g, 0) }},
		{"delete newline", "ab\ncd", func(h *History, g *buffer.GapBuffer) { deleteAt(h, g, 2) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New()
			g := buffer.NewFromString(tt.text)

			tt.apply(h, g)
			after := capture(g)

			h.Undo(g)
			if g.String() != tt.text {
				t.Errorf("undo: expected %q, got %q", tt.text, g.String())
			}
			undone := capture(g)

			h.Redo(g)
			if got := capture(g); got != after {
				t.Errorf("redo: expected %+v, got %+v", after, got)
			}

			h.Undo(g)
			if got := capture(g); got != undone {
				t.Errorf("second undo: expected %+v, got %+v", undone, got)
			}
		})
	}
}

func TestUndoSequence(t *testing.T) {
	h := New()
	g := buffer.New(buffer.WithCapacity(2))

	for i, c := range []byte("abc") {
		insertAt(h, g, i, c)
	}
	if h.UndoCount() != 3 {
		t.Fatalf("expected 3 entries, got %d", h.UndoCount())
	}

	expected := []string{"ab", "a", ""}
	for _, want := range expected {
		h.Undo(g)
		if g.String() != want {
			t.Errorf("expected %q, got %q", want, g.String())
		}
	}

	for _, want := range []string{"a", "ab", "abc"} {
		h.Redo(g)
		if g.String() != want {
			t.Errorf("expected %q, got %q", want, g.String())
		}
	}
}

func TestUndoLeavesGapAtEditPosition(t *testing.T) {
	h := New()
	g := buffer.NewFromString("hello world")

	insertAt(h, g, 5, ',')
	g.MoveGapTo(0)

	h.Undo(g)
	if g.GapStart() != 5 {
		t.Errorf("expected gap at 5 after undo, got %d", g.GapStart())
	}

	h.Redo(g)
	if g.GapStart() != 6 {
		t.Errorf("expected gap at 6 after redo, got %d", g.GapStart())
	}
}

func TestPushClearsRedo(t *testing.T) {
	h := New()
	g := buffer.NewFromString("abc")

	deleteAt(h, g, 0)
	deleteAt(h, g, 0)
	h.Undo(g)
	h.Undo(g)
	if h.RedoCount() != 2 {
		t.Fatalf("expected 2 redo entries, got %d", h.RedoCount())
	}

	insertAt(h, g, 3, 'd')
	if h.CanRedo() {
		t.Error("push should clear redo")
	}
	if h.Redo(g) {
		t.Error("redo should return false after push")
	}

	h.Undo(g)
	if !h.Redo(g) {
		t.Error("redo should work again after an undo")
	}
}

func TestMaxEntries(t *testing.T) {
	h := New(WithMaxEntries(2))
	g := buffer.New()

	for i, c := range []byte("abcd") {
		insertAt(h, g, i, c)
	}
	if h.UndoCount() != 2 {
		t.Errorf("expected 2 entries, got %d", h.UndoCount())
	}

	h.Undo(g)
	h.Undo(g)
	if h.Undo(g) {
		t.Error("oldest entries should have been dropped")
	}
	if g.String() != "ab" {
		t.Errorf("expected %q, got %q", "ab", g.String())
	}
}

func TestPeek(t *testing.T) {
	h := New()
	g := buffer.New()

	if _, ok := h.PeekUndo(); ok {
		t.Error("peek on empty history should fail")
	}

	insertAt(h, g, 0, 'z')
	entry, ok := h.PeekUndo()
	if !ok || entry.Len() != 1 || entry.Edits[0].Byte != 'z' {
		t.Errorf("unexpected peek result %+v", entry)
	}
	if entry.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}

	h.Undo(g)
	if entry, ok := h.PeekRedo(); !ok || entry.Edits[0].Kind != KindInsert {
		t.Errorf("unexpected redo peek %+v", entry)
	}
}

func TestClear(t *testing.T) {
	h := New()
	g := buffer.New()
	insertAt(h, g, 0, 'a')
	h.Undo(g)
	h.BeginGroup("open")

	h.Clear()
	if h.CanUndo() || h.CanRedo() || h.IsGrouping() {
		t.Error("clear should reset all state")
	}
}

// Grouping Tests

func TestGroupUndoesAsOneUnit(t *testing.T) {
	h := New()
	g := buffer.NewFromString("ab")

	h.BeginGroup("paste")
	for i, c := range []byte("XYZ") {
		insertAt(h, g, 1+i, c)
	}
	h.EndGroup()

	if g.String() != "aXYZb" {
		t.Fatalf("expected %q, got %q", "aXYZb", g.String())
	}
	if h.UndoCount() != 1 {
		t.Fatalf("expected 1 entry, got %d", h.UndoCount())
	}

	h.Undo(g)
	if g.String() != "ab" {
		t.Errorf("expected %q, got %q", "ab", g.String())
	}

	h.Redo(g)
	if g.String() != "aXYZb" {
		t.Errorf("expected %q, got %q", "aXYZb", g.String())
	}
	if g.GapStart() != 4 {
		t.Errorf("expected gap at 4 after redo, got %d", g.GapStart())
	}
}

func TestGroupOfDeletesAtSamePosition(t *testing.T) {
	h := New()
	g := buffer.NewFromString("hello world")

	h.BeginGroup("delete selection")
	for i := 0; i < 6; i++ {
		deleteAt(h, g, 0)
	}
	h.EndGroup()

	if g.String() != "world" {
		t.Fatalf("expected %q, got %q", "world", g.String())
	}

	h.Undo(g)
	if g.String() != "hello world" {
		t.Errorf("expected %q, got %q", "hello world", g.String())
	}
}

func TestEmptyGroupRecordsNothing(t *testing.T) {
	h := New()
	h.BeginGroup("nothing")
	h.EndGroup()

	if h.CanUndo() {
		t.Error("empty group should not create an entry")
	}
}

func TestNestedBeginGroupIgnored(t *testing.T) {
	h := New()
	g := buffer.New()

	h.BeginGroup("outer")
	insertAt(h, g, 0, 'a')
	h.BeginGroup("inner")
	insertAt(h, g, 1, 'b')
	h.EndGroup()

	entry, _ := h.PeekUndo()
	if entry.Name != "outer" || entry.Len() != 2 {
		t.Errorf("unexpected entry %+v", entry)
	}
}

func TestCancelGroup(t *testing.T) {
	h := New()
	g := buffer.New()

	h.BeginGroup("abandoned")
	insertAt(h, g, 0, 'a')
	h.CancelGroup()

	if h.CanUndo() {
		t.Error("cancelled group should not be recorded")
	}
	if g.String() != "a" {
		t.Error("cancel should not revert the buffer")
	}
}

func TestGroupScope(t *testing.T) {
	h := New()
	g := buffer.New()

	func() {
		scope := h.GroupScope("typing")
		defer scope.End()
		insertAt(h, g, 0, 'h')
		insertAt(h, g, 1, 'i')
	}()

	if h.IsGrouping() {
		t.Error("scope should be closed")
	}
	if h.UndoCount() != 1 {
		t.Errorf("expected 1 entry, got %d", h.UndoCount())
	}
}
