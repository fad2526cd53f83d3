package history

import "fmt"

// Kind identifies the type of a recorded edit.
type Kind uint8

const (
	// KindInsert records a byte inserted at Pos.
	KindInsert Kind = iota
	// KindDelete records a byte removed from Pos.
	KindDelete
	// KindInsertNewline records a newline inserted at Pos.
	KindInsertNewline
	// KindDeleteNewline records a newline removed from Pos.
	KindDeleteNewline
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindInsert:
		return "insert"
	case KindDelete:
		return "delete"
	case KindInsertNewline:
		return "insert-newline"
	case KindDeleteNewline:
		return "delete-newline"
	default:
		return "unknown"
	}
}

// IsInsert returns true for the insert kinds.
func (k Kind) IsInsert() bool {
	return k == KindInsert || k == KindInsertNewline
}

// Target is the mutation surface history replays edits against.
// *buffer.GapBuffer satisfies it.
type Target interface {
	MoveGapTo(pos int)
	Insert(c byte)
	Delete() bool
}

// Edit is a minimal reversible mutation: one byte inserted at, or removed
// from, a linear position.
type Edit struct {
	Kind Kind
	Pos  int
	Byte byte
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	return fmt.Sprintf("%s %q@%d", e.Kind, e.Byte, e.Pos)
}

// Invert returns the edit that undoes e.
func (e Edit) Invert() Edit {
	inv := e
	switch e.Kind {
	case KindInsert:
		inv.Kind = KindDelete
	case KindDelete:
		inv.Kind = KindInsert
	case KindInsertNewline:
		inv.Kind = KindDeleteNewline
	case KindDeleteNewline:
		inv.Kind = KindInsertNewline
	}
	return inv
}

// Apply repositions the target's gap at Pos and performs the edit.
func (e Edit) Apply(t Target) {
	t.MoveGapTo(e.Pos)
	if e.Kind.IsInsert() {
		t.Insert(e.Byte)
		return
	}
	t.Delete()
}
