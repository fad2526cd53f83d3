package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case ev := <-w.Events():
		return ev
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestNewNonexistentDir(t *testing.T) {
	_, err := New("/nonexistent/path/that/does/not/exist/file.txt")
	if err != ErrPathNotExist {
		t.Errorf("New error = %v, want ErrPathNotExist", err)
	}
}

func TestWatchWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("one"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, WithDelay(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	defer w.Close()

	if w.Path() != path {
		t.Errorf("Path() = %q, want %q", w.Path(), path)
	}

	if err := os.WriteFile(path, []byte("two"), 0o644); err != nil {
		t.Fatal(err)
	}

	ev := waitEvent(t, w)
	if ev.Path != path {
		t.Errorf("event path = %q, want %q", ev.Path, path)
	}
	if !ev.Op.Has(OpWrite) {
		t.Errorf("expected write op, got %v", ev.Op)
	}
	if !ev.Exists() {
		t.Error("file should exist")
	}
}

func TestWatchCreateNewFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "new.txt")

	w, err := New(path, WithDelay(0))
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	ev := waitEvent(t, w)
	if !ev.Op.Has(OpCreate) {
		t.Errorf("expected create op, got %v", ev.Op)
	}
}

func TestWatchRemove(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("one"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, WithDelay(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	defer w.Close()

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}

	ev := waitEvent(t, w)
	if !ev.Op.Has(OpRemove) {
		t.Errorf("expected remove op, got %v", ev.Op)
	}
	if ev.Exists() {
		t.Error("file should not exist")
	}
}

func TestWatchIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")

	w, err := New(path, WithDelay(0))
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case ev := <-w.Events():
		t.Errorf("unexpected event %+v", ev)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestDebounceCoalesces(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")

	w, err := New(path, WithDelay(150*time.Millisecond))
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	defer w.Close()

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte{byte('a' + i)}, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	ev := waitEvent(t, w)
	if !ev.Op.Has(OpCreate) || !ev.Op.Has(OpWrite) {
		t.Errorf("expected create and write in one event, got %v", ev.Op)
	}

	select {
	case extra := <-w.Events():
		t.Errorf("expected a single event, got another %+v", extra)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestCloseTwice(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "doc.txt"))
	if err != nil {
		t.Fatalf("New error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close error = %v", err)
	}
	if _, ok := <-w.Events(); ok {
		t.Error("events channel should be closed")
	}
}

func TestOpString(t *testing.T) {
	tests := map[Op]string{
		OpCreate: "CREATE",
		OpWrite:  "WRITE",
		OpRemove: "REMOVE",
		OpRename: "RENAME",
		Op(0):    "UNKNOWN",

		OpCreate | OpWrite:            "CREATE|WRITE",
		OpWrite | OpRename:            "WRITE|RENAME",
		OpCreate | OpRemove | OpWrite: "CREATE|WRITE|REMOVE",
	}
	for op, expected := range tests {
		if op.String() != expected {
			t.Errorf("Op(%d).String() = %q, want %q", op, op.String(), expected)
		}
	}
}
