package app

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dshills/gaptext/internal/engine"
	"github.com/dshills/gaptext/internal/syntax"
)

// Document is an editing session bound to an optional file.
type Document struct {
	// Path is the absolute file path (empty for scratch buffers).
	Path string

	// Name is the display name (file name or "[No Name]").
	Name string

	// Session holds the text and all editing state.
	Session *engine.Session

	// Language is the detected syntax, nil when unknown.
	Language *syntax.Language

	// IsNew is true when Path did not exist when the document was opened.
	IsNew bool
}

// NewScratchDocument creates a document with no file.
func NewScratchDocument(opts ...engine.Option) *Document {
	return &Document{
		Name:    "[No Name]",
		Session: engine.New(opts...),
	}
}

// OpenDocument loads path into a new session. A path that does not exist
// yet opens as an empty document that will be created on save.
func OpenDocument(path string, opts ...engine.Option) (*Document, error) {
	if path == "" {
		return NewScratchDocument(opts...), nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}

	doc := &Document{
		Path:     absPath,
		Name:     filepath.Base(absPath),
		Language: syntax.Detect(absPath),
	}

	f, err := os.Open(absPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		doc.Session = engine.New(opts...)
		doc.IsNew = true
		return doc, nil
	case err != nil:
		return nil, NewOperationError("open", absPath, err)
	}
	defer f.Close()

	doc.Session, err = engine.NewFromReader(f, opts...)
	if err != nil {
		return nil, NewOperationError("read", absPath, err)
	}
	return doc, nil
}

// IsScratch returns true if this is a scratch buffer (no file path).
func (d *Document) IsScratch() bool {
	return d.Path == ""
}

// IsModified returns true if the document has unsaved changes.
func (d *Document) IsModified() bool {
	return d.Session.Modified()
}

// Save writes the document to its file and returns the number of bytes
// written.
func (d *Document) Save() (int, error) {
	if d.IsScratch() {
		return 0, ErrNoPath
	}

	var buf bytes.Buffer
	if _, err := d.Session.Save(&buf); err != nil {
		return 0, NewOperationError("save", d.Path, err)
	}
	if err := writeFileAtomic(d.Path, buf.Bytes()); err != nil {
		return 0, NewOperationError("save", d.Path, err)
	}

	d.Session.MarkSaved()
	d.IsNew = false
	return buf.Len(), nil
}

// SaveAs binds the document to path and saves it.
func (d *Document) SaveAs(path string) (int, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return 0, NewOperationError("save", path, err)
	}
	d.Path = absPath
	d.Name = filepath.Base(absPath)
	d.Language = syntax.Detect(absPath)
	return d.Save()
}

// Reload replaces the content with the file on disk.
func (d *Document) Reload() error {
	if d.IsScratch() {
		return ErrNoPath
	}
	f, err := os.Open(d.Path)
	if err != nil {
		return NewOperationError("reload", d.Path, err)
	}
	defer f.Close()

	if err := d.Session.Load(f); err != nil {
		return NewOperationError("reload", d.Path, err)
	}
	d.IsNew = false
	return nil
}

// writeFileAtomic writes data to a temporary file beside path and renames
// it into place. An existing file keeps its permissions.
func writeFileAtomic(path string, data []byte) (err error) {
	perm := fs.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), perm); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
