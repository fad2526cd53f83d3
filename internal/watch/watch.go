// Package watch reports external changes to a single file.
//
// The containing directory is watched rather than the file itself so that
// editors and tools which replace a file by renaming a temporary over it are
// still observed. Bursts of events for the file are coalesced into one Event
// after a quiet period.
package watch

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Common errors returned by watcher operations.
var (
	ErrWatcherClosed = errors.New("watcher is closed")
	ErrPathNotExist  = errors.New("path does not exist")
)

// DefaultDelay is the default quiet period before an event is delivered.
const DefaultDelay = 100 * time.Millisecond

// Op represents the type of file system operation.
type Op uint32

const (
	// OpCreate indicates the file was created.
	OpCreate Op = 1 << iota
	// OpWrite indicates the file was written to.
	OpWrite
	// OpRemove indicates the file was removed.
	OpRemove
	// OpRename indicates the file was renamed away.
	OpRename
)

// String returns a human-readable representation of the operation.
func (op Op) String() string {
	var names []string
	for _, n := range opNames {
		if op.Has(n.op) {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "UNKNOWN"
	}
	return strings.Join(names, "|")
}

var opNames = []struct {
	op   Op
	name string
}{
	{OpCreate, "CREATE"},
	{OpWrite, "WRITE"},
	{OpRemove, "REMOVE"},
	{OpRename, "RENAME"},
}

// Has returns true if the operation includes the given op.
func (op Op) Has(o Op) bool {
	return op&o == o
}

// Event is a coalesced change to the watched file.
type Event struct {
	// Path is the absolute path of the file.
	Path string

	// Op is the union of operations seen during the quiet period.
	Op Op

	// Timestamp is when the last operation was seen.
	Timestamp time.Time
}

// Exists reports whether the file is present after the change.
func (e Event) Exists() bool {
	_, err := os.Stat(e.Path)
	return err == nil
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDelay sets the quiet period. Zero delivers every event immediately.
func WithDelay(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.delay = d
		}
	}
}

// Watcher watches one file.
type Watcher struct {
	mu sync.Mutex

	fsw   *fsnotify.Watcher
	path  string
	delay time.Duration

	events chan Event
	errors chan error

	pending Event
	timer   *time.Timer

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// New starts watching path. The directory containing path must exist; the
// file itself may not exist yet.
func New(path string, opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(absPath)
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPathNotExist
		}
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:     fsw,
		path:    absPath,
		delay:   DefaultDelay,
		events:  make(chan Event, 16),
		errors:  make(chan error, 16),
		closeCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Events returns the event channel. It is closed by Close.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the error channel. It is closed by Close.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher. Pending events are dropped.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	close(w.closeCh)
	w.mu.Unlock()

	err := w.fsw.Close()
	w.closedWg.Wait()

	close(w.events)
	close(w.errors)
	return err
}

// processLoop handles incoming fsnotify events.
func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case fsEvent, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleFSEvent(fsEvent)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

// handleFSEvent filters events to the watched file and schedules delivery.
func (w *Watcher) handleFSEvent(fsEvent fsnotify.Event) {
	if filepath.Clean(fsEvent.Name) != w.path {
		return
	}
	op := convertOp(fsEvent.Op)
	if op == 0 {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}

	w.pending.Path = w.path
	w.pending.Op |= op
	w.pending.Timestamp = time.Now()

	if w.delay == 0 {
		w.flushLocked()
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, w.flush)
}

func (w *Watcher) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.closed {
		w.flushLocked()
	}
}

// flushLocked delivers the pending event without blocking. A full channel
// drops the event; the next change produces a new one.
func (w *Watcher) flushLocked() {
	if w.pending.Op == 0 {
		return
	}
	select {
	case w.events <- w.pending:
	default:
	}
	w.pending = Event{}
}

// convertOp converts fsnotify operations, ignoring chmod.
func convertOp(op fsnotify.Op) Op {
	var result Op
	if op.Has(fsnotify.Create) {
		result |= OpCreate
	}
	if op.Has(fsnotify.Write) {
		result |= OpWrite
	}
	if op.Has(fsnotify.Remove) {
		result |= OpRemove
	}
	if op.Has(fsnotify.Rename) {
		result |= OpRename
	}
	return result
}
