package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gaptext/internal/config"
	"github.com/dshills/gaptext/internal/engine"
	"github.com/dshills/gaptext/internal/watch"
)

// Status messages.
const (
	msgHelp       = "Ctrl-S=save | Ctrl-Q=quit | Shift+Arrows=select | Ctrl-A=all | Esc=clear"
	msgNoFilename = "No filename!"
	msgSaveFailed = "Save failed!"
	msgSelectAll  = "Selected all"
	msgUnsaved    = "Unsaved changes! Press Ctrl-Q again to quit"
	msgReloaded   = "Reloaded from disk"
	msgChanged    = "File changed on disk - Ctrl-R to reload"
	msgRemoved    = "File removed on disk"
)

// quitSignal is posted to the screen when the run context ends.
type quitSignal struct{}

// Application runs one document on one screen.
type Application struct {
	screen   tcell.Screen
	settings config.Settings
	logger   *Logger

	doc     *Document
	view    *View
	watcher *watch.Watcher

	message   string
	welcome   bool
	quitArmed bool
}

// Option configures an Application.
type Option func(*Application)

// WithLogger sets the application logger.
func WithLogger(l *Logger) Option {
	return func(app *Application) {
		if l != nil {
			app.logger = l
		}
	}
}

// New creates an application drawing to screen. The screen must already
// be initialized. The application starts with a scratch document.
func New(screen tcell.Screen, settings config.Settings, opts ...Option) *Application {
	app := &Application{
		screen:   screen,
		settings: settings,
		logger:   NullLogger,
	}
	for _, opt := range opts {
		opt(app)
	}

	app.doc = NewScratchDocument(settings.EngineOptions()...)
	app.view = NewView(screen, settings)
	app.welcome = settings.ShowWelcome
	return app
}

// Open replaces the current document with the file at path and starts
// watching it when enabled.
func (app *Application) Open(path string) error {
	doc, err := OpenDocument(path, app.settings.EngineOptions()...)
	if err != nil {
		app.logger.Error("open failed: %v", err)
		return err
	}

	app.closeWatcher()
	app.doc = doc
	app.welcome = false
	app.message = msgHelp
	app.logger.WithField("path", doc.Path).Info("opened %d bytes", doc.Session.Len())

	if app.settings.WatchFile && !doc.IsScratch() {
		w, err := watch.New(doc.Path)
		if err != nil {
			app.logger.WithComponent("watch").Warn("cannot watch %s: %v", doc.Path, err)
			return nil
		}
		app.watcher = w
		go app.forwardWatchEvents(w)
	}
	return nil
}

// Document returns the open document.
func (app *Application) Document() *Document {
	return app.doc
}

// Session returns the open document's session.
func (app *Application) Session() *engine.Session {
	return app.doc.Session
}

// Message returns the current status message.
func (app *Application) Message() string {
	return app.message
}

// SetMessage sets the status message.
func (app *Application) SetMessage(format string, args ...any) {
	app.message = fmt.Sprintf(format, args...)
}

// ShowingWelcome returns true while the start screen is displayed.
func (app *Application) ShowingWelcome() bool {
	return app.welcome
}

// Close releases the file watcher.
func (app *Application) Close() error {
	return app.closeWatcher()
}

func (app *Application) closeWatcher() error {
	if app.watcher == nil {
		return nil
	}
	err := app.watcher.Close()
	app.watcher = nil
	return err
}

// forwardWatchEvents posts file changes into the screen's event queue so
// they are handled on the event loop goroutine. Watcher errors are logged.
// It returns when the watcher is closed.
func (app *Application) forwardWatchEvents(w *watch.Watcher) {
	app.forward(w.Events(), w.Errors())
}

func (app *Application) forward(events <-chan watch.Event, errs <-chan error) {
	log := app.logger.WithComponent("watch")
	for events != nil || errs != nil {
		select {
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			_ = app.screen.PostEvent(tcell.NewEventInterrupt(ev))
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			log.Warn("watch error: %v", err)
		}
	}
}

// Run draws and processes events until the user quits or ctx ends.
// A normal quit returns ErrQuit.
func (app *Application) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = app.screen.PostEvent(tcell.NewEventInterrupt(quitSignal{}))
	})
	defer stop()

	app.Draw()
	for {
		ev := app.screen.PollEvent()
		if ev == nil {
			return ErrQuit
		}
		if err := app.HandleEvent(ev); err != nil {
			return err
		}
		app.Draw()
	}
}

// Draw renders the current state.
func (app *Application) Draw() {
	if app.welcome {
		app.view.DrawWelcome()
		return
	}
	app.view.Draw(app.doc, app.message)
}

// HandleEvent processes one screen event. It returns ErrQuit when the
// application should exit.
func (app *Application) HandleEvent(ev tcell.Event) error {
	switch e := ev.(type) {
	case *tcell.EventKey:
		if app.welcome {
			app.welcome = false
			app.message = ""
			return nil
		}
		return app.Execute(Translate(e))

	case *tcell.EventResize:
		app.screen.Sync()

	case *tcell.EventInterrupt:
		switch data := e.Data().(type) {
		case quitSignal:
			return ErrQuit
		case watch.Event:
			app.handleFileChange(data)
		}
	}
	return nil
}

// Execute applies one command to the document.
func (app *Application) Execute(cmd Command) error {
	if cmd.Action != ActionQuit {
		app.quitArmed = false
	}

	s := app.doc.Session
	switch cmd.Action {
	case ActionInsert:
		s.InsertByte(cmd.Byte)
	case ActionNewline:
		s.InsertNewline()
	case ActionTab:
		s.InsertTab()
	case ActionBackspace:
		s.Backspace()
	case ActionDelete:
		s.DeleteForward()

	case ActionLeft:
		s.Move(engine.Left, cmd.Extend)
	case ActionRight:
		s.Move(engine.Right, cmd.Extend)
	case ActionUp:
		s.Move(engine.Up, cmd.Extend)
	case ActionDown:
		s.Move(engine.Down, cmd.Extend)
	case ActionHome:
		s.Move(engine.Home, cmd.Extend)
	case ActionEnd:
		s.Move(engine.End, cmd.Extend)
	case ActionPageUp:
		s.PageUp(app.view.TextRows(), cmd.Extend)
	case ActionPageDown:
		s.PageDown(app.view.TextRows(), cmd.Extend)

	case ActionUndo:
		s.Undo()
	case ActionRedo:
		s.Redo()
	case ActionCopy:
		if n := s.Copy(); n > 0 {
			app.SetMessage("Copied %d bytes", n)
		}
	case ActionCut:
		if n := s.Cut(); n > 0 {
			app.SetMessage("Cut %d bytes", n)
		}
	case ActionPaste:
		s.Paste()
	case ActionSelectAll:
		s.SelectAll()
		app.message = msgSelectAll

	case ActionSave:
		app.save()
	case ActionReload:
		app.reload()
	case ActionQuit:
		return app.quit()
	case ActionClearStatus:
		app.message = ""
	case ActionEscape:
		s.ClearSelection()
		app.message = ""
	}

	app.logger.Debug("%s -> %s", cmd.Action, s.Cursor())
	return nil
}

func (app *Application) save() {
	if app.doc.IsScratch() {
		app.message = msgNoFilename
		return
	}
	n, err := app.doc.Save()
	if err != nil {
		app.logger.Error("%v", err)
		app.message = msgSaveFailed
		return
	}
	app.logger.WithFields(map[string]any{"path": app.doc.Path, "bytes": n}).Info("saved")
	app.SetMessage("Saved! %d bytes", n)
}

func (app *Application) reload() {
	if app.doc.IsScratch() {
		app.message = msgNoFilename
		return
	}
	if err := app.doc.Reload(); err != nil {
		app.logger.Error("%v", err)
		app.SetMessage("Reload failed: %v", errors.Unwrap(err))
		return
	}
	app.message = msgReloaded
}

func (app *Application) quit() error {
	if app.doc.IsModified() && !app.quitArmed {
		app.quitArmed = true
		app.message = msgUnsaved
		return nil
	}
	return ErrQuit
}

// handleFileChange reacts to the open file changing on disk. Changes that
// leave the file identical to the buffer, such as our own saves, are
// ignored.
func (app *Application) handleFileChange(ev watch.Event) {
	if ev.Path != app.doc.Path {
		return
	}
	log := app.logger.WithComponent("watch").WithField("path", ev.Path)

	data, err := os.ReadFile(ev.Path)
	if err != nil {
		log.Warn("file change %s: %v", ev.Op, err)
		app.message = msgRemoved
		return
	}
	if bytes.Equal(data, app.doc.Session.Bytes()) {
		return
	}

	if app.doc.IsModified() {
		log.Info("file changed on disk with unsaved edits")
		app.message = msgChanged
		return
	}
	if err := app.doc.Session.Load(bytes.NewReader(data)); err != nil {
		log.Error("reload: %v", err)
		return
	}
	log.Info("reloaded %d bytes", len(data))
	app.message = msgReloaded
}
