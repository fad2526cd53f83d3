package app

import "github.com/gdamore/tcell/v2"

// Action is an editor command produced from a key event.
type Action int

// Editor actions.
const (
	ActionNone Action = iota
	ActionInsert
	ActionNewline
	ActionTab
	ActionBackspace
	ActionDelete
	ActionLeft
	ActionRight
	ActionUp
	ActionDown
	ActionHome
	ActionEnd
	ActionPageUp
	ActionPageDown
	ActionUndo
	ActionRedo
	ActionCopy
	ActionCut
	ActionPaste
	ActionSelectAll
	ActionSave
	ActionReload
	ActionQuit
	ActionClearStatus
	ActionEscape
)

var actionNames = map[Action]string{
	ActionNone:        "none",
	ActionInsert:      "insert",
	ActionNewline:     "newline",
	ActionTab:         "tab",
	ActionBackspace:   "backspace",
	ActionDelete:      "delete",
	ActionLeft:        "left",
	ActionRight:       "right",
	ActionUp:          "up",
	ActionDown:        "down",
	ActionHome:        "home",
	ActionEnd:         "end",
	ActionPageUp:      "page-up",
	ActionPageDown:    "page-down",
	ActionUndo:        "undo",
	ActionRedo:        "redo",
	ActionCopy:        "copy",
	ActionCut:         "cut",
	ActionPaste:       "paste",
	ActionSelectAll:   "select-all",
	ActionSave:        "save",
	ActionReload:      "reload",
	ActionQuit:        "quit",
	ActionClearStatus: "clear-status",
	ActionEscape:      "escape",
}

// String returns the action name.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Command is a translated key event.
type Command struct {
	Action Action

	// Byte is the character for ActionInsert.
	Byte byte

	// Extend is set for motions made with Shift held.
	Extend bool
}

// Translate maps a key event to a command. Keys without a binding, and
// runes outside printable ASCII, give ActionNone.
//
// Several control keys share codes with named keys in tcell: Ctrl-H is
// Backspace, Ctrl-I is Tab and Ctrl-M is Enter.
func Translate(ev *tcell.EventKey) Command {
	extend := ev.Modifiers()&tcell.ModShift != 0

	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 && r >= 'a' && r <= 'z' {
			// Some terminals report Ctrl-letter as a modified rune.
			return Command{Action: ctrlBindings[tcell.KeyCtrlA+tcell.Key(r-'a')]}
		}
		if r < 0x20 || r > 0x7e {
			return Command{}
		}
		return Command{Action: ActionInsert, Byte: byte(r)}

	case tcell.KeyEnter:
		return Command{Action: ActionNewline}
	case tcell.KeyTab:
		return Command{Action: ActionTab}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Command{Action: ActionBackspace}
	case tcell.KeyDelete:
		return Command{Action: ActionDelete}

	case tcell.KeyLeft:
		return Command{Action: ActionLeft, Extend: extend}
	case tcell.KeyRight:
		return Command{Action: ActionRight, Extend: extend}
	case tcell.KeyUp:
		return Command{Action: ActionUp, Extend: extend}
	case tcell.KeyDown:
		return Command{Action: ActionDown, Extend: extend}
	case tcell.KeyHome:
		return Command{Action: ActionHome, Extend: extend}
	case tcell.KeyEnd:
		return Command{Action: ActionEnd, Extend: extend}
	case tcell.KeyPgUp:
		return Command{Action: ActionPageUp, Extend: extend}
	case tcell.KeyPgDn:
		return Command{Action: ActionPageDown, Extend: extend}

	case tcell.KeyEscape:
		return Command{Action: ActionEscape}
	}

	return Command{Action: ctrlBindings[ev.Key()]}
}

// ctrlBindings maps Ctrl-letter keys to actions.
var ctrlBindings = map[tcell.Key]Action{
	tcell.KeyCtrlQ: ActionQuit,
	tcell.KeyCtrlS: ActionSave,
	tcell.KeyCtrlR: ActionReload,
	tcell.KeyCtrlZ: ActionUndo,
	tcell.KeyCtrlY: ActionRedo,
	tcell.KeyCtrlC: ActionCopy,
	tcell.KeyCtrlX: ActionCut,
	tcell.KeyCtrlV: ActionPaste,
	tcell.KeyCtrlA: ActionSelectAll,
	tcell.KeyCtrlF: ActionClearStatus,
}
