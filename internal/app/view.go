package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gaptext/internal/config"
	"github.com/dshills/gaptext/internal/syntax"
)

// Theme colors, as ANSI palette indexes.
var (
	styleText      = tcell.StyleDefault
	styleGutter    = tcell.StyleDefault.Foreground(tcell.PaletteColor(6))
	styleStatusBar = tcell.StyleDefault.Reverse(true)
	styleSelection = tcell.StyleDefault.Reverse(true)
	styleTilde     = tcell.StyleDefault.Foreground(tcell.PaletteColor(4))

	highlightStyles = map[syntax.Highlight]tcell.Style{
		syntax.Normal:  styleText,
		syntax.Keyword: tcell.StyleDefault.Foreground(tcell.PaletteColor(3)),
		syntax.String:  tcell.StyleDefault.Foreground(tcell.PaletteColor(2)),
		syntax.Comment: tcell.StyleDefault.Foreground(tcell.PaletteColor(6)),
		syntax.Number:  tcell.StyleDefault.Foreground(tcell.PaletteColor(1)),
	}
)

// View draws a document onto a screen. The bottom two rows hold the status
// bar and the message line; the rest shows text.
type View struct {
	screen   tcell.Screen
	settings config.Settings

	rowOff int
	colOff int
}

// NewView creates a view drawing to screen.
func NewView(screen tcell.Screen, settings config.Settings) *View {
	return &View{screen: screen, settings: settings}
}

// TextRows returns the number of rows available for text.
func (v *View) TextRows() int {
	_, h := v.screen.Size()
	return max(h-v.chromeRows(), 1)
}

// Offsets returns the first visible row and column.
func (v *View) Offsets() (row, col int) {
	return v.rowOff, v.colOff
}

func (v *View) chromeRows() int {
	if v.settings.ShowStatusBar {
		return 2
	}
	return 1
}

// gutterWidth is the width of line numbers plus padding, or zero.
func (v *View) gutterWidth(lines int) int {
	if !v.settings.ShowLineNumbers {
		return 0
	}
	return len(strconv.Itoa(lines)) + 2
}

// scroll adjusts the offsets so the cursor is visible.
func (v *View) scroll(doc *Document, textCols int) {
	cur := doc.Session.Cursor()
	rows := v.TextRows()

	if cur.Row < v.rowOff {
		v.rowOff = cur.Row
	}
	if cur.Row >= v.rowOff+rows {
		v.rowOff = cur.Row - rows + 1
	}

	if cur.Col < v.colOff {
		v.colOff = cur.Col
	}
	if textCols > 0 && cur.Col >= v.colOff+textCols {
		v.colOff = cur.Col - textCols + 1
	}
}

// Draw renders the document, status bar and message line.
func (v *View) Draw(doc *Document, message string) {
	v.screen.Clear()
	width, height := v.screen.Size()
	s := doc.Session

	lines := s.LineCount()
	gutter := v.gutterWidth(lines)
	v.scroll(doc, width-gutter)

	var scanner *syntax.Scanner
	state := syntax.StateNormal
	if v.settings.SyntaxHighlighting && doc.Language != nil {
		scanner = syntax.NewScanner(doc.Language)
		for row := 0; row < v.rowOff && row < lines; row++ {
			_, state = scanner.Line(s.LineText(row), state)
		}
	}

	rows := v.TextRows()
	sel := s.Selection()
	for y := 0; y < rows; y++ {
		row := v.rowOff + y
		if row >= lines {
			v.drawString(0, y, "~", styleTilde, width)
			continue
		}

		if gutter > 0 {
			num := fmt.Sprintf("%*d ", gutter-1, row+1)
			v.drawString(0, y, num, styleGutter, gutter)
		}

		line := s.LineText(row)
		var hl []syntax.Highlight
		if scanner != nil {
			hl, state = scanner.Line(line, state)
		}

		for col := v.colOff; col < len(line); col++ {
			x := gutter + col - v.colOff
			if x >= width {
				break
			}
			style := styleText
			if hl != nil {
				style = highlightStyles[hl[col]]
			}
			if sel.Active() && sel.Contains(row, col) {
				style = styleSelection
			}
			v.screen.SetContent(x, y, displayRune(line[col]), nil, style)
		}
	}

	if v.settings.ShowStatusBar {
		v.drawStatusBar(doc, height-2, width)
	}
	v.drawString(0, height-1, message, styleText, width)

	cur := s.Cursor()
	v.screen.ShowCursor(gutter+cur.Col-v.colOff, cur.Row-v.rowOff)
	v.screen.Show()
}

// StatusLeft formats the left side of the status bar.
func StatusLeft(doc *Document, lines int) string {
	name := doc.Name
	if len(name) > 20 {
		name = name[:20]
	}
	modified := ""
	if doc.IsModified() {
		modified = "(modified)"
	}
	return fmt.Sprintf(" %s - %d lines %s", name, lines, modified)
}

// StatusRight formats the 1-based cursor position.
func StatusRight(doc *Document) string {
	cur := doc.Session.Cursor()
	return fmt.Sprintf("%d,%d ", cur.Row+1, cur.Col+1)
}

func (v *View) drawStatusBar(doc *Document, y, width int) {
	left := StatusLeft(doc, doc.Session.LineCount())
	right := StatusRight(doc)

	bar := left
	if pad := width - len(left) - len(right); pad >= 0 {
		bar = left + strings.Repeat(" ", pad) + right
	}
	v.drawBar(y, bar, width)
}

// drawBar draws text in status bar style across the full width.
func (v *View) drawBar(y int, text string, width int) {
	if len(text) < width {
		text += strings.Repeat(" ", width-len(text))
	}
	v.drawString(0, y, text, styleStatusBar, width)
}

// welcomeLines is the start screen shown when no file is given.
var welcomeLines = []string{
	"gaptext",
	"a small terminal text editor",
	"",
	"Arrows ........ move        Shift+Arrows .. select",
	"Home/End ...... line        Ctrl-A ........ select all",
	"PgUp/PgDn ..... scroll      Ctrl-C/X/V .... copy/cut/paste",
	"Backspace/Del . remove      Esc ........... clear selection",
	"Ctrl-S ........ save        Ctrl-Z/Y ...... undo/redo",
	"Ctrl-Q ........ quit        Ctrl-R ........ reload from disk",
	"",
	"Press any key to start editing",
}

// DrawWelcome renders the start screen.
func (v *View) DrawWelcome() {
	v.screen.Clear()
	width, height := v.screen.Size()
	rows := v.TextRows()

	top := max((rows-len(welcomeLines))/2, 0)
	for y := 0; y < rows; y++ {
		i := y - top
		if i < 0 || i >= len(welcomeLines) {
			v.drawString(0, y, "~", styleTilde, width)
			continue
		}
		line := welcomeLines[i]
		x := max((width-len(line))/2, 0)
		style := styleText
		if i == 0 {
			style = style.Bold(true).Foreground(tcell.PaletteColor(6))
		}
		v.drawString(x, y, line, style, width)
	}

	if v.settings.ShowStatusBar {
		v.drawBar(height-2, " Welcome to gaptext - Press any key to start", width)
	}
	v.screen.HideCursor()
	v.screen.Show()
}

// drawString writes s from x on row y, clipped to limit columns.
func (v *View) drawString(x, y int, s string, style tcell.Style, limit int) {
	for i := 0; i < len(s) && x+i < limit; i++ {
		v.screen.SetContent(x+i, y, displayRune(s[i]), nil, style)
	}
}

// displayRune maps a content byte to the rune drawn for it.
func displayRune(c byte) rune {
	switch {
	case c == '\t':
		return ' '
	case c < 0x20 || c >= 0x7f:
		return '?'
	default:
		return rune(c)
	}
}
