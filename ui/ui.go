// @lixen: #focus{ui[facade,loop]}
package ui

import (
	"os"
	"sync/atomic"

	"github.com/lixenwraith/editerm/terminal"
)

// CursorMode distinguishes the buffer cursor from the prompt cursor,
// which is forced onto the status row.
type CursorMode uint8

const (
	CursorBuffer CursorMode = iota
	CursorPrompt
)

// Cursor is the requested cursor placement, applied on refresh
type Cursor struct {
	Mode  CursorMode
	Coord DisplayCoord
}

// OnKeyCallback receives decoded keys in arrival order
type OnKeyCallback func(terminal.Key)

// UI owns the terminal and the three overlay windows. All methods must
// be called from the goroutine running Run (or before it starts); the
// only cross-goroutine entry points are Stop and Wake-driven signals.
type UI struct {
	term    Backend
	writer  *terminal.Writer
	decoder *terminal.Decoder

	window Window
	menu   menuWindow
	info   infoWindow

	cursor     Cursor
	dimensions DisplayCoord

	statusOnTop      bool
	setTitle         bool
	shiftFunctionKey int
	wheelUpButton    int
	wheelDownButton  int
	assistant        []string

	statusLen     int
	dirty         bool
	resizePending bool
	stdinDisabled bool
	stopped       atomic.Bool

	onKey OnKeyCallback
}

// New acquires the terminal on stdin/stdout and brings up the UI:
// alternate screen, raw mode, mouse reporting, an initial forced
// resize and a first redraw. The initial resize leaves a synthetic
// Resize key pending.
func New() (*UI, error) {
	term, err := terminal.Open(os.Stdin, os.Stdout)
	if err != nil {
		return nil, err
	}
	return NewFromBackend(term), nil
}

// NewFromBackend brings up the UI on an already-acquired backend; the
// real tty and the virtual terminal both qualify.
func NewFromBackend(term Backend) *UI {
	u := &UI{
		term:             term,
		writer:           term.Writer(),
		assistant:        assistantClippy,
		setTitle:         true,
		shiftFunctionKey: defaultShiftFunctionKey,
		wheelUpButton:    4,
		wheelDownButton:  5,
	}
	u.decoder = terminal.NewDecoder(term.ReadByte)
	u.decoder.OnSuspend = term.RaiseSuspend

	term.EnableMouse(true)

	u.checkResize(true)
	u.redraw(false)
	return u
}

// Close restores the terminal. Safe after a hangup teardown.
func (u *UI) Close() {
	u.term.Close()
}

// Dimensions returns the drawable size: one row is reserved for status
func (u *UI) Dimensions() DisplayCoord {
	return u.dimensions
}

// contentLineOffset translates window rows to terminal rows
func (u *UI) contentLineOffset() int {
	if u.statusOnTop {
		return 1
	}
	return 0
}

// statusRow returns the terminal row of the status line
func (u *UI) statusRow() int {
	if u.statusOnTop {
		return 0
	}
	return u.dimensions.Line
}

// menuRect is the region the info box must avoid
func (u *UI) menuRect() Rect {
	return Rect{Pos: u.menu.Pos, Size: u.menu.Size}
}

// SetOnKey installs the key callback and wakes the loop so pending
// synthetic keys are delivered.
func (u *UI) SetOnKey(cb OnKeyCallback) {
	u.onKey = cb
	u.term.Wake()
}

// SetCursor records the cursor placement applied on the next refresh
func (u *UI) SetCursor(mode CursorMode, coord DisplayCoord) {
	u.cursor = Cursor{Mode: mode, Coord: coord}
}

// Draw paints the main window from the display buffer lines, padding
// the rows below with '~'.
func (u *UI) Draw(buffer []Line, defaultFace, paddingFace Face) {
	u.checkResize(false)
	if !u.window.Present() {
		return
	}

	dim := u.dimensions
	lineOffset := u.contentLineOffset()
	lineIndex := lineOffset
	for _, line := range buffer {
		if lineIndex >= dim.Line+lineOffset {
			break
		}
		u.window.MoveCursor(DisplayCoord{Line: lineIndex})
		u.window.Draw(line, defaultFace)
		lineIndex++
	}

	face := terminal.MergeFaces(defaultFace, paddingFace)
	for ; lineIndex < dim.Line+lineOffset; lineIndex++ {
		u.window.MoveCursor(DisplayCoord{Line: lineIndex})
		u.window.Draw([]Atom{{Text: "~"}}, face)
	}

	u.dirty = true
}

// DrawStatus paints the status row: the status line on the left, the
// mode line right-aligned, trimmed behind an ellipsis when it does not
// fit. When enabled, the terminal title follows the mode line.
func (u *UI) DrawStatus(statusLine, modeLine Line, defaultFace Face) {
	if !u.window.Present() {
		return
	}

	statusLinePos := u.statusRow()
	u.window.MoveCursor(DisplayCoord{Line: statusLinePos})
	u.window.Draw(statusLine, defaultFace)

	modeLen := modeLine.Length()
	u.statusLen = statusLine.Length()
	remaining := u.dimensions.Column - u.statusLen
	if modeLen < remaining {
		col := u.dimensions.Column - modeLen
		u.window.MoveCursor(DisplayCoord{Line: statusLinePos, Column: col})
		u.window.Draw(modeLine, defaultFace)
	} else if remaining > 2 {
		trimmed := modeLine.Trim(modeLen+2-remaining, remaining-2)
		trimmed = append(Line{{Text: "…"}}, trimmed...)

		col := u.dimensions.Column - remaining + 1
		u.window.MoveCursor(DisplayCoord{Line: statusLinePos, Column: col})
		u.window.Draw(trimmed, defaultFace)
	}

	if u.setTitle {
		u.writer.SetTitle(modeLine.Text() + " - editerm")
	}

	u.dirty = true
}

// InfoShow opens (or replaces) the info box. A box whose geometry
// cannot fit is simply not shown.
func (u *UI) InfoShow(title, content string, anchor DisplayCoord, face Face, style InfoStyle) {
	u.InfoHide()

	u.info.title = title
	u.info.content = content
	u.info.anchor = anchor
	u.info.face = face
	u.info.style = style

	rect := Rect{
		Pos:  DisplayCoord{Line: u.contentLineOffset()},
		Size: u.dimensions,
	}
	var box infoBox
	switch style {
	case InfoPrompt:
		box = makeInfoBox(title, content, u.dimensions.Column, u.assistant)
		anchor = DisplayCoord{Line: u.statusRow(), Column: u.dimensions.Column - 1}
		anchor = computePos(anchor, box.size, rect, u.menuRect(), false)
	case InfoModal:
		box = makeInfoBox(title, content, u.dimensions.Column, nil)
		half := func(c DisplayCoord) DisplayCoord {
			return DisplayCoord{Line: c.Line / 2, Column: c.Column / 2}
		}
		anchor = rect.Pos.Add(half(rect.Size)).Sub(half(box.size))
	case InfoMenuDoc:
		if !u.menu.Present() {
			return
		}
		rightMaxWidth := u.dimensions.Column - (u.menu.Pos.Column + u.menu.Size.Column)
		leftMaxWidth := u.menu.Pos.Column
		maxWidth := max(rightMaxWidth, leftMaxWidth)
		if maxWidth < 4 {
			return
		}
		box = makeSimpleInfoBox(content, maxWidth)
		anchor.Line = u.menu.Pos.Line
		if box.size.Column <= rightMaxWidth || rightMaxWidth >= leftMaxWidth {
			anchor.Column = u.menu.Pos.Column + u.menu.Size.Column
		} else {
			anchor.Column = u.menu.Pos.Column - box.size.Column
		}
	default:
		maxWidth := u.dimensions.Column - anchor.Column
		if maxWidth < 4 {
			return
		}
		box = makeSimpleInfoBox(content, maxWidth)
		anchor = computePos(anchor, box.size, rect, u.menuRect(), style == InfoInlineAbove)
		anchor.Line += u.contentLineOffset()
	}

	// The info box does not fit
	rectEnd := rect.Pos.Add(rect.Size)
	boxEnd := anchor.Add(box.size)
	if anchor.Line < rect.Pos.Line || anchor.Column < rect.Pos.Column ||
		boxEnd.Line > rectEnd.Line || boxEnd.Column > rectEnd.Column {
		return
	}

	u.info.Create(anchor, box.size)
	for line := 0; line < box.size.Line; line++ {
		u.info.MoveCursor(DisplayCoord{Line: line})
		u.info.Draw([]Atom{{Text: box.contents[line]}}, face)
	}
	u.dirty = true
}

// InfoHide closes the info box
func (u *UI) InfoHide() {
	if !u.info.Present() {
		return
	}
	u.info.Destroy()
	u.dirty = true
}

// Refresh flushes the display when something changed, or always when
// forced.
func (u *UI) Refresh(force bool) {
	if u.dirty || force {
		u.redraw(force)
	}
	u.dirty = false
}

// redraw re-emits every window and places the final cursor. A
// horizontal menu sharing the status row is skipped when it would
// collide with the status text.
func (u *UI) redraw(force bool) {
	u.window.Refresh(u.writer, force)

	if u.menu.columns != 0 || u.menu.Pos.Column > u.statusLen {
		u.menu.Refresh(u.writer, false)
	}

	u.info.Refresh(u.writer, false)

	if u.cursor.Mode == CursorPrompt {
		u.writer.MoveCursor(DisplayCoord{Line: u.statusRow(), Column: u.cursor.Coord.Column})
	} else {
		u.writer.MoveCursor(u.cursor.Coord.Add(DisplayCoord{Line: u.contentLineOffset()}))
	}

	u.writer.Flush()
}

// checkResize requeries the terminal size when a SIGWINCH is pending
// or when forced. The three windows are rebuilt from scratch and menu
// and info are re-shown; a synthetic Resize key becomes pending.
// Failure to query the size silently keeps the previous dimensions.
func (u *UI) checkResize(force bool) {
	pending := u.term.TakeResizePending()
	if !force && !pending {
		return
	}

	lines, columns, err := u.term.WinSize()
	if err != nil {
		return
	}

	hadInfo := u.info.Present()
	hadMenu := u.menu.Present()
	if u.window.Present() {
		u.window.Destroy()
	}
	if hadInfo {
		u.info.Destroy()
	}
	if hadMenu {
		u.menu.Destroy()
	}

	u.window.Create(DisplayCoord{}, DisplayCoord{Line: lines, Column: columns})
	u.dimensions = DisplayCoord{Line: lines - 1, Column: columns}

	if hadMenu {
		u.MenuShow(u.menu.items, u.menu.anchor, u.menu.fg, u.menu.bg, u.menu.style)
	}
	if hadInfo {
		u.InfoShow(u.info.title, u.info.content, u.info.anchor, u.info.face, u.info.style)
	}

	u.resizePending = true
	u.term.Wake()
}

// GetNextKey returns the next available key, surfacing hangup as
// end-of-stream and a pending resize before any real input.
func (u *UI) GetNextKey() (terminal.Key, bool) {
	if u.term.SighupRaised() {
		u.term.UninstallSignals()
		if u.window.Present() {
			u.window.Destroy()
		}
		u.stdinDisabled = true
		return terminal.Key{}, false
	}

	u.checkResize(false)

	if u.resizePending {
		u.resizePending = false
		return terminal.Resize(u.dimensions), true
	}

	if u.stdinDisabled {
		return terminal.Key{}, false
	}

	return u.decoder.GetKey()
}

// suspend runs the SIGTSTP sequence and rebuilds the display on resume
func (u *UI) suspend() {
	u.term.Suspend()
	u.checkResize(true)
	u.Refresh(true)
}

// Run is the event loop: it sleeps until stdin or a signal wakes it,
// services suspension, then drains every complete key into the
// callback. It returns after a hangup or Stop.
func (u *UI) Run() error {
	for !u.stopped.Load() {
		u.term.Wait()

		if u.term.TakeSuspendPending() {
			u.suspend()
		}

		if u.onKey != nil {
			for {
				key, ok := u.GetNextKey()
				if !ok {
					break
				}
				u.onKey(key)
			}
		}

		if u.stdinDisabled {
			return nil
		}
	}
	return nil
}

// Stop makes Run return after the current drain
func (u *UI) Stop() {
	u.stopped.Store(true)
	u.term.Wake()
}
