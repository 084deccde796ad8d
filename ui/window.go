// Package ui is the windowed renderer and terminal-facing façade of the
// editor: a main window, a menu and an info box drawn as overlay regions
// of styled text, flushed as positioned SGR output.
package ui

import (
	"strings"

	"github.com/lixenwraith/editerm/terminal"
	"github.com/lixenwraith/editerm/width"
)

// DisplayCoord and Face are shared with the terminal layer
type (
	DisplayCoord = terminal.DisplayCoord
	Face         = terminal.Face
)

// Atom is a contiguous run of text sharing one face. Text never holds
// an embedded newline once drawn into a window.
type Atom struct {
	Text string
	Face Face
}

// Line is an ordered sequence of atoms
type Line []Atom

// Length returns the column length of the whole line
func (l Line) Length() int {
	total := 0
	for _, a := range l {
		total += width.ColumnLength(a.Text)
	}
	return total
}

// Text returns the concatenated atom contents
func (l Line) Text() string {
	var b strings.Builder
	for _, a := range l {
		b.WriteString(a.Text)
	}
	return b.String()
}

// Trim drops the first fromCol columns and keeps at most numCols,
// re-slicing boundary atoms on column boundaries.
func (l Line) Trim(fromCol, numCols int) Line {
	var out Line
	for _, a := range l {
		w := width.ColumnLength(a.Text)
		if fromCol >= w {
			fromCol -= w
			continue
		}
		text := a.Text
		if fromCol > 0 {
			text = text[width.ByteCountTo(text, fromCol):]
			w -= fromCol
			fromCol = 0
		}
		if numCols <= 0 {
			break
		}
		if w > numCols {
			text = text[:width.ByteCountTo(text, numCols)]
			w = width.ColumnLength(text)
		}
		if text != "" {
			out = append(out, Atom{Text: text, Face: a.Face})
		}
		numCols -= w
		if numCols <= 0 {
			break
		}
	}
	return out
}

// Window is a rectangular grid of styled lines with its own cursor.
// A window is present iff its size is non-zero.
type Window struct {
	Pos  DisplayCoord
	Size DisplayCoord

	cursor DisplayCoord
	lines  []Line
}

// Present reports whether the window currently exists on screen
func (w *Window) Present() bool {
	return !w.Size.IsZero()
}

// Create materializes the window's lines. Calling it again with the
// same geometry is a no-op apart from repositioning.
func (w *Window) Create(pos, size DisplayCoord) {
	w.Pos = pos
	w.Size = size
	if len(w.lines) != size.Line {
		w.lines = make([]Line, size.Line)
	}
}

// Destroy releases the lines; the window becomes absent
func (w *Window) Destroy() {
	w.Pos = DisplayCoord{}
	w.Size = DisplayCoord{}
	w.cursor = DisplayCoord{}
	w.lines = nil
}

// MoveCursor assigns the draw position; nothing is painted
func (w *Window) MoveCursor(coord DisplayCoord) {
	w.cursor = coord
}

// ClearLine truncates the current line at the cursor column, splitting
// the boundary atom on a column boundary.
func (w *Window) ClearLine() {
	line := w.lines[w.cursor.Line]
	column := 0
	i := 0
	for ; i < len(line) && column < w.cursor.Column; i++ {
		column += width.ColumnLength(line[i].Text)
	}
	line = line[:i]
	if column > w.cursor.Column {
		last := &line[len(line)-1]
		keep := width.ColumnLength(last.Text) - (column - w.cursor.Column)
		last.Text = last.Text[:width.ByteCountTo(last.Text, keep)]
	}
	w.lines[w.cursor.Line] = line
}

// Draw replaces the current line from the cursor column on with the
// given atoms, each merged over defaultFace. An atom ending in '\n'
// becomes its text plus a one-space padding atom, keeping a trailing
// cursor visible. The line is right-padded to the window width.
func (w *Window) Draw(atoms []Atom, defaultFace Face) {
	w.ClearLine()
	line := w.lines[w.cursor.Line]
	for _, atom := range atoms {
		if atom.Text == "" {
			continue
		}
		face := terminal.MergeFaces(defaultFace, atom.Face)
		if strings.HasSuffix(atom.Text, "\n") {
			text := atom.Text[:len(atom.Text)-1]
			line = append(line,
				Atom{Text: text, Face: face},
				Atom{Text: " ", Face: face})
			w.cursor.Column += width.ColumnLength(text) + 1
		} else {
			line = append(line, Atom{Text: atom.Text, Face: face})
			w.cursor.Column += width.ColumnLength(atom.Text)
		}
	}

	if w.cursor.Column < w.Size.Column {
		pad := strings.Repeat(" ", w.Size.Column-w.cursor.Column)
		line = append(line, Atom{Text: pad, Face: defaultFace})
	}
	w.lines[w.cursor.Line] = line
}

// Refresh emits every line as a cursor move plus per-atom SGR prelude
// and text. The force flag is reserved for future invalidation.
func (w *Window) Refresh(out *terminal.Writer, force bool) {
	if len(w.lines) == 0 {
		return
	}
	_ = force

	pos := w.Pos
	for _, line := range w.lines {
		if len(line) == 0 {
			pos.Line++
			continue
		}
		out.MoveCursor(pos)
		for _, atom := range line {
			out.SetFace(atom.Face)
			out.WriteString(atom.Text)
		}
		pos.Line++
	}
}
