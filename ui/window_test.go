package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lixenwraith/editerm/terminal"
)

func TestWindowPresence(t *testing.T) {
	var w Window
	if w.Present() {
		t.Fatal("zero window reported present")
	}
	w.Create(DisplayCoord{}, DisplayCoord{Line: 3, Column: 10})
	if !w.Present() {
		t.Fatal("created window reported absent")
	}
	if len(w.lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(w.lines))
	}
	w.Destroy()
	if w.Present() || w.lines != nil {
		t.Fatal("destroyed window still holds state")
	}
}

func TestDrawLineWidthInvariant(t *testing.T) {
	tests := []struct {
		name  string
		atoms []Atom
	}{
		{"short text", []Atom{{Text: "hi"}}},
		{"exact width", []Atom{{Text: "0123456789"}}},
		{"several atoms", []Atom{{Text: "ab"}, {Text: "cd"}, {Text: "ef"}}},
		{"trailing newline", []Atom{{Text: "abc\n"}}},
		{"wide runes", []Atom{{Text: "世界"}}},
		{"empty atoms skipped", []Atom{{Text: ""}, {Text: "x"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w Window
			w.Create(DisplayCoord{}, DisplayCoord{Line: 1, Column: 10})
			w.MoveCursor(DisplayCoord{})
			w.Draw(tt.atoms, Face{})

			if got := w.lines[0].Length(); got != 10 {
				t.Errorf("line width = %d, want 10 (%+v)", got, w.lines[0])
			}
			for _, atom := range w.lines[0] {
				if strings.Contains(atom.Text, "\n") {
					t.Errorf("atom %q carries an embedded newline", atom.Text)
				}
			}
		})
	}
}

func TestDrawNewlineBecomesPaddingAtom(t *testing.T) {
	var w Window
	w.Create(DisplayCoord{}, DisplayCoord{Line: 1, Column: 10})
	w.MoveCursor(DisplayCoord{})

	face := Face{Fg: terminal.Color{Palette: terminal.PaletteRed}}
	w.Draw([]Atom{{Text: "ab\n", Face: face}}, Face{})

	line := w.lines[0]
	if len(line) < 2 || line[0].Text != "ab" || line[1].Text != " " {
		t.Fatalf("line = %+v, want text then single-space atom", line)
	}
	if line[1].Face != line[0].Face {
		t.Errorf("padding atom face %+v differs from text face %+v", line[1].Face, line[0].Face)
	}
}

func TestDrawMergesOverDefaultFace(t *testing.T) {
	var w Window
	w.Create(DisplayCoord{}, DisplayCoord{Line: 1, Column: 4})
	w.MoveCursor(DisplayCoord{})

	def := Face{Bg: terminal.Color{Palette: terminal.PaletteBlue}, Attrs: terminal.AttrBold}
	w.Draw([]Atom{{Text: "x", Face: Face{Attrs: terminal.AttrItalic}}}, def)

	got := w.lines[0][0].Face
	if got.Bg.Palette != terminal.PaletteBlue {
		t.Errorf("bg = %+v, want default blue", got.Bg)
	}
	if got.Attrs != terminal.AttrBold|terminal.AttrItalic {
		t.Errorf("attrs = %v, want bold|italic", got.Attrs)
	}
}

func TestClearLine(t *testing.T) {
	setup := func() *Window {
		var w Window
		w.Create(DisplayCoord{}, DisplayCoord{Line: 1, Column: 10})
		w.MoveCursor(DisplayCoord{})
		w.Draw([]Atom{{Text: "abc"}, {Text: "defg"}}, Face{})
		return &w
	}

	t.Run("at zero empties the line", func(t *testing.T) {
		w := setup()
		w.MoveCursor(DisplayCoord{Column: 0})
		w.ClearLine()
		if len(w.lines[0]) != 0 {
			t.Errorf("line = %+v, want empty", w.lines[0])
		}
	})

	t.Run("mid atom splits on column boundary", func(t *testing.T) {
		w := setup()
		w.MoveCursor(DisplayCoord{Column: 5})
		w.ClearLine()
		if got := w.lines[0].Length(); got != 5 {
			t.Errorf("line width = %d, want 5 (%+v)", got, w.lines[0])
		}
		last := w.lines[0][len(w.lines[0])-1]
		if last.Text != "de" {
			t.Errorf("boundary atom = %q, want %q", last.Text, "de")
		}
	})

	t.Run("wide rune cannot straddle the cut", func(t *testing.T) {
		var w Window
		w.Create(DisplayCoord{}, DisplayCoord{Line: 1, Column: 10})
		w.MoveCursor(DisplayCoord{})
		w.Draw([]Atom{{Text: "世界"}}, Face{})
		w.MoveCursor(DisplayCoord{Column: 3})
		w.ClearLine()
		if got := w.lines[0].Length(); got > 3 {
			t.Errorf("line width = %d, want <= 3", got)
		}
	})
}

func TestWindowRefreshEmission(t *testing.T) {
	var w Window
	w.Create(DisplayCoord{Line: 2, Column: 3}, DisplayCoord{Line: 2, Column: 4})
	w.MoveCursor(DisplayCoord{})
	w.Draw([]Atom{{Text: "ab"}}, Face{})
	w.MoveCursor(DisplayCoord{Line: 1})
	w.Draw([]Atom{{Text: "cd"}}, Face{})

	var buf bytes.Buffer
	out := terminal.NewWriter(&buf, terminal.ColorModeTrueColor)
	w.Refresh(out, false)
	out.Flush()

	got := buf.String()
	// Window origin is (2,3): rows 3 and 4, column 4 in 1-based terms
	if !strings.Contains(got, "\x1b[3;4H") || !strings.Contains(got, "\x1b[4;4H") {
		t.Errorf("Refresh output %q lacks positioned rows", got)
	}
	if !strings.Contains(got, "ab") || !strings.Contains(got, "cd") {
		t.Errorf("Refresh output %q lacks the drawn text", got)
	}
	if !strings.Contains(got, "\x1b[;39;49m") {
		t.Errorf("Refresh output %q lacks the SGR prelude", got)
	}
}

func TestLineTrim(t *testing.T) {
	line := Line{{Text: "abc"}, {Text: "defg"}, {Text: "hi"}}

	tests := []struct {
		from, num int
		want      string
	}{
		{0, 9, "abcdefghi"},
		{0, 4, "abcd"},
		{2, 3, "cde"},
		{3, 4, "defg"},
		{8, 5, "i"},
		{9, 2, ""},
	}
	for _, tt := range tests {
		got := line.Trim(tt.from, tt.num).Text()
		if got != tt.want {
			t.Errorf("Trim(%d, %d) = %q, want %q", tt.from, tt.num, got, tt.want)
		}
	}
}
