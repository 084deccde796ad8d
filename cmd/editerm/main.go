// Command editerm is a small demonstration shell around the UI: it
// brings up the terminal, echoes typed text into the main window, and
// exercises the menu and info overlays. The editor core proper lives
// elsewhere; this binary exists to see the UI move.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/editerm/config"
	"github.com/lixenwraith/editerm/terminal"
	"github.com/lixenwraith/editerm/ui"
)

var (
	flagConfig      string
	flagNoMouse     bool
	flagAssistant   string
	flagStatusOnTop bool
)

func main() {
	root := &cobra.Command{
		Use:   "editerm",
		Short: "Terminal UI demo for the editerm display backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run()
		},
	}

	root.Flags().StringVar(&flagConfig, "config", config.DefaultPath(), "options file")
	root.Flags().BoolVar(&flagNoMouse, "no-mouse", false, "disable mouse reporting")
	root.Flags().StringVar(&flagAssistant, "assistant", "", "assistant art: clippy, cat, dilbert, none")
	root.Flags().BoolVar(&flagStatusOnTop, "status-on-top", false, "status row at the top")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	options, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagNoMouse {
		options["enable_mouse"] = "no"
	}
	if flagAssistant != "" {
		options["assistant"] = flagAssistant
	}
	if flagStatusOnTop {
		options["status_on_top"] = "yes"
	}

	defer terminal.RestoreOnPanic(os.Stdout)

	u, err := ui.New()
	if err != nil {
		return err
	}
	defer u.Close()

	u.SetUIOptions(options)

	app := &demo{u: u}
	u.SetOnKey(app.onKey)
	app.render()
	return u.Run()
}

// demo is a minimal line editor: typed text accumulates, Return opens
// a new line, Tab cycles a completion menu, F1 toggles the info box,
// Ctrl-Q quits.
type demo struct {
	u        *ui.UI
	lines    []string
	menuOpen bool
	menuSel  int
	infoOpen bool
}

var menuItems = []string{"append", "change", "delete", "insert", "open", "paste", "quit", "replace", "substitute", "yank"}

func (d *demo) onKey(k terminal.Key) {
	switch {
	case k.Code == terminal.KeyResize:
		d.render()
		return
	case k.Mods == terminal.ModCtrl && k.Code == 'q':
		d.u.Stop()
		return
	case k.IsMouse():
		d.status(fmt.Sprintf("mouse %04x at %d,%d", k.Mods, k.Pos.Line, k.Pos.Column))
		return
	case k.Code == terminal.KeyTab:
		d.cycleMenu()
	case k.Code == terminal.KeyF1:
		d.toggleInfo()
	case k.Code == terminal.KeyReturn:
		d.lines = append(d.lines, "")
	case k.Code == terminal.KeyBackspace:
		d.backspace()
	case k.Mods&(terminal.ModCtrl|terminal.ModAlt) == 0 && k.Code >= 0x20:
		d.typeRune(rune(k.Code))
	}
	d.render()
}

func (d *demo) typeRune(r rune) {
	if len(d.lines) == 0 {
		d.lines = append(d.lines, "")
	}
	d.lines[len(d.lines)-1] += string(r)
}

func (d *demo) backspace() {
	if len(d.lines) == 0 {
		return
	}
	last := d.lines[len(d.lines)-1]
	if last == "" {
		d.lines = d.lines[:len(d.lines)-1]
		return
	}
	runes := []rune(last)
	d.lines[len(d.lines)-1] = string(runes[:len(runes)-1])
}

func (d *demo) cycleMenu() {
	fg := terminal.Face{Fg: terminal.Color{Palette: terminal.PaletteBlack}, Bg: terminal.Color{Palette: terminal.PaletteYellow}}
	bg := terminal.Face{Fg: terminal.Color{Palette: terminal.PaletteWhite}, Bg: terminal.Color{Palette: terminal.PaletteBlue}}

	if !d.menuOpen {
		items := make([]ui.Line, len(menuItems))
		for i, s := range menuItems {
			items[i] = ui.Line{{Text: s}}
		}
		anchor := terminal.DisplayCoord{Line: len(d.lines)}
		d.u.MenuShow(items, anchor, fg, bg, ui.MenuPrompt)
		d.menuOpen = true
		d.menuSel = -1
		return
	}
	d.menuSel++
	if d.menuSel >= len(menuItems) {
		d.u.MenuHide()
		d.menuOpen = false
		return
	}
	d.u.MenuSelect(d.menuSel)
}

func (d *demo) toggleInfo() {
	if d.infoOpen {
		d.u.InfoHide()
		d.infoOpen = false
		return
	}
	d.u.InfoShow("help",
		"Type to edit. Tab cycles the completion menu, Return opens a new line, Ctrl-Q quits.",
		terminal.DisplayCoord{}, terminal.Face{}, ui.InfoPrompt)
	d.infoOpen = true
}

func (d *demo) status(msg string) {
	d.u.DrawStatus(
		ui.Line{{Text: msg}},
		ui.Line{{Text: fmt.Sprintf("%d lines", len(d.lines))}},
		terminal.Face{})
	d.u.Refresh(false)
}

func (d *demo) render() {
	buffer := make([]ui.Line, len(d.lines))
	for i, s := range d.lines {
		buffer[i] = ui.Line{{Text: s + "\n"}}
	}

	d.u.Draw(buffer, terminal.Face{}, terminal.Face{Fg: terminal.Color{Palette: terminal.PaletteBrightBlack}})

	cursorCol := 0
	if len(d.lines) > 0 {
		cursorCol = len(d.lines[len(d.lines)-1])
	}
	d.u.SetCursor(ui.CursorBuffer, terminal.DisplayCoord{
		Line:   max(len(d.lines)-1, 0),
		Column: cursorCol,
	})

	mode := "normal"
	if d.menuOpen {
		mode = "menu " + menuItems[max(d.menuSel, 0)]
	}
	d.status("-- " + mode + " --")
}
