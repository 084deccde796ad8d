package ui

import (
	"strings"
	"testing"

	"github.com/lixenwraith/editerm/terminal"
)

func TestInitialResizeKeyPending(t *testing.T) {
	u, _ := newTestUI(25, 80)

	k, ok := u.GetNextKey()
	if !ok || k.Code != terminal.KeyResize {
		t.Fatalf("first key = %+v ok=%v, want the startup Resize", k, ok)
	}
	if k.Size != (DisplayCoord{Line: 24, Column: 80}) {
		t.Errorf("resize size = %+v, want 24x80 (one row reserved)", k.Size)
	}

	if k, ok := u.GetNextKey(); ok {
		t.Errorf("second key = %+v, want none", k)
	}
}

func TestResizeDeliveredBeforePendingInput(t *testing.T) {
	u, v := newTestUI(25, 80)
	u.GetNextKey() // consume the startup resize

	v.Feed([]byte("x"))
	v.Lines = 30
	v.SetResizePending()

	k, ok := u.GetNextKey()
	if !ok || k.Code != terminal.KeyResize {
		t.Fatalf("got %+v ok=%v, want Resize before buffered input", k, ok)
	}
	if k.Size != (DisplayCoord{Line: 29, Column: 80}) {
		t.Errorf("resize size = %+v, want the new dimensions", k.Size)
	}

	k, ok = u.GetNextKey()
	if !ok || k.Code != 'x' {
		t.Errorf("got %+v ok=%v, want the buffered 'x'", k, ok)
	}
}

func TestKeysThroughFacade(t *testing.T) {
	u, v := newTestUI(25, 80)
	u.GetNextKey()

	v.Feed([]byte("\x1b[1;5A"))
	k, ok := u.GetNextKey()
	if !ok || k.Code != terminal.KeyUp || k.Mods != terminal.ModCtrl {
		t.Errorf("got %+v ok=%v, want Ctrl+Up", k, ok)
	}
}

func TestResizeRebuildsWindows(t *testing.T) {
	u, v := newTestUI(25, 80)
	u.GetNextKey()
	u.MenuShow(makeItems(10), DisplayCoord{}, menuFg, menuBg, MenuPrompt)
	u.InfoShow("", "doc text", DisplayCoord{Line: 2, Column: 2}, Face{}, InfoInline)

	v.Lines = 40
	v.Columns = 100
	v.SetResizePending()
	u.checkResize(false)

	if u.dimensions != (DisplayCoord{Line: 39, Column: 100}) {
		t.Fatalf("dimensions = %+v", u.dimensions)
	}
	if u.window.Size != (DisplayCoord{Line: 40, Column: 100}) {
		t.Errorf("main window = %+v, want full screen", u.window.Size)
	}
	if !u.menu.Present() {
		t.Error("menu lost across the resize")
	}
	if u.menu.Size.Column != 100 {
		t.Errorf("menu width = %d, want the new full width", u.menu.Size.Column)
	}
	if !u.info.Present() {
		t.Error("info lost across the resize")
	}
}

func TestResizeFailureKeepsDimensions(t *testing.T) {
	u, v := newTestUI(25, 80)
	u.GetNextKey()

	before := u.dimensions
	v.WinSizeErr = errFakeTTY
	v.Lines = 50
	v.SetResizePending()
	u.checkResize(false)

	if u.dimensions != before {
		t.Errorf("dimensions changed to %+v despite the size query failing", u.dimensions)
	}
	if k, ok := u.GetNextKey(); ok {
		t.Errorf("a failed resize cycle surfaced %+v", k)
	}
}

var errFakeTTY = errTTY{}

type errTTY struct{}

func (errTTY) Error() string { return "cannot open /dev/tty" }

func TestDrawFillsAndPads(t *testing.T) {
	u, _ := newTestUI(25, 80)
	buffer := []Line{
		{{Text: "first\n"}},
		{{Text: "second\n"}},
	}
	u.Draw(buffer, Face{}, Face{Fg: terminal.Color{Palette: terminal.PaletteBlue}})

	if got := u.window.lines[0].Text(); !strings.HasPrefix(got, "first") {
		t.Errorf("row 0 = %q", got)
	}
	if got := u.window.lines[1].Text(); !strings.HasPrefix(got, "second") {
		t.Errorf("row 1 = %q", got)
	}
	for row := 2; row < 24; row++ {
		if got := u.window.lines[row].Text(); !strings.HasPrefix(got, "~") {
			t.Errorf("row %d = %q, want padding tilde", row, got)
		}
	}
	// Every painted row satisfies the width invariant
	for row := 0; row < 24; row++ {
		if got := u.window.lines[row].Length(); got != 80 {
			t.Errorf("row %d width = %d, want 80", row, got)
		}
	}
	if !u.dirty {
		t.Error("draw did not mark the display dirty")
	}
}

func TestDrawStatusRightAlignsMode(t *testing.T) {
	u, v := newTestUI(25, 80)
	v.ResetOutput()

	u.DrawStatus(
		Line{{Text: "status"}},
		Line{{Text: "MODE"}},
		Face{})

	row := u.window.lines[24].Text()
	if !strings.HasPrefix(row, "status") {
		t.Errorf("status row = %q", row)
	}
	if !strings.HasSuffix(row, "MODE") {
		t.Errorf("status row = %q, want the mode line flush right", row)
	}

	if out := v.Output(); !strings.Contains(out, "\x1b]2;MODE - editerm\x07") {
		t.Errorf("output %q lacks the terminal title", out)
	}
}

func TestDrawStatusTrimsLongMode(t *testing.T) {
	u, _ := newTestUI(25, 20)

	u.DrawStatus(
		Line{{Text: "0123456789"}},            // 10 columns
		Line{{Text: "abcdefghijklmno"}}, // 15 columns, remaining is 10
		Face{})

	row := u.window.lines[24].Text()
	if !strings.Contains(row, "…") {
		t.Errorf("status row = %q, want an ellipsis marker", row)
	}
	// Trimmed to remaining-1 = 9 columns: ellipsis plus the last 8
	if !strings.HasSuffix(row, "…hijklmno") {
		t.Errorf("status row = %q, want the mode tail after the ellipsis", row)
	}
}

func TestRefreshOnlyWhenDirty(t *testing.T) {
	u, v := newTestUI(25, 80)
	v.ResetOutput()

	u.Refresh(false)
	if out := v.Output(); out != "" {
		t.Fatalf("clean refresh wrote %q", out)
	}

	u.Draw([]Line{{{Text: "x"}}}, Face{}, Face{})
	u.Refresh(false)
	if out := v.Output(); out == "" {
		t.Fatal("dirty refresh wrote nothing")
	}

	v.ResetOutput()
	u.Refresh(false)
	if out := v.Output(); out != "" {
		t.Fatalf("second refresh wrote %q without changes", out)
	}

	u.Refresh(true)
	if out := v.Output(); out == "" {
		t.Fatal("forced refresh wrote nothing")
	}
}

func TestRefreshPlacesCursor(t *testing.T) {
	u, v := newTestUI(25, 80)

	u.SetCursor(CursorBuffer, DisplayCoord{Line: 5, Column: 7})
	v.ResetOutput()
	u.Refresh(true)
	if out := v.Output(); !strings.HasSuffix(out, "\x1b[6;8H") {
		t.Errorf("output tail %q, want the buffer cursor position", tail(out))
	}

	u.SetCursor(CursorPrompt, DisplayCoord{Line: 5, Column: 7})
	v.ResetOutput()
	u.Refresh(true)
	if out := v.Output(); !strings.HasSuffix(out, "\x1b[25;8H") {
		t.Errorf("output tail %q, want the prompt cursor on the status row", tail(out))
	}
}

func tail(s string) string {
	if len(s) <= 24 {
		return s
	}
	return s[len(s)-24:]
}

func TestHangupTeardown(t *testing.T) {
	u, v := newTestUI(25, 80)
	v.Feed([]byte("xyz"))
	v.SetSighup()

	if k, ok := u.GetNextKey(); ok {
		t.Fatalf("got %+v after hangup, want end-of-stream", k)
	}
	if u.window.Present() {
		t.Error("main window survived the hangup")
	}
	if !u.stdinDisabled {
		t.Error("stdin watching still enabled")
	}
	if !v.SignalsUninstalled() {
		t.Error("signal handlers still installed after hangup")
	}
}

func TestCtrlZRequestsSuspend(t *testing.T) {
	u, v := newTestUI(25, 80)
	u.GetNextKey()

	v.Feed([]byte{0x1a})
	if k, ok := u.GetNextKey(); ok {
		t.Fatalf("ctrl-z surfaced as %+v", k)
	}
	if !v.TakeSuspendPending() {
		t.Error("ctrl-z did not raise the suspend flag")
	}
}

func TestSuspendCycle(t *testing.T) {
	u, v := newTestUI(25, 80)
	u.GetNextKey()

	u.suspend()
	if v.Suspends() != 1 {
		t.Fatalf("backend suspends = %d, want 1", v.Suspends())
	}

	// Resume forces a resize: the next key is synthetic
	k, ok := u.GetNextKey()
	if !ok || k.Code != terminal.KeyResize {
		t.Errorf("post-resume key = %+v ok=%v, want Resize", k, ok)
	}
}

func TestRunDrainsInArrivalOrder(t *testing.T) {
	u, v := newTestUI(25, 80)
	v.Feed([]byte("ab"))

	var got []terminal.Key
	u.SetOnKey(func(k terminal.Key) {
		got = append(got, k)
		if k.Code == 'b' {
			u.Stop()
		}
	})

	if err := u.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("keys = %+v, want Resize, a, b", got)
	}
	if got[0].Code != terminal.KeyResize || got[1].Code != 'a' || got[2].Code != 'b' {
		t.Errorf("keys = %+v, want Resize then a then b", got)
	}
}
