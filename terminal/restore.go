//go:build unix

package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// EmergencyRestore writes the sequences that bring a terminal back to a
// sane state, for use from panic recovery when Close cannot run. Mouse
// reporting off, alternate screen off, cursor shown, attributes reset.
func EmergencyRestore(w io.Writer) {
	w.Write([]byte("\x1b[?1002l"))
	w.Write([]byte("\x1b[?1000l"))
	w.Write([]byte("\x1b[?1004l"))
	w.Write([]byte("\x1b[?1006l"))
	w.Write([]byte("\x1b[?1049l"))
	w.Write([]byte("\x1b[?25h"))
	w.Write([]byte("\x1b[m"))

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	resetTerminalMode()
}

// RestoreOnPanic is meant to be deferred at the top of main. On panic
// it restores the terminal, prints the panic and stack trace to
// stderr, then exits with code 1.
func RestoreOnPanic(w io.Writer) {
	r := recover()
	if r == nil {
		return
	}

	EmergencyRestore(w)
	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}
