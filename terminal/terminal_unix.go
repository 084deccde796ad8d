//go:build unix

package terminal

import (
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal owns the controlling tty: raw mode, screen modes, the wake
// pipe and the process signals. It assumes it is the sole writer of out
// and sole reader of in for its lifetime.
type Terminal struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int

	original unix.Termios
	writer   *Writer

	mouseEnabled bool
	finalized    bool

	// Wake pipe: the async-signal-safe edge of the event loop
	wakeR *os.File
	wakeW *os.File

	sigCh chan os.Signal

	resizePending  atomic.Bool
	sighupRaised   atomic.Bool
	suspendPending atomic.Bool
}

// Open acquires the terminal: saves termios, enters the alternate
// screen, hides the cursor, switches to raw mode and installs the
// signal watcher. It fails when out is not a tty, when the saved
// termios cannot be read from in, or when the wake pipe cannot be made.
func Open(in, out *os.File) (*Terminal, error) {
	outFd := int(out.Fd())
	if !term.IsTerminal(outFd) {
		return nil, fmt.Errorf("stdout is not a tty")
	}

	t := &Terminal{
		in:    in,
		out:   out,
		inFd:  int(in.Fd()),
		outFd: outFd,
	}

	orig, err := unix.IoctlGetTermios(t.inFd, unix.TCGETS)
	if err != nil {
		return nil, fmt.Errorf("tcgetattr: %w", err)
	}
	t.original = *orig

	t.writer = NewWriter(out, DetectColorMode())
	t.setupTerminal()
	t.setRawMode()

	r, w, err := os.Pipe()
	if err != nil {
		t.restoreTerminal()
		t.restoreTermios()
		return nil, fmt.Errorf("wake pipe: %w", err)
	}
	t.wakeR, t.wakeW = r, w
	unix.SetNonblock(int(t.wakeW.Fd()), true)

	t.sigCh = make(chan os.Signal, 8)
	signal.Notify(t.sigCh, syscall.SIGWINCH, syscall.SIGHUP, syscall.SIGTSTP)
	go t.watchSignals()

	return t, nil
}

// Close restores the terminal and the default signal dispositions.
// Safe to call more than once.
func (t *Terminal) Close() {
	if t.finalized {
		return
	}
	t.finalized = true

	t.EnableMouse(false)
	t.restoreTerminal()
	t.restoreTermios()

	signal.Stop(t.sigCh)
	signal.Reset(syscall.SIGWINCH, syscall.SIGCONT, syscall.SIGTSTP)
	close(t.sigCh)

	t.wakeR.Close()
	t.wakeW.Close()
}

// Writer returns the buffered escape-sequence writer for the tty
func (t *Terminal) Writer() *Writer {
	return t.writer
}

// watchSignals converts process signals into flags and loop wakeups.
// All interpretation happens on the loop goroutine.
func (t *Terminal) watchSignals() {
	for sig := range t.sigCh {
		switch sig {
		case syscall.SIGWINCH:
			t.resizePending.Store(true)
		case syscall.SIGHUP:
			t.sighupRaised.Store(true)
		case syscall.SIGTSTP:
			t.suspendPending.Store(true)
		}
		t.Wake()
	}
}

// setupTerminal enters the alternate screen and hides the cursor
func (t *Terminal) setupTerminal() {
	t.writer.SetMode(ModeAltScreen, true)
	t.writer.SetMode(ModeCursor, false)
}

// restoreTerminal leaves the alternate screen, shows the cursor and
// resets attributes
func (t *Terminal) restoreTerminal() {
	t.writer.SetMode(ModeAltScreen, false)
	t.writer.SetMode(ModeCursor, true)
	t.writer.ResetFace()
	t.writer.Flush()
}

// setRawMode applies the raw termios derived from the saved original
func (t *Terminal) setRawMode() {
	attr := t.original
	attr.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	attr.Oflag &^= unix.OPOST
	attr.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	attr.Lflag |= unix.NOFLSH
	attr.Cflag &^= unix.CSIZE | unix.PARENB
	attr.Cflag |= unix.CS8
	attr.Cc[unix.VMIN] = 0
	attr.Cc[unix.VTIME] = 0

	unix.IoctlSetTermios(t.inFd, unix.TCSETSF, &attr)
}

// restoreTermios puts the saved original termios back, flushing input
func (t *Terminal) restoreTermios() {
	unix.IoctlSetTermios(t.inFd, unix.TCSETSF, &t.original)
}

// EnableMouse switches mouse and focus reporting. SGR encoding and
// focus events ride along with button/motion reporting.
func (t *Terminal) EnableMouse(enabled bool) {
	if enabled == t.mouseEnabled {
		return
	}
	t.mouseEnabled = enabled
	if enabled {
		t.writer.SetMode(ModeMouseSGR, true)
		t.writer.SetMode(ModeFocusEvents, true)
		t.writer.SetMode(ModeMouseButtons, true)
		t.writer.SetMode(ModeMouseMotion, true)
	} else {
		t.writer.SetMode(ModeMouseMotion, false)
		t.writer.SetMode(ModeMouseButtons, false)
		t.writer.SetMode(ModeFocusEvents, false)
		t.writer.SetMode(ModeMouseSGR, false)
	}
}

// MouseEnabled reports the current reporting state
func (t *Terminal) MouseEnabled() bool {
	return t.mouseEnabled
}

// Suspend stops the process group the way a shell expects: terminal
// fully restored, SIGTSTP disposition back to default, then the stop.
// Execution resumes here on SIGCONT with raw mode and modes re-applied.
func (t *Terminal) Suspend() {
	mouse := t.mouseEnabled
	t.EnableMouse(false)
	t.restoreTerminal()

	signal.Reset(syscall.SIGTSTP)
	t.restoreTermios()

	unix.Kill(0, unix.SIGTSTP) // the group stops on this line

	unix.IoctlSetTermios(t.inFd, unix.TCSETSF, &t.original)
	signal.Notify(t.sigCh, syscall.SIGTSTP)

	t.setupTerminal()
	t.setRawMode()
	t.EnableMouse(mouse)
}

// UninstallSignals puts the resize and continue dispositions back to
// their defaults. Used on hangup, where the process keeps running but
// must stop reacting to the lost terminal.
func (t *Terminal) UninstallSignals() {
	signal.Reset(syscall.SIGWINCH, syscall.SIGCONT)
}

// RaiseSuspend sends SIGTSTP to the process group; the decoder calls
// this on Ctrl-Z so suspension is handled out-of-band via the signal
// watcher.
func (t *Terminal) RaiseSuspend() {
	unix.Kill(0, unix.SIGTSTP)
}

// WinSize queries the terminal dimensions through /dev/tty, so it works
// regardless of redirections.
func (t *Terminal) WinSize() (lines, columns int, err error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return 0, 0, err
	}
	defer tty.Close()

	ws, err := unix.IoctlGetWinsize(int(tty.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Row), int(ws.Col), nil
}

// ReadByte fetches one input byte without blocking
func (t *Terminal) ReadByte() (byte, bool) {
	if !t.fdReadable(0) {
		return 0, false
	}
	var buf [1]byte
	n, err := unix.Read(t.inFd, buf[:])
	if err != nil || n != 1 {
		return 0, false
	}
	return buf[0], true
}

// fdReadable polls stdin with the given timeout in milliseconds
func (t *Terminal) fdReadable(timeoutMs int) bool {
	fds := []unix.PollFd{{Fd: int32(t.inFd), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(fds, timeoutMs)
		if err == unix.EINTR {
			continue
		}
		return err == nil && n > 0 && fds[0].Revents&unix.POLLIN != 0
	}
}

// Wait blocks until stdin is readable or Wake is called. It returns
// true when stdin has input pending.
func (t *Terminal) Wait() bool {
	fds := []unix.PollFd{
		{Fd: int32(t.inFd), Events: unix.POLLIN},
		{Fd: int32(t.wakeR.Fd()), Events: unix.POLLIN},
	}
	for {
		_, err := unix.Poll(fds, -1)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return false
		}
		if fds[1].Revents&unix.POLLIN != 0 {
			t.drainWake()
		}
		return fds[0].Revents&unix.POLLIN != 0
	}
}

// Wake makes a pending or future Wait return. A single pipe byte is
// enough; extra wakeups coalesce.
func (t *Terminal) Wake() {
	var one = [1]byte{0}
	unix.Write(int(t.wakeW.Fd()), one[:])
}

func (t *Terminal) drainWake() {
	var buf [64]byte
	for {
		n, err := unix.Read(int(t.wakeR.Fd()), buf[:])
		if err != nil || n < len(buf) {
			return
		}
	}
}

// TakeResizePending consumes the SIGWINCH flag
func (t *Terminal) TakeResizePending() bool {
	return t.resizePending.Swap(false)
}

// TakeSuspendPending consumes the SIGTSTP flag
func (t *Terminal) TakeSuspendPending() bool {
	return t.suspendPending.Swap(false)
}

// SighupRaised reports whether the controlling terminal hung up
func (t *Terminal) SighupRaised() bool {
	return t.sighupRaised.Load()
}
