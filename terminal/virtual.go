package terminal

import "bytes"

// Virtual is an in-memory Terminal stand-in: input is a scripted byte
// stream, output accumulates in a buffer, and size and signal flags
// are set by the test driving it.
type Virtual struct {
	Lines   int
	Columns int

	// WinSizeErr makes WinSize fail, simulating an unopenable tty
	WinSizeErr error

	input []byte
	pos   int

	out    bytes.Buffer
	writer *Writer

	mouseEnabled bool
	suspends     int
	raised       int

	resizePending      bool
	suspendPending     bool
	sighup             bool
	signalsUninstalled bool
	closed             bool

	wakeCh chan struct{}
}

// NewVirtual builds a virtual terminal of the given size
func NewVirtual(lines, columns int) *Virtual {
	v := &Virtual{
		Lines:   lines,
		Columns: columns,
		wakeCh:  make(chan struct{}, 1),
	}
	v.writer = NewWriter(&v.out, ColorModeTrueColor)
	return v
}

// Feed appends bytes to the scripted input stream
func (v *Virtual) Feed(data []byte) {
	v.input = append(v.input, data...)
}

// Output returns everything written so far
func (v *Virtual) Output() string {
	v.writer.Flush()
	return v.out.String()
}

// ResetOutput clears the captured output
func (v *Virtual) ResetOutput() {
	v.writer.Flush()
	v.out.Reset()
}

// SetResizePending simulates a SIGWINCH
func (v *Virtual) SetResizePending() {
	v.resizePending = true
}

// SetSighup simulates the controlling terminal hanging up
func (v *Virtual) SetSighup() {
	v.sighup = true
}

// Suspends returns how many suspend cycles ran
func (v *Virtual) Suspends() int {
	return v.suspends
}

// MouseEnabled reports the simulated reporting state
func (v *Virtual) MouseEnabled() bool {
	return v.mouseEnabled
}

// Closed reports whether Close ran
func (v *Virtual) Closed() bool {
	return v.closed
}

func (v *Virtual) Writer() *Writer { return v.writer }

func (v *Virtual) ReadByte() (byte, bool) {
	if v.pos >= len(v.input) {
		return 0, false
	}
	b := v.input[v.pos]
	v.pos++
	return b, true
}

func (v *Virtual) EnableMouse(enabled bool) { v.mouseEnabled = enabled }

func (v *Virtual) Suspend() { v.suspends++ }

func (v *Virtual) RaiseSuspend() {
	v.raised++
	v.suspendPending = true
}

func (v *Virtual) WinSize() (int, int, error) {
	if v.WinSizeErr != nil {
		return 0, 0, v.WinSizeErr
	}
	return v.Lines, v.Columns, nil
}

func (v *Virtual) Wait() bool {
	if v.pos < len(v.input) {
		return true
	}
	<-v.wakeCh
	return v.pos < len(v.input)
}

func (v *Virtual) Wake() {
	select {
	case v.wakeCh <- struct{}{}:
	default:
	}
}

func (v *Virtual) TakeResizePending() bool {
	p := v.resizePending
	v.resizePending = false
	return p
}

func (v *Virtual) TakeSuspendPending() bool {
	p := v.suspendPending
	v.suspendPending = false
	return p
}

func (v *Virtual) SighupRaised() bool { return v.sighup }

func (v *Virtual) UninstallSignals() { v.signalsUninstalled = true }

// SignalsUninstalled reports whether the hangup teardown ran
func (v *Virtual) SignalsUninstalled() bool { return v.signalsUninstalled }

func (v *Virtual) Close() { v.closed = true }
