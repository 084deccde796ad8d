package ui

import "github.com/lixenwraith/editerm/terminal"

// Backend abstracts the terminal the UI draws to, so the façade can
// run against the real tty or a virtual terminal in tests.
type Backend interface {
	Writer() *terminal.Writer
	ReadByte() (byte, bool)
	EnableMouse(enabled bool)
	Suspend()
	RaiseSuspend()
	WinSize() (lines, columns int, err error)
	Wait() bool
	Wake()
	TakeResizePending() bool
	TakeSuspendPending() bool
	SighupRaised() bool
	UninstallSignals()
	Close()
}

var _ Backend = (*terminal.Terminal)(nil)
var _ Backend = (*terminal.Virtual)(nil)
