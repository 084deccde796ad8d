// @focus: #sys { term }
// Package terminal provides direct ANSI terminal control for the
// editor UI: raw byte I/O on the controlling tty and the escape
// sequences that drive it.
//
// Features:
//   - True color (24-bit) output with 256-palette degradation
//   - Buffered escape-sequence writer (CUP, SGR, DEC modes, OSC title)
//   - Byte-stream key decoding: CSI, SS3, Alt prefixes, UTF-8,
//     SGR and X10 mouse reports
//   - Signal-driven lifecycle: SIGWINCH resize, SIGHUP hangup,
//     SIGTSTP suspend with full termios round-trip
//   - Clean terminal restoration on exit/panic
//
// There is no terminfo lookup: the sequences written and decoded are
// the fixed xterm set the editor relies on, so anything claiming xterm
// compatibility on a POSIX system is a suitable host.
package terminal
