// @lixen: #focus{sys[term,io,output]}
package terminal

import (
	"bufio"
	"io"
)

// DEC private modes used by the UI
const (
	ModeMouseButtons = 1000 // press/release reporting
	ModeMouseMotion  = 1002 // motion while a button is held
	ModeFocusEvents  = 1004 // focus in/out reporting
	ModeMouseSGR     = 1006 // SGR mouse encoding
	ModeAltScreen    = 1049 // alternate screen buffer
	ModeCursor       = 25   // cursor visibility
)

// maxTitleBytes caps the OSC 2 payload
const maxTitleBytes = 511

// Pre-allocated sequence fragments (avoid allocations during render)
var (
	csi      = []byte("\x1b[")
	csiSGR0  = []byte("\x1b[m")
	oscTitle = []byte("\x1b]2;")
	bel      = []byte{0x07}
)

// Writer emits escape sequences and text through a single buffered
// stream. Nothing reaches the terminal until Flush.
type Writer struct {
	w         *bufio.Writer
	colorMode ColorMode
}

// NewWriter wraps out in a buffered escape-sequence writer
func NewWriter(out io.Writer, colorMode ColorMode) *Writer {
	return &Writer{
		w:         bufio.NewWriterSize(out, 65536),
		colorMode: colorMode,
	}
}

// writeInt writes an integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [8]byte
	i := 7
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	w.Write(buf[i+1:])
}

// MoveCursor writes a CUP sequence for a 0-indexed coordinate
func (wr *Writer) MoveCursor(coord DisplayCoord) {
	w := wr.w
	w.Write(csi)
	writeInt(w, coord.Line+1)
	w.WriteByte(';')
	writeInt(w, coord.Column+1)
	w.WriteByte('H')
}

// SetFace writes one SGR sequence resetting attributes and selecting the
// face's attributes and colors. The leading empty parameter is the reset.
func (wr *Writer) SetFace(f Face) {
	w := wr.w
	w.Write(csi)
	for bit := 0; bit < len(attrCodes); bit++ {
		if f.Attrs&(1<<bit) != 0 {
			w.WriteByte(';')
			writeInt(w, attrCodes[bit])
		}
	}
	wr.writeColor(true, f.Fg)
	wr.writeColor(false, f.Bg)
	w.WriteByte('m')
}

// writeColor writes one SGR color parameter group, preceded by ';'
func (wr *Writer) writeColor(fg bool, c Color) {
	w := wr.w
	w.WriteByte(';')
	if c.IsRGB() {
		if wr.colorMode == ColorModeTrueColor {
			if fg {
				w.WriteString("38;2;")
			} else {
				w.WriteString("48;2;")
			}
			writeInt(w, int(c.R))
			w.WriteByte(';')
			writeInt(w, int(c.G))
			w.WriteByte(';')
			writeInt(w, int(c.B))
		} else {
			if fg {
				w.WriteString("38;5;")
			} else {
				w.WriteString("48;5;")
			}
			writeInt(w, int(RGBTo256(c.R, c.G, c.B)))
		}
		return
	}
	if fg {
		writeInt(w, fgCodes[c.Palette])
	} else {
		writeInt(w, bgCodes[c.Palette])
	}
}

// ResetFace writes a bare SGR reset
func (wr *Writer) ResetFace() {
	wr.w.Write(csiSGR0)
}

// SetMode sets or resets a DEC private mode and flushes, so mode
// transitions are never left sitting in the buffer.
func (wr *Writer) SetMode(mode int, on bool) {
	w := wr.w
	w.Write(csi)
	w.WriteByte('?')
	writeInt(w, mode)
	if on {
		w.WriteByte('h')
	} else {
		w.WriteByte('l')
	}
	w.Flush()
}

// SetTitle writes an OSC 2 title. The payload is stripped to printable
// ASCII, other bytes become '?', and it is capped at 511 bytes.
func (wr *Writer) SetTitle(title string) {
	w := wr.w
	w.Write(oscTitle)
	n := 0
	for _, r := range title {
		if n == maxTitleBytes {
			break
		}
		if r >= 0x20 && r <= 0x7e {
			w.WriteByte(byte(r))
		} else {
			w.WriteByte('?')
		}
		n++
	}
	w.Write(bel)
	w.Flush()
}

// WriteString writes text verbatim into the buffered stream
func (wr *Writer) WriteString(s string) {
	wr.w.WriteString(s)
}

// Flush drains the buffered stream to the terminal
func (wr *Writer) Flush() {
	wr.w.Flush()
}
