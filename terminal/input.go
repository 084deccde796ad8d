// @lixen: #focus{sys[term,io]} #input{keys,mouse}
package terminal

import "unicode/utf8"

// ByteReader returns the next input byte, or false when the stream has
// no byte available right now.
type ByteReader func() (byte, bool)

// Decoder turns the raw stdin byte stream into Keys. It keeps no
// cross-call buffer: a sequence interrupted by the stream going empty is
// dropped, and the stream resynchronizes at the next ESC or text byte.
// Only the mouse press state survives between calls.
type Decoder struct {
	read ByteReader

	// WheelScrollAmount is the line count carried by Scroll keys
	WheelScrollAmount int

	// LineOffset is subtracted from mouse rows so reports are
	// expressed in window coordinates
	LineOffset int

	// OnSuspend runs when Ctrl-Z is decoded; it should stop the
	// process group
	OnSuspend func()

	// Bits 0x1/0x2 remember left/right pressed across events
	mouseState int
}

// NewDecoder builds a decoder over read
func NewDecoder(read ByteReader) *Decoder {
	return &Decoder{read: read, WheelScrollAmount: 3}
}

// GetKey decodes at most one key. It returns false when the stream has
// no complete input; whatever bytes were consumed are lost.
func (d *Decoder) GetKey() (Key, bool) {
	c, ok := d.read()
	if !ok {
		return Key{}, false
	}

	if c != 0x1b {
		return d.parseKey(c)
	}
	return d.parseEscape()
}

// parseEscape decodes what follows an ESC byte
func (d *Decoder) parseEscape() (Key, bool) {
	n, ok := d.read()
	if !ok {
		return Key{Code: KeyEscape}, true
	}
	if n == 0x1b { // ESC ESC: the second ESC starts a sequence of its own, alt-modified
		if k, ok := d.parseEscape(); ok {
			return Alt(k), true
		}
		return Alt(Key{Code: KeyEscape}), true
	}
	if n == '[' { // potential CSI
		if k, ok := d.parseCSI(); ok {
			return k, true
		}
		return Alt(Key{Code: '['}), true
	}
	if n == 'O' { // potential SS3
		if k, ok := d.parseSS3(); ok {
			return k, true
		}
		return Alt(Key{Code: 'O'}), true
	}
	if k, ok := d.parseKey(n); ok {
		return Alt(k), true
	}
	return Key{}, false
}

// parseKey decodes a non-escape byte: control characters first, then
// UTF-8 text.
func (d *Decoder) parseKey(c byte) (Key, bool) {
	switch c {
	case 0x0d, 0x0a: // Ctrl-M, Ctrl-J
		return Key{Code: KeyReturn}, true
	case 0x09: // Ctrl-I
		return Key{Code: KeyTab}, true
	case 0x08, 0x7f: // Ctrl-H, DEL
		return Key{Code: KeyBackspace}, true
	case 0x1a: // Ctrl-Z, suspension handled out-of-band
		if d.OnSuspend != nil {
			d.OnSuspend()
		}
		return Key{}, false
	}
	if c < 27 {
		return Ctrl(Code('a') - 1 + Code(c)), true
	}
	return Key{Code: d.parseUTF8(c)}, true
}

// parseUTF8 assembles a codepoint from a lead byte, pulling continuation
// bytes from the stream. Malformed input yields the replacement rune.
func (d *Decoder) parseUTF8(lead byte) Code {
	var size int
	var cp rune
	switch {
	case lead < 0x80:
		return Code(lead)
	case lead&0xe0 == 0xc0:
		size, cp = 2, rune(lead&0x1f)
	case lead&0xf0 == 0xe0:
		size, cp = 3, rune(lead&0x0f)
	case lead&0xf8 == 0xf0:
		size, cp = 4, rune(lead&0x07)
	default:
		return Code(utf8.RuneError)
	}
	for i := 1; i < size; i++ {
		b, ok := d.read()
		if !ok || b&0xc0 != 0x80 {
			return Code(utf8.RuneError)
		}
		cp = cp<<6 | rune(b&0x3f)
	}
	return Code(cp)
}

// parseMask decodes an xterm modifier mask
func parseMask(mask int) Modifiers {
	var mod Modifiers
	if mask&1 != 0 {
		mod |= ModShift
	}
	if mask&2 != 0 {
		mod |= ModAlt
	}
	if mask&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}

// fkey returns the code of function key n (1-based)
func fkey(n int) Code {
	return KeyF1 - Code(n-1)
}

// parseCSI decodes CSI [private] P1;P2;... final. Anything malformed
// aborts with what was read consumed.
func (d *Decoder) parseCSI() (Key, bool) {
	next := func() byte {
		b, ok := d.read()
		if !ok {
			return 0xff
		}
		return b
	}

	var params [16]int
	c := next()
	var private byte
	if c == '?' || c == '<' || c == '=' || c == '>' {
		private = c
		c = next()
	}
	for count := 0; count < 16 && c >= 0x30 && c <= 0x3f; c = next() {
		switch {
		case c >= '0' && c <= '9':
			params[count] = params[count]*10 + int(c-'0')
		case c == ';':
			count++
		default:
			return Key{}, false
		}
	}
	if c < 0x40 || c > 0x7e {
		return Key{}, false
	}

	masked := func(code Code) (Key, bool) {
		mask := params[1] - 1
		if mask < 0 {
			mask = 0
		}
		return Key{Mods: parseMask(mask), Code: code}, true
	}

	switch c {
	case 'A':
		return masked(KeyUp)
	case 'B':
		return masked(KeyDown)
	case 'C':
		return masked(KeyRight)
	case 'D':
		return masked(KeyLeft)
	case 'F':
		return masked(KeyEnd)
	case 'H':
		return masked(KeyHome)
	case 'P':
		return masked(KeyF1)
	case 'Q':
		return masked(KeyF2)
	case 'R':
		return masked(KeyF3)
	case 'S':
		return masked(KeyF4)
	case '~':
		switch p := params[0]; {
		case p == 2:
			return masked(KeyInsert)
		case p == 3:
			return masked(KeyDelete)
		case p == 5:
			return masked(KeyPageUp)
		case p == 6:
			return masked(KeyPageDown)
		case p == 7:
			return masked(KeyHome)
		case p == 8:
			return masked(KeyEnd)
		case p >= 11 && p <= 15:
			return masked(fkey(1 + p - 11))
		case p >= 17 && p <= 21:
			return masked(fkey(6 + p - 17))
		case p == 23 || p == 24:
			return masked(fkey(11 + p - 23))
		}
		return Key{}, false
	case 'u':
		return masked(Code(params[0]))
	case 'Z':
		return Shift(KeyTab), true
	case 'I':
		return Key{Code: KeyFocusIn}, true
	case 'O':
		return Key{Code: KeyFocusOut}, true
	case 'M', 'm':
		return d.parseMouse(private, c, &params, next)
	}
	return Key{}, false
}

// parseMouse decodes both SGR and legacy X10 mouse reports
func (d *Decoder) parseMouse(private, final byte, params *[16]int, next func() byte) (Key, bool) {
	sgr := private == '<'
	if !sgr && final != 'M' {
		return Key{}, false
	}

	var b, x, y int
	if sgr {
		b = params[0]
		x = params[1] - 1
		y = params[2] - 1
	} else {
		b = int(next()) - 32
		x = int(next()) - 32 - 1
		y = int(next()) - 32 - 1
	}
	coord := DisplayCoord{Line: y - d.LineOffset, Column: x}
	mod := parseMask((b >> 2) & 0x7)

	switch b & 0x43 {
	case 0:
		return d.mouseButton(mod, coord, true, final == 'm'), true
	case 2:
		return d.mouseButton(mod, coord, false, final == 'm'), true
	case 3:
		// X10 release carries no button; consult the tracked state
		if sgr {
			return Key{}, false
		}
		if d.mouseState&0x1 != 0 {
			return d.mouseButton(mod, coord, true, true), true
		}
		if d.mouseState&0x2 != 0 {
			return d.mouseButton(mod, coord, false, true), true
		}
	case 64:
		return d.mouseScroll(mod, false), true
	case 65:
		return d.mouseScroll(mod, true), true
	}
	return Key{Mods: ModMousePos, Pos: coord}, true
}

// mouseButton resolves a press or release against the tracked state;
// pressing a button that is already down reports as motion.
func (d *Decoder) mouseButton(mod Modifiers, coord DisplayCoord, left, release bool) Key {
	mask := 0x2
	if left {
		mask = 0x1
	}
	if !release {
		switch {
		case d.mouseState&mask != 0:
			mod |= ModMousePos
		case left:
			mod |= ModMousePressLeft
		default:
			mod |= ModMousePressRight
		}
		d.mouseState |= mask
	} else {
		if left {
			mod |= ModMouseReleaseLeft
		} else {
			mod |= ModMouseReleaseRight
		}
		d.mouseState &^= mask
	}
	return Key{Mods: mod, Pos: coord}
}

func (d *Decoder) mouseScroll(mod Modifiers, down bool) Key {
	amount := d.WheelScrollAmount
	if !down {
		amount = -amount
	}
	return Key{Mods: mod | ModScroll, Code: Code(amount)}
}

// parseSS3 decodes ESC O final, with no modifiers
func (d *Decoder) parseSS3() (Key, bool) {
	b, ok := d.read()
	if !ok {
		b = 0xff
	}
	switch b {
	case 'A':
		return Key{Code: KeyUp}, true
	case 'B':
		return Key{Code: KeyDown}, true
	case 'C':
		return Key{Code: KeyRight}, true
	case 'D':
		return Key{Code: KeyLeft}, true
	case 'F':
		return Key{Code: KeyEnd}, true
	case 'H':
		return Key{Code: KeyHome}, true
	case 'P':
		return Key{Code: KeyF1}, true
	case 'Q':
		return Key{Code: KeyF2}, true
	case 'R':
		return Key{Code: KeyF3}, true
	case 'S':
		return Key{Code: KeyF4}, true
	}
	return Key{}, false
}
