package terminal

// Code identifies what was pressed: a Unicode codepoint for plain text
// keys, or one of the negative named values below. For Scroll keys the
// code carries the signed scroll amount instead.
type Code rune

const (
	KeyReturn Code = -(iota + 1)
	KeyTab
	KeyBackspace
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyFocusIn
	KeyFocusOut
	KeyResize
)

// Modifier flags. The mouse flags make a Key a mouse event; its Pos
// field then holds the window coordinate.
type Modifiers uint16

const (
	ModNone  Modifiers = 0
	ModShift Modifiers = 1 << 0
	ModAlt   Modifiers = 1 << 1
	ModCtrl  Modifiers = 1 << 2

	ModMousePos          Modifiers = 1 << 3
	ModMousePressLeft    Modifiers = 1 << 4
	ModMousePressRight   Modifiers = 1 << 5
	ModMouseReleaseLeft  Modifiers = 1 << 6
	ModMouseReleaseRight Modifiers = 1 << 7
	ModScroll            Modifiers = 1 << 8
)

// mouseMods covers every flag that marks a mouse event
const mouseMods = ModMousePos | ModMousePressLeft | ModMousePressRight |
	ModMouseReleaseLeft | ModMouseReleaseRight | ModScroll

// Key is one decoded input event.
type Key struct {
	Mods Modifiers
	Code Code

	// Pos is the window coordinate of a mouse event
	Pos DisplayCoord

	// Size carries the new dimensions of a Resize key
	Size DisplayCoord
}

// Ctrl returns the control-modified form of a codepoint key
func Ctrl(c Code) Key {
	return Key{Mods: ModCtrl, Code: c}
}

// Alt returns k with the alt modifier added
func Alt(k Key) Key {
	k.Mods |= ModAlt
	return k
}

// Shift returns the shift-modified form of a named key
func Shift(c Code) Key {
	return Key{Mods: ModShift, Code: c}
}

// Resize builds the synthetic key surfaced after a dimension change
func Resize(dim DisplayCoord) Key {
	return Key{Code: KeyResize, Size: dim}
}

// IsMouse reports whether k is a mouse event
func (k Key) IsMouse() bool {
	return k.Mods&mouseMods != 0
}

// keyNames labels the named codes for debug display
var keyNames = map[Code]string{
	KeyReturn:    "Return",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyEscape:    "Escape",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyInsert:    "Insert",
	KeyDelete:    "Delete",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeyF4:        "F4",
	KeyF5:        "F5",
	KeyF6:        "F6",
	KeyF7:        "F7",
	KeyF8:        "F8",
	KeyF9:        "F9",
	KeyF10:       "F10",
	KeyF11:       "F11",
	KeyF12:       "F12",
	KeyFocusIn:   "FocusIn",
	KeyFocusOut:  "FocusOut",
	KeyResize:    "Resize",
}

// String returns a human-readable form like "C-A-Up"
func (k Key) String() string {
	s := ""
	if k.Mods&ModCtrl != 0 {
		s += "C-"
	}
	if k.Mods&ModAlt != 0 {
		s += "A-"
	}
	if k.Mods&ModShift != 0 {
		s += "S-"
	}
	if name, ok := keyNames[k.Code]; ok {
		return s + name
	}
	if k.Code >= 0 {
		return s + string(rune(k.Code))
	}
	return s + "Unknown"
}
