package ui

import "strconv"

const defaultShiftFunctionKey = 12

// SetUIOptions applies the flat name→string option map. Unknown names
// are ignored; absent names restore their defaults.
func (u *UI) SetUIOptions(options map[string]string) {
	switch options["assistant"] {
	case "", "clippy":
		u.assistant = assistantClippy
	case "cat":
		u.assistant = assistantCat
	case "dilbert":
		u.assistant = assistantDilbert
	case "none", "off":
		u.assistant = nil
	}

	u.statusOnTop = optBool(options, "status_on_top", false)
	u.decoder.LineOffset = u.contentLineOffset()

	u.setTitle = optBool(options, "set_title", true)
	u.shiftFunctionKey = optInt(options, "shift_function_key", defaultShiftFunctionKey)

	u.term.EnableMouse(optBool(options, "enable_mouse", true))
	u.wheelUpButton = optInt(options, "wheel_up_button", 4)
	u.wheelDownButton = optInt(options, "wheel_down_button", 5)
	u.decoder.WheelScrollAmount = optInt(options, "wheel_scroll_amount", 3)
}

// optBool reads a yes/true flag, using def when the option is absent
func optBool(options map[string]string, name string, def bool) bool {
	v, ok := options[name]
	if !ok {
		return def
	}
	return v == "yes" || v == "true"
}

// optInt reads an integer option, falling back to def when absent or
// malformed
func optInt(options map[string]string, name string, def int) int {
	v, ok := options[name]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
