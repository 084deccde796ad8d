package terminal

// Color is either an ANSI palette entry or a 24-bit RGB triple.
// The zero value is the terminal default color.
type Color struct {
	Palette PaletteColor
	R, G, B uint8
}

// PaletteColor names the 16-color ANSI palette. PaletteRGB marks a Color
// whose R, G, B fields carry a 24-bit value.
type PaletteColor int8

const (
	PaletteRGB PaletteColor = iota - 1
	PaletteDefault
	PaletteBlack
	PaletteRed
	PaletteGreen
	PaletteYellow
	PaletteBlue
	PaletteMagenta
	PaletteCyan
	PaletteWhite
	PaletteBrightBlack
	PaletteBrightRed
	PaletteBrightGreen
	PaletteBrightYellow
	PaletteBrightBlue
	PaletteBrightMagenta
	PaletteBrightCyan
	PaletteBrightWhite
)

// SGR parameter tables indexed by PaletteColor
var (
	fgCodes = [...]int{39, 30, 31, 32, 33, 34, 35, 36, 37, 90, 91, 92, 93, 94, 95, 96, 97}
	bgCodes = [...]int{49, 40, 41, 42, 43, 44, 45, 46, 47, 100, 101, 102, 103, 104, 105, 106, 107}
)

// RGB builds a 24-bit color
func RGB(r, g, b uint8) Color {
	return Color{Palette: PaletteRGB, R: r, G: g, B: b}
}

// IsRGB reports whether c carries a 24-bit value
func (c Color) IsRGB() bool {
	return c.Palette == PaletteRGB
}

// IsDefault reports whether c is the terminal default
func (c Color) IsDefault() bool {
	return c.Palette == PaletteDefault
}

// Attr is a bitmask of text attributes
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrUnderline Attr = 1 << 0
	AttrReverse   Attr = 1 << 1
	AttrBlink     Attr = 1 << 2
	AttrBold      Attr = 1 << 3
	AttrDim       Attr = 1 << 4
	AttrItalic    Attr = 1 << 5
)

// attrCodes maps attribute bits, in declaration order, to SGR parameters
var attrCodes = [...]int{4, 7, 5, 1, 2, 3}

// Face is the visual style of a run of text.
type Face struct {
	Fg    Color
	Bg    Color
	Attrs Attr
}

// MergeFaces composes over onto base: colors of over win unless they are
// the default, attributes are combined.
func MergeFaces(base, over Face) Face {
	res := over
	if over.Fg.IsDefault() {
		res.Fg = base.Fg
	}
	if over.Bg.IsDefault() {
		res.Bg = base.Bg
	}
	res.Attrs = base.Attrs | over.Attrs
	return res
}
