package terminal

import "github.com/gdamore/tcell/v2"

// Color is a terminal color; the zero value means "unset" when used in a Style
type Color = tcell.Color

// AttrMask is a bitmask of text attributes
type AttrMask = tcell.AttrMask

const (
	// ColorDefault is the zero color: unset in a Style, terminal default in a Cell
	ColorDefault = tcell.ColorDefault
	// ColorReset explicitly resets a channel to the terminal default
	ColorReset = tcell.ColorReset
)

// Named colors used by the widgets
const (
	ColorBlack   = tcell.ColorBlack
	ColorRed     = tcell.ColorRed
	ColorGreen   = tcell.ColorGreen
	ColorYellow  = tcell.ColorYellow
	ColorBlue    = tcell.ColorBlue
	ColorAqua    = tcell.ColorAqua
	ColorWhite   = tcell.ColorWhite
	ColorGray    = tcell.ColorGray
	ColorNavy    = tcell.ColorNavy
	ColorSilver  = tcell.ColorSilver
	ColorTeal    = tcell.ColorTeal
	ColorFuchsia = tcell.ColorFuchsia
)

const (
	AttrNone      = tcell.AttrNone
	AttrBold      = tcell.AttrBold
	AttrDim       = tcell.AttrDim
	AttrItalic    = tcell.AttrItalic
	AttrUnderline = tcell.AttrUnderline
	AttrBlink     = tcell.AttrBlink
	AttrReverse   = tcell.AttrReverse
)

// RGB returns a 24-bit color
func RGB(r, g, b uint8) Color {
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// resolve maps the reset sentinel to the default color understood by every tcell backend
func resolve(c Color) Color {
	if c == ColorReset {
		return tcell.ColorDefault
	}
	return c
}
