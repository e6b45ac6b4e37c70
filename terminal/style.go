package terminal

import "github.com/gdamore/tcell/v2"

// Style bundles optional foreground, background and attributes
// A zero channel is unset: applying the style leaves that channel of the cell untouched
type Style struct {
	Fg    Color
	Bg    Color
	Attrs AttrMask
}

// NewStyle returns a style with both colors unset
func NewStyle() Style {
	return Style{}
}

// Foreground returns a copy with the foreground set
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a copy with the background set
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// Bold returns a copy with the bold attribute added
func (s Style) Bold() Style {
	s.Attrs |= AttrBold
	return s
}

// Reverse returns a copy with the reverse attribute added
func (s Style) Reverse() Style {
	s.Attrs |= AttrReverse
	return s
}

// HasFg reports whether the foreground channel is set
func (s Style) HasFg() bool { return s.Fg != ColorDefault }

// HasBg reports whether the background channel is set
func (s Style) HasBg() bool { return s.Bg != ColorDefault }

// FgOr returns the foreground, or fallback when unset
func (s Style) FgOr(fallback Color) Color {
	if s.HasFg() {
		return s.Fg
	}
	return fallback
}

// BgOr returns the background, or fallback when unset
func (s Style) BgOr(fallback Color) Color {
	if s.HasBg() {
		return s.Bg
	}
	return fallback
}

// Patch layers other on top of s: set channels of other win, attributes accumulate
func (s Style) Patch(other Style) Style {
	if other.HasFg() {
		s.Fg = other.Fg
	}
	if other.HasBg() {
		s.Bg = other.Bg
	}
	s.Attrs |= other.Attrs
	return s
}

// IsZero returns true if style has no colors or attributes set
func (s Style) IsZero() bool {
	return s == Style{}
}

// tcellStyle converts a fully resolved cell style for the screen
func tcellStyle(fg, bg Color, attrs AttrMask) tcell.Style {
	return tcell.StyleDefault.
		Foreground(resolve(fg)).
		Background(resolve(bg)).
		Attributes(attrs)
}
