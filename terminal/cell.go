package terminal

// blankSymbol is the symbol of a reset cell
const blankSymbol = " "

// Cell represents a single terminal cell
// Symbol holds one grapheme; an empty Symbol marks the trailing half of a wide glyph
type Cell struct {
	Symbol string
	Fg     Color
	Bg     Color
	Attrs  AttrMask
}

// SetSymbol replaces the displayed grapheme
func (c *Cell) SetSymbol(s string) *Cell {
	c.Symbol = s
	return c
}

// SetFg replaces the foreground color
func (c *Cell) SetFg(fg Color) *Cell {
	c.Fg = fg
	return c
}

// SetBg replaces the background color
func (c *Cell) SetBg(bg Color) *Cell {
	c.Bg = bg
	return c
}

// SetStyle patches the cell with the channels the style sets
func (c *Cell) SetStyle(s Style) *Cell {
	if s.HasFg() {
		c.Fg = s.Fg
	}
	if s.HasBg() {
		c.Bg = s.Bg
	}
	c.Attrs |= s.Attrs
	return c
}

// Style returns the cell colors and attributes as a Style
func (c *Cell) Style() Style {
	return Style{Fg: c.Fg, Bg: c.Bg, Attrs: c.Attrs}
}

// Reset blanks the cell with default colors
func (c *Cell) Reset() {
	*c = Cell{Symbol: blankSymbol}
}
