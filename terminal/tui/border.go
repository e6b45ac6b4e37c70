package tui

import (
	"github.com/lixenwraith/pint/terminal"
)

// Block is a bordered container with optional top and bottom titles
// Widgets draw into Inner(area) after the block has painted its chrome
type Block struct {
	Bordered    bool
	Line        LineType
	BorderStyle terminal.Style
	Style       terminal.Style

	Title       Line
	BottomTitle Line
}

// NewBlock returns a block with a single-line border on all sides
func NewBlock() Block {
	return Block{Bordered: true, Line: LineSingle}
}

// WithTitle sets the title drawn on the top edge
func (b Block) WithTitle(title Line) Block {
	b.Title = title
	return b
}

// WithBottomTitle sets the title drawn on the bottom edge
func (b Block) WithBottomTitle(title Line) Block {
	b.BottomTitle = title
	return b
}

// WithLine sets the border glyph set
func (b Block) WithLine(line LineType) Block {
	b.Line = line
	return b
}

// WithBorderStyle sets the style of border glyphs
func (b Block) WithBorderStyle(style terminal.Style) Block {
	b.BorderStyle = style
	return b
}

// WithStyle sets the style applied across the whole block area
func (b Block) WithStyle(style terminal.Style) Block {
	b.Style = style
	return b
}

// Inner returns the content rectangle left after border and titles
func (b Block) Inner(outer terminal.Rect) terminal.Rect {
	if b.Bordered {
		return outer.Inset(1)
	}
	top, bottom := 0, 0
	if !b.Title.IsEmpty() {
		top = 1
	}
	if !b.BottomTitle.IsEmpty() {
		bottom = 1
	}
	return outer.Shrink(0, top, 0, bottom)
}

// Render paints style, border and titles into outer
func (b Block) Render(outer terminal.Rect, buf *terminal.Buffer) {
	if outer.IsEmpty() {
		return
	}
	buf.SetStyle(outer, b.Style)

	if b.Bordered {
		b.renderBorder(outer, buf)
	}
	b.renderTitles(outer, buf)
}

// renderBorder draws border around rect edge
func (b Block) renderBorder(r terminal.Rect, buf *terminal.Buffer) {
	if r.W < 2 || r.H < 2 {
		return
	}
	line := b.Line
	if line >= LineType(len(boxChars)) {
		line = LineSingle
	}
	chars := boxChars[line]

	set := func(x, y int, sym string) {
		if cell := buf.Cell(x, y); cell != nil {
			cell.SetSymbol(sym).SetStyle(b.BorderStyle)
		}
	}

	left, top := r.Left(), r.Top()
	right, bottom := r.Right()-1, r.Bottom()-1

	// Corners
	set(left, top, chars[boxTL])
	set(right, top, chars[boxTR])
	set(left, bottom, chars[boxBL])
	set(right, bottom, chars[boxBR])

	// Edges
	buf.Fill(terminal.NewRect(left+1, top, right-left-1, 1), chars[boxH], b.BorderStyle)
	buf.Fill(terminal.NewRect(left+1, bottom, right-left-1, 1), chars[boxH], b.BorderStyle)
	buf.Fill(terminal.NewRect(left, top+1, 1, bottom-top-1), chars[boxV], b.BorderStyle)
	buf.Fill(terminal.NewRect(right, top+1, 1, bottom-top-1), chars[boxV], b.BorderStyle)
}

// renderTitles writes titles on the top and bottom rows, between the corners when bordered
func (b Block) renderTitles(r terminal.Rect, buf *terminal.Buffer) {
	span := r
	if b.Bordered {
		span = r.Shrink(1, 0, 1, 0)
	}
	if span.IsEmpty() {
		return
	}
	if !b.Title.IsEmpty() {
		RenderLine(buf, span, r.Top(), b.Title)
	}
	if !b.BottomTitle.IsEmpty() && (r.H > 1 || b.Title.IsEmpty()) {
		RenderLine(buf, span, r.Bottom()-1, b.BottomTitle)
	}
}
