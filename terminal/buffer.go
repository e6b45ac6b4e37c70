package terminal

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Buffer is a row-major grid of cells covering Area
// Coordinates passed to Buffer methods are absolute, not relative to Area
type Buffer struct {
	Area  Rect
	Cells []Cell
}

// NewBuffer creates a blank buffer covering area
func NewBuffer(area Rect) *Buffer {
	b := &Buffer{}
	b.Resize(area)
	return b
}

// Resize changes the covered area and blanks every cell, reusing storage when possible
func (b *Buffer) Resize(area Rect) {
	n := area.Area()
	if cap(b.Cells) < n {
		b.Cells = make([]Cell, n)
	}
	b.Cells = b.Cells[:n]
	b.Area = area
	b.Reset()
}

// Reset blanks every cell
func (b *Buffer) Reset() {
	for i := range b.Cells {
		b.Cells[i].Reset()
	}
}

// index returns the slice index for an absolute position, or -1 outside the area
func (b *Buffer) index(x, y int) int {
	if !b.Area.Contains(x, y) {
		return -1
	}
	return (y-b.Area.Y)*b.Area.W + (x - b.Area.X)
}

// Cell returns the cell at an absolute position, nil outside the area
func (b *Buffer) Cell(x, y int) *Cell {
	idx := b.index(x, y)
	if idx < 0 {
		return nil
	}
	return &b.Cells[idx]
}

// SetStyle patches every cell of area (clipped to the buffer) with style
func (b *Buffer) SetStyle(area Rect, style Style) {
	area = area.Intersect(b.Area)
	if area.IsEmpty() || style.IsZero() {
		return
	}
	for y := area.Top(); y < area.Bottom(); y++ {
		for x := area.Left(); x < area.Right(); x++ {
			b.Cells[b.index(x, y)].SetStyle(style)
		}
	}
}

// Fill overwrites every cell of area (clipped to the buffer) with symbol and style
func (b *Buffer) Fill(area Rect, symbol string, style Style) {
	area = area.Intersect(b.Area)
	for y := area.Top(); y < area.Bottom(); y++ {
		for x := area.Left(); x < area.Right(); x++ {
			b.Cells[b.index(x, y)].SetSymbol(symbol).SetStyle(style)
		}
	}
}

// SetString writes s starting at (x, y) using at most maxWidth columns
// Graphemes are placed by display width; the column after a wide glyph becomes a continuation cell.
// A grapheme that would straddle the width limit or the buffer edge is dropped.
// Returns the column following the last written grapheme.
func (b *Buffer) SetString(x, y int, s string, style Style, maxWidth int) int {
	if y < b.Area.Top() || y >= b.Area.Bottom() || maxWidth <= 0 {
		return x
	}
	limit := min(x+maxWidth, b.Area.Right())

	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		g := gr.Str()
		w := runewidth.StringWidth(g)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		if cell := b.Cell(x, y); cell != nil {
			cell.SetSymbol(g).SetStyle(style)
		}
		for i := 1; i < w; i++ {
			if cell := b.Cell(x+i, y); cell != nil {
				cell.SetSymbol("").SetStyle(style)
			}
		}
		x += w
	}
	return x
}

// StringWidth returns the display width of s in cells
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}
