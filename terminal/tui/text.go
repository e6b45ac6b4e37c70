package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/pint/terminal"
)

// Alignment positions a line horizontally within its available width
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Span is a run of text sharing one style
// Unset style channels keep whatever the target cells already carry
type Span struct {
	Content string
	Style   terminal.Style
}

// Raw creates an unstyled span
func Raw(s string) Span {
	return Span{Content: s}
}

// Styled creates a span with style
func Styled(s string, style terminal.Style) Span {
	return Span{Content: s, Style: style}
}

// Width returns the display width of the span
func (s Span) Width() int {
	return runewidth.StringWidth(s.Content)
}

// Line is a sequence of spans rendered on one row
type Line struct {
	Spans []Span
	Style terminal.Style
	Align Alignment
}

// NewLine creates a left-aligned line from spans
func NewLine(spans ...Span) Line {
	return Line{Spans: spans}
}

// Width returns the total display width of the line
func (l Line) Width() int {
	w := 0
	for _, s := range l.Spans {
		w += s.Width()
	}
	return w
}

// IsEmpty reports whether the line has no visible content
func (l Line) IsEmpty() bool {
	return l.Width() == 0
}

// Centered returns a copy aligned to the center
func (l Line) Centered() Line {
	l.Align = AlignCenter
	return l
}

// AlignedRight returns a copy aligned to the right
func (l Line) AlignedRight() Line {
	l.Align = AlignRight
	return l
}

// String returns the concatenated span text
func (l Line) String() string {
	var sb strings.Builder
	for _, s := range l.Spans {
		sb.WriteString(s.Content)
	}
	return sb.String()
}

// alignOffset returns the column offset of content of width w inside avail columns
func alignOffset(align Alignment, w, avail int) int {
	if w >= avail {
		return 0
	}
	switch align {
	case AlignCenter:
		return (avail - w) / 2
	case AlignRight:
		return avail - w
	default:
		return 0
	}
}

// RenderLine writes line into row y of area honoring its alignment, clipped to area width
func RenderLine(buf *terminal.Buffer, area terminal.Rect, y int, line Line) {
	if area.IsEmpty() || y < area.Top() || y >= area.Bottom() {
		return
	}
	w := min(line.Width(), area.W)
	x := area.Left() + alignOffset(line.Align, w, area.W)
	remaining := area.Right() - x
	for _, span := range line.Spans {
		if remaining <= 0 {
			break
		}
		next := buf.SetString(x, y, span.Content, line.Style.Patch(span.Style), remaining)
		remaining -= next - x
		x = next
	}
}

// Truncate truncates string with … suffix if its display width exceeds maxWidth
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 1 {
		return "…"
	}
	return runewidth.Truncate(s, maxWidth, "…")
}
