package tui

import (
	"testing"

	"github.com/lixenwraith/pint/terminal"
)

func TestLineWidth(t *testing.T) {
	l := NewLine(Raw("Oz: "), Raw("16"), Raw("/"), Raw("128"))
	if l.Width() != 10 {
		t.Errorf("Expected width 10, got %d", l.Width())
	}
	if l.String() != "Oz: 16/128" {
		t.Errorf("Unexpected text %q", l.String())
	}
	if NewLine(Raw("水")).Width() != 2 {
		t.Error("Expected wide rune to count twice")
	}
	if !NewLine().IsEmpty() || !NewLine(Raw("")).IsEmpty() {
		t.Error("Expected empty lines")
	}
}

func TestRenderLineStyles(t *testing.T) {
	area := terminal.NewRect(0, 0, 10, 1)
	buf := terminal.NewBuffer(area)
	yellow := terminal.NewStyle().Foreground(terminal.ColorYellow)
	line := NewLine(Raw("a"), Styled("b", yellow)).Centered()
	line.Style = terminal.NewStyle().Background(terminal.ColorNavy)

	RenderLine(buf, area, 0, line)

	if got := rowSymbols(buf, area, 0); got != "    ab    " {
		t.Errorf("Unexpected row %q", got)
	}
	a, b := buf.Cell(4, 0), buf.Cell(5, 0)
	if a.Fg != terminal.ColorDefault || a.Bg != terminal.ColorNavy {
		t.Errorf("Span a: fg=%v bg=%v", a.Fg, a.Bg)
	}
	if b.Fg != terminal.ColorYellow || b.Bg != terminal.ColorNavy {
		t.Errorf("Span b: fg=%v bg=%v", b.Fg, b.Bg)
	}
}

func TestRenderLineClipsAcrossSpans(t *testing.T) {
	area := terminal.NewRect(0, 0, 4, 1)
	buf := terminal.NewBuffer(area)
	RenderLine(buf, area, 0, NewLine(Raw("ab"), Raw("cdef")).AlignedRight())

	if got := rowSymbols(buf, area, 0); got != "abcd" {
		t.Errorf("Unexpected row %q", got)
	}
}

func TestRenderLineOutsideRowIgnored(t *testing.T) {
	area := terminal.NewRect(0, 0, 4, 1)
	buf := terminal.NewBuffer(terminal.NewRect(0, 0, 4, 2))
	RenderLine(buf, area, 1, NewLine(Raw("ab")))

	if buf.Cell(0, 1).Symbol != " " {
		t.Error("Expected row outside area untouched")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello", 4, "hel…"},
		{"hello", 1, "…"},
		{"hello", 0, ""},
		{"水水水", 4, "水…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d): expected %q, got %q", tt.in, tt.width, tt.want, got)
		}
	}
}
