package tui

import (
	"math"

	"github.com/lixenwraith/pint/terminal"
)

// VerticalGauge displays a bar that fills from bottom to top with a centered label
//
// Configuration methods return modified copies, so a gauge value can be built fresh each frame:
//
//	g, err := tui.NewVerticalGauge().
//		GaugeStyle(terminal.NewStyle().Foreground(terminal.ColorBlue)).
//		Block(tui.NewBlock().WithTitle(tui.NewLine(tui.Raw("Progress")))).
//		Percent(43)
type VerticalGauge struct {
	block      *Block
	ratio      GaugeRatio
	label      *Span
	useUnicode bool
	style      terminal.Style
	gaugeStyle terminal.Style
}

// NewVerticalGauge returns an empty gauge in whole-cell mode
func NewVerticalGauge() VerticalGauge {
	return VerticalGauge{}
}

// Percent sets the fill from a percentage in 0..100
func (g VerticalGauge) Percent(p int) (VerticalGauge, error) {
	r, err := RatioFromPercent(p)
	if err != nil {
		return g, err
	}
	g.ratio = r
	return g, nil
}

// Ratio sets the fill from a fraction in 0.0..1.0
func (g VerticalGauge) Ratio(r float64) (VerticalGauge, error) {
	v, err := NewRatio(r)
	if err != nil {
		return g, err
	}
	g.ratio = v
	return g, nil
}

// WithRatio sets an already validated fill
func (g VerticalGauge) WithRatio(r GaugeRatio) VerticalGauge {
	g.ratio = r
	return g
}

// Label replaces the default percentage label with unstyled text
func (g VerticalGauge) Label(text string) VerticalGauge {
	return g.LabelSpan(Raw(text))
}

// LabelSpan replaces the default percentage label with a styled span
func (g VerticalGauge) LabelSpan(span Span) VerticalGauge {
	g.label = &span
	return g
}

// UseUnicode enables eighth-block precision on the row straddling the fill boundary
func (g VerticalGauge) UseUnicode(enabled bool) VerticalGauge {
	g.useUnicode = enabled
	return g
}

// Style sets the style washed over the whole area before drawing
func (g VerticalGauge) Style(style terminal.Style) VerticalGauge {
	g.style = style
	return g
}

// GaugeStyle sets the colors of the filled region; the label box inverts them
func (g VerticalGauge) GaugeStyle(style terminal.Style) VerticalGauge {
	g.gaugeStyle = style
	return g
}

// Block wraps the gauge in a bordered container
func (g VerticalGauge) Block(b Block) VerticalGauge {
	g.block = &b
	return g
}

// GetRatio returns the configured fill
func (g VerticalGauge) GetRatio() GaugeRatio {
	return g.ratio
}

// Render draws the gauge into area; nothing outside area is touched
func (g VerticalGauge) Render(area terminal.Rect, buf *terminal.Buffer) {
	buf.SetStyle(area, g.style)
	if g.block != nil {
		inner := g.block.Inner(area)
		g.block.Render(area, buf)
		g.renderGauge(inner, buf)
		return
	}
	g.renderGauge(area, buf)
}

func (g VerticalGauge) renderGauge(area terminal.Rect, buf *terminal.Buffer) {
	if area.IsEmpty() {
		return
	}

	buf.SetStyle(area, g.gaugeStyle)

	label := g.labelSpan()
	labelWidth := min(area.W, label.Width())
	labelCol := area.Left() + (area.W-labelWidth)/2
	labelRow := area.Top() + area.H/2

	filledHeight := float64(area.H) * g.ratio.Float()
	end := FillStart(area, g.ratio, g.useUnicode)

	fg := g.gaugeStyle.FgOr(terminal.ColorReset)
	bg := g.gaugeStyle.BgOr(terminal.ColorReset)

	for y := end; y < area.Bottom(); y++ {
		for x := area.Left(); x < area.Right(); x++ {
			cell := buf.Cell(x, y)
			if cell == nil {
				continue
			}
			if y == labelRow && x >= labelCol && x < labelCol+labelWidth {
				// Label sits in an inverted box cut out of the fill
				cell.SetSymbol(BlockEmpty).SetFg(bg).SetBg(fg)
			} else {
				cell.SetSymbol(BlockFull).SetFg(fg).SetBg(bg)
			}
		}
	}

	if g.useUnicode && g.ratio.Float() < 1.0 {
		row := end - 1
		if row >= area.Top() {
			glyph := FractionGlyph(math.Mod(filledHeight, 1.0))
			for x := area.Left(); x < area.Right(); x++ {
				if cell := buf.Cell(x, row); cell != nil {
					cell.SetSymbol(glyph)
				}
			}
		}
	}

	buf.SetString(labelCol, labelRow, label.Content, label.Style, labelWidth)
}

func (g VerticalGauge) labelSpan() Span {
	if g.label != nil {
		return *g.label
	}
	return Raw(g.ratio.Label())
}

// FillStart returns the first fully filled row of area for ratio
// Whole-cell mode rounds the filled height, eighth-block mode floors it and leaves the remainder to the row above
func FillStart(area terminal.Rect, ratio GaugeRatio, subCell bool) int {
	filledHeight := float64(area.H) * ratio.Float()
	if subCell {
		return area.Bottom() - int(math.Floor(filledHeight))
	}
	return area.Bottom() - int(math.Round(filledHeight))
}

// FractionGlyph returns the block glyph for a fill fraction of one cell, rounded to the nearest eighth
func FractionGlyph(frac float64) string {
	return BlockGlyph(FractionEighths(frac))
}

// FractionEighths rounds frac*8 to the nearest integer, clamped to 0..8
func FractionEighths(frac float64) int {
	n := int(math.Round(frac * 8))
	return max(0, min(8, n))
}
