// Package tui provides immediate-mode widgets drawing into a terminal.Buffer.
//
// Widgets are plain values rebuilt every frame. Render borrows the buffer, writes only inside the
// rectangle it was given and keeps no reference afterwards.
//
// Usage pattern:
//
//	buf := terminal.NewBuffer(terminal.NewRect(0, 0, w, h))
//	block := tui.NewBlock().WithTitle(tui.NewLine(tui.Raw(" Pint ")).Centered())
//	block.Render(buf.Area, buf)
//
//	gauge := tui.NewVerticalGauge().
//		WithRatio(tui.RatioOf(amount, goal)).
//		UseUnicode(true).
//		GaugeStyle(terminal.NewStyle().Foreground(terminal.ColorBlue))
//	gauge.Render(tui.Center(block.Inner(buf.Area), 8, 10), buf)
//
//	term.Flush(buf)
package tui
