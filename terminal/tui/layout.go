package tui

import "github.com/lixenwraith/pint/terminal"

// Center returns a centered rectangle of given size within outer, clipped to outer
func Center(outer terminal.Rect, w, h int) terminal.Rect {
	w = max(0, min(w, outer.W))
	h = max(0, min(h, outer.H))
	x := outer.X + (outer.W-w)/2
	y := outer.Y + (outer.H-h)/2
	return terminal.NewRect(x, y, w, h)
}

// SplitVFixed splits with fixed top height, rest to bottom
func SplitVFixed(r terminal.Rect, topH int) (top, bottom terminal.Rect) {
	if topH > r.H {
		topH = r.H
	}
	if topH < 0 {
		topH = 0
	}
	top = terminal.NewRect(r.X, r.Y, r.W, topH)
	bottom = terminal.NewRect(r.X, r.Y+topH, r.W, r.H-topH)
	return
}
