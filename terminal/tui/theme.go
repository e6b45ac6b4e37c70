package tui

import "github.com/lixenwraith/pint/terminal"

// Theme defines semantic colors for TUI components
type Theme struct {
	Border  terminal.Color
	Title   terminal.Color
	Hint    terminal.Color
	Counter terminal.Color

	GaugeFill  terminal.Color
	GaugeTrack terminal.Color
	GaugeDone  terminal.Color
}

// DefaultTheme provides reasonable defaults
var DefaultTheme = Theme{
	Border:     terminal.RGB(80, 100, 140),
	Title:      terminal.RGB(255, 255, 255),
	Hint:       terminal.ColorBlue,
	Counter:    terminal.ColorYellow,
	GaugeFill:  terminal.RGB(80, 160, 220),
	GaugeTrack: terminal.RGB(30, 35, 45),
	GaugeDone:  terminal.RGB(80, 200, 80),
}
