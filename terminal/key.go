package terminal

import "github.com/gdamore/tcell/v2"

// Key represents a parsed input key
type Key uint16

// Key constants - designed for expansion
const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Ctrl combinations the host reacts to
	KeyCtrlC
	KeyCtrlD
	KeyCtrlL
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// tcellKeys maps tcell key codes onto Key constants
var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyCtrlC:      KeyCtrlC,
	tcell.KeyCtrlD:      KeyCtrlD,
	tcell.KeyCtrlL:      KeyCtrlL,
}

// toTcellKeys is the reverse lookup, built from tcellKeys
var toTcellKeys map[Key]tcell.Key

func init() {
	toTcellKeys = make(map[Key]tcell.Key, len(tcellKeys))
	for tk, k := range tcellKeys {
		toTcellKeys[k] = tk
	}
	// Prefer the DEL code terminals actually send for backspace
	toTcellKeys[KeyBackspace] = tcell.KeyBackspace2
}

func modifiersFromTcell(m tcell.ModMask) Modifier {
	var mod Modifier
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	return mod
}

func modifiersToTcell(m Modifier) tcell.ModMask {
	var mask tcell.ModMask
	if m&ModShift != 0 {
		mask |= tcell.ModShift
	}
	if m&ModAlt != 0 {
		mask |= tcell.ModAlt
	}
	if m&ModCtrl != 0 {
		mask |= tcell.ModCtrl
	}
	return mask
}
