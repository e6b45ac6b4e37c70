package terminal

import (
	"fmt"
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Terminal provides low-level terminal access
type Terminal interface {
	// Init enters raw mode, alternate screen buffer, hides cursor
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Flush copies the buffer into the back buffer and presents the changed cells
	Flush(buf *Buffer)

	// Sync forces full redraw
	Sync()

	// PollEvent blocks until next input event
	PollEvent() Event

	// PostEvent injects a synthetic event
	PostEvent(Event) error
}

// termImpl implements Terminal on top of a tcell screen
type termImpl struct {
	screen tcell.Screen

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// New creates a Terminal bound to the controlling terminal
func New() (Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: create screen: %w", err)
	}
	return NewFromScreen(screen), nil
}

// NewFromScreen wraps an existing tcell screen, e.g. a simulation screen in tests
func NewFromScreen(screen tcell.Screen) Terminal {
	return &termImpl{screen: screen}
}

func (t *termImpl) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("terminal: init screen: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()
	t.initialized = true
	return nil
}

func (t *termImpl) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.finalized = true
	t.screen.Fini()
}

func (t *termImpl) Size() (int, int) {
	return t.screen.Size()
}

func (t *termImpl) Flush(buf *Buffer) {
	area := buf.Area
	for y := area.Top(); y < area.Bottom(); y++ {
		for x := area.Left(); x < area.Right(); x++ {
			cell := &buf.Cells[buf.index(x, y)]
			if cell.Symbol == "" {
				// Trailing half of a wide glyph, tcell draws it with the leading cell
				continue
			}
			main, comb := splitSymbol(cell.Symbol)
			t.screen.SetContent(x, y, main, comb, tcellStyle(cell.Fg, cell.Bg, cell.Attrs))
		}
	}
	t.screen.Show()
}

func (t *termImpl) Sync() {
	t.screen.Sync()
}

func (t *termImpl) PollEvent() Event {
	return fromTcell(t.screen.PollEvent())
}

func (t *termImpl) PostEvent(e Event) error {
	t.mu.Lock()
	closed := t.finalized
	t.mu.Unlock()
	if closed {
		return ErrInputClosed
	}

	ev := toTcell(e)
	if ev == nil {
		return fmt.Errorf("terminal: event %s cannot be posted", e)
	}
	return t.screen.PostEvent(ev)
}

// splitSymbol separates the first rune of a grapheme from its combining runes
func splitSymbol(s string) (rune, []rune) {
	runes := []rune(s)
	if len(runes) == 0 {
		return ' ', nil
	}
	if len(runes) == 1 {
		return runes[0], nil
	}
	return runes[0], runes[1:]
}

// Dump writes the buffer as plain text, one line per row, for debugging and golden tests
func Dump(w io.Writer, buf *Buffer) error {
	area := buf.Area
	for y := area.Top(); y < area.Bottom(); y++ {
		line := make([]byte, 0, area.W)
		for x := area.Left(); x < area.Right(); x++ {
			sym := buf.Cells[buf.index(x, y)].Symbol
			line = append(line, sym...)
		}
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

