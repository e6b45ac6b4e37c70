package terminal

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventError  // Read error
	EventClosed // Input closed
)

// Event represents a terminal input event
type Event struct {
	Type      EventType
	Key       Key
	Rune      rune
	Modifiers Modifier
	Width     int   // For EventResize
	Height    int   // For EventResize
	Err       error // For EventError
}

// IsRune reports whether the event is a press of the printable character r
func (e Event) IsRune(r rune) bool {
	return e.Type == EventKey && e.Key == KeyRune && e.Rune == r
}

// String returns a short description used in debug logs
func (e Event) String() string {
	switch e.Type {
	case EventKey:
		if e.Key == KeyRune {
			return "key:" + string(e.Rune)
		}
		return "key:" + KeyName(e.Key)
	case EventResize:
		return "resize"
	case EventError:
		return "error"
	case EventClosed:
		return "closed"
	default:
		return "none"
	}
}

// ErrInputClosed is returned when posting to a finalized terminal
var ErrInputClosed = errors.New("terminal: input closed")

// fromTcell translates a tcell event; nil means the screen was finalized
func fromTcell(ev tcell.Event) Event {
	switch ev := ev.(type) {
	case nil:
		return Event{Type: EventClosed}
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			return Event{
				Type:      EventKey,
				Key:       KeyRune,
				Rune:      ev.Rune(),
				Modifiers: modifiersFromTcell(ev.Modifiers()),
			}
		}
		k, ok := tcellKeys[ev.Key()]
		if !ok {
			k = KeyNone
		}
		return Event{Type: EventKey, Key: k, Modifiers: modifiersFromTcell(ev.Modifiers())}
	case *tcell.EventResize:
		w, h := ev.Size()
		return Event{Type: EventResize, Width: w, Height: h}
	case *tcell.EventError:
		return Event{Type: EventError, Err: errors.New(ev.Error())}
	default:
		return Event{Type: EventNone}
	}
}

// toTcell builds the tcell event for a synthetic Event, nil if it has no tcell form
func toTcell(e Event) tcell.Event {
	switch e.Type {
	case EventKey:
		if e.Key == KeyRune {
			return tcell.NewEventKey(tcell.KeyRune, e.Rune, modifiersToTcell(e.Modifiers))
		}
		tk, ok := toTcellKeys[e.Key]
		if !ok {
			return nil
		}
		return tcell.NewEventKey(tk, 0, modifiersToTcell(e.Modifiers))
	case EventResize:
		return tcell.NewEventResize(e.Width, e.Height)
	case EventError:
		err := e.Err
		if err == nil {
			err = errors.New("terminal: synthetic error")
		}
		return tcell.NewEventError(err)
	default:
		return nil
	}
}
