package app

import (
	"fmt"
	"log"
	"math"
	"strconv"

	"github.com/lixenwraith/pint/terminal"
	"github.com/lixenwraith/pint/terminal/tui"
)

// gaugeWidth fits the " Water " title between the corners
const gaugeWidth = 11

// Sounder plays feedback cues; implementations must not block
type Sounder interface {
	PlayDrink()
	PlayGoal()
}

type nopSounder struct{}

func (nopSounder) PlayDrink() {}
func (nopSounder) PlayGoal()  {}

// App is the water counter host: state, input mapping and frame layout
type App struct {
	amount uint16
	goal   uint16
	step   uint16
	exit   bool

	goalReached bool
	unicode     bool
	theme       tui.Theme
	sounder     Sounder
}

// New creates an App from a validated config; nil sounder disables cues
func New(cfg Config, sounder Sounder) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sounder == nil {
		sounder = nopSounder{}
	}
	return &App{
		goal:    uint16(cfg.Goal),
		step:    uint16(cfg.Step),
		unicode: cfg.Unicode,
		theme:   tui.DefaultTheme,
		sounder: sounder,
	}, nil
}

// Amount returns the ounces drunk so far
func (a *App) Amount() uint16 { return a.amount }

// Goal returns the target in ounces
func (a *App) Goal() uint16 { return a.goal }

// Ratio returns progress toward the goal clamped to [0,1]
func (a *App) Ratio() tui.GaugeRatio {
	return tui.RatioOf(int(a.amount), int(a.goal))
}

// Drink adds one step, saturating at the counter maximum
func (a *App) Drink() {
	sum := uint32(a.amount) + uint32(a.step)
	if sum > math.MaxUint16 {
		sum = math.MaxUint16
	}
	a.amount = uint16(sum)
	a.sounder.PlayDrink()

	if !a.goalReached && a.amount >= a.goal {
		a.goalReached = true
		a.sounder.PlayGoal()
		log.Printf("goal reached: %d/%d", a.amount, a.goal)
	}
}

// Exit requests loop termination after the current iteration
func (a *App) Exit() { a.exit = true }

// Exiting reports whether exit was requested
func (a *App) Exiting() bool { return a.exit }

// HandleEvent applies one input event to the state
// Only read failures are returned; unknown keys and resizes are ignored
func (a *App) HandleEvent(ev terminal.Event) error {
	switch ev.Type {
	case terminal.EventKey:
		switch {
		case ev.IsRune('q'):
			a.Exit()
		case ev.IsRune('d'):
			a.Drink()
		case ev.Key == terminal.KeyCtrlC, ev.Key == terminal.KeyEscape:
			a.Exit()
		}
	case terminal.EventError:
		return fmt.Errorf("app: read event: %w", ev.Err)
	case terminal.EventClosed:
		a.Exit()
	}
	return nil
}

// Render draws a full frame into area
func (a *App) Render(area terminal.Rect, buf *terminal.Buffer) {
	hint := terminal.NewStyle().Foreground(a.theme.Hint).Bold()
	block := tui.NewBlock().
		WithTitle(tui.NewLine(tui.Styled(" Pint ", terminal.NewStyle().Foreground(a.theme.Title).Bold())).Centered()).
		WithBottomTitle(tui.NewLine(
			tui.Raw(" Drink "),
			tui.Styled("<d>", hint),
			tui.Raw(" Quit "),
			tui.Styled("<q> ", hint),
		).Centered())
	block.Render(area, buf)

	inner := block.Inner(area)
	if inner.IsEmpty() {
		return
	}

	counterRow, rest := tui.SplitVFixed(inner, 1)
	tui.RenderLine(buf, counterRow, counterRow.Y, a.counterLine(counterRow.W))

	if rest.IsEmpty() {
		return
	}
	a.gauge().Render(tui.Center(rest, gaugeWidth, rest.H), buf)
}

// counterLine formats "Oz: amount/goal" with highlighted numbers
// A frame narrower than the line gets a plain copy ending in an ellipsis
func (a *App) counterLine(width int) tui.Line {
	num := terminal.NewStyle().Foreground(a.theme.Counter)
	line := tui.NewLine(
		tui.Raw("Oz: "),
		tui.Styled(strconv.Itoa(int(a.amount)), num),
		tui.Raw("/"),
		tui.Styled(strconv.Itoa(int(a.goal)), num),
	)
	if line.Width() > width {
		line = tui.NewLine(tui.Raw(tui.Truncate(line.String(), width)))
	}
	return line.Centered()
}

// gauge builds the frame's gauge configuration from current state
func (a *App) gauge() tui.VerticalGauge {
	ratio := a.Ratio()
	fill := a.theme.GaugeFill
	if ratio.Float() >= 1 {
		fill = a.theme.GaugeDone
	}
	block := tui.NewBlock().
		WithTitle(tui.NewLine(tui.Raw(" Water ")).Centered()).
		WithBorderStyle(terminal.NewStyle().Foreground(a.theme.Border))

	return tui.NewVerticalGauge().
		WithRatio(ratio).
		UseUnicode(a.unicode).
		GaugeStyle(terminal.NewStyle().Foreground(fill).Background(a.theme.GaugeTrack)).
		Block(block)
}

// Run alternates drawing a frame and blocking on the next event until exit
func (a *App) Run(term terminal.Terminal) error {
	w, h := term.Size()
	buf := terminal.NewBuffer(terminal.NewRect(0, 0, w, h))

	for !a.exit {
		if w, h = term.Size(); w != buf.Area.W || h != buf.Area.H {
			buf.Resize(terminal.NewRect(0, 0, w, h))
		} else {
			buf.Reset()
		}
		a.Render(buf.Area, buf)
		term.Flush(buf)

		ev := term.PollEvent()
		if ev.Type == terminal.EventResize {
			term.Sync()
		}
		if err := a.HandleEvent(ev); err != nil {
			return err
		}
	}
	return nil
}
