package term

import (
	"context"

	"lifepaint/internal/core"

	"github.com/gdamore/tcell/v2"
)

// Events is a core.EventSource fed from a tcell screen. tcell delivers input
// through a blocking PollEvent, so Pump runs on its own goroutine and queues
// translated events for the non-blocking Poll.
type Events struct {
	screen  tcell.Screen
	size    core.Size
	queue   core.Queue
	buttons tcell.ButtonMask
}

// NewEvents creates a source for a grid of the given size.
func NewEvents(screen tcell.Screen, size core.Size) *Events {
	return &Events{screen: screen, size: size}
}

// Poll implements core.EventSource.
func (e *Events) Poll() []core.Event { return e.queue.Poll() }

// Pump reads screen events until the screen is finalized, then returns nil.
// If ctx is cancelled it returns ctx.Err() after the next event; finalize the
// screen to unblock it promptly.
func (e *Events) Pump(ctx context.Context) error {
	for {
		ev := e.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if out, ok := e.translate(ev); ok {
			e.queue.Push(out...)
		}
	}
}

func (e *Events) translate(ev tcell.Event) ([]core.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEnter:
			return []core.Event{core.KeyDown(core.KeyEnter)}, true
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return []core.Event{core.Quit()}, true
		case tcell.KeyRune:
			if ev.Rune() == 'q' || ev.Rune() == 'Q' {
				return []core.Event{core.Quit()}, true
			}
		}
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		pressed := buttons &^ e.buttons
		e.buttons = buttons
		x, y := ev.Position()
		cell := core.Cell{Row: y, Col: x / cellWidth}
		if x < 0 || y < 0 || cell.Row >= e.size.Rows || cell.Col >= e.size.Cols {
			return nil, false
		}
		px, py := cell.Origin()
		var out []core.Event
		if pressed&tcell.Button1 != 0 {
			out = append(out, core.MouseDown(core.ButtonPrimary, px, py))
		}
		if pressed&tcell.Button2 != 0 {
			out = append(out, core.MouseDown(core.ButtonSecondary, px, py))
		}
		return out, len(out) > 0
	}
	return nil, false
}
