package game

import "lifepaint/internal/core"

// Phase is the state of an EditSession.
type Phase uint8

const (
	// Editing accepts paint events.
	Editing Phase = iota
	// Done is terminal; the authored grid belongs to the simulation.
	Done
)

func (p Phase) String() string {
	switch p {
	case Editing:
		return "editing"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// EditSession lets the user paint the initial generation. Primary clicks
// bring cells to life, secondary clicks kill them, and ENTER confirms.
type EditSession struct {
	grid    *core.Grid
	display core.Display
	phase   Phase
}

// NewEditSession starts a session over grid that paints into display.
func NewEditSession(grid *core.Grid, display core.Display) *EditSession {
	return &EditSession{grid: grid, display: display, phase: Editing}
}

// State returns the current phase.
func (s *EditSession) State() Phase { return s.phase }

// Grid returns the grid being authored.
func (s *EditSession) Grid() *core.Grid { return s.grid }

// Begin draws the current grid with the guide overlay on top.
func (s *EditSession) Begin() {
	RedrawAll(s.display, s.grid)
	drawGuide(s.display, s.grid.Size())
	s.display.Present()
}

// Handle applies a single event and reports whether it requested
// termination. Events are ignored once the session is Done.
func (s *EditSession) Handle(ev core.Event) (quit bool) {
	if s.phase == Done {
		return false
	}
	switch ev.Kind {
	case core.EventQuit:
		return true
	case core.EventKeyDown:
		if ev.Key == core.KeyEnter {
			s.confirm()
		}
	case core.EventMouseDown:
		cell := core.CellAt(ev.X, ev.Y)
		switch ev.Button {
		case core.ButtonPrimary:
			s.paint(cell, true)
		case core.ButtonSecondary:
			s.paint(cell, false)
		}
	}
	return false
}

// Apply handles a burst of events in order. It stops at the first quit
// request or at the confirming key press; later events in the burst are
// dropped.
func (s *EditSession) Apply(events []core.Event) (quit bool) {
	for _, ev := range events {
		if s.Handle(ev) {
			return true
		}
		if s.phase == Done {
			return false
		}
	}
	return false
}

func (s *EditSession) paint(cell core.Cell, alive bool) {
	if s.grid.Alive(cell.Row, cell.Col) == alive {
		return
	}
	s.grid.Set(cell.Row, cell.Col, alive)
	core.PaintCell(s.display, cell, alive)
	x, y := cell.Origin()
	s.display.FillRect(core.GuideColor, x, y, core.CellSize, 1)
	s.display.FillRect(core.GuideColor, x, y, 1, core.CellSize)
	s.display.Present()
}

func (s *EditSession) confirm() {
	s.phase = Done
	RedrawAll(s.display, s.grid)
	s.display.Present()
}

// RedrawAll paints every cell of g, covering anything drawn before.
func RedrawAll(d core.Display, g *core.Grid) {
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			core.PaintCell(d, core.Cell{Row: r, Col: c}, g.Alive(r, c))
		}
	}
}

// drawGuide draws one-pixel lines along the top and left edge of every cell
// row and column. The lines lie inside cell patches so a full redraw erases
// them.
func drawGuide(d core.Display, size core.Size) {
	w := size.Cols * core.CellSize
	h := size.Rows * core.CellSize
	for r := 0; r < size.Rows; r++ {
		d.FillRect(core.GuideColor, 0, r*core.CellSize, w, 1)
	}
	for c := 0; c < size.Cols; c++ {
		d.FillRect(core.GuideColor, c*core.CellSize, 0, 1, h)
	}
}
