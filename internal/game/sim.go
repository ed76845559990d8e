package game

import (
	"context"
	"time"

	"lifepaint/internal/core"
	"lifepaint/internal/life"
)

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep is the wall-clock Sleeper.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Simulation advances a grid one generation per tick and redraws only the
// cells that changed since the previous frame.
type Simulation struct {
	current    *core.Grid
	next       *core.Grid
	previous   *core.Grid
	display    core.Display
	generation int
	stopped    bool
}

// NewSimulation takes ownership of initial. The display is assumed to show
// initial already, which is what EditSession leaves behind on confirm.
func NewSimulation(initial *core.Grid, display core.Display) *Simulation {
	return &Simulation{
		current:  initial,
		next:     core.NewGrid(initial.Rows(), initial.Cols()),
		previous: initial.Clone(),
		display:  display,
	}
}

// Grid returns the current generation. Callers must not modify it.
func (s *Simulation) Grid() *core.Grid { return s.current }

// Previous returns the snapshot of the last rendered frame.
func (s *Simulation) Previous() *core.Grid { return s.previous }

// Generation returns the number of ticks applied so far.
func (s *Simulation) Generation() int { return s.generation }

// Population returns the number of live cells in the current generation.
func (s *Simulation) Population() int { return s.current.Population() }

// Stopped reports whether a termination event has been observed.
func (s *Simulation) Stopped() bool { return s.stopped }

// Advance computes the next generation, repaints the changed cells, presents
// the frame and returns the changed cells.
func (s *Simulation) Advance() []core.Cell {
	life.StepInto(s.next, s.current)
	changed := Diff(s.previous, s.next)
	for _, cell := range changed {
		core.PaintCell(s.display, cell, s.next.Alive(cell.Row, cell.Col))
	}
	s.previous.CopyFrom(s.next)
	s.display.Present()
	s.current, s.next = s.next, s.current
	s.generation++
	return changed
}

// Tick consumes one burst of events. A quit event stops the simulation
// without advancing; otherwise one generation is applied.
func (s *Simulation) Tick(events []core.Event) (stopped bool) {
	if s.stopped {
		return true
	}
	for _, ev := range events {
		if ev.Kind == core.EventQuit {
			s.stopped = true
			return true
		}
	}
	s.Advance()
	return false
}

// Run waits interval, drains src and ticks until a quit event arrives or ctx
// is cancelled. It returns nil on quit and ctx.Err() on cancellation.
func (s *Simulation) Run(ctx context.Context, src core.EventSource, interval time.Duration, sleep Sleeper) error {
	if sleep == nil {
		sleep = Sleep
	}
	for {
		if err := sleep(ctx, interval); err != nil {
			return err
		}
		if s.Tick(src.Poll()) {
			return nil
		}
	}
}

// Diff returns every cell whose state differs between prev and next in
// row-major order. Both grids must have the same shape.
func Diff(prev, next *core.Grid) []core.Cell {
	var changed []core.Cell
	for r := 0; r < next.Rows(); r++ {
		for c := 0; c < next.Cols(); c++ {
			if prev.Alive(r, c) != next.Alive(r, c) {
				changed = append(changed, core.Cell{Row: r, Col: c})
			}
		}
	}
	return changed
}
