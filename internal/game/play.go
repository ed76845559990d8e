package game

import (
	"context"
	"time"

	"lifepaint/internal/core"
)

// EditFrame is how often the edit loop polls for input.
const EditFrame = 16 * time.Millisecond

// Options configures a Play run.
type Options struct {
	WindowSize   int
	TickInterval time.Duration
}

// Result summarises a finished Play run.
type Result struct {
	// Phase is Editing if the run ended before the user confirmed.
	Phase      Phase
	Generation int
	Grid       *core.Grid
}

// Play runs the edit phase and then the simulation phase on a grid sized
// from opts.WindowSize. It returns when a quit event is observed (nil error)
// or when ctx is cancelled (ctx.Err()).
func Play(ctx context.Context, opts Options, display core.Display, src core.EventSource, sleep Sleeper) (Result, error) {
	if sleep == nil {
		sleep = Sleep
	}
	n := core.Dimension(opts.WindowSize)
	grid := core.NewGrid(n, n)

	session := NewEditSession(grid, display)
	session.Begin()
	for session.State() == Editing {
		if session.Apply(src.Poll()) {
			return Result{Phase: Editing, Grid: grid}, nil
		}
		if session.State() == Done {
			break
		}
		if err := sleep(ctx, EditFrame); err != nil {
			return Result{Phase: Editing, Grid: grid}, err
		}
	}

	sim := NewSimulation(grid, display)
	err := sim.Run(ctx, src, opts.TickInterval, sleep)
	return Result{Phase: Done, Generation: sim.Generation(), Grid: sim.Grid()}, err
}
