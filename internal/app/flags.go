package app

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"lifepaint/internal/core"
	"lifepaint/internal/game"
)

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config represents the command-line parameters for the application.
type Config struct {
	WindowSize int
	Speed      float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{WindowSize: 750, Speed: 0.1}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.WindowSize, "window_size", c.WindowSize, "size of the square window in pixels")
	fs.Float64Var(&c.Speed, "speed", c.Speed, "seconds between generations")
}

// Validate rejects configurations that cannot produce a grid or a cadence.
func (c *Config) Validate() error {
	if c.WindowSize <= 0 || c.Speed <= 0 {
		return fmt.Errorf("%w: window size and speed should be positive values", ErrInvalidConfig)
	}
	if core.Dimension(c.WindowSize) < 1 {
		return fmt.Errorf("%w: window size %d is smaller than one %dpx cell", ErrInvalidConfig, c.WindowSize, core.CellSize)
	}
	if c.TickInterval() <= 0 {
		return fmt.Errorf("%w: speed %g rounds to a zero tick interval", ErrInvalidConfig, c.Speed)
	}
	return nil
}

// TickInterval converts Speed to a duration.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Speed * float64(time.Second))
}

// GridSize returns the grid dimensions implied by the window size. Pixels
// beyond the last whole cell are not part of the grid.
func (c *Config) GridSize() core.Size {
	n := core.Dimension(c.WindowSize)
	return core.Size{Rows: n, Cols: n}
}

// Options returns the settings game.Play needs.
func (c *Config) Options() game.Options {
	return game.Options{WindowSize: c.WindowSize, TickInterval: c.TickInterval()}
}
