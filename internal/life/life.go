// Package life implements the Conway's Game of Life transition rule (B3/S23)
// over toroidal grids.
package life

import (
	"fmt"

	"lifepaint/internal/core"
)

// Next applies the B3/S23 rule to a single cell with n live neighbours.
func Next(alive bool, n int) bool {
	return (alive && (n == 2 || n == 3)) || (!alive && n == 3)
}

// Step returns the next generation of g as a new grid. g is not modified.
func Step(g *core.Grid) *core.Grid {
	next := core.NewGrid(g.Rows(), g.Cols())
	StepInto(next, g)
	return next
}

// StepInto writes the next generation of src into dst. Every cell of dst is
// overwritten and only src is read, so the update is simultaneous. dst and src
// must have the same shape and must not be the same grid.
func StepInto(dst, src *core.Grid) {
	if dst == src {
		panic("life: StepInto with aliased grids")
	}
	if dst.Size() != src.Size() {
		panic(fmt.Sprintf("life: StepInto %dx%d into %dx%d", src.Rows(), src.Cols(), dst.Rows(), dst.Cols()))
	}
	rows, cols := src.Rows(), src.Cols()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			dst.Set(r, c, Next(src.Alive(r, c), src.NeighborCount(r, c)))
		}
	}
}
