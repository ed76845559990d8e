package core

import "fmt"

// Grid stores a 2D matrix of boolean cell states in row-major order.
// Rows grow downward and columns grow rightward. Neighbourhoods wrap at every
// edge, so the topology is a torus.
type Grid struct {
	rows, cols int
	data       []bool
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{rows: rows, cols: cols, data: make([]bool, rows*cols)}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{Rows: g.rows, Cols: g.cols} }

// Contains reports whether (row, col) addresses a cell of the grid.
func (g *Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid) index(row, col int) int {
	if !g.Contains(row, col) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", row, col, g.rows, g.cols))
	}
	return row*g.cols + col
}

// Alive reports whether the cell at (row, col) is alive.
func (g *Grid) Alive(row, col int) bool { return g.data[g.index(row, col)] }

// SetAlive marks the cell at (row, col) alive.
func (g *Grid) SetAlive(row, col int) { g.data[g.index(row, col)] = true }

// SetDead marks the cell at (row, col) dead.
func (g *Grid) SetDead(row, col int) { g.data[g.index(row, col)] = false }

// Set assigns the state of the cell at (row, col).
func (g *Grid) Set(row, col int, alive bool) { g.data[g.index(row, col)] = alive }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.rows + g.rows) % g.rows
	col = (col%g.cols + g.cols) % g.cols
	return row, col
}

// NeighborCount returns the number of live cells among the eight wrapped
// neighbours of (row, col). Offsets are counted positionally: on grids with
// fewer than three rows or columns a wrapped offset can land on the same cell
// twice, or on (row, col) itself, and each landing counts.
func (g *Grid) NeighborCount(row, col int) int {
	g.index(row, col)
	n := 0
	for dr := -1; dr <= 1; dr++ {
		r := (row + dr + g.rows) % g.rows
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			c := (col + dc + g.cols) % g.cols
			if g.data[r*g.cols+c] {
				n++
			}
		}
	}
	return n
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.data {
		if alive {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{rows: g.rows, cols: g.cols, data: append([]bool(nil), g.data...)}
}

// CopyFrom overwrites every cell with the state of src. Both grids must have
// the same shape.
func (g *Grid) CopyFrom(src *Grid) {
	if g.rows != src.rows || g.cols != src.cols {
		panic(fmt.Sprintf("core: copy from %dx%d grid into %dx%d grid", src.rows, src.cols, g.rows, g.cols))
	}
	copy(g.data, src.data)
}

// Equal reports whether both grids have the same shape and cell states.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, alive := range g.data {
		if other.data[i] != alive {
			return false
		}
	}
	return true
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// LiveCells returns the addresses of all live cells in row-major order.
func (g *Grid) LiveCells() []Cell {
	var cells []Cell
	for i, alive := range g.data {
		if alive {
			cells = append(cells, Cell{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return cells
}
