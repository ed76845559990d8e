package core

import "image/color"

// CellSize is the edge length of one cell in pixels.
const CellSize = 10

// Size describes the dimensions of a grid in cells.
type Size struct {
	Rows int
	Cols int
}

// Cell addresses a single grid cell.
type Cell struct {
	Row, Col int
}

// Dimension converts a window edge in pixels into a cell count. A trailing
// partial cell is discarded.
func Dimension(windowSize int) int { return windowSize / CellSize }

// CellAt maps a pixel position to the cell containing it.
func CellAt(x, y int) Cell { return Cell{Row: y / CellSize, Col: x / CellSize} }

// Origin returns the top-left pixel of the cell.
func (c Cell) Origin() (x, y int) { return c.Col * CellSize, c.Row * CellSize }

var (
	// AliveColor paints live cells.
	AliveColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	// DeadColor paints dead cells.
	DeadColor = color.RGBA{A: 255}
	// GuideColor paints the grid lines shown while editing.
	GuideColor = color.RGBA{R: 150, G: 150, B: 150, A: 255}
)

// CellColor returns the colour used for a cell in the given state.
func CellColor(alive bool) color.RGBA {
	if alive {
		return AliveColor
	}
	return DeadColor
}

// Display is the drawing surface the core renders into. Fills accumulate
// until Present pushes the frame.
type Display interface {
	FillRect(c color.Color, x, y, w, h int)
	Present()
}

// PaintCell fills the patch of cell with the colour for its state.
func PaintCell(d Display, cell Cell, alive bool) {
	x, y := cell.Origin()
	d.FillRect(CellColor(alive), x, y, CellSize, CellSize)
}

// EventKind enumerates the input events the core understands.
type EventKind uint8

const (
	// EventQuit requests termination.
	EventQuit EventKind = iota
	// EventKeyDown reports a key press.
	EventKeyDown
	// EventMouseDown reports a mouse button press at a pixel position.
	EventMouseDown
)

// Key identifies a keyboard key. Only KeyEnter is meaningful to the core.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyEnter
)

// Button identifies a mouse button.
type Button uint8

const (
	ButtonUnknown Button = iota
	ButtonPrimary
	ButtonSecondary
)

// Event is a single discrete input event.
type Event struct {
	Kind   EventKind
	Key    Key
	Button Button
	X, Y   int
}

// Quit returns a termination event.
func Quit() Event { return Event{Kind: EventQuit} }

// KeyDown returns a key press event.
func KeyDown(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }

// MouseDown returns a button press event at pixel (x, y).
func MouseDown(b Button, x, y int) Event {
	return Event{Kind: EventMouseDown, Button: b, X: x, Y: y}
}

// EventSource yields pending input. Poll never blocks; it returns the burst
// of events queued since the previous call, which may be empty.
type EventSource interface {
	Poll() []Event
}
