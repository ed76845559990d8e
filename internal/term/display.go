// Package term renders the grid in a terminal and turns terminal input into
// core events. One grid cell occupies two terminal columns of one row, which
// keeps cells roughly square in common fonts.
package term

import (
	"image/color"

	"lifepaint/internal/core"

	"github.com/gdamore/tcell/v2"
)

const (
	cellWidth = 2
	guideRune = '·'
)

// Display is a core.Display drawing onto a tcell screen. Pixel rectangles
// are mapped to the cells they touch: a rectangle covering whole cells sets
// their colour, a thinner one (a guide line) marks each touched cell without
// recolouring it.
type Display struct {
	screen tcell.Screen
	size   core.Size
}

// NewDisplay wraps screen for a grid of the given size.
func NewDisplay(screen tcell.Screen, size core.Size) *Display {
	return &Display{screen: screen, size: size}
}

// FillRect implements core.Display.
func (d *Display) FillRect(c color.Color, x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	tc := tcellColor(c)
	whole := w >= core.CellSize && h >= core.CellSize
	r0, c0 := y/core.CellSize, x/core.CellSize
	r1, c1 := (y+h-1)/core.CellSize, (x+w-1)/core.CellSize
	for row := max(r0, 0); row <= min(r1, d.size.Rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, d.size.Cols-1); col++ {
			if whole {
				d.paint(row, col, tc)
			} else {
				d.mark(row, col, tc)
			}
		}
	}
}

// Present implements core.Display.
func (d *Display) Present() { d.screen.Show() }

func (d *Display) paint(row, col int, bg tcell.Color) {
	style := tcell.StyleDefault.Background(bg)
	for i := 0; i < cellWidth; i++ {
		d.screen.SetContent(col*cellWidth+i, row, ' ', nil, style)
	}
}

func (d *Display) mark(row, col int, fg tcell.Color) {
	x := col * cellWidth
	_, _, style, _ := d.screen.GetContent(x, row)
	d.screen.SetContent(x, row, guideRune, nil, style.Foreground(fg))
}

func tcellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
