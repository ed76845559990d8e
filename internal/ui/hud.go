//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel below the grid. It draws straight onto the
// screen each frame and never into the canvas.
type HUD struct {
	width  int
	status Status
}

// NewHUD constructs a HUD spanning the given width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Update stores the status shown on the next Draw.
func (h *HUD) Update(s Status) {
	if h == nil {
		return
	}
	h.status = s
}

// Draw paints the panel with its top edge at offsetY.
func (h *HUD) Draw(screen *ebiten.Image, offsetY int) {
	if h == nil || h.width <= 0 {
		return
	}
	vector.DrawFilledRect(screen, 0, float32(offsetY), float32(h.width), PanelHeight, color.RGBA{R: 16, G: 16, B: 20, A: 255}, false)
	vector.StrokeLine(screen, 0, float32(offsetY)+0.5, float32(h.width), float32(offsetY)+0.5, 1, color.RGBA{R: 54, G: 56, B: 64, A: 255}, false)

	face := basicfont.Face7x13
	y := offsetY + panelPadding + textBaseline
	text.Draw(screen, h.line(), face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}

func (h *HUD) line() string {
	s := h.status
	if s.Phase == "editing" {
		return fmt.Sprintf("editing  live %d  left: paint  right: erase  enter: start", s.Population)
	}
	return fmt.Sprintf("%s  gen %d  live %d", s.Phase, s.Generation, s.Population)
}
