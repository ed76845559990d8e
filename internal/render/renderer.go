//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas is a core.Display backed by a Framebuffer. Present snapshots the
// buffer; Draw uploads the latest snapshot and blits it every frame, so fills
// made after the last Present never reach the screen.
type Canvas struct {
	*Framebuffer
	img   *ebiten.Image
	frame []byte
	dirty bool
}

// NewCanvas allocates a canvas of w*h pixels.
func NewCanvas(w, h int) *Canvas {
	fb := NewFramebuffer(w, h)
	c := &Canvas{
		Framebuffer: fb,
		img:         ebiten.NewImage(fb.w, fb.h),
		frame:       make([]byte, len(fb.pix)),
	}
	c.Present()
	return c
}

// Present marks the current buffer contents as the frame to show.
func (c *Canvas) Present() {
	copy(c.frame, c.pix)
	c.dirty = true
}

// Draw renders the last presented frame onto dst.
func (c *Canvas) Draw(dst *ebiten.Image) {
	if c.dirty {
		c.img.WritePixels(c.frame)
		c.dirty = false
	}
	dst.DrawImage(c.img, nil)
}
