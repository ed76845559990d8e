package render

import (
	"image"
	"image/color"
)

// Framebuffer is a software RGBA surface. Fills persist until overwritten,
// so a caller that repaints only changed cells still sees a complete frame.
type Framebuffer struct {
	w, h int
	pix  []byte
}

// NewFramebuffer allocates an opaque black w*h surface.
func NewFramebuffer(w, h int) *Framebuffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	fb := &Framebuffer{w: w, h: h, pix: make([]byte, 4*w*h)}
	fb.FillRect(color.Black, 0, 0, w, h)
	return fb
}

// Size returns the surface dimensions in pixels.
func (fb *Framebuffer) Size() (int, int) { return fb.w, fb.h }

// Pix exposes the RGBA bytes in row-major order.
func (fb *Framebuffer) Pix() []byte { return fb.pix }

// FillRect paints the rectangle at (x, y) of size w*h, clipped to the
// surface bounds.
func (fb *Framebuffer) FillRect(c color.Color, x, y, w, h int) {
	r := image.Rect(x, y, x+w, y+h).Intersect(image.Rect(0, 0, fb.w, fb.h))
	if r.Empty() {
		return
	}
	cr, cg, cb, ca := c.RGBA()
	px := [4]byte{uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8), uint8(ca >> 8)}
	for py := r.Min.Y; py < r.Max.Y; py++ {
		row := fb.pix[4*(py*fb.w+r.Min.X) : 4*(py*fb.w+r.Max.X)]
		for i := 0; i < len(row); i += 4 {
			copy(row[i:i+4], px[:])
		}
	}
}

// At returns the colour of the pixel at (x, y).
func (fb *Framebuffer) At(x, y int) color.RGBA {
	base := 4 * (y*fb.w + x)
	return color.RGBA{R: fb.pix[base], G: fb.pix[base+1], B: fb.pix[base+2], A: fb.pix[base+3]}
}
