package render

import (
	"image/color"
	"testing"

	"lifepaint/internal/core"
)

func TestFramebufferStartsBlack(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	if w, h := fb.Size(); w != 4 || h != 3 {
		t.Fatalf("size %dx%d", w, h)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := fb.At(x, y); got != core.DeadColor {
				t.Fatalf("pixel (%d,%d) = %v, want opaque black", x, y, got)
			}
		}
	}
}

func TestFillRectClipsToBounds(t *testing.T) {
	fb := NewFramebuffer(20, 20)
	fb.FillRect(core.AliveColor, 15, -5, 10, 10)

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			want := core.DeadColor
			if x >= 15 && y < 5 {
				want = core.AliveColor
			}
			if got := fb.At(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}

	fb.FillRect(core.GuideColor, 30, 30, 5, 5)
	fb.FillRect(core.GuideColor, 0, 0, 0, 5)
	if got := fb.At(0, 0); got != core.DeadColor {
		t.Fatalf("out-of-bounds or empty fill touched pixel: %v", got)
	}
}

func TestCellRepaintCoversGuide(t *testing.T) {
	fb := NewFramebuffer(30, 30)
	fb.FillRect(core.GuideColor, 0, 10, 30, 1)
	if got := fb.At(12, 10); got != core.GuideColor {
		t.Fatalf("guide pixel = %v", got)
	}
	fb.FillRect(color.White, 10, 10, core.CellSize, core.CellSize)
	if got := fb.At(12, 10); got != core.AliveColor {
		t.Fatalf("repainted cell still shows guide: %v", got)
	}
	if got := fb.At(22, 10); got != core.GuideColor {
		t.Fatalf("neighbouring guide pixel lost: %v", got)
	}
}
