// Package canvas provides the Sink hook front-end shells use to
// receive completed frames, plus an integer-scaling helper for
// presenting the native 160x144 framebuffer at a larger window size.
package canvas

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"gbcore/internal/ppu"
)

// Sink is the external collaborator spec.md §1 lists as the console's
// video output: anything that can accept a completed frame.
type Sink interface {
	Present(frame ppu.Frame)
}

// ToImage converts a PPU frame into a standard image.RGBA, the form
// every Go windowing toolkit in SPEC_FULL.md's domain stack expects.
func ToImage(frame ppu.Frame) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight))
	for y := 0; y < ppu.ScreenHeight; y++ {
		for x := 0; x < ppu.ScreenWidth; x++ {
			px := frame[y][x]
			off := img.PixOffset(x, y)
			copy(img.Pix[off:off+4], px[:])
		}
	}
	return img
}

// Scale resizes src to exactly the given width and height using
// nearest-neighbour interpolation, which keeps the Game Boy's blocky
// pixel grid intact at integer scale factors.
func Scale(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
