package model

import "github.com/sheikhrachel/go-gol-raster/framebuffer"

// FramebufferRenderer paints a grid onto a framebuffer, one PixelSize square per cell
type FramebufferRenderer struct {
	PixelSize   int
	Live        framebuffer.Color
	Outline     framebuffer.Color
	DrawOutline bool
}

// Display repaints fb from scratch with the live cells of g
func (r *FramebufferRenderer) Display(fb *framebuffer.Framebuffer, g *Grid) {
	fb.SetCurrentColor(r.Live)

	// one cell per pixel: the grid already has the buffer's layout
	if r.PixelSize <= 1 && g.width == fb.Width() && g.height == fb.Height() && !r.DrawOutline {
		fb.UpdateBuffer(g.cells)
		return
	}

	size := max(r.PixelSize, 1)
	fb.Clear()
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[g.Index(x, y)] {
				fb.FillRect(x*size, y*size, size, size)
			}
		}
	}

	if !r.DrawOutline || size < 3 {
		return
	}
	fb.SetCurrentColor(r.Outline)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[g.Index(x, y)] {
				fb.Rect(x*size, y*size, size, size)
			}
		}
	}
	fb.SetCurrentColor(r.Live)
}
