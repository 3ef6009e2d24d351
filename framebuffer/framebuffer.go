// Package framebuffer is a fixed-size RGB canvas kept as packed 0x00RRGGBB words.
//
// Pixels are stored row-major with the origin at the top-left corner:
// the pixel (x, y) lives at index y*width + x. The BMP encoder relies on this
// order when it flips rows.
package framebuffer

// Point is an integer pixel coordinate
type Point struct {
	X, Y int
}

// Framebuffer is an off-screen pixel canvas
type Framebuffer struct {
	width      int
	height     int
	buffer     []uint32
	background Color
	current    Color
}

// New allocates a width x height canvas cleared to black, drawing in white
func New(width, height int) *Framebuffer {
	fb := &Framebuffer{
		width:      width,
		height:     height,
		buffer:     make([]uint32, width*height),
		background: Black,
		current:    White,
	}
	fb.Clear()
	return fb
}

// Width returns the canvas width in pixels
func (fb *Framebuffer) Width() int {
	return fb.width
}

// Height returns the canvas height in pixels
func (fb *Framebuffer) Height() int {
	return fb.height
}

// SetBackgroundColor sets the color used by Clear
func (fb *Framebuffer) SetBackgroundColor(c Color) {
	fb.background = c
}

// SetCurrentColor sets the color used by the draw operations
func (fb *Framebuffer) SetCurrentColor(c Color) {
	fb.current = c
}

// BackgroundColor returns the color used by Clear
func (fb *Framebuffer) BackgroundColor() Color {
	return fb.background
}

// CurrentColor returns the color used by the draw operations
func (fb *Framebuffer) CurrentColor() Color {
	return fb.current
}

// Clear resets every pixel to the background color
func (fb *Framebuffer) Clear() {
	bg := fb.background.ToHex()
	for i := range fb.buffer {
		fb.buffer[i] = bg
	}
}

// Point sets the pixel at (x, y) to the current color.
// Coordinates outside the canvas are ignored.
func (fb *Framebuffer) Point(x, y int) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	fb.buffer[y*fb.width+x] = fb.current.ToHex()
}

// At returns the color of the pixel at (x, y), or the background outside the canvas
func (fb *Framebuffer) At(x, y int) Color {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return fb.background
	}
	return FromHex(fb.buffer[y*fb.width+x])
}

// FillRect paints a w x h block whose top-left corner is (x, y)
func (fb *Framebuffer) FillRect(x, y, w, h int) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			fb.Point(x+dx, y+dy)
		}
	}
}

// Buffer returns the pixel words. The slice is the canvas itself: callers must not modify it.
func (fb *Framebuffer) Buffer() []uint32 {
	return fb.buffer
}

// UpdateBuffer paints the canvas from a boolean grid laid out like the buffer,
// live cells in the current color and dead ones in the background color.
// Extra cells on either side are ignored.
func (fb *Framebuffer) UpdateBuffer(cells []bool) {
	var (
		fg = fb.current.ToHex()
		bg = fb.background.ToHex()
		n  = min(len(cells), len(fb.buffer))
	)
	for i := 0; i < n; i++ {
		if cells[i] {
			fb.buffer[i] = fg
		} else {
			fb.buffer[i] = bg
		}
	}
}
