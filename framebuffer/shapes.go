package framebuffer

// Line draws a straight line from p0 to p1 inclusive using Bresenham's algorithm.
// The path is 8-connected for every slope.
func (fb *Framebuffer) Line(p0, p1 Point) {
	var (
		x0, y0 = p0.X, p0.Y
		dx     = abs(p1.X - x0)
		dy     = -abs(p1.Y - y0)
		sx     = 1
		sy     = 1
	)
	if x0 > p1.X {
		sx = -1
	}
	if y0 > p1.Y {
		sy = -1
	}
	err := dx + dy

	for {
		fb.Point(x0, y0)
		if x0 == p1.X && y0 == p1.Y {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Polygon draws the closed outline through vertices, last vertex joined back to the first.
// Fewer than two vertices draw nothing.
func (fb *Framebuffer) Polygon(vertices []Point) {
	if len(vertices) < 2 {
		return
	}
	for i := 0; i < len(vertices)-1; i++ {
		fb.Line(vertices[i], vertices[i+1])
	}
	fb.Line(vertices[len(vertices)-1], vertices[0])
}

// Rect outlines the w x h square whose top-left corner is (x, y)
func (fb *Framebuffer) Rect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	fb.Polygon([]Point{
		{x, y},
		{x + w - 1, y},
		{x + w - 1, y + h - 1},
		{x, y + h - 1},
	})
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
