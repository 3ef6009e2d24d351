package framebuffer

import (
	"slices"
	"testing"
)

var red = Color{255, 0, 0}

func countColor(fb *Framebuffer, c Color) int {
	n := 0
	for _, px := range fb.Buffer() {
		if px == c.ToHex() {
			n++
		}
	}
	return n
}

func TestNewIsBackground(t *testing.T) {
	fb := New(4, 3)
	if got := len(fb.Buffer()); got != 12 {
		t.Fatalf("len(Buffer()) = %d, want 12", got)
	}
	if got := countColor(fb, Black); got != 12 {
		t.Errorf("%d black pixels after New, want 12", got)
	}
}

func TestClear(t *testing.T) {
	fb := New(5, 5)
	fb.SetCurrentColor(red)
	fb.FillRect(0, 0, 5, 5)
	fb.SetBackgroundColor(Color{1, 2, 3})
	fb.Clear()
	for i, px := range fb.Buffer() {
		if px != 0x010203 {
			t.Fatalf("pixel %d = %#x after Clear, want 0x010203", i, px)
		}
	}
}

func TestPointInRange(t *testing.T) {
	fb := New(4, 4)
	fb.SetCurrentColor(red)
	fb.Point(2, 1)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := Black
			if x == 2 && y == 1 {
				want = red
			}
			if got := fb.At(x, y); got != want {
				t.Errorf("At(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if fb.Buffer()[1*4+2] != red.ToHex() {
		t.Error("pixel (2, 1) is not stored at index y*width+x")
	}
}

func TestPointOutOfRange(t *testing.T) {
	fb := New(3, 3)
	fb.SetCurrentColor(red)
	before := slices.Clone(fb.Buffer())
	for _, p := range []Point{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {-100, 200}, {3, 3}} {
		fb.Point(p.X, p.Y)
	}
	if !slices.Equal(before, fb.Buffer()) {
		t.Error("out-of-range Point changed the buffer")
	}
}

func TestUpdateBuffer(t *testing.T) {
	fb := New(2, 2)
	fb.SetBackgroundColor(Color{0, 0, 9})
	fb.SetCurrentColor(red)
	fb.UpdateBuffer([]bool{true, false, false, true})
	want := []uint32{red.ToHex(), 0x000009, 0x000009, red.ToHex()}
	if !slices.Equal(fb.Buffer(), want) {
		t.Errorf("Buffer() = %x, want %x", fb.Buffer(), want)
	}

	// shorter grid leaves the tail untouched
	fb.UpdateBuffer([]bool{false})
	if fb.Buffer()[0] != 0x000009 || fb.Buffer()[3] != red.ToHex() {
		t.Errorf("Buffer() = %x after short update", fb.Buffer())
	}
}
