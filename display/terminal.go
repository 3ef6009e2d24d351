package display

import (
	"bufio"
	"io"
	"sync"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearScreen = "\x1b[H\x1b[2J"
)

// Terminal prints frames as text, one glyph pair per cell of scale x scale pixels.
// It has no keyboard input; IsKeyDown is always false.
type Terminal struct {
	mu         sync.Mutex
	out        io.Writer
	width      int
	height     int
	scale      int
	background uint32
	au         aurora.Aurora
	open       bool
}

// NewTerminal samples a width x height buffer every scale pixels; pixels equal to
// background print blank
func NewTerminal(out io.Writer, width, height, scale int, background uint32, colors bool) (*Terminal, error) {
	if width <= 0 || height <= 0 || scale <= 0 {
		return nil, errors.Errorf("[NewTerminal] invalid size %dx%d scale %d", width, height, scale)
	}
	return &Terminal{
		out:        out,
		width:      width,
		height:     height,
		scale:      scale,
		background: background,
		au:         aurora.NewAurora(colors),
		open:       true,
	}, nil
}

func (t *Terminal) IsOpen() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.open
}

func (t *Terminal) IsKeyDown(Key) bool {
	return false
}

// UpdateWithBuffer clears the screen and prints the sampled frame
func (t *Terminal) UpdateWithBuffer(buf []uint32) error {
	if err := CheckBuffer(buf, t.width, t.height); err != nil {
		return err
	}
	w := bufio.NewWriter(t.out)
	w.WriteString(clearScreen)
	for y := t.scale / 2; y < t.height; y += t.scale {
		for x := t.scale / 2; x < t.width; x += t.scale {
			px := buf[y*t.width+x]
			if px == t.background {
				w.WriteString(gridPosEmpty)
				continue
			}
			w.WriteString(t.au.Index(ansi256(px), gridPosBlock).String())
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "[UpdateWithBuffer] failed to write frame")
	}
	return nil
}

func (t *Terminal) Close() {
	t.mu.Lock()
	t.open = false
	t.mu.Unlock()
}

// ansi256 maps a packed RGB pixel to the nearest entry of the 6x6x6 xterm color cube
func ansi256(px uint32) uint8 {
	level := func(v uint32) uint32 { return (v & 0xff) * 5 / 255 }
	return uint8(16 + 36*level(px>>16) + 6*level(px>>8) + level(px))
}
