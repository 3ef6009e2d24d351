// Package display hands finished framebuffers to something that shows them.
package display

import "github.com/pkg/errors"

// Key identifies a key the frame loop can poll
type Key int

const (
	KeyEscape Key = iota
	KeyQ
)

// Display is the windowing service the frame loop blits into
type Display interface {
	// IsOpen reports whether the display still accepts frames
	IsOpen() bool
	// IsKeyDown reports whether k is held right now
	IsKeyDown(k Key) bool
	// UpdateWithBuffer shows buf, packed 0x00RRGGBB words in row-major order.
	// It fails when len(buf) is not width*height.
	UpdateWithBuffer(buf []uint32) error
	// Close asks the display to shut down
	Close()
}

// CheckBuffer rejects buffers that do not match the display's dimensions
func CheckBuffer(buf []uint32, width, height int) error {
	if len(buf) != width*height {
		return errors.Errorf("[UpdateWithBuffer] buffer holds %d pixels, display is %dx%d", len(buf), width, height)
	}
	return nil
}

// Captioner is implemented by displays that can overlay a line of status text
type Captioner interface {
	SetCaption(caption string)
}
