package display

import (
	"slices"
	"sync"
)

// Headless keeps frames in memory. It closes itself after MaxFrames frames when MaxFrames > 0.
type Headless struct {
	mu        sync.Mutex
	width     int
	height    int
	maxFrames int
	frames    int
	last      []uint32
	keys      map[Key]bool
	open      bool
}

func NewHeadless(width, height, maxFrames int) *Headless {
	return &Headless{
		width:     width,
		height:    height,
		maxFrames: maxFrames,
		keys:      map[Key]bool{},
		open:      true,
	}
}

func (h *Headless) IsOpen() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.open
}

func (h *Headless) IsKeyDown(k Key) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.keys[k]
}

func (h *Headless) UpdateWithBuffer(buf []uint32) error {
	if err := CheckBuffer(buf, h.width, h.height); err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = append(h.last[:0], buf...)
	h.frames++
	if h.maxFrames > 0 && h.frames >= h.maxFrames {
		h.open = false
	}
	return nil
}

func (h *Headless) Close() {
	h.mu.Lock()
	h.open = false
	h.mu.Unlock()
}

// Press holds k down until Release
func (h *Headless) Press(k Key) {
	h.mu.Lock()
	h.keys[k] = true
	h.mu.Unlock()
}

func (h *Headless) Release(k Key) {
	h.mu.Lock()
	delete(h.keys, k)
	h.mu.Unlock()
}

// Frames returns how many frames were shown
func (h *Headless) Frames() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.frames
}

// LastFrame returns a copy of the most recent frame
func (h *Headless) LastFrame() []uint32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.last)
}
