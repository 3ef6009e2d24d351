// Package window shows frames in a desktop window through ebiten.
// It is kept apart from the display package so headless and terminal runs build without cgo.
package window

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-raster/display"
)

var ebitenKeys = map[display.Key]ebiten.Key{
	display.KeyEscape: ebiten.KeyEscape,
	display.KeyQ:      ebiten.KeyQ,
}

// Window is a display.Display backed by an ebiten window.
//
// ebiten's event pump must own the main goroutine, so Run blocks there while
// the frame loop calls the Display methods from another goroutine. The window
// reports open only once the pump has ticked; wait on Ready before looping.
type Window struct {
	mu        sync.Mutex
	width     int
	height    int
	title     string
	pixels    []byte
	caption   string
	keys      map[display.Key]bool
	ready     chan struct{}
	readyOnce sync.Once
	running   bool
	closing   bool
}

// New prepares a width x height window; nothing is shown until Run
func New(title string, width, height int) (*Window, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("[New] invalid window size %dx%d", width, height)
	}
	return &Window{
		width:  width,
		height: height,
		title:  title,
		keys:   map[display.Key]bool{},
		ready:  make(chan struct{}),
	}, nil
}

// Run opens the window and pumps events until it is closed. It must be called from the main goroutine.
func (w *Window) Run() error {
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(w.title)
	err := ebiten.RunGame(w)

	w.mu.Lock()
	w.running = false
	w.mu.Unlock()
	if err != nil {
		return errors.Wrap(err, "[Run] window failed")
	}
	return nil
}

// Ready is closed once the window is up and its event pump has ticked
func (w *Window) Ready() <-chan struct{} {
	return w.ready
}

// start marks the window as running on the first tick
func (w *Window) start() {
	w.readyOnce.Do(func() {
		w.running = true
		close(w.ready)
	})
}

// Update samples the keyboard once per tick
func (w *Window) Update() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closing {
		return ebiten.Termination
	}
	w.start()
	for k, ek := range ebitenKeys {
		w.keys[k] = ebiten.IsKeyPressed(ek)
	}
	return nil
}

// Draw blits the latest frame
func (w *Window) Draw(screen *ebiten.Image) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pixels == nil {
		return
	}
	screen.WritePixels(w.pixels)
	if w.caption != "" {
		ebitenutil.DebugPrint(screen, w.caption)
	}
}

// Layout keeps the logical screen at the framebuffer's size
func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

func (w *Window) IsOpen() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running && !w.closing
}

func (w *Window) IsKeyDown(k display.Key) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.keys[k]
}

func (w *Window) UpdateWithBuffer(buf []uint32) error {
	if err := display.CheckBuffer(buf, w.width, w.height); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pixels = toRGBA(w.pixels, buf)
	return nil
}

// SetCaption overlays text on the top-left corner of every frame
func (w *Window) SetCaption(caption string) {
	w.mu.Lock()
	w.caption = caption
	w.mu.Unlock()
}

// Close ends Run at the next tick
func (w *Window) Close() {
	w.mu.Lock()
	w.closing = true
	w.mu.Unlock()
}

// toRGBA expands packed pixels into opaque RGBA bytes
func toRGBA(dst []byte, buf []uint32) []byte {
	if cap(dst) < 4*len(buf) {
		dst = make([]byte, 4*len(buf))
	}
	dst = dst[:4*len(buf)]
	for i, px := range buf {
		dst[4*i] = byte(px >> 16)
		dst[4*i+1] = byte(px >> 8)
		dst[4*i+2] = byte(px)
		dst[4*i+3] = 0xff
	}
	return dst
}
