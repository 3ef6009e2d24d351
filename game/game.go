// Package game runs the frame loop: step the board, paint the framebuffer, show it, sleep.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-raster/bmp"
	"github.com/sheikhrachel/go-gol-raster/display"
	"github.com/sheikhrachel/go-gol-raster/framebuffer"
	"github.com/sheikhrachel/go-gol-raster/model"
	"github.com/sheikhrachel/go-gol-raster/utils"
)

// cancelKeys end the loop when held
var cancelKeys = []display.Key{display.KeyEscape, display.KeyQ}

// Game owns the life grid and the framebuffer for the whole run
type Game struct {
	config   utils.Config
	display  display.Display
	logger   *utils.Logger
	grid     *model.Grid
	seed     []bool
	pool     *model.GridPool
	fb       *framebuffer.Framebuffer
	renderer *model.FramebufferRenderer
	stats    *utils.Stats
	rng      *rand.Rand

	generation     int
	stagnantCount  int
	lastRestartGen int
}

// New seeds the board described by config and prepares a framebuffer the size of the window
func New(config utils.Config, disp display.Display, logger *utils.Logger) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "[New] invalid configuration")
	}
	background, live, outline, err := config.Colors()
	if err != nil {
		return nil, errors.Wrap(err, "[New]")
	}

	randomSeed := config.RandomSeed
	if randomSeed == 0 {
		randomSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(randomSeed))

	patterns, err := patternSet(config)
	if err != nil {
		return nil, errors.Wrap(err, "[New]")
	}
	grid, err := seedGrid(config, patterns, background, rng)
	if err != nil {
		return nil, errors.Wrap(err, "[New]")
	}

	fb := framebuffer.New(config.WindowWidth, config.WindowHeight)
	fb.SetBackgroundColor(background)
	fb.SetCurrentColor(live)
	fb.Clear()

	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	return &Game{
		config:  config,
		display: disp,
		logger:  logger,
		grid:    grid,
		seed:    slices.Clone(grid.Cells()),
		pool:    pool,
		fb:      fb,
		renderer: &model.FramebufferRenderer{
			PixelSize:   config.PixelSize,
			Live:        live,
			Outline:     outline,
			DrawOutline: config.CellOutline,
		},
		stats: utils.NewStats(),
		rng:   rng,
	}, nil
}

// Grid returns the current generation
func (g *Game) Grid() *model.Grid {
	return g.grid
}

// Framebuffer returns the canvas the last frame was painted on
func (g *Game) Framebuffer() *framebuffer.Framebuffer {
	return g.fb
}

// Generation returns how many generations have been computed
func (g *Game) Generation() int {
	return g.generation
}

// Stats returns the running statistics
func (g *Game) Stats() *utils.Stats {
	return g.stats
}

// Run loops until the display closes, a cancel key is held, ctx is done or the
// generation limit is reached. Only a failed blit is returned as an error.
func (g *Game) Run(ctx context.Context) error {
	for g.display.IsOpen() {
		if key, ok := g.cancelKeyDown(); ok {
			g.logger.Infof("Cancel key %d pressed", key)
			break
		}
		if ctx.Err() != nil {
			g.logger.Infof("Shutting down gracefully...")
			break
		}

		if err := g.Frame(); err != nil {
			return err
		}

		if g.config.MaxGenerations > 0 && g.generation >= g.config.MaxGenerations {
			g.logger.Infof("Reached maximum generations limit (%d)", g.config.MaxGenerations)
			break
		}
		if !sleep(ctx, g.config.FrameDelay) {
			g.logger.Infof("Shutting down gracefully...")
			break
		}
	}
	return nil
}

// Frame advances one generation, repaints the framebuffer and hands it to the display
func (g *Game) Frame() error {
	frameStart := time.Now()

	g.advance()
	g.renderer.Display(g.fb, g.grid)
	if err := g.display.UpdateWithBuffer(g.fb.Buffer()); err != nil {
		return errors.Wrapf(err, "[Frame] failed to show generation %d", g.generation)
	}

	livingCells := g.grid.CountLivingCells()
	g.stats.Update(g.generation, livingCells, time.Since(frameStart))
	if c, ok := g.display.(display.Captioner); ok {
		c.SetCaption(fmt.Sprintf("Gen: %d | Living: %d", g.generation, livingCells))
	}
	return nil
}

// SaveSnapshot writes the current framebuffer to path as a bitmap
func (g *Game) SaveSnapshot(path string) error {
	if err := bmp.Save(g.fb, path); err != nil {
		return errors.Wrap(err, "[SaveSnapshot]")
	}
	return nil
}

// advance replaces the grid with its next generation
func (g *Game) advance() {
	next := g.grid.NextGeneration(g.pool)
	model.GridToPool(g.grid, g.pool)
	g.grid = next
	g.generation++

	if g.config.AutoRestart {
		g.updateGameState()
	}
}

// updateGameState tracks stagnation and reseeds the board when the run has died out
func (g *Game) updateGameState() {
	livingCells := g.grid.CountLivingCells()
	if g.grid.IsStagnant() {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}
	g.grid.UpdateHistory()

	if restart, reason := checkRestartConditions(livingCells, g.stagnantCount, g.generation, g.config); restart {
		g.logger.Infof("Restarting due to %s at generation %d (%d since last restart)",
			reason, g.generation, g.generation-g.lastRestartGen)
		g.restartGame()
	} else if g.stagnantCount >= 2 && g.stagnantCount < g.config.StagnationThreshold {
		// try to break the stagnation before giving up on the board
		g.grid.InjectRandomLife(g.config.InjectionCount, g.rng)
	}
}

// restartGame reseeds the board: a fresh random board for the random seed,
// the initial board otherwise
func (g *Game) restartGame() {
	width, height := g.grid.GetWidth(), g.grid.GetHeight()
	model.GridToPool(g.grid, g.pool)
	g.grid = model.NewGrid(width, height)
	if g.config.Seed == utils.SeedRandom {
		g.grid.Randomize(g.config.RandomDensity, g.rng)
	} else {
		copy(g.grid.Cells(), g.seed)
	}
	g.lastRestartGen = g.generation
	g.stagnantCount = 0
	g.stats.RecordRestart()
}

func (g *Game) cancelKeyDown() (display.Key, bool) {
	for _, k := range cancelKeys {
		if g.display.IsKeyDown(k) {
			return k, true
		}
	}
	return 0, false
}

// sleep waits d and reports false when ctx ended first
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
