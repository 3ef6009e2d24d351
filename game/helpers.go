package game

import (
	"image"
	"math/rand"
	"sort"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-raster/bmp"
	"github.com/sheikhrachel/go-gol-raster/framebuffer"
	"github.com/sheikhrachel/go-gol-raster/model"
	"github.com/sheikhrachel/go-gol-raster/utils"
)

// patternSet is the built-in library plus the patterns defined in the config
func patternSet(config utils.Config) (*model.PatternSet, error) {
	set := model.NewPatternSet()

	names := make([]string, 0, len(config.Patterns))
	for name := range config.Patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		p, err := model.PatternFromCoordinates(name, config.Patterns[name])
		if err != nil {
			return nil, errors.Wrap(err, "[patternSet]")
		}
		set.Add(p)
	}
	return set, nil
}

// seedGrid builds the starting board for the configured seeding strategy
func seedGrid(config utils.Config, patterns *model.PatternSet, background framebuffer.Color, rng *rand.Rand) (*model.Grid, error) {
	width, height := config.BoardSize()
	grid := model.NewGrid(width, height)

	switch config.Seed {
	case utils.SeedTiled:
		grid.TilePatterns(patterns.All())
	case utils.SeedPlaced:
		for _, pl := range config.Placements {
			p, ok := patterns.Lookup(pl.Pattern)
			if !ok {
				return nil, errors.Errorf("[seedGrid] unknown pattern %q, have %v", pl.Pattern, patterns.Names())
			}
			grid.PlacePattern(p, pl.X, pl.Y)
		}
	case utils.SeedImage:
		img, err := bmp.Load(config.SeedImage)
		if err != nil {
			return nil, errors.Wrap(err, "[seedGrid]")
		}
		seedFromImage(grid, img, config.PixelSize, background)
	case utils.SeedRandom:
		grid.Randomize(config.RandomDensity, rng)
	default:
		return nil, errors.Errorf("[seedGrid] unknown seed %q", config.Seed)
	}
	return grid, nil
}

// seedFromImage marks a cell alive when the pixel at the center of its square
// differs from the background. Cells outside the image stay dead.
func seedFromImage(grid *model.Grid, img image.Image, pixelSize int, background framebuffer.Color) {
	var (
		bounds = img.Bounds()
		size   = max(pixelSize, 1)
	)
	for y := 0; y < grid.GetHeight(); y++ {
		for x := 0; x < grid.GetWidth(); x++ {
			p := image.Pt(bounds.Min.X+x*size+size/2, bounds.Min.Y+y*size+size/2)
			if !p.In(bounds) {
				continue
			}
			r, g, b, _ := img.At(p.X, p.Y).RGBA()
			c := framebuffer.NewColor(uint8(r>>8), uint8(g>>8), uint8(b>>8))
			grid.Set(x, y, c != background)
		}
	}
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if config.RefreshInterval > 0 && generation > 0 && generation%config.RefreshInterval == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// DisplayGameInfo logs the starting configuration
func (g *Game) DisplayGameInfo() {
	g.logger.Infof("Window: %dx%d | Pixel size: %d | Frame delay: %v | Display: %s",
		g.config.WindowWidth, g.config.WindowHeight, g.config.PixelSize, g.config.FrameDelay, g.config.Display)
	g.logger.Infof("Grid: %dx%d | Seed: %s | Initial living cells: %d",
		g.grid.GetWidth(), g.grid.GetHeight(), g.config.Seed, g.grid.CountLivingCells())
	g.logger.Infof("Features: Memory Pool: %v, Auto Restart: %v, Cell Outline: %v",
		g.config.UseMemoryPool, g.config.AutoRestart, g.config.CellOutline)
	if g.config.AutoRestart {
		g.logger.Infof("Restart: stagnation after %d frames, %d cells injected, refresh every %d generations",
			g.config.StagnationThreshold, g.config.InjectionCount, g.config.RefreshInterval)
	}
}

// DisplayFinalStats logs the run summary
func (g *Game) DisplayFinalStats() {
	g.logger.Infof("Final stats: %d generations in %.1f seconds",
		g.generation, g.stats.Runtime().Seconds())
	g.logger.Infof("Average: %.1f gen/sec, %v per frame, %.1f avg population",
		g.stats.GenerationsPerSecond, g.stats.AverageFrameTime(), g.stats.AveragePopulation)
	g.logger.Infof("Living cells: %d (peak %d) | Restarts: %d",
		g.grid.CountLivingCells(), g.stats.PeakPopulation, g.stats.Restarts)
	if minX, minY, maxX, maxY, ok := g.grid.BoundingBox(); ok {
		g.logger.Infof("Bounding box: (%d, %d)-(%d, %d)", minX, minY, maxX, maxY)
	}
}
