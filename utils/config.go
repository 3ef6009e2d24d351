package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-raster/framebuffer"
)

// Display backends
const (
	DisplayWindow   = "window"
	DisplayTerminal = "terminal"
	DisplayHeadless = "headless"
)

// Seeding strategies
const (
	SeedTiled  = "tiled"
	SeedPlaced = "placed"
	SeedImage  = "image"
	SeedRandom = "random"
)

// Placement puts a named pattern at a cell offset
type Placement struct {
	Pattern string `json:"pattern"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
}

// Config holds the configuration for the game
type Config struct {
	WindowWidth         int                `json:"window_width"`
	WindowHeight        int                `json:"window_height"`
	PixelSize           int                `json:"pixel_size"`
	FrameDelay          time.Duration      `json:"frame_delay"`
	Title               string             `json:"title"`
	Display             string             `json:"display"`
	Seed                string             `json:"seed"`
	Placements          []Placement        `json:"placements"`
	Patterns            map[string][][]int `json:"patterns"`
	SeedImage           string             `json:"seed_image"`
	OutputPath          string             `json:"output_path"`
	SaveOnExit          bool               `json:"save_on_exit"`
	BackgroundColor     string             `json:"background_color"`
	LiveColor           string             `json:"live_color"`
	OutlineColor        string             `json:"outline_color"`
	CellOutline         bool               `json:"cell_outline"`
	MaxGenerations      int                `json:"max_generations"`
	AutoRestart         bool               `json:"auto_restart"`
	StagnationThreshold int                `json:"stagnation_threshold"`
	InjectionCount      int                `json:"injection_count"`
	RefreshInterval     int                `json:"refresh_interval"`
	RandomDensity       float64            `json:"random_density"`
	RandomSeed          int64              `json:"random_seed"`
	UseMemoryPool       bool               `json:"use_memory_pool"`
	LogColors           bool               `json:"log_colors"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		WindowWidth:         800,
		WindowHeight:        600,
		PixelSize:           10,
		FrameDelay:          100 * time.Millisecond,
		Title:               "Game of Life",
		Display:             DisplayWindow,
		Seed:                SeedTiled,
		Placements:          DefaultPlacements(),
		OutputPath:          "game_of_life.bmp",
		SaveOnExit:          true,
		BackgroundColor:     "#000000",
		LiveColor:           "#ffffff",
		OutlineColor:        "#404040",
		CellOutline:         false,
		MaxGenerations:      0, // run until the display closes
		AutoRestart:         false,
		StagnationThreshold: 5,
		InjectionCount:      3,
		RefreshInterval:     200, // generations between forced reseeds, 0 disables
		RandomDensity:       0.15,
		RandomSeed:          0, // seeded from the clock
		UseMemoryPool:       false,
		LogColors:           true,
	}
}

// DefaultPlacements is the hand-placed starting board
func DefaultPlacements() []Placement {
	return []Placement{
		{Pattern: "glider", X: 2, Y: 2},
		{Pattern: "blinker", X: 20, Y: 10},
		{Pattern: "toad", X: 30, Y: 20},
		{Pattern: "beacon", X: 45, Y: 8},
		{Pattern: "r_pentomino", X: 40, Y: 35},
		{Pattern: "lwss", X: 5, Y: 40},
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// BoardSize returns the life grid dimensions: the window divided into pixel-size cells
func (c Config) BoardSize() (width, height int) {
	size := max(c.PixelSize, 1)
	return c.WindowWidth / size, c.WindowHeight / size
}

// Colors parses the background, live and outline colors
func (c Config) Colors() (background, live, outline framebuffer.Color, err error) {
	if background, err = framebuffer.ParseColor(c.BackgroundColor); err != nil {
		return background, live, outline, errors.Wrap(err, "[Colors] background_color")
	}
	if live, err = framebuffer.ParseColor(c.LiveColor); err != nil {
		return background, live, outline, errors.Wrap(err, "[Colors] live_color")
	}
	if outline, err = framebuffer.ParseColor(c.OutlineColor); err != nil {
		return background, live, outline, errors.Wrap(err, "[Colors] outline_color")
	}
	return background, live, outline, nil
}

// Validate reports the first setting the game cannot run with
func (c Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return errors.Errorf("[Validate] window size %dx%d must be positive", c.WindowWidth, c.WindowHeight)
	}
	if c.PixelSize <= 0 {
		return errors.Errorf("[Validate] pixel_size %d must be positive", c.PixelSize)
	}
	if c.PixelSize > c.WindowWidth || c.PixelSize > c.WindowHeight {
		return errors.Errorf("[Validate] pixel_size %d does not fit a %dx%d window", c.PixelSize, c.WindowWidth, c.WindowHeight)
	}
	if c.FrameDelay < 0 {
		return errors.Errorf("[Validate] frame_delay %v must not be negative", c.FrameDelay)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("[Validate] max_generations %d must not be negative", c.MaxGenerations)
	}
	switch c.Display {
	case DisplayWindow, DisplayTerminal, DisplayHeadless:
	default:
		return errors.Errorf("[Validate] unknown display %q", c.Display)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("[Validate] random_density %v must be within [0, 1]", c.RandomDensity)
	}
	if c.InjectionCount < 0 || c.RefreshInterval < 0 {
		return errors.Errorf("[Validate] injection_count %d and refresh_interval %d must not be negative",
			c.InjectionCount, c.RefreshInterval)
	}
	switch c.Seed {
	case SeedTiled, SeedPlaced, SeedRandom:
	case SeedImage:
		if c.SeedImage == "" {
			return errors.New("[Validate] seed \"image\" needs seed_image")
		}
	default:
		return errors.Errorf("[Validate] unknown seed %q", c.Seed)
	}
	if c.SaveOnExit && c.OutputPath == "" {
		return errors.New("[Validate] save_on_exit needs output_path")
	}
	if _, _, _, err := c.Colors(); err != nil {
		return errors.Wrap(err, "[Validate]")
	}
	return nil
}
