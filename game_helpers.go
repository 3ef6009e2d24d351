package main

import (
	"os"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-raster/display"
	"github.com/sheikhrachel/go-gol-raster/display/window"
	"github.com/sheikhrachel/go-gol-raster/utils"
)

const defaultConfigPath = "config.json"

// cliOptions are command-line overrides; zero values leave the config untouched
type cliOptions struct {
	configPath string
	width      int
	height     int
	pixelSize  int
	interval   time.Duration
	maxSteps   int
	display    string
	seed       string
	output     string
	noSave     bool
}

// parseFlags reads the command line
func parseFlags() *cliOptions {
	o := &cliOptions{configPath: defaultConfigPath}

	flaggy.SetName("go-gol-raster")
	flaggy.SetDescription("Conway's Game of Life on a torus, rendered into a framebuffer")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&o.configPath, "c", "config", "Path to the JSON configuration file")
	flaggy.Int(&o.width, "x", "width", "Window width in pixels")
	flaggy.Int(&o.height, "y", "height", "Window height in pixels")
	flaggy.Int(&o.pixelSize, "p", "pixelSize", "Size of one cell in pixels")
	flaggy.Duration(&o.interval, "i", "interval", "Delay between frames, for example 100ms")
	flaggy.Int(&o.maxSteps, "s", "maxSteps", "Stop after this many generations")
	flaggy.String(&o.display, "d", "display", "Display to use [window|terminal|headless]")
	flaggy.String(&o.seed, "e", "seed", "Starting board [tiled|placed|image]")
	flaggy.String(&o.output, "o", "output", "Bitmap written on exit")
	flaggy.Bool(&o.noSave, "n", "noSave", "Do not write the bitmap on exit")

	flaggy.Parse()
	return o
}

// apply copies the options that were set onto config
func (o *cliOptions) apply(config *utils.Config) {
	if o.width > 0 {
		config.WindowWidth = o.width
	}
	if o.height > 0 {
		config.WindowHeight = o.height
	}
	if o.pixelSize > 0 {
		config.PixelSize = o.pixelSize
	}
	if o.interval > 0 {
		config.FrameDelay = o.interval
	}
	if o.maxSteps > 0 {
		config.MaxGenerations = o.maxSteps
	}
	if o.display != "" {
		config.Display = o.display
	}
	if o.seed != "" {
		config.Seed = o.seed
	}
	if o.output != "" {
		config.OutputPath = o.output
	}
	if o.noSave {
		config.SaveOnExit = false
	}
}

// loadConfig reads the config file, falling back to defaults when the default file is absent
func loadConfig(o *cliOptions, logger *utils.Logger) (utils.Config, error) {
	config, err := utils.LoadConfig(o.configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) || o.configPath != defaultConfigPath {
			return config, err
		}
		logger.Infof("Using default configuration (%s not found)", defaultConfigPath)
		config = utils.DefaultConfig()
	}
	o.apply(&config)
	return config, config.Validate()
}

// newDisplay creates the configured display. win is non-nil when its event
// pump has to be run on the main goroutine.
func newDisplay(config utils.Config) (disp display.Display, win *window.Window, err error) {
	switch config.Display {
	case utils.DisplayWindow:
		win, err = window.New(config.Title, config.WindowWidth, config.WindowHeight)
		if err != nil {
			return nil, nil, errors.Wrap(err, "[newDisplay]")
		}
		return win, win, nil
	case utils.DisplayTerminal:
		background, _, _, err := config.Colors()
		if err != nil {
			return nil, nil, errors.Wrap(err, "[newDisplay]")
		}
		term, err := display.NewTerminal(os.Stdout, config.WindowWidth, config.WindowHeight,
			config.PixelSize, background.ToHex(), config.LogColors)
		if err != nil {
			return nil, nil, errors.Wrap(err, "[newDisplay]")
		}
		return term, nil, nil
	case utils.DisplayHeadless:
		return display.NewHeadless(config.WindowWidth, config.WindowHeight, 0), nil, nil
	}
	return nil, nil, errors.Errorf("[newDisplay] unknown display %q", config.Display)
}
