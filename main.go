package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-raster/game"
	"github.com/sheikhrachel/go-gol-raster/utils"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()
	logger := utils.NewLogger(os.Stderr, true)

	config, err := loadConfig(opts, logger)
	if err != nil {
		logger.Errorf("%v", err)
		return 1
	}
	logger = utils.NewLogger(os.Stderr, config.LogColors)

	disp, win, err := newDisplay(config)
	if err != nil {
		logger.Errorf("Failed to create display: %v", err)
		return 1
	}
	g, err := game.New(config, disp, logger)
	if err != nil {
		logger.Errorf("Failed to initialize game: %v", err)
		return 1
	}
	g.DisplayGameInfo()

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer disp.Close()
		if win != nil {
			// no frames until the window is actually up
			select {
			case <-win.Ready():
			case <-ctx.Done():
				return nil
			}
		}
		return g.Run(ctx)
	})

	// the window's event pump has to own the main goroutine
	if win != nil {
		err := win.Run()
		stop()
		if err != nil {
			logger.Errorf("Failed to open window: %v", err)
			_ = eg.Wait()
			return 1
		}
	}

	loopErr := eg.Wait()
	g.DisplayFinalStats()

	if config.SaveOnExit {
		if err := g.SaveSnapshot(config.OutputPath); err != nil {
			logger.Warnf("Failed to write BMP file: %v", err)
		} else {
			logger.Infof("Saved final frame to %s", config.OutputPath)
		}
	}

	if loopErr != nil {
		logger.Errorf("Frame loop failed: %v", loopErr)
		return 1
	}
	return 0
}
