package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sheikhrachel/go-gol-raster/display"
	"github.com/sheikhrachel/go-gol-raster/utils"
)

var quiet = utils.NewLogger(io.Discard, false)

func TestApplyOverrides(t *testing.T) {
	c := utils.DefaultConfig()
	o := &cliOptions{
		width:     320,
		pixelSize: 4,
		interval:  20 * time.Millisecond,
		maxSteps:  50,
		display:   utils.DisplayHeadless,
		output:    "out.bmp",
		noSave:    true,
	}
	o.apply(&c)

	if c.WindowWidth != 320 || c.WindowHeight != 600 || c.PixelSize != 4 {
		t.Errorf("dimensions = %dx%d/%d", c.WindowWidth, c.WindowHeight, c.PixelSize)
	}
	if c.FrameDelay != 20*time.Millisecond || c.MaxGenerations != 50 {
		t.Errorf("delay %v, max %d", c.FrameDelay, c.MaxGenerations)
	}
	if c.Display != utils.DisplayHeadless || c.OutputPath != "out.bmp" || c.SaveOnExit {
		t.Errorf("display %q, output %q, save %v", c.Display, c.OutputPath, c.SaveOnExit)
	}
	if c.Seed != utils.SeedTiled {
		t.Errorf("unset seed override changed seed to %q", c.Seed)
	}
}

func TestLoadConfigFallsBackToDefaults(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	c, err := loadConfig(&cliOptions{configPath: defaultConfigPath, maxSteps: 7}, quiet)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if c.WindowWidth != 800 || c.MaxGenerations != 7 {
		t.Errorf("config = %+v", c)
	}
}

func TestLoadConfigExplicitPathMustExist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.json")
	if _, err := loadConfig(&cliOptions{configPath: path}, quiet); err == nil {
		t.Error("missing explicit config accepted")
	}
}

func TestLoadConfigValidates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"display": "vga"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(&cliOptions{configPath: path}, quiet); err == nil {
		t.Error("invalid display accepted")
	}
}

func TestNewDisplay(t *testing.T) {
	c := utils.DefaultConfig()

	c.Display = utils.DisplayHeadless
	disp, win, err := newDisplay(c)
	if err != nil || win != nil {
		t.Fatalf("headless: %v %v", win, err)
	}
	if _, ok := disp.(*display.Headless); !ok {
		t.Errorf("headless display is %T", disp)
	}

	c.Display = utils.DisplayTerminal
	disp, _, err = newDisplay(c)
	if err != nil {
		t.Fatalf("terminal: %v", err)
	}
	if _, ok := disp.(*display.Terminal); !ok {
		t.Errorf("terminal display is %T", disp)
	}

	c.Display = utils.DisplayWindow
	disp, win, err = newDisplay(c)
	if err != nil || win == nil || disp != win {
		t.Errorf("window: %v %v %v", disp, win, err)
	}
	if win != nil && win.IsOpen() {
		t.Error("window reports open before Run")
	}

	c.Display = "vga"
	if _, _, err := newDisplay(c); err == nil {
		t.Error("unknown display accepted")
	}
}
