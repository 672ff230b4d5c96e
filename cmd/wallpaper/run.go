package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/breakout-wallpaper/internal/core"
	"github.com/vovakirdan/breakout-wallpaper/internal/platform/tui"
	"github.com/vovakirdan/breakout-wallpaper/internal/wallpaper"
)

var flagScale int

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the wallpaper",
	Long: `Run the wallpaper in the terminal.

Controls:
  Click      - Send the nearest ball toward the pointer
  P/Space    - Pause
  M          - Switch between endless and levels mode
  +/-        - Add or remove a ball
  R          - New board
  ?          - Help
  Q/Ctrl+C   - Quit

Settings changed with keys are saved and used next time.

Examples:
  wallpaper run
  wallpaper run --preset dense
  wallpaper run --seed 42 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runWallpaper,
}

func init() {
	runCmd.Flags().IntVar(&flagScale, "scale", 8, "Simulated pixels per character column")
}

func runWallpaper(cmd *cobra.Command, args []string) error {
	logger, cleanup, err := newLogger(defaultTUILog)
	if err != nil {
		return err
	}
	defer cleanup()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg, err := loadConfig(store, logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
		Scale:    flagScale,
	}

	sim, err := wallpaper.New(cfg, seed, logger)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger.Info("starting", "seed", seed, "fps", flagFPS, "terminal", fmt.Sprintf("%dx%d", width, height))
	if err := tui.Run(sim, store, logger, rc); err != nil {
		return fmt.Errorf("running wallpaper: %w", err)
	}
	return nil
}
