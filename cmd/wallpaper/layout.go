package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout-wallpaper/internal/wallpaper"
)

var (
	flagWidth  int
	flagHeight int
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the block layout for a screen size",
	Long: `Build the board for the current configuration and print its geometry
and an ASCII map ('#' block, '.' empty, ' ' icon or widget).

Examples:
  wallpaper layout
  wallpaper layout --width 1080 --height 1920
  wallpaper layout --preset tablet --width 2560 --height 1600`,
	Args: cobra.NoArgs,
	RunE: runLayout,
}

func init() {
	layoutCmd.Flags().IntVar(&flagWidth, "width", 1080, "Screen width in pixels")
	layoutCmd.Flags().IntVar(&flagHeight, "height", 1920, "Screen height in pixels")
}

func runLayout(cmd *cobra.Command, args []string) error {
	logger, cleanup, err := newLogger("")
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

	board, geom, err := wallpaper.BuildBoard(cfg, flagWidth, flagHeight)
	if err != nil {
		return err
	}

	orientation := "portrait"
	if geom.Landscape {
		orientation = "landscape"
	}

	fmt.Printf("Screen:  %dx%d (%s)\n", geom.ScreenW, geom.ScreenH, orientation)
	fmt.Printf("Arena:   %dx%d at (%d,%d)\n", geom.GameW, geom.GameH, geom.OffsetX, geom.OffsetY)
	fmt.Printf("Grid:    %dx%d cells for %dx%d icons\n", board.Width(), board.Height(), cfg.Display.IconCols, cfg.Display.IconRows)
	fmt.Printf("Cell:    %.2fx%.2f px, ball radius %.2f px\n", geom.CellW, geom.CellH, geom.Radius)
	fmt.Printf("Blocks:  %d (%d cells under icons or widgets)\n", board.Total(), board.Count(wallpaper.CellInvalid))
	fmt.Println()
	fmt.Print(board.String())
	return nil
}
