package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout-wallpaper/internal/config"
	"github.com/vovakirdan/breakout-wallpaper/internal/wallpaper"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List launcher presets",
	Long:  `Shows the launcher presets accepted by --preset.`,
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

func runPresets(cmd *cobra.Command, args []string) error {
	presets := config.Presets()

	maxIDLen := 2 // "ID" header
	for _, p := range presets {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Println("Launcher presets:")
	fmt.Println()
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Grid", "Description")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "----", "-----------")

	for _, p := range presets {
		cfg := config.DefaultWallpaperConfig()
		config.ApplyPreset(&cfg, p.ID)
		w, h := wallpaper.GridSize(cfg.Display)
		fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, p.ID, fmt.Sprintf("%dx%d", w, h), p.Description)
	}

	fmt.Println()
	fmt.Println("Run 'wallpaper run --preset <id>' to use one.")
	return nil
}
