package config

import (
	_ "embed"

	"github.com/vovakirdan/breakout-wallpaper/internal/core"
)

//go:embed defaults/wallpaper.yaml
var defaultWallpaperYAML []byte

// DefaultWallpaperConfig returns the default configuration.
// It mirrors defaults/wallpaper.yaml and is used when the embedded file
// cannot be parsed.
func DefaultWallpaperConfig() Wallpaper {
	return Wallpaper{
		Game: Game{
			BallCount:    1,
			Mode:         ModeEndless,
			EndlessRegen: 25,
		},
		Colors: Colors{
			Background:        core.ColorBlack,
			BackgroundOpacity: 255,
			Ball:              core.ColorWhite,
			Blocks:            []core.Color{core.ColorRed, core.ColorGreen, core.ColorBlue},
			BlockStyle:        StyleFill,
			BallStyle:         StyleFill,
		},
		Display: Display{
			IconRows:   4,
			IconCols:   4,
			RowSpacing: 2,
			ColSpacing: 3,
		},
		Physics: Physics{
			BallSpeed: 4.0,
			BallSize:  0.75,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultWallpaperYAML
}
