// Package config provides YAML-based configuration loading, validation,
// launcher presets and key-value overrides for the breakout wallpaper.
package config

import "github.com/vovakirdan/breakout-wallpaper/internal/core"

// Game mode names accepted in configuration.
const (
	ModeEndless = "endless"
	ModeLevels  = "levels"
)

// Render style names for blocks and balls.
const (
	StyleFill    = "fill"
	StyleOutline = "outline"
)

// Wallpaper contains all configuration for the simulation.
type Wallpaper struct {
	Game    Game    `yaml:"game"`
	Colors  Colors  `yaml:"colors"`
	Display Display `yaml:"display"`
	Physics Physics `yaml:"physics"`
}

// Game defines gameplay parameters.
type Game struct {
	BallCount    int    `yaml:"ball_count"`
	Mode         string `yaml:"mode"`          // "endless" or "levels"
	EndlessRegen int    `yaml:"endless_regen"` // Percent of the generated block total (0-100)
}

// Colors defines palette, background and render styles.
type Colors struct {
	Background        core.Color   `yaml:"background"`
	BackgroundImage   string       `yaml:"background_image"`
	BackgroundOpacity int          `yaml:"background_opacity"` // 0-255
	Ball              core.Color   `yaml:"ball"`
	Blocks            []core.Color `yaml:"blocks"`
	BlockStyle        string       `yaml:"block_style"`
	BallStyle         string       `yaml:"ball_style"`
}

// Display defines the launcher icon grid the board is laid out around.
type Display struct {
	Padding    Padding  `yaml:"padding"`
	IconRows   int      `yaml:"icon_rows"`
	IconCols   int      `yaml:"icon_cols"`
	RowSpacing int      `yaml:"row_spacing"` // Cells between block rows, per icon
	ColSpacing int      `yaml:"col_spacing"` // Cells between block columns, per icon
	Widgets    []Widget `yaml:"widgets"`
}

// Padding is the arena inset from the screen edges, in pixels.
type Padding struct {
	Top    int `yaml:"top"`
	Left   int `yaml:"left"`
	Bottom int `yaml:"bottom"`
	Right  int `yaml:"right"`
}

// Widget is a launcher widget footprint in icon-grid units.
// All four bounds are inclusive.
type Widget struct {
	Left   int `yaml:"left"`
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
}

// Physics defines motion tunables.
type Physics struct {
	BallSpeed float64 `yaml:"ball_speed"` // Pixels per tick
	BallSize  float64 `yaml:"ball_size"`  // Ball diameter as a fraction of the smaller cell side
}

// Clone returns a deep copy so callers can diff old against new safely.
func (w Wallpaper) Clone() Wallpaper {
	out := w
	out.Colors.Blocks = append([]core.Color(nil), w.Colors.Blocks...)
	out.Display.Widgets = append([]Widget(nil), w.Display.Widgets...)
	return out
}
