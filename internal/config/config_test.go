package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/vovakirdan/breakout-wallpaper/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	if Diff(cfg, DefaultWallpaperConfig()) != ChangeNone {
		t.Errorf("embedded defaults differ from DefaultWallpaperConfig(): %s", Diff(cfg, DefaultWallpaperConfig()))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	data := []byte(`
game:
  mode: levels
colors:
  blocks: ["#112233", "#AA445566"]
display:
  widgets:
    - {left: 0, top: 0, right: 1, bottom: 1}
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Game.Mode != ModeLevels {
		t.Errorf("Mode = %q, expected %q", cfg.Game.Mode, ModeLevels)
	}
	if cfg.Game.BallCount != 1 {
		t.Errorf("BallCount = %d, expected default 1", cfg.Game.BallCount)
	}
	if len(cfg.Colors.Blocks) != 2 {
		t.Fatalf("len(Blocks) = %d, expected 2", len(cfg.Colors.Blocks))
	}
	if cfg.Colors.Blocks[0] != core.RGB(0x11, 0x22, 0x33) {
		t.Errorf("Blocks[0] = %v, expected #FF112233", cfg.Colors.Blocks[0])
	}
	if cfg.Colors.Blocks[1] != core.Color(0xAA445566) {
		t.Errorf("Blocks[1] = %v, expected #AA445566", cfg.Colors.Blocks[1])
	}
	if len(cfg.Display.Widgets) != 1 || cfg.Display.Widgets[0] != (Widget{0, 0, 1, 1}) {
		t.Errorf("Widgets = %v, expected one 0,0,1,1 widget", cfg.Display.Widgets)
	}
}

func TestLoadWallpaperCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallpaper.yaml")
	if err := os.WriteFile(path, []byte("game:\n  ball_count: 3\n"), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadWallpaper(path)
	if err != nil {
		t.Fatalf("LoadWallpaper() failed: %v", err)
	}
	if cfg.Game.BallCount != 3 {
		t.Errorf("BallCount = %d, expected 3", cfg.Game.BallCount)
	}

	if _, err := LoadWallpaper(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadWallpaper() with missing custom path should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultWallpaperConfig()
	cfg.Display.Widgets = []Widget{{1, 1, 2, 3}}
	cfg.Colors.BackgroundImage = "/tmp/bg.png"

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if d := Diff(cfg, back); d != ChangeNone {
		t.Errorf("round trip changed %s", d)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Wallpaper)
		want   error
	}{
		{"defaults", func(*Wallpaper) {}, nil},
		{"empty palette", func(w *Wallpaper) { w.Colors.Blocks = nil }, ErrEmptyPalette},
		{"zero rows", func(w *Wallpaper) { w.Display.IconRows = 0 }, ErrNoIconGrid},
		{"zero cols", func(w *Wallpaper) { w.Display.IconCols = 0 }, ErrNoIconGrid},
		{"zero balls", func(w *Wallpaper) { w.Game.BallCount = 0 }, ErrInvalidBallCount},
		{"regen over 100", func(w *Wallpaper) { w.Game.EndlessRegen = 101 }, ErrInvalidRegen},
		{"negative spacing", func(w *Wallpaper) { w.Display.RowSpacing = -1 }, ErrInvalidSpacing},
		{"negative padding", func(w *Wallpaper) { w.Display.Padding.Left = -5 }, ErrInvalidPadding},
		{"opacity over 255", func(w *Wallpaper) { w.Colors.BackgroundOpacity = 300 }, ErrInvalidOpacity},
		{"zero speed", func(w *Wallpaper) { w.Physics.BallSpeed = 0 }, ErrInvalidPhysics},
		{"widget past grid", func(w *Wallpaper) { w.Display.Widgets = []Widget{{0, 0, 4, 0}} }, ErrWidgetOutOfGrid},
		{"widget inverted", func(w *Wallpaper) { w.Display.Widgets = []Widget{{2, 0, 1, 0}} }, ErrWidgetOutOfGrid},
		{"unknown mode is not a validation error", func(w *Wallpaper) { w.Game.Mode = "arcade" }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultWallpaperConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, expected %v", err, tt.want)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	for _, p := range Presets() {
		t.Run(string(p.ID), func(t *testing.T) {
			cfg := DefaultWallpaperConfig()
			cfg.Display.Widgets = []Widget{{0, 0, 0, 0}}
			ApplyPreset(&cfg, p.ID)
			if cfg.Display.Widgets != nil {
				t.Errorf("widgets should be cleared, got %v", cfg.Display.Widgets)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}

	if _, ok := ParsePreset("watch"); ok {
		t.Error("ParsePreset(\"watch\") should fail")
	}
	if id, ok := ParsePreset("dense"); !ok || id != PresetDense {
		t.Errorf("ParsePreset(\"dense\") = %q, %v", id, ok)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultWallpaperConfig()
	err := ApplyOverrides(&cfg, map[string]string{
		"game.ballcount":       "4",
		"game.mode":            "Levels",
		"color.block1":         "#010203",
		"color.block4":         "#040506",
		"display.widgets":      "0,0,1,1; 2,2,3,3",
		"display.padding.top":  "24",
		"color.blockstyle":     "OUTLINE",
		"display.iconcols":     "5",
		"color.bgopacity":      "128",
		"color.background":     "4278190335",
		"display.padding.left": "0",
	})
	if err != nil {
		t.Fatalf("ApplyOverrides() failed: %v", err)
	}

	if cfg.Game.BallCount != 4 {
		t.Errorf("BallCount = %d, expected 4", cfg.Game.BallCount)
	}
	if cfg.Game.Mode != ModeLevels {
		t.Errorf("Mode = %q, expected %q", cfg.Game.Mode, ModeLevels)
	}
	if len(cfg.Colors.Blocks) != 4 || cfg.Colors.Blocks[0] != core.RGB(1, 2, 3) || cfg.Colors.Blocks[3] != core.RGB(4, 5, 6) {
		t.Errorf("Blocks = %v", cfg.Colors.Blocks)
	}
	if len(cfg.Display.Widgets) != 2 || cfg.Display.Widgets[1] != (Widget{2, 2, 3, 3}) {
		t.Errorf("Widgets = %v", cfg.Display.Widgets)
	}
	if cfg.Colors.BlockStyle != StyleOutline {
		t.Errorf("BlockStyle = %q, expected %q", cfg.Colors.BlockStyle, StyleOutline)
	}
	if cfg.Colors.Background != core.ColorBlue {
		t.Errorf("Background = %v, expected %v", cfg.Colors.Background, core.ColorBlue)
	}
}

func TestApplyOverridesPaletteOrder(t *testing.T) {
	cfg := DefaultWallpaperConfig()
	settings := map[string]string{}
	for n := 4; n <= 12; n++ {
		settings[fmt.Sprintf("color.block%d", n)] = core.RGB(uint8(n), 0, 0).String()
	}
	settings["color.blockstyle"] = "outline"

	if err := ApplyOverrides(&cfg, settings); err != nil {
		t.Fatalf("ApplyOverrides() failed: %v", err)
	}
	if len(cfg.Colors.Blocks) != 12 {
		t.Fatalf("palette length = %d, expected 12", len(cfg.Colors.Blocks))
	}
	for n := 4; n <= 12; n++ {
		if got, want := cfg.Colors.Blocks[n-1], core.RGB(uint8(n), 0, 0); got != want {
			t.Errorf("Blocks[%d] = %v, expected %v", n-1, got, want)
		}
	}
	if cfg.Colors.BlockStyle != StyleOutline {
		t.Errorf("BlockStyle = %q, expected %q", cfg.Colors.BlockStyle, StyleOutline)
	}
}

func TestApplyOverridesSkipsBadKeys(t *testing.T) {
	cfg := DefaultWallpaperConfig()
	err := ApplyOverrides(&cfg, map[string]string{
		"game.ballcount": "2",
		"game.speed":     "9",
		"color.block9":   "#FFFFFF",
		"color.ball":     "#00FF00",
	})
	if !errors.Is(err, ErrUnknownSetting) {
		t.Fatalf("ApplyOverrides() = %v, expected %v", err, ErrUnknownSetting)
	}
	if cfg.Game.BallCount != 2 {
		t.Errorf("BallCount = %d, expected 2", cfg.Game.BallCount)
	}
	if cfg.Colors.Ball != core.RGB(0, 255, 0) {
		t.Errorf("Ball = %v, expected green", cfg.Colors.Ball)
	}
	if len(cfg.Colors.Blocks) != 3 {
		t.Errorf("palette length = %d, expected 3", len(cfg.Colors.Blocks))
	}
}

func TestSortSettingKeys(t *testing.T) {
	keys := []string{"color.block10", "game.mode", "color.block2", "color.blockstyle", "color.block1", "color.ball"}
	SortSettingKeys(keys)

	expected := []string{"color.ball", "color.blockstyle", "game.mode", "color.block1", "color.block2", "color.block10"}
	if !slices.Equal(keys, expected) {
		t.Errorf("SortSettingKeys() = %v, expected %v", keys, expected)
	}
}

func TestApplyOverrideErrors(t *testing.T) {
	tests := []struct {
		key, value string
		unknown    bool
	}{
		{"game.speed", "1", true},
		{"color.block9", "#FFFFFF", true},
		{"color.block0", "#FFFFFF", true},
		{"game.ballcount", "many", false},
		{"color.ball", "", false},
		{"display.widgets", "1,2,3", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			cfg := DefaultWallpaperConfig()
			err := ApplyOverride(&cfg, tt.key, tt.value)
			if err == nil {
				t.Fatalf("ApplyOverride(%q, %q) should fail", tt.key, tt.value)
			}
			if errors.Is(err, ErrUnknownSetting) != tt.unknown {
				t.Errorf("ApplyOverride(%q) = %v, unknown expected %v", tt.key, err, tt.unknown)
			}
		})
	}
}

func TestLookupMatchesApply(t *testing.T) {
	cfg := DefaultWallpaperConfig()
	cfg.Display.Widgets = []Widget{{0, 1, 2, 3}}

	for _, key := range SettingKeys(cfg) {
		value, err := Lookup(cfg, key)
		if err != nil {
			// The append slot has no current value.
			if errors.Is(err, ErrUnknownSetting) && key == "color.block4" {
				continue
			}
			t.Errorf("Lookup(%q) failed: %v", key, err)
			continue
		}
		next := cfg.Clone()
		if err := ApplyOverride(&next, key, value); err != nil {
			t.Errorf("ApplyOverride(%q, %q) failed: %v", key, value, err)
			continue
		}
		if d := Diff(cfg, next); d != ChangeNone {
			t.Errorf("re-applying %q = %q changed %s", key, value, d)
		}
	}
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Wallpaper)
		want   Change
	}{
		{"nothing", func(*Wallpaper) {}, ChangeNone},
		{"icon rows", func(w *Wallpaper) { w.Display.IconRows = 5 }, ChangeLayout},
		{"widgets", func(w *Wallpaper) { w.Display.Widgets = []Widget{{0, 0, 0, 0}} }, ChangeLayout},
		{"padding", func(w *Wallpaper) { w.Display.Padding.Top = 10 }, ChangeGraphics},
		{"background image", func(w *Wallpaper) { w.Colors.BackgroundImage = "x.png" }, ChangeGraphics},
		{"ball count", func(w *Wallpaper) { w.Game.BallCount = 2 }, ChangeBalls},
		{"mode", func(w *Wallpaper) { w.Game.Mode = ModeLevels }, ChangeMode},
		{"palette", func(w *Wallpaper) { w.Colors.Blocks[0] = core.ColorWhite }, ChangePalette},
		{"style", func(w *Wallpaper) { w.Colors.BallStyle = StyleOutline }, ChangeStyle},
		{"layout and mode", func(w *Wallpaper) {
			w.Display.ColSpacing = 0
			w.Game.EndlessRegen = 50
		}, ChangeLayout | ChangeMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := DefaultWallpaperConfig()
			next := old.Clone()
			tt.mutate(&next)
			if got := Diff(old, next); got != tt.want {
				t.Errorf("Diff() = %s, expected %s", got, tt.want)
			}
		})
	}
}

func TestChangeNeedsRebuild(t *testing.T) {
	if ChangeMode.NeedsRebuild() || ChangePalette.NeedsRebuild() || (ChangeStyle | ChangeMode).NeedsRebuild() {
		t.Error("mode/palette/style changes should not rebuild the board")
	}
	if !(ChangePalette | ChangeBalls).NeedsRebuild() {
		t.Error("ball count change should rebuild the board")
	}
}
