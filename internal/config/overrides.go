package config

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/vovakirdan/breakout-wallpaper/internal/core"
)

// ErrUnknownSetting is returned for keys no setter is registered for.
var ErrUnknownSetting = errors.New("config: unknown setting")

// setter applies one key-value setting to a config.
type setter func(cfg *Wallpaper, value string) error

// setters maps setting keys to their appliers. The keys match the
// preference names used by the settings store.
var setters = map[string]setter{
	"game.ballcount":    intSetter(func(c *Wallpaper) *int { return &c.Game.BallCount }),
	"game.endlessregen": intSetter(func(c *Wallpaper) *int { return &c.Game.EndlessRegen }),
	"game.mode": func(c *Wallpaper, v string) error {
		c.Game.Mode = strings.ToLower(strings.TrimSpace(v))
		return nil
	},

	"color.background": colorSetter(func(c *Wallpaper) *core.Color { return &c.Colors.Background }),
	"color.ball":       colorSetter(func(c *Wallpaper) *core.Color { return &c.Colors.Ball }),
	"color.bgimage": func(c *Wallpaper, v string) error {
		c.Colors.BackgroundImage = strings.TrimSpace(v)
		return nil
	},
	"color.bgopacity":  intSetter(func(c *Wallpaper) *int { return &c.Colors.BackgroundOpacity }),
	"color.blockstyle": styleSetter(func(c *Wallpaper) *string { return &c.Colors.BlockStyle }),
	"color.ballstyle":  styleSetter(func(c *Wallpaper) *string { return &c.Colors.BallStyle }),

	"display.padding.top":    intSetter(func(c *Wallpaper) *int { return &c.Display.Padding.Top }),
	"display.padding.left":   intSetter(func(c *Wallpaper) *int { return &c.Display.Padding.Left }),
	"display.padding.bottom": intSetter(func(c *Wallpaper) *int { return &c.Display.Padding.Bottom }),
	"display.padding.right":  intSetter(func(c *Wallpaper) *int { return &c.Display.Padding.Right }),
	"display.iconrows":       intSetter(func(c *Wallpaper) *int { return &c.Display.IconRows }),
	"display.iconcols":       intSetter(func(c *Wallpaper) *int { return &c.Display.IconCols }),
	"display.rowspacing":     intSetter(func(c *Wallpaper) *int { return &c.Display.RowSpacing }),
	"display.colspacing":     intSetter(func(c *Wallpaper) *int { return &c.Display.ColSpacing }),
	"display.widgets": func(c *Wallpaper, v string) error {
		widgets, err := ParseWidgets(v)
		if err != nil {
			return err
		}
		c.Display.Widgets = widgets
		return nil
	},
}

// blockKeyPrefix addresses palette entries: color.block1, color.block2, ...
const blockKeyPrefix = "color.block"

// SettingKeys returns every known key in application order. Palette entries
// are listed for the current palette size plus one slot for appending.
func SettingKeys(cfg Wallpaper) []string {
	keys := make([]string, 0, len(setters)+len(cfg.Colors.Blocks)+1)
	for k := range setters {
		keys = append(keys, k)
	}
	for i := range len(cfg.Colors.Blocks) + 1 {
		keys = append(keys, fmt.Sprintf("%s%d", blockKeyPrefix, i+1))
	}
	SortSettingKeys(keys)
	return keys
}

// blockIndex returns N for a color.blockN key.
func blockIndex(key string) (int, bool) {
	idx, ok := strings.CutPrefix(key, blockKeyPrefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(idx)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// SortSettingKeys orders keys so they can be applied one by one: other
// keys alphabetically, then palette entries by index. A palette entry may
// only append at len+1, so color.block10 must follow color.block9.
func SortSettingKeys(keys []string) {
	slices.SortFunc(keys, func(a, b string) int {
		na, aBlock := blockIndex(strings.ToLower(strings.TrimSpace(a)))
		nb, bBlock := blockIndex(strings.ToLower(strings.TrimSpace(b)))
		switch {
		case aBlock && bBlock:
			return cmp.Or(cmp.Compare(na, nb), strings.Compare(a, b))
		case aBlock:
			return 1
		case bBlock:
			return -1
		}
		return strings.Compare(a, b)
	})
}

// ApplyOverride applies a single key-value setting.
func ApplyOverride(cfg *Wallpaper, key, value string) error {
	key = strings.ToLower(strings.TrimSpace(key))

	if f, ok := setters[key]; ok {
		if err := f(cfg, value); err != nil {
			return fmt.Errorf("config: setting %s: %w", key, err)
		}
		return nil
	}

	if strings.HasPrefix(key, blockKeyPrefix) {
		n, ok := blockIndex(key)
		if !ok || n > len(cfg.Colors.Blocks)+1 {
			return fmt.Errorf("%w: %s", ErrUnknownSetting, key)
		}
		c, err := core.ParseColor(value)
		if err != nil {
			return fmt.Errorf("config: setting %s: %w", key, err)
		}
		if n == len(cfg.Colors.Blocks)+1 {
			cfg.Colors.Blocks = append(cfg.Colors.Blocks, c)
		} else {
			cfg.Colors.Blocks[n-1] = c
		}
		return nil
	}

	return fmt.Errorf("%w: %s", ErrUnknownSetting, key)
}

// ApplyOverrides applies settings in SortSettingKeys order. A failing key
// is skipped and the rest still apply; the failures are joined into the
// returned error.
func ApplyOverrides(cfg *Wallpaper, settings map[string]string) error {
	keys := slices.Collect(maps.Keys(settings))
	SortSettingKeys(keys)

	var errs []error
	for _, k := range keys {
		if err := ApplyOverride(cfg, k, settings[k]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ParseWidgets parses "left,top,right,bottom;left,top,right,bottom".
// An empty string yields no widgets.
func ParseWidgets(s string) ([]Widget, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var widgets []Widget
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Split(part, ",")
		if len(fields) != 4 {
			return nil, fmt.Errorf("widget %q: want left,top,right,bottom", part)
		}
		var v [4]int
		for i, f := range fields {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("widget %q: %w", part, err)
			}
			v[i] = n
		}
		widgets = append(widgets, Widget{Left: v[0], Top: v[1], Right: v[2], Bottom: v[3]})
	}
	return widgets, nil
}

// FormatWidgets is the inverse of ParseWidgets.
func FormatWidgets(widgets []Widget) string {
	parts := make([]string, len(widgets))
	for i, w := range widgets {
		parts[i] = fmt.Sprintf("%d,%d,%d,%d", w.Left, w.Top, w.Right, w.Bottom)
	}
	return strings.Join(parts, ";")
}

func intSetter(field func(*Wallpaper) *int) setter {
	return func(c *Wallpaper, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		*field(c) = n
		return nil
	}
}

func colorSetter(field func(*Wallpaper) *core.Color) setter {
	return func(c *Wallpaper, v string) error {
		col, err := core.ParseColor(v)
		if err != nil {
			return err
		}
		*field(c) = col
		return nil
	}
}

func styleSetter(field func(*Wallpaper) *string) setter {
	return func(c *Wallpaper, v string) error {
		*field(c) = strings.ToLower(strings.TrimSpace(v))
		return nil
	}
}

// Lookup returns the current value of a setting in the form ApplyOverride
// accepts.
func Lookup(cfg Wallpaper, key string) (string, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	itoa := strconv.Itoa

	switch key {
	case "game.ballcount":
		return itoa(cfg.Game.BallCount), nil
	case "game.endlessregen":
		return itoa(cfg.Game.EndlessRegen), nil
	case "game.mode":
		return cfg.Game.Mode, nil
	case "color.background":
		return cfg.Colors.Background.String(), nil
	case "color.ball":
		return cfg.Colors.Ball.String(), nil
	case "color.bgimage":
		return cfg.Colors.BackgroundImage, nil
	case "color.bgopacity":
		return itoa(cfg.Colors.BackgroundOpacity), nil
	case "color.blockstyle":
		return cfg.Colors.BlockStyle, nil
	case "color.ballstyle":
		return cfg.Colors.BallStyle, nil
	case "display.padding.top":
		return itoa(cfg.Display.Padding.Top), nil
	case "display.padding.left":
		return itoa(cfg.Display.Padding.Left), nil
	case "display.padding.bottom":
		return itoa(cfg.Display.Padding.Bottom), nil
	case "display.padding.right":
		return itoa(cfg.Display.Padding.Right), nil
	case "display.iconrows":
		return itoa(cfg.Display.IconRows), nil
	case "display.iconcols":
		return itoa(cfg.Display.IconCols), nil
	case "display.rowspacing":
		return itoa(cfg.Display.RowSpacing), nil
	case "display.colspacing":
		return itoa(cfg.Display.ColSpacing), nil
	case "display.widgets":
		return FormatWidgets(cfg.Display.Widgets), nil
	}

	if idx, ok := strings.CutPrefix(key, blockKeyPrefix); ok {
		n, err := strconv.Atoi(idx)
		if err == nil && n >= 1 && n <= len(cfg.Colors.Blocks) {
			return cfg.Colors.Blocks[n-1].String(), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownSetting, key)
}
