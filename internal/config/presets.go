package config

// LauncherPreset represents a named launcher icon grid.
type LauncherPreset string

const (
	PresetPhone  LauncherPreset = "phone"
	PresetTablet LauncherPreset = "tablet"
	PresetDense  LauncherPreset = "dense"
)

// PresetInfo describes a preset for listing.
type PresetInfo struct {
	ID          LauncherPreset
	Description string
}

// Presets returns all launcher presets in display order.
func Presets() []PresetInfo {
	return []PresetInfo{
		{PresetPhone, "4x4 icons, roomy spacing (classic phone launcher)"},
		{PresetTablet, "6x5 icons, wide column spacing"},
		{PresetDense, "5x6 icons, tight spacing, more blocks"},
	}
}

// ParsePreset maps a name to a preset. Unknown names return false.
func ParsePreset(name string) (LauncherPreset, bool) {
	for _, p := range Presets() {
		if string(p.ID) == name {
			return p.ID, true
		}
	}
	return "", false
}

// ApplyPreset modifies the config based on a launcher preset.
// Widgets are dropped because their coordinates belong to the old grid.
func ApplyPreset(cfg *Wallpaper, preset LauncherPreset) {
	d := &cfg.Display

	switch preset {
	case PresetPhone:
		d.IconRows, d.IconCols = 4, 4
		d.RowSpacing, d.ColSpacing = 2, 3
	case PresetTablet:
		d.IconRows, d.IconCols = 5, 6
		d.RowSpacing, d.ColSpacing = 2, 4
	case PresetDense:
		d.IconRows, d.IconCols = 6, 5
		d.RowSpacing, d.ColSpacing = 1, 1
	default:
		return
	}
	d.Widgets = nil
}
