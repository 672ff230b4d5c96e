package config

import (
	"slices"
	"strings"
)

// Change is a bit set describing which parts of a configuration differ.
type Change uint8

const (
	ChangeLayout   Change = 1 << iota // icon grid, spacing, widgets
	ChangeGraphics                    // padding, background image
	ChangeBalls                       // ball count
	ChangeMode                        // game mode, regen percent
	ChangePalette                     // block, ball and background colors
	ChangeStyle                       // render styles, background opacity
)

// ChangeNone means the configurations are equivalent.
const ChangeNone Change = 0

// Has reports whether any bit of flag is set.
func (c Change) Has(flag Change) bool {
	return c&flag != 0
}

// NeedsRebuild reports whether the board and ball positions must be rebuilt.
func (c Change) NeedsRebuild() bool {
	return c.Has(ChangeLayout | ChangeGraphics | ChangeBalls)
}

func (c Change) String() string {
	if c == ChangeNone {
		return "none"
	}
	names := []struct {
		flag Change
		name string
	}{
		{ChangeLayout, "layout"},
		{ChangeGraphics, "graphics"},
		{ChangeBalls, "balls"},
		{ChangeMode, "mode"},
		{ChangePalette, "palette"},
		{ChangeStyle, "style"},
	}
	var parts []string
	for _, n := range names {
		if c.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Diff compares two configurations and reports what changed.
func Diff(old, next Wallpaper) Change {
	var c Change

	od, nd := old.Display, next.Display
	if od.IconRows != nd.IconRows || od.IconCols != nd.IconCols ||
		od.RowSpacing != nd.RowSpacing || od.ColSpacing != nd.ColSpacing ||
		!slices.Equal(od.Widgets, nd.Widgets) {
		c |= ChangeLayout
	}
	if od.Padding != nd.Padding || old.Colors.BackgroundImage != next.Colors.BackgroundImage {
		c |= ChangeGraphics
	}
	if old.Game.BallCount != next.Game.BallCount || old.Physics != next.Physics {
		c |= ChangeBalls
	}
	if old.Game.Mode != next.Game.Mode || old.Game.EndlessRegen != next.Game.EndlessRegen {
		c |= ChangeMode
	}
	oc, nc := old.Colors, next.Colors
	if oc.Background != nc.Background || oc.Ball != nc.Ball || !slices.Equal(oc.Blocks, nc.Blocks) {
		c |= ChangePalette
	}
	if oc.BlockStyle != nc.BlockStyle || oc.BallStyle != nc.BallStyle ||
		oc.BackgroundOpacity != nc.BackgroundOpacity {
		c |= ChangeStyle
	}
	return c
}
