package config

import (
	"errors"
	"fmt"
)

// Configuration errors. ErrEmptyPalette and ErrNoIconGrid are fatal for
// board construction: both would otherwise divide by zero.
var (
	ErrEmptyPalette     = errors.New("config: block palette is empty")
	ErrNoIconGrid       = errors.New("config: icon rows and columns must be at least 1")
	ErrInvalidBallCount = errors.New("config: ball count must be at least 1")
	ErrInvalidRegen     = errors.New("config: endless regen must be within 0-100")
	ErrInvalidSpacing   = errors.New("config: row and column spacing must not be negative")
	ErrInvalidPadding   = errors.New("config: padding must not be negative")
	ErrInvalidOpacity   = errors.New("config: background opacity must be within 0-255")
	ErrWidgetOutOfGrid  = errors.New("config: widget lies outside the icon grid")
	ErrInvalidPhysics   = errors.New("config: ball speed and size must be positive")
)

// Validate checks every range the layout engine and simulation rely on.
// The game mode is deliberately not checked here: an unknown mode is a
// recoverable condition handled by the simulation.
func (w Wallpaper) Validate() error {
	if len(w.Colors.Blocks) == 0 {
		return ErrEmptyPalette
	}
	if err := w.Display.Validate(); err != nil {
		return err
	}
	if w.Game.BallCount < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidBallCount, w.Game.BallCount)
	}
	if w.Game.EndlessRegen < 0 || w.Game.EndlessRegen > 100 {
		return fmt.Errorf("%w: got %d", ErrInvalidRegen, w.Game.EndlessRegen)
	}
	if w.Colors.BackgroundOpacity < 0 || w.Colors.BackgroundOpacity > 255 {
		return fmt.Errorf("%w: got %d", ErrInvalidOpacity, w.Colors.BackgroundOpacity)
	}
	if w.Physics.BallSpeed <= 0 || w.Physics.BallSize <= 0 {
		return ErrInvalidPhysics
	}
	return nil
}

// Validate checks the icon grid, spacing, padding and widget bounds.
func (d Display) Validate() error {
	if d.IconRows < 1 || d.IconCols < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrNoIconGrid, d.IconCols, d.IconRows)
	}
	if d.RowSpacing < 0 || d.ColSpacing < 0 {
		return ErrInvalidSpacing
	}
	p := d.Padding
	if p.Top < 0 || p.Left < 0 || p.Bottom < 0 || p.Right < 0 {
		return ErrInvalidPadding
	}
	for i, wg := range d.Widgets {
		if wg.Left < 0 || wg.Top < 0 || wg.Left > wg.Right || wg.Top > wg.Bottom ||
			wg.Right >= d.IconCols || wg.Bottom >= d.IconRows {
			return fmt.Errorf("%w: widget %d (%d,%d)-(%d,%d) in %dx%d grid",
				ErrWidgetOutOfGrid, i, wg.Left, wg.Top, wg.Right, wg.Bottom, d.IconCols, d.IconRows)
		}
	}
	return nil
}
