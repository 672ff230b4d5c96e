package wallpaper

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/breakout-wallpaper/internal/config"
	"github.com/vovakirdan/breakout-wallpaper/internal/core"
)

// Lattice band sizes. Every icon column is preceded by one block column and
// every icon row by two block rows; the grid closes with one extra band of
// each on the far side.
const (
	cellsBetweenColumn = 1
	cellsBetweenRow    = 2
)

// Layout errors. Both are "not yet" conditions and callers treat them as a
// no-op rather than a failure.
var (
	ErrScreenNotReady = errors.New("wallpaper: screen size not known")
	ErrArenaTooSmall  = errors.New("wallpaper: padding leaves no arena")
)

// Geometry holds everything derived from a screen size. It is immutable
// once built and replaced on every resize.
type Geometry struct {
	ScreenW, ScreenH int
	GameW, GameH     int     // Arena size after padding, in pixels
	OffsetX, OffsetY int     // Arena origin on screen (left/top padding)
	CellW, CellH     float64 // Pixel size of one board cell
	Radius           float64 // Shared ball radius
	Landscape        bool
}

// Ready reports whether the geometry came from a successful resize.
func (g Geometry) Ready() bool {
	return g.GameW > 0 && g.GameH > 0
}

// CellRect returns the arena-relative pixel bounds of board cell (x, y).
func (g Geometry) CellRect(x, y int) core.Rect {
	return core.NewRect(float64(x)*g.CellW, float64(y)*g.CellH, g.CellW, g.CellH)
}

// CellCenter returns the arena-relative center of board cell (x, y).
func (g Geometry) CellCenter(x, y int) core.Vec {
	return g.CellRect(x, y).Center()
}

// GridSize returns the board dimensions in cells for an icon grid.
func GridSize(d config.Display) (cellsWide, cellsTall int) {
	cellsWide = d.IconCols*(d.ColSpacing+cellsBetweenColumn) + cellsBetweenColumn
	cellsTall = d.IconRows*(d.RowSpacing+cellsBetweenRow) + cellsBetweenRow
	return cellsWide, cellsTall
}

// blockColor is the palette entry used for a block at (x, y), both at
// generation and on regeneration.
func blockColor(palette []core.Color, x, y int) core.Color {
	return palette[(x+y)%len(palette)]
}

// NewBoard generates the initial block pattern for an icon grid: blocks
// on the lattice between icons, Invalid under icons and widgets.
func NewBoard(d config.Display, palette []core.Color) (*Board, error) {
	if len(palette) == 0 {
		return nil, config.ErrEmptyPalette
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	iconW := d.ColSpacing + cellsBetweenColumn
	iconH := d.RowSpacing + cellsBetweenRow
	w, h := GridSize(d)
	b := newEmptyBoard(w, h)

	for y := range h {
		for x := range w {
			if x%iconW < cellsBetweenColumn || y%iconH < cellsBetweenRow {
				b.cells[y*w+x] = Cell{State: CellBlock, Color: blockColor(palette, x, y)}
			} else {
				b.cells[y*w+x] = Cell{State: CellInvalid}
			}
		}
	}

	// Widgets cover their icons and the lattice between them, but not the
	// outer band around the footprint.
	for _, wg := range d.Widgets {
		left := wg.Left*iconW + cellsBetweenColumn
		top := wg.Top*iconH + cellsBetweenRow
		right := wg.Right*iconW + cellsBetweenColumn + d.ColSpacing - 1
		bottom := wg.Bottom*iconH + cellsBetweenRow + d.RowSpacing - 1
		for y := top; y <= bottom; y++ {
			for x := left; x <= right; x++ {
				b.invalidate(x, y)
			}
		}
	}

	b.recount()
	return b, nil
}

// ArenaSize subtracts padding from the screen. In landscape the bottom
// padding (the dock) moves to the side, so it is taken from the width.
func ArenaSize(d config.Display, screenW, screenH int) (gameW, gameH int) {
	p := d.Padding
	if screenW > screenH {
		return screenW - (p.Left + p.Right + p.Bottom), screenH - p.Top
	}
	return screenW - (p.Left + p.Right), screenH - (p.Top + p.Bottom)
}

// NewGeometry derives cell size and ball radius for a screen size.
func NewGeometry(cfg config.Wallpaper, screenW, screenH int) (Geometry, error) {
	if screenW <= 0 || screenH <= 0 {
		return Geometry{}, ErrScreenNotReady
	}
	gameW, gameH := ArenaSize(cfg.Display, screenW, screenH)
	if gameW <= 0 || gameH <= 0 {
		return Geometry{}, fmt.Errorf("%w: %dx%d screen, arena %dx%d", ErrArenaTooSmall, screenW, screenH, gameW, gameH)
	}

	cellsWide, cellsTall := GridSize(cfg.Display)
	g := Geometry{
		ScreenW:   screenW,
		ScreenH:   screenH,
		GameW:     gameW,
		GameH:     gameH,
		OffsetX:   cfg.Display.Padding.Left,
		OffsetY:   cfg.Display.Padding.Top,
		CellW:     float64(gameW) / float64(cellsWide),
		CellH:     float64(gameH) / float64(cellsTall),
		Landscape: screenW > screenH,
	}
	g.Radius = min(g.CellW, g.CellH) * cfg.Physics.BallSize / 2
	return g, nil
}

// BuildBoard generates a board and the geometry for a screen size.
// Configuration errors are reported before the screen size is looked at.
func BuildBoard(cfg config.Wallpaper, screenW, screenH int) (*Board, Geometry, error) {
	board, err := NewBoard(cfg.Display, cfg.Colors.Blocks)
	if err != nil {
		return nil, Geometry{}, err
	}
	geom, err := NewGeometry(cfg, screenW, screenH)
	if err != nil {
		return nil, Geometry{}, err
	}
	return board, geom, nil
}

// BallAnchor returns the arena position a ball starts from for icon
// (iconX, iconY): the origin of the icon interior, offset by half the spacing.
func BallAnchor(d config.Display, geom Geometry, iconX, iconY int) core.Vec {
	colSp := float64(d.ColSpacing)
	rowSp := float64(d.RowSpacing)
	ix, iy := float64(iconX), float64(iconY)
	return core.Vec{
		X: (colSp*ix + cellsBetweenColumn*(ix+1) + colSp/2) * geom.CellW,
		Y: (rowSp*iy + cellsBetweenRow*(iy+1) + rowSp/2) * geom.CellH,
	}
}
