// Package wallpaper implements the breakout wallpaper simulation: the board
// layout generator, ball motion and block collisions, and the Endless and
// Levels mode state machine.
package wallpaper

import (
	"strings"

	"github.com/vovakirdan/breakout-wallpaper/internal/core"
)

// CellState is the occupancy of a single board cell.
type CellState uint8

const (
	CellBlank   CellState = iota // No block, passable
	CellInvalid                  // Under an icon or widget, never holds a block
	CellBlock                    // Destructible block
)

// Cell is one grid unit of the board.
type Cell struct {
	State CellState
	Color core.Color // Only meaningful for CellBlock
}

// Board is a grid of cells plus block counters.
// remaining always equals the number of CellBlock cells; total is fixed
// for the lifetime of the board.
type Board struct {
	width, height int
	cells         []Cell // row-major: y*width + x
	remaining     int
	total         int
}

func newEmptyBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the number of cell columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of cell rows.
func (b *Board) Height() int { return b.height }

// Remaining returns the live block count.
func (b *Board) Remaining() int { return b.remaining }

// Total returns the block count at generation time.
func (b *Board) Total() int { return b.total }

// InBounds reports whether (x, y) is on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell at (x, y). Off-board positions read as Invalid.
func (b *Board) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{State: CellInvalid}
	}
	return b.cells[y*b.width+x]
}

// IsBlock reports whether (x, y) holds a live block.
func (b *Board) IsBlock(x, y int) bool {
	return b.At(x, y).State == CellBlock
}

// Clear turns a block into a blank cell. It returns false if (x, y) did
// not hold a block.
func (b *Board) Clear(x, y int) bool {
	if !b.IsBlock(x, y) {
		return false
	}
	b.cells[y*b.width+x] = Cell{State: CellBlank}
	b.remaining--
	return true
}

// Fill places a block on a blank cell. It returns false if (x, y) is not
// blank.
func (b *Board) Fill(x, y int, color core.Color) bool {
	if !b.InBounds(x, y) || b.cells[y*b.width+x].State != CellBlank {
		return false
	}
	b.cells[y*b.width+x] = Cell{State: CellBlock, Color: color}
	b.remaining++
	return true
}

// invalidate forces a cell to Invalid during generation.
func (b *Board) invalidate(x, y int) {
	if b.InBounds(x, y) {
		b.cells[y*b.width+x] = Cell{State: CellInvalid}
	}
}

// recount sets remaining and total from the live block count.
func (b *Board) recount() {
	n := 0
	for _, c := range b.cells {
		if c.State == CellBlock {
			n++
		}
	}
	b.remaining = n
	b.total = n
}

// Count returns how many cells are in the given state.
func (b *Board) Count(state CellState) int {
	n := 0
	for _, c := range b.cells {
		if c.State == state {
			n++
		}
	}
	return n
}

// String renders the board as ASCII: '#' block, '.' blank, ' ' invalid.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y := range b.height {
		for x := range b.width {
			switch b.cells[y*b.width+x].State {
			case CellBlock:
				sb.WriteByte('#')
			case CellBlank:
				sb.WriteByte('.')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
