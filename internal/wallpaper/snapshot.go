package wallpaper

import (
	"math"

	"github.com/vovakirdan/breakout-wallpaper/internal/core"
)

// BlockView is a live block as seen by a renderer.
type BlockView struct {
	Col, Row int
	Rect     core.Rect // Arena-relative pixels
	Color    core.Color
}

// BallView is a ball as seen by a renderer.
type BallView struct {
	X, Y   float64 // Arena-relative pixels
	VX, VY float64
	Radius float64
}

// Bounds returns the ball's bounding box.
func (b BallView) Bounds() core.Rect {
	return core.NewRect(b.X-b.Radius, b.Y-b.Radius, 2*b.Radius, 2*b.Radius)
}

// Snapshot is a read-only copy of the simulation state.
type Snapshot struct {
	Tick     uint64
	Mode     string
	Geometry Geometry

	Cols, Rows int // Board size in cells
	Remaining  int
	Total      int
	Clears     int

	Blocks []BlockView
	Balls  []BallView

	RNGState uint64
}

// Snapshot returns the current state for rendering or inspection.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      s.tick,
		Mode:      s.mode.String(),
		Geometry:  s.geom,
		Cols:      s.board.Width(),
		Rows:      s.board.Height(),
		Remaining: s.board.Remaining(),
		Total:     s.board.Total(),
		Clears:    s.clears,
		Blocks:    make([]BlockView, 0, s.board.Remaining()),
		Balls:     make([]BallView, len(s.balls)),
		RNGState:  s.rng.State(),
	}

	for y := range s.board.Height() {
		for x := range s.board.Width() {
			c := s.board.At(x, y)
			if c.State != CellBlock {
				continue
			}
			snap.Blocks = append(snap.Blocks, BlockView{
				Col:   x,
				Row:   y,
				Rect:  s.geom.CellRect(x, y),
				Color: c.Color,
			})
		}
	}

	for i, b := range s.balls {
		snap.Balls[i] = BallView{X: b.X, Y: b.Y, VX: b.VX, VY: b.VY, Radius: s.geom.Radius}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Cols)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Rows)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Remaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Total)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Clears)    //#nosec G115 -- hash computation

	for _, b := range snap.Blocks {
		h = h*31 + uint64(b.Col) //#nosec G115 -- hash computation
		h = h*31 + uint64(b.Row) //#nosec G115 -- hash computation
		h = h*31 + uint64(b.Color)
	}

	for _, b := range snap.Balls {
		h = h*31 + math.Float64bits(b.X)
		h = h*31 + math.Float64bits(b.Y)
		h = h*31 + math.Float64bits(b.VX)
		h = h*31 + math.Float64bits(b.VY)
	}

	h = h*31 + snap.RNGState

	return h
}
