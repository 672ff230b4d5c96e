package wallpaper

import (
	"math"

	"github.com/vovakirdan/breakout-wallpaper/internal/core"
)

// probe is a board cell checked for a collision.
type probe struct {
	X, Y int
}

// bounceEdges keeps the ball inside the arena. The velocity component
// toward the wall is flipped and the other gains jitter in [0, 1), which
// breaks up periodic orbits. The result is not renormalized.
func bounceEdges(b *Ball, geom Geometry, rng *RNG) {
	w, h := float64(geom.GameW), float64(geom.GameH)

	if b.X <= 0 {
		b.VX, b.VY = math.Abs(b.VX), b.VY+rng.Float64()
	} else if b.X >= w {
		b.VX, b.VY = -math.Abs(b.VX), b.VY+rng.Float64()
	}

	if b.Y <= 0 {
		b.VX, b.VY = b.VX+rng.Float64(), math.Abs(b.VY)
	} else if b.Y >= h {
		b.VX, b.VY = b.VX+rng.Float64(), -math.Abs(b.VY)
	}
}

// cellIndex converts a pixel coordinate to a cell index, truncating toward
// zero like an integer conversion.
func cellIndex(px, cell float64) int {
	return int(px / cell)
}

// probes returns the three cells checked for a ball: its left and right
// edge on the leading row, and the leading side on the trailing row.
func probes(b *Ball, geom Geometry) [3]probe {
	r := geom.Radius
	sx, sy := core.Sign(b.VX), core.Sign(b.VY)

	leadY := cellIndex(b.Y+sy*r, geom.CellH)
	return [3]probe{
		{cellIndex(b.X-r, geom.CellW), leadY},
		{cellIndex(b.X+r, geom.CellW), leadY},
		{cellIndex(b.X+sx*r, geom.CellW), cellIndex(b.Y-sy*r, geom.CellH)},
	}
}

// collide consumes the block at p, if any, and reflects the ball off it.
// The normal points from the ball to the block center; the reflected
// velocity is unit length. A ball sitting exactly on the block center
// reverses, and a ball with no velocity keeps it.
func collide(board *Board, b *Ball, geom Geometry, p probe) bool {
	if !board.IsBlock(p.X, p.Y) {
		return false
	}

	v := b.Vel()
	if !v.IsZero() {
		n := geom.CellCenter(p.X, p.Y).Sub(b.Pos()).Unit()
		if n.IsZero() {
			n = v.Unit().Scale(-1)
		}
		b.SetVector(v.Reflect(n).Unit())
	}

	board.Clear(p.X, p.Y)
	return true
}
