package wallpaper

import (
	"github.com/vovakirdan/breakout-wallpaper/internal/config"
	"github.com/vovakirdan/breakout-wallpaper/internal/core"
)

// Ball is a moving ball. The radius is shared and lives in Geometry.
type Ball struct {
	X, Y   float64 // Center, arena-relative pixels
	VX, VY float64 // Direction; unit length after a block collision
}

// Pos returns the ball center.
func (b *Ball) Pos() core.Vec { return core.Vec{X: b.X, Y: b.Y} }

// Vel returns the velocity vector.
func (b *Ball) Vel() core.Vec { return core.Vec{X: b.VX, Y: b.VY} }

// SetLocation moves the ball.
func (b *Ball) SetLocation(p core.Vec) {
	b.X, b.Y = p.X, p.Y
}

// SetVector replaces the velocity.
func (b *Ball) SetVector(v core.Vec) {
	b.VX, b.VY = v.X, v.Y
}

// Advance moves the ball by speed times its velocity.
func (b *Ball) Advance(speed float64) {
	b.X += b.VX * speed
	b.Y += b.VY * speed
}

// Bounds returns the ball's bounding box for the given radius.
func (b *Ball) Bounds(radius float64) core.Rect {
	return core.NewRect(b.X-radius, b.Y-radius, 2*radius, 2*radius)
}

// startPosition returns where ball i starts and its initial direction.
// The first four balls take the corners of the icon grid, each heading
// away into the board; later balls reuse the same corners in order.
func startPosition(i int, d config.Display, geom Geometry) (pos, dir core.Vec) {
	lastCol, lastRow := d.IconCols-1, d.IconRows-1
	switch i % 4 {
	case 0:
		return BallAnchor(d, geom, 0, 0), core.Vec{X: 0, Y: -1}
	case 1:
		return BallAnchor(d, geom, lastCol, lastRow), core.Vec{X: 0, Y: 1}
	case 2:
		return BallAnchor(d, geom, lastCol, 0), core.Vec{X: 1, Y: 0}
	default:
		return BallAnchor(d, geom, 0, lastRow), core.Vec{X: -1, Y: 0}
	}
}

// placeBalls resets every ball to its start position.
func placeBalls(balls []Ball, d config.Display, geom Geometry) {
	for i := range balls {
		pos, dir := startPosition(i, d, geom)
		balls[i].SetLocation(pos)
		balls[i].SetVector(dir)
	}
}
