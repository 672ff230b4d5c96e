package wallpaper

import (
	"math"

	"github.com/vovakirdan/breakout-wallpaper/internal/config"
	"github.com/vovakirdan/breakout-wallpaper/internal/core"
)

// Visual characters for rendering
const (
	BlockChar       = '█'
	BallChar        = '●'
	BallOutlineChar = '○'
)

// Backdrop supplies a per-character background, such as a scaled image.
// Unset colors fall back to the plain background color.
type Backdrop interface {
	ColorAt(col, row int) core.Color
}

// RenderStyle controls how a snapshot is drawn.
type RenderStyle struct {
	Background   core.Color
	Backdrop     Backdrop // Optional
	Ball         core.Color
	BlockOutline bool
	BallOutline  bool
}

// StyleFromConfig builds a RenderStyle from colors. Anything other than
// "outline" draws filled.
func StyleFromConfig(c config.Colors) RenderStyle {
	return RenderStyle{
		Background:   c.Background,
		Ball:         c.Ball,
		BlockOutline: c.BlockStyle == config.StyleOutline,
		BallOutline:  c.BallStyle == config.StyleOutline,
	}
}

// Render draws a snapshot onto a character screen covering the whole
// simulated screen. Each character stands for a ScreenW/width by
// ScreenH/height block of pixels. Render only reads the snapshot.
func Render(dst *core.Screen, snap Snapshot, style RenderStyle) {
	dst.Fill(' ', style.Background)
	if style.Backdrop != nil {
		for y := range dst.Height() {
			for x := range dst.Width() {
				if c := style.Backdrop.ColorAt(x, y); c.IsSet() {
					dst.SetBG(x, y, c)
				}
			}
		}
	}

	g := snap.Geometry
	if !g.Ready() || dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	p := projection{
		sx:   float64(g.ScreenW) / float64(dst.Width()),
		sy:   float64(g.ScreenH) / float64(dst.Height()),
		offX: float64(g.OffsetX),
		offY: float64(g.OffsetY),
	}

	for _, b := range snap.Blocks {
		x0, y0, x1, y1 := p.span(b.Rect)
		if style.BlockOutline {
			dst.DrawBox(x0, y0, x1, y1, b.Color)
		} else {
			dst.FillBox(x0, y0, x1, y1, BlockChar, b.Color)
		}
	}

	for _, b := range snap.Balls {
		x0, y0, x1, y1 := p.span(b.Bounds())
		switch {
		case x0 == x1 && y0 == y1 && style.BallOutline:
			dst.Set(x0, y0, BallOutlineChar, style.Ball)
		case x0 == x1 && y0 == y1:
			dst.Set(x0, y0, BallChar, style.Ball)
		case style.BallOutline:
			dst.DrawBox(x0, y0, x1, y1, style.Ball)
		default:
			dst.FillBox(x0, y0, x1, y1, BlockChar, style.Ball)
		}
	}
}

// projection maps arena pixels to screen characters.
type projection struct {
	sx, sy     float64 // Pixels per character
	offX, offY float64 // Arena origin on screen
}

// span returns the inclusive character range a pixel rect touches.
func (p projection) span(r core.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor((r.X + p.offX) / p.sx))
	y0 = int(math.Floor((r.Y + p.offY) / p.sy))
	x1 = int(math.Ceil((r.Right()+p.offX)/p.sx)) - 1
	y1 = int(math.Ceil((r.Bottom()+p.offY)/p.sy)) - 1
	return x0, y0, max(x1, x0), max(y1, y0)
}
