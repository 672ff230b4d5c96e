// Package background loads the optional wallpaper image and fits it to the
// terminal: cover scaling, center crop, and blending with the background
// color at the configured opacity.
package background

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"os"

	_ "golang.org/x/image/bmp"  // register decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register decoder

	"github.com/vovakirdan/breakout-wallpaper/internal/core"
)

// ErrNoImage is returned when no image path is configured.
var ErrNoImage = errors.New("background: no image configured")

// Load opens and decodes an image file. PNG, JPEG, GIF, BMP and WebP are
// supported.
func Load(path string) (image.Image, error) {
	if path == "" {
		return nil, ErrNoImage
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("background: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("background: %s: %w", path, err)
	}
	return img, nil
}

// Decode decodes an image from r in any registered format.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

// CoverRect returns the part of bounds that, scaled with its aspect ratio
// kept, exactly covers a w x h screen. The excess is cropped evenly from
// both sides.
func CoverRect(bounds image.Rectangle, w, h int) image.Rectangle {
	if w <= 0 || h <= 0 || bounds.Empty() {
		return bounds
	}
	sw, sh := float64(bounds.Dx()), float64(bounds.Dy())
	pictureAR := sw / sh
	screenAR := float64(w) / float64(h)

	if pictureAR > screenAR {
		// Wider than the screen: keep full height, crop the sides.
		cropW := max(int(sh*screenAR), 1)
		x0 := bounds.Min.X + (bounds.Dx()-cropW)/2
		return image.Rect(x0, bounds.Min.Y, x0+cropW, bounds.Max.Y)
	}
	// Taller than the screen: keep full width, crop top and bottom.
	cropH := max(int(sw/screenAR), 1)
	y0 := bounds.Min.Y + (bounds.Dy()-cropH)/2
	return image.Rect(bounds.Min.X, y0, bounds.Max.X, y0+cropH)
}

// Fit scales src to cover a screen of pixelW x pixelH and samples it into
// a cols x rows image, one pixel per terminal character. Nearest-neighbor
// sampling keeps edges hard.
func Fit(src image.Image, pixelW, pixelH, cols, rows int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, max(cols, 0), max(rows, 0)))
	if dst.Bounds().Empty() {
		return dst
	}
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, CoverRect(src.Bounds(), pixelW, pixelH), draw.Src, nil)
	return dst
}

// Backdrop is a fitted image already blended over the background color.
// It is safe to read from any goroutine once built.
type Backdrop struct {
	cols, rows int
	colors     []core.Color
}

// NewBackdrop blends a fitted image over base. opacity (0-255) is the
// image's weight; per-pixel alpha reduces it further.
func NewBackdrop(fitted image.Image, base core.Color, opacity int) *Backdrop {
	b := fitted.Bounds()
	bd := &Backdrop{
		cols:   b.Dx(),
		rows:   b.Dy(),
		colors: make([]core.Color, b.Dx()*b.Dy()),
	}
	opacity = core.Clamp(opacity, 0, 255)

	for y := range bd.rows {
		for x := range bd.cols {
			c := color.NRGBAModel.Convert(fitted.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			weight := uint8(opacity * int(c.A) / 255) //#nosec G115 -- bounded by 255
			bd.colors[y*bd.cols+x] = core.RGB(c.R, c.G, c.B).Blend(base, weight)
		}
	}
	return bd
}

// ColorAt returns the blended color for a character, or ColorNone outside
// the backdrop.
func (bd *Backdrop) ColorAt(col, row int) core.Color {
	if bd == nil || col < 0 || col >= bd.cols || row < 0 || row >= bd.rows {
		return core.ColorNone
	}
	return bd.colors[row*bd.cols+col]
}

// Build loads path and fits it to the terminal in one step.
func Build(path string, base core.Color, opacity, pixelW, pixelH, cols, rows int) (*Backdrop, error) {
	img, err := Load(path)
	if err != nil {
		return nil, err
	}
	return NewBackdrop(Fit(img, pixelW, pixelH, cols, rows), base, opacity), nil
}
