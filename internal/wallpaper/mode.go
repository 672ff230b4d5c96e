package wallpaper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/breakout-wallpaper/internal/config"
	"github.com/vovakirdan/breakout-wallpaper/internal/core"
)

// ErrRegenExhausted means Endless mode wanted a block back but the board
// has no blank cell to put it on.
var ErrRegenExhausted = errors.New("wallpaper: no blank cell to regenerate")

// Mode decides what happens as blocks are cleared. It is one of Endless,
// Levels or an unrecognized configured value.
type Mode interface {
	String() string
	isMode()
}

// Endless regenerates blocks whenever the live count falls below
// RegenPercent (0-1) of the generated total.
type Endless struct {
	RegenPercent float64
}

// Levels rebuilds the board once every block is cleared.
type Levels struct{}

// invalidMode is a configured mode name nobody recognizes. Ticks log it
// and skip mode handling.
type invalidMode struct {
	raw string
}

func (Endless) isMode()     {}
func (Levels) isMode()      {}
func (invalidMode) isMode() {}

func (m Endless) String() string {
	return fmt.Sprintf("endless(%.0f%%)", m.RegenPercent*100)
}

func (Levels) String() string { return config.ModeLevels }

func (m invalidMode) String() string { return fmt.Sprintf("invalid(%q)", m.raw) }

// ModeFromConfig maps the configured mode name to a Mode.
func ModeFromConfig(g config.Game) Mode {
	switch strings.ToLower(strings.TrimSpace(g.Mode)) {
	case config.ModeEndless, "0":
		return Endless{RegenPercent: float64(g.EndlessRegen) / 100}
	case config.ModeLevels, "1":
		return Levels{}
	default:
		return invalidMode{raw: g.Mode}
	}
}

// modeName is the short name recorded with board clears.
func modeName(m Mode) string {
	switch m.(type) {
	case Endless:
		return config.ModeEndless
	case Levels:
		return config.ModeLevels
	default:
		return "invalid"
	}
}

// regenAttemptsPerCell bounds rejection sampling before falling back to
// an exhaustive scan.
const regenAttemptsPerCell = 4

// regenerate turns one random blank cell back into a block, colored as it
// was at generation. Invalid cells are never picked.
func regenerate(board *Board, palette []core.Color, rng *RNG) error {
	w, h := board.Width(), board.Height()

	for range regenAttemptsPerCell * w * h {
		x, y := rng.Intn(w), rng.Intn(h)
		if board.At(x, y).State == CellBlank {
			board.Fill(x, y, blockColor(palette, x, y))
			return nil
		}
	}

	var blanks []probe
	for y := range h {
		for x := range w {
			if board.At(x, y).State == CellBlank {
				blanks = append(blanks, probe{x, y})
			}
		}
	}
	if len(blanks) == 0 {
		return fmt.Errorf("%w: %d of %d blocks live", ErrRegenExhausted, board.Remaining(), board.Total())
	}
	p := blanks[rng.Intn(len(blanks))]
	board.Fill(p.X, p.Y, blockColor(palette, p.X, p.Y))
	return nil
}
