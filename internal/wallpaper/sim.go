package wallpaper

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breakout-wallpaper/internal/config"
	"github.com/vovakirdan/breakout-wallpaper/internal/core"
)

// ClearEvent describes a board rebuilt because it ran out of blocks.
type ClearEvent struct {
	Mode        string // Mode name at the time of the clear
	BlocksTotal int    // Blocks on the board that was cleared
	Tick        uint64
}

// Frame is everything a configuration change can replace at once.
type Frame struct {
	Board    *Board
	Balls    []Ball
	Geometry Geometry
}

// Simulation owns the board, the balls and the random source. It is not
// safe for concurrent use: the host serializes Tick, Resize, Redirect and
// Configure.
type Simulation struct {
	cfg  config.Wallpaper
	mode Mode

	board   *Board
	balls   []Ball
	geom    Geometry
	screenW int
	screenH int

	rng    *RNG
	logger *log.Logger

	tick    uint64
	clears  int
	onClear func(ClearEvent)

	warnedMode string // last invalid mode logged, to avoid one line per tick
}

// New validates cfg and creates a simulation. The board is generated
// immediately; balls are placed on the first Resize.
func New(cfg config.Wallpaper, seed int64, logger *log.Logger) (*Simulation, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	board, err := NewBoard(cfg.Display, cfg.Colors.Blocks)
	if err != nil {
		return nil, err
	}

	s := &Simulation{
		cfg:    cfg.Clone(),
		mode:   ModeFromConfig(cfg.Game),
		board:  board,
		balls:  make([]Ball, cfg.Game.BallCount),
		rng:    NewRNG(seed),
		logger: logger,
	}
	s.logConfig()
	return s, nil
}

// OnClear registers a hook called every time a cleared board is rebuilt.
func (s *Simulation) OnClear(fn func(ClearEvent)) {
	s.onClear = fn
}

// Config returns a copy of the active configuration.
func (s *Simulation) Config() config.Wallpaper { return s.cfg.Clone() }

// Mode returns the active mode.
func (s *Simulation) Mode() Mode { return s.mode }

// Geometry returns the geometry from the last successful resize.
func (s *Simulation) Geometry() Geometry { return s.geom }

// Ticks returns how many ticks have run.
func (s *Simulation) Ticks() uint64 { return s.tick }

// Clears returns how many boards have been cleared and rebuilt.
func (s *Simulation) Clears() int { return s.clears }

// Resize recomputes cell size, ball radius and ball positions for a new
// screen size in pixels. ErrScreenNotReady and ErrArenaTooSmall leave the
// simulation untouched.
func (s *Simulation) Resize(screenW, screenH int) error {
	geom, err := NewGeometry(s.cfg, screenW, screenH)
	if err != nil {
		return err
	}

	s.screenW, s.screenH = screenW, screenH
	s.geom = geom
	placeBalls(s.balls, s.cfg.Display, geom)

	s.logger.Debug("resized",
		"landscape", geom.Landscape,
		"screen", fmt.Sprintf("%dx%d", screenW, screenH),
		"cell", fmt.Sprintf("%.2fx%.2f", geom.CellW, geom.CellH),
		"radius", geom.Radius,
	)
	return nil
}

// Tick advances every ball one step. It does nothing until the first
// successful Resize. The returned error is informational: the simulation
// stays consistent and later ticks proceed.
func (s *Simulation) Tick() error {
	if !s.geom.Ready() {
		return nil
	}
	s.tick++

	var errs []error
	for i := range s.balls {
		b := &s.balls[i]
		b.Advance(s.cfg.Physics.BallSpeed)
		bounceEdges(b, s.geom, s.rng)

		for _, p := range probes(b, s.geom) {
			collide(s.board, b, s.geom, p)
		}

		if err := s.applyMode(); err != nil {
			errs = append(errs, err)
		}
	}

	if s.board.Remaining() <= 0 {
		s.clearBoard()
	}
	return errors.Join(errs...)
}

// applyMode runs the mode's reaction to the current block count.
func (s *Simulation) applyMode() error {
	switch m := s.mode.(type) {
	case Endless:
		if float64(s.board.Remaining()) < float64(s.board.Total())*m.RegenPercent {
			if err := regenerate(s.board, s.cfg.Colors.Blocks, s.rng); err != nil {
				s.logger.Error("block regeneration failed", "error", err)
				return err
			}
		}
	case Levels:
		if s.board.Remaining() == 0 {
			s.clearBoard()
		}
	case invalidMode:
		if s.warnedMode != m.raw {
			s.logger.Error("invalid game mode, skipping mode handling", "mode", m.raw)
			s.warnedMode = m.raw
		}
	}
	return nil
}

// clearBoard records a cleared board and generates a fresh one.
func (s *Simulation) clearBoard() {
	s.clears++
	ev := ClearEvent{Mode: modeName(s.mode), BlocksTotal: s.board.Total(), Tick: s.tick}
	s.NewLevel()
	if s.onClear != nil {
		s.onClear(ev)
	}
}

// NewLevel replaces the board with a freshly generated one. Balls keep
// their positions and velocities.
func (s *Simulation) NewLevel() {
	board, err := NewBoard(s.cfg.Display, s.cfg.Colors.Blocks)
	if err != nil {
		// cfg was validated on the way in.
		s.logger.Error("board generation failed", "error", err)
		return
	}
	s.board = board
	s.logger.Debug("new board", "blocks", board.Total(), "size", fmt.Sprintf("%dx%d", board.Width(), board.Height()))
}

// Redirect points the ball nearest to (x, y) at that point. Coordinates
// are arena-relative pixels. The new velocity is not normalized; the next
// block collision does that. A touch exactly on a ball center is ignored.
func (s *Simulation) Redirect(x, y float64) {
	if !s.geom.Ready() || len(s.balls) == 0 {
		return
	}

	touch := core.V(x, y)
	closest := 0
	best := s.balls[0].Pos().Dist(touch)
	for i := 1; i < len(s.balls); i++ {
		if d := s.balls[i].Pos().Dist(touch); d < best {
			closest, best = i, d
		}
	}
	if best == 0 {
		return
	}

	b := &s.balls[closest]
	b.VX, b.VY = x-b.X, y-b.Y
}

// Configure applies a new configuration. Invalid configurations are
// rejected and the current frame is kept.
func (s *Simulation) Configure(next config.Wallpaper) (config.Change, error) {
	next = next.Clone()
	s.keepValidStyles(&next)

	frame, change, err := ApplyConfig(s.cfg, next, Frame{Board: s.board, Balls: s.balls, Geometry: s.geom}, s.screenW, s.screenH)
	if err != nil {
		return config.ChangeNone, err
	}

	s.cfg = next
	s.board, s.balls, s.geom = frame.Board, frame.Balls, frame.Geometry
	if change.Has(config.ChangeMode) {
		s.mode = ModeFromConfig(next.Game)
		s.warnedMode = ""
	}
	if change.NeedsRebuild() && s.screenW > 0 && !s.geom.Ready() {
		s.logger.Warn("padding leaves no arena, simulation paused", "screen", fmt.Sprintf("%dx%d", s.screenW, s.screenH))
	}
	if change != config.ChangeNone {
		s.logger.Debug("configuration applied", "changed", change.String())
		s.logConfig()
	}
	return change, nil
}

// keepValidStyles replaces unknown render styles with the current ones.
func (s *Simulation) keepValidStyles(next *config.Wallpaper) {
	check := func(name string, value *string, current string) {
		if *value == config.StyleFill || *value == config.StyleOutline {
			return
		}
		s.logger.Error("invalid render style, keeping previous", "setting", name, "value", *value)
		*value = current
	}
	check("block_style", &next.Colors.BlockStyle, s.cfg.Colors.BlockStyle)
	check("ball_style", &next.Colors.BallStyle, s.cfg.Colors.BallStyle)
}

// ApplyConfig rebuilds what a configuration change invalidates. Layout,
// padding, background image and ball changes produce a new board and, when
// the screen size is known, freshly placed balls. Mode, palette and style
// changes leave the frame as it is; existing blocks keep their colors.
func ApplyConfig(old, next config.Wallpaper, prev Frame, screenW, screenH int) (Frame, config.Change, error) {
	if err := next.Validate(); err != nil {
		return prev, config.ChangeNone, err
	}

	change := config.Diff(old, next)
	if !change.NeedsRebuild() {
		return prev, change, nil
	}

	board, err := NewBoard(next.Display, next.Colors.Blocks)
	if err != nil {
		return prev, config.ChangeNone, err
	}

	balls := prev.Balls
	if change.Has(config.ChangeBalls) || len(balls) != next.Game.BallCount {
		balls = make([]Ball, next.Game.BallCount)
	} else {
		balls = append([]Ball(nil), balls...)
	}

	// An unknown or too small screen leaves the geometry unset; the next
	// successful resize places the balls.
	geom, err := NewGeometry(next, screenW, screenH)
	if err == nil {
		placeBalls(balls, next.Display, geom)
	}

	return Frame{Board: board, Balls: balls, Geometry: geom}, change, nil
}

// logConfig logs every setting at debug level.
func (s *Simulation) logConfig() {
	c := s.cfg
	s.logger.Debug("game",
		"balls", c.Game.BallCount,
		"mode", s.mode.String(),
	)
	s.logger.Debug("display",
		"icons", fmt.Sprintf("%dx%d", c.Display.IconCols, c.Display.IconRows),
		"spacing", fmt.Sprintf("%d,%d", c.Display.ColSpacing, c.Display.RowSpacing),
		"padding", fmt.Sprintf("%d,%d,%d,%d", c.Display.Padding.Top, c.Display.Padding.Left, c.Display.Padding.Bottom, c.Display.Padding.Right),
		"widgets", config.FormatWidgets(c.Display.Widgets),
	)
	s.logger.Debug("colors",
		"background", c.Colors.Background.String(),
		"image", c.Colors.BackgroundImage,
		"opacity", c.Colors.BackgroundOpacity,
		"ball", c.Colors.Ball.String(),
		"blocks", len(c.Colors.Blocks),
		"block_style", c.Colors.BlockStyle,
		"ball_style", c.Colors.BallStyle,
	)
}
