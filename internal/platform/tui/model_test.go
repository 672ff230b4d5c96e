package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/breakout-wallpaper/internal/config"
	"github.com/vovakirdan/breakout-wallpaper/internal/core"
	"github.com/vovakirdan/breakout-wallpaper/internal/storage"
	"github.com/vovakirdan/breakout-wallpaper/internal/wallpaper"
)

func testRuntime() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	return cfg
}

func newTestModel(t *testing.T, cfg config.Wallpaper, store *storage.Store) Model {
	t.Helper()
	sim, err := wallpaper.New(cfg, 42, nil)
	if err != nil {
		t.Fatalf("wallpaper.New() failed: %v", err)
	}
	return NewModel(sim, store, nil, testRuntime())
}

// update feeds msg to m and returns the resulting Model.
func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelResizeMapsToPixels(t *testing.T) {
	m := newTestModel(t, config.DefaultWallpaperConfig(), nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 25})

	if m.screen.Width() != 80 || m.screen.Height() != 24 {
		t.Errorf("screen = %dx%d, expected 80x24 (one status row)", m.screen.Width(), m.screen.Height())
	}
	g := m.sim.Geometry()
	if g.ScreenW != 640 || g.ScreenH != 384 {
		t.Errorf("simulated screen = %dx%d, expected 640x384", g.ScreenW, g.ScreenH)
	}
	if !g.Landscape {
		t.Error("an 80x24 terminal should be landscape")
	}
}

func TestModelTickAndPause(t *testing.T) {
	m := newTestModel(t, config.DefaultWallpaperConfig(), nil)

	// Ticks before the first resize do nothing.
	m = update(t, m, TickMsg{})
	if m.sim.Ticks() != 0 {
		t.Errorf("Ticks() before resize = %d, expected 0", m.sim.Ticks())
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 25})
	m = update(t, m, TickMsg{})
	if m.sim.Ticks() != 1 {
		t.Errorf("Ticks() = %d, expected 1", m.sim.Ticks())
	}

	m = update(t, m, keyMsg("p"))
	if !m.Paused() {
		t.Fatal("p should pause")
	}
	m = update(t, m, TickMsg{})
	if m.sim.Ticks() != 1 {
		t.Errorf("Ticks() while paused = %d, expected 1", m.sim.Ticks())
	}

	m = update(t, m, keyMsg("p"))
	m = update(t, m, TickMsg{})
	if m.sim.Ticks() != 2 {
		t.Errorf("Ticks() after resume = %d, expected 2", m.sim.Ticks())
	}
}

func TestModelKeysChangeSettings(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, config.DefaultWallpaperConfig(), store)
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 25})

	m = update(t, m, keyMsg("m"))
	if _, ok := m.sim.Mode().(wallpaper.Levels); !ok {
		t.Errorf("mode after m = %v, expected levels", m.sim.Mode())
	}
	if v, _ := store.Setting("game.mode"); v != config.ModeLevels {
		t.Errorf("stored game.mode = %q, expected %q", v, config.ModeLevels)
	}

	m = update(t, m, keyMsg("m"))
	if _, ok := m.sim.Mode().(wallpaper.Endless); !ok {
		t.Errorf("mode after second m = %v, expected endless", m.sim.Mode())
	}

	m = update(t, m, keyMsg("+"))
	m = update(t, m, keyMsg("+"))
	if n := len(m.sim.Snapshot().Balls); n != 3 {
		t.Errorf("balls after ++ = %d, expected 3", n)
	}
	if v, _ := store.Setting("game.ballcount"); v != "3" {
		t.Errorf("stored game.ballcount = %q, expected 3", v)
	}

	for range 5 {
		m = update(t, m, keyMsg("-"))
	}
	if n := m.sim.Config().Game.BallCount; n != 1 {
		t.Errorf("ball count after repeated - = %d, expected 1", n)
	}
}

func TestModelNewBoardKey(t *testing.T) {
	m := newTestModel(t, config.DefaultWallpaperConfig(), nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 25})

	for range 200 {
		m = update(t, m, TickMsg{})
	}
	m = update(t, m, keyMsg("r"))

	snap := m.sim.Snapshot()
	if snap.Remaining != snap.Total {
		t.Errorf("after r: Remaining/Total = %d/%d, expected a full board", snap.Remaining, snap.Total)
	}
}

func TestModelMouseRedirects(t *testing.T) {
	cfg := config.DefaultWallpaperConfig()
	cfg.Game.BallCount = 2
	m := newTestModel(t, cfg, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 25})

	col, row := 70, 20
	px, py := m.pixelCenter(col, row)
	touch := core.V(px, py)

	balls := m.sim.Snapshot().Balls
	pos := func(b wallpaper.BallView) core.Vec { return core.V(b.X, b.Y) }
	nearest := 0
	for i := range balls {
		if pos(balls[i]).Dist(touch) < pos(balls[nearest]).Dist(touch) {
			nearest = i
		}
	}
	want := touch.Sub(pos(balls[nearest]))

	m = update(t, m, tea.MouseMsg{X: col, Y: row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	b := m.sim.Snapshot().Balls[nearest]
	if got := core.V(b.VX, b.VY); got != want {
		t.Errorf("velocity after click = %v, expected %v", got, want)
	}

	// Motion and clicks on the status bar are ignored.
	before := m.sim.Snapshot().Balls
	m = update(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionMotion})
	m = update(t, m, tea.MouseMsg{X: 1, Y: 24, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	after := m.sim.Snapshot().Balls
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("ball %d changed on an ignored mouse event", i)
		}
	}
}

func TestModelNotices(t *testing.T) {
	t.Run("arena too small", func(t *testing.T) {
		cfg := config.DefaultWallpaperConfig()
		cfg.Display.Padding.Top = 5000
		m := newTestModel(t, cfg, nil)
		m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 25})
		if m.Notice() != noticeTooSmall {
			t.Errorf("Notice() = %q, expected %q", m.Notice(), noticeTooSmall)
		}
	})

	t.Run("missing background image", func(t *testing.T) {
		cfg := config.DefaultWallpaperConfig()
		cfg.Colors.BackgroundImage = filepath.Join(t.TempDir(), "missing.png")
		m := newTestModel(t, cfg, nil)
		m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 25})
		if m.Notice() != noticeNoImage {
			t.Errorf("Notice() = %q, expected %q", m.Notice(), noticeNoImage)
		}
		if m.backdrop != nil {
			t.Error("backdrop should be empty when the image fails to load")
		}
		if !m.sim.Geometry().Ready() {
			t.Error("a broken image must not stop the simulation")
		}
	})
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, config.DefaultWallpaperConfig(), nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})

	view := m.View()
	if lines := strings.Count(view, "\n") + 1; lines != 12 {
		t.Errorf("View() has %d lines, expected 12", lines)
	}
	if !strings.Contains(view, "endless") {
		t.Error("status bar should name the mode")
	}

	m = update(t, m, keyMsg("?"))
	view = m.View()
	if lines := strings.Count(view, "\n") + 1; lines != 12 {
		t.Errorf("View() with full help has %d lines, expected 12", lines)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestRenderScreenRuns(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.Fill(' ', core.ColorBlack)
	s.Set(0, 0, 'a', core.ColorRed)
	s.Set(1, 0, 'b', core.ColorRed)
	s.Set(2, 0, 'c', core.ColorBlue)

	styles := make(styleCache)
	out := RenderScreen(s, styles)

	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() = %q, expected two lines", out)
	}
	if !strings.Contains(out, "ab") {
		t.Errorf("RenderScreen() = %q, expected the red run to stay together", out)
	}
	// red/black, blue/black, default/black
	if len(styles) != 3 {
		t.Errorf("style cache has %d entries, expected 3", len(styles))
	}
}
