package tui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breakout-wallpaper/internal/background"
	"github.com/vovakirdan/breakout-wallpaper/internal/config"
	"github.com/vovakirdan/breakout-wallpaper/internal/core"
	"github.com/vovakirdan/breakout-wallpaper/internal/storage"
	"github.com/vovakirdan/breakout-wallpaper/internal/wallpaper"
)

// maxBalls caps the ball count reachable from the keyboard.
const maxBalls = 16

// statusRows is the number of terminal rows below the wallpaper.
const statusRows = 1

// Status bar notices.
const (
	noticeTooSmall = "window too small for the configured padding"
	noticeNoImage  = "background image unavailable"
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// Model is the Bubble Tea model hosting a running wallpaper.
type Model struct {
	sim      *wallpaper.Simulation
	store    *storage.Store
	logger   *log.Logger
	screen   *core.Screen
	styles   styleCache
	config   core.RuntimeConfig
	backdrop *background.Backdrop
	keys     KeyMap
	help     help.Model
	paused   bool
	quitting bool
	notice   string // Last user-visible problem, shown in the status bar
}

// NewModel creates a Bubble Tea model for sim. store may be nil, in which
// case nothing is persisted.
func NewModel(sim *wallpaper.Simulation, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		sim:    sim,
		store:  store,
		logger: logger,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-statusRows, 0)),
		styles: make(styleCache),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}

	if store != nil {
		sim.OnClear(func(ev wallpaper.ClearEvent) {
			if _, err := store.RecordClear(ev.Mode, ev.BlocksTotal, ev.Tick); err != nil {
				logger.Warn("failed to record board clear", "error", err)
			}
		})
	}

	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.NewBoard):
		m.sim.NewLevel()

	case key.Matches(msg, m.keys.Mode):
		mode := config.ModeLevels
		if _, ok := m.sim.Mode().(wallpaper.Levels); ok {
			mode = config.ModeEndless
		}
		m.setSetting("game.mode", mode)

	case key.Matches(msg, m.keys.MoreBall):
		if n := m.sim.Config().Game.BallCount; n < maxBalls {
			m.setSetting("game.ballcount", strconv.Itoa(n+1))
		}

	case key.Matches(msg, m.keys.LessBall):
		if n := m.sim.Config().Game.BallCount; n > 1 {
			m.setSetting("game.ballcount", strconv.Itoa(n-1))
		}
	}

	return m, nil
}

// setSetting applies one key-value setting to the running simulation and
// persists it when a store is attached.
func (m *Model) setSetting(name, value string) {
	next := m.sim.Config()
	if err := config.ApplyOverride(&next, name, value); err != nil {
		m.notice = err.Error()
		return
	}
	change, err := m.sim.Configure(next)
	if err != nil {
		m.notice = err.Error()
		m.logger.Warn("setting rejected", "key", name, "value", value, "error", err)
		return
	}
	m.notice = ""

	if m.store != nil {
		if err := m.store.SetSetting(name, value); err != nil {
			m.logger.Warn("failed to save setting", "key", name, "error", err)
		}
	}
	if change.Has(config.ChangeGraphics) || change.Has(config.ChangePalette) || change.Has(config.ChangeStyle) {
		m.loadBackdrop()
	}
}

// handleMouse turns a left click into a touch on the arena.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y >= m.screen.Height() {
		return m, nil // status bar
	}

	x, y := m.pixelCenter(msg.X, msg.Y)
	g := m.sim.Geometry()
	m.sim.Redirect(x-float64(g.OffsetX), y-float64(g.OffsetY))
	return m, nil
}

// pixelCenter returns the simulated pixel at the middle of a character.
func (m Model) pixelCenter(col, row int) (float64, float64) {
	scale := float64(max(m.config.Scale, 1))
	return (float64(col) + 0.5) * scale, (float64(row) + 0.5) * scale * 2
}

// handleResize maps the terminal size into the simulation's pixel space.
func (m Model) handleResize(width, height int) (tea.Model, tea.Cmd) {
	m.config.ScreenW = width
	m.config.ScreenH = height
	m.screen.Resize(width, max(height-statusRows, 0))
	m.help.Width = width

	pw, ph := m.config.PixelSize(m.screen.Width(), m.screen.Height())
	err := m.sim.Resize(pw, ph)
	switch {
	case errors.Is(err, wallpaper.ErrArenaTooSmall):
		m.notice = noticeTooSmall
	case err == nil && m.notice == noticeTooSmall:
		m.notice = ""
	}
	if err != nil {
		m.logger.Debug("resize skipped", "error", err)
	}

	m.loadBackdrop()
	return m, nil
}

// loadBackdrop rebuilds the background image for the current size.
// A missing or broken image leaves a plain background and a notice.
func (m *Model) loadBackdrop() {
	m.backdrop = nil
	c := m.sim.Config().Colors
	if c.BackgroundImage == "" || m.screen.Width() == 0 || m.screen.Height() == 0 {
		return
	}

	pw, ph := m.config.PixelSize(m.screen.Width(), m.screen.Height())
	bd, err := background.Build(c.BackgroundImage, c.Background, c.BackgroundOpacity, pw, ph, m.screen.Width(), m.screen.Height())
	if err != nil {
		m.notice = noticeNoImage
		m.logger.Warn("failed to load background image", "path", c.BackgroundImage, "error", err)
		return
	}
	m.backdrop = bd
	if m.notice == noticeNoImage {
		m.notice = ""
	}
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.paused {
		if err := m.sim.Tick(); err != nil {
			m.logger.Error("tick", "error", err)
		}
	}
	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	style := wallpaper.StyleFromConfig(m.sim.Config().Colors)
	if m.backdrop != nil {
		style.Backdrop = m.backdrop
	}
	snap := m.sim.Snapshot()
	wallpaper.Render(m.screen, snap, style)

	frame := RenderScreen(m.screen, m.styles)
	status := m.statusLine(snap)

	// The full help is taller than the status row; it covers the bottom of
	// the wallpaper instead of scrolling the terminal.
	if extra := strings.Count(status, "\n"); extra > 0 {
		lines := strings.Split(frame, "\n")
		frame = strings.Join(lines[:max(len(lines)-extra, 0)], "\n")
	}
	return frame + "\n" + status
}

// statusLine summarizes the simulation, or shows the help when toggled.
func (m Model) statusLine(snap wallpaper.Snapshot) string {
	if m.help.ShowAll {
		return m.help.View(m.keys)
	}

	line := statusStyle.Render(fmt.Sprintf("%s  blocks %d/%d  clears %d  balls %d  ",
		snap.Mode, snap.Remaining, snap.Total, snap.Clears, len(snap.Balls)))
	if m.paused {
		line += pausedStyle.Render("PAUSED ")
	}
	if m.notice != "" {
		line += noticeStyle.Render(m.notice + " ")
	}
	return line + m.help.View(m.keys)
}

// Paused reports whether ticks are suspended.
func (m Model) Paused() bool {
	return m.paused
}

// Notice returns the message currently shown in the status bar.
func (m Model) Notice() string {
	return m.notice
}

// Run starts the Bubble Tea program for sim.
func Run(sim *wallpaper.Simulation, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(sim, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks redirect balls
	)

	_, err := p.Run()
	return err
}
