package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/breakout-wallpaper/internal/config"
	"github.com/vovakirdan/breakout-wallpaper/internal/storage"
)

// Clears view layout constants
const (
	maxClears     = 200 // Max clears to load
	tableMinWidth = 40  // Below this the date column shrinks
)

// clearFilters are the mode tabs of the clears view. The empty filter shows
// every mode.
var clearFilters = []string{"", config.ModeEndless, config.ModeLevels}

// ClearsKeyMap defines the key bindings for the clears view.
type ClearsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ClearsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ClearsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Next, k.Prev, k.Quit},
	}
}

// DefaultClearsKeyMap returns default key bindings.
func DefaultClearsKeyMap() ClearsKeyMap {
	return ClearsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ClearsModel is the Bubble Tea model for the board clear history.
type ClearsModel struct {
	store    *storage.Store
	all      []storage.ClearEntry
	shown    []storage.ClearEntry
	filter   int // Index into clearFilters
	table    table.Model
	help     help.Model
	keys     ClearsKeyMap
	width    int
	height   int
	quitting bool
}

// NewClearsModel creates a clears view and loads the history from store.
func NewClearsModel(store *storage.Store, width, height int) ClearsModel {
	m := ClearsModel{
		store:  store,
		keys:   DefaultClearsKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ClearsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Mode", Width: 8},
		{Title: "Blocks", Width: 7},
		{Title: "Tick", Width: 10},
		{Title: "Date", Width: 14},
	}

	tableWidth := m.width - 4 // Margins
	if tableWidth < tableMinWidth {
		columns[4].Width = 12
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the history from the store.
func (m *ClearsModel) load() {
	m.all = nil
	if m.store != nil {
		if entries, err := m.store.RecentClears(maxClears); err == nil {
			m.all = entries
		}
	}
	m.applyFilter()
}

// applyFilter narrows the loaded history to the selected mode.
func (m *ClearsModel) applyFilter() {
	mode := clearFilters[m.filter]
	m.shown = m.shown[:0]
	for _, e := range m.all {
		if mode == "" || e.Mode == mode {
			m.shown = append(m.shown, e)
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the filtered clears.
func (m *ClearsModel) updateTableRows() {
	rows := make([]table.Row, len(m.shown))
	for i, e := range m.shown {
		rows[i] = table.Row{
			fmt.Sprintf("%d", e.ID),
			e.Mode,
			fmt.Sprintf("%d", e.BlocksTotal),
			fmt.Sprintf("%d", e.Tick),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the clears model.
func (m ClearsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the clears view.
func (m ClearsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			m.filter = (m.filter + 1) % len(clearFilters)
			m.applyFilter()
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.filter = (m.filter + len(clearFilters) - 1) % len(clearFilters)
			m.applyFilter()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Scrolling and everything else goes to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the clears view.
func (m ClearsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText(fmt.Sprintf("BOARD CLEARS - %d", len(m.shown)), m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders the mode filter tabs.
func (m ClearsModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(clearFilters))
	for i, f := range clearFilters {
		name := f
		if name == "" {
			name = "all"
		}
		if i == m.filter {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(" " + name + " ")
		}
	}
	return strings.Join(tabs, " ")
}

// renderTableContent renders the table or empty message.
func (m ClearsModel) renderTableContent() string {
	if len(m.shown) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No boards cleared yet.\nRun the wallpaper in levels mode to clear one!")
	}

	return m.table.View()
}

// Shown returns the clears visible under the current filter.
func (m ClearsModel) Shown() []storage.ClearEntry {
	return m.shown
}

// centerText pads text so it is centered in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunClears runs the clears view.
func RunClears(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewClearsModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
