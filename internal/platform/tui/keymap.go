package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the running wallpaper.
type KeyMap struct {
	Quit     key.Binding
	Pause    key.Binding
	Mode     key.Binding
	MoreBall key.Binding
	LessBall key.Binding
	NewBoard key.Binding
	Help     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Mode, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Mode, k.NewBoard},
		{k.MoreBall, k.LessBall},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "endless/levels"),
		),
		MoreBall: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "add ball"),
		),
		LessBall: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "remove ball"),
		),
		NewBoard: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new board"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}
