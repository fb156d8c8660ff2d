package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shapemotion/internal/core"
)

// KeyMap defines the key bindings while a scene runs.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Screenshot, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
// Left and right stand in for the board's S1 and S2 buttons.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h", "1"),
			key.WithHelp("←/a", "left (S1)"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l", "2"),
			key.WithHelp("→/d", "right (S2)"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Buttons translates a key message to the board buttons it presses.
func (k KeyMap) Buttons(msg tea.KeyMsg) core.Buttons {
	switch {
	case key.Matches(msg, k.Left):
		return core.ButtonLeft
	case key.Matches(msg, k.Right):
		return core.ButtonRight
	}
	return 0
}
