// Package tui provides the Bubble Tea presentation layer for termsnake:
// input mapping, board rendering, and SSH serving. It consumes engine
// snapshots and issues engine commands; no game logic lives here.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termsnake/internal/config"
	"github.com/vovakirdan/termsnake/internal/engine"
)

// KeyMap defines the key bindings for a game session.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Pause    key.Binding
	Restart  key.Binding
	Quit     key.Binding
	SaveGame key.Binding // Accepted but inert; see config.KeysSection
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Restart, k.Quit},
	}
}

// NewKeyMap builds the session bindings, honoring configured keys.
func NewKeyMap(keys config.KeysSection) KeyMap {
	pause := keys.Pause
	if pause == "" {
		pause = "p"
	}
	restart := keys.Restart
	if restart == "" {
		restart = "r"
	}

	km := KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Pause: key.NewBinding(
			key.WithKeys(pause, "esc"),
			key.WithHelp(pause, "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys(restart),
			key.WithHelp(restart, "new game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}

	// The save-game binding is recognized so the key does not leak
	// through as input, but no save behavior is attached.
	if keys.SaveGame != "" {
		km.SaveGame = key.NewBinding(key.WithKeys(keys.SaveGame))
	}

	return km
}

// DirectionFor maps a key message to an engine direction.
func (k KeyMap) DirectionFor(msg tea.KeyMsg) (engine.Direction, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return engine.DirUp, true
	case key.Matches(msg, k.Down):
		return engine.DirDown, true
	case key.Matches(msg, k.Left):
		return engine.DirLeft, true
	case key.Matches(msg, k.Right):
		return engine.DirRight, true
	}
	return 0, false
}
