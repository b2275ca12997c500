package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termsnake/internal/config"
	"github.com/vovakirdan/termsnake/internal/engine"
	"github.com/vovakirdan/termsnake/internal/storage"
)

// SnapshotMsg delivers an engine snapshot to the Bubble Tea update loop.
type SnapshotMsg engine.Snapshot

// Model is the Bubble Tea model for one game session. The engine loop
// runs on its own goroutine and publishes snapshots into a channel; the
// model forwards key presses as engine commands and only renders.
type Model struct {
	loop  *engine.Loop
	store *storage.Store
	keys  KeyMap
	help  help.Model

	snaps     chan engine.Snapshot
	snap      engine.Snapshot
	dimension int

	width      int
	height     int
	quitting   bool
	scoreSaved bool
}

// NewModel wires a model around a fresh engine session.
func NewModel(eng *engine.Engine, store *storage.Store, keys config.KeysSection) Model {
	loop := engine.NewLoop(eng)
	snaps := make(chan engine.Snapshot, 64)
	loop.OnSnapshot(func(s engine.Snapshot) {
		// Never block the loop goroutine: shed the oldest snapshot
		// when the renderer falls behind.
		for {
			select {
			case snaps <- s:
				return
			default:
				select {
				case <-snaps:
				default:
				}
			}
		}
	})

	h := help.New()
	h.ShowAll = false

	return Model{
		loop:      loop,
		store:     store,
		keys:      NewKeyMap(keys),
		help:      h,
		snaps:     snaps,
		snap:      eng.Snapshot(),
		dimension: eng.Config().Dimension,
	}
}

// waitForSnapshot blocks until the loop publishes the next snapshot.
func waitForSnapshot(snaps chan engine.Snapshot) tea.Cmd {
	return func() tea.Msg {
		return SnapshotMsg(<-snaps)
	}
}

// Init starts listening for snapshots. The session stays Idle until the
// first direction key arms the loop.
func (m Model) Init() tea.Cmd {
	return waitForSnapshot(m.snaps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case SnapshotMsg:
		return m.handleSnapshot(engine.Snapshot(msg))
	}

	return m, nil
}

// handleKey forwards input to the engine loop as commands.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.loop.Stop()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.loop.TogglePause()
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.scoreSaved = false
		m.loop.NewGame(time.Now().UnixNano())
		return m, nil

	case key.Matches(msg, m.keys.SaveGame):
		// Recognized but inert: the save-game binding carries no
		// persistence behavior.
		return m, nil
	}

	if dir, ok := m.keys.DirectionFor(msg); ok {
		if m.snap.State == engine.StateIdle {
			m.loop.Start()
		}
		m.loop.SetDirection(dir)
	}

	return m, nil
}

// handleSnapshot stores the latest view and persists finished games.
func (m Model) handleSnapshot(snap engine.Snapshot) (tea.Model, tea.Cmd) {
	m.snap = snap

	if snap.State == engine.StateOver && !m.scoreSaved {
		m.scoreSaved = true
		if m.store != nil && snap.Score > 0 {
			//nolint:errcheck // Best-effort save, the session continues regardless
			m.store.SaveScore(storage.ScoreEntry{
				Score:     snap.Score,
				SnakeLen:  len(snap.Snake),
				Dimension: m.dimension,
				Won:       snap.Won,
			})
		}
	}

	return m, waitForSnapshot(m.snaps)
}

// View renders the current snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderSnapshot(m.snap, m.dimension, m.width, m.height, m.help.View(m.keys))
}

// Run starts a local Bubble Tea program for the given session.
func Run(eng *engine.Engine, store *storage.Store, keys config.KeysSection) error {
	model := NewModel(eng, store, keys)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()

	model.loop.Stop()
	return err
}
