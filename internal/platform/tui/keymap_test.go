package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termsnake/internal/config"
	"github.com/vovakirdan/termsnake/internal/engine"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{}
}

func TestDirectionFor(t *testing.T) {
	km := NewKeyMap(config.KeysSection{})

	tests := []struct {
		key  string
		want engine.Direction
	}{
		{"up", engine.DirUp},
		{"w", engine.DirUp},
		{"k", engine.DirUp},
		{"down", engine.DirDown},
		{"s", engine.DirDown},
		{"j", engine.DirDown},
		{"left", engine.DirLeft},
		{"a", engine.DirLeft},
		{"h", engine.DirLeft},
		{"right", engine.DirRight},
		{"d", engine.DirRight},
		{"l", engine.DirRight},
	}

	for _, tc := range tests {
		dir, ok := km.DirectionFor(keyMsg(tc.key))
		if !ok {
			t.Errorf("DirectionFor(%q) not recognized", tc.key)
			continue
		}
		if dir != tc.want {
			t.Errorf("DirectionFor(%q) = %v, expected %v", tc.key, dir, tc.want)
		}
	}

	// Non-direction keys map to nothing.
	if _, ok := km.DirectionFor(keyMsg("x")); ok {
		t.Error("DirectionFor(\"x\") should not be recognized")
	}
}

func TestConfiguredPauseKey(t *testing.T) {
	km := NewKeyMap(config.KeysSection{Pause: "z"})

	if got := km.Pause.Keys(); len(got) == 0 || got[0] != "z" {
		t.Errorf("pause keys = %v, expected configured z first", got)
	}
}

func TestSaveGameKeyIsBoundButInert(t *testing.T) {
	km := NewKeyMap(config.KeysSection{SaveGame: "ctrl+s"})

	keys := km.SaveGame.Keys()
	if len(keys) != 1 || keys[0] != "ctrl+s" {
		t.Errorf("save-game keys = %v, expected [ctrl+s]", keys)
	}
	// No help text: the binding exists only to swallow the key.
	if km.SaveGame.Help().Desc != "" {
		t.Error("inert save-game binding should not advertise help")
	}
}
