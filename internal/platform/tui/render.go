package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termsnake/internal/engine"
)

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	headStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	bodyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	foodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	hudStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	overlayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true)
)

// Each board cell renders as two terminal columns to roughly square the
// aspect ratio.
const (
	cellEmpty = "  "
	cellHead  = "@@"
	cellBody  = "oo"
	cellFood  = "**"
)

// RenderSnapshot draws the board, HUD, and any state overlay for the
// given snapshot, centered in the available area.
func RenderSnapshot(snap engine.Snapshot, dimension, width, height int, helpView string) string {
	occupied := make(map[engine.Coord]string, len(snap.Snake)+1)
	for i, seg := range snap.Snake {
		if i == 0 {
			occupied[seg] = headStyle.Render(cellHead)
		} else {
			occupied[seg] = bodyStyle.Render(cellBody)
		}
	}
	if snap.Food.X >= 0 && snap.Food.Y >= 0 {
		occupied[snap.Food] = foodStyle.Render(cellFood)
	}

	var rows []string
	for y := 0; y < dimension; y++ {
		var row strings.Builder
		for x := 0; x < dimension; x++ {
			if cell, ok := occupied[engine.Coord{X: x, Y: y}]; ok {
				row.WriteString(cell)
			} else {
				row.WriteString(cellEmpty)
			}
		}
		rows = append(rows, row.String())
	}

	board := boardStyle.Render(strings.Join(rows, "\n"))
	hud := hudStyle.Render(renderHUD(snap))

	sections := []string{hud, board}
	if msg := overlayMessage(snap); msg != "" {
		sections = append(sections, overlayStyle.Render(msg))
	}
	if helpView != "" {
		sections = append(sections, helpView)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)

	if width > 0 && height > 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// renderHUD builds the one-line status bar above the board.
func renderHUD(snap engine.Snapshot) string {
	return fmt.Sprintf("score %d   food %d   speed %.0fms   %s",
		snap.Score, snap.FoodEaten, snap.SpeedMs, snap.State)
}

// overlayMessage returns the message for non-running states.
func overlayMessage(snap engine.Snapshot) string {
	switch {
	case snap.Won:
		return fmt.Sprintf("You win! The board is full — final score %d. Press r for a new game.", snap.Score)
	case snap.State == engine.StateOver:
		return fmt.Sprintf("Game over — final score %d. Press r for a new game.", snap.Score)
	case snap.State == engine.StatePaused:
		return "Paused"
	case snap.State == engine.StateIdle:
		return "Press any direction key to start"
	}
	return ""
}
