// Package tui provides the Bubble Tea integration for the gallows games.
// It handles the terminal UI loop, input mapping, and round orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per second to refresh the round clock.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick per second.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
