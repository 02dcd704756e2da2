// Package tui provides the Bubble Tea integration for the solitaire
// platform. It handles the terminal UI loop, input mapping, and the
// menu-to-game session flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once a second to refresh the elapsed-time display.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command for the next clock tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
