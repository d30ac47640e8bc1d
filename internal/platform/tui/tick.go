// Package tui provides the Bubble Tea integration for the simulator: a watch
// mode that plays one game move by move, a stored-results browser, and an SSH
// server exposing watch mode remotely.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger the next simulated move.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate (moves per second).
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 4
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
