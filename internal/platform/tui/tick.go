// Package tui provides the Bubble Tea integration for gamekit. It owns the
// terminal loop that drives the hub: ticks become hub frames, key messages
// become hub key transitions, and the screen buffer becomes styled output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame to advance the hub.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// given rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
