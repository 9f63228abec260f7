// Package tui provides the Bubble Tea integration for skyclimb.
// It drives the fixed tick loop, maps keys to actions and hosts the menus.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation step.
type TickMsg time.Time

// tickInterval is the wall time between steps. Rates below 1 fall back to 60.
func tickInterval(tickRate int) time.Duration {
	if tickRate < 1 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next TickMsg.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
