// Package tui runs a simulation inside a Bubble Tea program.
// It maps keys to actions, steps the game on a fixed delay and draws frames.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// holdFinalFrame is how long the last frame stays up after a game ends.
const holdFinalFrame = time.Second

// TickMsg is sent to trigger a simulation step.
type TickMsg time.Time

// doneMsg ends the program once the final frame has been shown.
type doneMsg struct{}

// tickCmd schedules the next step after the game's fixed delay.
func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// doneCmd quits after the final frame has been held.
func doneCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return doneMsg{}
	})
}
