// Package tui provides the Bubble Tea front end for Espresso Rush: the
// terminal loop, keyboard and mouse input, run-over flow (roast, name entry,
// leaderboard) and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Run identifies the run
// that scheduled it so ticks left over from an earlier run are dropped.
type TickMsg struct {
	Run  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick message after a
// frame interval. The next tick is only scheduled once this one is handled.
func tickCmd(tickRate, run int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Run: run, Time: t}
	})
}
