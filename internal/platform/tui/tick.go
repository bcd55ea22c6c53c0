// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and screen routing.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen identifies the game the tick was scheduled for; ticks for a
// replaced game are dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

var generations atomic.Uint64

// nextGen returns a generation number unique within the process.
func nextGen() uint64 {
	return generations.Add(1)
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(interval time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// tickNow returns a command that sends a tick immediately.
func tickNow(gen uint64) tea.Cmd {
	return func() tea.Msg {
		return TickMsg{Gen: gen, Time: time.Now()}
	}
}
