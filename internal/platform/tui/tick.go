// Package tui provides the Bubble Tea host for the game.
// It handles the terminal UI loop, input mapping, and frame timing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameClock turns tick timestamps into frame deltas.
// The first frame has a zero delta.
type frameClock struct {
	last time.Time
}

// Advance returns the time since the previous call.
func (c *frameClock) Advance(now time.Time) time.Duration {
	if c.last.IsZero() || now.Before(c.last) {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last)
	c.last = now
	return dt
}

// Reset forgets the previous frame, so the next delta is zero.
func (c *frameClock) Reset() {
	c.last = time.Time{}
}
