// Package tui provides the Bubble Tea front-end for the dream simulation.
// It handles the terminal UI loop, key mapping, scene drawing and the SSH
// server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDT caps the simulated time of a single tick after a stall.
const maxFrameDT = 0.25

// TickMsg is sent to trigger a simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDT returns the seconds between two ticks, capped at maxFrameDT.
// The first tick has no predecessor and simulates nothing.
func frameDT(prev, now time.Time) float64 {
	if prev.IsZero() || now.Before(prev) {
		return 0
	}
	return min(now.Sub(prev).Seconds(), maxFrameDT)
}
