// Package tui runs the game in a terminal with Bubble Tea.
// It owns the tick loop, maps keys and mouse to input frames and rasterizes
// draw calls into colored character cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick one simulation step from now.
func tickCmd(step time.Duration) tea.Cmd {
	return tea.Tick(step, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
