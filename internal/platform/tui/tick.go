// Package tui provides the Bubble Tea host for the shape engine.
// It feeds ticks and key presses into the engine and displays the
// framebuffer as half-block cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger an engine tick.
type TickMsg time.Time

// FrameMsg reports that the engine finished a redraw.
type FrameMsg struct{}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitForFrame blocks until the engine signals a finished frame.
func waitForFrame(frames <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-frames; !ok {
			return nil
		}
		return FrameMsg{}
	}
}
