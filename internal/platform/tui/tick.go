// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// logger receives platform diagnostics. Local play writes to the alt screen,
// so it stays silent unless the CLI routes it to a file.
var logger = log.New(io.Discard)

// SetLogger sets the logger used by game and menu models.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// TickMsg is sent to trigger a game simulation tick.
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
