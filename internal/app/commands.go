// internal/app/commands.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/panes/internal/smoothing"
)

// ResizeTimeoutCmd returns a command that sends ResizeTimeoutMsg after delay.
func ResizeTimeoutCmd(delay time.Duration, version int) tea.Cmd {
	return tea.Tick(delay, func(_ time.Time) tea.Msg {
		return ResizeTimeoutMsg{Version: version}
	})
}

// FrameCmd returns a command that sends FrameMsg after one frame.
func FrameCmd() tea.Cmd {
	return tea.Tick(smoothing.FrameInterval, func(_ time.Time) tea.Msg {
		return FrameMsg{}
	})
}
