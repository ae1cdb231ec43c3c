// internal/app/mouse.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/panes/internal/geometry"
	uilayout "github.com/llehouerou/panes/internal/ui/layout"
)

// handleMouse routes presses on handles to drag sessions.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		// a press during a session means its release was lost
		m.Group.EndDrag()
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		handle := m.handleAt(msg.X, msg.Y)
		if handle < 0 {
			return m, nil
		}
		m.Focus = handle
		m.Group.StartDrag(handle, m.axisPos(msg.X, msg.Y))
		return m, nil

	case tea.MouseActionMotion:
		if _, ok := m.Group.Dragging(); !ok {
			return m, nil
		}
		m.Group.Drag(m.axisPos(msg.X, msg.Y))
		cmd := m.startFrames()
		return m, cmd

	case tea.MouseActionRelease:
		m.Group.EndDrag()
	}
	return m, nil
}

// handleAt returns the handle under the cell at x, y, or -1. The help
// overlay occludes the handles beneath it.
func (m Model) handleAt(x, y int) int {
	var overlays []geometry.Rect
	if r, ok := m.helpRect(); ok {
		overlays = append(overlays, r)
	}
	return geometry.HitTest(m.placement().Handles, float64(x)+0.5, float64(y)+0.5, uilayout.HandleHitMargin, overlays)
}

// axisPos returns the pointer position along the group's axis, relative to
// the content area.
func (m Model) axisPos(x, y int) float64 {
	area := uilayout.ContentArea(m.Width, m.Height)
	if m.vertical() {
		return float64(y) - area.Y
	}
	return float64(x) - area.X
}
