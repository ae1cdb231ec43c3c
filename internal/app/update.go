// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/panes/internal/errmsg"
	uilayout "github.com/llehouerou/panes/internal/ui/layout"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case ResizeTimeoutMsg:
		if msg.Version != m.resizeVersion {
			return m, nil
		}
		m.applySize(m.pendingWidth, m.pendingHeight)
		cmd := m.startFrames()
		return m, cmd

	case FrameMsg:
		if m.Group.Tick() {
			return m, FrameCmd()
		}
		m.animating = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.BlurMsg:
		m.Group.EndDrag()
		return m, nil
	}

	return m, nil
}

// handleWindowSize applies the first size right away and debounces the
// rest, so a terminal being dragged does not revalidate on every step.
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if m.Width == 0 || m.resizeDebounce <= 0 {
		m.applySize(msg.Width, msg.Height)
		cmd := m.startFrames()
		return m, cmd
	}
	m.pendingWidth = msg.Width
	m.pendingHeight = msg.Height
	m.resizeVersion++
	return m, ResizeTimeoutCmd(m.resizeDebounce, m.resizeVersion)
}

func (m *Model) applySize(width, height int) {
	m.Width = width
	m.Height = height
	m.help.Width = width
	m.resizeGroup()
}

// resizeGroup measures the group along its axis, minus the handle cells.
func (m *Model) resizeGroup() {
	if m.Width == 0 {
		return
	}
	area := uilayout.ContentArea(m.Width, m.Height)
	axis := area.Width
	if m.vertical() {
		axis = area.Height
	}
	size := uilayout.GroupSize(int(axis), len(m.Group.PanelIDs()))
	if err := m.Group.SetSize(float64(size)); err != nil {
		m.logger.Error("group resize failed", "size", size, "err", err)
		m.ErrorMsg = errmsg.Format(errmsg.OpGroupResize, err)
	}
}

// startFrames schedules smoothing frames when the displayed layout trails
// the logical one.
func (m *Model) startFrames() tea.Cmd {
	if m.animating || !m.Group.Animating() {
		return nil
	}
	m.animating = true
	return FrameCmd()
}
