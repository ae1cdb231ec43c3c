// internal/app/keys.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/panes/internal/errmsg"
	"github.com/llehouerou/panes/internal/keymap"
	"github.com/llehouerou/panes/internal/layout"
	"github.com/llehouerou/panes/internal/units"
)

var handleKeys = map[keymap.Action]struct {
	key   layout.Key
	shift bool
}{
	keymap.ActionMoveLeft:   {layout.KeyLeft, false},
	keymap.ActionMoveRight:  {layout.KeyRight, false},
	keymap.ActionMoveUp:     {layout.KeyUp, false},
	keymap.ActionMoveDown:   {layout.KeyDown, false},
	keymap.ActionJumpLeft:   {layout.KeyLeft, true},
	keymap.ActionJumpRight:  {layout.KeyRight, true},
	keymap.ActionJumpUp:     {layout.KeyUp, true},
	keymap.ActionJumpDown:   {layout.KeyDown, true},
	keymap.ActionHandleHome: {layout.KeyHome, false},
	keymap.ActionHandleEnd:  {layout.KeyEnd, false},
}

// handleKey dispatches a key press through the resolver.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Resolve(msg.String())
	if action == "" {
		return m, nil
	}
	m.ErrorMsg = ""

	switch action {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.ShowHelp = !m.ShowHelp
		return m, nil
	case keymap.ActionNextHandle:
		m.cycleFocus(1)
		return m, nil
	case keymap.ActionPrevHandle:
		m.cycleFocus(-1)
		return m, nil
	case keymap.ActionToggleCollapse:
		if m.Group.HandleCount() > 0 {
			m.Group.ToggleCollapse(m.Focus)
		}
		cmd := m.startFrames()
		return m, cmd
	case keymap.ActionToggleConditional:
		m.toggleConditional()
		cmd := m.startFrames()
		return m, cmd
	case keymap.ActionCollapsePanel, keymap.ActionExpandPanel:
		m.collapseFocused(action == keymap.ActionCollapsePanel)
		cmd := m.startFrames()
		return m, cmd
	case keymap.ActionResetLayout:
		m.resetLayout()
		cmd := m.startFrames()
		return m, cmd
	}

	if k, ok := handleKeys[action]; ok && m.Group.HandleCount() > 0 {
		m.Group.KeyDown(m.Focus, k.key, k.shift)
		cmd := m.startFrames()
		return m, cmd
	}
	return m, nil
}

func (m *Model) cycleFocus(step int) {
	n := m.Group.HandleCount()
	if n == 0 {
		m.Focus = 0
		return
	}
	m.Focus = ((m.Focus+step)%n + n) % n
}

// toggleConditional shows the conditional panels that are hidden and hides
// the ones that are shown.
func (m *Model) toggleConditional() {
	for _, p := range m.Panels {
		if !p.Conditional {
			continue
		}
		if m.Group.HasPanel(p.ID) {
			if err := m.Group.RemovePanel(p.ID); err != nil {
				m.ErrorMsg = errmsg.FormatWith(errmsg.OpPanelHide, p.DisplayTitle(), err)
				return
			}
			m.logger.Info("panel hidden", "panel", p.ID)
			continue
		}
		cfg, err := groupPanel(p, m.logger)
		if err == nil {
			err = m.Group.AddPanel(cfg)
		}
		if err != nil {
			m.ErrorMsg = errmsg.FormatWith(errmsg.OpPanelShow, p.DisplayTitle(), err)
			return
		}
		m.logger.Info("panel shown", "panel", p.ID)
	}
	m.cycleFocus(0)
	// handle count changed the cells left for panels
	m.resizeGroup()
}

// collapseFocused collapses or expands the panel before the focused handle.
func (m *Model) collapseFocused(collapse bool) {
	ids := m.Group.PanelIDs()
	if m.Focus < 0 || m.Focus >= len(ids) {
		return
	}
	id := ids[m.Focus]
	op, apply := errmsg.OpPanelExpand, m.Group.Expand
	if collapse {
		op, apply = errmsg.OpPanelCollapse, m.Group.Collapse
	}
	if err := apply(id); err != nil {
		m.ErrorMsg = errmsg.FormatWith(op, m.Title(id), err)
	}
}

// resetLayout returns every panel to its default size.
func (m *Model) resetLayout() {
	defaults := layout.Normalize(layout.Default(m.Group.Constraints()))
	sizes := make([]units.Size, len(defaults))
	for i, pct := range defaults {
		sizes[i] = units.Pct(pct)
	}
	if err := m.Group.SetLayout(sizes); err != nil {
		m.ErrorMsg = errmsg.Format(errmsg.OpLayoutReset, err)
	}
}
