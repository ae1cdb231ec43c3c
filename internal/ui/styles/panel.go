package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the border style of a panel.
func PanelStyle(focused bool) lipgloss.Style {
	t := T()
	color := t.Border
	if focused {
		color = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(color)
}

// Handle glyphs for each group axis.
const (
	HandleGlyphHorizontal = "│"
	HandleGlyphVertical   = "─"
	HandleGripHorizontal  = "┃"
	HandleGripVertical    = "━"
)

// HandleStyle picks the style for a handle's state.
func HandleStyle(focused, dragging, disabled bool) lipgloss.Style {
	s := T().S()
	switch {
	case disabled:
		return s.HandleDisabled
	case dragging:
		return s.HandleDragging
	case focused:
		return s.HandleFocused
	default:
		return s.Handle
	}
}
