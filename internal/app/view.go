// internal/app/view.go
package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/panes/internal/geometry"
	uilayout "github.com/llehouerou/panes/internal/ui/layout"
	"github.com/llehouerou/panes/internal/ui/render"
	"github.com/llehouerou/panes/internal/ui/styles"
	"github.com/llehouerou/panes/internal/units"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 {
		return ""
	}

	body := m.renderGroup()
	if m.ShowHelp {
		body = m.overlayHelp(body)
	}

	lines := []string{m.renderHeader()}
	lines = append(lines, body...)
	lines = append(lines, m.renderStatus())
	lines = append(lines, render.Fit(m.help.View(m.helpKeys), m.Width))
	return strings.Join(lines, "\n")
}

func (m Model) placement() uilayout.Placement {
	area := uilayout.ContentArea(m.Width, m.Height)
	axis := area.Width
	if m.vertical() {
		axis = area.Height
	}
	total := uilayout.GroupSize(int(axis), len(m.Group.PanelIDs()))
	cells := uilayout.Cells(m.Group.Displayed(), total)
	return uilayout.Place(cells, m.vertical(), area)
}

func pctLabel(pct float64) string {
	return humanize.FtoaWithDigits(pct, 1) + "%"
}

func (m Model) renderHeader() string {
	s := styles.T().S()
	left := styles.GradientTitle("panes") + " " + s.Muted.Render(m.Group.ID())

	ids := m.Group.PanelIDs()
	sizes := m.Group.Layout()
	parts := make([]string, 0, len(ids))
	for i, id := range ids {
		if i < len(sizes) {
			parts = append(parts, m.Title(id)+" "+pctLabel(sizes[i]))
		}
	}
	return render.Row(left, s.Subtle.Render(strings.Join(parts, "  ")), m.Width)
}

// renderGroup draws panels and handles, returning exactly ContentHeight lines.
func (m Model) renderGroup() []string {
	height := uilayout.ContentHeight(m.Height)
	p := m.placement()
	if len(p.Panels) == 0 {
		msg := "no layout yet"
		if len(m.Group.PanelIDs()) == 0 {
			msg = "no panels"
		}
		return render.Block([]string{styles.T().S().Muted.Render(render.Center(msg, m.Width))}, m.Width, height)
	}

	ids := m.Group.PanelIDs()
	dragHandle, dragging := m.Group.Dragging()
	var blocks []string
	for i, r := range p.Panels {
		if r.Width > 0 && r.Height > 0 {
			blocks = append(blocks, m.renderPanel(ids[i], i, int(r.Width), int(r.Height)))
		}
		if i < len(p.Handles) {
			h := p.Handles[i]
			blocks = append(blocks, m.renderHandle(i, int(h.Width), int(h.Height), dragging && dragHandle == i))
		}
	}

	var joined string
	if m.vertical() {
		joined = lipgloss.JoinVertical(lipgloss.Left, blocks...)
	} else {
		joined = lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
	}
	return render.Block(strings.Split(joined, "\n"), m.Width, height)
}

func (m Model) renderPanel(id string, index, width, height int) string {
	s := styles.T().S()
	collapsed := m.Group.IsCollapsed(id)
	if width < 3 || height < 3 {
		label := ""
		if collapsed {
			label = "·"
		}
		return strings.Join(render.Block([]string{s.Collapsed.Render(label)}, width, height), "\n")
	}

	inner := width - 2
	lines := []string{s.Title.Render(render.Truncate(m.Title(id), inner))}
	if collapsed {
		lines = append(lines, s.Collapsed.Render(render.Truncate("collapsed", inner)))
	} else {
		label := m.sizeLabel(id)
		lines = append(lines, s.Muted.Render(render.Truncate(label, inner)))
	}
	body := strings.Join(render.Block(lines, inner, height-2), "\n")
	return styles.PanelStyle(index == m.Focus).Render(body)
}

func (m Model) sizeLabel(id string) string {
	pct, err := m.Group.Size(id, units.Percent)
	if err != nil {
		return ""
	}
	label := pctLabel(pct.Value)
	if px, err := m.Group.Size(id, units.Pixels); err == nil {
		label += " · " + humanize.FtoaWithDigits(px.Value, 0) + " cells"
	}
	return label
}

func (m Model) renderHandle(index, width, height int, dragging bool) string {
	st := styles.HandleStyle(index == m.Focus, dragging, m.Group.HandleDisabled(index))
	if m.vertical() {
		glyphs := strings.Repeat(styles.HandleGlyphVertical, width)
		if width >= 3 {
			mid := width / 2
			glyphs = strings.Repeat(styles.HandleGlyphVertical, mid-1) +
				strings.Repeat(styles.HandleGripVertical, 3) +
				strings.Repeat(styles.HandleGlyphVertical, width-mid-2)
		}
		return st.Render(glyphs)
	}
	rows := make([]string, height)
	for y := range rows {
		rows[y] = styles.HandleGlyphHorizontal
		if height >= 3 && y >= height/2-1 && y <= height/2+1 {
			rows[y] = styles.HandleGripHorizontal
		}
		rows[y] = st.Render(rows[y])
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderStatus() string {
	s := styles.T().S()
	if m.ErrorMsg != "" {
		return render.Fit(s.Error.Render(m.ErrorMsg), m.Width)
	}
	var left string
	if n := m.Group.HandleCount(); n > 0 {
		left = "handle " + humanize.Comma(int64(m.Focus+1)) + "/" + humanize.Comma(int64(n))
		if m.Group.HandleDisabled(m.Focus) {
			left += " (locked)"
		}
		if _, ok := m.Group.Dragging(); ok {
			left += " · dragging"
		}
	}
	right := humanize.FtoaWithDigits(m.Group.SizePx(), 0) + " cells"
	return render.Row(s.Status.Render(left), s.Status.Render(right), m.Width)
}

func (m Model) helpBox() string {
	h := m.help
	h.ShowAll = true
	return styles.T().S().HelpBox.Render(h.View(m.helpKeys))
}

// helpRect returns the help overlay's screen rectangle when it is shown.
func (m Model) helpRect() (geometry.Rect, bool) {
	if !m.ShowHelp || m.Width == 0 {
		return geometry.Rect{}, false
	}
	box := m.helpBox()
	area := uilayout.ContentArea(m.Width, m.Height)
	return uilayout.CenteredBox(area, lipgloss.Width(box), lipgloss.Height(box)), true
}

// overlayHelp splices the help box over the body lines.
func (m Model) overlayHelp(body []string) []string {
	r, ok := m.helpRect()
	if !ok {
		return body
	}
	box := strings.Split(m.helpBox(), "\n")
	top := int(r.Y) - uilayout.HeaderHeight
	x, w := int(r.X), int(r.Width)
	for i := 0; i < int(r.Height) && i < len(box); i++ {
		row := top + i
		if row < 0 || row >= len(body) {
			continue
		}
		line := body[row]
		body[row] = ansi.Truncate(line, x, "") +
			render.Fit(box[i], w) +
			ansi.TruncateLeft(line, x+w, "")
	}
	return body
}
