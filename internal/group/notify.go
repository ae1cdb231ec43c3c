package group

import "github.com/llehouerou/panes/internal/units"

// notify fires per-panel callbacks for panels whose rounded size changed
// since they were last notified.
func (g *Group) notify() {
	for i, p := range g.panels {
		size := units.Round(g.layout[i])
		last, seen := g.lastNotified[p.id]
		if seen && units.FuzzyEqual(last, size) {
			continue
		}
		g.lastNotified[p.id] = size

		change := SizeChange{
			PanelID:     p.id,
			HasPrevious: seen,
			PreviousPct: last,
			CurrentPct:  size,
		}
		if g.sizePx > 0 {
			change.CurrentPx, _ = units.PercentageToPixels(size, g.sizePx)
			if seen {
				change.PreviousPx, _ = units.PercentageToPixels(last, g.sizePx)
			}
		}

		if p.cfg.OnResize != nil {
			p.cfg.OnResize(change)
		}

		r := g.resolved[i]
		if !r.Collapsible {
			continue
		}
		wasCollapsed := seen && r.IsCollapsed(last)
		collapsed := r.IsCollapsed(size)
		switch {
		case collapsed && (!seen || !wasCollapsed):
			if p.cfg.OnCollapse != nil {
				p.cfg.OnCollapse(change)
			}
		case !collapsed && (!seen || wasCollapsed):
			if p.cfg.OnExpand != nil {
				p.cfg.OnExpand(change)
			}
		}
	}
}
