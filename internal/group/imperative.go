package group

import (
	"fmt"

	"github.com/llehouerou/panes/internal/layout"
	"github.com/llehouerou/panes/internal/units"
)

// Collapse collapses a collapsible panel, remembering its current size so
// Expand can restore it. Non-collapsible or already collapsed panels are
// left alone.
func (g *Group) Collapse(id string) error {
	_, err := g.collapse(id, layout.TriggerImperative)
	return err
}

// Expand restores a collapsed panel to its remembered size, and never
// below its minimum.
func (g *Group) Expand(id string) error {
	_, err := g.expand(id, layout.TriggerImperative)
	return err
}

// Resize sets a panel's size. The result is clamped to the panel's
// constraints and to what its neighbors can give up.
func (g *Group) Resize(id string, size units.Size) error {
	i, err := g.lookup(id)
	if err != nil {
		return err
	}
	pct, err := size.ToPercentage(g.sizePx)
	if err != nil {
		return fmt.Errorf("resize %q: %w", id, err)
	}
	g.resizePanel(i, pct, layout.TriggerImperative)
	return nil
}

// Size returns a panel's current size in unit.
func (g *Group) Size(id string, unit units.Unit) (units.Size, error) {
	i, err := g.lookup(id)
	if err != nil {
		return units.Size{}, err
	}
	return g.sizeIn(units.Round(g.layout[i]), unit)
}

// IsCollapsed reports whether a panel is collapsed.
func (g *Group) IsCollapsed(id string) bool {
	i, err := g.lookup(id)
	if err != nil {
		return false
	}
	return g.resolved[i].IsCollapsed(g.layout[i])
}

// GetLayout returns the layout in unit.
func (g *Group) GetLayout(unit units.Unit) ([]units.Size, error) {
	if g.layout == nil {
		return nil, ErrNoLayout
	}
	out := make([]units.Size, len(g.layout))
	for i, pct := range g.Layout() {
		s, err := g.sizeIn(pct, unit)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// SetLayout replaces the whole layout. Sizes are validated against the
// panels' constraints before they are applied.
func (g *Group) SetLayout(sizes []units.Size) error {
	if g.layout == nil {
		return ErrNoLayout
	}
	unsafe := make([]float64, len(sizes))
	for i, s := range sizes {
		pct, err := s.ToPercentage(g.sizePx)
		if err != nil {
			return fmt.Errorf("set layout: %w", err)
		}
		unsafe[i] = pct
	}
	next, err := layout.Validate(unsafe, g.effective(g.layout))
	if err != nil {
		return fmt.Errorf("set layout: %w", err)
	}
	g.commit(next)
	return nil
}

func (g *Group) collapse(id string, trigger layout.Trigger) (bool, error) {
	i, err := g.lookup(id)
	if err != nil {
		return false, err
	}
	r := g.resolved[i]
	if !r.Collapsible || r.IsCollapsed(g.layout[i]) || g.panels[i].cfg.Disabled {
		return false, nil
	}
	remembered := g.layout[i]
	if !g.resizePanel(i, r.Collapsed, trigger) {
		return false, nil
	}
	g.expandTo[id] = remembered
	return true, nil
}

func (g *Group) expand(id string, trigger layout.Trigger) (bool, error) {
	i, err := g.lookup(id)
	if err != nil {
		return false, err
	}
	r := g.resolved[i]
	if !r.IsCollapsed(g.layout[i]) || g.panels[i].cfg.Disabled {
		return false, nil
	}
	target, ok := g.expandTo[id]
	if !ok && r.HasDefault {
		target = r.Default
	}
	target = max(target, r.Min)
	if units.FuzzyEqual(target, r.Collapsed) {
		return false, nil
	}
	return g.resizePanel(i, target, trigger), nil
}

// resizePanel moves the handle next to panel i so the panel reaches target.
func (g *Group) resizePanel(i int, target float64, trigger layout.Trigger) bool {
	pivot, last, err := layout.PanelPivot(i, len(g.panels))
	if err != nil {
		return false
	}
	delta := target - g.layout[i]
	if last {
		delta = -delta
	}
	next := layout.AdjustByDelta(layout.Request{
		Delta:       delta,
		Initial:     g.layout,
		Previous:    g.layout,
		Constraints: g.effective(g.layout),
		Pivot:       pivot,
		Trigger:     trigger,
	})
	return g.commit(next)
}

func (g *Group) lookup(id string) (int, error) {
	i := g.indexOf(id)
	if i < 0 {
		return -1, fmt.Errorf("%w: %q", ErrUnknownPanel, id)
	}
	if g.layout == nil {
		return -1, ErrNoLayout
	}
	return i, nil
}

func (g *Group) sizeIn(pct float64, unit units.Unit) (units.Size, error) {
	if unit == units.Percent {
		return units.Pct(pct), nil
	}
	px, err := units.PercentageToPixels(pct, g.sizePx)
	if err != nil {
		return units.Size{}, err
	}
	return units.Px(px), nil
}
