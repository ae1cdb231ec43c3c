package group

import (
	"slices"

	"github.com/llehouerou/panes/internal/layout"
	"github.com/llehouerou/panes/internal/smoothing"
	"github.com/llehouerou/panes/internal/units"
)

// StartDrag begins a drag session on handle at pointer position px along
// the group's axis. It reports whether a session was started.
func (g *Group) StartDrag(handle int, px float64) bool {
	if g.layout == nil || g.handleDisabled[handle] {
		return false
	}
	pivot, err := layout.PivotIndices(handle, len(g.panels))
	if err != nil {
		return false
	}
	g.drag = &dragSession{
		handle:  handle,
		pivot:   pivot,
		startPx: px,
		lastPx:  px,
		initial: slices.Clone(g.layout),
	}
	return true
}

// Dragging reports whether a drag session is active, and on which handle.
func (g *Group) Dragging() (int, bool) {
	if g.drag == nil {
		return -1, false
	}
	return g.drag.handle, true
}

// Drag moves the active session's pointer to px. The layout is recomputed
// from the session's start layout so long drags do not drift. Moves without
// an active session are ignored.
func (g *Group) Drag(px float64) bool {
	d := g.drag
	if d == nil || g.sizePx <= 0 {
		return false
	}
	d.lastPx = px
	delta, err := layout.DragDelta(d.startPx, px, g.sizePx)
	if err != nil {
		return false
	}
	next := layout.AdjustByDelta(layout.Request{
		Delta:       delta,
		Initial:     d.initial,
		Previous:    g.layout,
		Constraints: g.effective(d.initial),
		Pivot:       d.pivot,
		Trigger:     layout.TriggerMouse,
	})
	return g.commit(next)
}

// EndDrag ends the active drag session, if any.
func (g *Group) EndDrag() {
	g.drag = nil
}

// resetSpring rebases an active drag on the current layout after the
// constraints it was computed against changed.
func (g *Group) resetSpring() {
	if g.drag == nil || g.layout == nil {
		return
	}
	g.drag.initial = slices.Clone(g.layout)
	g.drag.startPx = g.drag.lastPx
}

// KeyDown applies a key press on handle. It reports whether the layout changed.
func (g *Group) KeyDown(handle int, key layout.Key, shift bool) bool {
	if g.layout == nil || g.handleDisabled[handle] {
		return false
	}
	pivot, err := layout.PivotIndices(handle, len(g.panels))
	if err != nil {
		return false
	}
	delta := layout.KeyboardDelta(key, g.direction, g.keyboardStep, shift)
	if delta == 0 {
		return false
	}
	next := layout.AdjustByDelta(layout.Request{
		Delta:       delta,
		Initial:     g.layout,
		Previous:    g.layout,
		Constraints: g.effective(g.layout),
		Pivot:       pivot,
		Trigger:     layout.TriggerKeyboard,
	})
	return g.commit(next)
}

// ToggleCollapse collapses the panel before handle, or expands it when it
// is already collapsed.
func (g *Group) ToggleCollapse(handle int) bool {
	if g.layout == nil || g.handleDisabled[handle] {
		return false
	}
	if _, err := layout.PivotIndices(handle, len(g.panels)); err != nil {
		return false
	}
	id := g.panels[handle].id
	if g.resolved[handle].IsCollapsed(g.layout[handle]) {
		changed, _ := g.expand(id, layout.TriggerKeyboard)
		return changed
	}
	changed, _ := g.collapse(id, layout.TriggerKeyboard)
	return changed
}

// Animating reports whether the displayed layout still trails the logical one.
func (g *Group) Animating() bool {
	return g.shown != nil && !smoothing.Converged(g.shown, g.layout)
}

// Tick advances the displayed layout one smoothing step. It reports whether
// another tick is needed.
func (g *Group) Tick() bool {
	if g.shown == nil {
		return false
	}
	next, done := smoothing.Step(g.shown, g.layout, g.smoothing)
	g.shown = next
	return !done
}

// commit makes next the logical layout and fires everything that follows
// a layout change. It reports whether the layout changed.
func (g *Group) commit(next []float64) bool {
	if next == nil || (g.layout != nil && units.LayoutsEqual(next, g.layout)) {
		return false
	}
	prev := g.layout

	for i, p := range g.panels {
		r := g.resolved[i]
		if prev != nil && !r.IsCollapsed(prev[i]) && r.IsCollapsed(next[i]) {
			g.expandTo[p.id] = prev[i]
		}
	}

	g.layout = slices.Clone(next)
	if g.smoothing == 0 || g.shown == nil || len(g.shown) != len(next) {
		g.shown = slices.Clone(next)
	}

	g.notify()
	if g.onLayout != nil {
		g.onLayout(g.Layout())
	}
	g.save()
	return true
}
