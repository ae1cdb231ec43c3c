package group

import (
	"maps"

	"github.com/llehouerou/panes/internal/layout"
	"github.com/llehouerou/panes/internal/state"
)

// restore returns the persisted layout for the mounted panel set, if there
// is one that still fits the panels' constraints.
func (g *Group) restore() ([]float64, bool) {
	if g.saver == nil || g.autosaveID == "" {
		return nil, false
	}
	e, ok := g.saver.Load(state.GroupKey(g.autosaveID), g.panelKey())
	if !ok || len(e.Layout) != len(g.panels) {
		return nil, false
	}
	restored := []float64(e.Layout)
	next, err := layout.Validate(restored, g.effective(restored))
	if err != nil {
		g.logger.Debug("ignoring persisted layout", "group", g.id, "err", err)
		return nil, false
	}
	for id, size := range e.ExpandToSizes {
		if g.indexOf(id) >= 0 {
			g.expandTo[id] = size
		}
	}
	return next, true
}

func (g *Group) save() {
	if g.saver == nil || g.autosaveID == "" || g.layout == nil {
		return
	}
	e := state.Entry{Layout: state.Sizes(g.Layout())}
	if len(g.expandTo) > 0 {
		e.ExpandToSizes = maps.Clone(g.expandTo)
	}
	g.saver.Save(state.GroupKey(g.autosaveID), g.panelKey(), e)
}
