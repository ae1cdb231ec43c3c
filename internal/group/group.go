// Package group owns the state of one panel group: its mounted panels,
// their constraints, the current layout, drag sessions, collapse memory and
// persistence. Hosts drive it from a single goroutine.
package group

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/llehouerou/panes/internal/constraints"
	"github.com/llehouerou/panes/internal/layout"
	"github.com/llehouerou/panes/internal/smoothing"
	"github.com/llehouerou/panes/internal/state"
	"github.com/llehouerou/panes/internal/units"
)

var (
	// ErrUnknownPanel is returned for panel ids that are not mounted.
	ErrUnknownPanel = errors.New("unknown panel")
	// ErrDuplicatePanel is returned when a panel id is mounted twice.
	ErrDuplicatePanel = errors.New("duplicate panel id")
	// ErrNoLayout is returned when the group has no layout yet, either
	// because no panel is mounted or pixel constraints await a measured size.
	ErrNoLayout = errors.New("group has no layout")
)

// PanelConfig declares a panel.
type PanelConfig struct {
	// ID identifies the panel. When empty, the panel's position is used.
	ID string
	// Order positions the panel among its siblings; panels are sorted by
	// it, so conditionally mounted panels land in the right place.
	Order       int
	Constraints constraints.Constraints
	// Disabled panels keep their size through every resize.
	Disabled bool

	OnResize   func(SizeChange)
	OnCollapse func(SizeChange)
	OnExpand   func(SizeChange)
}

// SizeChange describes a panel size notification.
type SizeChange struct {
	PanelID     string
	HasPrevious bool
	PreviousPct float64
	CurrentPct  float64
	PreviousPx  float64
	CurrentPx   float64
}

type panel struct {
	cfg      PanelConfig
	id       string
	declared bool
	seq      int
}

type dragSession struct {
	handle  int
	pivot   layout.Pivot
	startPx float64
	lastPx  float64
	initial []float64
}

// Group is the state of one panel group.
type Group struct {
	id           string
	direction    layout.Direction
	keyboardStep float64
	smoothing    float64
	logger       *slog.Logger
	onLayout     func([]float64)

	saver      *state.Saver
	autosaveID string

	sizePx   float64
	panels   []*panel
	seq      int
	resolved []constraints.Resolved
	layout   []float64
	shown    []float64

	handleDisabled map[int]bool
	expandTo       map[string]float64
	lastNotified   map[string]float64
	drag           *dragSession
}

// Option configures a Group.
type Option func(*Group)

// WithDirection sets the axis panels are laid out along.
func WithDirection(d layout.Direction) Option {
	return func(g *Group) { g.direction = d }
}

// WithKeyboardStep sets the percentage an arrow key moves a handle.
func WithKeyboardStep(step float64) Option {
	return func(g *Group) { g.keyboardStep = step }
}

// WithSmoothing eases the displayed layout toward the logical layout.
// Zero applies every change immediately.
func WithSmoothing(factor float64) Option {
	return func(g *Group) { g.smoothing = smoothing.Clamp(factor) }
}

// WithLogger sets the logger for configuration warnings and errors.
func WithLogger(l *slog.Logger) Option {
	return func(g *Group) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithOnLayout registers a callback receiving every new layout.
func WithOnLayout(fn func([]float64)) Option {
	return func(g *Group) { g.onLayout = fn }
}

// WithAutosave persists layouts through saver under autosaveID.
func WithAutosave(saver *state.Saver, autosaveID string) Option {
	return func(g *Group) {
		g.saver = saver
		g.autosaveID = autosaveID
	}
}

// New creates an empty group.
func New(id string, opts ...Option) *Group {
	g := &Group{
		id:             id,
		keyboardStep:   layout.DefaultKeyboardStep,
		logger:         slog.New(slog.DiscardHandler),
		handleDisabled: make(map[int]bool),
		expandTo:       make(map[string]float64),
		lastNotified:   make(map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the group id.
func (g *Group) ID() string { return g.id }

// Direction returns the group's axis.
func (g *Group) Direction() layout.Direction { return g.direction }

// SizePx returns the measured size of the group's main axis.
func (g *Group) SizePx() float64 { return g.sizePx }

// PanelIDs returns mounted panel ids in render order.
func (g *Group) PanelIDs() []string {
	ids := make([]string, len(g.panels))
	for i, p := range g.panels {
		ids[i] = p.id
	}
	return ids
}

// HandleCount returns the number of resize handles.
func (g *Group) HandleCount() int {
	return max(len(g.panels)-1, 0)
}

// Layout returns the logical layout, rounded for output.
func (g *Group) Layout() []float64 {
	return units.RoundLayout(g.layout)
}

// Displayed returns the layout to render, which trails Layout while smoothing.
func (g *Group) Displayed() []float64 {
	if g.shown == nil {
		return g.Layout()
	}
	return units.RoundLayout(g.shown)
}

// Constraints returns the resolved constraints in render order.
func (g *Group) Constraints() []constraints.Resolved {
	return slices.Clone(g.resolved)
}

// AddPanels mounts panels and recomputes the layout once. Panels mounted
// together into an empty group start from their default sizes.
func (g *Group) AddPanels(cfgs ...PanelConfig) error {
	added := make([]*panel, 0, len(cfgs))
	for _, cfg := range cfgs {
		p, err := g.newPanel(cfg, added)
		if err != nil {
			return err
		}
		added = append(added, p)
	}
	if len(added) == 0 {
		return nil
	}

	g.seq += len(added)
	prevIDs, prevLayout := g.PanelIDs(), g.layout
	g.panels = append(g.panels, added...)
	g.sortPanels()
	return g.relayout(prevIDs, prevLayout)
}

// AddPanel mounts a single panel.
func (g *Group) AddPanel(cfg PanelConfig) error {
	return g.AddPanels(cfg)
}

func (g *Group) newPanel(cfg PanelConfig, pending []*panel) (*panel, error) {
	p := &panel{cfg: cfg, id: cfg.ID, declared: cfg.ID != "", seq: g.seq + len(pending)}
	if !p.declared {
		p.id = strconv.Itoa(p.seq)
		g.logger.Warn("panel has no id; falling back to its position",
			"group", g.id, "position", p.seq)
	} else if g.indexOf(p.id) >= 0 || slices.ContainsFunc(pending, func(o *panel) bool { return o.id == p.id }) {
		return nil, fmt.Errorf("%w: %q", ErrDuplicatePanel, p.id)
	}
	if g.layout != nil && cfg.Order == 0 {
		g.logger.Warn("conditionally mounted panel has no order; it is placed last",
			"group", g.id, "panel", p.id)
	}

	if r, err := constraints.Resolve(cfg.Constraints, g.sizePx); err == nil {
		warnings, err := constraints.Check(cfg.Constraints, r)
		if err != nil {
			g.logger.Error("invalid panel constraints", "group", g.id, "panel", p.id, "err", err)
			return nil, fmt.Errorf("panel %q: %w", p.id, err)
		}
		for _, w := range warnings {
			g.logger.Warn(w, "group", g.id, "panel", p.id)
		}
	}
	return p, nil
}

// RemovePanel unmounts a panel. Its share of the layout is returned to the
// remaining panels and its collapse memory is dropped.
func (g *Group) RemovePanel(id string) error {
	i := g.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownPanel, id)
	}
	prevIDs, prevLayout := g.PanelIDs(), g.layout
	g.panels = slices.Delete(g.panels, i, i+1)
	delete(g.expandTo, id)
	delete(g.lastNotified, id)
	return g.relayout(prevIDs, prevLayout)
}

// HasPanel reports whether a panel is mounted.
func (g *Group) HasPanel(id string) bool {
	return g.indexOf(id) >= 0
}

// SetHandleDisabled enables or disables the handle after panel index handle.
func (g *Group) SetHandleDisabled(handle int, disabled bool) {
	if disabled {
		g.handleDisabled[handle] = true
	} else {
		delete(g.handleDisabled, handle)
	}
}

// HandleDisabled reports whether a handle ignores input.
func (g *Group) HandleDisabled(handle int) bool {
	return g.handleDisabled[handle]
}

// SetSize records a new measured size for the group's main axis and
// revalidates the layout against constraints that depend on it.
func (g *Group) SetSize(px float64) error {
	if px == g.sizePx {
		return nil
	}
	g.sizePx = px
	if len(g.panels) == 0 {
		return nil
	}
	if g.layout == nil {
		return g.relayout(nil, nil)
	}

	cs, err := constraints.ResolveAll(g.configs(), px)
	if err != nil {
		return err
	}
	g.resolved = cs
	next, err := layout.Validate(g.layout, g.effective(g.layout))
	if err != nil {
		g.logger.Error("layout no longer valid after resize", "group", g.id, "err", err)
		return err
	}
	g.resetSpring()
	g.commit(next)
	return nil
}

func (g *Group) indexOf(id string) int {
	return slices.IndexFunc(g.panels, func(p *panel) bool { return p.id == id })
}

func (g *Group) sortPanels() {
	slices.SortStableFunc(g.panels, func(a, b *panel) int {
		ao, bo := a.cfg.Order, b.cfg.Order
		if ao == 0 && bo == 0 {
			return a.seq - b.seq
		}
		if ao == 0 {
			return 1
		}
		if bo == 0 {
			return -1
		}
		return ao - bo
	})
}

func (g *Group) configs() []constraints.Constraints {
	cs := make([]constraints.Constraints, len(g.panels))
	for i, p := range g.panels {
		cs[i] = p.cfg.Constraints
	}
	return cs
}

// effective returns the constraints used for resizing: disabled panels are
// pinned to their size in current.
func (g *Group) effective(current []float64) []constraints.Resolved {
	cs := slices.Clone(g.resolved)
	for i, p := range g.panels {
		if p.cfg.Disabled && i < len(current) {
			cs[i] = constraints.Frozen(current[i])
		}
	}
	return cs
}

// relayout recomputes constraints and layout after the mounted panel set
// changed. Sizes of panels that persist are kept relative to each other.
func (g *Group) relayout(prevIDs []string, prevLayout []float64) error {
	g.drag = nil
	if len(g.panels) == 0 {
		g.resolved, g.layout, g.shown = nil, nil, nil
		return nil
	}

	cs, err := constraints.ResolveAll(g.configs(), g.sizePx)
	if errors.Is(err, units.ErrInvalidGroupSize) {
		// Pixel constraints: wait for SetSize.
		g.resolved, g.layout, g.shown = nil, nil, nil
		return nil
	}
	if err != nil {
		return err
	}
	g.resolved = cs

	next, restored := g.restore()
	if !restored {
		unsafe := g.carryOver(prevIDs, prevLayout)
		if !units.FuzzyEqual(units.Sum(unsafe), 100) {
			if prevLayout == nil {
				g.logger.Warn("default panel sizes do not sum to 100; scaling them",
					"group", g.id, "total", units.Format(units.Sum(unsafe)))
			}
			unsafe = layout.Normalize(unsafe)
		}
		next, err = layout.Validate(unsafe, g.effective(unsafe))
		if err != nil {
			g.logger.Error("invalid layout", "group", g.id, "err", err)
			return err
		}
	}

	if len(next) != len(g.layout) {
		// Different panel count: nothing to ease from.
		g.layout, g.shown = nil, nil
	}
	g.commit(next)
	return nil
}

// carryOver builds the unvalidated layout for the current panels.
func (g *Group) carryOver(prevIDs []string, prevLayout []float64) []float64 {
	if prevLayout == nil {
		return layout.Default(g.resolved)
	}
	prev := make(map[string]float64, len(prevIDs))
	for i, id := range prevIDs {
		if i < len(prevLayout) {
			prev[id] = prevLayout[i]
		}
	}

	// New panels take their default, or an even share of the group;
	// persisting panels keep their relative sizes in what is left.
	out := make([]float64, len(g.panels))
	var kept []int
	keptTotal, added := 0.0, 0.0
	for i, p := range g.panels {
		if size, ok := prev[p.id]; ok {
			out[i] = size
			kept = append(kept, i)
			keptTotal += size
			continue
		}
		if g.resolved[i].HasDefault {
			out[i] = g.resolved[i].Default
		} else {
			out[i] = 100 / float64(len(g.panels))
		}
		added += out[i]
	}
	if keptTotal > 0 {
		scale := max(100-added, 0) / keptTotal
		for _, i := range kept {
			out[i] *= scale
		}
	}
	return out
}

func (g *Group) panelKey() string {
	ids := make([]state.PanelIdentity, len(g.panels))
	for i, p := range g.panels {
		ids[i] = state.PanelIdentity{
			ID:          p.id,
			Declared:    p.declared,
			Order:       p.cfg.Order,
			Constraints: constraintsKey(p.cfg.Constraints),
		}
	}
	return state.PanelKey(ids)
}

func constraintsKey(c constraints.Constraints) string {
	data, err := json.Marshal(c)
	if err != nil {
		return ""
	}
	return string(data)
}
