// Package constraints resolves per-panel size constraints into percentage
// space and clamps candidate sizes against them.
package constraints

import (
	"errors"
	"fmt"

	"github.com/llehouerou/panes/internal/units"
)

// ErrInvalidConstraints is returned by Check for declarations that cannot be
// used at all.
var ErrInvalidConstraints = errors.New("invalid panel constraints")

// Constraints are the declared size limits of a panel. A nil attribute is absent.
type Constraints struct {
	MinSize       *units.Size
	MaxSize       *units.Size
	DefaultSize   *units.Size
	CollapsedSize *units.Size
	Collapsible   bool
}

// Resolved holds constraints converted to percentages of the group.
type Resolved struct {
	Min         float64
	Max         float64
	Collapsed   float64
	Default     float64
	HasDefault  bool
	Collapsible bool
}

// Size is a convenience for building optional attributes.
func Size(s units.Size) *units.Size { return &s }

// Resolve converts c into percentage space for a group of groupSizePixels.
// Pixel attributes need a measured group; percentage-only constraints do not.
func Resolve(c Constraints, groupSizePixels float64) (Resolved, error) {
	r := Resolved{Min: 0, Max: 100, Collapsed: 0, Collapsible: c.Collapsible}

	attrs := []struct {
		size *units.Size
		dst  *float64
		name string
	}{
		{c.MinSize, &r.Min, "minSize"},
		{c.MaxSize, &r.Max, "maxSize"},
		{c.CollapsedSize, &r.Collapsed, "collapsedSize"},
		{c.DefaultSize, &r.Default, "defaultSize"},
	}
	for _, a := range attrs {
		if a.size == nil {
			continue
		}
		pct, err := a.size.ToPercentage(groupSizePixels)
		if err != nil {
			return Resolved{}, fmt.Errorf("resolve %s: %w", a.name, err)
		}
		*a.dst = pct
	}
	r.HasDefault = c.DefaultSize != nil

	return r, nil
}

// ResolveAll resolves every panel's constraints.
func ResolveAll(cs []Constraints, groupSizePixels float64) ([]Resolved, error) {
	out := make([]Resolved, len(cs))
	for i, c := range cs {
		r, err := Resolve(c, groupSizePixels)
		if err != nil {
			return nil, fmt.Errorf("panel %d: %w", i, err)
		}
		out[i] = r
	}
	return out, nil
}

// UsesPixels reports whether any attribute of c is expressed in pixels.
func (c Constraints) UsesPixels() bool {
	for _, s := range []*units.Size{c.MinSize, c.MaxSize, c.DefaultSize, c.CollapsedSize} {
		if s != nil && s.Unit == units.Pixels {
			return true
		}
	}
	return false
}

// Clamp returns the closest valid size to candidate.
//
// Below Min, a collapsible panel snaps to Collapsed when the candidate is
// under the halfway point between Collapsed and Min, and to Min otherwise.
// A non-collapsible panel stops at Min. Above Max the result is Max, and
// Max also wins when a declaration puts Min above it.
func (r Resolved) Clamp(candidate float64) float64 {
	if units.FuzzyCompare(candidate, r.Min) < 0 {
		if r.Collapsible {
			halfway := (r.Collapsed + r.Min) / 2
			if units.FuzzyCompare(candidate, halfway) < 0 {
				return r.Collapsed
			}
		}
		return min(r.Min, r.Max)
	}
	if units.FuzzyCompare(candidate, r.Max) > 0 {
		return r.Max
	}
	return candidate
}

// IsCollapsed reports whether size sits at the collapsed size of a collapsible panel.
func (r Resolved) IsCollapsed(size float64) bool {
	return r.Collapsible && units.FuzzyEqual(size, r.Collapsed)
}

// Frozen returns constraints that pin a panel at size.
func Frozen(size float64) Resolved {
	return Resolved{Min: size, Max: size, Collapsed: size, Default: size, HasDefault: true}
}
