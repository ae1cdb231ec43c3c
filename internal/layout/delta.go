// Package layout implements the redistribution algorithm that turns a resize
// delta at one handle into a new layout, and the validator that makes any
// layout fit its panels' constraints.
//
// Layouts are percentages in panel render order and always sum to 100.
package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/llehouerou/panes/internal/constraints"
	"github.com/llehouerou/panes/internal/units"
)

// ErrPivot is returned for pivot indices that do not name two adjacent panels.
var ErrPivot = errors.New("invalid pivot indices")

// Trigger identifies what caused a resize.
type Trigger int

const (
	TriggerMouse Trigger = iota
	TriggerKeyboard
	TriggerImperative
)

func (t Trigger) String() string {
	switch t {
	case TriggerMouse:
		return "mouse"
	case TriggerKeyboard:
		return "keyboard"
	case TriggerImperative:
		return "imperative"
	default:
		return fmt.Sprintf("Trigger(%d)", int(t))
	}
}

// Pivot is the pair of panel indices on either side of a resize handle.
type Pivot [2]int

// PivotIndices returns the pivot for the handle after panel handleIndex.
func PivotIndices(handleIndex, panelCount int) (Pivot, error) {
	if handleIndex < 0 || handleIndex+1 >= panelCount {
		return Pivot{}, fmt.Errorf("%w: handle %d with %d panels", ErrPivot, handleIndex, panelCount)
	}
	return Pivot{handleIndex, handleIndex + 1}, nil
}

// PanelPivot returns the pivot used to resize a single panel: the panel and
// its successor, or its predecessor when it is the last panel. The second
// return value is true in that last-panel case, where deltas must be negated.
func PanelPivot(panelIndex, panelCount int) (Pivot, bool, error) {
	if panelCount < 2 || panelIndex < 0 || panelIndex >= panelCount {
		return Pivot{}, false, fmt.Errorf("%w: panel %d with %d panels", ErrPivot, panelIndex, panelCount)
	}
	if panelIndex == panelCount-1 {
		return Pivot{panelIndex - 1, panelIndex}, true, nil
	}
	return Pivot{panelIndex, panelIndex + 1}, false, nil
}

// Request describes one resize computation.
type Request struct {
	// Delta is the signed percentage change at the handle. Positive grows
	// the panel before the handle, negative grows the panel after it.
	Delta float64
	// Initial is the layout the delta is relative to (a drag's start layout).
	Initial []float64
	// Previous is the layout currently displayed; it is returned whenever
	// the delta cannot be applied.
	Previous    []float64
	Constraints []constraints.Resolved
	Pivot       Pivot
	Trigger     Trigger
}

// AdjustByDelta computes the layout that results from applying req.Delta at
// req.Pivot. Panels are always visited in index order outward from the
// pivot. A delta that cannot make progress returns req.Previous unchanged.
func AdjustByDelta(req Request) []float64 {
	if req.Previous == nil {
		req.Previous = req.Initial
	}
	n := len(req.Constraints)
	first, second := req.Pivot[0], req.Pivot[1]
	if len(req.Initial) != n || first < 0 || second >= n || second != first+1 {
		return req.Previous
	}
	if units.FuzzyEqual(req.Delta, 0) {
		return req.Initial
	}

	// Each recursion lowers |delta| by one point, so depth is bounded by it.
	maxDepth := int(math.Ceil(math.Abs(req.Delta))) + 1
	return adjust(req, req.Delta, maxDepth)
}

func adjust(req Request, delta float64, depth int) []float64 {
	if units.FuzzyEqual(delta, 0) || depth <= 0 {
		return req.Previous
	}

	cs := req.Constraints
	initial := req.Initial
	first, second := req.Pivot[0], req.Pivot[1]
	next := append([]float64(nil), initial...)

	if req.Trigger == TriggerKeyboard {
		delta = widenKeyboardDelta(delta, initial, cs, first, second)
	}

	// Growing side: cap delta at the headroom of the pivot panel and every
	// panel beyond it.
	{
		increment := -1
		index := first
		if delta < 0 {
			increment = 1
			index = second
		}
		maxAvailable := 0.0
		for ; index >= 0 && index < len(cs); index += increment {
			maxAvailable += cs[index].Clamp(100) - initial[index]
		}
		minAbs := math.Min(math.Abs(delta), math.Abs(maxAvailable))
		delta = math.Copysign(minAbs, delta)
	}
	if units.FuzzyEqual(delta, 0) {
		return req.Previous
	}

	// Shrinking side: take space outward from the pivot.
	deltaApplied := 0.0
	{
		index, step := second, 1
		if delta < 0 {
			index, step = first, -1
		}
		for ; index >= 0 && index < len(cs); index += step {
			remaining := math.Abs(delta) - math.Abs(deltaApplied)
			prev := initial[index]
			safe := cs[index].Clamp(prev - remaining)
			if !units.FuzzyEqual(prev, safe) {
				deltaApplied += prev - safe
				next[index] = safe
				if units.FuzzyCompare(deltaApplied, math.Abs(delta)) >= 0 {
					break
				}
			}
		}
	}

	if units.FuzzyEqual(deltaApplied, 0) || units.LayoutsEqual(req.Previous, next) {
		return req.Previous
	}

	// Give what was freed to the growing pivot panel.
	{
		pivot := first
		walkStep := -1
		if delta < 0 {
			pivot = second
			walkStep = 1
		}
		unsafe := initial[pivot] + deltaApplied
		safe := cs[pivot].Clamp(unsafe)
		next[pivot] = safe

		// The pivot panel changed collapsed state or hit a limit: push the
		// difference further out on the growing side.
		if !units.FuzzyEqual(safe, unsafe) {
			remaining := unsafe - safe
			for index := pivot; index >= 0 && index < len(cs); index += walkStep {
				prev := next[index]
				candidate := cs[index].Clamp(prev + remaining)
				if !units.FuzzyEqual(prev, candidate) {
					remaining -= candidate - prev
					next[index] = candidate
				}
				if units.FuzzyEqual(remaining, 0) {
					break
				}
			}
		}
	}

	if !units.FuzzyEqual(units.Sum(next), 100) {
		// Infeasible as requested: retry with a delta one point closer to zero.
		smaller := delta - math.Copysign(1, delta)
		if math.Abs(delta) < 1 || math.Signbit(smaller) != math.Signbit(delta) {
			return req.Previous
		}
		return adjust(req, smaller, depth-1)
	}

	return next
}

// widenKeyboardDelta lets a single key press cross the gap between a
// collapsible panel's collapsed size and its min size.
func widenKeyboardDelta(delta float64, initial []float64, cs []constraints.Resolved, first, second int) float64 {
	// Expanding a collapsed panel.
	{
		index := first
		if delta < 0 {
			index = second
		}
		c := cs[index]
		if c.Collapsible && units.FuzzyEqual(initial[index], c.Collapsed) {
			local := c.Min - initial[index]
			if units.FuzzyCompare(local, math.Abs(delta)) > 0 {
				delta = math.Copysign(local, delta)
			}
		}
	}
	// Collapsing a panel sitting at its min size.
	{
		index := second
		if delta < 0 {
			index = first
		}
		c := cs[index]
		if c.Collapsible && units.FuzzyEqual(initial[index], c.Min) {
			local := initial[index] - c.Collapsed
			if units.FuzzyCompare(local, math.Abs(delta)) > 0 {
				delta = math.Copysign(local, delta)
			}
		}
	}
	return delta
}
