package layout

import (
	"errors"
	"fmt"

	"github.com/llehouerou/panes/internal/constraints"
	"github.com/llehouerou/panes/internal/units"
)

var (
	// ErrLayoutLength is returned when a layout has a different number of
	// entries than there are panels.
	ErrLayoutLength = errors.New("layout length does not match panel count")
	// ErrLayoutTotal is returned when a layout does not sum to 100.
	ErrLayoutTotal = errors.New("layout does not sum to 100")
)

// Validate clamps every entry of layout to its constraints and hands any
// leftover to the first panels that can take it, in index order. It is a
// single pass: the result may leave some remainder when no panel has slack.
func Validate(layout []float64, cs []constraints.Resolved) ([]float64, error) {
	if len(layout) != len(cs) {
		return nil, fmt.Errorf("%w: %d sizes for %d panels", ErrLayoutLength, len(layout), len(cs))
	}
	if len(layout) > 0 && !units.FuzzyEqual(units.Sum(layout), 100) {
		return nil, fmt.Errorf("%w: total is %s", ErrLayoutTotal, units.Format(units.Sum(layout)))
	}

	next := append([]float64(nil), layout...)

	remaining := 0.0
	for i, unsafe := range next {
		safe := cs[i].Clamp(unsafe)
		if safe != unsafe {
			remaining += unsafe - safe
			next[i] = safe
		}
	}

	if !units.FuzzyEqual(remaining, 0) {
		for i, prev := range next {
			safe := cs[i].Clamp(prev + remaining)
			if prev != safe {
				remaining -= safe - prev
				next[i] = safe
				if units.FuzzyEqual(remaining, 0) {
					break
				}
			}
		}
	}

	return next, nil
}

// Normalize scales layout so it sums to 100. An all-zero layout is split evenly.
func Normalize(layout []float64) []float64 {
	out := make([]float64, len(layout))
	total := units.Sum(layout)
	if len(layout) == 0 {
		return out
	}
	if total <= 0 {
		for i := range out {
			out[i] = 100 / float64(len(out))
		}
		return out
	}
	for i, v := range layout {
		out[i] = v * 100 / total
	}
	return out
}

// Default builds the unvalidated initial layout: declared default sizes
// first, then an even share of the remainder for panels without one.
func Default(cs []constraints.Resolved) []float64 {
	out := make([]float64, len(cs))
	withSize := 0
	remaining := 100.0
	for i, c := range cs {
		if c.HasDefault {
			out[i] = c.Default
			remaining -= c.Default
			withSize++
		}
	}
	for i, c := range cs {
		if c.HasDefault {
			continue
		}
		size := remaining / float64(len(cs)-withSize)
		out[i] = size
		remaining -= size
		withSize++
	}
	return out
}
