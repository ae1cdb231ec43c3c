// Package smoothing eases a displayed layout toward a target layout over
// discrete ticks.
package smoothing

import (
	"time"

	"github.com/llehouerou/panes/internal/units"
)

// FrameInterval is the default time between ticks.
const FrameInterval = 16 * time.Millisecond

// Clamp limits a smoothing factor to [0, 1).
func Clamp(factor float64) float64 {
	if factor < 0 {
		return 0
	}
	if factor >= 1 {
		return 0.99
	}
	return factor
}

// Step moves current toward target by (1 - factor) of the remaining
// distance. It returns the next layout and whether it has converged; a
// converged result is exactly target.
func Step(current, target []float64, factor float64) ([]float64, bool) {
	factor = Clamp(factor)
	if len(current) != len(target) || factor == 0 {
		return append([]float64(nil), target...), true
	}
	next := make([]float64, len(target))
	for i := range target {
		next[i] = current[i] + (target[i]-current[i])*(1-factor)
	}
	if Converged(next, target) {
		return append([]float64(nil), target...), true
	}
	return next, false
}

// Converged reports whether current matches target within rounding precision.
func Converged(current, target []float64) bool {
	return units.LayoutsEqual(current, target)
}
