// Package units converts panel sizes between pixels and percentages and
// provides the fixed-precision comparisons used across the layout engine.
package units

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Precision is the number of fractional digits kept for comparisons and storage.
const Precision = 3

var scale = math.Pow10(Precision)

// ErrInvalidGroupSize is returned when a conversion needs the group's pixel
// size but the group has not been measured yet.
var ErrInvalidGroupSize = errors.New("group has no measured size")

// Unit identifies the unit system of a Size.
type Unit int

const (
	Percent Unit = iota
	Pixels
)

func (u Unit) String() string {
	switch u {
	case Percent:
		return "%"
	case Pixels:
		return "px"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Size is a value tagged with its unit.
type Size struct {
	Value float64
	Unit  Unit
}

// Pct returns a percentage size.
func Pct(v float64) Size { return Size{Value: v, Unit: Percent} }

// Px returns a pixel size.
func Px(v float64) Size { return Size{Value: v, Unit: Pixels} }

func (s Size) String() string {
	return strconv.FormatFloat(s.Value, 'f', -1, 64) + s.Unit.String()
}

// ToPercentage resolves s against the group's pixel size.
func (s Size) ToPercentage(groupSizePixels float64) (float64, error) {
	switch s.Unit {
	case Percent:
		return s.Value, nil
	case Pixels:
		return PixelsToPercentage(s.Value, groupSizePixels)
	default:
		return 0, fmt.Errorf("unknown unit %v", s.Unit)
	}
}

// PixelsToPercentage converts a pixel length into a percentage of the group.
func PixelsToPercentage(pixels, groupSizePixels float64) (float64, error) {
	if groupSizePixels <= 0 {
		return 0, ErrInvalidGroupSize
	}
	return pixels * 100 / groupSizePixels, nil
}

// PercentageToPixels converts a percentage of the group into pixels.
func PercentageToPixels(pct, groupSizePixels float64) (float64, error) {
	if groupSizePixels <= 0 {
		return 0, ErrInvalidGroupSize
	}
	return pct * groupSizePixels / 100, nil
}

// Round rounds v to Precision fractional digits.
func Round(v float64) float64 {
	r := math.Round(v*scale) / scale
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

// FuzzyCompare compares a and b after rounding both to Precision digits.
// It returns -1, 0 or 1.
func FuzzyCompare(a, b float64) int {
	ra, rb := math.Round(a*scale), math.Round(b*scale)
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	default:
		return 0
	}
}

// FuzzyEqual reports whether a and b are equal at Precision digits.
func FuzzyEqual(a, b float64) bool {
	return FuzzyCompare(a, b) == 0
}

// LayoutsEqual reports whether two layouts have the same length and fuzzy-equal entries.
func LayoutsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !FuzzyEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Sum returns the total of a layout.
func Sum(layout []float64) float64 {
	total := 0.0
	for _, v := range layout {
		total += v
	}
	return total
}

// RoundLayout returns a copy of layout with every entry rounded.
func RoundLayout(layout []float64) []float64 {
	out := make([]float64, len(layout))
	for i, v := range layout {
		out[i] = Round(v)
	}
	return out
}

// ParseSize parses "25", "25%" or "200px".
func ParseSize(s string) (Size, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	unit := Percent
	switch {
	case strings.HasSuffix(s, "px"):
		unit = Pixels
		s = strings.TrimSpace(strings.TrimSuffix(s, "px"))
	case strings.HasSuffix(s, "%"):
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	}
	if s == "" {
		return Size{}, errors.New("empty size")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Size{}, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Size{}, fmt.Errorf("invalid size %q", s)
	}
	return Size{Value: v, Unit: unit}, nil
}

// Format renders a percentage with Precision digits and no trailing zeros.
func Format(pct float64) string {
	return strconv.FormatFloat(Round(pct), 'f', -1, 64)
}
