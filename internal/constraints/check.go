package constraints

import (
	"fmt"

	"github.com/llehouerou/panes/internal/units"
)

// Check validates a panel declaration. Declarations that cannot be honored
// return an error wrapping ErrInvalidConstraints; inconsistent but usable
// ones are reported as warnings.
func Check(c Constraints, r Resolved) (warnings []string, err error) {
	if c.DefaultSize != nil && c.DefaultSize.Unit == units.Percent {
		if c.DefaultSize.Value < 0 {
			return nil, fmt.Errorf("%w: default size %v is negative", ErrInvalidConstraints, *c.DefaultSize)
		}
		if c.DefaultSize.Value > 100 {
			return nil, fmt.Errorf("%w: default size %v exceeds 100%%", ErrInvalidConstraints, *c.DefaultSize)
		}
	}
	for _, s := range []*units.Size{c.MinSize, c.MaxSize, c.CollapsedSize} {
		if s != nil && s.Value < 0 {
			return nil, fmt.Errorf("%w: size %v is negative", ErrInvalidConstraints, *s)
		}
	}

	if r.Min > r.Max {
		warnings = append(warnings, fmt.Sprintf("min size (%s%%) should not be greater than max size (%s%%)",
			units.Format(r.Min), units.Format(r.Max)))
	}
	if r.HasDefault {
		if r.Default < r.Min && (!r.Collapsible || !units.FuzzyEqual(r.Default, r.Collapsed)) {
			warnings = append(warnings, "default size should not be less than min size")
		}
		if r.Default > r.Max {
			warnings = append(warnings, "default size should not be greater than max size")
		}
	}
	if r.Collapsed > r.Min {
		warnings = append(warnings, "collapsed size should not be greater than min size")
	}
	if c.UsesPixels() && c.MinSize == nil {
		warnings = append(warnings, "panels with pixel constraints should declare a min size")
	}

	return warnings, nil
}
