package layout

import "github.com/llehouerou/panes/internal/units"

// Direction is the axis panels are laid out along.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Key is a resize handle key press.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
)

// DefaultKeyboardStep is the percentage moved per arrow key press.
const DefaultKeyboardStep = 10

// KeyboardDelta maps a key press on a handle to a percentage delta. Arrow
// keys off the group's axis do nothing; shift jumps all the way.
func KeyboardDelta(key Key, dir Direction, step float64, shift bool) float64 {
	if step <= 0 {
		step = DefaultKeyboardStep
	}
	if shift {
		step = 100
	}
	horizontal := dir == Horizontal
	switch key {
	case KeyLeft:
		if horizontal {
			return -step
		}
	case KeyRight:
		if horizontal {
			return step
		}
	case KeyUp:
		if !horizontal {
			return -step
		}
	case KeyDown:
		if !horizontal {
			return step
		}
	case KeyHome:
		return -100
	case KeyEnd:
		return 100
	}
	return 0
}

// DragDelta converts a pointer offset along the group's axis into a
// percentage delta relative to the drag's start position.
func DragDelta(startPx, currentPx, groupSizePixels float64) (float64, error) {
	return units.PixelsToPercentage(currentPx-startPx, groupSizePixels)
}
