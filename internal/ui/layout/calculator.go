// Package layout provides pure functions for UI dimension calculations.
package layout

import (
	"math"
	"sort"

	"github.com/llehouerou/panes/internal/geometry"
)

// Fixed chrome heights.
const (
	HeaderHeight = 1
	StatusHeight = 1
	HelpHeight   = 1
)

// HandleSize is the thickness of a resize handle in cells.
const HandleSize = 1

// HandleHitMargin is how far from a handle, in cells, a press still grabs it.
const HandleHitMargin = 1

// ContentHeight returns the rows left for the panel group.
func ContentHeight(windowHeight int) int {
	return max(windowHeight-HeaderHeight-StatusHeight-HelpHeight, 0)
}

// ContentArea returns the rectangle the panel group is drawn in.
func ContentArea(windowWidth, windowHeight int) geometry.Rect {
	return geometry.Rect{
		X:      0,
		Y:      HeaderHeight,
		Width:  float64(max(windowWidth, 0)),
		Height: float64(ContentHeight(windowHeight)),
	}
}

// GroupSize returns the cells available to panels along the group's axis:
// the axis length minus one cell per handle.
func GroupSize(axisLength, panelCount int) int {
	handles := max(panelCount-1, 0)
	return max(axisLength-handles*HandleSize, 0)
}

// Cells converts a percentage layout into whole cells summing to total,
// using the largest remainder method.
func Cells(layout []float64, total int) []int {
	cells := make([]int, len(layout))
	if total <= 0 || len(layout) == 0 {
		return cells
	}

	type remainder struct {
		index int
		frac  float64
	}
	rems := make([]remainder, len(layout))
	assigned := 0
	for i, pct := range layout {
		exact := max(pct, 0) * float64(total) / 100
		n := int(math.Floor(exact))
		cells[i] = n
		assigned += n
		rems[i] = remainder{i, exact - float64(n)}
	}

	sort.SliceStable(rems, func(a, b int) bool { return rems[a].frac > rems[b].frac })
	for k := 0; assigned < total; k++ {
		cells[rems[k%len(rems)].index]++
		assigned++
	}
	for k := len(rems) - 1; assigned > total; k-- {
		i := rems[(k%len(rems)+len(rems))%len(rems)].index
		if cells[i] > 0 {
			cells[i]--
			assigned--
		}
	}
	return cells
}

// Placement holds the rectangles of a group's panels and handles.
type Placement struct {
	Panels  []geometry.Rect
	Handles []geometry.Rect
}

// Place lays cells out inside area, with a handle between each pair of panels.
func Place(cells []int, vertical bool, area geometry.Rect) Placement {
	var p Placement
	offset := 0.0
	for i, n := range cells {
		size := float64(n)
		p.Panels = append(p.Panels, slice(area, vertical, offset, size))
		offset += size
		if i < len(cells)-1 {
			p.Handles = append(p.Handles, slice(area, vertical, offset, HandleSize))
			offset += HandleSize
		}
	}
	return p
}

func slice(area geometry.Rect, vertical bool, offset, size float64) geometry.Rect {
	if vertical {
		return geometry.Rect{X: area.X, Y: area.Y + offset, Width: area.Width, Height: size}
	}
	return geometry.Rect{X: area.X + offset, Y: area.Y, Width: size, Height: area.Height}
}

// CenteredBox returns a width x height box centered in area, shrunk to fit.
func CenteredBox(area geometry.Rect, width, height int) geometry.Rect {
	w := math.Min(float64(width), area.Width)
	h := math.Min(float64(height), area.Height)
	return geometry.Rect{
		X:      area.X + math.Floor((area.Width-w)/2),
		Y:      area.Y + math.Floor((area.Height-h)/2),
		Width:  w,
		Height: h,
	}
}
