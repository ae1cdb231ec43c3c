// Package geometry provides rectangle tests used for pointer hit testing and
// overlay occlusion of resize handles.
package geometry

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Intersects reports whether a and b overlap. When strict is false,
// rectangles that only share an edge also intersect.
func Intersects(a, b Rect, strict bool) bool {
	if strict {
		return a.X < b.Right() &&
			a.Right() > b.X &&
			a.Y < b.Bottom() &&
			a.Bottom() > b.Y
	}
	return a.X <= b.Right() &&
		a.Right() >= b.X &&
		a.Y <= b.Bottom() &&
		a.Bottom() >= b.Y
}

// Contains reports whether the point lies inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Inflate grows r by margin on every side.
func (r Rect) Inflate(margin float64) Rect {
	return Rect{
		X:      r.X - margin,
		Y:      r.Y - margin,
		Width:  r.Width + 2*margin,
		Height: r.Height + 2*margin,
	}
}

// Occluded reports whether target is covered by any of the overlays.
func Occluded(target Rect, overlays []Rect) bool {
	for _, o := range overlays {
		if Intersects(target, o, true) {
			return true
		}
	}
	return false
}

// HitTest returns the index of the first rect whose hit area (inflated by
// margin) contains the point and that is not covered by an overlay, or -1.
func HitTest(rects []Rect, x, y, margin float64, overlays []Rect) int {
	for i, r := range rects {
		if !r.Inflate(margin).Contains(x, y) {
			continue
		}
		point := Rect{X: x, Y: y}
		if Occluded(point.Inflate(0.5), overlays) {
			continue
		}
		return i
	}
	return -1
}
