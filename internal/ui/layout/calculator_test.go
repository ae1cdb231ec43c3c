package layout

import (
	"testing"

	"github.com/llehouerou/panes/internal/geometry"
)

func TestContentHeight(t *testing.T) {
	tests := []struct {
		name         string
		windowHeight int
		want         int
	}{
		{"regular window", 40, 37},
		{"only chrome", 3, 0},
		{"too small", 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ContentHeight(tt.windowHeight)
			if got != tt.want {
				t.Errorf("ContentHeight(%d) = %d, want %d", tt.windowHeight, got, tt.want)
			}
		})
	}
}

func TestGroupSize(t *testing.T) {
	tests := []struct {
		axis, panels, want int
	}{
		{100, 3, 98},
		{100, 1, 100},
		{100, 0, 100},
		{1, 3, 0},
	}

	for _, tt := range tests {
		got := GroupSize(tt.axis, tt.panels)
		if got != tt.want {
			t.Errorf("GroupSize(%d, %d) = %d, want %d", tt.axis, tt.panels, got, tt.want)
		}
	}
}

func TestCells(t *testing.T) {
	tests := []struct {
		name   string
		layout []float64
		total  int
		want   []int
	}{
		{"exact", []float64{25, 50, 25}, 100, []int{25, 50, 25}},
		{"thirds", []float64{33.333, 33.333, 33.334}, 10, []int{3, 3, 4}},
		{"largest remainder wins", []float64{45, 55}, 9, []int{4, 5}},
		{"collapsed panel", []float64{0, 100}, 37, []int{0, 37}},
		{"zero total", []float64{50, 50}, 0, []int{0, 0}},
		{"empty layout", nil, 10, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cells(tt.layout, tt.total)
			if len(got) != len(tt.want) {
				t.Fatalf("Cells() = %v, want %v", got, tt.want)
			}
			sum := 0
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Cells() = %v, want %v", got, tt.want)
					break
				}
				sum += got[i]
			}
			if len(got) > 0 && sum != tt.total {
				t.Errorf("sum(Cells()) = %d, want %d", sum, tt.total)
			}
		})
	}
}

func TestPlace_Horizontal(t *testing.T) {
	area := geometry.Rect{X: 0, Y: 1, Width: 12, Height: 5}
	p := Place([]int{3, 4, 3}, false, area)

	if len(p.Panels) != 3 || len(p.Handles) != 2 {
		t.Fatalf("got %d panels, %d handles", len(p.Panels), len(p.Handles))
	}
	wantHandles := []geometry.Rect{
		{X: 3, Y: 1, Width: 1, Height: 5},
		{X: 8, Y: 1, Width: 1, Height: 5},
	}
	for i, want := range wantHandles {
		if p.Handles[i] != want {
			t.Errorf("handle %d = %+v, want %+v", i, p.Handles[i], want)
		}
	}
	if last := p.Panels[2]; last.X != 9 || last.Right() != 12 {
		t.Errorf("last panel = %+v, want x 9..12", last)
	}
}

func TestPlace_Vertical(t *testing.T) {
	area := geometry.Rect{X: 0, Y: 1, Width: 20, Height: 9}
	p := Place([]int{4, 4}, true, area)

	if len(p.Handles) != 1 {
		t.Fatalf("got %d handles, want 1", len(p.Handles))
	}
	want := geometry.Rect{X: 0, Y: 5, Width: 20, Height: 1}
	if p.Handles[0] != want {
		t.Errorf("handle = %+v, want %+v", p.Handles[0], want)
	}
	if p.Panels[1].Y != 6 {
		t.Errorf("second panel y = %v, want 6", p.Panels[1].Y)
	}
}

func TestCenteredBox(t *testing.T) {
	area := geometry.Rect{X: 0, Y: 1, Width: 80, Height: 20}

	box := CenteredBox(area, 40, 10)
	want := geometry.Rect{X: 20, Y: 6, Width: 40, Height: 10}
	if box != want {
		t.Errorf("CenteredBox() = %+v, want %+v", box, want)
	}

	box = CenteredBox(area, 100, 30)
	if box.Width != 80 || box.Height != 20 {
		t.Errorf("oversized box = %+v, want clipped to area", box)
	}
}
