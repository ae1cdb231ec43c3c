package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/panes/internal/constraints"
	"github.com/llehouerou/panes/internal/units"
)

func TestValidate_RejectsCallerBugs(t *testing.T) {
	_, err := Validate([]float64{50, 50}, unconstrained(3))
	assert.ErrorIs(t, err, ErrLayoutLength)

	_, err = Validate([]float64{50, 40}, unconstrained(2))
	assert.ErrorIs(t, err, ErrLayoutTotal)
}

func TestValidate_ClampsAndRedistributes(t *testing.T) {
	tests := []struct {
		name   string
		cs     []constraints.Resolved
		layout []float64
		want   []float64
	}{
		{
			name:   "already valid",
			cs:     unconstrained(3),
			layout: []float64{20, 30, 50},
			want:   []float64{20, 30, 50},
		},
		{
			name:   "offsetting clamps",
			cs:     []constraints.Resolved{{Min: 20, Max: 100}, {Max: 100}, {Max: 30}},
			layout: []float64{10, 50, 40},
			want:   []float64{20, 50, 30},
		},
		{
			name:   "leftover goes to first panel with slack",
			cs:     []constraints.Resolved{{Min: 20, Max: 100}, {Max: 60}, {Max: 100}},
			layout: []float64{5, 80, 15},
			want:   []float64{25, 60, 15},
		},
		{
			name:   "collapsible below halfway collapses",
			cs:     []constraints.Resolved{{Min: 20, Max: 100, Collapsible: true}, {Max: 100}},
			layout: []float64{4, 96},
			want:   []float64{0, 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.layout, tt.cs)
			require.NoError(t, err)
			assert.True(t, units.LayoutsEqual(tt.want, got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestValidate_SumProperty(t *testing.T) {
	cs := []constraints.Resolved{
		{Min: 10, Max: 50, Collapsible: true},
		{Min: 15, Max: 100},
		{Min: 0, Max: 35},
	}
	layouts := [][]float64{
		{33.333, 33.333, 33.334},
		{80, 10, 10},
		{2, 2, 96},
		{50, 50, 0},
		{0, 100, 0},
	}

	for _, l := range layouts {
		got, err := Validate(l, cs)
		require.NoError(t, err)
		assert.InDelta(t, 100, units.Sum(got), 0.001, "layout %v -> %v", l, got)
	}
}

func TestValidate_RestoredLayoutRoundsWithoutShift(t *testing.T) {
	got, err := Validate([]float64{29.5488, 58.984, 11.467}, unconstrained(3))
	require.NoError(t, err)

	assert.Equal(t, []float64{29.549, 58.984, 11.467}, units.RoundLayout(got))
}

func TestDefault(t *testing.T) {
	cs := []constraints.Resolved{
		{Max: 100, Default: 30, HasDefault: true},
		{Max: 100, Default: 0, HasDefault: true, Collapsible: true},
		{Max: 100},
	}

	got := Default(cs)
	assert.Equal(t, []float64{30, 0, 70}, got)

	valid, err := Validate(got, cs)
	require.NoError(t, err)

	pixels := make([]float64, len(valid))
	for i, pct := range valid {
		pixels[i], err = units.PercentageToPixels(pct, 1000)
		require.NoError(t, err)
	}
	assert.Equal(t, []float64{300, 0, 700}, pixels)
}

func TestDefault_EvenSplit(t *testing.T) {
	got := Default(unconstrained(4))
	assert.Equal(t, []float64{25, 25, 25, 25}, got)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, []float64{25, 25, 50}, Normalize([]float64{1, 1, 2}))
	assert.Equal(t, []float64{50, 50}, Normalize([]float64{0, 0}))
	assert.Empty(t, Normalize(nil))
}

func TestKeyboardDelta(t *testing.T) {
	tests := []struct {
		name  string
		key   Key
		dir   Direction
		step  float64
		shift bool
		want  float64
	}{
		{"left horizontal", KeyLeft, Horizontal, 10, false, -10},
		{"right horizontal", KeyRight, Horizontal, 5, false, 5},
		{"up horizontal ignored", KeyUp, Horizontal, 10, false, 0},
		{"down vertical", KeyDown, Vertical, 10, false, 10},
		{"left vertical ignored", KeyLeft, Vertical, 10, false, 0},
		{"shift jumps", KeyRight, Horizontal, 10, true, 100},
		{"home", KeyHome, Horizontal, 10, false, -100},
		{"end", KeyEnd, Vertical, 10, false, 100},
		{"default step", KeyLeft, Horizontal, 0, false, -DefaultKeyboardStep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyboardDelta(tt.key, tt.dir, tt.step, tt.shift))
		})
	}
}

func TestDragDelta(t *testing.T) {
	got, err := DragDelta(100, 150, 500)
	require.NoError(t, err)
	assert.Equal(t, 10.0, got)

	_, err = DragDelta(0, 10, 0)
	assert.ErrorIs(t, err, units.ErrInvalidGroupSize)
}
