package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanelKey(t *testing.T) {
	tests := []struct {
		name   string
		panels []PanelIdentity
		want   string
	}{
		{
			name: "declared ids are sorted",
			panels: []PanelIdentity{
				{ID: "right", Declared: true},
				{ID: "left", Declared: true},
				{ID: "middle", Declared: true},
			},
			want: "left,middle,right",
		},
		{
			name: "undeclared ids use order and constraints",
			panels: []PanelIdentity{
				{ID: "1", Order: 2, Constraints: `{"min":"10%"}`},
				{ID: "0", Constraints: `{}`},
			},
			want: `2:{"min":"10%"},{}`,
		},
		{
			name:   "empty",
			panels: nil,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PanelKey(tt.panels))
		})
	}
}

func TestDecode_OrderedLegacyLayout(t *testing.T) {
	stored := `{"left,middle,right":{"layout":[{"order":2,"size":58.984},{"order":1,"size":29.5488},{"order":3,"size":11.467}]}}`

	e, ok := Decode(stored, "left,middle,right")
	require.True(t, ok)
	assert.Equal(t, []float64{29.5488, 58.984, 11.467}, []float64(e.Layout))
}

func TestDecode_PlainLayoutWithExpandSizes(t *testing.T) {
	stored := `{"left,right":{"expandToSizes":{"left":35},"layout":[0,100]}}`

	e, ok := Decode(stored, "left,right")
	require.True(t, ok)
	assert.Equal(t, []float64{0, 100}, []float64(e.Layout))
	assert.Equal(t, 35.0, e.ExpandToSizes["left"])
}

func TestDecode_Failures(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		key    string
	}{
		{"empty", "", "a,b"},
		{"corrupt json", "{not json", "a,b"},
		{"other combination", `{"a,b,c":{"layout":[30,30,40]}}`, "a,b"},
		{"mixed layout entries", `{"a,b":{"layout":[50,{"order":1,"size":50}]}}`, "a,b"},
		{"empty layout", `{"a,b":{"layout":[]}}`, "a,b"},
		{"wrong type", `{"a,b":{"layout":"50,50"}}`, "a,b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Decode(tt.stored, tt.key)
			assert.False(t, ok)
		})
	}
}

func TestEncode_MergesCombinations(t *testing.T) {
	stored, err := Encode("", "a,b", Entry{Layout: Sizes{40, 60}})
	require.NoError(t, err)

	stored, err = Encode(stored, "a,b,c", Entry{Layout: Sizes{20, 30, 50}, ExpandToSizes: map[string]float64{"c": 50}})
	require.NoError(t, err)

	two, ok := Decode(stored, "a,b")
	require.True(t, ok)
	assert.Equal(t, []float64{40, 60}, []float64(two.Layout))

	three, ok := Decode(stored, "a,b,c")
	require.True(t, ok)
	assert.Equal(t, 50.0, three.ExpandToSizes["c"])
}

func TestEncode_ReplacesCorruptValue(t *testing.T) {
	stored, err := Encode("garbage", "a,b", Entry{Layout: Sizes{50, 50}})
	require.NoError(t, err)

	_, ok := Decode(stored, "a,b")
	assert.True(t, ok)
}
