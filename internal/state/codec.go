package state

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// KeyPrefix namespaces group layouts in the backing store.
const KeyPrefix = "panes:"

// GroupKey returns the storage key of a group.
func GroupKey(autosaveID string) string {
	return KeyPrefix + autosaveID
}

// PanelIdentity is what a panel contributes to its group's panel key.
type PanelIdentity struct {
	ID       string
	Declared bool // ID was declared rather than derived from position
	Order    int
	// Constraints is a stable rendering of the panel's constraints, used
	// when the panel has no declared id.
	Constraints string
}

// PanelKey identifies the set of mounted panels so that each combination
// of conditional panels keeps its own layout.
func PanelKey(panels []PanelIdentity) string {
	parts := make([]string, len(panels))
	for i, p := range panels {
		switch {
		case p.Declared:
			parts[i] = p.ID
		case p.Order != 0:
			parts[i] = strconv.Itoa(p.Order) + ":" + p.Constraints
		default:
			parts[i] = p.Constraints
		}
	}
	slices.Sort(parts)
	return strings.Join(parts, ",")
}

// Entry is the persisted state of one panel combination.
type Entry struct {
	ExpandToSizes map[string]float64 `json:"expandToSizes,omitempty"`
	Layout        Sizes              `json:"layout"`
}

// Sizes is a persisted layout. It decodes from plain numbers or from
// {"order": n, "size": s} objects, which are sorted by order.
type Sizes []float64

type orderedSize struct {
	Order int     `json:"order"`
	Size  float64 `json:"size"`
}

func (s *Sizes) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	sizes := make([]float64, 0, len(raw))
	var ordered []orderedSize
	for _, item := range raw {
		item = bytes.TrimSpace(item)
		if len(item) > 0 && item[0] == '{' {
			var o orderedSize
			if err := json.Unmarshal(item, &o); err != nil {
				return err
			}
			ordered = append(ordered, o)
			continue
		}
		var v float64
		if err := json.Unmarshal(item, &v); err != nil {
			return err
		}
		sizes = append(sizes, v)
	}

	if len(ordered) > 0 {
		if len(sizes) > 0 {
			return errors.New("layout mixes plain and ordered sizes")
		}
		slices.SortStableFunc(ordered, func(a, b orderedSize) int { return a.Order - b.Order })
		for _, o := range ordered {
			sizes = append(sizes, o.Size)
		}
	}

	*s = sizes
	return nil
}

// Decode returns the entry stored for panelKey in a group's stored value.
// Missing entries and unparsable values both report false.
func Decode(stored, panelKey string) (*Entry, bool) {
	if stored == "" {
		return nil, false
	}
	var all map[string]Entry
	if err := json.Unmarshal([]byte(stored), &all); err != nil {
		return nil, false
	}
	e, ok := all[panelKey]
	if !ok || len(e.Layout) == 0 {
		return nil, false
	}
	return &e, true
}

// Encode merges e under panelKey into a group's stored value, keeping
// the entries of other panel combinations. A corrupt stored value is replaced.
func Encode(stored, panelKey string, e Entry) (string, error) {
	all := make(map[string]Entry)
	if stored != "" {
		if err := json.Unmarshal([]byte(stored), &all); err != nil {
			all = make(map[string]Entry)
		}
	}
	all[panelKey] = e

	data, err := json.Marshal(all)
	if err != nil {
		return "", fmt.Errorf("encode layout: %w", err)
	}
	return string(data), nil
}
