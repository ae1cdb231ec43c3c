//nolint:goconst // test cases intentionally repeat strings for readability
package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpPanelShow,
			err:      nil,
			expected: "",
		},
		{
			name:     "formats error with operation",
			op:       OpPanelShow,
			err:      errors.New("duplicate panel id"),
			expected: "Failed to show panel: duplicate panel id",
		},
		{
			name:     "layout operation",
			op:       OpLayoutReset,
			err:      errors.New("layout does not sum to 100"),
			expected: "Failed to reset layout: layout does not sum to 100",
		},
		{
			name:     "storage operation",
			op:       OpStorageOpen,
			err:      errors.New("database is locked"),
			expected: "Failed to open layout storage: database is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.op, tt.err)
			if result != tt.expected {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpPanelHide,
			context:  "details",
			err:      nil,
			expected: "",
		},
		{
			name:     "includes context",
			op:       OpPanelHide,
			context:  "details",
			err:      errors.New("unknown panel"),
			expected: "Failed to hide panel 'details': unknown panel",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpGroupResize,
			context:  "",
			err:      errors.New("group has no measured size"),
			expected: "Failed to resize group: group has no measured size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatWith(tt.op, tt.context, tt.err)
			if result != tt.expected {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, result, tt.expected)
			}
		})
	}
}
