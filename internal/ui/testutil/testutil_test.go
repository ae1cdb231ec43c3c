package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ansi codes", "hello world", "hello world"},
		{"with color codes", "\x1b[31mred\x1b[0m text", "red text"},
		{"with multiple codes", "\x1b[1;32mbold green\x1b[0m", "bold green"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripANSI(tt.input)
			if got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeWhitespace(t *testing.T) {
	got := NormalizeWhitespace("  a \t b\n\nc  ")
	if got != "a b c" {
		t.Errorf("NormalizeWhitespace() = %q, want %q", got, "a b c")
	}
}

func TestFindLine(t *testing.T) {
	output := "first\n\x1b[1msecond line\x1b[0m\nthird"

	if got := FindLine(output, "second"); got != "second line" {
		t.Errorf("FindLine() = %q, want %q", got, "second line")
	}
	if !ContainsLine(output, "third") {
		t.Error("ContainsLine() = false, want true")
	}
	if ContainsLine(output, "fourth") {
		t.Error("ContainsLine() = true, want false")
	}
}

func TestSplitLines(t *testing.T) {
	lines := SplitLines("a\nb\n\n  \n")
	if len(lines) != 2 {
		t.Errorf("SplitLines() = %q, want 2 lines", lines)
	}
}

func TestColumn(t *testing.T) {
	output := "ab│cd\nef│gh\nx"
	if got := Column(output, 2); got != "││ " {
		t.Errorf("Column() = %q, want %q", got, "││ ")
	}
}

func TestKey(t *testing.T) {
	for _, key := range []string{"left", "shift+tab", "enter", "home", "q", "?", "ctrl+c"} {
		if got := Key(key).String(); got != key {
			t.Errorf("Key(%q).String() = %q", key, got)
		}
	}
}

func TestMouse(t *testing.T) {
	msg := Mouse(tea.MouseActionPress, 3, 4)
	if msg.X != 3 || msg.Y != 4 || msg.Button != tea.MouseButtonLeft {
		t.Errorf("Mouse() = %+v", msg)
	}
	if Mouse(tea.MouseActionMotion, 0, 0).Button != tea.MouseButtonNone {
		t.Error("motion events carry no button")
	}
}
