package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestGradient_KeepsText(t *testing.T) {
	tests := []string{"", "p", "panes", "日本語", "👍🏽 ok"}
	for _, text := range tests {
		got := ansi.Strip(Gradient(text, lipgloss.Color("#ff0000"), lipgloss.Color("#0000ff"), true))
		if got != text {
			t.Errorf("Gradient(%q) stripped = %q", text, got)
		}
	}
}

func TestGradient_AnsiColorsFallBack(t *testing.T) {
	got := ansi.Strip(Gradient("abc", lipgloss.Color("240"), lipgloss.Color("39"), false))
	if got != "abc" {
		t.Errorf("Gradient() stripped = %q", got)
	}
}

func TestToColorful(t *testing.T) {
	if hex := toColorful(lipgloss.Color("#a78bfa")).Hex(); hex != "#a78bfa" {
		t.Errorf("toColorful(#a78bfa) = %s", hex)
	}
	if hex := toColorful(lipgloss.Color("240")).Hex(); hex != "#808080" {
		t.Errorf("toColorful(240) = %s, want neutral gray", hex)
	}
}

func TestHandleStyle_Precedence(t *testing.T) {
	s := T().S()
	if HandleStyle(true, true, true).GetFaint() != s.HandleDisabled.GetFaint() {
		t.Error("disabled handles should render disabled")
	}
	if HandleStyle(true, true, false).GetForeground() != s.HandleDragging.GetForeground() {
		t.Error("dragging should win over focus")
	}
	if HandleStyle(true, false, false).GetForeground() != s.HandleFocused.GetForeground() {
		t.Error("focused handle style expected")
	}
}

func TestGradientTitle(t *testing.T) {
	if !strings.Contains(ansi.Strip(GradientTitle("panes")), "panes") {
		t.Error("title text lost")
	}
}
