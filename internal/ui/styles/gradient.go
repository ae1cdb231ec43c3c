package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// GradientTitle renders bold text blended from the theme's primary to its
// secondary color.
func GradientTitle(text string) string {
	t := T()
	return Gradient(text, t.Primary, t.Secondary, true)
}

// Gradient renders text with a horizontal color gradient, one color per
// grapheme cluster.
func Gradient(text string, from, to lipgloss.Color, bold bool) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	style := lipgloss.NewStyle().Bold(bold)
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return style.Foreground(from).Render(text)
	}

	start, end := toColorful(from), toColorful(to)
	var b strings.Builder
	for i, cluster := range clusters {
		c := start.BlendHcl(end, float64(i)/float64(len(clusters)-1)).Clamped()
		b.WriteString(style.Foreground(lipgloss.Color(c.Hex())).Render(cluster))
	}
	return b.String()
}

// toColorful converts a hex lipgloss color. ANSI palette colors have no
// fixed RGB value and blend from a neutral gray.
func toColorful(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	gray, _ := colorful.MakeColor(color.Gray{Y: 128})
	return gray
}
