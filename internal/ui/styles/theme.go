package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	Primary   lipgloss.Color // focused handle, accents
	Secondary lipgloss.Color // gradient end

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Handle       lipgloss.Color
	HandleActive lipgloss.Color // being dragged

	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles.
type Styles struct {
	Base      lipgloss.Style
	Muted     lipgloss.Style
	Subtle    lipgloss.Style
	Title     lipgloss.Style
	Collapsed lipgloss.Style // label of a collapsed panel

	Handle         lipgloss.Style
	HandleFocused  lipgloss.Style
	HandleDragging lipgloss.Style
	HandleDisabled lipgloss.Style

	Status  lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	HelpBox lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Handle:       lipgloss.Color("#585858"),
	HandleActive: lipgloss.Color("#f1a208"),

	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:      base,
		Muted:     lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:    lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:     base.Bold(true),
		Collapsed: lipgloss.NewStyle().Foreground(t.FgSubtle).Italic(true),

		Handle:         lipgloss.NewStyle().Foreground(t.Handle),
		HandleFocused:  lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		HandleDragging: lipgloss.NewStyle().Foreground(t.HandleActive).Bold(true),
		HandleDisabled: lipgloss.NewStyle().Foreground(t.FgSubtle).Faint(true),

		Status:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
		HelpBox: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1),
	}
}
