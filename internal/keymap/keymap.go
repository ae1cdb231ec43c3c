// Package keymap defines key bindings for the application.
package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "handle", "panel"
}

// All contains all key bindings.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Handle
	{ActionNextHandle, []string{"tab"}, "Next handle", "handle"},
	{ActionPrevHandle, []string{"shift+tab"}, "Previous handle", "handle"},
	{ActionMoveLeft, []string{"left", "h"}, "Move left", "handle"},
	{ActionMoveRight, []string{"right", "l"}, "Move right", "handle"},
	{ActionMoveUp, []string{"up", "k"}, "Move up", "handle"},
	{ActionMoveDown, []string{"down", "j"}, "Move down", "handle"},
	{ActionJumpLeft, []string{"shift+left", "H"}, "Move fully left", "handle"},
	{ActionJumpRight, []string{"shift+right", "L"}, "Move fully right", "handle"},
	{ActionJumpUp, []string{"shift+up", "K"}, "Move fully up", "handle"},
	{ActionJumpDown, []string{"shift+down", "J"}, "Move fully down", "handle"},
	{ActionHandleHome, []string{"home"}, "Move to start", "handle"},
	{ActionHandleEnd, []string{"end"}, "Move to end", "handle"},

	// Panel
	{ActionToggleCollapse, []string{"enter"}, "Collapse/expand", "panel"},
	{ActionToggleConditional, []string{"c"}, "Show/hide optional panel", "panel"},
	{ActionResetLayout, []string{"r"}, "Reset layout", "panel"},
	{ActionCollapsePanel, []string{"-"}, "Collapse panel", "panel"},
	{ActionExpandPanel, []string{"+", "="}, "Expand panel", "panel"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// KeyBinding converts b for use with bubbles components. The help label is
// the first key.
func (b Binding) KeyBinding() key.Binding {
	label := ""
	if len(b.Keys) > 0 {
		label = b.Keys[0]
	}
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(label, b.Description),
	)
}

// HelpKeys implements help.KeyMap over a set of bindings.
type HelpKeys struct {
	short []key.Binding
	full  [][]key.Binding
}

// NewHelpKeys builds help keys. The short view lists the given actions; the
// full view has one column per context.
func NewHelpKeys(bindings []Binding, short ...Action) HelpKeys {
	var h HelpKeys
	columns := make(map[string]int)
	for _, b := range bindings {
		kb := b.KeyBinding()
		for _, a := range short {
			if a == b.Action {
				h.short = append(h.short, kb)
			}
		}
		col, ok := columns[b.Context]
		if !ok {
			col = len(h.full)
			columns[b.Context] = col
			h.full = append(h.full, nil)
		}
		h.full[col] = append(h.full[col], kb)
	}
	return h
}

// ShortHelp implements help.KeyMap.
func (h HelpKeys) ShortHelp() []key.Binding { return h.short }

// FullHelp implements help.KeyMap.
func (h HelpKeys) FullHelp() [][]key.Binding { return h.full }
