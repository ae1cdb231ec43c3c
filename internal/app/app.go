// internal/app/app.go
package app

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/panes/internal/config"
	"github.com/llehouerou/panes/internal/group"
	"github.com/llehouerou/panes/internal/keymap"
	"github.com/llehouerou/panes/internal/layout"
)

// Options configures the host model.
type Options struct {
	ResizeDebounce time.Duration
	Logger         *slog.Logger
}

// Model is the root application model: one panel group filling the terminal.
type Model struct {
	Group  *group.Group
	Panels []config.PanelConfig // every declared panel, mounted or not

	keys     *keymap.Resolver
	help     help.Model
	helpKeys keymap.HelpKeys
	ShowHelp bool

	logger         *slog.Logger
	resizeDebounce time.Duration

	Width         int
	Height        int
	pendingWidth  int
	pendingHeight int
	resizeVersion int

	Focus     int // focused handle
	animating bool
	ErrorMsg  string
}

// New creates the host model for a group whose panels were mounted with Mount.
func New(g *group.Group, panels []config.PanelConfig, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return Model{
		Group:          g,
		Panels:         panels,
		keys:           keymap.NewResolver(keymap.All),
		help:           help.New(),
		helpKeys:       keymap.NewHelpKeys(keymap.All, keymap.ActionNextHandle, keymap.ActionMoveLeft, keymap.ActionToggleCollapse, keymap.ActionToggleConditional, keymap.ActionHelp, keymap.ActionQuit),
		logger:         opts.Logger,
		resizeDebounce: opts.ResizeDebounce,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) vertical() bool {
	return m.Group.Direction() == layout.Vertical
}

// Title returns the display title of a mounted panel.
func (m Model) Title(id string) string {
	for _, p := range m.Panels {
		if p.ID == id {
			return p.DisplayTitle()
		}
	}
	return id
}
