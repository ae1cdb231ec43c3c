package testutil

import tea "github.com/charmbracelet/bubbletea"

// Harness drives a tea.Model in tests and records the commands it returns.
type Harness struct {
	model tea.Model
	cmds  []tea.Cmd
}

// NewHarness wraps m. Commands returned by Init are recorded.
func NewHarness(m tea.Model) *Harness {
	h := &Harness{model: m}
	if cmd := m.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Model returns the current model for type assertion.
func (h *Harness) Model() tea.Model {
	return h.model
}

// Send passes msg to the model and records the returned command.
func (h *Harness) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey sends a key by its bubbletea name, e.g. "left", "shift+tab" or "q".
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.Send(Key(key))
}

// Press, Move and Release send left mouse button events at a cell.
func (h *Harness) Press(x, y int) tea.Cmd {
	return h.Send(Mouse(tea.MouseActionPress, x, y))
}

func (h *Harness) Move(x, y int) tea.Cmd {
	return h.Send(Mouse(tea.MouseActionMotion, x, y))
}

func (h *Harness) Release(x, y int) tea.Cmd {
	return h.Send(Mouse(tea.MouseActionRelease, x, y))
}

// View returns the model's rendered output.
func (h *Harness) View() string {
	return h.model.View()
}

// LastCommand returns the most recent command, or nil if none.
func (h *Harness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ClearCommands clears recorded commands.
func (h *Harness) ClearCommands() {
	h.cmds = nil
}

// ExecuteCmd runs a command and returns its message, or nil for a nil command.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

var namedKeys = map[string]tea.KeyType{
	"enter":       tea.KeyEnter,
	"esc":         tea.KeyEscape,
	"tab":         tea.KeyTab,
	"shift+tab":   tea.KeyShiftTab,
	"left":        tea.KeyLeft,
	"right":       tea.KeyRight,
	"up":          tea.KeyUp,
	"down":        tea.KeyDown,
	"shift+left":  tea.KeyShiftLeft,
	"shift+right": tea.KeyShiftRight,
	"shift+up":    tea.KeyShiftUp,
	"shift+down":  tea.KeyShiftDown,
	"home":        tea.KeyHome,
	"end":         tea.KeyEnd,
	"ctrl+c":      tea.KeyCtrlC,
	" ":           tea.KeySpace,
}

// Key builds the tea.KeyMsg whose String() is key.
func Key(key string) tea.KeyMsg {
	if t, ok := namedKeys[key]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// Mouse builds a left button mouse event.
func Mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	button := tea.MouseButtonLeft
	if action == tea.MouseActionMotion {
		button = tea.MouseButtonNone
	}
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}
