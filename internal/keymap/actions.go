// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Handle focus
	ActionNextHandle Action = "next_handle"
	ActionPrevHandle Action = "prev_handle"

	// Handle movement, in the direction of the arrow
	ActionMoveLeft  Action = "move_left"
	ActionMoveRight Action = "move_right"
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"

	// Full-range handle movement (shift+arrow)
	ActionJumpLeft  Action = "jump_left"
	ActionJumpRight Action = "jump_right"
	ActionJumpUp    Action = "jump_up"
	ActionJumpDown  Action = "jump_down"

	ActionHandleHome Action = "handle_home" // collapse everything before the handle
	ActionHandleEnd  Action = "handle_end"  // collapse everything after the handle

	// Panel actions
	ActionToggleCollapse    Action = "toggle_collapse"    // enter
	ActionToggleConditional Action = "toggle_conditional" // c
	ActionResetLayout       Action = "reset_layout"       // r
	ActionCollapsePanel     Action = "collapse_panel"     // -
	ActionExpandPanel       Action = "expand_panel"       // +
)
