package types

// Cursor actions
type MoveCursorAction struct {
	Delta int // -1 left, +1 right
}

func (a MoveCursorAction) Type() string { return "move_cursor" }

// Selection actions
type SelectBoxAction struct {
	Identifier string // passed verbatim to the selection handler
}

func (a SelectBoxAction) Type() string { return "select_box" }

type SelectCursorAction struct{}

func (a SelectCursorAction) Type() string { return "select_cursor" }

type ClearSelectionAction struct{}

func (a ClearSelectionAction) Type() string { return "clear_selection" }

type TogglePolicyAction struct{}

func (a TogglePolicyAction) Type() string { return "toggle_policy" }

// SavePolicyAction writes the active policy back to the config file
type SavePolicyAction struct{}

func (a SavePolicyAction) Type() string { return "save_policy" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Status line
type SetStatusAction struct {
	Message string
}

func (a SetStatusAction) Type() string { return "set_status" }

// Help actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type OpenHelpPagerAction struct{}

func (a OpenHelpPagerAction) Type() string { return "open_help_pager" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
