package commands

import (
	tea "github.com/charmbracelet/bubbletea"

	"boxpick/internal/selection"
	"boxpick/internal/ui/input/types"
	"boxpick/internal/ui/state"
	"boxpick/internal/ui/views"
)

// Executor applies selection actions to the service and UI state
type Executor struct {
	state     *state.AppState
	selection *selection.Service
}

// NewExecutor creates a new command executor
func NewExecutor(appState *state.AppState, svc *selection.Service) *Executor {
	return &Executor{
		state:     appState,
		selection: svc,
	}
}

// Execute runs action if it is a selection or cursor action. It reports
// whether the action was handled so the caller can deal with the rest.
func (e *Executor) Execute(action types.Action) (bool, tea.Cmd) {
	switch a := action.(type) {
	case types.SelectBoxAction:
		if box, ok := e.selection.BoxSelectedBox(a.Identifier); ok {
			e.state.Cursor = box
		}
		return true, nil

	case types.SelectCursorAction:
		e.selection.Select(e.state.Cursor)
		return true, nil

	case types.MoveCursorAction:
		e.state.MoveCursor(a.Delta)
		return true, nil

	case types.ClearSelectionAction:
		e.selection.Clear()
		return true, nil

	case types.TogglePolicyAction:
		e.selection.TogglePolicy()
		return true, nil

	case types.SetStatusAction:
		e.state.SetStatus(views.StatusInfo, a.Message)
		return true, nil
	}

	return false, nil
}
