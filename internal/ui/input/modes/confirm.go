package modes

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"boxpick/internal/ui/input/types"
)

// ConfirmMode asks before clearing more than one selected box
type ConfirmMode struct {
	count int
}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "clear-confirm"
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	m.count = ctx.SelectedCount()
	return []types.Action{types.SetStatusAction{
		Message: fmt.Sprintf("Clear %d selected boxes? (y/n)", m.count),
	}}
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	m.count = 0
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "y", "Y", "enter":
		return []types.Action{
			types.ClearSelectionAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "n", "N", "esc", "q":
		return []types.Action{
			types.SetStatusAction{Message: "Clear cancelled"},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	// Swallow everything else while the prompt is up
	return nil, true
}
