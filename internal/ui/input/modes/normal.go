package modes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"boxpick/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.SelectA, m.keys.SelectB, m.keys.SelectC):
		// Box labels are upper case; the keyboard accepts either
		return []types.Action{types.SelectBoxAction{Identifier: strings.ToUpper(msg.String())}}, true

	case key.Matches(msg, m.keys.Left):
		return []types.Action{types.MoveCursorAction{Delta: -1}}, true

	case key.Matches(msg, m.keys.Right):
		return []types.Action{types.MoveCursorAction{Delta: 1}}, true

	case key.Matches(msg, m.keys.SelectHere):
		return []types.Action{types.SelectCursorAction{}}, true

	case key.Matches(msg, m.keys.Clear):
		if !ctx.HasSelection() {
			return nil, true
		}
		if ctx.SelectedCount() > 1 {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeClearConfirm}}, true
		}
		return []types.Action{types.ClearSelectionAction{}}, true

	case key.Matches(msg, m.keys.Policy):
		return []types.Action{types.TogglePolicyAction{}}, true

	case key.Matches(msg, m.keys.Save):
		return []types.Action{types.SavePolicyAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, m.keys.HelpPager):
		return []types.Action{types.OpenHelpPagerAction{}}, true
	}

	// Any other printable key is treated as an identifier; the selection
	// handler ignores the ones that name no box.
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return []types.Action{types.SelectBoxAction{Identifier: string(msg.Runes)}}, true
	}

	return nil, false
}
