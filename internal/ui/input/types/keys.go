package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding of the normal mode. It satisfies help.KeyMap.
type KeyMap struct {
	SelectA    key.Binding
	SelectB    key.Binding
	SelectC    key.Binding
	Left       key.Binding
	Right      key.Binding
	SelectHere key.Binding
	Clear      key.Binding
	Policy     key.Binding
	Help       key.Binding
	HelpPager  key.Binding
	Save       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		SelectA: key.NewBinding(
			key.WithKeys("a", "A"),
			key.WithHelp("a", "box A"),
		),
		SelectB: key.NewBinding(
			key.WithKeys("b", "B"),
			key.WithHelp("b", "box B"),
		),
		SelectC: key.NewBinding(
			key.WithKeys("c", "C"),
			key.WithHelp("c", "box C"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "move right"),
		),
		SelectHere: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "select at cursor"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc", "x"),
			key.WithHelp("esc", "clear selection"),
		),
		Policy: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "switch policy"),
		),
		Save: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "save policy"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		HelpPager: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "help in pager"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SelectA, k.SelectB, k.SelectC, k.SelectHere, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SelectA, k.SelectB, k.SelectC, k.SelectHere},
		{k.Left, k.Right, k.Clear},
		{k.Policy, k.Save, k.Help, k.HelpPager, k.Quit},
	}
}
