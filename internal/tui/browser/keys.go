package browser

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Primary    key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Filter     key.Binding
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	Primary: key.NewBinding(
		key.WithKeys("enter", " ", "m"),
		key.WithHelp("enter/m", "show more / retry"),
	),
	NextFilter: key.NewBinding(
		key.WithKeys("tab", "right", "l"),
		key.WithHelp("tab", "next type"),
	),
	PrevFilter: key.NewBinding(
		key.WithKeys("shift+tab", "left", "h"),
		key.WithHelp("shift+tab", "previous type"),
	),
	Filter: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "pick type"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "scroll down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "b"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "f"),
		key.WithHelp("pgdn", "page down"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Primary, k.NextFilter, k.Filter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Primary, k.Filter, k.NextFilter, k.PrevFilter},
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Help, k.Quit},
	}
}

func (k keyMap) scrolls() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown}
}
