package teaui

import "github.com/charmbracelet/bubbles/v2/key"

// KeyMap lists the session bindings.
type KeyMap struct {
	Drink  key.Binding
	Sip    key.Binding
	Remove key.Binding
	Undo   key.Binding
	Goal   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap is used by New. The key command prints it as a legend.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Drink: key.NewBinding(
			key.WithKeys("+", "=", "a", "enter"),
			key.WithHelp("+", "drink a glass"),
		),
		Sip: key.NewBinding(
			key.WithKeys("h", "."),
			key.WithHelp("h", "half a glass"),
		),
		Remove: key.NewBinding(
			key.WithKeys("-", "x"),
			key.WithHelp("-", "remove a glass"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u", "ctrl+z"),
			key.WithHelp("u", "undo"),
		),
		Goal: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "cycle goal"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Drink, k.Remove, k.Undo, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Drink, k.Sip, k.Remove, k.Undo},
		{k.Goal, k.Help, k.Quit},
	}
}

// Bindings returns every binding in legend order.
func (k KeyMap) Bindings() []key.Binding {
	var all []key.Binding
	for _, col := range k.FullHelp() {
		all = append(all, col...)
	}
	return all
}
