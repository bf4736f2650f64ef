package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	Clear      key.Binding
	InputMode  key.Binding
	BlinkUp    key.Binding
	BlinkDown  key.Binding
	ZeroVel    key.Binding
	EOX        key.Binding
	AutoScroll key.Binding
	Refresh    key.Binding
	Help       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear history"),
		),
		InputMode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "callback/polling"),
		),
		BlinkUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+/-", "persistence"),
		),
		BlinkDown: key.NewBinding(
			key.WithKeys("-", "_"),
		),
		ZeroVel: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "0-velocity note-off"),
		),
		EOX: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "EOX category"),
		),
		AutoScroll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "auto-scroll"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh ports"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Clear, k.InputMode, k.AutoScroll, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Clear, k.AutoScroll, k.Refresh},
		{k.InputMode, k.BlinkUp, k.ZeroVel, k.EOX},
		{k.Help, k.Quit},
	}
}
