package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Edit      key.Binding
	Apply     key.Binding
	Cancel    key.Binding
	Randomize key.Binding
	Reset     key.Binding
	Clear     key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Edit: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "edit configuration"),
	),
	Apply: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "apply"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Randomize: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "random configuration"),
	),
	Reset: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "reset"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+k"),
		key.WithHelp("ctrl+k", "clear tape"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Randomize, k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Edit, k.Apply, k.Cancel},
		{k.Randomize, k.Reset, k.Clear},
		{k.Quit},
	}
}

// editHelp is shown while the configuration input has focus
func (k keyMap) editHelp() []key.Binding {
	return []key.Binding{k.Apply, k.Cancel}
}
