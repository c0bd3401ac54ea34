package bubbletea

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the viewer's link and history bindings. Scrolling keys
// belong to the viewport.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next link")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev link")),
		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:     key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k KeyMap) help() []key.Binding {
	return []key.Binding{k.Next, k.Activate, k.Back, k.Quit}
}
