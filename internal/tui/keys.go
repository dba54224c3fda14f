package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/key"
)

// KeyMap defines the application-level key bindings
type KeyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Theme key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default application key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "]"),
			key.WithHelp("tab/]", "next item"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "["),
			key.WithHelp("shift+tab/[", "previous item"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "switch theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Next, k.Theme}
}

// helpLine renders enabled bindings as "key desc • key desc"
func helpLine(groups ...[]key.Binding) string {
	var parts []string
	for _, group := range groups {
		for _, b := range group {
			if !b.Enabled() {
				continue
			}
			h := b.Help()
			parts = append(parts, h.Key+" "+h.Desc)
		}
	}
	return strings.Join(parts, " • ")
}
