package carousel

import "github.com/charmbracelet/bubbles/v2/key"

// KeyMap defines key bindings for manual carousel scrolling
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Start key.Binding
	End   key.Binding
}

// DefaultKeyMap returns the default key bindings for carousel scrolling
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "scroll left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "scroll right"),
		),
		Start: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home/g", "start"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end/G", "end"),
		),
	}
}

// ShortHelp returns the bindings shown in a one-line help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Start, k.End}
}
