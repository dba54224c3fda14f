package core

import tea "github.com/charmbracelet/bubbletea/v2"

// SizeableBase provides basic size management
type SizeableBase struct {
	Width  int
	Height int
}

// SetSize sets the component size
func (s *SizeableBase) SetSize(width, height int) tea.Cmd {
	s.Resize(width, height)
	return nil
}

// Resize stores the new size and reports whether the width changed.
// Components that lay out horizontally re-render only on width changes.
func (s *SizeableBase) Resize(width, height int) bool {
	changed := s.Width != width
	s.Width = width
	s.Height = height
	return changed
}

// GetSize returns the component size
func (s *SizeableBase) GetSize() (width, height int) {
	return s.Width, s.Height
}

// Mounted reports whether the component has been given a usable width.
func (s *SizeableBase) Mounted() bool {
	return s.Width > 0
}
