package styles

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/charmbracelet/glamour/v2/ansi"
	"github.com/charmbracelet/lipgloss/v2"
)

// Semantic color names for consistency
type Theme struct {
	Name   string
	IsDark bool

	// Brand colors
	Primary   color.Color
	Secondary color.Color
	Tertiary  color.Color
	Accent    color.Color

	// Background colors
	BgBase   color.Color
	BgSubtle color.Color

	// Foreground colors
	FgBase     color.Color
	FgMuted    color.Color
	FgSubtle   color.Color
	FgInverted color.Color

	// Border colors
	Border      color.Color
	BorderFocus color.Color

	// Item gradients, keyed by item theme name. The empty name is the
	// default gradient.
	ItemGradients map[string][2]color.Color

	styles *Styles
}

type Styles struct {
	Base   lipgloss.Style
	Title  lipgloss.Style
	Muted  lipgloss.Style
	Subtle lipgloss.Style

	// Carousel
	Item        lipgloss.Style
	ItemFocused lipgloss.Style
	Decoration  lipgloss.Style
	ScrollTrack lipgloss.Style
	StatusKey   lipgloss.Style
	StatusValue lipgloss.Style

	Markdown ansi.StyleConfig
}

// DashedBorder is the border drawn around decorational items.
func DashedBorder() lipgloss.Border {
	return lipgloss.Border{
		Top:         "╌",
		Bottom:      "╌",
		Left:        "╎",
		Right:       "╎",
		TopLeft:     "┌",
		TopRight:    "┐",
		BottomLeft:  "└",
		BottomRight: "┘",
	}
}

func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

// Gradient returns the start and end colors for an item theme, falling back
// to the default gradient for unknown names.
func (t *Theme) Gradient(name string) (color.Color, color.Color) {
	if g, ok := t.ItemGradients[name]; ok {
		return g[0], g[1]
	}
	if g, ok := t.ItemGradients[""]; ok {
		return g[0], g[1]
	}
	return t.Primary, t.Secondary
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().
		Foreground(t.FgBase)

	return &Styles{
		Base: base,

		Title: base.
			Foreground(t.Accent).
			Bold(true),

		Muted: base.Foreground(t.FgMuted),

		Subtle: base.Foreground(t.FgSubtle),

		Item: base.
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),

		ItemFocused: base.
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(t.BorderFocus),

		Decoration: base.
			Foreground(t.FgMuted).
			BorderStyle(DashedBorder()).
			BorderForeground(t.FgSubtle).
			Padding(0, 1),

		ScrollTrack: base.Foreground(t.BgSubtle),

		StatusKey: base.
			Foreground(t.FgInverted).
			Background(t.Primary).
			Padding(0, 1),

		StatusValue: base.
			Foreground(t.FgMuted).
			Padding(0, 1),

		Markdown: t.buildMarkdownStyles(),
	}
}

// Helper functions for style pointers
func boolPtr(b bool) *bool       { return &b }
func stringPtr(s string) *string { return &s }

func (t *Theme) buildMarkdownStyles() ansi.StyleConfig {
	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: stringPtr(colorToHex(t.FgBase)),
			},
		},
		Heading: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: stringPtr(colorToHex(t.Secondary)),
				Bold:  boolPtr(true),
			},
		},
		H1: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: stringPtr(colorToHex(t.Accent)),
				Bold:  boolPtr(true),
			},
		},
		Text: ansi.StylePrimitive{
			Color: stringPtr(colorToHex(t.FgBase)),
		},
		Strong: ansi.StylePrimitive{
			Bold: boolPtr(true),
		},
		Emph: ansi.StylePrimitive{
			Italic: boolPtr(true),
		},
		Item: ansi.StylePrimitive{
			BlockPrefix: "• ",
		},
		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: stringPtr(colorToHex(t.Accent)),
			},
		},
	}
}

// Manager handles theme switching and registration
type Manager struct {
	themes  map[string]*Theme
	current *Theme
}

var defaultManager *Manager

func SetDefaultManager(m *Manager) {
	defaultManager = m
}

func DefaultManager() *Manager {
	if defaultManager == nil {
		defaultManager = NewManager("loco")
	}
	return defaultManager
}

func CurrentTheme() *Theme {
	return DefaultManager().Current()
}

func NewManager(defaultTheme string) *Manager {
	m := &Manager{
		themes: make(map[string]*Theme),
	}

	m.Register(NewLocoTheme())
	m.Register(NewDarkTheme())

	m.current = m.themes[defaultTheme]
	if m.current == nil {
		m.current = m.themes["loco"]
	}

	return m
}

func (m *Manager) Register(theme *Theme) {
	m.themes[theme.Name] = theme
}

func (m *Manager) Current() *Theme {
	return m.current
}

func (m *Manager) SetTheme(name string) error {
	if theme, ok := m.themes[name]; ok {
		m.current = theme
		return nil
	}
	return fmt.Errorf("theme %s not found", name)
}

// List returns the registered theme names in sorted order.
func (m *Manager) List() []string {
	names := make([]string, 0, len(m.themes))
	for name := range m.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Color utility functions

// ParseHex converts hex string to color
func ParseHex(hex string) color.Color {
	var r, g, b uint8
	fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// colorToHex converts color to hex string
func colorToHex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
