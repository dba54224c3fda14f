package carousel

import (
	"strings"

	"github.com/billie-coop/carousel/internal/tui/styles"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/google/uuid"
)

// Item is a single carousel child.
type Item struct {
	ID      string
	Content string

	// Decorational items are visual filler: they take no focus index, do
	// not snap and are never scrolled into view.
	Decorational bool

	// Theme selects the item's background gradient (e.g. "blue", "red").
	Theme string

	// Markdown renders Content with glamour instead of as plain text.
	Markdown bool
}

// withIDs returns a copy of items with missing IDs filled in.
func withIDs(items []Item) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		out[i] = item
	}
	return out
}

// renderItem draws one item box. width and height are the inner content
// size; borders are added on top.
func renderItem(item Item, focused bool, width, height int) string {
	s := styles.CurrentTheme().S()

	if item.Decorational {
		return s.Decoration.Render(decorationContent(item, height))
	}

	box := s.Item
	if focused {
		box = s.ItemFocused
	}

	if item.Markdown {
		md := strings.TrimSpace(styles.RenderMarkdown(item.Content, width))
		return box.Render(lipgloss.NewStyle().
			Width(width).
			Height(height).
			MaxHeight(height).
			Render(md))
	}

	t := styles.CurrentTheme()
	from, to := t.Gradient(item.Theme)
	return box.Render(styles.RenderGradientBlock(item.Content, width, height, from, to, t.FgInverted))
}

// decorationContent stacks the label vertically, one character per row.
func decorationContent(item Item, height int) string {
	label := item.Content
	if label == "" {
		label = styles.DecorationLabel
	}
	runes := []rune(label)
	if len(runes) > height {
		runes = runes[:height]
	}
	rows := make([]string, len(runes))
	for i, r := range runes {
		rows[i] = string(r)
	}
	return strings.Join(rows, "\n")
}
