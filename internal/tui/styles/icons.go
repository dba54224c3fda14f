package styles

const (
	// Scroll hints
	ScrollLeftIcon  string = "◀"
	ScrollRightIcon string = "▶"

	// Scrollbar
	ScrollTrackRune string = "─"
	ScrollThumbRune string = "━"

	// Label drawn inside decorational items
	DecorationLabel string = "decoration"
)
