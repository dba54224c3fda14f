package carousel

// Rect is a horizontal span measured in terminal cells.
type Rect struct {
	Left  float64
	Width float64
}

// Right returns the right edge of the span.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Center returns the horizontal midpoint of the span.
func (r Rect) Center() float64 {
	return r.Left + r.Width/2
}

// IntersectsCenter reports whether child strictly contains the container's
// horizontal midpoint. A child whose edge sits exactly on the midpoint does
// not intersect.
func IntersectsCenter(container, child Rect) bool {
	center := container.Center()
	return child.Left < center && center < child.Right()
}

// CenteredIndex returns the index of the first child intersecting the
// container's midpoint, or -1 if none does.
func CenteredIndex(container Rect, children []Rect) int {
	for i, child := range children {
		if IntersectsCenter(container, child) {
			return i
		}
	}
	return -1
}
