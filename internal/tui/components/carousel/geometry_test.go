package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersectsCenter(t *testing.T) {
	// Width 80 at x=10 puts the midpoint at 50.
	container := Rect{Left: 10, Width: 80}

	tests := []struct {
		name  string
		child Rect
		want  bool
	}{
		{name: "spans_center", child: Rect{Left: 40, Width: 20}, want: true},
		{name: "left_of_center", child: Rect{Left: 20, Width: 20}, want: false},
		{name: "right_of_center", child: Rect{Left: 60, Width: 20}, want: false},
		{name: "right_edge_on_center", child: Rect{Left: 30, Width: 20}, want: false},
		{name: "left_edge_on_center", child: Rect{Left: 50, Width: 20}, want: false},
		{name: "just_over_left_edge", child: Rect{Left: 49.5, Width: 20}, want: true},
		{name: "zero_width_on_center", child: Rect{Left: 50, Width: 0}, want: false},
		{name: "wider_than_container", child: Rect{Left: 0, Width: 200}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IntersectsCenter(container, tt.child))
		})
	}
}

func TestIntersectsCenter_OddWidth(t *testing.T) {
	// Midpoint at 3.5 falls inside the cell [3, 4).
	container := Rect{Left: 0, Width: 7}

	assert.True(t, IntersectsCenter(container, Rect{Left: 3, Width: 1}))
	assert.False(t, IntersectsCenter(container, Rect{Left: 2, Width: 1}))
}

func TestCenteredIndex(t *testing.T) {
	container := Rect{Left: 0, Width: 100}

	tests := []struct {
		name     string
		children []Rect
		want     int
	}{
		{name: "empty", children: nil, want: -1},
		{
			name:     "middle_child",
			children: []Rect{{Left: 0, Width: 30}, {Left: 30, Width: 40}, {Left: 70, Width: 30}},
			want:     1,
		},
		{
			name:     "boundary_between_two",
			children: []Rect{{Left: 20, Width: 30}, {Left: 50, Width: 30}},
			want:     -1,
		},
		{
			name:     "first_match_wins",
			children: []Rect{{Left: 0, Width: 10}, {Left: 40, Width: 20}, {Left: 45, Width: 10}},
			want:     1,
		},
		{
			name:     "none_near_center",
			children: []Rect{{Left: 0, Width: 10}, {Left: 90, Width: 10}},
			want:     -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CenteredIndex(container, tt.children))
		})
	}
}
