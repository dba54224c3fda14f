package tui

import (
	"fmt"
	"testing"
	"time"

	"github.com/billie-coop/carousel/internal/tui/components/carousel"
	"github.com/billie-coop/carousel/internal/tui/components/status"
	"github.com/billie-coop/carousel/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := New(Options{
		Items: []carousel.Item{
			{Content: "A", Theme: "blue"},
			{Content: "B", Decorational: true},
			{Content: "C", Theme: "red"},
		},
		AllowScroll: true,
		Gap:         1,
		SettleDelay: time.Millisecond,
		Theme:       "loco",
	})
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 12})
	return m
}

func keyPress(text string) tea.KeyPressMsg {
	r := []rune(text)
	return tea.KeyPressMsg{Code: r[0], Text: text}
}

func TestModel_NextPrevMoveControlledIndex(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyPress("]"))
	assert.Equal(t, 1, m.FocusedIndex())
	assert.Equal(t, 1, m.Carousel().FocusedIndex())

	// Only two focusable items; the decoration is skipped.
	m.Update(keyPress("]"))
	assert.Equal(t, 1, m.FocusedIndex())

	m.Update(keyPress("["))
	assert.Equal(t, 0, m.FocusedIndex())
	assert.Equal(t, 0, m.Carousel().FocusedIndex())

	m.Update(keyPress("["))
	assert.Equal(t, 0, m.FocusedIndex())
}

func TestModel_OnFocusChange(t *testing.T) {
	var got []int
	m := New(Options{
		Items:         []carousel.Item{{Content: "A"}, {Content: "B"}, {Content: "C"}},
		OnFocusChange: func(i int) { got = append(got, i) },
	})
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 12})

	m.Update(keyPress("]"))
	m.Update(keyPress("]"))
	m.Update(keyPress("]")) // clamped, no change
	m.Update(keyPress("["))

	assert.Equal(t, []int{1, 2, 1}, got)
}

func TestModel_NewClampsSavedIndex(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  int
	}{
		{name: "past_the_end", index: 5, want: 1},
		{name: "negative", index: -3, want: 0},
		{name: "in_range", index: 1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(Options{
				Items:        []carousel.Item{{Content: "blue", Theme: "blue"}, {Content: "red", Theme: "red"}},
				FocusedIndex: tt.index,
				AllowScroll:  true,
			})
			m.Update(tea.WindowSizeMsg{Width: 60, Height: 12})

			assert.Equal(t, tt.want, m.FocusedIndex())
			assert.Equal(t, tt.want, m.Carousel().FocusedIndex())
			assert.Contains(t, m.statusBar.View(), fmt.Sprintf("%d of 2", tt.want+1))
			assert.Positive(t, m.Carousel().Offset())
		})
	}
}

func TestModel_ResizeKeepsFocus(t *testing.T) {
	m := newTestModel(t)
	m.Update(keyPress("]"))
	before := m.Carousel().Offset()

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})

	assert.Equal(t, 1, m.FocusedIndex())
	assert.Equal(t, before, m.Carousel().Offset(), "spacers absorb the extra width")
}

func TestModel_MouseWheelScrollsCarousel(t *testing.T) {
	m := newTestModel(t)
	before := m.Carousel().Offset()

	_, cmd := m.Update(tea.MouseWheelMsg{Button: tea.MouseWheelDown})

	assert.Greater(t, m.Carousel().Offset(), before)
	assert.NotNil(t, cmd, "wheel scrolling arms the settle debounce")
}

func TestModel_StatusBarShowsKeyHelp(t *testing.T) {
	m := newTestModel(t)

	view := m.statusBar.View()
	assert.Contains(t, view, "q quit")

	noScroll := New(Options{Items: []carousel.Item{{Content: "A"}}})
	assert.NotContains(t, noScroll.statusBar.help, "scroll left")
	assert.Contains(t, m.statusBar.help, "scroll left")
}

func TestModel_TabMovesToNextItem(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})

	assert.Equal(t, 1, m.FocusedIndex())
}

func TestModel_IndexChangedUpdatesState(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(carousel.IndexChangedMsg{Index: 1})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, m.FocusedIndex())
	assert.Equal(t, 1, m.Carousel().FocusedIndex())
	require.NotNil(t, m.statusBar.Message())
	assert.Equal(t, "scrolled to 1", m.statusBar.Message().Content)
}

func TestModel_IndexNotFoundKeepsState(t *testing.T) {
	m := newTestModel(t)
	m.Update(keyPress("]"))

	m.Update(carousel.IndexChangedMsg{Index: -1})

	assert.Equal(t, 1, m.FocusedIndex())
	require.NotNil(t, m.statusBar.Message())
	assert.Equal(t, status.Warning, m.statusBar.Message().Type)
}

// run executes cmd and flattens batches into the messages they produce.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestModel_ScrollRoundTrip(t *testing.T) {
	m := newTestModel(t)

	// Scroll right until C is the nearest item, then let it settle.
	var last tea.Cmd
	for range 6 {
		if _, cmd := m.Update(keyPress("l")); cmd != nil {
			last = cmd
		}
	}
	require.NotNil(t, last)

	var changed []carousel.IndexChangedMsg
	for _, msg := range run(last) {
		_, cmd := m.Update(msg)
		for _, out := range run(cmd) {
			if c, ok := out.(carousel.IndexChangedMsg); ok {
				changed = append(changed, c)
			}
		}
	}
	require.Len(t, changed, 1)
	assert.Equal(t, 1, changed[0].Index)

	m.Update(changed[0])
	assert.Equal(t, 1, m.FocusedIndex())
	assert.Equal(t, 1, m.Carousel().FocusedIndex())
}

func TestModel_ThemeCycles(t *testing.T) {
	m := newTestModel(t)

	m.Update(keyPress("t"))
	assert.Equal(t, "dark", styles.CurrentTheme().Name)

	m.Update(keyPress("t"))
	assert.Equal(t, "loco", styles.CurrentTheme().Name)
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(keyPress("q"))
	require.NotNil(t, cmd)

	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestModel_NoFocusableItems(t *testing.T) {
	m := New(Options{Items: []carousel.Item{{Decorational: true}}})

	_, cmd := m.Update(keyPress("]"))

	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.FocusedIndex())
}
