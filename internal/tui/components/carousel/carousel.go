// Package carousel implements a horizontally scrolling list that snaps
// items to the center of the viewport.
//
// The carousel reports the focusable index of whichever item ends up
// centered after the user stops scrolling, and scrolls an item to the
// center whenever its index is set from outside. Decorational items are
// drawn like any other item but take no index, never snap and are never
// scrolled into view. A blank spacer half the viewport wide is laid out
// before the first and after the last item so that both ends can reach
// the center.
package carousel

import (
	"log/slog"
	"strings"
	"time"

	"github.com/billie-coop/carousel/internal/debounce"
	"github.com/billie-coop/carousel/internal/logging"
	"github.com/billie-coop/carousel/internal/tui/components/core"
	"github.com/billie-coop/carousel/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/uuid"
)

const (
	// DefaultSettleDelay is how long scrolling must stop before the
	// centered item is reported.
	DefaultSettleDelay = 500 * time.Millisecond

	DefaultItemWidth  = 12
	DefaultItemHeight = 5
)

// IndexChangedMsg is emitted alongside the onIndexChange callback once a
// user scroll settles. Index is -1 when nothing is centered.
type IndexChangedMsg struct {
	Index int
}

// placed is an item after layout.
type placed struct {
	item  Item
	index int // focusable index, -1 for decorational items
	x     int // left edge in content columns, leading spacer included
	width int
}

var _ core.Component = (*Model)(nil)
var _ core.Sizeable = (*Model)(nil)
var _ core.Focusable = (*Model)(nil)

// Model is the carousel component.
type Model struct {
	core.SizeableBase
	core.FocusableBase

	items         []Item
	focusedIndex  int
	allowScroll   bool
	hideScrollBar bool
	onIndexChange func(int)

	gap        int
	itemWidth  int
	itemHeight int
	wheelStep  int
	keyStep    int

	keyMap KeyMap
	settle *debounce.Tag
	logger *slog.Logger

	offset       int
	spacer       int
	contentWidth int
	placed       []placed
	lines        []string

	// focusRef is the placed item matching focusedIndex. layout writes it,
	// scrollIntoView reads it.
	focusRef *placed
}

// Option configures a Model.
type Option func(*Model)

// WithFocusedIndex sets the initial focused index.
func WithFocusedIndex(index int) Option {
	return func(m *Model) {
		m.focusedIndex = index
	}
}

// WithAllowScroll lets the user scroll with the keyboard and mouse wheel.
func WithAllowScroll(allow bool) Option {
	return func(m *Model) {
		m.allowScroll = allow
	}
}

// WithHideScrollBar suppresses the scrollbar line.
func WithHideScrollBar(hide bool) Option {
	return func(m *Model) {
		m.hideScrollBar = hide
	}
}

// WithOnIndexChange sets the callback invoked when a user scroll settles.
func WithOnIndexChange(fn func(int)) Option {
	return func(m *Model) {
		if fn != nil {
			m.onIndexChange = fn
		}
	}
}

// WithGap sets the number of blank columns between items.
func WithGap(gap int) Option {
	return func(m *Model) {
		m.gap = max(0, gap)
	}
}

// WithItemSize sets the inner size of each item box.
func WithItemSize(width, height int) Option {
	return func(m *Model) {
		m.itemWidth = max(1, width)
		m.itemHeight = max(1, height)
	}
}

// WithSettleDelay changes the scroll debounce window.
func WithSettleDelay(d time.Duration) Option {
	return func(m *Model) {
		m.settle = debounce.NewTag(m.settle.ID(), d)
	}
}

// WithKeyMap replaces the scroll key bindings.
func WithKeyMap(km KeyMap) Option {
	return func(m *Model) {
		m.keyMap = km
	}
}

// WithLogger sets the logger used for scroll diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New creates a carousel over items. Items without an ID get one.
func New(items []Item, opts ...Option) *Model {
	m := &Model{
		items:         withIDs(items),
		onIndexChange: func(int) {},
		gap:           1,
		itemWidth:     DefaultItemWidth,
		itemHeight:    DefaultItemHeight,
		wheelStep:     2,
		keyStep:       4,
		keyMap:        DefaultKeyMap(),
		settle:        debounce.NewTag("carousel-"+uuid.NewString(), DefaultSettleDelay),
		logger:        logging.WithComponent("carousel"),
	}
	m.Focus()

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case debounce.SettledMsg:
		if m.settle.Settled(msg) {
			return m, m.handleScrollEnd()
		}
	case tea.MouseWheelMsg:
		if !m.allowScroll {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseWheelDown, tea.MouseWheelRight:
			return m, m.ScrollBy(m.wheelStep)
		case tea.MouseWheelUp, tea.MouseWheelLeft:
			return m, m.ScrollBy(-m.wheelStep)
		}
	case tea.KeyPressMsg:
		if !m.allowScroll || !m.Focused() {
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keyMap.Left):
			return m, m.ScrollBy(-m.keyStep)
		case key.Matches(msg, m.keyMap.Right):
			return m, m.ScrollBy(m.keyStep)
		case key.Matches(msg, m.keyMap.Start):
			return m, m.ScrollTo(0)
		case key.Matches(msg, m.keyMap.End):
			return m, m.ScrollTo(m.maxOffset())
		}
	}
	return m, nil
}

func (m *Model) View() string {
	if !m.Mounted() {
		return ""
	}

	lines := make([]string, len(m.lines), len(m.lines)+1)
	for i, line := range m.lines {
		visible := ansi.Cut(line, m.offset, m.offset+m.Width)
		if pad := m.Width - lipgloss.Width(visible); pad > 0 {
			visible += strings.Repeat(" ", pad)
		}
		lines[i] = visible
	}

	if bar := m.scrollbar(); bar != "" {
		lines = append(lines, bar)
	}

	return strings.Join(lines, "\n")
}

// SetSize lays the carousel out for a new width. The first time the
// carousel gets a width, the focused item is scrolled into view. Later
// resizes keep whatever was centered: the spacers grow with the width, so
// every item's centering offset stays the same.
func (m *Model) SetSize(width, height int) tea.Cmd {
	mounting := !m.Mounted()
	if !m.Resize(width, height) {
		return nil
	}

	m.layout()
	if mounting {
		m.scrollIntoView()
	}
	return nil
}

// SetItems replaces the carousel's children.
func (m *Model) SetItems(items []Item) tea.Cmd {
	m.items = withIDs(items)
	m.layout()
	return nil
}

// Items returns a copy of the carousel's children.
func (m *Model) Items() []Item {
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out
}

// FocusedIndex returns the index the carousel was last told to focus.
func (m *Model) FocusedIndex() int {
	return m.focusedIndex
}

// SetFocusedIndex focuses the index-th non-decorational item and scrolls it
// to the center. Setting the current index again does nothing. An index
// that matches no item leaves the view where it is.
func (m *Model) SetFocusedIndex(index int) tea.Cmd {
	if index == m.focusedIndex {
		return nil
	}

	m.focusedIndex = index
	m.layout()
	m.scrollIntoView()

	m.logger.Debug("focused index changed", "index", index, "offset", m.offset, "found", m.focusRef != nil)
	return nil
}

// AllowScroll reports whether user scrolling is enabled.
func (m *Model) AllowScroll() bool {
	return m.allowScroll
}

// SetAllowScroll enables or disables user scrolling.
func (m *Model) SetAllowScroll(allow bool) {
	m.allowScroll = allow
}

// SetHideScrollBar shows or hides the scrollbar line.
func (m *Model) SetHideScrollBar(hide bool) {
	m.hideScrollBar = hide
}

// KeyMap returns the scroll key bindings.
func (m *Model) KeyMap() KeyMap {
	return m.keyMap
}

// Refresh re-renders the items, e.g. after a theme change.
func (m *Model) Refresh() tea.Cmd {
	m.layout()
	return nil
}

// Offset returns the content column shown at the left edge of the viewport.
func (m *Model) Offset() int {
	return m.offset
}

// ScrollBy moves the viewport n columns and restarts the settle debounce.
// Scrolling that hits a bound without moving is not a scroll.
func (m *Model) ScrollBy(n int) tea.Cmd {
	return m.ScrollTo(m.offset + n)
}

// ScrollTo moves the viewport to offset and restarts the settle debounce.
func (m *Model) ScrollTo(offset int) tea.Cmd {
	before := m.offset
	m.offset = offset
	m.clampOffset()
	if m.offset == before {
		return nil
	}
	return m.settle.Trigger()
}

// layout renders every item and records where it sits. It also points
// focusRef at the item matching focusedIndex, if any.
func (m *Model) layout() {
	m.focusRef = nil
	if !m.Mounted() {
		m.placed = nil
		m.lines = nil
		m.contentWidth = 0
		m.offset = 0
		return
	}

	m.spacer = m.Width / 2
	placedItems := make([]placed, 0, len(m.items))
	blocks := make([]string, 0, 2*len(m.items)+2)

	if m.spacer > 0 {
		blocks = append(blocks, strings.Repeat(" ", m.spacer))
	}

	x := m.spacer
	index := 0
	for i, item := range m.items {
		if i > 0 && m.gap > 0 {
			blocks = append(blocks, strings.Repeat(" ", m.gap))
			x += m.gap
		}

		p := placed{item: item, index: -1, x: x}
		if !item.Decorational {
			p.index = index
			index++
		}

		view := renderItem(item, p.index >= 0 && p.index == m.focusedIndex, m.itemWidth, m.itemHeight)
		p.width = lipgloss.Width(view)
		blocks = append(blocks, view)
		placedItems = append(placedItems, p)
		x += p.width
	}

	if m.spacer > 0 {
		blocks = append(blocks, strings.Repeat(" ", m.spacer))
	}

	m.contentWidth = x + m.spacer
	m.placed = placedItems
	for i := range m.placed {
		if m.placed[i].index >= 0 && m.placed[i].index == m.focusedIndex {
			m.focusRef = &m.placed[i]
			break
		}
	}

	m.lines = strings.Split(lipgloss.JoinHorizontal(lipgloss.Center, blocks...), "\n")
	m.clampOffset()
}

// scrollIntoView centers the focused item.
func (m *Model) scrollIntoView() {
	if m.focusRef == nil || !m.Mounted() {
		return
	}
	m.offset = m.centerOffset(*m.focusRef)
	m.clampOffset()
}

// handleScrollEnd runs once scrolling has settled: it snaps to the nearest
// snap-eligible item and reports the centered item's focusable index.
func (m *Model) handleScrollEnd() tea.Cmd {
	if !m.Mounted() {
		return nil
	}

	m.snap()
	index := m.centeredIndex()
	m.logger.Debug("scroll settled", "offset", m.offset, "index", index)

	m.onIndexChange(index)
	return func() tea.Msg {
		return IndexChangedMsg{Index: index}
	}
}

// snap centers the non-decorational item closest to the viewport center.
func (m *Model) snap() {
	best, bestDist := -1, 0
	for _, p := range m.placed {
		if p.item.Decorational {
			continue
		}
		target := m.centerOffset(p)
		dist := abs(target - m.offset)
		if best < 0 || dist < bestDist {
			best, bestDist = target, dist
		}
	}
	if best < 0 {
		return
	}

	m.offset = best
	m.clampOffset()
}

// centeredIndex scans the non-decorational items for the one spanning the
// viewport center. The position in that filtered scan is the focusable
// index. Spacers are not items, so they are never candidates.
func (m *Model) centeredIndex() int {
	container := Rect{Left: 0, Width: float64(m.Width)}
	children := make([]Rect, 0, len(m.placed))
	for _, p := range m.placed {
		if p.item.Decorational {
			continue
		}
		children = append(children, Rect{
			Left:  float64(p.x - m.offset),
			Width: float64(p.width),
		})
	}
	return CenteredIndex(container, children)
}

// centerOffset is the offset that puts p in the middle of the viewport.
func (m *Model) centerOffset(p placed) int {
	return p.x + p.width/2 - m.Width/2
}

func (m *Model) maxOffset() int {
	return max(0, m.contentWidth-m.Width)
}

func (m *Model) clampOffset() {
	m.offset = min(max(0, m.offset), m.maxOffset())
}

// scrollbar draws the track with a gradient thumb. When there is room, the
// end cells show which directions can still be scrolled.
func (m *Model) scrollbar() string {
	maxOffset := m.maxOffset()
	if m.hideScrollBar || !m.allowScroll || maxOffset == 0 {
		return ""
	}

	t := styles.CurrentTheme()
	s := t.S()

	track := m.Width
	var left, right string
	if m.Width >= 3 {
		track -= 2
		left = s.ScrollTrack.Render(styles.ScrollTrackRune)
		right = left
		if m.offset > 0 {
			left = s.Subtle.Render(styles.ScrollLeftIcon)
		}
		if m.offset < maxOffset {
			right = s.Subtle.Render(styles.ScrollRightIcon)
		}
	}

	thumb := min(track, max(1, track*m.Width/m.contentWidth))
	pos := 0
	if span := track - thumb; span > 0 {
		pos = m.offset * span / maxOffset
	}
	rest := track - pos - thumb

	var bar strings.Builder
	bar.WriteString(left)
	if pos > 0 {
		bar.WriteString(s.ScrollTrack.Render(strings.Repeat(styles.ScrollTrackRune, pos)))
	}
	bar.WriteString(styles.ApplyGradient(strings.Repeat(styles.ScrollThumbRune, thumb), t.Primary, t.Secondary))
	if rest > 0 {
		bar.WriteString(s.ScrollTrack.Render(strings.Repeat(styles.ScrollTrackRune, rest)))
	}
	bar.WriteString(right)
	return bar.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
