// Package tui hosts the carousel in a full-screen program.
//
// The host owns the focused index. The carousel reports where the user
// scrolled to with an IndexChangedMsg, the host stores it and hands it back
// through SetFocusedIndex, and next/prev keys move it directly.
package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/billie-coop/carousel/internal/logging"
	"github.com/billie-coop/carousel/internal/tui/components/carousel"
	"github.com/billie-coop/carousel/internal/tui/components/status"
	"github.com/billie-coop/carousel/internal/tui/styles"
	"github.com/charmbracelet/bubbles/v2/key"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// Options configures the host model.
type Options struct {
	Items         []carousel.Item
	FocusedIndex  int
	AllowScroll   bool
	HideScrollBar bool
	Gap           int
	SettleDelay   time.Duration
	Theme         string

	// OnFocusChange is called whenever the controlled index moves.
	OnFocusChange func(int)
}

// Model is the top-level program model
type Model struct {
	width  int
	height int

	carousel  *carousel.Model
	statusBar *status.Component
	keyMap    KeyMap
	themes    *styles.Manager
	logger    *slog.Logger

	onFocusChange func(int)

	// Controlled state: the index the carousel is told to focus
	focusedIndex int
	focusable    int
}

// New creates the host model and its components
func New(opts Options) *Model {
	themes := styles.NewManager(opts.Theme)
	styles.SetDefaultManager(themes)

	logger := logging.WithComponent("tui")

	settle := opts.SettleDelay
	if settle <= 0 {
		settle = carousel.DefaultSettleDelay
	}

	// A saved index can outlive the items it was saved for
	focusable := countFocusable(opts.Items)
	focused := clampIndex(opts.FocusedIndex, focusable)

	c := carousel.New(opts.Items,
		carousel.WithFocusedIndex(focused),
		carousel.WithAllowScroll(opts.AllowScroll),
		carousel.WithHideScrollBar(opts.HideScrollBar),
		carousel.WithGap(opts.Gap),
		carousel.WithSettleDelay(settle),
		carousel.WithOnIndexChange(func(index int) {
			logger.Info("scrolled to", "index", index)
		}),
	)

	m := &Model{
		carousel:      c,
		statusBar:     status.New(),
		keyMap:        DefaultKeyMap(),
		themes:        themes,
		logger:        logger,
		onFocusChange: func(int) {},
		focusedIndex:  focused,
		focusable:     focusable,
	}
	if opts.OnFocusChange != nil {
		m.onFocusChange = opts.OnFocusChange
	}
	m.updateStatusField()
	m.updateHelp()
	return m
}

// clampIndex keeps index inside [0, focusable). With nothing to focus it
// is 0.
func clampIndex(index, focusable int) int {
	if focusable == 0 {
		return 0
	}
	return min(max(0, index), focusable-1)
}

func countFocusable(items []carousel.Item) int {
	n := 0
	for _, item := range items {
		if !item.Decorational {
			n++
		}
	}
	return n
}

// FocusedIndex returns the host's focused index
func (m *Model) FocusedIndex() int {
	return m.focusedIndex
}

// Carousel returns the hosted carousel
func (m *Model) Carousel() *carousel.Model {
	return m.carousel
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.carousel.Init(), m.statusBar.Init())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, tea.Batch(
			m.carousel.SetSize(m.width, max(0, m.height-1)),
			m.statusBar.SetSize(m.width, 1),
		)

	case carousel.IndexChangedMsg:
		return m, m.handleIndexChanged(msg.Index)

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, m.keyMap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Next):
			return m, m.setFocusedIndex(m.focusedIndex + 1)
		case key.Matches(msg, m.keyMap.Prev):
			return m, m.setFocusedIndex(m.focusedIndex - 1)
		case key.Matches(msg, m.keyMap.Theme):
			return m, m.cycleTheme()
		}
	}

	var cmds []tea.Cmd
	_, cmd := m.carousel.Update(msg)
	cmds = append(cmds, cmd)
	_, cmd = m.statusBar.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the carousel above the status bar
func (m *Model) View() tea.View {
	if m.width == 0 || m.height == 0 {
		return tea.NewView("Initializing...")
	}

	body := lipgloss.Place(m.width, max(0, m.height-1), lipgloss.Center, lipgloss.Center, m.carousel.View())
	return tea.NewView(lipgloss.JoinVertical(lipgloss.Left, body, m.statusBar.View()))
}

// setFocusedIndex moves the controlled index, clamped to the focusable items
func (m *Model) setFocusedIndex(index int) tea.Cmd {
	if m.focusable == 0 {
		return nil
	}
	index = clampIndex(index, m.focusable)
	if index == m.focusedIndex {
		return nil
	}

	m.focusedIndex = index
	m.updateStatusField()
	m.onFocusChange(index)
	return m.carousel.SetFocusedIndex(index)
}

// handleIndexChanged stores where the user scrolled to. A scroll that ended
// on nothing keeps the previous index.
func (m *Model) handleIndexChanged(index int) tea.Cmd {
	if index < 0 {
		return m.statusBar.ShowWarning("nothing centered")
	}

	cmd := m.setFocusedIndex(index)
	return tea.Batch(cmd, m.statusBar.ShowInfo(fmt.Sprintf("scrolled to %d", index)))
}

func (m *Model) cycleTheme() tea.Cmd {
	names := m.themes.List()
	current := m.themes.Current().Name

	next := names[0]
	for i, name := range names {
		if name == current {
			next = names[(i+1)%len(names)]
			break
		}
	}

	if err := m.themes.SetTheme(next); err != nil {
		return m.statusBar.ShowWarning(err.Error())
	}
	return tea.Batch(m.carousel.Refresh(), m.statusBar.ShowInfo("theme "+next))
}

func (m *Model) updateHelp() {
	var scroll []key.Binding
	if m.carousel.AllowScroll() {
		scroll = m.carousel.KeyMap().ShortHelp()
	}
	m.statusBar.SetHelp(helpLine(m.keyMap.ShortHelp(), scroll))
}

func (m *Model) updateStatusField() {
	if m.focusable == 0 {
		m.statusBar.SetField("index", "none")
		return
	}
	m.statusBar.SetField("index", fmt.Sprintf("%d of %d", m.focusedIndex+1, m.focusable))
}
