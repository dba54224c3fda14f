package status

import (
	"strings"
	"time"

	"github.com/billie-coop/carousel/internal/tui/components/core"
	"github.com/billie-coop/carousel/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// MessageType represents the type of status message
type MessageType int

const (
	Info MessageType = iota
	Warning
)

// StatusMessage represents a status bar message
type StatusMessage struct {
	Content   string
	Type      MessageType
	Timestamp time.Time
}

var _ core.Component = (*Component)(nil)
var _ core.Sizeable = (*Component)(nil)

// Component is a one-line status bar: a key/value pair on the left and a
// message that clears itself on the right. Key help fills the right side
// while there is no message.
type Component struct {
	core.SizeableBase

	label   string
	value   string
	help    string
	message *StatusMessage

	clearAfter time.Duration
}

// New creates a new status bar component
func New() *Component {
	return &Component{
		clearAfter: 3 * time.Second,
	}
}

// SetField sets the left-hand key/value, e.g. "index" / "2 of 5".
func (c *Component) SetField(label, value string) {
	c.label = label
	c.value = value
}

// SetHelp sets the key help shown when no message is up.
func (c *Component) SetHelp(help string) {
	c.help = help
}

// SetMessage sets a status message and returns the command that clears it
func (c *Component) SetMessage(content string, msgType MessageType) tea.Cmd {
	ts := time.Now()
	c.message = &StatusMessage{
		Content:   content,
		Type:      msgType,
		Timestamp: ts,
	}

	return tea.Tick(c.clearAfter, func(time.Time) tea.Msg {
		return clearMessageMsg{timestamp: ts}
	})
}

// ShowInfo shows an info message
func (c *Component) ShowInfo(message string) tea.Cmd {
	return c.SetMessage(message, Info)
}

// ShowWarning shows a warning message
func (c *Component) ShowWarning(message string) tea.Cmd {
	return c.SetMessage(message, Warning)
}

// Message returns the current message, if any
func (c *Component) Message() *StatusMessage {
	return c.message
}

// clearMessageMsg is sent when a status message should be cleared
type clearMessageMsg struct {
	timestamp time.Time
}

func (c *Component) Init() tea.Cmd {
	return nil
}

func (c *Component) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(clearMessageMsg); ok {
		// Only clear if this is for the current message
		if c.message != nil && msg.timestamp.Equal(c.message.Timestamp) {
			c.message = nil
		}
	}
	return c, nil
}

func (c *Component) View() string {
	if !c.Mounted() {
		return ""
	}

	s := styles.CurrentTheme().S()

	left := ""
	if c.label != "" {
		left = s.StatusKey.Render(c.label) + s.StatusValue.Render(c.value)
	}

	right := ""
	switch {
	case c.message != nil:
		right = c.formatMessage()
	case c.help != "":
		right = s.Subtle.Render(c.help)
	}

	leftWidth := lipgloss.Width(left)
	available := c.Width - leftWidth - 1
	if available <= 0 {
		return ansi.Truncate(left, c.Width, "…")
	}
	right = ansi.Truncate(right, available, "…")

	gap := max(1, c.Width-leftWidth-lipgloss.Width(right))
	return left + strings.Repeat(" ", gap) + right
}

// formatMessage formats the status message with appropriate styling
func (c *Component) formatMessage() string {
	s := styles.CurrentTheme().S()
	switch c.message.Type {
	case Warning:
		return s.Title.Render("⚠ " + c.message.Content)
	default:
		return s.Muted.Render(c.message.Content)
	}
}
