package debounce

import (
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

// SettledMsg is delivered when a Tag's wait has elapsed.
type SettledMsg struct {
	ID  string
	Seq int
}

// Tag debounces on the Bubble Tea event loop. Each Trigger starts a tick
// and only the tick from the latest Trigger is reported as settled.
type Tag struct {
	id   string
	wait time.Duration
	seq  int
}

// NewTag creates a debouncer whose messages carry id.
func NewTag(id string, wait time.Duration) *Tag {
	return &Tag{id: id, wait: wait}
}

// ID returns the tag's message id.
func (t *Tag) ID() string {
	return t.id
}

// Wait returns the debounce window.
func (t *Tag) Wait() time.Duration {
	return t.wait
}

// Trigger supersedes any earlier trigger and returns the tick for this one.
func (t *Tag) Trigger() tea.Cmd {
	t.seq++
	id, seq := t.id, t.seq
	return tea.Tick(t.wait, func(time.Time) tea.Msg {
		return SettledMsg{ID: id, Seq: seq}
	})
}

// Settled reports whether msg belongs to the most recent Trigger.
func (t *Tag) Settled(msg SettledMsg) bool {
	return msg.ID == t.id && msg.Seq == t.seq
}
