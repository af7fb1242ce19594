// Package notify shows short-lived messages that clear themselves.
package notify

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTimeout is how long a notice stays up.
const DefaultTimeout = 3 * time.Second

// Level colours a notice.
type Level int

const (
	Info Level = iota
	Warning
	Error
)

// Notice is a transient message.
type Notice struct {
	ID    uint64
	Level Level
	Text  string
}

// ExpiredMsg is delivered when a notice's timer fires.
type ExpiredMsg struct {
	ID uint64
}

// Center holds at most one notice. A newer notice supersedes the current
// one; the older timer still fires but is ignored.
type Center struct {
	timeout time.Duration
	seq     uint64
	current *Notice
}

// NewCenter returns a center whose notices expire after timeout. A
// non-positive timeout falls back to DefaultTimeout.
func NewCenter(timeout time.Duration) *Center {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Center{timeout: timeout}
}

// Show replaces the current notice and returns the command that expires it.
func (c *Center) Show(level Level, text string) (Notice, tea.Cmd) {
	c.seq++
	n := Notice{ID: c.seq, Level: level, Text: text}
	c.current = &n
	id := n.ID
	return n, tea.Tick(c.timeout, func(time.Time) tea.Msg {
		return ExpiredMsg{ID: id}
	})
}

// Expire clears the notice if id is still current. It reports whether
// anything was cleared.
func (c *Center) Expire(id uint64) bool {
	if c.current == nil || c.current.ID != id {
		return false
	}
	c.current = nil
	return true
}

// Current returns the visible notice, if any.
func (c *Center) Current() (Notice, bool) {
	if c.current == nil {
		return Notice{}, false
	}
	return *c.current, true
}

// Dismiss clears whatever is showing.
func (c *Center) Dismiss() { c.current = nil }

// Timeout reports the expiry interval.
func (c *Center) Timeout() time.Duration { return c.timeout }
