// Package search debounces the search box and emits a query once typing
// pauses.
package search

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDelay is the quiet period after the last keystroke before a fetch.
const DefaultDelay = 2 * time.Second

// QueryMsg asks the owner to fetch the list for Term.
type QueryMsg struct {
	Term string
}

// settleMsg fires when a scheduled quiet period ends. Only the one
// carrying the controller's current tag is honored.
type settleMsg struct {
	tag int
}

// Controller owns the search input. Each change restarts the quiet period;
// superseded timers still fire but are dropped by tag.
type Controller struct {
	input   textinput.Model
	delay   time.Duration
	tag     int
	pending bool
	stopped bool
}

// New returns a controller that waits delay after the last change.
func New(delay time.Duration) Controller {
	if delay <= 0 {
		delay = DefaultDelay
	}
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "Search"
	ti.CharLimit = 200
	return Controller{input: ti, delay: delay}
}

// Term is the current search text, updated on every keystroke.
func (c Controller) Term() string { return c.input.Value() }

// SetTerm replaces the search text without scheduling a fetch.
func (c Controller) SetTerm(term string) Controller {
	c.input.SetValue(term)
	c.input.CursorEnd()
	return c
}

// Delay is the configured quiet period.
func (c Controller) Delay() time.Duration { return c.delay }

// Pending reports whether a quiet period is running.
func (c Controller) Pending() bool { return c.pending && !c.stopped }

func (c Controller) Focused() bool { return c.input.Focused() }

func (c Controller) Focus() (Controller, tea.Cmd) {
	cmd := c.input.Focus()
	return c, cmd
}

func (c Controller) Blur() Controller {
	c.input.Blur()
	return c
}

// Schedule starts (or restarts) the quiet period for the current term.
func (c Controller) Schedule() (Controller, tea.Cmd) {
	if c.stopped {
		return c, nil
	}
	c.tag++
	c.pending = true
	tag := c.tag
	return c, tea.Tick(c.delay, func(time.Time) tea.Msg {
		return settleMsg{tag: tag}
	})
}

// Stop cancels any pending quiet period; timers already in flight are
// ignored when they arrive.
func (c Controller) Stop() Controller {
	c.stopped = true
	c.pending = false
	return c
}

// Update feeds keystrokes to the input and handles expired timers.
func (c Controller) Update(msg tea.Msg) (Controller, tea.Cmd) {
	if m, ok := msg.(settleMsg); ok {
		if c.stopped || m.tag != c.tag {
			return c, nil
		}
		c.pending = false
		term := c.input.Value()
		return c, func() tea.Msg { return QueryMsg{Term: term} }
	}

	before := c.input.Value()
	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	if c.input.Value() == before {
		return c, cmd
	}
	var tick tea.Cmd
	c, tick = c.Schedule()
	return c, tea.Batch(cmd, tick)
}

func (c Controller) View() string { return c.input.View() }
