package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dayplan-labs/dayplan-cli/internal/adapters/driving/tui/messages"
	"github.com/dayplan-labs/dayplan-cli/internal/core/ports/driven"
)

// eventBufferSize bounds how many schedule events can queue between frames.
const eventBufferSize = 16

// listener bridges scheduler event broadcasts into Bubbletea messages.
// Update runs on the scheduler's goroutine, so it must never block: when
// the buffer is full the event is dropped, and the reload triggered by the
// next delivered event picks up the change anyway.
type listener struct {
	ch chan string
}

var _ driven.Notifier = (*listener)(nil)

// newListener creates a listener with a buffered event channel.
func newListener() *listener {
	return &listener{ch: make(chan string, eventBufferSize)}
}

// Update delivers one event message.
func (l *listener) Update(message string) {
	select {
	case l.ch <- message:
	default:
		// Buffer full: drop rather than block the scheduler.
	}
}

// waitForEvent returns a command that blocks until the next event arrives.
// The app re-issues it after each EventReceived to keep the stream flowing.
func (l *listener) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return messages.EventReceived{Message: <-l.ch}
	}
}
