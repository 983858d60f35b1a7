// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/dayplan-labs/dayplan-cli/internal/core/domain"
)

// ScheduleLoaded carries the day's schedule back to the model.
type ScheduleLoaded struct {
	Tasks []domain.Task
}

// TaskCompleted signals a completion request finished.
type TaskCompleted struct {
	ID  string
	Err error
}

// TaskRemoved signals a removal request finished.
type TaskRemoved struct {
	ID  string
	Err error
}

// EventReceived carries one schedule change notification for the event line.
type EventReceived struct {
	Message string
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
