// Package tui provides an interactive terminal user interface for dayplan.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/dayplan-labs/dayplan-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Scheduler manages the day's tasks.
	Scheduler driving.TaskScheduler
}

// NewPorts creates a new Ports aggregate with the given scheduler.
func NewPorts(scheduler driving.TaskScheduler) *Ports {
	return &Ports{Scheduler: scheduler}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Scheduler == nil {
		return ErrMissingScheduler
	}
	return nil
}
