package mcp

import (
	"github.com/dayplan-labs/dayplan-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Scheduler manages the day's tasks.
	Scheduler driving.TaskScheduler
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Scheduler == nil {
		return ErrMissingSchedulerService
	}
	return nil
}
