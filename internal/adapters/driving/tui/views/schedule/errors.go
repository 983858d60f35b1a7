package schedule

import "errors"

// Error definitions for the schedule view.
var (
	// ErrNoScheduler indicates that no task scheduler was provided.
	ErrNoScheduler = errors.New("task scheduler is required")
)
