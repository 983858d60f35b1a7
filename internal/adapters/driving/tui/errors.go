package tui

import "errors"

// ErrMissingScheduler is returned when the task scheduler is not provided.
var ErrMissingScheduler = errors.New("tui: task scheduler is required")
