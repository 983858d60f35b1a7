package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested task does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a task with the same id is already scheduled.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict indicates a proposed interval overlaps a scheduled task.
	// Mutations that would break the no-overlap invariant fail with this.
	ErrConflict = errors.New("schedule conflict")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")
)

// ConflictError reports that a candidate interval overlaps a neighbouring
// task in the schedule. It carries both tasks so callers can say exactly
// what is in the way. Matches ErrConflict under errors.Is.
type ConflictError struct {
	// Candidate is the task that could not be scheduled.
	Candidate Task

	// Neighbor is the already-scheduled task the candidate overlaps.
	Neighbor Task
}

// Error renders the conflict with both titles and time ranges.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("schedule conflict: %q (%s) overlaps %q (%s)",
		e.Candidate.Title, e.Candidate.TimeRange(),
		e.Neighbor.Title, e.Neighbor.TimeRange())
}

// Unwrap lets errors.Is(err, ErrConflict) match conflict errors.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
