package domain

import (
	"fmt"
	"strings"
	"time"
)

// MinutesPerDay bounds every task interval. Times are whole minutes since
// midnight, so a valid interval satisfies 0 <= start < end <= MinutesPerDay.
const MinutesPerDay = 1440

// Priority indicates how important a task is.
type Priority string

// Available priorities.
const (
	// PriorityLow is for tasks that can slip.
	PriorityLow Priority = "Low"

	// PriorityMedium is the default weight for a task.
	PriorityMedium Priority = "Medium"

	// PriorityHigh is for tasks that must not be missed.
	PriorityHigh Priority = "High"
)

// AllPriorities returns the priorities in ascending order of importance.
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// IsValid returns true if the priority is recognised.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p Priority) String() string {
	return string(p)
}

// Description returns a human-readable description of the priority.
func (p Priority) Description() string {
	switch p {
	case PriorityLow:
		return "Low (can slip)"
	case PriorityMedium:
		return "Medium (normal)"
	case PriorityHigh:
		return "High (must not be missed)"
	default:
		return unknownDescription
	}
}

// ParsePriority normalises a priority word case-insensitively to one of the
// canonical values. Surrounding whitespace is ignored; anything that is not
// low, medium or high is rejected.
func ParsePriority(s string) (Priority, error) {
	trimmed := strings.TrimSpace(s)
	for _, p := range AllPriorities() {
		if strings.EqualFold(trimmed, string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: priority %q (want Low, Medium or High)", ErrInvalidInput, s)
}

// ParseClock converts an "HH:mm" clock string to minutes since midnight.
// Hours run 0-23 and minutes 0-59; both fields must be one or two digits.
// Anything else (missing colon, extra fields, signs, letters) is rejected.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: time %q (want HH:mm)", ErrInvalidInput, s)
	}
	hours, err := parseClockField(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: time %q (want HH:mm)", ErrInvalidInput, s)
	}
	minutes, err := parseClockField(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: time %q (want HH:mm)", ErrInvalidInput, s)
	}
	if hours > 23 {
		return 0, fmt.Errorf("%w: time %q (hours must be 00-23)", ErrInvalidInput, s)
	}
	if minutes > 59 {
		return 0, fmt.Errorf("%w: time %q (minutes must be 00-59)", ErrInvalidInput, s)
	}
	return hours*60 + minutes, nil
}

// parseClockField parses one clock field of one or two ASCII digits.
func parseClockField(s string) (int, error) {
	if len(s) == 0 || len(s) > 2 {
		return 0, ErrInvalidInput
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrInvalidInput
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}

// FormatClock renders minutes since midnight as an "HH:mm" clock string.
// MinutesPerDay renders as "24:00" so an end-of-day interval stays readable.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Task is a single scheduled interval within one day.
// Identity (ID, CreatedAt) is fixed at construction. Scheduling fields change
// only by whole-task replacement through an edit; the one exception is
// Completed, which the completion operation flips in place.
type Task struct {
	// ID is the unique identifier for the task. Assigned once, never reused.
	ID string

	// Title is the non-empty display text.
	Title string

	// Description is optional free text.
	Description string

	// StartMinutes is the inclusive start of the interval, in minutes since midnight.
	StartMinutes int

	// EndMinutes is the exclusive end of the interval, in minutes since midnight.
	// Always greater than StartMinutes.
	EndMinutes int

	// Priority is the task's importance.
	Priority Priority

	// Completed marks the task as done. Position in the schedule is unaffected.
	Completed bool

	// CreatedAt is when the task was created. Record-keeping only, never ordering.
	CreatedAt time.Time
}

// Overlaps reports whether two tasks share any moment in time.
// Intervals are half-open, so a task ending exactly where another starts
// does not overlap it.
func (t Task) Overlaps(other Task) bool {
	return t.StartMinutes < other.EndMinutes && other.StartMinutes < t.EndMinutes
}

// TimeRange renders the interval as "HH:mm-HH:mm".
func (t Task) TimeRange() string {
	return FormatClock(t.StartMinutes) + "-" + FormatClock(t.EndMinutes)
}

// Duration returns the interval length.
func (t Task) Duration() time.Duration {
	return time.Duration(t.EndMinutes-t.StartMinutes) * time.Minute
}

// Validate checks the task invariants: a non-blank id and title, a positive
// -length interval within the day, and a recognised priority.
func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("%w: task id is empty", ErrInvalidInput)
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: task title is empty", ErrInvalidInput)
	}
	if t.StartMinutes < 0 || t.EndMinutes > MinutesPerDay {
		return fmt.Errorf("%w: task %q interval %s is outside the day", ErrInvalidInput, t.Title, t.TimeRange())
	}
	if t.EndMinutes <= t.StartMinutes {
		return fmt.Errorf("%w: task %q must end after it starts (%s)", ErrInvalidInput, t.Title, t.TimeRange())
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: task %q has priority %q", ErrInvalidInput, t.Title, t.Priority)
	}
	return nil
}

// TaskUpdate is a sparse set of field overrides for an edit.
// Nil fields keep the task's current value.
type TaskUpdate struct {
	// Title replaces the task title when set.
	Title *string

	// Description replaces the description when set. Setting it to the empty
	// string clears the description.
	Description *string

	// StartMinutes replaces the interval start when set.
	StartMinutes *int

	// EndMinutes replaces the interval end when set.
	EndMinutes *int

	// Priority replaces the priority when set.
	Priority *Priority
}

// IsEmpty reports whether the update overrides nothing.
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil &&
		u.StartMinutes == nil && u.EndMinutes == nil && u.Priority == nil
}

// ApplyTo returns a copy of task with the update's overrides applied.
// ID, Completed and CreatedAt always carry over unchanged.
func (u TaskUpdate) ApplyTo(task Task) Task {
	if u.Title != nil {
		task.Title = *u.Title
	}
	if u.Description != nil {
		task.Description = *u.Description
	}
	if u.StartMinutes != nil {
		task.StartMinutes = *u.StartMinutes
	}
	if u.EndMinutes != nil {
		task.EndMinutes = *u.EndMinutes
	}
	if u.Priority != nil {
		task.Priority = *u.Priority
	}
	return task
}
