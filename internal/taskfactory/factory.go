// Package taskfactory constructs validated domain.Task values from raw user
// input. It is the sole entry point that builds tasks for the scheduler:
// front ends (CLI, TUI, MCP) parse input here, so the core never sees
// malformed fields.
package taskfactory

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dayplan-labs/dayplan-cli/internal/core/domain"
)

// Params carries the raw field values for a new task.
type Params struct {
	// Title is the display text. Required; surrounding whitespace is trimmed.
	Title string

	// Description is optional free text. Whitespace is trimmed.
	Description string

	// Start is the interval start as an "HH:mm" clock string.
	Start string

	// End is the interval end as an "HH:mm" clock string. Must be after Start.
	End string

	// Priority is the priority word, matched case-insensitively.
	// Blank defaults to Medium.
	Priority string
}

// Build validates params and assembles a task with a fresh id and creation
// timestamp.
func Build(params Params) (domain.Task, error) {
	title := strings.TrimSpace(params.Title)
	if title == "" {
		return domain.Task{}, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}

	start, err := domain.ParseClock(params.Start)
	if err != nil {
		return domain.Task{}, fmt.Errorf("start: %w", err)
	}
	end, err := domain.ParseClock(params.End)
	if err != nil {
		return domain.Task{}, fmt.Errorf("end: %w", err)
	}
	if end <= start {
		return domain.Task{}, fmt.Errorf("%w: end %s must be after start %s",
			domain.ErrInvalidInput, domain.FormatClock(end), domain.FormatClock(start))
	}

	priority := domain.PriorityMedium
	if strings.TrimSpace(params.Priority) != "" {
		priority, err = domain.ParsePriority(params.Priority)
		if err != nil {
			return domain.Task{}, err
		}
	}

	return domain.Task{
		ID:           uuid.New().String(),
		Title:        title,
		Description:  strings.TrimSpace(params.Description),
		StartMinutes: start,
		EndMinutes:   end,
		Priority:     priority,
		CreatedAt:    time.Now(),
	}, nil
}

// UpdateParams carries raw field values for a sparse edit.
// Nil fields keep the task's current value. A non-nil blank Description
// clears the description; every other field must parse.
type UpdateParams struct {
	Title       *string
	Description *string
	Start       *string
	End         *string
	Priority    *string
}

// BuildUpdate validates the provided fields and converts them to a sparse
// domain update. At least one field must be provided. When only one end of
// the interval changes, the cross-field check against the task's other end
// happens in the scheduler, which knows the current values.
func BuildUpdate(params UpdateParams) (domain.TaskUpdate, error) {
	var update domain.TaskUpdate

	if params.Title != nil {
		title := strings.TrimSpace(*params.Title)
		if title == "" {
			return domain.TaskUpdate{}, fmt.Errorf("%w: title cannot be blank", domain.ErrInvalidInput)
		}
		update.Title = &title
	}
	if params.Description != nil {
		desc := strings.TrimSpace(*params.Description)
		update.Description = &desc
	}
	if params.Start != nil {
		start, err := domain.ParseClock(*params.Start)
		if err != nil {
			return domain.TaskUpdate{}, fmt.Errorf("start: %w", err)
		}
		update.StartMinutes = &start
	}
	if params.End != nil {
		end, err := domain.ParseClock(*params.End)
		if err != nil {
			return domain.TaskUpdate{}, fmt.Errorf("end: %w", err)
		}
		update.EndMinutes = &end
	}
	if params.Priority != nil {
		priority, err := domain.ParsePriority(*params.Priority)
		if err != nil {
			return domain.TaskUpdate{}, err
		}
		update.Priority = &priority
	}

	if update.StartMinutes != nil && update.EndMinutes != nil && *update.EndMinutes <= *update.StartMinutes {
		return domain.TaskUpdate{}, fmt.Errorf("%w: end %s must be after start %s",
			domain.ErrInvalidInput, domain.FormatClock(*update.EndMinutes), domain.FormatClock(*update.StartMinutes))
	}
	if update.IsEmpty() {
		return domain.TaskUpdate{}, fmt.Errorf("%w: nothing to change", domain.ErrInvalidInput)
	}
	return update, nil
}
