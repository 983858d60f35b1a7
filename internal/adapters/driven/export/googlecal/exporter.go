package googlecal

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/dayplan-labs/dayplan-cli/internal/core/domain"
	"github.com/dayplan-labs/dayplan-cli/internal/logger"
)

// taskIDProperty is the private extended property that links a calendar
// event back to its dayplan task.
const taskIDProperty = "dayplan_task_id"

// Exporter pushes the day's schedule to a Google Calendar.
type Exporter struct {
	srv        *calendar.Service
	calendarID string
}

// NewExporter creates an exporter targeting calendarID.
// If calendarID is empty, defaults to the user's primary calendar.
func NewExporter(srv *calendar.Service, calendarID string) *Exporter {
	if calendarID == "" {
		calendarID = "primary"
	}
	return &Exporter{srv: srv, calendarID: calendarID}
}

// Result summarises an export run.
type Result struct {
	Created int
	Updated int
}

// Export upserts one calendar event per task onto day's date.
// Events created by previous exports are matched by task id and patched in
// place, so re-exporting after edits never duplicates events.
func (e *Exporter) Export(ctx context.Context, tasks []domain.Task, day time.Time) (Result, error) {
	var res Result

	for _, task := range tasks {
		event := buildEvent(task, day)

		existing, err := e.findByTaskID(ctx, task.ID)
		if err != nil {
			return res, fmt.Errorf("searching for event of task %s: %w", task.ID, err)
		}

		if existing != nil {
			if _, err := e.srv.Events.Patch(e.calendarID, existing.Id, event).Context(ctx).Do(); err != nil {
				return res, fmt.Errorf("updating event for task %s: %w", task.ID, err)
			}
			res.Updated++
			logger.Debug("updated calendar event for %q", task.Title)
			continue
		}

		if _, err := e.srv.Events.Insert(e.calendarID, event).Context(ctx).Do(); err != nil {
			return res, fmt.Errorf("creating event for task %s: %w", task.ID, err)
		}
		res.Created++
		logger.Debug("created calendar event for %q", task.Title)
	}

	return res, nil
}

// findByTaskID looks up the event previously exported for a task.
// Returns nil and no error when none exists.
func (e *Exporter) findByTaskID(ctx context.Context, taskID string) (*calendar.Event, error) {
	events, err := e.srv.Events.List(e.calendarID).
		PrivateExtendedProperty(taskIDProperty + "=" + taskID).
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	if len(events.Items) > 0 {
		return events.Items[0], nil
	}
	return nil, nil
}

// buildEvent converts a task to a calendar event anchored on day's date, in
// day's time zone. Completed tasks carry a check mark so they read as done
// at a glance.
func buildEvent(task domain.Task, day time.Time) *calendar.Event {
	summary := task.Title
	if task.Completed {
		summary = "✓ " + summary
	}

	return &calendar.Event{
		Summary:     summary,
		Description: task.Description,
		Start: &calendar.EventDateTime{
			DateTime: onDay(day, task.StartMinutes).Format(time.RFC3339),
		},
		End: &calendar.EventDateTime{
			DateTime: onDay(day, task.EndMinutes).Format(time.RFC3339),
		},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{taskIDProperty: task.ID},
		},
	}
}

// onDay anchors minutes-since-midnight onto day's date. Minute 1440 rolls
// over to midnight of the next day, which is what a task ending at 24:00
// means.
func onDay(day time.Time, minutes int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, day.Location())
}
