package googlecal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayplan-labs/dayplan-cli/internal/core/domain"
)

// TestBuildEvent tests converting a task to a calendar event.
func TestBuildEvent(t *testing.T) {
	task := domain.Task{
		ID:           "task-1",
		Title:        "Standup",
		Description:  "daily sync",
		StartMinutes: 540,
		EndMinutes:   600,
		Priority:     domain.PriorityHigh,
	}
	day := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	event := buildEvent(task, day)

	assert.Equal(t, "Standup", event.Summary)
	assert.Equal(t, "daily sync", event.Description)
	assert.Equal(t, "2026-08-25T09:00:00Z", event.Start.DateTime)
	assert.Equal(t, "2026-08-25T10:00:00Z", event.End.DateTime)

	require.NotNil(t, event.ExtendedProperties)
	require.NotNil(t, event.ExtendedProperties.Private)
	assert.Equal(t, "task-1", event.ExtendedProperties.Private[taskIDProperty])
}

// TestBuildEvent_Completed tests the check mark prefix on completed tasks.
func TestBuildEvent_Completed(t *testing.T) {
	task := domain.Task{
		ID:           "task-2",
		Title:        "Review",
		StartMinutes: 600,
		EndMinutes:   660,
		Completed:    true,
	}
	day := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	event := buildEvent(task, day)

	assert.Equal(t, "✓ Review", event.Summary)
}

// TestOnDay tests anchoring minutes-since-midnight onto a date.
func TestOnDay(t *testing.T) {
	day := time.Date(2026, 8, 25, 17, 42, 13, 0, time.UTC)

	tests := []struct {
		name    string
		minutes int
		want    string
	}{
		{name: "midnight", minutes: 0, want: "2026-08-25T00:00:00Z"},
		{name: "morning", minutes: 540, want: "2026-08-25T09:00:00Z"},
		{name: "just before midnight", minutes: 1439, want: "2026-08-25T23:59:00Z"},
		{name: "end of day rolls over", minutes: 1440, want: "2026-08-26T00:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := onDay(day, tt.minutes)
			assert.Equal(t, tt.want, got.Format(time.RFC3339))
		})
	}
}

// TestOnDay_KeepsLocation tests that the event stays in the day's time zone.
func TestOnDay_KeepsLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}
	day := time.Date(2026, 8, 25, 0, 0, 0, 0, loc)

	got := onDay(day, 540)

	assert.Equal(t, loc, got.Location())
	assert.Equal(t, 9, got.Hour())
}

// TestNewExporter_DefaultCalendar tests the primary-calendar fallback.
func TestNewExporter_DefaultCalendar(t *testing.T) {
	e := NewExporter(nil, "")
	assert.Equal(t, "primary", e.calendarID)

	e = NewExporter(nil, "work@example.com")
	assert.Equal(t, "work@example.com", e.calendarID)
}
