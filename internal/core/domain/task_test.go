package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseClock tests HH:mm parsing for valid and malformed inputs
func TestParseClock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{name: "midnight", input: "00:00", expected: 0},
		{name: "morning", input: "09:00", expected: 540},
		{name: "single digit hour", input: "9:30", expected: 570},
		{name: "last minute of day", input: "23:59", expected: 1439},
		{name: "surrounding whitespace", input: " 10:15 ", expected: 615},
		{name: "hours out of range", input: "24:00", wantErr: true},
		{name: "minutes out of range", input: "12:60", wantErr: true},
		{name: "missing colon", input: "0930", wantErr: true},
		{name: "too many fields", input: "09:30:00", wantErr: true},
		{name: "letters", input: "ab:cd", wantErr: true},
		{name: "three digit minutes", input: "09:300", wantErr: true},
		{name: "negative minutes", input: "09:-5", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "blank fields", input: ":", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestFormatClock tests rendering minutes since midnight
func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "09:00", FormatClock(540))
	assert.Equal(t, "23:59", FormatClock(1439))
	assert.Equal(t, "24:00", FormatClock(MinutesPerDay))
}

// TestTask_Overlaps tests the half-open interval overlap predicate
func TestTask_Overlaps(t *testing.T) {
	tests := []struct {
		name     string
		a        Task
		b        Task
		expected bool
	}{
		{
			name:     "touching boundary does not overlap",
			a:        Task{StartMinutes: 540, EndMinutes: 600},
			b:        Task{StartMinutes: 600, EndMinutes: 660},
			expected: false,
		},
		{
			name:     "one minute of overlap",
			a:        Task{StartMinutes: 540, EndMinutes: 600},
			b:        Task{StartMinutes: 599, EndMinutes: 660},
			expected: true,
		},
		{
			name:     "partial overlap",
			a:        Task{StartMinutes: 540, EndMinutes: 600},
			b:        Task{StartMinutes: 570, EndMinutes: 630},
			expected: true,
		},
		{
			name:     "containment",
			a:        Task{StartMinutes: 540, EndMinutes: 720},
			b:        Task{StartMinutes: 600, EndMinutes: 660},
			expected: true,
		},
		{
			name:     "identical intervals",
			a:        Task{StartMinutes: 540, EndMinutes: 600},
			b:        Task{StartMinutes: 540, EndMinutes: 600},
			expected: true,
		},
		{
			name:     "fully disjoint",
			a:        Task{StartMinutes: 540, EndMinutes: 600},
			b:        Task{StartMinutes: 720, EndMinutes: 780},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Overlaps(tt.b))
			// Overlap is symmetric.
			assert.Equal(t, tt.expected, tt.b.Overlaps(tt.a))
		})
	}
}

// TestTask_TimeRange tests interval rendering
func TestTask_TimeRange(t *testing.T) {
	task := Task{StartMinutes: 540, EndMinutes: 600}
	assert.Equal(t, "09:00-10:00", task.TimeRange())
}

// TestTask_Duration tests interval length
func TestTask_Duration(t *testing.T) {
	task := Task{StartMinutes: 540, EndMinutes: 600}
	assert.Equal(t, time.Hour, task.Duration())
}

// TestParsePriority tests case-insensitive priority normalisation
func TestParsePriority(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Priority
		wantErr  bool
	}{
		{name: "lowercase low", input: "low", expected: PriorityLow},
		{name: "uppercase high", input: "HIGH", expected: PriorityHigh},
		{name: "mixed case medium", input: "mEdIuM", expected: PriorityMedium},
		{name: "canonical form", input: "Medium", expected: PriorityMedium},
		{name: "surrounding whitespace", input: "  high  ", expected: PriorityHigh},
		{name: "unknown word", input: "urgent", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "blank string", input: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePriority(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestPriority_IsValid tests valid and invalid priorities
func TestPriority_IsValid(t *testing.T) {
	for _, p := range AllPriorities() {
		assert.True(t, p.IsValid(), p.String())
	}
	assert.False(t, Priority("").IsValid())
	assert.False(t, Priority("low").IsValid(), "priorities are canonical, parse first")
	assert.False(t, Priority("Urgent").IsValid())
}

// TestPriority_Description tests that every priority describes itself
func TestPriority_Description(t *testing.T) {
	for _, p := range AllPriorities() {
		assert.NotEqual(t, unknownDescription, p.Description())
	}
	assert.Equal(t, unknownDescription, Priority("bogus").Description())
}

// TestTask_Validate tests the task invariants
func TestTask_Validate(t *testing.T) {
	valid := Task{
		ID:           "task-1",
		Title:        "Standup",
		StartMinutes: 540,
		EndMinutes:   600,
		Priority:     PriorityMedium,
		CreatedAt:    time.Now(),
	}

	tests := []struct {
		name    string
		mutate  func(*Task)
		wantErr bool
	}{
		{name: "valid task", mutate: func(*Task) {}},
		{name: "blank id", mutate: func(task *Task) { task.ID = "  " }, wantErr: true},
		{name: "blank title", mutate: func(task *Task) { task.Title = "" }, wantErr: true},
		{name: "negative start", mutate: func(task *Task) { task.StartMinutes = -1 }, wantErr: true},
		{name: "end past midnight", mutate: func(task *Task) { task.EndMinutes = MinutesPerDay + 1 }, wantErr: true},
		{name: "zero duration", mutate: func(task *Task) { task.EndMinutes = task.StartMinutes }, wantErr: true},
		{name: "negative duration", mutate: func(task *Task) { task.EndMinutes = task.StartMinutes - 30 }, wantErr: true},
		{name: "unparsed priority", mutate: func(task *Task) { task.Priority = "high" }, wantErr: true},
		{name: "ends exactly at midnight", mutate: func(task *Task) { task.StartMinutes = 1380; task.EndMinutes = MinutesPerDay }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := valid
			tt.mutate(&task)
			err := task.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidInput))
				return
			}
			assert.NoError(t, err)
		})
	}
}

// TestTaskUpdate_ApplyTo tests sparse overrides
func TestTaskUpdate_ApplyTo(t *testing.T) {
	created := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	original := Task{
		ID:           "task-1",
		Title:        "Standup",
		Description:  "daily sync",
		StartMinutes: 540,
		EndMinutes:   600,
		Priority:     PriorityMedium,
		Completed:    true,
		CreatedAt:    created,
	}

	t.Run("empty update changes nothing", func(t *testing.T) {
		update := TaskUpdate{}
		assert.True(t, update.IsEmpty())
		assert.Equal(t, original, update.ApplyTo(original))
	})

	t.Run("sparse update overrides only set fields", func(t *testing.T) {
		title := "Planning"
		start := 600
		update := TaskUpdate{Title: &title, StartMinutes: &start}
		assert.False(t, update.IsEmpty())

		got := update.ApplyTo(original)
		assert.Equal(t, "Planning", got.Title)
		assert.Equal(t, 600, got.StartMinutes)
		// Everything else carries over.
		assert.Equal(t, original.Description, got.Description)
		assert.Equal(t, original.EndMinutes, got.EndMinutes)
		assert.Equal(t, original.Priority, got.Priority)
	})

	t.Run("identity is always preserved", func(t *testing.T) {
		title := "Planning"
		desc := ""
		start, end := 600, 660
		priority := PriorityHigh
		update := TaskUpdate{
			Title:        &title,
			Description:  &desc,
			StartMinutes: &start,
			EndMinutes:   &end,
			Priority:     &priority,
		}

		got := update.ApplyTo(original)
		assert.Equal(t, original.ID, got.ID)
		assert.Equal(t, original.Completed, got.Completed)
		assert.Equal(t, original.CreatedAt, got.CreatedAt)
		assert.Empty(t, got.Description, "setting description to empty clears it")
	})

	t.Run("original is not mutated", func(t *testing.T) {
		title := "Changed"
		update := TaskUpdate{Title: &title}
		_ = update.ApplyTo(original)
		assert.Equal(t, "Standup", original.Title)
	})
}
