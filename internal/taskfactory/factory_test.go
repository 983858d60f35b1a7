package taskfactory

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayplan-labs/dayplan-cli/internal/core/domain"
)

// TestBuild tests that valid params produce a fully populated task.
func TestBuild(t *testing.T) {
	task, err := Build(Params{
		Title:       "  Standup  ",
		Description: " daily sync ",
		Start:       "09:00",
		End:         "10:00",
		Priority:    "high",
	})
	require.NoError(t, err)

	assert.Equal(t, "Standup", task.Title)
	assert.Equal(t, "daily sync", task.Description)
	assert.Equal(t, 540, task.StartMinutes)
	assert.Equal(t, 600, task.EndMinutes)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	assert.False(t, task.Completed)
	assert.WithinDuration(t, time.Now(), task.CreatedAt, time.Minute)

	_, err = uuid.Parse(task.ID)
	assert.NoError(t, err, "id should be a valid uuid")

	assert.NoError(t, task.Validate())
}

// TestBuild_UniqueIDs tests that consecutive builds never share an id.
func TestBuild_UniqueIDs(t *testing.T) {
	params := Params{Title: "Walk", Start: "07:00", End: "07:30"}

	first, err := Build(params)
	require.NoError(t, err)
	second, err := Build(params)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

// TestBuild_DefaultPriority tests that a blank priority falls back to Medium.
func TestBuild_DefaultPriority(t *testing.T) {
	for _, raw := range []string{"", "   "} {
		task, err := Build(Params{Title: "Lunch", Start: "12:00", End: "12:30", Priority: raw})
		require.NoError(t, err)
		assert.Equal(t, domain.PriorityMedium, task.Priority)
	}
}

// TestBuild_Invalid tests rejection of malformed params.
func TestBuild_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		params Params
	}{
		{
			name:   "empty title",
			params: Params{Title: "   ", Start: "09:00", End: "10:00"},
		},
		{
			name:   "bad start",
			params: Params{Title: "Standup", Start: "9am", End: "10:00"},
		},
		{
			name:   "bad end",
			params: Params{Title: "Standup", Start: "09:00", End: "24:00"},
		},
		{
			name:   "end equals start",
			params: Params{Title: "Standup", Start: "09:00", End: "09:00"},
		},
		{
			name:   "end before start",
			params: Params{Title: "Standup", Start: "10:00", End: "09:00"},
		},
		{
			name:   "unknown priority",
			params: Params{Title: "Standup", Start: "09:00", End: "10:00", Priority: "urgent"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.params)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// TestBuildUpdate tests assembling a sparse update from provided fields only.
func TestBuildUpdate(t *testing.T) {
	title := " Planning "
	start := "13:15"

	update, err := BuildUpdate(UpdateParams{Title: &title, Start: &start})
	require.NoError(t, err)

	require.NotNil(t, update.Title)
	assert.Equal(t, "Planning", *update.Title)
	require.NotNil(t, update.StartMinutes)
	assert.Equal(t, 795, *update.StartMinutes)
	assert.Nil(t, update.Description)
	assert.Nil(t, update.EndMinutes)
	assert.Nil(t, update.Priority)
}

// TestBuildUpdate_ClearDescription tests that a provided blank description
// clears the field rather than keeping it.
func TestBuildUpdate_ClearDescription(t *testing.T) {
	desc := "   "

	update, err := BuildUpdate(UpdateParams{Description: &desc})
	require.NoError(t, err)

	require.NotNil(t, update.Description)
	assert.Empty(t, *update.Description)
}

// TestBuildUpdate_Invalid tests rejection of malformed or empty updates.
func TestBuildUpdate_Invalid(t *testing.T) {
	blank := "  "
	badClock := "25:00"
	start := "14:00"
	end := "13:00"
	priority := "urgent"

	tests := []struct {
		name   string
		params UpdateParams
	}{
		{
			name:   "nothing provided",
			params: UpdateParams{},
		},
		{
			name:   "blank title",
			params: UpdateParams{Title: &blank},
		},
		{
			name:   "bad start",
			params: UpdateParams{Start: &badClock},
		},
		{
			name:   "bad end",
			params: UpdateParams{End: &badClock},
		},
		{
			name:   "end not after start",
			params: UpdateParams{Start: &start, End: &end},
		},
		{
			name:   "unknown priority",
			params: UpdateParams{Priority: &priority},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildUpdate(tt.params)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}
