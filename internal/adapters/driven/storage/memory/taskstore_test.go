package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayplan-labs/dayplan-cli/internal/core/domain"
)

func TestTaskStore_EmptyLoad(t *testing.T) {
	store := NewTaskStore()

	tasks, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestTaskStore_RoundTrip(t *testing.T) {
	store := NewTaskStore()
	ctx := context.Background()

	saved := []domain.Task{
		{
			ID:           "a",
			Title:        "Standup",
			Description:  "daily sync",
			StartMinutes: 540,
			EndMinutes:   600,
			Priority:     domain.PriorityHigh,
			Completed:    true,
			CreatedAt:    time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		},
		{
			ID:           "b",
			Title:        "Lunch",
			StartMinutes: 720,
			EndMinutes:   780,
			Priority:     domain.PriorityLow,
			CreatedAt:    time.Date(2025, 6, 1, 8, 5, 0, 0, time.UTC),
		},
	}

	require.NoError(t, store.SaveAll(ctx, saved))

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestTaskStore_SaveAllReplaces(t *testing.T) {
	store := NewTaskStore()
	ctx := context.Background()

	require.NoError(t, store.SaveAll(ctx, []domain.Task{{ID: "a", Title: "First"}}))
	require.NoError(t, store.SaveAll(ctx, []domain.Task{{ID: "b", Title: "Second"}}))

	loaded, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "b", loaded[0].ID)
}

func TestTaskStore_LoadAllCopies(t *testing.T) {
	store := NewTaskStore()
	ctx := context.Background()

	require.NoError(t, store.SaveAll(ctx, []domain.Task{{ID: "a", Title: "Standup"}}))

	first, err := store.LoadAll(ctx)
	require.NoError(t, err)
	first[0].Title = "Hijacked"

	second, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Standup", second[0].Title)
}

func TestTaskStore_ConcurrentAccess(t *testing.T) {
	store := NewTaskStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.SaveAll(ctx, []domain.Task{{ID: "a"}})
		}()
		go func() {
			defer wg.Done()
			_, _ = store.LoadAll(ctx)
		}()
	}
	wg.Wait()
}
