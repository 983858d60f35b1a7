package memory

import (
	"context"
	"sync"

	"github.com/dayplan-labs/dayplan-cli/internal/core/domain"
	"github.com/dayplan-labs/dayplan-cli/internal/core/ports/driven"
)

// Ensure TaskStore implements the interface.
var _ driven.TaskStore = (*TaskStore)(nil)

// TaskStore is an in-memory implementation of driven.TaskStore.
// It backs tests and ephemeral runs; nothing survives the process.
type TaskStore struct {
	mu    sync.RWMutex
	tasks []domain.Task
}

// NewTaskStore creates a new in-memory task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{}
}

// LoadAll returns every stored task.
func (s *TaskStore) LoadAll(_ context.Context) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

// SaveAll replaces the stored collection. In-memory replacement is
// trivially atomic.
func (s *TaskStore) SaveAll(_ context.Context, tasks []domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = make([]domain.Task, len(tasks))
	copy(s.tasks, tasks)
	return nil
}
