package mcp

import (
	"context"

	"github.com/dayplan-labs/dayplan-cli/internal/core/domain"
	"github.com/dayplan-labs/dayplan-cli/internal/core/ports/driven"
)

// mockTaskScheduler is a mock implementation of driving.TaskScheduler.
type mockTaskScheduler struct {
	tasks []domain.Task
	task  *domain.Task
	err   error

	added  *domain.Task
	update *domain.TaskUpdate
}

func (m *mockTaskScheduler) Load(_ context.Context) {}

func (m *mockTaskScheduler) AddTask(_ context.Context, task domain.Task) error {
	m.added = &task
	return m.err
}

func (m *mockTaskScheduler) EditTask(_ context.Context, _ string, update domain.TaskUpdate) error {
	m.update = &update
	return m.err
}

func (m *mockTaskScheduler) RemoveTask(_ context.Context, _ string) error {
	return m.err
}

func (m *mockTaskScheduler) MarkCompleted(_ context.Context, _ string) error {
	return m.err
}

func (m *mockTaskScheduler) ListTasks() []domain.Task {
	return m.tasks
}

func (m *mockTaskScheduler) ListTasksByPriority(_ string) []domain.Task {
	return m.tasks
}

func (m *mockTaskScheduler) FindTasksByTitle(_ string) []domain.Task {
	return m.tasks
}

func (m *mockTaskScheduler) FindTaskByID(_ string) (*domain.Task, error) {
	return m.task, m.err
}

func (m *mockTaskScheduler) Subscribe(_ driven.Notifier) {}

func (m *mockTaskScheduler) Unsubscribe(_ driven.Notifier) {}
