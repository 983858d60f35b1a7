package driven

import (
	"context"

	"github.com/dayplan-labs/dayplan-cli/internal/core/domain"
)

// TaskStore durably persists the full task collection.
// The scheduler owns ordering and the no-overlap invariant; a store only
// holds the set and is rewritten wholesale on every mutation.
type TaskStore interface {
	// LoadAll returns every persisted task.
	// A missing backing file is an empty schedule, not an error. A corrupt
	// file should be logged and treated the same way rather than failing
	// startup.
	LoadAll(ctx context.Context) ([]domain.Task, error)

	// SaveAll atomically replaces the persisted collection with tasks.
	// Atomic means temp-file-then-rename or a transaction: a crash
	// mid-write must never leave a partial or corrupt collection behind.
	SaveAll(ctx context.Context, tasks []domain.Task) error
}
