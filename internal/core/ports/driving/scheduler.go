package driving

import (
	"context"

	"github.com/dayplan-labs/dayplan-cli/internal/core/domain"
	"github.com/dayplan-labs/dayplan-cli/internal/core/ports/driven"
)

// TaskScheduler manages a single day's non-overlapping interval tasks.
// Mutations keep the collection sorted by start time, never let two tasks
// overlap, persist before reporting success, and broadcast an event message
// to subscribed notifiers. Queries are read-only and hand out copies.
//
// The scheduler serialises its own operations internally, but it is designed
// for one logical caller at a time, not for fan-in from many clients.
type TaskScheduler interface {
	// Load initialises the live collection from the store.
	// Called once at startup. Any load failure degrades to an empty
	// schedule; Load never fails because of missing or corrupt state.
	Load(ctx context.Context)

	// AddTask inserts a validated task at its sorted position.
	// Fails with a *domain.ConflictError naming the neighbouring task when
	// the interval overlaps one, and with domain.ErrAlreadyExists when the
	// id is already scheduled. Conflicts are still broadcast as events.
	AddTask(ctx context.Context, task domain.Task) error

	// EditTask applies a sparse update to the task with the given id,
	// re-inserting it at its new sorted position. The conflict check runs
	// against the collection without the original, so a task never
	// conflicts with itself. On conflict nothing changes.
	EditTask(ctx context.Context, id string, update domain.TaskUpdate) error

	// RemoveTask deletes the task with the given id.
	RemoveTask(ctx context.Context, id string) error

	// MarkCompleted flags the task as done, in place. Idempotent.
	MarkCompleted(ctx context.Context, id string) error

	// ListTasks returns the full schedule in start-time order.
	ListTasks() []domain.Task

	// ListTasksByPriority returns tasks whose priority matches the given
	// word case-insensitively. A blank or unrecognised word yields an
	// empty result, never the full schedule.
	ListTasksByPriority(priority string) []domain.Task

	// FindTasksByTitle returns tasks whose title matches exactly,
	// ignoring case. Not a substring search.
	FindTasksByTitle(title string) []domain.Task

	// FindTaskByID returns the task with the given id.
	FindTaskByID(id string) (*domain.Task, error)

	// Subscribe registers a notifier for schedule event messages.
	Subscribe(n driven.Notifier)

	// Unsubscribe removes a previously subscribed notifier.
	// Unknown notifiers are ignored.
	Unsubscribe(n driven.Notifier)
}
