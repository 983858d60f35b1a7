package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dayplan-labs/dayplan-cli/internal/core/domain"
	"github.com/dayplan-labs/dayplan-cli/internal/core/ports/driven"
	"github.com/dayplan-labs/dayplan-cli/internal/core/ports/driving"
	"github.com/dayplan-labs/dayplan-cli/internal/logger"
)

// Ensure Scheduler implements the interface.
var _ driving.TaskScheduler = (*Scheduler)(nil)

// Scheduler maintains a single day's tasks in ascending start-time order and
// enforces the no-overlap invariant on every mutation: for adjacent tasks A
// before B, A.EndMinutes <= B.StartMinutes always holds. Touching is allowed.
//
// Mutations persist the full collection through the store before reporting
// success, then broadcast a plain-text event to subscribed notifiers.
// Operations are serialised internally, but the scheduler is designed for a
// single logical writer; it does not arbitrate between independent clients.
type Scheduler struct {
	store driven.TaskStore

	mu        sync.RWMutex
	tasks     []domain.Task
	notifiers []driven.Notifier
}

// NewScheduler creates a scheduler backed by the given store.
// Call Load once at startup to pick up persisted state.
func NewScheduler(store driven.TaskStore) *Scheduler {
	return &Scheduler{store: store}
}

// Load initialises the live collection from the store. The persisted order
// may have drifted, so the collection is re-sorted (stably) before being
// accepted. Load never fails: missing or unreadable state degrades to an
// empty schedule with a warning, because startup must always succeed.
func (s *Scheduler) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = nil
	if s.store == nil {
		return
	}
	loaded, err := s.store.LoadAll(ctx)
	if err != nil {
		logger.Warn("scheduler: could not load persisted schedule, starting empty: %v", err)
		return
	}
	sort.SliceStable(loaded, func(i, j int) bool {
		return loaded[i].StartMinutes < loaded[j].StartMinutes
	})
	s.tasks = loaded
}

// Subscribe registers a notifier for schedule event messages.
func (s *Scheduler) Subscribe(n driven.Notifier) {
	if n == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifiers = append(s.notifiers, n)
}

// Unsubscribe removes a previously subscribed notifier.
// Unsubscribing a notifier that was never subscribed is a no-op.
func (s *Scheduler) Unsubscribe(n driven.Notifier) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.notifiers {
		if existing == n {
			s.notifiers = append(s.notifiers[:i], s.notifiers[i+1:]...)
			return
		}
	}
}

// AddTask inserts a validated task at its sorted position. When the interval
// overlaps an immediate neighbour the add fails with a *domain.ConflictError
// naming that neighbour, nothing is persisted, and the conflict itself is
// broadcast as an event.
func (s *Scheduler) AddTask(ctx context.Context, task domain.Task) error {
	message, err := s.add(ctx, task)
	if message != "" {
		s.broadcast(message)
	}
	return err
}

func (s *Scheduler) add(ctx context.Context, task domain.Task) (string, error) {
	if err := task.Validate(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return "", domain.ErrNotImplemented
	}
	if s.indexOf(task.ID) >= 0 {
		return "", fmt.Errorf("task %s: %w", task.ID, domain.ErrAlreadyExists)
	}

	idx := insertionIndex(s.tasks, task.StartMinutes)
	if conflict := checkNeighbors(s.tasks, task, idx); conflict != nil {
		return conflict.Error(), conflict
	}

	s.tasks = insertAt(s.tasks, idx, task)
	if err := s.persist(ctx); err != nil {
		return "", err
	}
	return fmt.Sprintf("Task added: %q (%s)", task.Title, task.TimeRange()), nil
}

// EditTask applies a sparse update to the task with the given id and
// re-inserts it at its new sorted position. The conflict check runs against
// the collection with the original removed, so a task never conflicts with
// itself when shrinking or growing into its old slot. On conflict the stored
// collection is untouched and the conflict is broadcast.
func (s *Scheduler) EditTask(ctx context.Context, id string, update domain.TaskUpdate) error {
	message, err := s.edit(ctx, id, update)
	if message != "" {
		s.broadcast(message)
	}
	return err
}

func (s *Scheduler) edit(ctx context.Context, id string, update domain.TaskUpdate) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return "", domain.ErrNotImplemented
	}
	pos := s.indexOf(id)
	if pos < 0 {
		return "", fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}

	original := s.tasks[pos]
	candidate := update.ApplyTo(original)
	// Each parsed field is valid on its own, but a sparse update can cross
	// fields: a new start past the untouched end, say. Reject before touching
	// anything.
	if err := candidate.Validate(); err != nil {
		return "", err
	}

	reduced := make([]domain.Task, 0, len(s.tasks))
	reduced = append(reduced, s.tasks[:pos]...)
	reduced = append(reduced, s.tasks[pos+1:]...)

	idx := insertionIndex(reduced, candidate.StartMinutes)
	if conflict := checkNeighbors(reduced, candidate, idx); conflict != nil {
		return conflict.Error(), conflict
	}

	s.tasks = insertAt(reduced, idx, candidate)
	if err := s.persist(ctx); err != nil {
		return "", err
	}
	return fmt.Sprintf("Task updated: %q (%s)", candidate.Title, candidate.TimeRange()), nil
}

// RemoveTask deletes the task with the given id, persists the reduced
// collection and broadcasts a removal event.
func (s *Scheduler) RemoveTask(ctx context.Context, id string) error {
	message, err := s.remove(ctx, id)
	if message != "" {
		s.broadcast(message)
	}
	return err
}

func (s *Scheduler) remove(ctx context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return "", domain.ErrNotImplemented
	}
	pos := s.indexOf(id)
	if pos < 0 {
		logger.Warn("scheduler: remove: task %s not found", id)
		return "", fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}

	removed := s.tasks[pos]
	s.tasks = append(s.tasks[:pos], s.tasks[pos+1:]...)
	if err := s.persist(ctx); err != nil {
		return "", err
	}
	return fmt.Sprintf("Task removed: %q", removed.Title), nil
}

// MarkCompleted flags the task as done. The completion flag is the one field
// mutated in place: time fields are untouched, so the position is unchanged.
// Idempotent - completing a completed task succeeds again.
func (s *Scheduler) MarkCompleted(ctx context.Context, id string) error {
	message, err := s.complete(ctx, id)
	if message != "" {
		s.broadcast(message)
	}
	return err
}

func (s *Scheduler) complete(ctx context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return "", domain.ErrNotImplemented
	}
	pos := s.indexOf(id)
	if pos < 0 {
		return "", fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}

	s.tasks[pos].Completed = true
	if err := s.persist(ctx); err != nil {
		return "", err
	}
	return fmt.Sprintf("Task completed: %q", s.tasks[pos].Title), nil
}

// ListTasks returns the full schedule in start-time order. The returned
// slice is an independent copy; callers cannot reach the live collection
// through it.
func (s *Scheduler) ListTasks() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// ListTasksByPriority returns tasks whose priority matches the given word
// case-insensitively and exactly. A blank or unrecognised word yields an
// empty result, never the full schedule.
func (s *Scheduler) ListTasksByPriority(priority string) []domain.Task {
	trimmed := strings.TrimSpace(priority)
	matches := []domain.Task{}
	if trimmed == "" {
		return matches
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if strings.EqualFold(string(t.Priority), trimmed) {
			matches = append(matches, t)
		}
	}
	return matches
}

// FindTasksByTitle returns tasks whose title matches exactly, ignoring case.
// Not a substring search.
func (s *Scheduler) FindTasksByTitle(title string) []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := []domain.Task{}
	for _, t := range s.tasks {
		if strings.EqualFold(t.Title, title) {
			matches = append(matches, t)
		}
	}
	return matches
}

// FindTaskByID returns a copy of the task with the given id.
func (s *Scheduler) FindTaskByID(id string) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos := s.indexOf(id)
	if pos < 0 {
		return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	task := s.tasks[pos]
	return &task, nil
}

// indexOf returns the position of the task with the given id, or -1.
// Ids carry no ordering relative to start times, so this is a linear scan.
func (s *Scheduler) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// persist writes the full collection through the store. Callers hold the
// write lock. The in-memory collection is already invariant-clean before the
// write is attempted; a failed write fails the operation, and memory stays
// authoritative until the next successful save.
func (s *Scheduler) persist(ctx context.Context) error {
	snapshot := make([]domain.Task, len(s.tasks))
	copy(snapshot, s.tasks)
	if err := s.store.SaveAll(ctx, snapshot); err != nil {
		return fmt.Errorf("persist schedule: %w", err)
	}
	return nil
}

// broadcast delivers one event message to every subscribed notifier.
// Fan-out is sequential and each listener is isolated: a panicking listener
// is recovered, logged and skipped so the rest still hear the event and the
// mutation that produced it never sees the failure. This is intentional
// best-effort broadcast, not a reliability mechanism.
func (s *Scheduler) broadcast(message string) {
	s.mu.RLock()
	listeners := make([]driven.Notifier, len(s.notifiers))
	copy(listeners, s.notifiers)
	s.mu.RUnlock()

	for _, n := range listeners {
		s.deliver(n, message)
	}
}

func (s *Scheduler) deliver(n driven.Notifier, message string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn("scheduler: notifier panicked, skipping: %v", r)
		}
	}()
	n.Update(message)
}

// insertionIndex returns the leftmost index at which a task starting at
// startMinutes keeps the collection ordered: everything before it starts
// strictly earlier, everything at or after it starts at the same time or
// later. Binary search - the collection is re-searched on every add and
// edit, so this must not degrade to a linear scan.
func insertionIndex(tasks []domain.Task, startMinutes int) int {
	return sort.Search(len(tasks), func(i int) bool {
		return tasks[i].StartMinutes >= startMinutes
	})
}

// checkNeighbors tests the candidate against the tasks either side of its
// insertion index. The existing collection is conflict-free, so an overlap
// can only involve the immediate predecessor or successor; no full scan is
// needed. The predecessor is reported first when both overlap.
func checkNeighbors(tasks []domain.Task, candidate domain.Task, idx int) *domain.ConflictError {
	if idx > 0 && tasks[idx-1].Overlaps(candidate) {
		return &domain.ConflictError{Candidate: candidate, Neighbor: tasks[idx-1]}
	}
	if idx < len(tasks) && tasks[idx].Overlaps(candidate) {
		return &domain.ConflictError{Candidate: candidate, Neighbor: tasks[idx]}
	}
	return nil
}

// insertAt places task at index idx, shifting the tail right.
func insertAt(tasks []domain.Task, idx int, task domain.Task) []domain.Task {
	tasks = append(tasks, domain.Task{})
	copy(tasks[idx+1:], tasks[idx:])
	tasks[idx] = task
	return tasks
}
