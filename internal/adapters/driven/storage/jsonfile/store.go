package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dayplan-labs/dayplan-cli/internal/core/domain"
	"github.com/dayplan-labs/dayplan-cli/internal/core/ports/driven"
	"github.com/dayplan-labs/dayplan-cli/internal/logger"
)

// Ensure TaskStore implements the interface.
var _ driven.TaskStore = (*TaskStore)(nil)

// TaskStore persists the schedule as a single pretty-printed JSON file.
// It is the default backend: human-readable, diff-friendly and trivially
// portable between machines.
type TaskStore struct {
	mu       sync.Mutex
	filePath string
}

// NewTaskStore creates a JSON file store under dataDir.
// If dataDir is empty, defaults to ~/.dayplan/schedule.json.
func NewTaskStore(dataDir string) (*TaskStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".dayplan")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &TaskStore{
		filePath: filepath.Join(dataDir, "schedule.json"),
	}, nil
}

// Path returns the schedule file path.
func (s *TaskStore) Path() string {
	return s.filePath
}

// task is the persisted JSON shape of a domain task.
type task struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	StartMinutes int       `json:"startMinutes"`
	EndMinutes   int       `json:"endMinutes"`
	Priority     string    `json:"priority"`
	Completed    bool      `json:"completed"`
	CreatedAt    time.Time `json:"createdAt"`
}

// LoadAll reads every task from the schedule file.
// A missing or empty file is an empty schedule. A file that no longer
// parses is logged and also treated as empty, so a damaged schedule never
// blocks startup.
func (s *TaskStore) LoadAll(ctx context.Context) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading schedule file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var records []task
	if err := json.Unmarshal(data, &records); err != nil {
		logger.Warn("schedule file %s is corrupt, starting empty: %v", s.filePath, err)
		return nil, nil
	}

	tasks := make([]domain.Task, 0, len(records))
	for _, rec := range records {
		tasks = append(tasks, domain.Task{
			ID:           rec.ID,
			Title:        rec.Title,
			Description:  rec.Description,
			StartMinutes: rec.StartMinutes,
			EndMinutes:   rec.EndMinutes,
			Priority:     domain.Priority(rec.Priority),
			Completed:    rec.Completed,
			CreatedAt:    rec.CreatedAt,
		})
	}
	return tasks, nil
}

// SaveAll atomically replaces the schedule file with tasks.
// The document is written to a temp file in the same directory, synced,
// then renamed over the original, so a crash mid-write leaves either the
// old schedule or the new one, never a torn file.
func (s *TaskStore) SaveAll(ctx context.Context, tasks []domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]task, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, task{
			ID:           t.ID,
			Title:        t.Title,
			Description:  t.Description,
			StartMinutes: t.StartMinutes,
			EndMinutes:   t.EndMinutes,
			Priority:     t.Priority.String(),
			Completed:    t.Completed,
			CreatedAt:    t.CreatedAt,
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding schedule: %w", err)
	}
	data = append(data, '\n')

	return s.writeAtomic(data)
}

// writeAtomic writes data to the schedule file via temp-file-then-rename
// (caller must hold lock). CreateTemp opens the file with 0600.
func (s *TaskStore) writeAtomic(data []byte) error {
	dir := filepath.Dir(s.filePath)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.filePath)+".tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("writing schedule: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing schedule: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.filePath); err != nil {
		return fmt.Errorf("replacing schedule file: %w", err)
	}
	committed = true
	return nil
}
