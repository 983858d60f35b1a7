package notify

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dayplan-labs/dayplan-cli/internal/core/ports/driven"
	"github.com/dayplan-labs/dayplan-cli/internal/logger"
)

// Ensure LogFileNotifier implements the interface.
var _ driven.Notifier = (*LogFileNotifier)(nil)

// LogFileNotifier appends schedule change messages to a log file, one
// timestamped line per message. Delivery is best-effort: write failures are
// logged and swallowed so a full disk never blocks a schedule change.
type LogFileNotifier struct {
	mu       sync.Mutex
	filePath string
}

// NewLogFileNotifier creates a log file notifier writing to filePath.
// If filePath is empty, defaults to ~/.dayplan/notifications.log.
func NewLogFileNotifier(filePath string) (*LogFileNotifier, error) {
	if filePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		filePath = filepath.Join(home, ".dayplan", "notifications.log")
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	return &LogFileNotifier{filePath: filePath}, nil
}

// Path returns the notification log path.
func (n *LogFileNotifier) Path() string {
	return n.filePath
}

// Update appends the message to the log file.
func (n *LogFileNotifier) Update(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	f, err := os.OpenFile(n.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		logger.Warn("opening notification log: %v", err)
		return
	}
	defer f.Close()

	line := time.Now().Format("2006-01-02 15:04:05") + "  " + message + "\n"
	if _, err := f.WriteString(line); err != nil {
		logger.Warn("writing notification log: %v", err)
	}
}
