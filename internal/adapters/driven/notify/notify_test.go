package notify

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConsoleNotifier_Update tests the console output format.
func TestConsoleNotifier_Update(t *testing.T) {
	var buf bytes.Buffer
	n := NewConsoleNotifier(&buf)

	n.Update(`Task added: "Standup" (09:00-10:00)`)

	assert.Equal(t, "▸ Task added: \"Standup\" (09:00-10:00)\n", buf.String())
}

// TestConsoleNotifier_NilWriter tests that a nil writer falls back to stdout
// without panicking.
func TestConsoleNotifier_NilWriter(t *testing.T) {
	n := NewConsoleNotifier(nil)
	require.NotNil(t, n)
	assert.Equal(t, os.Stdout, n.w)
}

// TestLogFileNotifier_Update tests that messages append as timestamped lines.
func TestLogFileNotifier_Update(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notifications.log")

	n, err := NewLogFileNotifier(path)
	require.NoError(t, err)
	assert.Equal(t, path, n.Path())

	n.Update(`Task added: "Standup" (09:00-10:00)`)
	n.Update(`Task removed: "Standup"`)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `Task added: "Standup" (09:00-10:00)`)
	assert.Contains(t, lines[1], `Task removed: "Standup"`)

	// Each line starts with a "2006-01-02 15:04:05" timestamp
	for _, line := range lines {
		require.Greater(t, len(line), 21)
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}  `, line)
	}
}

// TestLogFileNotifier_CreatesDirectory tests that a missing log directory is
// created on construction.
func TestLogFileNotifier_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "notifications.log")

	_, err := NewLogFileNotifier(path)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

// TestLogFileNotifier_SwallowsWriteFailure tests that delivery failures never
// panic or block; the notifier is best-effort.
func TestLogFileNotifier_SwallowsWriteFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notifications.log")

	n, err := NewLogFileNotifier(path)
	require.NoError(t, err)

	// Turn the log path into a directory so the open fails
	require.NoError(t, os.Mkdir(path, 0700))

	assert.NotPanics(t, func() {
		n.Update("this has nowhere to go")
	})
}
