package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchCmd_Use(t *testing.T) {
	assert.Equal(t, "watch", watchCmd.Use)
}

func TestWatchCmd_Short(t *testing.T) {
	assert.Equal(t, "Watch the schedule file and reprint on change", watchCmd.Short)
}

func TestWatchCmd_SchedulerNotConfigured(t *testing.T) {
	oldScheduler := scheduler
	scheduler = nil
	defer func() {
		scheduler = oldScheduler
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"watch"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "scheduler not configured")
}

func TestWatchCmd_RequiresWatchableBackend(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	// setupTestServices wires the memory backend, which has no file to watch.
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"watch"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch requires the json storage backend")
}
