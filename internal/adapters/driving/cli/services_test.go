package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/dayplan-labs/dayplan-cli/internal/adapters/driven/storage/memory"
	"github.com/dayplan-labs/dayplan-cli/internal/core/domain"
	"github.com/dayplan-labs/dayplan-cli/internal/core/services"
	"github.com/dayplan-labs/dayplan-cli/internal/taskfactory"
)

// setupTestServices points the commands at in-memory services and returns a
// cleanup that restores whatever was injected before.
func setupTestServices() func() {
	oldScheduler := scheduler
	oldSettings := settingsService
	oldPath := schedulePath

	scheduler = services.NewScheduler(memory.NewTaskStore())
	settingsService = services.NewSettingsService(memory.NewConfigStore())
	schedulePath = ""

	return func() {
		scheduler = oldScheduler
		settingsService = oldSettings
		schedulePath = oldPath
	}
}

// mustAddTask schedules a task directly through the service layer and
// returns it.
func mustAddTask(t *testing.T, title, start, end, priority string) domain.Task {
	t.Helper()

	task, err := taskfactory.Build(taskfactory.Params{
		Title:    title,
		Start:    start,
		End:      end,
		Priority: priority,
	})
	require.NoError(t, err)
	require.NoError(t, scheduler.AddTask(context.Background(), task))
	return task
}

// resetFlags restores the named flags to their defaults and clears the parse
// state pflag keeps between Execute calls. Without this a flag set in one
// test stays "changed" in the next.
func resetFlags(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		f := cmd.Flags().Lookup(name)
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
}
