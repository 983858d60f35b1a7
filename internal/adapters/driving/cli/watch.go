package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/dayplan-labs/dayplan-cli/internal/adapters/driven/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the schedule file and reprint on change",
	Long: `Watches the schedule file for changes made by other processes (another
dayplan invocation, a file sync, a manual edit) and reprints the schedule
whenever it changes. Bursts of file events collapse into a single reload.

Only the JSON storage backend has a watchable schedule file.
Press Ctrl+C to stop.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if scheduler == nil {
		return errors.New("scheduler not configured")
	}
	if schedulePath == "" {
		return errors.New("watch requires the json storage backend")
	}

	watcher, err := watch.NewWatcher(schedulePath)
	if err != nil {
		return fmt.Errorf("watch failed: %w", err)
	}
	defer watcher.Close() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd.Printf("Watching %s (Ctrl+C to stop)\n\n", schedulePath)
	printSchedule(cmd, scheduler.ListTasks())

	return watcher.Run(ctx, func() {
		scheduler.Load(ctx)
		cmd.Println()
		printSchedule(cmd, scheduler.ListTasks())
	})
}
