package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove [task-id]",
	Short: "Remove a task from the schedule",
	Long: `Removes a task and frees its time slot.
The task id may be any unique prefix of the full id.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	if scheduler == nil {
		return errors.New("scheduler not configured")
	}

	id, err := resolveTaskID(args[0])
	if err != nil {
		return err
	}

	task, err := scheduler.FindTaskByID(id)
	if err != nil {
		return err
	}

	if err := scheduler.RemoveTask(context.Background(), id); err != nil {
		return fmt.Errorf("remove failed: %w", err)
	}

	cmd.Printf("Removed %q (%s)\n", task.Title, task.TimeRange())
	return nil
}
