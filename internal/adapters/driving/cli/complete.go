package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete [task-id]",
	Short: "Mark a task as done",
	Long: `Marks a task completed. The task keeps its time slot; completing an
already completed task succeeds and changes nothing.
The task id may be any unique prefix of the full id.`,
	Args: cobra.ExactArgs(1),
	RunE: runComplete,
}

func init() {
	rootCmd.AddCommand(completeCmd)
}

func runComplete(cmd *cobra.Command, args []string) error {
	if scheduler == nil {
		return errors.New("scheduler not configured")
	}

	id, err := resolveTaskID(args[0])
	if err != nil {
		return err
	}

	if err := scheduler.MarkCompleted(context.Background(), id); err != nil {
		return fmt.Errorf("complete failed: %w", err)
	}

	task, err := scheduler.FindTaskByID(id)
	if err != nil {
		return err
	}
	cmd.Printf("Completed %q\n", task.Title)
	return nil
}
