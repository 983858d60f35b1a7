package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dayplan-labs/dayplan-cli/internal/taskfactory"
)

var (
	editTitle    string
	editDesc     string
	editStart    string
	editEnd      string
	editPriority string
)

var editCmd = &cobra.Command{
	Use:   "edit [task-id]",
	Short: "Change fields of a scheduled task",
	Long: `Edits a task in place. Only the fields given as flags change; everything
else keeps its current value.

When the times change, the task is re-slotted at its new position and
checked against its new neighbours. On a conflict nothing changes.
The task id may be any unique prefix of the full id.`,
	Example: `  dayplan edit 4fa2 --start 10:00 --end 11:00
  dayplan edit 4fa2 --title "Standup (moved)" --priority Low`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "new title")
	editCmd.Flags().StringVarP(&editStart, "start", "s", "", "new start time as HH:mm")
	editCmd.Flags().StringVarP(&editEnd, "end", "e", "", "new end time as HH:mm")
	editCmd.Flags().StringVarP(&editPriority, "priority", "p", "", "new priority: Low, Medium or High")
	editCmd.Flags().StringVarP(&editDesc, "desc", "d", "", "new description, empty string clears it")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	if scheduler == nil {
		return errors.New("scheduler not configured")
	}

	id, err := resolveTaskID(args[0])
	if err != nil {
		return err
	}

	// Only flags the user actually set become overrides; note that --desc ""
	// is an explicit clear, which is why presence is checked, not value.
	var params taskfactory.UpdateParams
	if cmd.Flags().Changed("title") {
		params.Title = &editTitle
	}
	if cmd.Flags().Changed("desc") {
		params.Description = &editDesc
	}
	if cmd.Flags().Changed("start") {
		params.Start = &editStart
	}
	if cmd.Flags().Changed("end") {
		params.End = &editEnd
	}
	if cmd.Flags().Changed("priority") {
		params.Priority = &editPriority
	}

	update, err := taskfactory.BuildUpdate(params)
	if err != nil {
		return err
	}

	if err := scheduler.EditTask(context.Background(), id, update); err != nil {
		return fmt.Errorf("edit failed: %w", err)
	}

	task, err := scheduler.FindTaskByID(id)
	if err != nil {
		return err
	}
	cmd.Printf("Updated %q (%s)\n", task.Title, task.TimeRange())
	return nil
}
