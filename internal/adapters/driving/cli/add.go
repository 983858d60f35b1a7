package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dayplan-labs/dayplan-cli/internal/taskfactory"
)

var (
	addTitle    string
	addDesc     string
	addStart    string
	addEnd      string
	addPriority string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a task to the schedule",
	Long: `Adds a task to the day's schedule at its time-ordered position.

The interval must not overlap an already scheduled task; touching is
allowed, so a task may start exactly when another ends. Times use the
24-hour clock.`,
	Example: `  dayplan add --title "Standup" --start 09:00 --end 09:30
  dayplan add -t "Deep work" -s 10:00 -e 12:00 -p High -d "no meetings"`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "task title (required)")
	addCmd.Flags().StringVarP(&addStart, "start", "s", "", "start time as HH:mm (required)")
	addCmd.Flags().StringVarP(&addEnd, "end", "e", "", "end time as HH:mm (required)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "priority: Low, Medium or High (default Medium)")
	addCmd.Flags().StringVarP(&addDesc, "desc", "d", "", "optional description")
	_ = addCmd.MarkFlagRequired("title")
	_ = addCmd.MarkFlagRequired("start")
	_ = addCmd.MarkFlagRequired("end")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, _ []string) error {
	if scheduler == nil {
		return errors.New("scheduler not configured")
	}

	task, err := taskfactory.Build(taskfactory.Params{
		Title:       addTitle,
		Description: addDesc,
		Start:       addStart,
		End:         addEnd,
		Priority:    addPriority,
	})
	if err != nil {
		return err
	}

	if err := scheduler.AddTask(context.Background(), task); err != nil {
		return fmt.Errorf("add failed: %w", err)
	}

	cmd.Printf("Added %q (%s) with id %s\n", task.Title, task.TimeRange(), shortID(task.ID))
	return nil
}
