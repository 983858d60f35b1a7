package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var (
	viewPriority string
	viewJSON     bool
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show the day's schedule",
	Long: `Prints the schedule in start-time order.

With --priority, only tasks of that priority are shown. The match is
case-insensitive and exact: a blank or unrecognised word matches nothing.`,
	Args: cobra.NoArgs,
	RunE: runView,
}

func init() {
	viewCmd.Flags().StringVarP(&viewPriority, "priority", "p", "", "only show tasks with this priority")
	viewCmd.Flags().BoolVar(&viewJSON, "json", false, "output tasks as JSON")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, _ []string) error {
	if scheduler == nil {
		return errors.New("scheduler not configured")
	}

	tasks := scheduler.ListTasks()
	if cmd.Flags().Changed("priority") {
		tasks = scheduler.ListTasksByPriority(viewPriority)
	}

	if viewJSON {
		return printScheduleJSON(cmd, tasks)
	}

	printSchedule(cmd, tasks)
	return nil
}
