package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var (
	findTitle string
	findID    string
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Look up tasks by title or id",
	Long: `Finds tasks by exact title (case-insensitive, not a substring search)
or by id. Exactly one of --title and --id must be given.`,
	Example: `  dayplan find --title "Standup"
  dayplan find --id 4fa2`,
	Args: cobra.NoArgs,
	RunE: runFind,
}

func init() {
	findCmd.Flags().StringVarP(&findTitle, "title", "t", "", "exact title to look up")
	findCmd.Flags().StringVar(&findID, "id", "", "task id to look up")
	findCmd.MarkFlagsOneRequired("title", "id")
	findCmd.MarkFlagsMutuallyExclusive("title", "id")
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, _ []string) error {
	if scheduler == nil {
		return errors.New("scheduler not configured")
	}

	if cmd.Flags().Changed("id") {
		id, err := resolveTaskID(findID)
		if err != nil {
			return err
		}
		task, err := scheduler.FindTaskByID(id)
		if err != nil {
			return err
		}
		printTaskDetail(cmd, *task)
		return nil
	}

	tasks := scheduler.FindTasksByTitle(findTitle)
	if len(tasks) == 0 {
		cmd.Printf("No tasks titled %q.\n", findTitle)
		return nil
	}
	for i := range tasks {
		printTaskDetail(cmd, tasks[i])
		if i < len(tasks)-1 {
			cmd.Println()
		}
	}
	return nil
}
