package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dayplan-labs/dayplan-cli/internal/core/domain"
)

// shortIDLen is how much of a task id the listings show. Full ids are
// uuids; the first eight characters are plenty to address a day's tasks.
const shortIDLen = 8

// shortID abbreviates a task id for display.
func shortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}

// printSchedule renders tasks as the standard schedule listing.
func printSchedule(cmd *cobra.Command, tasks []domain.Task) {
	if len(tasks) == 0 {
		cmd.Println("No tasks scheduled.")
		return
	}

	if len(tasks) == 1 {
		cmd.Println("1 task scheduled:")
	} else {
		cmd.Printf("%d tasks scheduled:\n", len(tasks))
	}
	cmd.Println()
	for i := range tasks {
		printTaskLine(cmd, tasks[i])
	}
}

// printTaskLine renders one task as a single aligned listing row, with the
// description indented below when present.
func printTaskLine(cmd *cobra.Command, t domain.Task) {
	done := " "
	if t.Completed {
		done = "✓"
	}
	cmd.Printf("  %s %s  %-8s %s  %s\n", done, t.TimeRange(), "["+t.Priority.String()+"]", shortID(t.ID), t.Title)
	if t.Description != "" {
		cmd.Printf("                %s\n", t.Description)
	}
}

// printTaskDetail renders every field of one task, for find output.
func printTaskDetail(cmd *cobra.Command, t domain.Task) {
	cmd.Printf("  %s\n", t.Title)
	cmd.Printf("    ID:        %s\n", t.ID)
	cmd.Printf("    Time:      %s\n", t.TimeRange())
	cmd.Printf("    Priority:  %s\n", t.Priority)
	if t.Description != "" {
		cmd.Printf("    Notes:     %s\n", t.Description)
	}
	cmd.Printf("    Completed: %v\n", t.Completed)
	cmd.Printf("    Created:   %s\n", t.CreatedAt.Format(time.RFC3339))
}

// taskRecord is the JSON shape used by view --json. It matches the
// persisted layout so the output can be piped back into tooling that
// reads the schedule file.
type taskRecord struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	StartMinutes int       `json:"startMinutes"`
	EndMinutes   int       `json:"endMinutes"`
	Priority     string    `json:"priority"`
	Completed    bool      `json:"completed"`
	CreatedAt    time.Time `json:"createdAt"`
}

// printScheduleJSON renders tasks as a JSON array.
func printScheduleJSON(cmd *cobra.Command, tasks []domain.Task) error {
	records := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, taskRecord{
			ID:           t.ID,
			Title:        t.Title,
			Description:  t.Description,
			StartMinutes: t.StartMinutes,
			EndMinutes:   t.EndMinutes,
			Priority:     t.Priority.String(),
			Completed:    t.Completed,
			CreatedAt:    t.CreatedAt,
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding tasks: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
