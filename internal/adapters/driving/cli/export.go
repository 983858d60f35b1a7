package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dayplan-labs/dayplan-cli/internal/adapters/driven/export/googlecal"
)

var (
	exportDate     string
	exportCalendar string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the schedule",
	Long:  `Pushes the day's schedule to an external calendar.`,
}

var exportGcalCmd = &cobra.Command{
	Use:   "gcal",
	Short: "Export the schedule to Google Calendar",
	Long: `Exports every scheduled task as a timed event on a Google Calendar.

Each event is tagged with its task id, so exporting again after edits
updates the existing events instead of duplicating them. Completed tasks
export with a leading check mark.

The first run opens a browser for OAuth consent; the token is cached under
~/.dayplan. An OAuth client file from the Google Cloud console must be in
place first (calendar.credentials_path, default ~/.dayplan/credentials.json).`,
	Example: `  dayplan export gcal
  dayplan export gcal --date 2026-03-14 --calendar work@example.com`,
	Args: cobra.NoArgs,
	RunE: runExportGcal,
}

func init() {
	exportGcalCmd.Flags().StringVar(&exportDate, "date", "", "date to export onto as YYYY-MM-DD (default today)")
	exportGcalCmd.Flags().StringVar(&exportCalendar, "calendar", "", "target calendar id (default from config, then primary)")
	exportCmd.AddCommand(exportGcalCmd)
	rootCmd.AddCommand(exportCmd)
}

func runExportGcal(cmd *cobra.Command, _ []string) error {
	if scheduler == nil {
		return errors.New("scheduler not configured")
	}
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	day := time.Now()
	if exportDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", exportDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", exportDate)
		}
		day = parsed
	}

	tasks := scheduler.ListTasks()
	if len(tasks) == 0 {
		cmd.Println("Nothing to export.")
		return nil
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	calendarID := settings.Calendar.CalendarID
	if exportCalendar != "" {
		calendarID = exportCalendar
	}

	ctx := context.Background()
	srv, err := googlecal.NewService(ctx, settings.Calendar.CredentialsPath, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("calendar auth failed: %w", err)
	}

	exporter := googlecal.NewExporter(srv, calendarID)
	cmd.Printf("Exporting %d tasks to Google Calendar for %s...\n", len(tasks), day.Format("2006-01-02"))

	result, err := exporter.Export(ctx, tasks, day)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	cmd.Printf("Done: %d events created, %d updated.\n", result.Created, result.Updated)
	return nil
}
