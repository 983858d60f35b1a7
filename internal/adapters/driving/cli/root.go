// Package cli provides the command-line interface for dayplan.
// It implements a driving adapter following hexagonal architecture principles:
// commands parse input, call the core through the driving ports, and render
// the outcome. Business rules live in the core, never here.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dayplan-labs/dayplan-cli/internal/core/domain"
	"github.com/dayplan-labs/dayplan-cli/internal/core/ports/driving"
	"github.com/dayplan-labs/dayplan-cli/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "0.1.0"

// Injected services. main constructs them once at startup and hands them in
// through the Set functions below; every command guards against a missing
// service so a partially wired binary fails with a clear message instead of
// a panic.
var (
	scheduler       driving.TaskScheduler
	settingsService driving.SettingsService

	// schedulePath is the schedule file watched by the watch command.
	// Empty when the selected backend has no watchable file.
	schedulePath string
)

// Global flags.
var (
	verboseFlag bool
	storageFlag string
	dataDirFlag string
)

// Options carries the resolved global flags to the initializer.
type Options struct {
	// Storage overrides the configured storage backend when non-empty.
	Storage string

	// DataDir overrides the configured data directory when non-empty.
	DataDir string
}

// initialize wires the application's services once the global flags are
// parsed. main registers it; tests inject services directly instead.
var initialize func(opts Options) error

var rootCmd = &cobra.Command{
	Use:   "dayplan",
	Short: "Plan one day of non-overlapping tasks",
	Long: `dayplan schedules a single day as a set of non-overlapping time intervals.

Tasks are kept in start-time order and every change is checked against its
neighbours, so two tasks can never claim the same minute. Touching is fine:
a task may begin exactly when the previous one ends.

Run without arguments to start the interactive session, or use the
subcommands for one-shot changes:

  dayplan add --title "Standup" --start 09:00 --end 09:30
  dayplan view
  dayplan complete 4fa2`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runSession,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&storageFlag, "storage", "", "storage backend: json, sqlite or memory")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "directory for schedule data (default ~/.dayplan)")

	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		if initialize == nil {
			return nil
		}
		return initialize(Options{Storage: storageFlag, DataDir: dataDirFlag})
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetInitializer registers the wiring function run before any command,
// after flag parsing. Called by main.
func SetInitializer(fn func(opts Options) error) {
	initialize = fn
}

// SetScheduler injects the task scheduler used by the schedule commands.
func SetScheduler(s driving.TaskScheduler) {
	scheduler = s
}

// SetSettingsService injects the settings service used by the config command.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

// SetSchedulePath tells the watch command which file backs the schedule.
func SetSchedulePath(path string) {
	schedulePath = path
}

// resolveTaskID expands a task id given on the command line to the full
// stored id. Users may type any unique prefix; an exact match always wins.
func resolveTaskID(input string) (string, error) {
	if scheduler == nil {
		return "", errors.New("scheduler not configured")
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%w: task id is empty", domain.ErrInvalidInput)
	}

	var matches []domain.Task
	for _, t := range scheduler.ListTasks() {
		if t.ID == input {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("task %s: %w", input, domain.ErrNotFound)
	case 1:
		return matches[0].ID, nil
	default:
		titles := make([]string, 0, len(matches))
		for _, t := range matches {
			titles = append(titles, fmt.Sprintf("%s (%q)", shortID(t.ID), t.Title))
		}
		return "", fmt.Errorf("%w: id %q is ambiguous: %s",
			domain.ErrInvalidInput, input, strings.Join(titles, ", "))
	}
}
