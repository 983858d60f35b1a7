package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dayplan-labs/dayplan-cli/internal/adapters/driven/config/file"
	"github.com/dayplan-labs/dayplan-cli/internal/adapters/driven/notify"
	"github.com/dayplan-labs/dayplan-cli/internal/adapters/driven/storage/jsonfile"
	"github.com/dayplan-labs/dayplan-cli/internal/adapters/driven/storage/memory"
	"github.com/dayplan-labs/dayplan-cli/internal/adapters/driven/storage/sqlite"
	"github.com/dayplan-labs/dayplan-cli/internal/adapters/driving/cli"
	"github.com/dayplan-labs/dayplan-cli/internal/core/domain"
	"github.com/dayplan-labs/dayplan-cli/internal/core/ports/driven"
	"github.com/dayplan-labs/dayplan-cli/internal/core/services"
)

func main() {
	cli.SetInitializer(initServices)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// initServices wires storage, scheduler and notifiers from the persisted
// settings. Runs once per invocation, after cobra has parsed the global
// flags, so flag overrides are already resolved into opts.
func initServices(opts cli.Options) error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}

	// Flags win over configured settings.
	if opts.Storage != "" {
		backend := domain.StorageBackend(opts.Storage)
		if !backend.IsValid() {
			return fmt.Errorf("%w: storage backend %q (want json, sqlite or memory)",
				domain.ErrInvalidInput, opts.Storage)
		}
		settings.Storage = backend
	}
	if opts.DataDir != "" {
		settings.DataDir = opts.DataDir
	}

	store, err := newTaskStore(settings)
	if err != nil {
		return err
	}

	scheduler := services.NewScheduler(store)
	scheduler.Load(context.Background())

	for _, n := range newNotifiers(settings) {
		scheduler.Subscribe(n)
	}

	cli.SetScheduler(scheduler)
	cli.SetSettingsService(settingsService)
	return nil
}

// newTaskStore builds the persistence backend selected in settings.
func newTaskStore(settings *domain.Settings) (driven.TaskStore, error) {
	switch settings.Storage {
	case domain.StorageSQLite:
		store, err := sqlite.NewTaskStore(settings.DataDir)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return store, nil

	case domain.StorageMemory:
		return memory.NewTaskStore(), nil

	default:
		store, err := jsonfile.NewTaskStore(settings.DataDir)
		if err != nil {
			return nil, fmt.Errorf("opening schedule store: %w", err)
		}
		// Only the JSON backend has a file the watch command can follow.
		cli.SetSchedulePath(store.Path())
		return store, nil
	}
}

// newNotifiers builds the notifiers enabled in settings. A notifier that
// cannot be constructed is skipped with a warning: notifications are
// best-effort and must never stop the scheduler from starting.
func newNotifiers(settings *domain.Settings) []driven.Notifier {
	var notifiers []driven.Notifier

	if settings.NotifyConsole {
		notifiers = append(notifiers, notify.NewConsoleNotifier(os.Stdout))
	}

	if settings.NotifyLog {
		logPath := settings.NotifyLogPath
		if logPath == "" && settings.DataDir != "" {
			logPath = filepath.Join(settings.DataDir, "notifications.log")
		}
		logNotifier, err := notify.NewLogFileNotifier(logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "dayplan: notification log disabled: %v\n", err)
		} else {
			notifiers = append(notifiers, logNotifier)
		}
	}

	return notifiers
}
