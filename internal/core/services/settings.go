package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dayplan-labs/dayplan-cli/internal/core/domain"
	"github.com/dayplan-labs/dayplan-cli/internal/core/ports/driven"
	"github.com/dayplan-labs/dayplan-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyStorageBackend = "storage.backend"
	keyDataDir        = "storage.data_dir"
	keyNotifyConsole  = "notifications.console"
	keyNotifyLog      = "notifications.log"
	keyNotifyLogPath  = "notifications.log_path"
	keyCalendarID     = "calendar.id"
	keyCalendarCreds  = "calendar.credentials_path"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Defaults fill in anything not configured.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Storage:       s.getBackend(defaults.Storage),
		DataDir:       s.configStore.GetString(keyDataDir),
		NotifyConsole: s.getBool(keyNotifyConsole, defaults.NotifyConsole),
		NotifyLog:     s.getBool(keyNotifyLog, defaults.NotifyLog),
		NotifyLogPath: s.configStore.GetString(keyNotifyLogPath),
		Calendar: domain.CalendarSettings{
			CalendarID:      s.configStore.GetString(keyCalendarID),
			CredentialsPath: s.configStore.GetString(keyCalendarCreds),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if err := s.configStore.Set(keyStorageBackend, settings.Storage.String()); err != nil {
		return fmt.Errorf("save storage backend: %w", err)
	}
	if err := s.configStore.Set(keyDataDir, settings.DataDir); err != nil {
		return fmt.Errorf("save data dir: %w", err)
	}
	if err := s.configStore.Set(keyNotifyConsole, settings.NotifyConsole); err != nil {
		return fmt.Errorf("save console notifications: %w", err)
	}
	if err := s.configStore.Set(keyNotifyLog, settings.NotifyLog); err != nil {
		return fmt.Errorf("save log notifications: %w", err)
	}
	if err := s.configStore.Set(keyNotifyLogPath, settings.NotifyLogPath); err != nil {
		return fmt.Errorf("save notification log path: %w", err)
	}
	if err := s.configStore.Set(keyCalendarID, settings.Calendar.CalendarID); err != nil {
		return fmt.Errorf("save calendar id: %w", err)
	}
	if err := s.configStore.Set(keyCalendarCreds, settings.Calendar.CredentialsPath); err != nil {
		return fmt.Errorf("save calendar credentials path: %w", err)
	}
	return nil
}

// SetStorageBackend updates the persistence backend.
func (s *SettingsService) SetStorageBackend(backend domain.StorageBackend) error {
	if !backend.IsValid() {
		return fmt.Errorf("%w: storage backend %q (want json, sqlite or memory)", domain.ErrInvalidInput, backend)
	}
	return s.configStore.Set(keyStorageBackend, backend.String())
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// List returns the effective value of every setting, defaults included.
func (s *SettingsService) List() map[string]string {
	settings, _ := s.Get()
	return map[string]string{
		keyStorageBackend: settings.Storage.String(),
		keyDataDir:        settings.DataDir,
		keyNotifyConsole:  strconv.FormatBool(settings.NotifyConsole),
		keyNotifyLog:      strconv.FormatBool(settings.NotifyLog),
		keyNotifyLogPath:  settings.NotifyLogPath,
		keyCalendarID:     settings.Calendar.CalendarID,
		keyCalendarCreds:  settings.Calendar.CredentialsPath,
	}
}

// GetValue returns the raw configured value for a dotted key.
func (s *SettingsService) GetValue(key string) (string, bool) {
	value, ok := s.configStore.Get(key)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%v", value), true
}

// SetValue stores a raw value under a dotted key, coercing it to the type
// the key expects. Unknown keys are rejected.
func (s *SettingsService) SetValue(key, value string) error {
	switch key {
	case keyStorageBackend:
		backend := domain.StorageBackend(strings.ToLower(strings.TrimSpace(value)))
		if !backend.IsValid() {
			return fmt.Errorf("%w: storage backend %q (want json, sqlite or memory)", domain.ErrInvalidInput, value)
		}
		return s.configStore.Set(key, backend.String())

	case keyNotifyConsole, keyNotifyLog:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, b)

	case keyDataDir, keyNotifyLogPath, keyCalendarID, keyCalendarCreds:
		return s.configStore.Set(key, value)

	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// getBackend reads the configured backend, falling back when it is absent
// or unrecognised.
func (s *SettingsService) getBackend(fallback domain.StorageBackend) domain.StorageBackend {
	backend := domain.StorageBackend(s.configStore.GetString(keyStorageBackend))
	if !backend.IsValid() {
		return fallback
	}
	return backend
}

// getBool reads a boolean key, falling back when it is absent.
func (s *SettingsService) getBool(key string, fallback bool) bool {
	if _, ok := s.configStore.Get(key); !ok {
		return fallback
	}
	return s.configStore.GetBool(key)
}
