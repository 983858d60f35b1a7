package driving

import "github.com/dayplan-labs/dayplan-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.Settings, error)

	// Save persists application settings.
	Save(settings *domain.Settings) error

	// SetStorageBackend updates the persistence backend.
	SetStorageBackend(backend domain.StorageBackend) error

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings

	// List returns every configured key/value pair.
	List() map[string]string

	// GetValue returns the raw configured value for a dotted key.
	GetValue(key string) (string, bool)

	// SetValue stores a raw value under a dotted key.
	SetValue(key, value string) error

	// Path returns the configuration file path.
	Path() string
}
