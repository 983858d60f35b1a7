package domain

const unknownDescription = "Unknown"

// StorageBackend selects which task store implementation persists the schedule.
type StorageBackend string

// Available storage backends.
const (
	// StorageJSON persists the schedule as a JSON file. The default.
	StorageJSON StorageBackend = "json"

	// StorageSQLite persists the schedule in a SQLite database.
	StorageSQLite StorageBackend = "sqlite"

	// StorageMemory keeps the schedule in memory only. Nothing survives restart.
	StorageMemory StorageBackend = "memory"
)

// AllStorageBackends returns every selectable backend.
func AllStorageBackends() []StorageBackend {
	return []StorageBackend{StorageJSON, StorageSQLite, StorageMemory}
}

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageJSON, StorageSQLite, StorageMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b StorageBackend) Description() string {
	switch b {
	case StorageJSON:
		return "JSON file (atomic writes)"
	case StorageSQLite:
		return "SQLite database"
	case StorageMemory:
		return "In-memory (ephemeral)"
	default:
		return unknownDescription
	}
}

// Settings holds user-configurable application behaviour.
type Settings struct {
	// Storage selects the persistence backend.
	Storage StorageBackend

	// DataDir is where schedule data lives. Empty means ~/.dayplan.
	DataDir string

	// NotifyConsole mirrors schedule events to standard output.
	NotifyConsole bool

	// NotifyLog appends schedule events to the notification log file.
	NotifyLog bool

	// NotifyLogPath overrides the notification log location.
	// Empty means notifications.log inside DataDir.
	NotifyLogPath string

	// Calendar configures Google Calendar export.
	Calendar CalendarSettings
}

// CalendarSettings holds Google Calendar export configuration.
type CalendarSettings struct {
	// CalendarID is the target calendar. Empty means the primary calendar.
	CalendarID string

	// CredentialsPath points at the OAuth client credentials JSON.
	// Empty means credentials.json inside DataDir.
	CredentialsPath string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Storage:       StorageJSON,
		NotifyConsole: true,
		NotifyLog:     true,
	}
}
