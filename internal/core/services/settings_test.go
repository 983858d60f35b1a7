package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayplan-labs/dayplan-cli/internal/adapters/driven/storage/memory"
	"github.com/dayplan-labs/dayplan-cli/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	require.NotNil(t, settings)

	defaults := domain.DefaultSettings()
	assert.Equal(t, defaults.Storage, settings.Storage)
	assert.Equal(t, defaults.NotifyConsole, settings.NotifyConsole)
	assert.Equal(t, defaults.NotifyLog, settings.NotifyLog)
	assert.Empty(t, settings.DataDir)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("storage.backend", "sqlite")
	_ = store.Set("storage.data_dir", "/tmp/dayplan")
	_ = store.Set("notifications.console", false)
	_ = store.Set("calendar.id", "work@example.com")

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.StorageSQLite, settings.Storage)
	assert.Equal(t, "/tmp/dayplan", settings.DataDir)
	assert.False(t, settings.NotifyConsole)
	assert.Equal(t, "work@example.com", settings.Calendar.CalendarID)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("storage.backend", "postgres")

	service := NewSettingsService(store)

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.StorageJSON, settings.Storage, "unknown backend falls back to default")
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	in := &domain.Settings{
		Storage:       domain.StorageMemory,
		DataDir:       "/data",
		NotifyConsole: false,
		NotifyLog:     true,
		NotifyLogPath: "/data/events.log",
		Calendar: domain.CalendarSettings{
			CalendarID:      "primary",
			CredentialsPath: "/data/credentials.json",
		},
	}
	require.NoError(t, service.Save(in))

	out, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSettingsService_SetStorageBackend(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetStorageBackend(domain.StorageSQLite))
	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.StorageSQLite, settings.Storage)

	err = service.SetStorageBackend(domain.StorageBackend("postgres"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestSettingsService_List(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)
	_ = store.Set("storage.backend", "sqlite")

	listing := service.List()

	assert.Equal(t, "sqlite", listing["storage.backend"])
	assert.Equal(t, "true", listing["notifications.console"], "defaults show through")
	assert.Contains(t, listing, "calendar.id")
}

func TestSettingsService_SetValue(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
	}{
		{name: "backend normalised", key: "storage.backend", value: "SQLite"},
		{name: "backend invalid", key: "storage.backend", value: "postgres", wantErr: true},
		{name: "bool true", key: "notifications.console", value: "true"},
		{name: "bool not a bool", key: "notifications.log", value: "maybe", wantErr: true},
		{name: "free string", key: "calendar.id", value: "work@example.com"},
		{name: "unknown key", key: "search.mode", value: "hybrid", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewConfigStore()
			service := NewSettingsService(store)

			err := service.SetValue(tt.key, tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalidInput))
				return
			}
			require.NoError(t, err)

			_, ok := service.GetValue(tt.key)
			assert.True(t, ok)
		})
	}
}

func TestSettingsService_SetValue_CoercesTypes(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.SetValue("notifications.console", "false"))

	// Stored as a real bool, not the string "false".
	raw, ok := store.Get("notifications.console")
	require.True(t, ok)
	assert.Equal(t, false, raw)

	require.NoError(t, service.SetValue("storage.backend", " JSON "))
	assert.Equal(t, "json", store.GetString("storage.backend"))
}

func TestSettingsService_GetValue_Missing(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	_, ok := service.GetValue("storage.backend")
	assert.False(t, ok, "GetValue reads raw config, not defaults")
}

func TestSettingsService_Path(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	assert.Equal(t, ":memory:", service.Path())
}
