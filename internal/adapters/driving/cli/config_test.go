package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigCmd_Use(t *testing.T) {
	assert.Equal(t, "config", configCmd.Use)
}

func TestConfigCmd_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range configCmd.Commands() {
		names[cmd.Name()] = true
	}

	assert.True(t, names["list"], "list subcommand should be registered")
	assert.True(t, names["get"], "get subcommand should be registered")
	assert.True(t, names["set"], "set subcommand should be registered")
}

func TestConfigList_ShowsEveryKey(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	for _, key := range []string{
		"storage.backend",
		"storage.data_dir",
		"notifications.console",
		"notifications.log",
		"notifications.log_path",
		"calendar.id",
		"calendar.credentials_path",
	} {
		assert.Contains(t, out, key)
	}
}

func TestConfigList_ShowsDefaultsAndPlaceholders(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "list"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	// Default backend, placeholder for unset keys, config path in the header.
	assert.Contains(t, out, "json")
	assert.Contains(t, out, "(not set)")
	assert.Contains(t, out, ":memory:")
}

func TestConfigGet_UnsetKey(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "get", "calendar.id"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "calendar.id is not set")
}

func TestConfigSet_ThenGet(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"config", "set", "storage.backend", "sqlite"})
	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Set storage.backend = sqlite")

	buf.Reset()
	rootCmd.SetArgs([]string{"config", "get", "storage.backend"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()
	err = rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "sqlite")
}

func TestConfigSet_RejectsUnknownKey(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "set", "no.such.key", "value"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown setting")
}

func TestConfigSet_RejectsBadBackend(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "set", "storage.backend", "postgres"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "want json, sqlite or memory")
}

func TestConfigSet_RejectsBadBool(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"config", "set", "notifications.console", "maybe"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be true or false")
}

func TestConfigCmds_ServiceNotConfigured(t *testing.T) {
	oldSettings := settingsService
	settingsService = nil
	defer func() {
		settingsService = oldSettings
	}()

	for _, args := range [][]string{
		{"config", "list"},
		{"config", "get", "storage.backend"},
		{"config", "set", "storage.backend", "json"},
	} {
		buf := new(bytes.Buffer)
		rootCmd.SetOut(buf)
		rootCmd.SetErr(buf)
		rootCmd.SetArgs(args)

		err := rootCmd.Execute()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "settings service not configured")
	}
	rootCmd.SetArgs(nil)
}
