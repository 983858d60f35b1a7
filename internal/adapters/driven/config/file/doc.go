// Package file provides the file-based configuration adapter.
// Settings are persisted as TOML in the dayplan config directory and
// exposed to the core through the driven.ConfigStore port.
package file
