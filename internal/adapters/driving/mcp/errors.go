// Package mcp provides an MCP (Model Context Protocol) server adapter for dayplan.
// It enables AI assistants like Claude to manage the day's schedule through typed tools.
package mcp

import "errors"

// ErrMissingSchedulerService is returned when the scheduler service is not provided.
var ErrMissingSchedulerService = errors.New("mcp: scheduler service is required")
