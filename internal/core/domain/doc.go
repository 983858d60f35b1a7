// Package domain defines the core business entities for dayplan.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Task: a single scheduled interval within one day
//   - Priority: task importance (Low, Medium, High)
//   - TaskUpdate: a sparse set of field overrides for an edit
//   - Settings: user-configurable application behaviour
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
