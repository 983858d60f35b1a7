// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - TaskStore: durable persistence for the task collection
//   - ConfigStore: application configuration
//
// # Optional Interfaces
//
// These can be absent - the application degrades gracefully:
//
//   - Notifier: schedule event listener. Zero or more may be subscribed;
//     with none, mutations simply go unannounced.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
