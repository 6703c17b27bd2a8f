// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - GridLoader: Reads a schematic into a domain.Grid
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - GridWatcher: Notifies when a schematic changes on disk. Without it,
//     watch mode is unavailable.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
