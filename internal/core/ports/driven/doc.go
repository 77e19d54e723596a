// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - FilterLoader: Loads the content filter for a file
//   - Filter: Chunk-based content filter bound to one file
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - NamedFilter: Filters that report a name for extraction results
//   - FilterCatalogue: Loaders that can list their filters
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or filter package
package driven
