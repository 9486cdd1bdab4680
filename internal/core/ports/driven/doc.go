// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - NamespaceHandler: Translates between one vocabulary's URLs and URN suffixes
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ConcordanceStore: Persists batch results. Without it, batch runs are not recorded.
//   - ConfigStore: Application configuration. Without it, defaults apply.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or namespace package
package driven
