// Package driving defines the interfaces that external actors use to call INTO core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI and TUI adapters depend on these interfaces; core services
// implement them.
//
//   - SearchService: Query the engine and get extracted results
//   - ResultActionService: Act on a selected result
//   - SettingsService: Resolve effective settings
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driving
