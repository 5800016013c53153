// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Fetcher: Retrieves the raw results page for a query
//   - Extractor: Turns the raw page into ordered search results
//   - URLOpener: Hands a URL to the desktop's default handler
//
// # Optional Interfaces
//
//   - ConfigStore: Read-only configuration. Without it, defaults apply.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
