// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - DomainRule: A keyword-triggered fact extraction rule
//   - NoteStore: Note and fact persistence (sqlite or memory)
//   - NoteSource: A watched collection of notes (filesystem)
//   - Normaliser: Converts a note file's content into note text
//   - ConfigStore: Application configuration (TOML)
//
// The extraction and search engine itself only needs DomainRule; the
// stores and sources exist for the CLI, MCP and TUI front ends.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or rule package
package driven
