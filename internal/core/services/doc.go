// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The extraction and search engine (FactExtractor, Scorer, Synthesiser
// and the Assistant facade) is pure and does no I/O; NoteService,
// WatchService and SettingsService add persistence through driven ports.
package services
