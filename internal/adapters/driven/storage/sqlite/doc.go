// Package sqlite provides the SQLite-backed note store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. Notes live in the notes table and their extracted facts
// in the facts table, one row per fact, removed with the note.
//
// # Schema
//
// The schema is managed through versioned migrations embedded from the
// migrations/ directory. Applied versions are recorded in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.sercha-notes/data/notes.db
//
// # Thread Safety
//
// All operations are thread-safe. The store relies on SQLite in WAL mode.
package sqlite
