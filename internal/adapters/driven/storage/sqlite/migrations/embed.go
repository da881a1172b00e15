// Package migrations holds the versioned schema of the note database.
// Files are named NNN_description.up.sql; only .up.sql files are applied.
package migrations

import "embed"

// FS holds the migration files.
//
//go:embed *.sql
var FS embed.FS
