// Package connectors holds note sources that feed the note store from
// outside the application. Each source implements driven.NoteSource.
package connectors
