package driving

import (
	"context"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
)

// NoteService manages stored notes and keeps their facts current.
type NoteService interface {
	// Save creates or updates a note, re-extracting facts when its text changed.
	Save(ctx context.Context, note domain.Note) (*domain.Note, error)

	// Get retrieves a note by ID.
	Get(ctx context.Context, id string) (*domain.Note, error)

	// List returns all notes, newest first.
	List(ctx context.Context) ([]domain.Note, error)

	// Remove deletes a note.
	Remove(ctx context.Context, id string) error

	// Reextract re-runs extraction over every stored note and returns the count.
	Reextract(ctx context.Context) (int, error)

	// Ask answers a query against a snapshot of the stored notes.
	Ask(ctx context.Context, query string) (domain.AskResult, error)
}
