package driven

import (
	"context"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
)

// NoteStore persists notes together with their attached facts.
type NoteStore interface {
	// Save stores or replaces a note, including its facts.
	Save(ctx context.Context, note *domain.Note) error

	// Get retrieves a note by ID. Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, id string) (*domain.Note, error)

	// List returns all notes, newest first (ties by ID ascending).
	List(ctx context.Context) ([]domain.Note, error)

	// Delete removes a note and its facts. Deleting a missing note is not an error.
	Delete(ctx context.Context, id string) error
}
