package driven

import (
	"context"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
)

// NoteSource is an external collection of notes, such as a directory
// of text files written by a transcription or OCR pipeline.
type NoteSource interface {
	// Load returns the current notes in the source.
	Load(ctx context.Context) ([]domain.Note, error)

	// Watch streams changes until ctx is cancelled, then closes the channel.
	Watch(ctx context.Context) (<-chan domain.NoteChange, error)

	// Close releases resources.
	Close() error
}
