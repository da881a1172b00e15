package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-notes/internal/logger"
)

// Ensure NoteService implements the interface.
var _ driving.NoteService = (*NoteService)(nil)

// NoteService manages stored notes and keeps their facts in step with
// their text.
type NoteService struct {
	store     driven.NoteStore
	assistant driving.AssistantService
	now       func() time.Time
}

// NewNoteService creates a note service.
func NewNoteService(store driven.NoteStore, assistant driving.AssistantService) *NoteService {
	return &NoteService{
		store:     store,
		assistant: assistant,
		now:       time.Now,
	}
}

// Save creates or updates a note. New notes get an ID and timestamps.
// Facts are re-extracted when the text differs from the stored copy or
// the note has none yet, so they never describe stale text.
func (s *NoteService) Save(ctx context.Context, note domain.Note) (*domain.Note, error) {
	if note.Type == "" {
		note.Type = domain.NoteTypeText
	}
	if !note.Type.IsValid() {
		return nil, fmt.Errorf("%w: note type %q", domain.ErrInvalidInput, note.Type)
	}
	if strings.TrimSpace(note.Title) == "" && strings.TrimSpace(note.Text) == "" {
		return nil, fmt.Errorf("%w: note needs a title or text", domain.ErrInvalidInput)
	}

	now := s.now()
	var existing *domain.Note
	if note.ID == "" {
		note.ID = uuid.NewString()
	} else {
		found, err := s.store.Get(ctx, note.ID)
		switch {
		case err == nil:
			existing = found
		case !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("get note: %w", err)
		}
	}

	if note.CreatedAt.IsZero() {
		note.CreatedAt = now
		if existing != nil {
			note.CreatedAt = existing.CreatedAt
		}
	}
	if note.UpdatedAt.IsZero() || existing != nil {
		note.UpdatedAt = now
	}

	stale := existing == nil || existing.Text != note.Text
	if stale || len(note.Facts()) == 0 {
		if !stale && len(existing.Facts()) > 0 {
			note.SetFacts(existing.Facts())
		} else {
			note.SetFacts(s.assistant.ExtractFacts(note.Text))
		}
	}

	if err := s.store.Save(ctx, &note); err != nil {
		return nil, fmt.Errorf("save note: %w", err)
	}
	logger.Debug("Saved note %s with %d fact(s)", note.ID, len(note.Facts()))
	return &note, nil
}

// Get retrieves a note by ID.
func (s *NoteService) Get(ctx context.Context, id string) (*domain.Note, error) {
	note, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get note %s: %w", id, err)
	}
	return note, nil
}

// List returns all notes, newest first.
func (s *NoteService) List(ctx context.Context) ([]domain.Note, error) {
	notes, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// Remove deletes a note. Missing notes return domain.ErrNotFound.
func (s *NoteService) Remove(ctx context.Context, id string) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		return fmt.Errorf("get note %s: %w", id, err)
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete note %s: %w", id, err)
	}
	return nil
}

// Reextract replaces the facts of every stored note, for example after
// the enabled rules changed. It returns the number of notes updated.
func (s *NoteService) Reextract(ctx context.Context) (int, error) {
	notes, err := s.store.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list notes: %w", err)
	}
	for i := range notes {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		note := notes[i]
		note.SetFacts(s.assistant.ExtractFacts(note.Text))
		if err := s.store.Save(ctx, &note); err != nil {
			return i, fmt.Errorf("save note %s: %w", note.ID, err)
		}
	}
	logger.Info("Re-extracted facts for %d note(s)", len(notes))
	return len(notes), nil
}

// Ask answers query against the notes currently in the store.
func (s *NoteService) Ask(ctx context.Context, query string) (domain.AskResult, error) {
	notes, err := s.store.List(ctx)
	if err != nil {
		return domain.AskResult{}, fmt.Errorf("list notes: %w", err)
	}
	return s.assistant.Ask(query, notes), nil
}
