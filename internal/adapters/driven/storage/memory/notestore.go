package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driven"
)

// Ensure NoteStore implements the interface.
var _ driven.NoteStore = (*NoteStore)(nil)

// NoteStore is an in-memory implementation of driven.NoteStore.
// Notes are copied on the way in and out so callers never share state.
type NoteStore struct {
	mu    sync.RWMutex
	notes map[string]domain.Note
}

// NewNoteStore creates a new in-memory note store.
func NewNoteStore() *NoteStore {
	return &NoteStore{
		notes: make(map[string]domain.Note),
	}
}

// Save stores or replaces a note.
func (s *NoteStore) Save(_ context.Context, note *domain.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes[note.ID] = cloneNote(*note)
	return nil
}

// Get retrieves a note by ID.
func (s *NoteStore) Get(_ context.Context, id string) (*domain.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	note, ok := s.notes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := cloneNote(note)
	return &out, nil
}

// List returns all notes, newest first.
func (s *NoteStore) List(_ context.Context) ([]domain.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Note, 0, len(s.notes))
	for _, note := range s.notes {
		out = append(out, cloneNote(note))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Delete removes a note.
func (s *NoteStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.notes, id)
	return nil
}

func cloneNote(n domain.Note) domain.Note {
	if n.Tags != nil {
		n.Tags = append([]string(nil), n.Tags...)
	}
	if n.AI != nil {
		ai := &domain.NoteAI{}
		if n.AI.Facts != nil {
			ai.Facts = make([]domain.Fact, len(n.AI.Facts))
			for i, f := range n.AI.Facts {
				if f.Trigger != nil {
					tr := *f.Trigger
					f.Trigger = &tr
				}
				ai.Facts[i] = f
			}
		}
		n.AI = ai
	}
	return n
}
