package mcp

import (
	"context"
	"time"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
)

// mockNoteService is a mock implementation of driving.NoteService.
type mockNoteService struct {
	notes  []domain.Note
	result domain.AskResult
	err    error
}

func (m *mockNoteService) Save(_ context.Context, note domain.Note) (*domain.Note, error) {
	return &note, m.err
}

func (m *mockNoteService) Get(_ context.Context, id string) (*domain.Note, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.notes {
		if m.notes[i].ID == id {
			return &m.notes[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockNoteService) List(_ context.Context) ([]domain.Note, error) {
	return m.notes, m.err
}

func (m *mockNoteService) Remove(_ context.Context, _ string) error {
	return m.err
}

func (m *mockNoteService) Reextract(_ context.Context) (int, error) {
	return len(m.notes), m.err
}

func (m *mockNoteService) Ask(_ context.Context, _ string) (domain.AskResult, error) {
	return m.result, m.err
}

// mockAssistant is a mock implementation of driving.AssistantService.
type mockAssistant struct {
	facts []domain.Fact
}

func (m *mockAssistant) ExtractFacts(_ string) []domain.Fact {
	return m.facts
}

func (m *mockAssistant) Ask(_ string, _ []domain.Note) domain.AskResult {
	return domain.AskResult{}
}

func testNotes() []domain.Note {
	created := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	oil := domain.Note{
		ID:        "note-1",
		Type:      domain.NoteTypeText,
		Title:     "Auto",
		Text:      "sledeca zamena ulja na 100000km",
		CreatedAt: created,
		Tags:      []string{"car"},
	}
	oil.SetFacts([]domain.Fact{{
		ID:        "fact-1",
		Domain:    "car",
		Subject:   "oil_change",
		Predicate: domain.PredicateNextDue,
		Object:    "100000 km",
		Trigger:   domain.MileageTrigger(100000, "km", domain.CmpGreaterEqual),
	}})

	return []domain.Note{
		oil,
		{ID: "note-2", Type: domain.NoteTypeAudio, Title: "Kupovina", Text: "kupiti hleb", CreatedAt: created.Add(-time.Hour)},
	}
}

func validPorts(notes *mockNoteService) *Ports {
	return &Ports{Notes: notes, Assistant: &mockAssistant{}}
}
