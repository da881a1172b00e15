package driving

import "github.com/custodia-labs/sercha-notes/internal/core/domain"

// AssistantService is the extraction and search engine.
// Both operations are total: they never fail and never mutate their input.
type AssistantService interface {
	// ExtractFacts turns note text into zero or more facts. The caller
	// attaches the result to the note.
	ExtractFacts(text string) []domain.Fact

	// Ask answers a query against the given snapshot of notes.
	Ask(query string, notes []domain.Note) domain.AskResult
}
