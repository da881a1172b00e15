package services

import (
	"github.com/custodia-labs/sercha-notes/internal/core/domain"
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-notes/internal/logger"
)

// Ensure Assistant implements the interface.
var _ driving.AssistantService = (*Assistant)(nil)

// Assistant is the query facade: it extracts facts from note text and
// answers queries over a snapshot of notes. It holds no mutable state.
type Assistant struct {
	extractor   *FactExtractor
	scorer      *Scorer
	synthesiser *Synthesiser
	maxMatches  int
}

// NewAssistant wires the extraction and search pipeline. maxMatches caps
// the returned matches; 0 means unlimited.
func NewAssistant(extractor *FactExtractor, scorer *Scorer, synthesiser *Synthesiser, maxMatches int) *Assistant {
	return &Assistant{
		extractor:   extractor,
		scorer:      scorer,
		synthesiser: synthesiser,
		maxMatches:  maxMatches,
	}
}

// ExtractFacts returns the facts found in text.
func (a *Assistant) ExtractFacts(text string) []domain.Fact {
	return a.extractor.Extract(text)
}

// Ask scores notes against query and synthesises an answer. The result
// depends only on its arguments.
func (a *Assistant) Ask(query string, notes []domain.Note) domain.AskResult {
	logger.Section("Ask")
	logger.Debug("Query: %q over %d note(s)", query, len(notes))

	ranked := a.scorer.Score(query, notes)
	if a.maxMatches > 0 && len(ranked) > a.maxMatches {
		ranked = ranked[:a.maxMatches]
	}

	result := domain.AskResult{
		Answer:  a.synthesiser.Synthesise(query, ranked),
		Matches: make([]domain.Match, len(ranked)),
	}
	for i, sn := range ranked {
		result.Matches[i] = domain.Match{NoteID: sn.Note.ID, Score: sn.Score, Why: sn.Why}
	}
	logger.Debug("Answer: %q", result.Answer)
	return result
}
