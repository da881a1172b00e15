package services

import (
	"fmt"
	"time"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
	"github.com/custodia-labs/sercha-notes/internal/rules"
)

// testNow is the fixed clock used to resolve relative dates in tests.
var testNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("fact-%d", n)
	}
}

func newTestExtractor() *FactExtractor {
	return NewFactExtractor(rules.Defaults(),
		WithIDGenerator(sequentialIDs()),
		WithClock(func() time.Time { return testNow }),
	)
}

func newTestAssistant(maxMatches int) *Assistant {
	return NewAssistant(
		newTestExtractor(),
		NewScorer(domain.DefaultScoringWeights()),
		NewSynthesiser(domain.LocaleEnglish, ""),
		maxMatches,
	)
}

// noteWithFacts builds a note whose facts come from the default rules.
func noteWithFacts(id, title, text string, created time.Time) domain.Note {
	n := domain.Note{ID: id, Type: domain.NoteTypeText, Title: title, Text: text, CreatedAt: created}
	n.SetFacts(newTestExtractor().Extract(text))
	return n
}
