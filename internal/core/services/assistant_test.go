package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
)

func TestAssistant_EmptyCorpus(t *testing.T) {
	result := newTestAssistant(0).Ask("oil", nil)

	assert.Empty(t, result.Matches)
	assert.NotNil(t, result.Matches)
	assert.Equal(t, "No matching notes found.", result.Answer)
}

func TestAssistant_BlankQuery(t *testing.T) {
	result := newTestAssistant(0).Ask("   ", rankingCorpus())

	assert.Empty(t, result.Matches)
	assert.Equal(t, "No matching notes found.", result.Answer)
}

func TestAssistant_NoMatchScenario(t *testing.T) {
	result := newTestAssistant(0).Ask("xyzzyunrelatedterm", rankingCorpus())

	assert.Empty(t, result.Matches)
	assert.Equal(t, "No matching notes found.", result.Answer)
}

func TestAssistant_RankingScenario(t *testing.T) {
	result := newTestAssistant(0).Ask("oil", rankingCorpus())

	require.NotEmpty(t, result.Matches)
	assert.Equal(t, "a", result.Matches[0].NoteID)
	for _, m := range result.Matches {
		assert.NotEqual(t, "b", m.NoteID)
	}
	assert.Contains(t, result.Matches[0].Why, "title contains 'oil'")
	assert.Equal(t, `Best match: "Oil change".`, result.Answer)
}

func TestAssistant_AnswersWithFact(t *testing.T) {
	notes := []domain.Note{
		noteWithFacts("car", "Auto", "Registracija do 15.04.2024", testNow),
		noteWithFacts("oil", "Servis", "sledeca zamena ulja na 100000km", testNow.Add(-time.Hour)),
	}

	result := newTestAssistant(0).Ask("kada ističe registracija", notes)

	require.Len(t, result.Matches, 1)
	assert.Equal(t, "car", result.Matches[0].NoteID)
	assert.Equal(t, `Best match: "Auto" (due on 2024-04-15).`, result.Answer)

	result = newTestAssistant(0).Ask("zamena ulja km", notes)
	require.NotEmpty(t, result.Matches)
	assert.Equal(t, "oil", result.Matches[0].NoteID)
	assert.Equal(t, `Best match: "Servis" (next due at 100000 km).`, result.Answer)
}

func TestAssistant_Deterministic(t *testing.T) {
	notes := []domain.Note{
		noteWithFacts("1", "Auto", "registracija do 15.04.2024", testNow),
		noteWithFacts("2", "Oil", "zamena ulja na 90k", testNow),
		noteWithFacts("3", "", "change oil filter", testNow.Add(-time.Minute)),
	}
	a := newTestAssistant(0)

	first := a.Ask("oil change", notes)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, a.Ask("oil change", notes))
	}
}

func TestAssistant_MaxMatches(t *testing.T) {
	notes := []domain.Note{
		{ID: "1", Text: "oil", CreatedAt: testNow},
		{ID: "2", Text: "oil", CreatedAt: testNow},
		{ID: "3", Text: "oil", CreatedAt: testNow},
	}

	result := newTestAssistant(2).Ask("oil", notes)

	require.Len(t, result.Matches, 2)
	assert.Equal(t, "1", result.Matches[0].NoteID)
	assert.Equal(t, "2", result.Matches[1].NoteID)
}

func TestAssistant_ExtractFacts(t *testing.T) {
	facts := newTestAssistant(0).ExtractFacts("sledeca zamena ulja na 100000km")

	require.Len(t, facts, 1)
	assert.Equal(t, domain.PredicateNextDue, facts[0].Predicate)
}
