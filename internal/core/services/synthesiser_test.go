package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
)

func TestSynthesiser_NoMatch(t *testing.T) {
	tests := []struct {
		name    string
		locale  domain.Locale
		noMatch string
		want    string
	}{
		{"english", domain.LocaleEnglish, "", "No matching notes found."},
		{"serbian", domain.LocaleSerbian, "", "Nisu pronađene odgovarajuće beleške."},
		{"unknown locale falls back", domain.Locale("de"), "", "No matching notes found."},
		{"override", domain.LocaleEnglish, "Nothing here.", "Nothing here."},
		{"blank override ignored", domain.LocaleEnglish, "  ", "No matching notes found."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSynthesiser(tt.locale, tt.noMatch)
			assert.Equal(t, tt.want, s.Synthesise("q", nil))
			assert.Equal(t, tt.want, s.NoMatch())
		})
	}
}

func TestSynthesiser_SingleNoteWithFact(t *testing.T) {
	note := domain.Note{ID: "a", Title: "Oil change"}
	note.SetFacts([]domain.Fact{
		{Domain: "car", Predicate: domain.PredicateTopic, Object: "car"},
		{Domain: "car", Subject: "oil_change", Predicate: domain.PredicateNextDue, Object: "100000 km"},
	})

	got := NewSynthesiser(domain.LocaleEnglish, "").Synthesise("oil", []domain.ScoredNote{{Note: note}})

	assert.Equal(t, `Best match: "Oil change" (next due at 100000 km).`, got)
}

func TestSynthesiser_PrefersCorrelatedFact(t *testing.T) {
	note := domain.Note{ID: "a", Title: "Auto"}
	note.SetFacts([]domain.Fact{
		{Predicate: domain.PredicateNumber, Object: "85000 km"},
		{Predicate: domain.PredicateDueOn, Object: "2024-04-15"},
	})
	ranked := []domain.ScoredNote{{Note: note, Facts: []domain.Fact{note.Facts()[1]}}}

	got := NewSynthesiser(domain.LocaleSerbian, "").Synthesise("kada", ranked)

	assert.Equal(t, `Najbolje poklapanje: "Auto" (rok 2024-04-15).`, got)
}

func TestSynthesiser_CitesTopThree(t *testing.T) {
	ranked := []domain.ScoredNote{
		{Note: domain.Note{ID: "1", Title: "One"}},
		{Note: domain.Note{ID: "2", Title: "Two"}},
		{Note: domain.Note{ID: "3", Title: "Three"}},
		{Note: domain.Note{ID: "4", Title: "Four"}},
	}

	got := NewSynthesiser(domain.LocaleEnglish, "").Synthesise("q", ranked)

	assert.Equal(t, `Best match: "One". Also: "Two", "Three".`, got)
}

func TestSynthesiser_TopicOnlyFactsOmitted(t *testing.T) {
	note := domain.Note{ID: "1", Title: "Milk"}
	note.SetFacts([]domain.Fact{{Predicate: domain.PredicateTopic, Object: "shopping"}})

	got := NewSynthesiser(domain.LocaleEnglish, "").Synthesise("q", []domain.ScoredNote{{Note: note}})

	assert.Equal(t, `Best match: "Milk".`, got)
}

func TestDisplayTitle(t *testing.T) {
	tests := []struct {
		name string
		note domain.Note
		want string
	}{
		{"title", domain.Note{ID: "x", Title: " Oil "}, "Oil"},
		{"short text", domain.Note{ID: "x", Text: "kupi  mleko"}, "kupi mleko"},
		{"long text", domain.Note{ID: "x", Text: "one two three four five six seven"}, "one two three four five six..."},
		{"id", domain.Note{ID: "x", Text: "  "}, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, displayTitle(tt.note))
		})
	}
}
