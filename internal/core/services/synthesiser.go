package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
)

// maxCited is the number of ranked notes named in an answer.
const maxCited = 3

// titleWords is how many words of the text stand in for a missing title.
const titleWords = 6

// Messages is a localised message bundle for synthesised answers.
type Messages struct {
	// NoMatch is returned when nothing matched. Never empty.
	NoMatch string

	// Best introduces the top note, e.g. "Best match: %s".
	Best string

	// Also lists the remaining cited notes, e.g. "Also: %s".
	Also string

	// DueOn, NextDue and Reading render the top note's fact value.
	DueOn   string
	NextDue string
	Reading string
}

var bundles = map[domain.Locale]Messages{
	domain.LocaleEnglish: {
		NoMatch: "No matching notes found.",
		Best:    "Best match: %s",
		Also:    "Also: %s",
		DueOn:   "due on %s",
		NextDue: "next due at %s",
		Reading: "reading %s",
	},
	domain.LocaleSerbian: {
		NoMatch: "Nisu pronađene odgovarajuće beleške.",
		Best:    "Najbolje poklapanje: %s",
		Also:    "Takođe: %s",
		DueOn:   "rok %s",
		NextDue: "sledeće na %s",
		Reading: "stanje %s",
	},
}

// MessagesFor returns the bundle for locale, falling back to English.
func MessagesFor(locale domain.Locale) Messages {
	if m, ok := bundles[locale]; ok {
		return m
	}
	return bundles[domain.LocaleEnglish]
}

// Synthesiser composes the answer text for ranked notes.
type Synthesiser struct {
	msgs Messages
}

// NewSynthesiser creates a synthesiser for locale. A non-blank noMatch
// overrides the bundle's no-match answer.
func NewSynthesiser(locale domain.Locale, noMatch string) *Synthesiser {
	msgs := MessagesFor(locale)
	if strings.TrimSpace(noMatch) != "" {
		msgs.NoMatch = noMatch
	}
	return &Synthesiser{msgs: msgs}
}

// NoMatch returns the no-match answer.
func (s *Synthesiser) NoMatch() string {
	return s.msgs.NoMatch
}

// Synthesise returns a short summary naming the top ranked notes and the
// best fact value of the first one. It never returns a blank string.
func (s *Synthesiser) Synthesise(_ string, ranked []domain.ScoredNote) string {
	if len(ranked) == 0 {
		return s.msgs.NoMatch
	}

	top := ranked[0]
	var b strings.Builder
	b.WriteString(fmt.Sprintf(s.msgs.Best, quote(displayTitle(top.Note))))
	if value := s.factValue(top); value != "" {
		b.WriteString(" (" + value + ")")
	}
	b.WriteString(".")

	if n := min(len(ranked), maxCited); n > 1 {
		others := make([]string, 0, n-1)
		for _, sn := range ranked[1:n] {
			others = append(others, quote(displayTitle(sn.Note)))
		}
		b.WriteString(" ")
		b.WriteString(fmt.Sprintf(s.msgs.Also, strings.Join(others, ", ")))
		b.WriteString(".")
	}
	return b.String()
}

// factValue renders the most relevant structured fact: a correlated one
// first, then any on the note.
func (s *Synthesiser) factValue(sn domain.ScoredNote) string {
	for _, facts := range [][]domain.Fact{sn.Facts, sn.Note.Facts()} {
		for _, f := range facts {
			if v := s.renderFact(f); v != "" {
				return v
			}
		}
	}
	return ""
}

func (s *Synthesiser) renderFact(f domain.Fact) string {
	if f.Object == "" {
		return ""
	}
	switch f.Predicate {
	case domain.PredicateDueOn:
		return fmt.Sprintf(s.msgs.DueOn, f.Object)
	case domain.PredicateNextDue:
		return fmt.Sprintf(s.msgs.NextDue, f.Object)
	case domain.PredicateNumber:
		return fmt.Sprintf(s.msgs.Reading, f.Object)
	default:
		return ""
	}
}

// displayTitle returns the title, else the first words of the text,
// else the ID.
func displayTitle(n domain.Note) string {
	if t := strings.TrimSpace(n.Title); t != "" {
		return t
	}
	if words := strings.Fields(n.Text); len(words) > 0 {
		if len(words) > titleWords {
			return strings.Join(words[:titleWords], " ") + "..."
		}
		return strings.Join(words, " ")
	}
	return n.ID
}

func quote(s string) string {
	return `"` + s + `"`
}
