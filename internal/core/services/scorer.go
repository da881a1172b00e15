package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
	"github.com/custodia-labs/sercha-notes/internal/logger"
	"github.com/custodia-labs/sercha-notes/internal/textnorm"
)

var scoreLog = logger.For("scorer")

// stopWords never count towards keyword overlap.
var stopWords = setOf(
	// Serbian
	"a", "i", "u", "na", "je", "da", "se", "za", "od", "do", "sa", "po", "ili", "li",
	"sam", "su", "mi", "ti", "to", "ta", "taj", "koji", "koja", "koje", "sta", "kad",
	"kada", "kako", "gde", "moj", "moja", "moje",
	// English
	"the", "an", "of", "to", "in", "on", "at", "for", "is", "are", "was", "my", "me",
	"what", "when", "where", "how", "do", "does", "did", "and", "or", "it", "its", "be",
	"with", "by", "from", "about",
)

// dueIntent words suggest the user asks for a date.
var dueIntent = setOf(
	"kada", "kad", "when", "rok", "roku", "due", "datum", "date", "deadline", "istice",
	"istek", "sutra", "danas", "prekosutra", "tomorrow", "today", "dan", "day",
)

// mileageIntent words suggest the user asks for a distance.
var mileageIntent = setOf(
	"km", "kilometara", "kilometraza", "kilometrazu", "mileage", "miles", "mi",
	"zamena", "zamenu", "change", "servis", "service", "odometar", "odometer",
)

func setOf(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Scorer ranks notes against a query.
type Scorer struct {
	weights domain.ScoringWeights
}

// NewScorer creates a scorer with the given weights.
func NewScorer(weights domain.ScoringWeights) *Scorer {
	return &Scorer{weights: weights}
}

// Score returns the notes with at least one contributing signal, sorted
// by score descending, then CreatedAt descending, then ID ascending.
// A query without tokens (empty or punctuation only) matches nothing.
func (s *Scorer) Score(query string, notes []domain.Note) []domain.ScoredNote {
	q := textnorm.Normalise(query)
	scored := []domain.ScoredNote{}
	allTokens := textnorm.Tokens(q)
	if len(allTokens) == 0 {
		return scored
	}

	queryTokens := keywords(allTokens)
	wantsDue := hasAny(allTokens, dueIntent)
	wantsMileage := hasAny(allTokens, mileageIntent)

	for i := range notes {
		sn, ok := s.scoreNote(q, queryTokens, wantsDue, wantsMileage, notes[i])
		if ok {
			scored = append(scored, sn)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.Note.CreatedAt.Equal(b.Note.CreatedAt) {
			return a.Note.CreatedAt.After(b.Note.CreatedAt)
		}
		return a.Note.ID < b.Note.ID
	})

	scoreLog.Debug("query %q matched %d of %d note(s)", q, len(scored), len(notes))
	return scored
}

func (s *Scorer) scoreNote(
	q string, queryTokens []string, wantsDue, wantsMileage bool, note domain.Note,
) (domain.ScoredNote, bool) {
	sn := domain.ScoredNote{Note: note}
	add := func(weight float64, why string) {
		sn.Score += weight
		sn.Why = append(sn.Why, why)
	}

	title := textnorm.Normalise(note.Title)
	text := textnorm.Normalise(note.Text)

	if strings.Contains(title, q) {
		add(s.weights.TitleExact, fmt.Sprintf("title contains '%s'", q))
	}
	if strings.Contains(text, q) {
		add(s.weights.TextExact, fmt.Sprintf("text contains '%s'", q))
	}

	noteTokens := textnorm.TokenSet(append([]string{note.Title, note.Text}, note.Tags...)...)
	shared := 0
	for _, tok := range queryTokens {
		if _, ok := noteTokens[tok]; ok {
			shared++
		}
	}
	if shared > 0 {
		add(float64(shared)*s.weights.Keyword, fmt.Sprintf("shares %d keyword(s)", shared))
	}

	facts := note.Facts()
	related := make(map[int]bool)
	if wantsDue {
		if i := firstFact(facts, isDueFact); i >= 0 {
			related[i] = true
			add(s.weights.Fact, "has due date fact")
		}
	}
	if wantsMileage {
		if i := firstFact(facts, isMileageFact); i >= 0 {
			related[i] = true
			add(s.weights.Fact, "has mileage fact")
		}
	}
	for _, tok := range queryTokens {
		if i := firstFact(facts, func(f domain.Fact) bool { return factMentions(f, tok) }); i >= 0 {
			related[i] = true
			add(s.weights.Fact, fmt.Sprintf("fact matches '%s'", tok))
		}
	}

	for i, f := range facts {
		if related[i] {
			sn.Facts = append(sn.Facts, f)
		}
	}
	return sn, len(sn.Why) > 0
}

// keywords returns distinct non-stop-word tokens in order.
func keywords(tokens []string) []string {
	seen := make(map[string]bool, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, stop := stopWords[tok]; stop || seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}

func hasAny(tokens []string, set map[string]struct{}) bool {
	for _, tok := range tokens {
		if _, ok := set[tok]; ok {
			return true
		}
	}
	return false
}

func firstFact(facts []domain.Fact, match func(domain.Fact) bool) int {
	for i, f := range facts {
		if match(f) {
			return i
		}
	}
	return -1
}

func isDueFact(f domain.Fact) bool {
	return f.Predicate == domain.PredicateDueOn
}

func isMileageFact(f domain.Fact) bool {
	return f.Trigger != nil && f.Trigger.Kind == domain.TriggerMileage
}

// factMentions reports whether tok equals a token of the fact's domain,
// subject or object. Subjects such as "oil_change" match "oil".
func factMentions(f domain.Fact, tok string) bool {
	for _, field := range []string{f.Domain, strings.ReplaceAll(f.Subject, "_", " "), f.Object} {
		for _, t := range textnorm.Tokens(field) {
			if t == tok {
				return true
			}
		}
	}
	return false
}
