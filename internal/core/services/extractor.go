package services

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-notes/internal/logger"
	"github.com/custodia-labs/sercha-notes/internal/textnorm"
)

var extractLog = logger.For("extractor")

// FactExtractor runs domain rules over the windows of a note's text.
type FactExtractor struct {
	rules []driven.DomainRule
	newID func() string
	now   func() time.Time
}

// ExtractorOption configures a FactExtractor.
type ExtractorOption func(*FactExtractor)

// WithIDGenerator replaces the uuid fact ID generator.
func WithIDGenerator(fn func() string) ExtractorOption {
	return func(e *FactExtractor) {
		e.newID = fn
	}
}

// WithClock sets the clock used to resolve relative dates.
func WithClock(fn func() time.Time) ExtractorOption {
	return func(e *FactExtractor) {
		e.now = fn
	}
}

// NewFactExtractor creates an extractor evaluating rules in order.
func NewFactExtractor(rules []driven.DomainRule, opts ...ExtractorOption) *FactExtractor {
	e := &FactExtractor{
		rules: rules,
		newID: uuid.NewString,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rules returns the names of the configured rules.
func (e *FactExtractor) Rules() []string {
	names := make([]string, len(e.rules))
	for i, r := range e.rules {
		names[i] = r.Name()
	}
	return names
}

// Extract returns the facts found in text. Empty or whitespace-only text
// yields an empty slice. Equivalent facts from one call are collapsed.
func (e *FactExtractor) Extract(text string) []domain.Fact {
	facts := []domain.Fact{}
	if strings.TrimSpace(text) == "" {
		return facts
	}

	now := e.now()
	for _, span := range windows(text) {
		w := driven.Window{Text: span, Normalised: textnorm.Normalise(span), Now: now}
		var found []domain.Fact
		for _, rule := range e.rules {
			if !rule.Detect(w) {
				continue
			}
			produced := rule.Extract(w)
			extractLog.Debug("rule %s produced %d fact(s) from %q", rule.Name(), len(produced), span)
			found = append(found, produced...)
		}
		for _, f := range reduce(found) {
			if containsEquivalent(facts, f) {
				continue
			}
			if f.SourceSpan == "" {
				f.SourceSpan = span
			}
			f.ID = e.newID()
			facts = append(facts, f)
		}
	}
	return facts
}

// reduce drops facts made redundant by a more specific one in the same
// window: topic tags of a domain that already has a fact, and general
// facts repeating a domain fact's predicate and object.
func reduce(found []domain.Fact) []domain.Fact {
	covered := make(map[string]bool)
	for _, f := range found {
		if f.Predicate != domain.PredicateTopic {
			covered[f.Domain] = true
		}
	}

	out := make([]domain.Fact, 0, len(found))
	for _, f := range found {
		if f.Predicate == domain.PredicateTopic && covered[f.Domain] {
			continue
		}
		if f.Domain == domain.GeneralDomain && repeatsSpecific(found, f) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func repeatsSpecific(found []domain.Fact, general domain.Fact) bool {
	for _, f := range found {
		if f.Domain != domain.GeneralDomain && f.Predicate == general.Predicate && f.Object == general.Object {
			return true
		}
	}
	return false
}

func containsEquivalent(facts []domain.Fact, f domain.Fact) bool {
	for _, existing := range facts {
		if existing.Equivalent(f) {
			return true
		}
	}
	return false
}

// windows splits text into trimmed, non-empty lines, sentences and
// ';' clauses. A '.' ends a sentence only before whitespace or the end,
// so "15.04.2024" and "85.000" stay intact.
func windows(text string) []string {
	var out []string
	start := 0
	emit := func(end int) {
		if s := strings.TrimSpace(text[start:end]); s != "" {
			out = append(out, s)
		}
	}
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n', ';', '!', '?':
			emit(i)
			start = i + 1
		case '.':
			if i+1 == len(text) || isSpace(text[i+1]) {
				emit(i)
				start = i + 1
			}
		}
	}
	emit(len(text))
	return out
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
