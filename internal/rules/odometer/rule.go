// Package odometer records odometer readings ("kilometraza 85000").
package odometer

import (
	"fmt"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-notes/internal/parsers"
	"github.com/custodia-labs/sercha-notes/internal/textnorm"
)

// Name is the rule name used in configuration.
const Name = "odometer"

// DefaultKeywords is the built-in odometer vocabulary.
var DefaultKeywords = []string{
	"kilometraza", "kilometrazu", "kilometraze", "odometar", "odometer",
	"mileage", "presao", "presla", "predjeno", "predjenih",
}

// Ensure Rule implements the interface.
var _ driven.DomainRule = (*Rule)(nil)

// Rule detects odometer readings.
type Rule struct {
	keywords []string
}

// New creates the rule; extra keywords extend the built-in set.
func New(extra ...string) *Rule {
	words := append(append([]string{}, DefaultKeywords...), extra...)
	return &Rule{keywords: textnorm.NormaliseAll(words)}
}

// Name returns the rule name.
func (r *Rule) Name() string {
	return Name
}

// Detect reports whether the window mentions a reading.
func (r *Rule) Detect(w driven.Window) bool {
	return textnorm.HasAnyWord(w.Normalised, r.keywords)
}

// Extract emits one number fact with the reading, if one parses.
func (r *Rule) Extract(w driven.Window) []domain.Fact {
	fact := domain.Fact{
		Domain:     "car",
		Subject:    "odometer",
		Predicate:  domain.PredicateNumber,
		Confidence: domain.ConfidenceKeyword,
	}

	at, _ := textnorm.FirstWord(w.Normalised, r.keywords)
	if q, ok := parsers.ParseMileage(w.Normalised[max(at, 0):]); ok {
		fact.Object = fmt.Sprintf("%d %s", q.Value, q.Unit)
		fact.Trigger = domain.MileageTrigger(q.Value, string(q.Unit), domain.CmpEqual)
		fact.Confidence = domain.ConfidenceStructured
	}
	return []domain.Fact{fact}
}
