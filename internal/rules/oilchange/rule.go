// Package oilchange extracts the next oil change mileage from notes
// such as "sledeca zamena ulja na 100000km" or "next oil change at 90k".
package oilchange

import (
	"fmt"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-notes/internal/parsers"
	"github.com/custodia-labs/sercha-notes/internal/textnorm"
)

// Name is the rule name used in configuration.
const Name = "oil_change"

// DefaultKeywords is the built-in oil change vocabulary.
var DefaultKeywords = []string{"ulje", "ulja", "ulju", "uljem", "oil", "oil change"}

// Ensure Rule implements the interface.
var _ driven.DomainRule = (*Rule)(nil)

// Rule detects oil change notes and parses the next-due mileage.
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

// Detect reports whether the window mentions an oil change.
func (r *Rule) Detect(w driven.Window) bool {
	return textnorm.HasAnyWord(w.Normalised, r.keywords)
}

// Extract emits one next_due fact. The mileage is searched after the
// keyword first so an odometer reading earlier in the sentence is not
// mistaken for the threshold.
func (r *Rule) Extract(w driven.Window) []domain.Fact {
	fact := domain.Fact{
		Domain:     "car",
		Subject:    "oil_change",
		Predicate:  domain.PredicateNextDue,
		Confidence: domain.ConfidenceKeyword,
	}

	at, _ := textnorm.FirstWord(w.Normalised, r.keywords)
	q, ok := parsers.ParseMileage(w.Normalised[max(at, 0):])
	if !ok {
		q, ok = parsers.ParseMileage(w.Normalised)
	}
	if ok {
		fact.Object = fmt.Sprintf("%d %s", q.Value, q.Unit)
		fact.Trigger = domain.MileageTrigger(q.Value, string(q.Unit), domain.CmpGreaterEqual)
		fact.Confidence = domain.ConfidenceStructured
	}
	return []domain.Fact{fact}
}
