// Package reminder extracts general deadlines, payments and appointments
// ("platiti struju do 20.03.2024", "dentist tomorrow").
package reminder

import (
	"github.com/custodia-labs/sercha-notes/internal/core/domain"
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-notes/internal/parsers"
	"github.com/custodia-labs/sercha-notes/internal/textnorm"
)

// Name is the rule name used in configuration.
const Name = "reminder"

// Domain is the domain reported for reminders. More specific rules
// (registration) take precedence over it in the extractor.
const Domain = domain.GeneralDomain

// Subjects reported by the rule.
const (
	SubjectDeadline    = "deadline"
	SubjectPayment     = "payment"
	SubjectAppointment = "appointment"
)

// vocabulary lists subjects in precedence order.
var vocabulary = []struct {
	subject string
	words   []string
}{
	{SubjectPayment, []string{"platiti", "plati", "uplatiti", "uplata", "pay", "payment", "racun", "bill"}},
	{SubjectAppointment, []string{"termin", "zakazano", "zakazan", "pregled", "appointment", "sastanak", "meeting"}},
	{SubjectDeadline, []string{"rok", "do", "deadline", "due", "podsetnik", "reminder", "ne zaboravi", "remember"}},
}

// Ensure Rule implements the interface.
var _ driven.DomainRule = (*Rule)(nil)

// Rule detects dated reminders.
type Rule struct {
	subjects [][]string
	all      []string
}

// New creates the rule; extra keywords report the deadline subject.
func New(extra ...string) *Rule {
	r := &Rule{}
	for _, v := range vocabulary {
		words := v.words
		if v.subject == SubjectDeadline {
			words = append(append([]string{}, words...), extra...)
		}
		normalised := textnorm.NormaliseAll(words)
		r.subjects = append(r.subjects, normalised)
		r.all = append(r.all, normalised...)
	}
	return r
}

// Name returns the rule name.
func (r *Rule) Name() string {
	return Name
}

// Detect fires only when the window both mentions reminder vocabulary
// and carries a date; "do" and "due" are too common to stand alone.
func (r *Rule) Detect(w driven.Window) bool {
	if !textnorm.HasAnyWord(w.Normalised, r.all) {
		return false
	}
	_, ok := parsers.ParseDate(w.Normalised, w.Now)
	return ok
}

// Extract emits one due_on fact.
func (r *Rule) Extract(w driven.Window) []domain.Fact {
	fact := domain.Fact{
		Domain:     Domain,
		Subject:    r.subject(w.Normalised),
		Predicate:  domain.PredicateDueOn,
		Confidence: domain.ConfidenceKeyword,
	}
	if iso, ok := parsers.ParseDate(w.Normalised, w.Now); ok {
		if tr := domain.DateTrigger(iso, domain.CmpLessEqual); tr != nil {
			fact.Object = iso
			fact.Trigger = tr
			fact.Confidence = domain.ConfidenceStructured
		}
	}
	return []domain.Fact{fact}
}

func (r *Rule) subject(normalised string) string {
	for i, words := range r.subjects {
		if textnorm.HasAnyWord(normalised, words) {
			return vocabulary[i].subject
		}
	}
	return SubjectDeadline
}
