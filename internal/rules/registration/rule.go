// Package registration extracts vehicle registration, inspection and
// insurance due dates ("registracija do 15.04.2024").
package registration

import (
	"github.com/custodia-labs/sercha-notes/internal/core/domain"
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-notes/internal/parsers"
	"github.com/custodia-labs/sercha-notes/internal/textnorm"
)

// Name is the rule name used in configuration.
const Name = "registration"

// Subjects reported by the rule.
const (
	SubjectRegistration = "registration"
	SubjectInsurance    = "insurance"
)

// DefaultKeywords maps trigger words to the subject they report.
var DefaultKeywords = map[string]string{
	"registracija": SubjectRegistration,
	"registraciju": SubjectRegistration,
	"registracije": SubjectRegistration,
	"registrovati": SubjectRegistration,
	"tehnicki":     SubjectRegistration,
	"tehnički":     SubjectRegistration,
	"registration": SubjectRegistration,
	"inspection":   SubjectRegistration,
	"osiguranje":   SubjectInsurance,
	"osiguranja":   SubjectInsurance,
	"insurance":    SubjectInsurance,
	"kasko":        SubjectInsurance,
}

// Ensure Rule implements the interface.
var _ driven.DomainRule = (*Rule)(nil)

// Rule detects registration and insurance deadlines.
type Rule struct {
	subjects map[string]string
	keywords []string
}

// New creates the rule; extra keywords report the registration subject.
func New(extra ...string) *Rule {
	r := &Rule{subjects: make(map[string]string)}
	for word, subject := range DefaultKeywords {
		r.subjects[textnorm.Normalise(word)] = subject
	}
	for _, word := range textnorm.NormaliseAll(extra) {
		r.subjects[word] = SubjectRegistration
	}
	r.keywords = make([]string, 0, len(r.subjects))
	for word := range r.subjects {
		r.keywords = append(r.keywords, word)
	}
	return r
}

// Name returns the rule name.
func (r *Rule) Name() string {
	return Name
}

// Detect reports whether the window mentions registration or insurance.
func (r *Rule) Detect(w driven.Window) bool {
	return textnorm.HasAnyWord(w.Normalised, r.keywords)
}

// Extract emits one due_on fact for the earliest mentioned subject.
func (r *Rule) Extract(w driven.Window) []domain.Fact {
	fact := domain.Fact{
		Domain:     "car",
		Subject:    r.subjectAt(w.Normalised),
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

// subjectAt returns the subject of the earliest keyword; ties (one
// keyword containing another at the same offset) prefer the longer word.
func (r *Rule) subjectAt(normalised string) string {
	best, bestAt := "", -1
	for _, word := range r.keywords {
		at := textnorm.IndexWord(normalised, word)
		if at < 0 {
			continue
		}
		if bestAt < 0 || at < bestAt || (at == bestAt && len(word) > len(best)) {
			best, bestAt = word, at
		}
	}
	if best == "" {
		return SubjectRegistration
	}
	return r.subjects[best]
}
