// Package topic tags notes with subject areas (car, health, shopping,
// finance, work) based on keyword vocabularies.
package topic

import (
	"sort"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-notes/internal/textnorm"
)

// Name is the rule name used in configuration.
const Name = "topic"

// Subject is the subject of every topic fact.
const Subject = "note"

// DefaultTopics is the built-in vocabulary per topic.
var DefaultTopics = map[string][]string{
	"car": {
		"auto", "automobil", "kola", "car", "vehicle", "gume", "guma", "tires", "tyres",
		"motor", "engine", "ulje", "ulja", "oil", "registracija", "registration",
		"benzin", "gorivo", "fuel", "servis",
	},
	"health": {
		"doktor", "lekar", "doctor", "dentist", "zubar", "pregled", "lek", "lekovi",
		"medicine", "pills", "apoteka", "pharmacy", "bolnica", "hospital",
	},
	"shopping": {
		"kupiti", "kupi", "buy", "prodavnica", "market", "mleko", "milk", "hleb",
		"bread", "groceries", "namirnice", "shopping",
	},
	"finance": {
		"racun", "racuni", "bill", "bills", "platiti", "plati", "pay", "banka", "bank",
		"kirija", "rent", "porez", "tax", "plata", "salary",
	},
	"work": {
		"posao", "work", "sastanak", "meeting", "projekat", "project", "klijent",
		"client", "izvestaj", "report",
	},
}

// Option configures the rule.
type Option func(*Rule)

// WithTopic adds words to a topic, creating it if needed.
func WithTopic(name string, words ...string) Option {
	return func(r *Rule) {
		r.vocab[name] = append(r.vocab[name], textnorm.NormaliseAll(words)...)
	}
}

// Ensure Rule implements the interface.
var _ driven.DomainRule = (*Rule)(nil)

// Rule emits one keyword-only topic fact per matching topic.
type Rule struct {
	vocab  map[string][]string
	topics []string
}

// New creates the rule with the default vocabulary plus options.
func New(opts ...Option) *Rule {
	r := &Rule{vocab: make(map[string][]string, len(DefaultTopics))}
	for name, words := range DefaultTopics {
		r.vocab[name] = textnorm.NormaliseAll(words)
	}
	for _, opt := range opts {
		opt(r)
	}
	for name := range r.vocab {
		r.topics = append(r.topics, name)
	}
	sort.Strings(r.topics)
	return r
}

// Name returns the rule name.
func (r *Rule) Name() string {
	return Name
}

// Topics returns the known topic names, sorted.
func (r *Rule) Topics() []string {
	return append([]string(nil), r.topics...)
}

// Detect reports whether any topic vocabulary occurs in the window.
func (r *Rule) Detect(w driven.Window) bool {
	for _, name := range r.topics {
		if textnorm.HasAnyWord(w.Normalised, r.vocab[name]) {
			return true
		}
	}
	return false
}

// Extract emits a topic fact for every matching topic, in name order.
func (r *Rule) Extract(w driven.Window) []domain.Fact {
	var facts []domain.Fact
	for _, name := range r.topics {
		if !textnorm.HasAnyWord(w.Normalised, r.vocab[name]) {
			continue
		}
		facts = append(facts, domain.Fact{
			Domain:     name,
			Subject:    Subject,
			Predicate:  domain.PredicateTopic,
			Object:     name,
			Confidence: domain.ConfidenceKeyword,
		})
	}
	return facts
}
