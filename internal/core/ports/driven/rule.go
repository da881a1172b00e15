package driven

import (
	"time"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
)

// Window is the unit of text a DomainRule inspects: one line or sentence
// of a note body.
type Window struct {
	// Text is the original window, used as the fact's SourceSpan.
	Text string

	// Normalised is Text after textnorm.Normalise.
	Normalised string

	// Now resolves relative dates ("sutra", "tomorrow").
	Now time.Time
}

// DomainRule is a keyword-triggered extraction rule scoped to one subject
// area. New domains are added by registering another rule; the
// extractor's scan loop never changes.
type DomainRule interface {
	// Name returns the rule name used in configuration.
	Name() string

	// Detect reports whether the window contains the rule's vocabulary.
	Detect(w Window) bool

	// Extract returns the facts for a detected window. The extractor
	// assigns IDs and fills SourceSpan when the rule leaves it empty.
	Extract(w Window) []domain.Fact
}
