package domain

import "fmt"

const unknownDescription = "Unknown"

// Locale selects the message bundle used for synthesised answers.
type Locale string

// Available locales.
const (
	// LocaleEnglish is the default bundle.
	LocaleEnglish Locale = "en"

	// LocaleSerbian is the Serbian (latin) bundle.
	LocaleSerbian Locale = "sr"
)

// IsValid returns true if the locale is recognised.
func (l Locale) IsValid() bool {
	return l == LocaleEnglish || l == LocaleSerbian
}

// String returns the string representation.
func (l Locale) String() string {
	return string(l)
}

// Description returns a human-readable description of the locale.
func (l Locale) Description() string {
	switch l {
	case LocaleEnglish:
		return "English"
	case LocaleSerbian:
		return "Serbian (latin)"
	default:
		return unknownDescription
	}
}

// StorageBackend selects the note store implementation.
type StorageBackend string

// Available storage backends.
const (
	// StorageSQLite persists notes to a local SQLite database.
	StorageSQLite StorageBackend = "sqlite"

	// StorageMemory keeps notes for the lifetime of the process only.
	StorageMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	return b == StorageSQLite || b == StorageMemory
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// ScoringWeights holds the per-signal weights of the relevance scorer.
// Only the relative ordering is a contract: exact match outweighs
// keyword overlap, which outweighs fact correlation.
type ScoringWeights struct {
	// TitleExact is added when the whole query occurs in the title.
	TitleExact float64

	// TextExact is added when the whole query occurs in the text.
	TextExact float64

	// Keyword is added per shared query keyword.
	Keyword float64

	// Fact is added per correlated fact signal.
	Fact float64
}

// DefaultScoringWeights returns the built-in weights.
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		TitleExact: 10,
		TextExact:  8,
		Keyword:    2,
		Fact:       1.5,
	}
}

// Validate checks the weights are non-negative and correctly ordered.
func (w ScoringWeights) Validate() error {
	if w.TitleExact < 0 || w.TextExact < 0 || w.Keyword < 0 || w.Fact < 0 {
		return fmt.Errorf("%w: scoring weights must be non-negative", ErrInvalidInput)
	}
	if w.TextExact < w.Keyword || w.Keyword < w.Fact {
		return fmt.Errorf("%w: scoring weights must keep exact >= keyword >= fact", ErrInvalidInput)
	}
	return nil
}

// AssistantSettings holds answer synthesis configuration.
type AssistantSettings struct {
	// Locale selects the message bundle.
	Locale Locale

	// MaxMatches caps returned matches; 0 means unlimited.
	MaxMatches int

	// NoMatch overrides the bundle's no-match answer when non-empty.
	NoMatch string
}

// ExtractionSettings holds fact extraction configuration.
type ExtractionSettings struct {
	// Rules lists enabled domain rules by name, in evaluation order.
	Rules []string

	// RuleConfig holds optional per-rule options keyed by rule name,
	// e.g. extra keywords.
	RuleConfig map[string]map[string]any
}

// StorageSettings holds note store configuration.
type StorageSettings struct {
	// Backend selects the store implementation.
	Backend StorageBackend

	// DataDir overrides the default data directory.
	DataDir string
}

// Settings is the complete application configuration.
type Settings struct {
	Scoring    ScoringWeights
	Assistant  AssistantSettings
	Extraction ExtractionSettings
	Storage    StorageSettings
}

// DefaultRuleNames lists the built-in domain rules in evaluation order.
func DefaultRuleNames() []string {
	return []string{"oil_change", "registration", "reminder", "odometer", "topic"}
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		Scoring: DefaultScoringWeights(),
		Assistant: AssistantSettings{
			Locale: LocaleEnglish,
		},
		Extraction: ExtractionSettings{
			Rules: DefaultRuleNames(),
		},
		Storage: StorageSettings{
			Backend: StorageSQLite,
		},
	}
}

// Validate checks the settings are usable.
func (s Settings) Validate() error {
	if err := s.Scoring.Validate(); err != nil {
		return err
	}
	if !s.Assistant.Locale.IsValid() {
		return fmt.Errorf("%w: unknown locale %q", ErrInvalidInput, s.Assistant.Locale)
	}
	if s.Assistant.MaxMatches < 0 {
		return fmt.Errorf("%w: max matches must be non-negative", ErrInvalidInput)
	}
	if !s.Storage.Backend.IsValid() {
		return fmt.Errorf("%w: unknown storage backend %q", ErrInvalidInput, s.Storage.Backend)
	}
	return nil
}
