package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyTitleExact  = "scoring.title_exact"
	keyTextExact   = "scoring.text_exact"
	keyKeyword     = "scoring.keyword"
	keyFact        = "scoring.fact"
	keyLocale      = "assistant.locale"
	keyMaxMatches  = "assistant.max_matches"
	keyNoMatch     = "assistant.no_match"
	keyRules       = "extraction.rules"
	keyBackend     = "storage.backend"
	keyDataDir     = "storage.data_dir"
	ruleKeyPrefix  = "rules."
	ruleKeyExample = "rules.<rule>.<option>"
)

// SettingsService reads typed settings from a ConfigStore.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns the defaults overlaid with configured values.
// Configured values that fail validation return domain.ErrInvalidInput.
func (s *SettingsService) Get() (domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := domain.Settings{
		Scoring: domain.ScoringWeights{
			TitleExact: s.getFloat(keyTitleExact, defaults.Scoring.TitleExact),
			TextExact:  s.getFloat(keyTextExact, defaults.Scoring.TextExact),
			Keyword:    s.getFloat(keyKeyword, defaults.Scoring.Keyword),
			Fact:       s.getFloat(keyFact, defaults.Scoring.Fact),
		},
		Assistant: domain.AssistantSettings{
			Locale:     domain.Locale(s.getString(keyLocale, defaults.Assistant.Locale.String())),
			MaxMatches: s.getInt(keyMaxMatches, defaults.Assistant.MaxMatches),
			NoMatch:    s.configStore.GetString(keyNoMatch),
		},
		Extraction: domain.ExtractionSettings{
			Rules: s.getStringSlice(keyRules, defaults.Extraction.Rules),
		},
		Storage: domain.StorageSettings{
			Backend: domain.StorageBackend(s.getString(keyBackend, defaults.Storage.Backend.String())),
			DataDir: s.configStore.GetString(keyDataDir),
		},
	}

	for _, name := range settings.Extraction.Rules {
		if section := s.configStore.Section(ruleKeyPrefix + name); len(section) > 0 {
			if settings.Extraction.RuleConfig == nil {
				settings.Extraction.RuleConfig = make(map[string]map[string]any)
			}
			settings.Extraction.RuleConfig[name] = section
		}
	}

	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("config %s: %w", s.configStore.Path(), err)
	}
	return settings, nil
}

// Set parses value for key, checks the resulting settings and persists it.
// List values (extraction.rules, rule options) are comma-separated.
func (s *SettingsService) Set(key, value string) error {
	// An invalid stored value must stay fixable, so the error is
	// deferred to the validation of the updated settings below.
	current, _ := s.Get()

	value = strings.TrimSpace(value)
	var stored any
	switch key {
	case keyTitleExact, keyTextExact, keyKeyword, keyFact:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%w: %s must be a number", domain.ErrInvalidInput, key)
		}
		applyWeight(&current.Scoring, key, f)
		stored = f
	case keyLocale:
		current.Assistant.Locale = domain.Locale(value)
		stored = value
	case keyMaxMatches:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidInput, key)
		}
		current.Assistant.MaxMatches = n
		stored = n
	case keyNoMatch, keyDataDir:
		stored = value
	case keyRules:
		rules := splitList(value)
		if len(rules) == 0 {
			return fmt.Errorf("%w: %s needs at least one rule", domain.ErrInvalidInput, key)
		}
		stored = rules
	case keyBackend:
		current.Storage.Backend = domain.StorageBackend(value)
		stored = value
	default:
		if !strings.HasPrefix(key, ruleKeyPrefix) || strings.Count(key, ".") < 2 {
			return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
		}
		stored = splitList(value)
	}

	if err := current.Validate(); err != nil {
		return err
	}
	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys lists the supported configuration keys, sorted.
func (s *SettingsService) Keys() []string {
	keys := []string{
		keyTitleExact, keyTextExact, keyKeyword, keyFact,
		keyLocale, keyMaxMatches, keyNoMatch,
		keyRules, keyBackend, keyDataDir, ruleKeyExample,
	}
	sort.Strings(keys)
	return keys
}

func applyWeight(w *domain.ScoringWeights, key string, v float64) {
	switch key {
	case keyTitleExact:
		w.TitleExact = v
	case keyTextExact:
		w.TextExact = v
	case keyKeyword:
		w.Keyword = v
	case keyFact:
		w.Fact = v
	}
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if val, ok := s.configStore.GetFloat(key); ok {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	if val := s.configStore.GetStringSlice(key); len(val) > 0 {
		return val
	}
	return defaultVal
}
