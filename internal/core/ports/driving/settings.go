package driving

import "github.com/custodia-labs/sercha-notes/internal/core/domain"

// SettingsService reads and updates application settings.
type SettingsService interface {
	// Get returns the effective settings (defaults merged with config).
	Get() (domain.Settings, error)

	// Set validates and persists a single dot-notation key.
	Set(key, value string) error

	// Keys lists the supported configuration keys.
	Keys() []string
}
