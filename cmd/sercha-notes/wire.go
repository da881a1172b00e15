package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/custodia-labs/sercha-notes/internal/adapters/driven/config/file"
	"github.com/custodia-labs/sercha-notes/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sercha-notes/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/sercha-notes/internal/adapters/driving/cli"
	"github.com/custodia-labs/sercha-notes/internal/connectors/filesystem"
	"github.com/custodia-labs/sercha-notes/internal/core/domain"
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-notes/internal/core/services"
	"github.com/custodia-labs/sercha-notes/internal/logger"
	"github.com/custodia-labs/sercha-notes/internal/rules"
)

// bootstrap builds the application services from the configuration
// directory. The returned cleanup closes the note store.
func bootstrap(opts cli.Options) (*cli.Services, func() error, error) {
	configDir := opts.ConfigDir
	if configDir == "" {
		dir, err := file.DefaultDir()
		if err != nil {
			return nil, nil, fmt.Errorf("resolving config dir: %w", err)
		}
		configDir = dir
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		// Settings stay editable so a broken value can be repaired.
		logger.Warn("Invalid settings, using defaults: %v", err)
		settings = domain.DefaultSettings()
	}

	registry := rules.NewRegistry()
	rules.RegisterDefaults(registry)
	enabled, err := registry.BuildAll(settings.Extraction.Rules, settings.Extraction.RuleConfig)
	if err != nil {
		logger.Warn("Invalid extraction rules, using defaults: %v", err)
		enabled = rules.Defaults()
	}
	logger.Debug("Enabled rules: %v", settings.Extraction.Rules)

	assistantAt := func(now time.Time) driving.AssistantService {
		return newAssistant(settings, enabled, services.WithClock(func() time.Time { return now }))
	}
	assistant := newAssistant(settings, enabled)

	store, closeStore, err := openNoteStore(settings.Storage, configDir)
	if err != nil {
		return nil, nil, err
	}
	notes := services.NewNoteService(store, assistant)

	svc := &cli.Services{
		Assistant:   assistant,
		AssistantAt: assistantAt,
		Notes:       notes,
		Settings:    settingsService,
		Watcher: func(dir string, exclude []string) (driving.WatchService, func() error) {
			source := filesystem.New(dir, filesystem.WithExclude(exclude...))
			return services.NewWatchService(source, notes), source.Close
		},
	}
	return svc, closeStore, nil
}

func newAssistant(settings domain.Settings, enabled []driven.DomainRule, opts ...services.ExtractorOption) *services.Assistant {
	return services.NewAssistant(
		services.NewFactExtractor(enabled, opts...),
		services.NewScorer(settings.Scoring),
		services.NewSynthesiser(settings.Assistant.Locale, settings.Assistant.NoMatch),
		settings.Assistant.MaxMatches,
	)
}

// openNoteStore opens the configured backend. The sqlite database lives
// in the data dir, which defaults to <configDir>/data.
func openNoteStore(cfg domain.StorageSettings, configDir string) (driven.NoteStore, func() error, error) {
	if cfg.Backend == domain.StorageMemory {
		logger.Debug("Using in-memory note store")
		return memory.NewNoteStore(), func() error { return nil }, nil
	}

	dataDir := cfg.DataDir
	if dataDir == "" {
		dataDir = filepath.Join(configDir, "data")
	}
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening note store: %w", err)
	}
	logger.Debug("Using sqlite note store at %s", store.Path())
	return store.NoteStore(), store.Close, nil
}
