package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-notes/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sercha-notes/internal/connectors/filesystem"
	"github.com/custodia-labs/sercha-notes/internal/core/domain"
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-notes/internal/core/services"
	"github.com/custodia-labs/sercha-notes/internal/rules"
)

var testNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestAssistant(now time.Time) *services.Assistant {
	extractor := services.NewFactExtractor(rules.Defaults(),
		services.WithClock(func() time.Time { return now }))
	return services.NewAssistant(extractor,
		services.NewScorer(domain.DefaultScoringWeights()),
		services.NewSynthesiser(domain.LocaleEnglish, ""), 0)
}

// setupTestServices installs memory-backed services for the duration
// of the test.
func setupTestServices(t *testing.T) *Services {
	t.Helper()

	assistant := newTestAssistant(testNow)
	notes := services.NewNoteService(memory.NewNoteStore(), assistant)
	svc := &Services{
		Assistant: assistant,
		AssistantAt: func(now time.Time) driving.AssistantService {
			return newTestAssistant(now)
		},
		Notes:    notes,
		Settings: services.NewSettingsService(memory.NewConfigStore()),
		Watcher: func(dir string, exclude []string) (driving.WatchService, func() error) {
			source := filesystem.New(dir, filesystem.WithExclude(exclude...))
			return services.NewWatchService(source, notes), source.Close
		},
	}

	old := active
	active = svc
	t.Cleanup(func() { active = old })
	return svc
}

// runCommand executes the root command with args and returns its output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		resetFlags()
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := runCommand(t, args...)
	require.NoError(t, err, out)
	return out
}

// resetFlags restores flag variables, which outlive a single Execute.
func resetFlags() {
	askLimit, askJSON = 5, false
	extractJSON, extractNow = false, ""
	noteTitle, noteType, noteTags = "", string(domain.NoteTypeText), nil
	noteListJSON, noteShowJSON = false, false
	versionShort = false
	importExclude, watchExclude = nil, nil
}
