package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
)

func TestSettingsShow_Defaults(t *testing.T) {
	setupTestServices(t)

	out := mustRun(t, "settings", "show")

	assert.Contains(t, out, "[Scoring]")
	assert.Contains(t, out, "Title exact: 10")
	assert.Contains(t, out, "Locale: English")
	assert.Contains(t, out, "Max matches: unlimited")
	assert.Contains(t, out, "Rules: oil_change, registration, reminder, odometer, topic")
	assert.Contains(t, out, "Backend: sqlite")
}

func TestSettingsSet(t *testing.T) {
	svc := setupTestServices(t)

	out := mustRun(t, "settings", "set", "assistant.locale", "sr")
	assert.Contains(t, out, "Set assistant.locale = sr")

	mustRun(t, "settings", "set", "rules.topic.garden", "basta,zalivanje")

	settings, err := svc.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.LocaleSerbian, settings.Assistant.Locale)

	out = mustRun(t, "settings")
	assert.Contains(t, out, "Locale: Serbian (latin)")
	assert.Contains(t, out, "topic.garden: [basta zalivanje]")
}

func TestSettingsSet_Invalid(t *testing.T) {
	setupTestServices(t)

	_, err := runCommand(t, "settings", "set", "assistant.locale", "de")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = runCommand(t, "settings", "set", "nope", "1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = runCommand(t, "settings", "set", "assistant.locale")
	assert.Error(t, err)
}

func TestSettingsKeys(t *testing.T) {
	setupTestServices(t)

	out := mustRun(t, "settings", "keys")

	assert.Contains(t, out, "assistant.locale")
	assert.Contains(t, out, "rules.<rule>.<option>")
}
