package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driven"
)

// registryMockRule is a simple rule for testing registry functionality.
type registryMockRule struct {
	name string
}

func (m *registryMockRule) Name() string                          { return m.name }
func (m *registryMockRule) Detect(_ driven.Window) bool           { return false }
func (m *registryMockRule) Extract(_ driven.Window) []domain.Fact { return nil }

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r)
	assert.Empty(t, r.Names())
}

func TestRegistry_Build(t *testing.T) {
	r := NewRegistry()
	r.Register("test", func(cfg map[string]any) (driven.DomainRule, error) {
		name := "default"
		if n, ok := cfg["name"].(string); ok {
			name = n
		}
		return &registryMockRule{name: name}, nil
	})

	t.Run("known rule", func(t *testing.T) {
		rule, err := r.Build("test", map[string]any{"name": "custom"})
		require.NoError(t, err)
		assert.Equal(t, "custom", rule.Name())
	})

	t.Run("unknown rule", func(t *testing.T) {
		_, err := r.Build("unknown", nil)
		assert.ErrorIs(t, err, domain.ErrUnsupportedType)
	})

	assert.True(t, r.Has("test"))
	assert.False(t, r.Has("unknown"))
}

func TestRegisterDefaults(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	assert.Equal(t, []string{"odometer", "oil_change", "registration", "reminder", "topic"}, r.Names())
	for _, name := range domain.DefaultRuleNames() {
		assert.True(t, r.Has(name), name)
	}
}

func TestRegistry_BuildAll(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	t.Run("keeps order and skips duplicates", func(t *testing.T) {
		built, err := r.BuildAll([]string{"topic", "oil_change", "topic"}, nil)
		require.NoError(t, err)
		require.Len(t, built, 2)
		assert.Equal(t, "topic", built[0].Name())
		assert.Equal(t, "oil_change", built[1].Name())
	})

	t.Run("passes per-rule config", func(t *testing.T) {
		cfgs := map[string]map[string]any{
			"oil_change": {"keywords": []any{"motorno"}},
			"topic":      {"garden": []any{"basta"}},
		}
		built, err := r.BuildAll([]string{"oil_change", "topic"}, cfgs)
		require.NoError(t, err)

		w := driven.Window{Normalised: "motorno basta"}
		assert.True(t, built[0].Detect(w))
		facts := built[1].Extract(w)
		require.Len(t, facts, 1)
		assert.Equal(t, "garden", facts[0].Object)
	})

	t.Run("unknown rule fails", func(t *testing.T) {
		_, err := r.BuildAll([]string{"oil_change", "weather"}, nil)
		assert.ErrorIs(t, err, domain.ErrUnsupportedType)
	})
}

func TestDefaults(t *testing.T) {
	built := Defaults()

	names := make([]string, len(built))
	for i, rule := range built {
		names[i] = rule.Name()
	}
	assert.Equal(t, domain.DefaultRuleNames(), names)
}

func TestGetStringSliceFromConfig(t *testing.T) {
	cfg := map[string]any{
		"strings": []string{"a", "b"},
		"anys":    []any{"c", 1, "d"},
		"single":  "e",
		"number":  3,
	}

	assert.Equal(t, []string{"a", "b"}, getStringSliceFromConfig(cfg, "strings"))
	assert.Equal(t, []string{"c", "d"}, getStringSliceFromConfig(cfg, "anys"))
	assert.Equal(t, []string{"e"}, getStringSliceFromConfig(cfg, "single"))
	assert.Nil(t, getStringSliceFromConfig(cfg, "number"))
	assert.Nil(t, getStringSliceFromConfig(cfg, "missing"))
	assert.Nil(t, getStringSliceFromConfig(nil, "missing"))
}
