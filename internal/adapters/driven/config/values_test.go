package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsString(t *testing.T) {
	assert.Equal(t, "sr", AsString("sr"))
	assert.Empty(t, AsString(42))
	assert.Empty(t, AsString(nil))
}

func TestAsInt(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		want   int
		wantOK bool
	}{
		{"int", 5, 5, true},
		{"toml int64", int64(7), 7, true},
		{"whole float", 3.0, 3, true},
		{"fractional float", 2.5, 0, false},
		{"string", "5", 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsInt(tt.value)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAsFloat(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		want   float64
		wantOK bool
	}{
		{"float", 1.5, 1.5, true},
		{"toml int64", int64(2), 2, true},
		{"int", 3, 3, true},
		{"bool", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsFloat(tt.value)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestAsStringSlice(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, AsStringSlice([]string{"a", "b"}))
	assert.Equal(t, []string{"topic", "reminder"}, AsStringSlice([]any{"topic", 1, "reminder"}))
	assert.Nil(t, AsStringSlice("topic"))
}

func TestSection(t *testing.T) {
	values := map[string]any{
		"rules.topic.garden":  []string{"basta"},
		"rules.topic.pets":    []string{"pas"},
		"rules.topical":       "x",
		"rules.topic":         "scalar",
		"assistant.locale":    "sr",
		"rules.reminder.word": "rok",
	}

	assert.Equal(t, map[string]any{
		"garden": []string{"basta"},
		"pets":   []string{"pas"},
	}, Section(values, "rules.topic"))
	assert.Empty(t, Section(values, "storage"))
}
