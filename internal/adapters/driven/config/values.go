// Package config holds the value conversions shared by ConfigStore
// adapters. Stores keep values flattened to dot-notation keys; the
// helpers here read them back as the types settings need.
//
// Subpackages:
//   - file: TOML-backed ConfigStore (go-toml/v2)
package config

import (
	"math"
	"strings"
)

// AsString returns v if it is a string.
func AsString(v any) string {
	s, _ := v.(string)
	return s
}

// AsInt converts integer values, and floats without a fractional part.
// TOML integers decode as int64.
func AsInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
	}
	return 0, false
}

// AsFloat converts any numeric value, so "keyword = 2" and
// "keyword = 2.0" read the same.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

// AsStringSlice converts []string, or the []any TOML arrays decode to.
// Non-string items are dropped.
func AsStringSlice(v any) []string {
	switch items := v.(type) {
	case []string:
		return items
	case []any:
		result := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				result = append(result, s)
			}
		}
		return result
	}
	return nil
}

// Section returns the values under prefix with the prefix removed,
// e.g. Section(v, "rules.topic") maps "garden" to rules.topic.garden.
func Section(values map[string]any, prefix string) map[string]any {
	section := make(map[string]any)
	for key, val := range values {
		if rest, ok := strings.CutPrefix(key, prefix+"."); ok && rest != "" {
			section[rest] = val
		}
	}
	return section
}
