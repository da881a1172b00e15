package rules

import (
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-notes/internal/rules/odometer"
	"github.com/custodia-labs/sercha-notes/internal/rules/oilchange"
	"github.com/custodia-labs/sercha-notes/internal/rules/registration"
	"github.com/custodia-labs/sercha-notes/internal/rules/reminder"
	"github.com/custodia-labs/sercha-notes/internal/rules/topic"
)

// RegisterDefaults registers all built-in rules with the registry.
func RegisterDefaults(r *Registry) {
	r.Register(oilchange.Name, buildOilChange)
	r.Register(registration.Name, buildRegistration)
	r.Register(reminder.Name, buildReminder)
	r.Register(odometer.Name, buildOdometer)
	r.Register(topic.Name, buildTopic)
}

// Defaults builds every built-in rule with default vocabulary, in the
// default evaluation order.
func Defaults() []driven.DomainRule {
	return []driven.DomainRule{
		oilchange.New(),
		registration.New(),
		reminder.New(),
		odometer.New(),
		topic.New(),
	}
}

// Supported config keys for keyword rules:
//   - keywords ([]string): extra trigger words added to the built-in set
func buildOilChange(cfg map[string]any) (driven.DomainRule, error) {
	return oilchange.New(getStringSliceFromConfig(cfg, "keywords")...), nil
}

func buildRegistration(cfg map[string]any) (driven.DomainRule, error) {
	return registration.New(getStringSliceFromConfig(cfg, "keywords")...), nil
}

func buildReminder(cfg map[string]any) (driven.DomainRule, error) {
	return reminder.New(getStringSliceFromConfig(cfg, "keywords")...), nil
}

func buildOdometer(cfg map[string]any) (driven.DomainRule, error) {
	return odometer.New(getStringSliceFromConfig(cfg, "keywords")...), nil
}

// buildTopic accepts one key per topic, each a list of extra words,
// e.g. garden = ["basta", "garden"]. Unknown topics are added.
func buildTopic(cfg map[string]any) (driven.DomainRule, error) {
	var opts []topic.Option
	for name := range cfg {
		if words := getStringSliceFromConfig(cfg, name); len(words) > 0 {
			opts = append(opts, topic.WithTopic(name, words...))
		}
	}
	return topic.New(opts...), nil
}

// getStringSliceFromConfig safely extracts a string slice from generic
// config. TOML arrays arrive as []any.
func getStringSliceFromConfig(cfg map[string]any, key string) []string {
	val, ok := cfg[key]
	if !ok {
		return nil
	}

	switch v := val.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return []string{v}
	default:
		return nil
	}
}
