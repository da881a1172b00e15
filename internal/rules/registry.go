// Package rules provides the domain rule registry used by the fact
// extractor. Each built-in rule lives in its own subpackage; rules are
// built by name so configuration can enable, reorder or extend them.
package rules

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driven"
)

// BuilderFunc creates a DomainRule from generic config.
// Config is a map of rule-specific settings parsed from user config.
type BuilderFunc func(cfg map[string]any) (driven.DomainRule, error)

// Registry maps rule names to their builders.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new, empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a rule builder to the registry.
// Name should be unique and match the rule's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates a rule by name with the given config.
func (r *Registry) Build(name string, cfg map[string]any) (driven.DomainRule, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown rule %q", domain.ErrUnsupportedType, name)
	}
	return builder(cfg)
}

// BuildAll creates the named rules in order. cfgs holds optional
// per-rule config keyed by rule name.
func (r *Registry) BuildAll(names []string, cfgs map[string]map[string]any) ([]driven.DomainRule, error) {
	built := make([]driven.DomainRule, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		rule, err := r.Build(name, cfgs[name])
		if err != nil {
			return nil, fmt.Errorf("building rule %s: %w", name, err)
		}
		built = append(built, rule)
	}
	return built, nil
}

// Has returns true if a rule with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered rule names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
