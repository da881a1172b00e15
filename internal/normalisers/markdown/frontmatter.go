package markdown

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
)

// frontMatter is the YAML header some note apps write above the body.
// Unknown keys are ignored.
type frontMatter struct {
	Title   string   `yaml:"title"`
	Type    string   `yaml:"type"`
	Tags    yamlList `yaml:"tags"`
	Date    yamlDate `yaml:"date"`
	Created yamlDate `yaml:"created"`
}

// yamlList accepts both "tags: [a, b]" and "tags: a".
type yamlList []string

func (l *yamlList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		if v := strings.TrimSpace(node.Value); v != "" {
			*l = yamlList{v}
		}
		return nil
	}
	var items []string
	if err := node.Decode(&items); err != nil {
		return err
	}
	*l = items
	return nil
}

// yamlDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates.
// Other values are ignored.
type yamlDate struct {
	time.Time
}

func (d *yamlDate) UnmarshalYAML(node *yaml.Node) error {
	value := strings.TrimSpace(node.Value)
	if value == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, domain.DateLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return nil
}

// splitFrontMatter separates a leading "---" delimited YAML block from
// the body. Content without one is returned unchanged.
func splitFrontMatter(content []byte) (*frontMatter, []byte, error) {
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(content, []byte("---\n")) {
		return nil, content, nil
	}

	rest := content[len("---\n"):]
	var header, body []byte
	switch {
	case bytes.HasPrefix(rest, []byte("---\n")):
		body = rest[len("---\n"):]
	default:
		end := bytes.Index(rest, []byte("\n---\n"))
		if end < 0 {
			if !bytes.HasSuffix(rest, []byte("\n---")) {
				return nil, nil, fmt.Errorf("%w: front matter has no closing delimiter", domain.ErrInvalidInput)
			}
			end = len(rest) - len("\n---")
			header, body = rest[:end], nil
		} else {
			header, body = rest[:end], rest[end+len("\n---\n"):]
		}
	}

	fm := &frontMatter{}
	if err := yaml.Unmarshal(header, fm); err != nil {
		return nil, nil, fmt.Errorf("%w: front matter: %v", domain.ErrInvalidInput, err)
	}
	return fm, body, nil
}
