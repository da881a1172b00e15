package normalisers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	var exts []string
	for _, n := range Defaults() {
		exts = append(exts, n.SupportedExtensions()...)
	}

	assert.ElementsMatch(t, []string{".txt", ".md", ".markdown"}, exts)
}
