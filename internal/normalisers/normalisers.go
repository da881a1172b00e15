// Package normalisers converts note files into plain note text. Each
// normaliser knows how to read one family of file extensions.
package normalisers

import (
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-notes/internal/normalisers/markdown"
	"github.com/custodia-labs/sercha-notes/internal/normalisers/plaintext"
)

// Defaults returns the built-in normalisers.
func Defaults() []driven.Normaliser {
	return []driven.Normaliser{
		plaintext.New(),
		markdown.New(),
	}
}
