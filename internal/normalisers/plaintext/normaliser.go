package plaintext

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles plain text notes, such as transcripts written by
// a speech-to-text or OCR pipeline.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedExtensions returns the extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{".txt"}
}

// Normalise returns the content unchanged apart from a leading byte
// order mark and surrounding whitespace. Content that is not UTF-8
// is rejected.
func (n *Normaliser) Normalise(path string, content []byte) (*driven.NormaliseResult, error) {
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: %s is not UTF-8 text", domain.ErrInvalidInput, filepath.Base(path))
	}

	text := strings.TrimPrefix(string(content), "\ufeff")
	return &driven.NormaliseResult{
		Title: TitleFromPath(path),
		Text:  strings.TrimSpace(text),
	}, nil
}

// TitleFromPath derives a human-readable title from a file name.
func TitleFromPath(path string) string {
	// Get filename from path
	filename := filepath.Base(path)

	// Remove extension for cleaner title
	filename = strings.TrimSuffix(filename, filepath.Ext(filename))

	// Replace underscores and dashes with spaces
	filename = strings.ReplaceAll(filename, "_", " ")
	filename = strings.ReplaceAll(filename, "-", " ")

	return filename
}
