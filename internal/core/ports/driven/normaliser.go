package driven

import (
	"time"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
)

// Normaliser turns the raw content of a note file into note text.
// Each normaliser handles specific file extensions (e.g. .md, .txt).
type Normaliser interface {
	// SupportedExtensions returns the lower-case extensions handled,
	// including the leading dot.
	SupportedExtensions() []string

	// Normalise converts file content into a title and body. path is
	// used for the title when the content carries none.
	Normalise(path string, content []byte) (*NormaliseResult, error)
}

// NormaliseResult contains the output of normalisation. Zero fields
// are left to the caller's defaults.
type NormaliseResult struct {
	// Title is the note title.
	Title string

	// Text is the note body with format markup removed.
	Text string

	// Type overrides the note type, e.g. audio for a transcript.
	Type domain.NoteType

	// Tags are added to the tags the source derives itself.
	Tags []string

	// CreatedAt overrides the file modification time.
	CreatedAt time.Time
}
