package markdown

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-notes/internal/normalisers/plaintext"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

var (
	codeBlock    = regexp.MustCompile("(?s)```[^`]*```")
	inlineCode   = regexp.MustCompile("`[^`]+`")
	images       = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	links        = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	checkboxes   = regexp.MustCompile(`(?m)^([ \t]*[-*+][ \t]+)\[[ xX]\][ \t]+`)
	headings     = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	blockquote   = regexp.MustCompile(`(?m)^>\s*`)
	hr           = regexp.MustCompile(`(?m)^[-*_]{3,}[ \t]*$`)
	listMarkers  = regexp.MustCompile(`(?m)^[ \t]*[-*+][ \t]+`)
	numberedList = regexp.MustCompile(`(?m)^[ \t]*\d+\.[ \t]+`)
	emphasis     = regexp.MustCompile(`(\*\*|__|\*)`)
	multiNewline = regexp.MustCompile(`\n{3,}`)
)

// Normaliser handles Markdown notes.
type Normaliser struct{}

// New creates a new Markdown normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedExtensions returns the extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{".md", ".markdown"}
}

// Normalise converts a markdown note to plain text. The title comes
// from the front matter, else the first H1 heading, else the file name.
// Front matter may also set the note type, tags and creation date.
func (n *Normaliser) Normalise(path string, content []byte) (*driven.NormaliseResult, error) {
	fm, body, err := splitFrontMatter(content)
	if err != nil {
		return nil, err
	}

	raw := string(body)
	result := &driven.NormaliseResult{
		Title: extractTitle(raw, path),
		Text:  stripMarkdown(raw),
	}
	if fm == nil {
		return result, nil
	}

	if title := strings.TrimSpace(fm.Title); title != "" {
		result.Title = title
	}
	if fm.Type != "" {
		noteType := domain.NoteType(strings.ToLower(strings.TrimSpace(fm.Type)))
		if !noteType.IsValid() {
			return nil, fmt.Errorf("%w: note type %q", domain.ErrInvalidInput, fm.Type)
		}
		result.Type = noteType
	}
	result.Tags = fm.Tags
	result.CreatedAt = fm.Created.Time
	if result.CreatedAt.IsZero() {
		result.CreatedAt = fm.Date.Time
	}
	return result, nil
}

// extractTitle returns the first H1 heading or falls back to the file name.
func extractTitle(content, path string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "#"))
		}
	}
	return plaintext.TitleFromPath(path)
}

// stripMarkdown removes common markdown formatting. Underscores inside
// words are kept so numbers like 100_000 still parse.
func stripMarkdown(content string) string {
	content = codeBlock.ReplaceAllString(content, "")
	content = inlineCode.ReplaceAllString(content, "")
	content = images.ReplaceAllString(content, "")
	content = links.ReplaceAllString(content, "$1")
	content = checkboxes.ReplaceAllString(content, "$1")
	content = headings.ReplaceAllString(content, "")
	content = blockquote.ReplaceAllString(content, "")
	content = hr.ReplaceAllString(content, "")
	content = listMarkers.ReplaceAllString(content, "")
	content = numberedList.ReplaceAllString(content, "")
	content = emphasis.ReplaceAllString(content, "")
	content = multiNewline.ReplaceAllString(content, "\n\n")

	return strings.TrimSpace(content)
}
