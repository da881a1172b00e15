package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for note resources.
	uriScheme = "notes://"

	notesPath = uriScheme + "notes"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         notesPath,
		Name:        "notes",
		Description: "Summaries of all stored notes",
		MIMEType:    "application/json",
	}, s.handleNotesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: notesPath + "/{noteId}",
		Name:        "note",
		Description: "A stored note with its extracted facts",
		MIMEType:    "application/json",
	}, s.handleNoteResource)
}

// handleNotesResource returns summaries of all notes.
func (s *Server) handleNotesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	notes, err := s.ports.Notes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}

	summaries := make([]NoteSummary, len(notes))
	for i := range notes {
		summaries[i] = summarise(&notes[i])
	}

	return jsonResult(req.Params.URI, summaries)
}

// handleNoteResource returns one note including its facts.
func (s *Server) handleNoteResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	id := extractNoteID(req.Params.URI)
	if id == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	note, err := s.ports.Notes.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting note: %w", err)
	}

	return jsonResult(req.Params.URI, note)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func noteURI(id string) string {
	return notesPath + "/" + id
}

// extractNoteID extracts the note ID from a URI like notes://notes/{noteId}.
func extractNoteID(uri string) string {
	const prefix = notesPath + "/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
