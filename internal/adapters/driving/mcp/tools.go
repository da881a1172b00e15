package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
	"github.com/custodia-labs/sercha-notes/internal/logger"
)

var log = logger.For("mcp")

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Query string `json:"query" jsonschema:"the question to answer from stored notes"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of matches to return (0 = all)"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer  string        `json:"answer"`
	Matches []MatchOutput `json:"matches"`
	Count   int           `json:"count"`
}

// MatchOutput is one ranked note in an answer.
type MatchOutput struct {
	NoteID string   `json:"note_id"`
	Title  string   `json:"title"`
	Score  float64  `json:"score"`
	Why    []string `json:"why"`
}

// ExtractInput is the input schema for the extract_facts tool.
type ExtractInput struct {
	Text string `json:"text" jsonschema:"note text to extract facts from"`
}

// ExtractOutput is the output schema for the extract_facts tool.
type ExtractOutput struct {
	Facts []domain.Fact `json:"facts"`
	Count int           `json:"count"`
}

// ListNotesInput is the input schema for the list_notes tool.
type ListNotesInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of notes to return (default 20)"`
}

// ListNotesOutput is the output schema for the list_notes tool.
type ListNotesOutput struct {
	Notes []NoteSummary `json:"notes"`
	Count int           `json:"count"`
}

// NoteSummary describes a stored note without its text.
type NoteSummary struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Type      string   `json:"type"`
	CreatedAt string   `json:"created_at"`
	Tags      []string `json:"tags,omitempty"`
	FactCount int      `json:"fact_count"`
	URI       string   `json:"uri"`
}

const defaultListLimit = 20

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer a question from stored notes, with ranked evidence",
	}, s.handleAsk)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_facts",
		Description: "Extract structured facts (due dates, mileage, topics) from text",
	}, s.handleExtractFacts)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_notes",
		Description: "List stored notes, newest first",
	}, s.handleListNotes)
}

// handleAsk handles the ask tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	log.Debug("ask %q", input.Query)

	result, err := s.ports.Notes.Ask(ctx, input.Query)
	if err != nil {
		return nil, AskOutput{}, err
	}

	matches := result.Matches
	if input.Limit > 0 && len(matches) > input.Limit {
		matches = matches[:input.Limit]
	}

	output := AskOutput{
		Answer:  result.Answer,
		Matches: make([]MatchOutput, len(matches)),
		Count:   len(matches),
	}
	for i, m := range matches {
		output.Matches[i] = MatchOutput{
			NoteID: m.NoteID,
			Title:  s.noteTitle(ctx, m.NoteID),
			Score:  m.Score,
			Why:    m.Why,
		}
	}

	return nil, output, nil
}

// handleExtractFacts handles the extract_facts tool invocation.
func (s *Server) handleExtractFacts(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ExtractInput,
) (*mcp.CallToolResult, ExtractOutput, error) {
	facts := s.ports.Assistant.ExtractFacts(input.Text)
	return nil, ExtractOutput{Facts: facts, Count: len(facts)}, nil
}

// handleListNotes handles the list_notes tool invocation.
func (s *Server) handleListNotes(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListNotesInput,
) (*mcp.CallToolResult, ListNotesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	notes, err := s.ports.Notes.List(ctx)
	if err != nil {
		return nil, ListNotesOutput{}, fmt.Errorf("listing notes: %w", err)
	}
	if len(notes) > limit {
		notes = notes[:limit]
	}

	output := ListNotesOutput{
		Notes: make([]NoteSummary, len(notes)),
		Count: len(notes),
	}
	for i := range notes {
		output.Notes[i] = summarise(&notes[i])
	}
	return nil, output, nil
}

// noteTitle looks up a note's title; missing notes yield an empty title.
func (s *Server) noteTitle(ctx context.Context, id string) string {
	note, err := s.ports.Notes.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Warn("loading note %s: %v", id, err)
		}
		return ""
	}
	return note.Title
}

func summarise(n *domain.Note) NoteSummary {
	return NoteSummary{
		ID:        n.ID,
		Title:     n.Title,
		Type:      n.Type.String(),
		CreatedAt: n.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		Tags:      n.Tags,
		FactCount: len(n.Facts()),
		URI:       noteURI(n.ID),
	}
}
