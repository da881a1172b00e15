package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
)

func TestServer_handleAsk(t *testing.T) {
	ctx := context.Background()

	t.Run("returns answer and matches with titles", func(t *testing.T) {
		notes := &mockNoteService{
			notes: testNotes(),
			result: domain.AskResult{
				Answer: `Best match: "Auto" (next due at 100000 km).`,
				Matches: []domain.Match{
					{NoteID: "note-1", Score: 20, Why: []string{"has mileage fact"}},
					{NoteID: "gone", Score: 2, Why: []string{"shares 1 keyword"}},
				},
			},
		}
		server, err := NewServer(validPorts(notes))
		require.NoError(t, err)

		_, output, err := server.handleAsk(ctx, nil, AskInput{Query: "ulje"})

		require.NoError(t, err)
		assert.Equal(t, notes.result.Answer, output.Answer)
		require.Equal(t, 2, output.Count)
		assert.Equal(t, "note-1", output.Matches[0].NoteID)
		assert.Equal(t, "Auto", output.Matches[0].Title)
		assert.Equal(t, 20.0, output.Matches[0].Score)
		assert.Equal(t, []string{"has mileage fact"}, output.Matches[0].Why)
		assert.Empty(t, output.Matches[1].Title)
	})

	t.Run("limit caps matches", func(t *testing.T) {
		notes := &mockNoteService{
			notes: testNotes(),
			result: domain.AskResult{
				Answer:  "a",
				Matches: []domain.Match{{NoteID: "note-1"}, {NoteID: "note-2"}},
			},
		}
		server, err := NewServer(validPorts(notes))
		require.NoError(t, err)

		_, output, err := server.handleAsk(ctx, nil, AskInput{Query: "q", Limit: 1})

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		assert.Equal(t, "note-1", output.Matches[0].NoteID)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		server, err := NewServer(validPorts(&mockNoteService{err: errors.New("store down")}))
		require.NoError(t, err)

		_, _, err = server.handleAsk(ctx, nil, AskInput{Query: "q"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "store down")
	})
}

func TestServer_handleExtractFacts(t *testing.T) {
	facts := testNotes()[0].Facts()
	server, err := NewServer(&Ports{Notes: &mockNoteService{}, Assistant: &mockAssistant{facts: facts}})
	require.NoError(t, err)

	_, output, err := server.handleExtractFacts(context.Background(), nil, ExtractInput{Text: "x"})

	require.NoError(t, err)
	assert.Equal(t, 1, output.Count)
	assert.Equal(t, facts, output.Facts)
}

func TestServer_handleListNotes(t *testing.T) {
	ctx := context.Background()

	t.Run("summarises notes", func(t *testing.T) {
		server, err := NewServer(validPorts(&mockNoteService{notes: testNotes()}))
		require.NoError(t, err)

		_, output, err := server.handleListNotes(ctx, nil, ListNotesInput{})

		require.NoError(t, err)
		require.Equal(t, 2, output.Count)
		first := output.Notes[0]
		assert.Equal(t, "note-1", first.ID)
		assert.Equal(t, "Auto", first.Title)
		assert.Equal(t, "text", first.Type)
		assert.Equal(t, "2024-03-10T09:00:00Z", first.CreatedAt)
		assert.Equal(t, 1, first.FactCount)
		assert.Equal(t, "notes://notes/note-1", first.URI)
		assert.Equal(t, "audio", output.Notes[1].Type)
	})

	t.Run("limit", func(t *testing.T) {
		server, err := NewServer(validPorts(&mockNoteService{notes: testNotes()}))
		require.NoError(t, err)

		_, output, err := server.handleListNotes(ctx, nil, ListNotesInput{Limit: 1})

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
	})

	t.Run("error", func(t *testing.T) {
		server, err := NewServer(validPorts(&mockNoteService{err: errors.New("boom")}))
		require.NoError(t, err)

		_, _, err = server.handleListNotes(ctx, nil, ListNotesInput{})
		assert.ErrorContains(t, err, "listing notes")
	})
}
