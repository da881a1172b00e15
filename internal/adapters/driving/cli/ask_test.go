package cli

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
)

func TestAskCmd_RequiresQuestion(t *testing.T) {
	setupTestServices(t)

	_, err := runCommand(t, "ask")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg(s)")
}

func TestAskCmd_HasFlags(t *testing.T) {
	limit := askCmd.Flags().Lookup("limit")
	require.NotNil(t, limit)
	assert.Equal(t, "n", limit.Shorthand)
	assert.Equal(t, "5", limit.DefValue)
	assert.NotNil(t, askCmd.Flags().Lookup("json"))
}

func TestAskCmd_NoNotes(t *testing.T) {
	setupTestServices(t)

	out := mustRun(t, "ask", "kada", "je", "registracija")

	assert.Contains(t, out, "No matching notes found.")
}

func TestAskCmd_AnswersFromNotes(t *testing.T) {
	svc := setupTestServices(t)
	ctx := context.Background()
	_, err := svc.Notes.Save(ctx, domain.Note{Title: "Auto", Text: "sledeca zamena ulja na 100000km"})
	require.NoError(t, err)
	_, err = svc.Notes.Save(ctx, domain.Note{Title: "Kupovina", Text: "kupiti hleb i mleko"})
	require.NoError(t, err)

	out := mustRun(t, "ask", "zamena ulja")

	assert.Contains(t, out, `Best match: "Auto"`)
	assert.Contains(t, out, "next due at 100000 km")
	assert.Contains(t, out, "[1] Auto")
	assert.Contains(t, out, "text contains 'zamena ulja'")
	assert.NotContains(t, out, "Kupovina")
}

func TestAskCmd_JSON(t *testing.T) {
	svc := setupTestServices(t)
	_, err := svc.Notes.Save(context.Background(), domain.Note{Title: "Registracija", Text: "registracija do 15.04.2024"})
	require.NoError(t, err)

	out := mustRun(t, "ask", "--json", "kada", "registracija")

	var got askOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Contains(t, got.Answer, "due on 2024-04-15")
	require.Len(t, got.Matches, 1)
	assert.Equal(t, "Registracija", got.Matches[0].Title)
	assert.Contains(t, got.Matches[0].Why, "has due date fact")
}

func TestAskCmd_Limit(t *testing.T) {
	svc := setupTestServices(t)
	for _, text := range []string{"ulje jedan", "ulje dva", "ulje tri"} {
		_, err := svc.Notes.Save(context.Background(), domain.Note{Text: text})
		require.NoError(t, err)
	}

	out := mustRun(t, "ask", "--json", "--limit", "2", "ulje")

	var got askOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got.Matches, 2)
}
