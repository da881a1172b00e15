package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, store.Close()) })
	return store
}

func testNote(id string, created time.Time) *domain.Note {
	note := &domain.Note{
		ID:        id,
		Type:      domain.NoteTypeAudio,
		Title:     "Servis",
		Text:      "sledeca zamena ulja na 100000km; registracija 15.04.2024",
		CreatedAt: created,
		UpdatedAt: created.Add(time.Minute),
		Tags:      []string{"auto", "servis"},
	}
	note.SetFacts([]domain.Fact{
		{
			ID: "f1", Domain: "car", Subject: "oil_change", Predicate: domain.PredicateNextDue,
			Object: "100000 km", Trigger: domain.MileageTrigger(100000, "km", domain.CmpGreaterEqual),
			Confidence: domain.ConfidenceStructured, SourceSpan: "sledeca zamena ulja na 100000km",
		},
		{
			ID: "f2", Domain: "car", Subject: "registration", Predicate: domain.PredicateDueOn,
			Object: "2024-04-15", Trigger: domain.DateTrigger("2024-04-15", domain.CmpLessEqual),
			Confidence: domain.ConfidenceStructured, SourceSpan: "registracija 15.04.2024",
		},
		{
			ID: "f3", Domain: "work", Subject: "note", Predicate: domain.PredicateTopic,
			Object: "work", Confidence: domain.ConfidenceKeyword, SourceSpan: "servis",
		},
	})
	return note
}

func TestNewStore_Success(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "notes.db"), store.Path())
	_, err = os.Stat(store.Path())
	assert.NoError(t, err)
}

func TestNewStore_DirectoryCreation(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewStore_ErrorHandling(t *testing.T) {
	_, err := NewStore("/dev/null/cannot/create")
	assert.Error(t, err)
}

func TestNewStore_Migrations(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store, err := NewStore(dir)
	require.NoError(t, err)
	version, err := store.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, version)
	require.NoError(t, store.Close())

	// Reopening must not re-apply migrations.
	store, err = NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	var count int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestNoteStore_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	notes := setupTestStore(t).NoteStore()
	created := time.Date(2024, 3, 10, 9, 30, 0, 123, time.UTC)
	note := testNote("n1", created)

	require.NoError(t, notes.Save(ctx, note))

	got, err := notes.Get(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, note.ID, got.ID)
	assert.Equal(t, note.Type, got.Type)
	assert.Equal(t, note.Title, got.Title)
	assert.Equal(t, note.Text, got.Text)
	assert.Equal(t, note.Tags, got.Tags)
	assert.True(t, note.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, note.UpdatedAt.Equal(got.UpdatedAt))
	assert.Equal(t, note.Facts(), got.Facts())
}

func TestNoteStore_Get_NotFound(t *testing.T) {
	_, err := setupTestStore(t).NoteStore().Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNoteStore_SaveReplacesFacts(t *testing.T) {
	ctx := context.Background()
	notes := setupTestStore(t).NoteStore()
	note := testNote("n1", time.Now())
	require.NoError(t, notes.Save(ctx, note))

	note.Text = "kupi mleko"
	note.SetFacts([]domain.Fact{{ID: "f9", Domain: "shopping", Subject: "note", Predicate: domain.PredicateTopic, Object: "shopping", Confidence: 0.7}})
	require.NoError(t, notes.Save(ctx, note))

	got, err := notes.Get(ctx, "n1")
	require.NoError(t, err)
	assert.Equal(t, "kupi mleko", got.Text)
	require.Len(t, got.Facts(), 1)
	assert.Equal(t, "f9", got.Facts()[0].ID)
	assert.Nil(t, got.Facts()[0].Trigger)
}

func TestNoteStore_AIMarker(t *testing.T) {
	ctx := context.Background()
	notes := setupTestStore(t).NoteStore()

	require.NoError(t, notes.Save(ctx, &domain.Note{ID: "raw", Type: domain.NoteTypeText, Text: "x"}))
	extracted := &domain.Note{ID: "done", Type: domain.NoteTypeText, Text: "x"}
	extracted.SetFacts([]domain.Fact{})
	require.NoError(t, notes.Save(ctx, extracted))

	raw, err := notes.Get(ctx, "raw")
	require.NoError(t, err)
	assert.Nil(t, raw.AI)
	assert.Nil(t, raw.Tags)

	done, err := notes.Get(ctx, "done")
	require.NoError(t, err)
	assert.NotNil(t, done.AI)
	assert.Empty(t, done.Facts())
}

func TestNoteStore_List(t *testing.T) {
	ctx := context.Background()
	notes := setupTestStore(t).NoteStore()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, notes.Save(ctx, testNote("old", base)))
	require.NoError(t, notes.Save(ctx, testNote("b", base.Add(time.Hour))))
	require.NoError(t, notes.Save(ctx, testNote("a", base.Add(time.Hour))))

	list, err := notes.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "b", list[1].ID)
	assert.Equal(t, "old", list[2].ID)
	for _, n := range list {
		assert.Len(t, n.Facts(), 3, n.ID)
	}
}

func TestNoteStore_List_Empty(t *testing.T) {
	list, err := setupTestStore(t).NoteStore().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNoteStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := setupTestStore(t)
	notes := store.NoteStore()
	require.NoError(t, notes.Save(ctx, testNote("n1", time.Now())))

	require.NoError(t, notes.Delete(ctx, "n1"))
	require.NoError(t, notes.Delete(ctx, "n1"))

	_, err := notes.Get(ctx, "n1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var facts int
	require.NoError(t, store.db.QueryRow("SELECT COUNT(*) FROM facts").Scan(&facts))
	assert.Zero(t, facts, "facts are removed with their note")
}
