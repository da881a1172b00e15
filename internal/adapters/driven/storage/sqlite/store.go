package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/sercha-notes/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/sercha-notes/internal/core/domain"
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driven"
)

// DBFile is the database file name inside the data directory.
const DBFile = "notes.db"

// Store owns the SQLite connection and the schema.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.sercha-notes/data/notes.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".sercha-notes", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DBFile)

	// Pragmas in the DSN apply to every pooled connection.
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", domain.ErrStoreUnavailable, err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: running migrations: %v", domain.ErrStoreUnavailable, err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// NoteStore returns a NoteStore backed by this store.
func (s *Store) NoteStore() driven.NoteStore {
	return &noteStore{store: s}
}

// SchemaVersion returns the highest applied migration version.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	row := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&version); err != nil {
		return 0, fmt.Errorf("getting schema version: %w", err)
	}
	return version, nil
}

// migrate applies pending .up.sql migrations in version order, each in
// its own transaction together with its schema_migrations row.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	currentVersion, err := s.SchemaVersion(context.Background())
	if err != nil {
		return err
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if err := s.apply(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

func (s *Store) apply(version int, script string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(script); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		return err
	}
	return tx.Commit()
}

// ==================== Note Store ====================

// noteStore implements driven.NoteStore.
type noteStore struct {
	store *Store
}

var _ driven.NoteStore = (*noteStore)(nil)

// Save stores or replaces a note and its facts.
func (s *noteStore) Save(ctx context.Context, note *domain.Note) error {
	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("marshalling tags: %w", err)
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.ExecContext(ctx, `
		INSERT INTO notes (id, type, title, text, tags, extracted, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			type = excluded.type,
			title = excluded.title,
			text = excluded.text,
			tags = excluded.tags,
			extracted = excluded.extracted,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at
	`, note.ID, string(note.Type), note.Title, note.Text, string(tagsJSON),
		boolToInt(note.AI != nil), toNanos(note.CreatedAt), toNanos(note.UpdatedAt))
	if err != nil {
		return fmt.Errorf("saving note: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM facts WHERE note_id = ?", note.ID); err != nil {
		return fmt.Errorf("clearing facts: %w", err)
	}

	for i, f := range note.Facts() {
		var kind, unit, cmp sql.NullString
		var value sql.NullFloat64
		if f.Trigger != nil {
			kind = nullString(string(f.Trigger.Kind))
			value = sql.NullFloat64{Float64: f.Trigger.Value, Valid: true}
			unit = nullString(f.Trigger.Unit)
			cmp = nullString(string(f.Trigger.Cmp))
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO facts (id, note_id, position, domain, subject, predicate, object,
				trigger_kind, trigger_value, trigger_unit, trigger_cmp, confidence, source_span)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, f.ID, note.ID, i, f.Domain, f.Subject, string(f.Predicate), f.Object,
			kind, value, unit, cmp, f.Confidence, f.SourceSpan)
		if err != nil {
			return fmt.Errorf("saving fact %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing note: %w", err)
	}
	return nil
}

// Get retrieves a note by ID.
func (s *noteStore) Get(ctx context.Context, id string) (*domain.Note, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, type, title, text, tags, extracted, created_at, updated_at
		FROM notes WHERE id = ?
	`, id)

	note, err := scanNote(row)
	if err != nil {
		return nil, err
	}

	facts, err := s.facts(ctx, "WHERE note_id = ?", id)
	if err != nil {
		return nil, err
	}
	attachFacts(note, facts[id])
	return note, nil
}

// List returns all notes, newest first.
func (s *noteStore) List(ctx context.Context) ([]domain.Note, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, type, title, text, tags, extracted, created_at, updated_at
		FROM notes ORDER BY created_at DESC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	var notes []domain.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, *note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}

	facts, err := s.facts(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range notes {
		attachFacts(&notes[i], facts[notes[i].ID])
	}
	return notes, nil
}

// Delete removes a note; its facts cascade.
func (s *noteStore) Delete(ctx context.Context, id string) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}
	return nil
}

// facts loads facts grouped by note ID, in extraction order.
func (s *noteStore) facts(ctx context.Context, where string, args ...any) (map[string][]domain.Fact, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT note_id, id, domain, subject, predicate, object,
			trigger_kind, trigger_value, trigger_unit, trigger_cmp, confidence, source_span
		FROM facts `+where+` ORDER BY note_id, position`, args...)
	if err != nil {
		return nil, fmt.Errorf("querying facts: %w", err)
	}
	defer rows.Close()

	byNote := make(map[string][]domain.Fact)
	for rows.Next() {
		var noteID, predicate string
		var kind, unit, cmp sql.NullString
		var value sql.NullFloat64
		var f domain.Fact
		if err := rows.Scan(&noteID, &f.ID, &f.Domain, &f.Subject, &predicate, &f.Object,
			&kind, &value, &unit, &cmp, &f.Confidence, &f.SourceSpan); err != nil {
			return nil, fmt.Errorf("scanning fact: %w", err)
		}
		f.Predicate = domain.Predicate(predicate)
		if kind.Valid {
			f.Trigger = &domain.Trigger{
				Kind:  domain.TriggerKind(kind.String),
				Value: value.Float64,
				Unit:  unit.String,
				Cmp:   domain.Comparison(cmp.String),
			}
		}
		byNote[noteID] = append(byNote[noteID], f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating facts: %w", err)
	}
	return byNote, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanNote(row scanner) (*domain.Note, error) {
	var note domain.Note
	var noteType, tagsJSON string
	var extracted int
	var createdAt, updatedAt int64
	if err := row.Scan(&note.ID, &noteType, &note.Title, &note.Text, &tagsJSON,
		&extracted, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning note: %w", err)
	}

	note.Type = domain.NoteType(noteType)
	note.CreatedAt = fromNanos(createdAt)
	note.UpdatedAt = fromNanos(updatedAt)
	if err := json.Unmarshal([]byte(tagsJSON), &note.Tags); err != nil {
		return nil, fmt.Errorf("unmarshalling tags: %w", err)
	}
	if len(note.Tags) == 0 {
		note.Tags = nil
	}
	if extracted != 0 {
		note.AI = &domain.NoteAI{}
	}
	return &note, nil
}

func attachFacts(note *domain.Note, facts []domain.Fact) {
	if len(facts) > 0 {
		note.SetFacts(facts)
	}
}

// Helper functions

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func toNanos(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func fromNanos(ns int64) time.Time {
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns).UTC()
}
