// Package filesystem reads notes from a directory of text files and
// watches it for changes. Each file with a registered normaliser
// (.txt, .md by default) is one note.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-notes/internal/logger"
	"github.com/custodia-labs/sercha-notes/internal/normalisers"
)

// Ensure Source implements the interface.
var _ driven.NoteSource = (*Source)(nil)

// noteNamespace scopes name-based note IDs to files.
var noteNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("file://sercha-notes"))

var log = logger.For("filesystem")

// Source is a directory of note files.
type Source struct {
	root        string
	normalisers map[string]driven.Normaliser
	exclude     []string

	mu      sync.Mutex
	closed  bool
	watcher *fsnotify.Watcher
}

// Option configures a Source.
type Option func(*Source)

// WithNormalisers replaces the default normalisers. Files are read by
// the normaliser registered for their extension.
func WithNormalisers(norms ...driven.Normaliser) Option {
	return func(s *Source) {
		s.normalisers = make(map[string]driven.Normaliser)
		for _, n := range norms {
			for _, ext := range n.SupportedExtensions() {
				s.normalisers[strings.ToLower(ext)] = n
			}
		}
	}
}

// WithExclude skips files and directories whose slash-separated path
// relative to the root matches one of the doublestar patterns, e.g.
// "archive/**" or "**/*.draft.md".
func WithExclude(patterns ...string) Option {
	return func(s *Source) {
		s.exclude = append(s.exclude, patterns...)
	}
}

// New creates a source rooted at dir, reading .txt and .md files unless
// WithNormalisers says otherwise.
func New(root string, opts ...Option) *Source {
	s := &Source{root: root}
	WithNormalisers(normalisers.Defaults()...)(s)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Root returns the directory the source reads.
func (s *Source) Root() string {
	return s.root
}

// Extensions returns the file extensions read as notes, sorted.
func (s *Source) Extensions() []string {
	exts := make([]string, 0, len(s.normalisers))
	for ext := range s.normalisers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Load reads every note file below the root. Hidden files and
// directories are skipped.
func (s *Source) Load(ctx context.Context) ([]domain.Note, error) {
	if err := s.checkRoot(); err != nil {
		return nil, err
	}

	var notes []domain.Note
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if path != s.root && s.skipped(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || s.normaliserFor(path) == nil {
			return nil
		}
		note, err := s.readNote(path)
		if err != nil {
			log.Warn("skipping %s: %v", path, err)
			return nil
		}
		notes = append(notes, *note)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", s.root, err)
	}
	return notes, nil
}

// Watch reports note file changes until ctx is cancelled. New
// subdirectories are watched as they appear.
func (s *Source) Watch(ctx context.Context) (<-chan domain.NoteChange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, domain.ErrSourceClosed
	}
	if err := s.checkRoot(); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := s.addTree(watcher, s.root); err != nil {
		watcher.Close()
		return nil, err
	}
	s.watcher = watcher

	changes := make(chan domain.NoteChange)
	go s.run(ctx, watcher, changes)
	return changes, nil
}

func (s *Source) run(ctx context.Context, watcher *fsnotify.Watcher, changes chan<- domain.NoteChange) {
	defer close(changes)
	defer watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) && s.isDir(event.Name) {
				if err := s.addTree(watcher, event.Name); err != nil {
					log.Warn("watching %s: %v", event.Name, err)
				}
				continue
			}
			change := s.handleFsEvent(event)
			if change == nil {
				continue
			}
			select {
			case changes <- *change:
			case <-ctx.Done():
				return
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Warn("watch error: %v", err)
		}
	}
}

// handleFsEvent converts a filesystem event into a note change, or nil
// for events that do not concern a visible note file.
func (s *Source) handleFsEvent(event fsnotify.Event) *domain.NoteChange {
	path := event.Name
	if s.skipped(path) || s.normaliserFor(path) == nil {
		return nil
	}

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return &domain.NoteChange{Type: domain.ChangeDeleted, Note: domain.Note{ID: s.noteID(path)}}
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		if s.isDir(path) {
			return nil
		}
		note, err := s.readNote(path)
		if err != nil {
			log.Warn("reading %s: %v", path, err)
			return nil
		}
		changeType := domain.ChangeUpdated
		if event.Has(fsnotify.Create) {
			changeType = domain.ChangeCreated
		}
		return &domain.NoteChange{Type: changeType, Note: *note}
	default:
		return nil
	}
}

// Close stops any running watch. It is idempotent.
func (s *Source) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if s.watcher != nil {
		// The run loop also closes it; a second Close is harmless.
		_ = s.watcher.Close()
	}
	return nil
}

func (s *Source) checkRoot() error {
	for _, pattern := range s.exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: exclude pattern %q", domain.ErrInvalidInput, pattern)
		}
	}
	info, err := os.Stat(s.root)
	if err != nil {
		return fmt.Errorf("root path error: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root path error: %s is not a directory", s.root)
	}
	return nil
}

func (s *Source) addTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != s.root && s.skipped(path) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		return nil
	})
}

// readNote builds a text note from a file. The ID is derived from the
// path relative to the root so it survives restarts; subdirectories
// become tags.
func (s *Source) readNote(path string) (*domain.Note, error) {
	normaliser := s.normaliserFor(path)
	if normaliser == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, filepath.Ext(path))
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	result, err := normaliser.Normalise(path, content)
	if err != nil {
		return nil, err
	}

	rel := s.rel(path)
	note := &domain.Note{
		ID:        s.noteID(path),
		Type:      domain.NoteTypeText,
		Title:     result.Title,
		Text:      result.Text,
		CreatedAt: info.ModTime().UTC(),
		UpdatedAt: info.ModTime().UTC(),
	}
	if result.Type != "" {
		note.Type = result.Type
	}
	if !result.CreatedAt.IsZero() {
		note.CreatedAt = result.CreatedAt
	}
	if dir := filepath.Dir(rel); dir != "." {
		note.Tags = strings.Split(filepath.ToSlash(dir), "/")
	}
	for _, tag := range result.Tags {
		if !slices.Contains(note.Tags, tag) {
			note.Tags = append(note.Tags, tag)
		}
	}
	return note, nil
}

// noteID is a name-based (v5) UUID of the slash relative path.
func (s *Source) noteID(path string) string {
	return uuid.NewSHA1(noteNamespace, []byte(filepath.ToSlash(s.rel(path)))).String()
}

func (s *Source) rel(path string) string {
	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		return path
	}
	return rel
}

// skipped reports whether path is hidden or excluded.
func (s *Source) skipped(path string) bool {
	rel := filepath.ToSlash(s.rel(path))
	if isHidden(rel) {
		return true
	}
	for _, pattern := range s.exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func (s *Source) isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// isHidden reports whether any component of path starts with a dot.
// "." and ".." are not hidden.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part != "." && part != ".." && strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

func (s *Source) normaliserFor(path string) driven.Normaliser {
	return s.normalisers[strings.ToLower(filepath.Ext(path))]
}
