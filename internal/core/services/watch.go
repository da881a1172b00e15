package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/sercha-notes/internal/core/domain"
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-notes/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-notes/internal/logger"
)

// Ensure WatchService implements the interface.
var _ driving.WatchService = (*WatchService)(nil)

var watchLog = logger.For("watch")

// WatchService mirrors a note source into the note service so every
// text change goes through fact re-extraction.
type WatchService struct {
	source driven.NoteSource
	notes  driving.NoteService
}

// NewWatchService creates a watch service for source.
func NewWatchService(source driven.NoteSource, notes driving.NoteService) *WatchService {
	return &WatchService{source: source, notes: notes}
}

// Sync saves every note currently in the source.
func (w *WatchService) Sync(ctx context.Context) (int, error) {
	loaded, err := w.source.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load source: %w", err)
	}
	for i, note := range loaded {
		if _, err := w.notes.Save(ctx, note); err != nil {
			return i, fmt.Errorf("save note %s: %w", note.ID, err)
		}
	}
	watchLog.Info("synced %d note(s)", len(loaded))
	return len(loaded), nil
}

// Run syncs once, then applies changes until ctx is cancelled or the
// source stops. Failures on single changes are logged and skipped.
func (w *WatchService) Run(ctx context.Context) error {
	if _, err := w.Sync(ctx); err != nil {
		return err
	}

	changes, err := w.source.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch source: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-changes:
			if !ok {
				return nil
			}
			if err := w.apply(ctx, change); err != nil {
				watchLog.Warn("%s %s: %v", change.Type, change.Note.ID, err)
			}
		}
	}
}

func (w *WatchService) apply(ctx context.Context, change domain.NoteChange) error {
	switch change.Type {
	case domain.ChangeCreated, domain.ChangeUpdated:
		_, err := w.notes.Save(ctx, change.Note)
		return err
	case domain.ChangeDeleted:
		err := w.notes.Remove(ctx, change.Note.ID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	default:
		return fmt.Errorf("%w: change type %q", domain.ErrUnsupportedType, change.Type)
	}
}
