package driving

import "context"

// WatchService mirrors an external note source into the note store.
type WatchService interface {
	// Sync loads every note from the source once and returns the count saved.
	Sync(ctx context.Context) (int, error)

	// Run syncs, then applies source changes until ctx is cancelled.
	Run(ctx context.Context) error
}
