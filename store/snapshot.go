package store

import (
	"context"
	"errors"
	"io/fs"
	"sync"

	"github.com/user/datamon-go/apperror"
)

// SnapshotStore persists a single derived JSON document, overwriting it on
// every save. It backs the "last filter result" artifact: one slot, not a
// keyed cache, and never a source of truth.
type SnapshotStore struct {
	path string
	mu   sync.Mutex
}

// NewSnapshotStore creates a SnapshotStore backed by the JSON file at path.
func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

// Save replaces the snapshot with the JSON serialization of v.
func (s *SnapshotStore) Save(ctx context.Context, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeJSONFile(s.path, v); err != nil {
		return apperror.NewStorageError("failed to persist filter snapshot", err)
	}
	return nil
}

// Load decodes the current snapshot into v. It returns a NotFoundError when
// no snapshot has been saved yet.
func (s *SnapshotStore) Load(ctx context.Context, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := readJSONFile(s.path, v); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return apperror.NewNotFoundError("no filter snapshot has been saved yet", nil)
		}
		return apperror.NewStorageError("filter snapshot is unreadable", err)
	}
	return nil
}
