package store

import (
	"context"
	"errors"
	"io/fs"
	"sync"

	"github.com/google/uuid"

	"github.com/user/datamon-go/apperror"
)

// RecordStore is the authoritative owner of the record collection, persisted
// as a JSON array of objects. Appends rewrite the entire collection; a RWMutex
// serializes the read-modify-write cycle so concurrent appends cannot lose
// updates.
type RecordStore struct {
	path string
	mu   sync.RWMutex
}

// NewRecordStore creates a RecordStore backed by the JSON file at path.
// The file does not need to exist yet; an absent file reads as an empty
// collection.
func NewRecordStore(path string) *RecordStore {
	return &RecordStore{path: path}
}

// List returns all stored records in insertion order. On first run, before
// anything has been appended, it returns an empty slice.
func (s *RecordStore) List(ctx context.Context) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load()
}

// Append stores the given fields as a new record. A fresh identifier is
// generated server-side and overwrites any client-supplied id. The full
// collection is persisted before the stored record is returned.
func (s *RecordStore) Append(ctx context.Context, fields map[string]any) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}

	rec := make(Record, len(fields)+1)
	for k, v := range fields {
		rec[k] = v
	}
	rec[IDField] = uuid.NewString()

	records = append(records, rec)
	if err := writeJSONFile(s.path, records); err != nil {
		return nil, apperror.NewStorageError("failed to persist record collection", err)
	}
	return rec, nil
}

// load reads the collection from disk. Callers must hold at least a read lock.
// An absent file is the first-run case and reads as empty; an unreadable or
// corrupt file is surfaced as a StorageError rather than silently treated as
// an empty collection, so data loss cannot masquerade as a fresh start.
func (s *RecordStore) load() ([]Record, error) {
	var records []Record
	if err := readJSONFile(s.path, &records); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Record{}, nil
		}
		return nil, apperror.NewStorageError("record collection is unreadable", err)
	}
	return records, nil
}
