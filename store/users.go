package store

import (
	"context"
	"errors"
	"io/fs"
	"sync"

	"github.com/user/datamon-go/apperror"
)

// User represents a registered account as stored on disk. The password field
// holds only a salted one-way hash; the plaintext password is never persisted.
// Age and language are free-form profile fields stored exactly as supplied at
// registration.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"` // salted hash, never plaintext
	Email    string `json:"email"`
	Age      string `json:"age"`
	Language string `json:"language"`
}

// UserStore is the authoritative owner of the user collection, persisted as a
// JSON array of objects with the same full-rewrite and locking discipline as
// the record store.
type UserStore struct {
	path string
	mu   sync.RWMutex
}

// NewUserStore creates a UserStore backed by the JSON file at path.
func NewUserStore(path string) *UserStore {
	return &UserStore{path: path}
}

// List returns all registered users.
func (s *UserStore) List(ctx context.Context) ([]User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load()
}

// FindByUsername looks up a user by exact, case-sensitive username match.
// It returns (nil, nil) when no such user exists.
func (s *UserStore) FindByUsername(ctx context.Context, username string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Append persists the full collection including the new user. Uniqueness of
// the username is the caller's responsibility (the auth service checks it
// before appending); holding the write lock across its check-then-append
// sequence is not required for the current single-service usage.
func (s *UserStore) Append(ctx context.Context, user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load()
	if err != nil {
		return err
	}
	users = append(users, user)
	if err := writeJSONFile(s.path, users); err != nil {
		return apperror.NewStorageError("failed to persist user collection", err)
	}
	return nil
}

// load reads the collection from disk. Callers must hold at least a read lock.
func (s *UserStore) load() ([]User, error) {
	var users []User
	if err := readJSONFile(s.path, &users); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []User{}, nil
		}
		return nil, apperror.NewStorageError("user collection is unreadable", err)
	}
	return users, nil
}
