// Package session persists the signed-in user record the way a browser keeps
// it in local storage: string items under string keys.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/noah-isme/unigov-client/internal/models"
)

// ErrNotFound is returned when a storage item does not exist.
var ErrNotFound = errors.New("session item not found")

// Storage is a string key/value store.
type Storage interface {
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}

// Load reads and parses the `user` record.
func Load(ctx context.Context, store Storage) (*models.Session, error) {
	if store == nil {
		return nil, ErrNotFound
	}
	raw, err := store.GetItem(ctx, models.SessionKey)
	if err != nil {
		return nil, err
	}
	var s models.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("parse session record: %w", err)
	}
	return &s, nil
}

// Save writes the `user` record.
func Save(ctx context.Context, store Storage, s *models.Session) error {
	if s == nil {
		return errors.New("nil session")
	}
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session record: %w", err)
	}
	return store.SetItem(ctx, models.SessionKey, string(payload))
}

// Clear removes the `user` record. Clearing an empty store is not an error.
func Clear(ctx context.Context, store Storage) error {
	if err := store.RemoveItem(ctx, models.SessionKey); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

// Token returns the bearer token of the stored session, or "" when the record
// is absent, unreadable or has no token.
func Token(ctx context.Context, store Storage) string {
	s, err := Load(ctx, store)
	if err != nil || s == nil {
		return ""
	}
	return s.Token
}
