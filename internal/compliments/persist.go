package compliments

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StorageKey is the key the store is persisted under.
const StorageKey = "cmp-pro-data"

// Backend is a string key/value store, such as a user's scope in the
// SQLite storage.
type Backend interface {
	GetItem(key string) (value string, ok bool, err error)
	SetItem(key, value string) error
}

// Load reads the persisted store. It always returns a usable store: when
// nothing is saved, or the saved value cannot be read or parsed, it returns
// Default. A non-nil error explains why the default was used and is meant
// for logging only.
func Load(b Backend) (*Store, error) {
	if b == nil {
		return Default(), nil
	}
	raw, ok, err := b.GetItem(StorageKey)
	if err != nil {
		return Default(), fmt.Errorf("failed to read compliments: %w", err)
	}
	if !ok || strings.TrimSpace(raw) == "" || strings.TrimSpace(raw) == "null" {
		return Default(), nil
	}

	s := New()
	if err := json.Unmarshal([]byte(raw), s); err != nil {
		return Default(), fmt.Errorf("failed to parse compliments: %w", err)
	}
	return s, nil
}

// Save writes the whole store. Callers should treat a returned error as
// non-fatal: the in-memory store stays valid, it just won't survive a
// restart.
func Save(b Backend, s *Store) error {
	if b == nil {
		return nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode compliments: %w", err)
	}
	if err := b.SetItem(StorageKey, string(data)); err != nil {
		return fmt.Errorf("failed to save compliments: %w", err)
	}
	return nil
}

// Remover is a Backend that can also delete keys.
type Remover interface {
	Backend
	RemoveItem(key string) error
}

// Reset deletes the persisted store so the next Load returns Default.
func Reset(b Remover) error {
	if b == nil {
		return nil
	}
	if err := b.RemoveItem(StorageKey); err != nil {
		return fmt.Errorf("failed to reset compliments: %w", err)
	}
	return nil
}
