package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

// Item is one stored key/value pair.
type Item struct {
	TelegramID int64
	Key        string
	Value      string
	UpdatedAt  time.Time
}

// Store is a per-user string key/value store, the bot's equivalent of a
// browser's local storage.
type Store interface {
	GetItem(telegramID int64, key string) (string, bool, error)
	SetItem(telegramID int64, key, value string) error
	RemoveItem(telegramID int64, key string) error
	GetItems(telegramID int64) ([]Item, error)
	GetUsers() ([]int64, error)
	Close() error
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLiteStore opens (or creates) the database at dbPath. Use ":memory:"
// for a throwaway database.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	// Configure SQLite with WAL mode and busy timeout for better concurrency
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	store := &SQLiteStore{db: db}

	if err := store.init(); err != nil {
		db.Close()
		return nil, err
	}

	if dbPath != ":memory:" {
		if err := os.Chmod(dbPath, 0600); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Str("dbPath", dbPath).Msg("failed to restrict database permissions")
		}
	}

	return store, nil
}

func (s *SQLiteStore) init() error {
	query := `
	CREATE TABLE IF NOT EXISTS local_storage (
		telegram_id INTEGER NOT NULL,
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		updated_at DATETIME NOT NULL,
		PRIMARY KEY (telegram_id, key)
	);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create local_storage table: %w", err)
	}
	return nil
}

// GetItem returns the value stored under key for a user. ok is false when
// nothing is stored.
func (s *SQLiteStore) GetItem(telegramID int64, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRow(
		"SELECT value FROM local_storage WHERE telegram_id = ? AND key = ?",
		telegramID, key,
	).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query item %q: %w", key, err)
	}
	return value, true, nil
}

// SetItem stores or replaces the value under key for a user.
func (s *SQLiteStore) SetItem(telegramID int64, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO local_storage (telegram_id, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(telegram_id, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, telegramID, key, value, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save item %q: %w", key, err)
	}
	return nil
}

// RemoveItem deletes the value under key for a user.
func (s *SQLiteStore) RemoveItem(telegramID int64, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM local_storage WHERE telegram_id = ? AND key = ?", telegramID, key)
	if err != nil {
		return fmt.Errorf("failed to delete item %q: %w", key, err)
	}
	return nil
}

// GetItems returns every item stored for a user, ordered by key.
func (s *SQLiteStore) GetItems(telegramID int64) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(
		"SELECT telegram_id, key, value, updated_at FROM local_storage WHERE telegram_id = ? ORDER BY key",
		telegramID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.TelegramID, &it.Key, &it.Value, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

// GetUsers returns the IDs of all users with stored items.
func (s *SQLiteStore) GetUsers() ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT DISTINCT telegram_id FROM local_storage ORDER BY telegram_id")
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, id)
	}

	return users, rows.Err()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
