// Package store persists key material, credentials and group metadata,
// in memory or in SQLite.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// Store is a SQLite-backed KeyStore, CredsStore and GroupStore.
type Store struct {
	db *sql.DB
}

var (
	_ KeyStore   = (*Store)(nil)
	_ CredsStore = (*Store)(nil)
	_ GroupStore = (*Store)(nil)
)

const schema = `
CREATE TABLE IF NOT EXISTS account (
	key TEXT PRIMARY KEY,
	value BLOB
);
CREATE TABLE IF NOT EXISTS keys (
	category TEXT NOT NULL,
	id TEXT NOT NULL,
	value BLOB NOT NULL,
	PRIMARY KEY (category, id)
);
CREATE TABLE IF NOT EXISTS groups (
	group_id TEXT PRIMARY KEY,
	subject TEXT NOT NULL DEFAULT '',
	metadata BLOB NOT NULL,
	updated_at INTEGER NOT NULL,
	participant_count INTEGER NOT NULL DEFAULT 0
);
`

// DefaultDataDir returns the default data directory for whatsapp-go databases.
// Uses $XDG_DATA_HOME/whatsapp-go, falling back to ~/.local/share/whatsapp-go.
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "whatsapp-go")
}

// Open opens or creates a SQLite store at the given path.
// If dbPath is empty, it defaults to $XDG_DATA_HOME/whatsapp-go/default.db.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		dbPath = filepath.Join(DefaultDataDir(), "default.db")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("store: create dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: set WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: set busy timeout: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the stored values for ids in category.
func (s *Store) Get(category Category, ids ...string) (map[string][]byte, error) {
	out := make(map[string][]byte, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, 0, len(ids)+1)
	args = append(args, string(category))
	for _, id := range ids {
		args = append(args, id)
	}
	rows, err := s.db.Query(
		"SELECT id, value FROM keys WHERE category = ? AND id IN ("+placeholders+")",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("store: get %s: %w", category, err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		var value []byte
		if err := rows.Scan(&id, &value); err != nil {
			return nil, fmt.Errorf("store: scan %s: %w", category, err)
		}
		out[id] = value
	}
	return out, rows.Err()
}

// Set writes all entries in one transaction. Nil values delete.
func (s *Store) Set(data map[Category]map[string][]byte) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	for category, entries := range data {
		for id, value := range entries {
			if value == nil {
				_, err = tx.Exec("DELETE FROM keys WHERE category = ? AND id = ?", string(category), id)
			} else {
				_, err = tx.Exec(
					"INSERT OR REPLACE INTO keys (category, id, value) VALUES (?, ?, ?)",
					string(category), id, value,
				)
			}
			if err != nil {
				return fmt.Errorf("store: set %s %s: %w", category, id, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store: commit: %w", err)
	}
	return nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
