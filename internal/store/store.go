// Package store persists the device's long-lived state: one string
// value per named key, surviving process restarts. The auth token and
// the theme flag are the only keys in use.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	_ "modernc.org/sqlite"
)

// Well-known keys.
const (
	KeyAuthToken = "AUTH_TOKEN"
	KeyThemeMode = "THEME_MODE"
)

// KV is the persistence contract the session and theme state depend on.
// Writes to the same key are last-write-wins.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}

// SQLiteStore implements KV on a single-table SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (or creates) the state database at path and ensures the
// schema exists. WAL mode keeps concurrent readers cheap.
func Open(path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", path)
	return openDSN(dsn)
}

// OpenDefault opens the state database at its standard location
// (~/.civic-tracker/state.db, overridable via CIVIC_STATE_HOME).
func OpenDefault() (*SQLiteStore, error) {
	path, err := DBPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// OpenInMemory returns a store that lives only for the process; used in
// tests and by callers that explicitly opt out of persistence. Each
// call gets its own database; shared cache keeps the connection pool
// inside one store pointed at the same data.
func OpenInMemory() (*SQLiteStore, error) {
	name := fmt.Sprintf("memstore%d", memStoreSeq.Add(1))
	return openDSN(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
}

var memStoreSeq atomic.Uint64

func openDSN(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS KVStore (
        Key TEXT PRIMARY KEY,
        Value TEXT NOT NULL
    );`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Get returns the value stored under key and whether it was present.
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT Value FROM KVStore WHERE Key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO KVStore (Key, Value) VALUES (?, ?)
         ON CONFLICT(Key) DO UPDATE SET Value = excluded.Value`,
		key, value)
	return err
}

// Remove deletes key. Removing an absent key is not an error.
func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM KVStore WHERE Key = ?`, key)
	return err
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }
