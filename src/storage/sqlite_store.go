package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

// Supported database/sql driver names. "sqlite3" is mattn/go-sqlite3 (cgo),
// "sqlite" is modernc.org/sqlite (pure Go).
const (
	DriverMattn   = "sqlite3"
	DriverModernc = "sqlite"
)

// SQLiteStore handles all database operations for the key-value namespaces
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite storage instance
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// OpenSQLite opens the database file with the given driver and applies migrations
func OpenSQLite(driver, path string) (*SQLiteStore, error) {
	if driver != DriverMattn && driver != DriverModernc {
		return nil, fmt.Errorf("unsupported sqlite driver %q", driver)
	}

	db, err := sql.Open(driver, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single writer connection avoids SQLITE_BUSY on concurrent upserts.
	db.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		if cerr := db.Close(); cerr != nil {
			log.Printf("Failed to close database: %v", cerr)
		}
		return nil, err
	}

	return NewSQLiteStore(db), nil
}

// Namespace returns a backend scoped to one namespace of the kv_entries table
func (s *SQLiteStore) Namespace(name string) Backend {
	return &sqliteNamespace{db: s.db, name: name}
}

// Ping checks the database connection
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type sqliteNamespace struct {
	db   *sql.DB
	name string
}

func (n *sqliteNamespace) Get(ctx context.Context, key string) (string, error) {
	query := `SELECT value FROM kv_entries WHERE namespace = ? AND key = ?`

	var value string
	err := n.db.QueryRowContext(ctx, query, n.name, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", &KeyNotFoundError{Namespace: n.name, Key: key}
		}
		return "", fmt.Errorf("failed to get key: %w", err)
	}

	return value, nil
}

func (n *sqliteNamespace) Put(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO kv_entries (namespace, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (namespace, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`

	_, err := n.db.ExecContext(ctx, query, n.name, key, value, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to put key: %w", err)
	}

	return nil
}

func (n *sqliteNamespace) Delete(ctx context.Context, key string) error {
	_, err := n.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE namespace = ? AND key = ?`, n.name, key)
	if err != nil {
		return fmt.Errorf("failed to delete key: %w", err)
	}

	return nil
}

func (n *sqliteNamespace) List(ctx context.Context) ([]string, error) {
	rows, err := n.db.QueryContext(ctx, `SELECT key FROM kv_entries WHERE namespace = ? ORDER BY key`, n.name)
	if err != nil {
		return nil, fmt.Errorf("failed to query keys: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("Failed to close rows: %v", err)
		}
	}()

	keys := []string{}
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, key)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating keys: %w", err)
	}

	return keys, nil
}
